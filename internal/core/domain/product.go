package domain

import (
	"errors"
	"net/url"
	"time"
)

// ErrMalformedTimestamp marks a corrupt created/updated timestamp in a
// wire payload. Unlike every other parsing path this is a hard failure:
// record timestamps come from our own pipeline, so a bad one indicates a
// data-integrity fault upstream, not a messy partner feed.
var ErrMalformedTimestamp = errors.New("malformed timestamp")

// UserProductData is the per-user overlay on a product. It only exists
// for authenticated callers; its absence is distinct from false values.
type UserProductData struct {
	Watching             bool
	NotificationsEnabled bool
}

// OverviewProduct is the UI-ready representation of an aggregated
// listing in result lists and cards.
type OverviewProduct struct {
	ProductID      string
	EventID        string
	ShopID         string
	ShopsProductID string
	ShopName       string
	ShopType       ShopType
	Title          string
	Description    string
	Price          *Price
	PriceEstimate  *PriceEstimate
	State          ProductState
	URL            *url.URL
	Images         []ProductImage
	Created        time.Time
	Updated        time.Time
	UserData       *UserProductData
	OriginYear     *int
	OriginYearMin  *int
	OriginYearMax  *int
	Authenticity   Authenticity
	Condition      Condition
	Provenance     Provenance
	Restoration    Restoration
}

// ProductDetail extends the overview with the listing's event history.
type ProductDetail struct {
	OverviewProduct
	History []ProductEvent
}

// WatchlistEntry is a watched product plus the watch metadata.
type WatchlistEntry struct {
	Product              OverviewProduct
	NotificationsEnabled bool
	Created              time.Time
	Updated              time.Time
}
