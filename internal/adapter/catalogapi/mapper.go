package catalogapi

import (
	"fmt"
	"net/url"
	"time"

	"github.com/antiqora/marketplace/internal/core/domain"
)

// MapOverviewProduct normalizes one wire product record. Every field is
// total except the created/updated timestamps: a corrupt timestamp is a
// data-integrity fault and surfaces as domain.ErrMalformedTimestamp.
func MapOverviewProduct(
	data GetProductData, userState *ProductUserStateData,
) (domain.OverviewProduct, error) {
	const op = "catalogapi.MapOverviewProduct"

	created, err := parseTimestamp(data.Created)
	if err != nil {
		return domain.OverviewProduct{}, fmt.Errorf("%s: created: %w", op, err)
	}
	updated, err := parseTimestamp(data.Updated)
	if err != nil {
		return domain.OverviewProduct{}, fmt.Errorf("%s: updated: %w", op, err)
	}

	p := domain.OverviewProduct{
		ProductID:      data.ProductID,
		EventID:        data.EventID,
		ShopID:         data.ShopID,
		ShopsProductID: data.ShopsProductID,
		ShopName:       data.ShopName,
		ShopType:       domain.ParseShopType(deref(data.ShopType)),
		Title:          data.Title.Text,
		Price:          mapPrice(data.Price),
		PriceEstimate: domain.NewPriceEstimate(
			mapPrice(data.PriceEstimateMin),
			mapPrice(data.PriceEstimateMax),
		),
		State:         domain.ParseProductState(deref(data.State)),
		URL:           parseLenientURL(data.URL),
		Images:        mapImages(data.Images),
		Created:       created,
		Updated:       updated,
		OriginYear:    data.OriginYear,
		OriginYearMin: data.OriginYearMin,
		OriginYearMax: data.OriginYearMax,
		Authenticity:  domain.ParseAuthenticity(deref(data.Authenticity)),
		Condition:     domain.ParseCondition(deref(data.Condition)),
		Provenance:    domain.ParseProvenance(deref(data.Provenance)),
		Restoration:   domain.ParseRestoration(deref(data.Restoration)),
	}

	if data.Description != nil {
		p.Description = data.Description.Text
	}

	if userState != nil {
		p.UserData = &domain.UserProductData{
			Watching:             deref(userState.Watchlist.Watching),
			NotificationsEnabled: deref(userState.Watchlist.Notifications),
		}
	}

	return p, nil
}

// MapPersonalizedProduct maps a personalized record; the user overlay is
// only attached when the backend sent one (authenticated caller).
func MapPersonalizedProduct(
	data PersonalizedGetProductData,
) (domain.OverviewProduct, error) {
	return MapOverviewProduct(data.Item, data.UserState)
}

// MapProductDetail maps the personalized record plus its history.
func MapProductDetail(
	data PersonalizedGetProductData,
) (domain.ProductDetail, error) {
	const op = "catalogapi.MapProductDetail"

	overview, err := MapPersonalizedProduct(data)
	if err != nil {
		return domain.ProductDetail{}, fmt.Errorf("%s: %w", op, err)
	}

	detail := domain.ProductDetail{OverviewProduct: overview}
	for _, evt := range data.Item.History {
		mapped, err := mapProductEvent(evt)
		if err != nil {
			return domain.ProductDetail{}, fmt.Errorf("%s: %w", op, err)
		}
		detail.History = append(detail.History, mapped)
	}
	return detail, nil
}

// MapWatchlistEntry maps a watchlist record. Membership is implied by
// presence on the list, so the overlay always has Watching set.
func MapWatchlistEntry(data WatchlistProductData) (domain.WatchlistEntry, error) {
	const op = "catalogapi.MapWatchlistEntry"

	product, err := MapOverviewProduct(data.Product, &ProductUserStateData{
		Watchlist: WatchlistStateData{
			Watching:      ptr(true),
			Notifications: &data.Notifications,
		},
	})
	if err != nil {
		return domain.WatchlistEntry{}, fmt.Errorf("%s: %w", op, err)
	}

	created, err := parseTimestamp(data.Created)
	if err != nil {
		return domain.WatchlistEntry{}, fmt.Errorf("%s: created: %w", op, err)
	}
	updated, err := parseTimestamp(data.Updated)
	if err != nil {
		return domain.WatchlistEntry{}, fmt.Errorf("%s: updated: %w", op, err)
	}

	return domain.WatchlistEntry{
		Product:              product,
		NotificationsEnabled: data.Notifications,
		Created:              created,
		Updated:              updated,
	}, nil
}

func MapAPIError(data APIErrorData) domain.APIError {
	e := domain.APIError{
		Status:    data.Status,
		Title:     data.Title,
		ErrorCode: data.Error,
		Detail:    deref(data.Detail),
	}
	if data.Source != nil {
		e.Source = &domain.APIErrorSource{
			Field:      data.Source.Field,
			SourceType: data.Source.SourceType,
		}
	}
	return e
}

func mapProductEvent(data GetProductEventData) (domain.ProductEvent, error) {
	const op = "catalogapi.mapProductEvent"

	ts, err := parseTimestamp(data.Timestamp)
	if err != nil {
		return domain.ProductEvent{}, fmt.Errorf("%s: %w", op, err)
	}

	return domain.ProductEvent{
		EventType:      data.EventType,
		ProductID:      data.ProductID,
		EventID:        data.EventID,
		ShopID:         data.ShopID,
		ShopsProductID: data.ShopsProductID,
		Payload:        mapEventPayload(data.Payload),
		Timestamp:      ts,
	}, nil
}

// mapEventPayload discriminates the payload variant by field presence.
// An unrecognizable payload degrades to a created event with unknown
// state rather than failing the whole history.
func mapEventPayload(p EventPayloadData) domain.EventPayload {
	switch {
	case p.State != nil && p.OldState == nil && p.NewState == nil:
		return domain.CreatedPayload{
			State: domain.ParseProductState(*p.State),
			Price: mapPrice(p.Price),
		}
	case p.OldState != nil && p.NewState != nil:
		return domain.StateChangedPayload{
			OldState: domain.ParseProductState(*p.OldState),
			NewState: domain.ParseProductState(*p.NewState),
		}
	case p.OldPrice != nil && p.NewPrice != nil:
		return domain.PriceChangedPayload{
			OldPrice: domain.NewPrice(p.OldPrice.Amount, p.OldPrice.Currency),
			NewPrice: domain.NewPrice(p.NewPrice.Amount, p.NewPrice.Currency),
		}
	case p.NewPrice != nil:
		return domain.PriceDiscoveredPayload{
			NewPrice: domain.NewPrice(p.NewPrice.Amount, p.NewPrice.Currency),
		}
	case p.OldPrice != nil:
		return domain.PriceRemovedPayload{
			OldPrice: domain.NewPrice(p.OldPrice.Amount, p.OldPrice.Currency),
		}
	default:
		return domain.CreatedPayload{State: domain.StateUnknown}
	}
}

// mapImages drops entries whose URL fails validation, preserving the
// relative order of the survivors.
func mapImages(data []ProductImageData) []domain.ProductImage {
	var images []domain.ProductImage
	for _, img := range data {
		mapped, ok := domain.NewProductImage(img.URL, deref(img.ProhibitedContent))
		if !ok {
			continue
		}
		images = append(images, mapped)
	}
	return images
}

func mapPrice(data *PriceData) *domain.Price {
	if data == nil {
		return nil
	}
	p := domain.NewPrice(data.Amount, data.Currency)
	return &p
}

func parseTimestamp(raw string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("%q: %w", raw, domain.ErrMalformedTimestamp)
	}
	return t, nil
}

// The listing's own shop URL is partner data: a broken one degrades to
// "no link" instead of failing the record.
func parseLenientURL(raw string) *url.URL {
	u, err := url.Parse(raw)
	if err != nil || !u.IsAbs() || u.Host == "" {
		return nil
	}
	return u
}

func deref[T any](p *T) (v T) {
	if p != nil {
		v = *p
	}
	return v
}

func ptr[T any](v T) *T {
	return &v
}
