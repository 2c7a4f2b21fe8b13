package port

import (
	"context"

	"github.com/antiqora/marketplace/internal/core/domain"
)

// Credentials carries the caller's bearer token, forwarded to the
// catalog API untouched. The zero value means an anonymous caller.
type Credentials struct {
	BearerToken string
}

func (c Credentials) Present() bool {
	return c.BearerToken != ""
}

// SearchQuery is one search page request against the catalog API.
type SearchQuery struct {
	Filters     domain.SearchFilterArguments
	Language    domain.Language
	Currency    domain.Currency
	Size        int
	SearchAfter []any
}

// CatalogGateway is the upstream catalog API seen from the core.
type CatalogGateway interface {
	SearchProducts(ctx context.Context, q SearchQuery, auth Credentials) (domain.SearchResultData, error)
	FetchProduct(ctx context.Context, productID string, lang domain.Language, auth Credentials) (domain.ProductDetail, error)
	FetchWatchlist(ctx context.Context, auth Credentials) ([]domain.WatchlistEntry, error)
}

// ClientEventsProducer publishes client interaction events.
type ClientEventsProducer interface {
	ProduceEvent(ctx context.Context, evt domain.ClientEvent) error
}

// Inbound ports implemented by the core service.

type ProductSearcher interface {
	SearchProducts(ctx context.Context, q SearchQuery, auth Credentials) (domain.SearchResultData, error)
}

type ProductProvider interface {
	GetProduct(ctx context.Context, productID string, lang domain.Language, auth Credentials) (domain.ProductDetail, error)
}

type WatchlistProvider interface {
	GetWatchlist(ctx context.Context, auth Credentials) ([]domain.WatchlistEntry, error)
}

type ClientEventSender interface {
	SendClientEvent(ctx context.Context, evt domain.ClientEvent) error
}
