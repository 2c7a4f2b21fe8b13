package service

import (
	"context"
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/antiqora/marketplace/internal/core/domain"
	"github.com/antiqora/marketplace/internal/core/port"
)

var _ port.ProductSearcher = (*Service)(nil)
var _ port.ProductProvider = (*Service)(nil)
var _ port.WatchlistProvider = (*Service)(nil)
var _ port.ClientEventSender = (*Service)(nil)

type Service struct {
	catalog   port.CatalogGateway
	eventsOut port.ClientEventsProducer
}

func New(catalog port.CatalogGateway, eventsOut port.ClientEventsProducer) Service {
	return Service{catalog, eventsOut}
}

func (s Service) SearchProducts(
	ctx context.Context, q port.SearchQuery, auth port.Credentials,
) (domain.SearchResultData, error) {
	const op = "Service.SearchProducts"

	if err := ctx.Err(); err != nil {
		return domain.SearchResultData{}, fmt.Errorf("%s: %w", op, err)
	}

	if utf8.RuneCountInString(q.Filters.Query) < domain.MinSearchQueryLength {
		return domain.SearchResultData{}, fmt.Errorf(
			"%s: %w", op, domain.ErrQueryTooShort,
		)
	}

	res, err := s.catalog.SearchProducts(ctx, q, auth)
	if err != nil {
		return domain.SearchResultData{}, fmt.Errorf("%s: %w", op, err)
	}
	return res, nil
}

func (s Service) GetProduct(
	ctx context.Context, productID string, lang domain.Language, auth port.Credentials,
) (domain.ProductDetail, error) {
	const op = "Service.GetProduct"

	if err := ctx.Err(); err != nil {
		return domain.ProductDetail{}, fmt.Errorf("%s: %w", op, err)
	}

	p, err := s.catalog.FetchProduct(ctx, productID, lang, auth)
	if err != nil {
		return domain.ProductDetail{}, fmt.Errorf("%s: %w", op, err)
	}
	return p, nil
}

func (s Service) GetWatchlist(
	ctx context.Context, auth port.Credentials,
) ([]domain.WatchlistEntry, error) {
	const op = "Service.GetWatchlist"

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	entries, err := s.catalog.FetchWatchlist(ctx, auth)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return entries, nil
}

// SendClientEvent normalizes the event type and stamps the event before
// producing it. Unrecognized types survive as UNKNOWN so analytics can
// count them.
func (s Service) SendClientEvent(
	ctx context.Context, evt domain.ClientEvent,
) error {
	const op = "Service.SendClientEvent"

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	evt.EventType = domain.ParseClientEventType(string(evt.EventType))
	if evt.OccurredAt.IsZero() {
		evt.OccurredAt = time.Now().UTC()
	}

	if err := s.eventsOut.ProduceEvent(ctx, evt); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}
