package httphandler

import (
	"time"

	"golang.org/x/text/language"

	"github.com/antiqora/marketplace/internal/core/domain"
	"github.com/antiqora/marketplace/pkg/format"
)

func toProductView(p domain.OverviewProduct, tag language.Tag) ProductView {
	v := ProductView{
		ProductID:      p.ProductID,
		ShopID:         p.ShopID,
		ShopsProductID: p.ShopsProductID,
		ShopName:       p.ShopName,
		Title:          p.Title,
		Description:    p.Description,
		Price:          toPriceView(p.Price, tag),
		State:          p.State.WireValue(),
		Created:        p.Created.UTC().Format(time.RFC3339),
		CreatedLabel:   format.Date(p.Created, tag),
		Updated:        p.Updated.UTC().Format(time.RFC3339),
		UpdatedLabel:   format.Date(p.Updated, tag),
		OriginYear:     p.OriginYear,
		OriginYearMin:  p.OriginYearMin,
		OriginYearMax:  p.OriginYearMax,
		Authenticity:   toQualityView(p.Authenticity),
		Condition:      toQualityView(p.Condition),
		Provenance:     toQualityView(p.Provenance),
		Restoration:    toQualityView(p.Restoration),
	}

	if wire, ok := p.ShopType.WireValue(); ok {
		v.ShopType = wire
		v.ShopTypeLabel = p.ShopType.TranslationKey()
	}

	if p.PriceEstimate != nil {
		v.PriceEstimate = &PriceEstimateView{
			Min: toPriceView(p.PriceEstimate.Min, tag),
			Max: toPriceView(p.PriceEstimate.Max, tag),
		}
	}

	if p.URL != nil {
		v.URL = p.URL.String()
	}

	for _, img := range p.Images {
		v.Images = append(v.Images, ImageView{
			URL:               img.URL.String(),
			ProhibitedContent: img.ProhibitedContent.WireValue(),
		})
	}

	if p.UserData != nil {
		v.UserData = &UserDataView{
			Watching:             p.UserData.Watching,
			NotificationsEnabled: p.UserData.NotificationsEnabled,
		}
	}

	return v
}

func toProductDetailView(d domain.ProductDetail, tag language.Tag) ProductDetailView {
	v := ProductDetailView{ProductView: toProductView(d.OverviewProduct, tag)}
	for _, evt := range d.History {
		v.History = append(v.History, toProductEventView(evt, tag))
	}
	return v
}

func toProductEventView(evt domain.ProductEvent, tag language.Tag) ProductEventView {
	return ProductEventView{
		EventType:      evt.EventType,
		Timestamp:      evt.Timestamp.UTC().Format(time.RFC3339),
		TimestampLabel: format.DateTime(evt.Timestamp, tag),
		Payload:        toEventPayloadView(evt.Payload, tag),
	}
}

func toEventPayloadView(p domain.EventPayload, tag language.Tag) (v EventPayloadView) {
	switch p := p.(type) {
	case domain.CreatedPayload:
		v.State = p.State.WireValue()
		v.Price = toPriceView(p.Price, tag)
	case domain.StateChangedPayload:
		v.OldState = p.OldState.WireValue()
		v.NewState = p.NewState.WireValue()
	case domain.PriceChangedPayload:
		v.OldPrice = toPriceView(&p.OldPrice, tag)
		v.NewPrice = toPriceView(&p.NewPrice, tag)
	case domain.PriceDiscoveredPayload:
		v.NewPrice = toPriceView(&p.NewPrice, tag)
	case domain.PriceRemovedPayload:
		v.OldPrice = toPriceView(&p.OldPrice, tag)
	}
	return v
}

func toWatchlistEntryView(e domain.WatchlistEntry, tag language.Tag) WatchlistEntryView {
	return WatchlistEntryView{
		Product:              toProductView(e.Product, tag),
		NotificationsEnabled: e.NotificationsEnabled,
		Created:              e.Created.UTC().Format(time.RFC3339),
		CreatedLabel:         format.Date(e.Created, tag),
		Updated:              e.Updated.UTC().Format(time.RFC3339),
		UpdatedLabel:         format.Date(e.Updated, tag),
	}
}

func toPriceView(p *domain.Price, tag language.Tag) *PriceView {
	if p == nil {
		return nil
	}
	return &PriceView{
		Amount:    p.Amount,
		Currency:  string(p.Currency),
		Formatted: format.Price(*p, tag),
	}
}

func toQualityView(v interface {
	WireValue() string
	TranslationKey() string
}) QualityView {
	return QualityView{Value: v.WireValue(), TranslationKey: v.TranslationKey()}
}
