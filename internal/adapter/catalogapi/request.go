package catalogapi

import (
	"time"

	"github.com/antiqora/marketplace/internal/core/port"
)

// BuildSearchRequest serializes the typed filter state into the backend
// request body. Price bounds convert from major to minor units; span
// objects are only emitted when at least one bound is set; enum slices
// use the backend spellings.
func BuildSearchRequest(q port.SearchQuery) SearchRequestData {
	f := q.Filters

	req := SearchRequestData{
		Language:        q.Language.WireValue(),
		Currency:        q.Currency.WireValue(),
		ProductQuery:    f.Query,
		ShopName:        f.Merchant,
		ShopNameExclude: f.ExcludeMerchant,
		State:           wireValues(f.AllowedStates),
		Authenticity:    wireValues(f.Authenticity),
		Condition:       wireValues(f.Condition),
		Provenance:      wireValues(f.Provenance),
		Restoration:     wireValues(f.Restoration),
	}

	if f.PriceFrom != nil || f.PriceTo != nil {
		req.Price = &Int64SpanData{
			Min: minorUnits(f.PriceFrom),
			Max: minorUnits(f.PriceTo),
		}
	}

	if f.CreationDateFrom != nil || f.CreationDateTo != nil {
		req.Created = &DateSpanData{
			Min: wireTime(f.CreationDateFrom),
			Max: wireTime(f.CreationDateTo),
		}
	}
	if f.UpdateDateFrom != nil || f.UpdateDateTo != nil {
		req.Updated = &DateSpanData{
			Min: wireTime(f.UpdateDateFrom),
			Max: wireTime(f.UpdateDateTo),
		}
	}

	if f.OriginYearMin != nil || f.OriginYearMax != nil {
		req.OriginYear = &IntSpanData{
			Min: f.OriginYearMin,
			Max: f.OriginYearMax,
		}
	}

	return req
}

func wireValues[T interface{ WireValue() string }](vals []T) []string {
	out := make([]string, len(vals))
	for i, v := range vals {
		out[i] = v.WireValue()
	}
	return out
}

func minorUnits(major *int) *int64 {
	if major == nil {
		return nil
	}
	minor := int64(*major) * 100
	return &minor
}

func wireTime(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.UTC().Format(time.RFC3339)
	return &s
}
