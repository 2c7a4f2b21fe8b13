// Package searchquery is the bidirectional codec between the typed
// search filter state and URL query parameters.
//
// A field is omitted from the encoded form iff it equals its documented
// default (empty query and bounds, fully-selected multi-selects,
// relevance-descending sort), which keeps shareable URLs minimal; Decode
// reconstructs the default for every absent key. Decode is total: a
// malformed value falls back to the field's default and never fails.
//
// Decode(Encode(x)) == x for every canonical x: de-duplicated
// multi-selects, trimmed text fields and date-only (midnight UTC) date
// bounds.
package searchquery

import (
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/antiqora/marketplace/internal/core/domain"
)

const (
	keyQuery            = "q"
	keyPriceFrom        = "priceFrom"
	keyPriceTo          = "priceTo"
	keyAllowedStates    = "allowedStates"
	keyCreationDateFrom = "creationDateFrom"
	keyCreationDateTo   = "creationDateTo"
	keyUpdateDateFrom   = "updateDateFrom"
	keyUpdateDateTo     = "updateDateTo"
	keyMerchant         = "merchant"
	keyExcludeMerchant  = "excludeMerchant"
	keyOriginYearMin    = "originYearMin"
	keyOriginYearMax    = "originYearMax"
	keyAuthenticity     = "authenticity"
	keyCondition        = "condition"
	keyProvenance       = "provenance"
	keyRestoration      = "restoration"
	keySortField        = "sortField"
	keySortOrder        = "sortOrder"
)

// Date bounds travel date-only so shared URLs are stable across the
// viewer's timezone.
const dateLayout = "2006-01-02"

// Encode serializes args into query parameters, suppressing defaults.
// Multi-valued fields use repeated keys; an intentionally empty
// selection is kept as a single empty value to stay distinguishable
// from an absent (defaulted) key.
func Encode(args domain.SearchFilterArguments) url.Values {
	q := url.Values{}

	if args.Query != "" {
		q.Set(keyQuery, args.Query)
	}

	setInt(q, keyPriceFrom, args.PriceFrom)
	setInt(q, keyPriceTo, args.PriceTo)

	encodeEnumSet(q, keyAllowedStates, args.AllowedStates, domain.ProductStates)

	setDate(q, keyCreationDateFrom, args.CreationDateFrom)
	setDate(q, keyCreationDateTo, args.CreationDateTo)
	setDate(q, keyUpdateDateFrom, args.UpdateDateFrom)
	setDate(q, keyUpdateDateTo, args.UpdateDateTo)

	if args.Merchant != "" {
		q.Set(keyMerchant, args.Merchant)
	}
	if args.ExcludeMerchant != "" {
		q.Set(keyExcludeMerchant, args.ExcludeMerchant)
	}

	setInt(q, keyOriginYearMin, args.OriginYearMin)
	setInt(q, keyOriginYearMax, args.OriginYearMax)

	encodeEnumSet(q, keyAuthenticity, args.Authenticity, domain.Authenticities)
	encodeEnumSet(q, keyCondition, args.Condition, domain.Conditions)
	encodeEnumSet(q, keyProvenance, args.Provenance, domain.Provenances)
	encodeEnumSet(q, keyRestoration, args.Restoration, domain.Restorations)

	if args.SortField != domain.SortByRelevance {
		q.Set(keySortField, string(args.SortField))
	}
	if args.SortOrder != domain.SortDesc {
		q.Set(keySortOrder, string(args.SortOrder))
	}

	return q
}

// Decode reconstructs the filter state from query parameters. Unknown
// members of multi-valued fields are coerced to the enum's UNKNOWN
// member and de-duplicated; malformed scalars fall back to the default.
func Decode(query url.Values) domain.SearchFilterArguments {
	args := domain.DefaultSearchFilters()

	args.Query = strings.TrimSpace(query.Get(keyQuery))

	args.PriceFrom = parseIntValue(query.Get(keyPriceFrom))
	args.PriceTo = parseIntValue(query.Get(keyPriceTo))

	args.AllowedStates = decodeEnumSet(
		query, keyAllowedStates, args.AllowedStates, domain.ParseProductState,
	)

	args.CreationDateFrom = parseDateValue(query.Get(keyCreationDateFrom))
	args.CreationDateTo = parseDateValue(query.Get(keyCreationDateTo))
	args.UpdateDateFrom = parseDateValue(query.Get(keyUpdateDateFrom))
	args.UpdateDateTo = parseDateValue(query.Get(keyUpdateDateTo))

	args.Merchant = strings.TrimSpace(query.Get(keyMerchant))
	args.ExcludeMerchant = strings.TrimSpace(query.Get(keyExcludeMerchant))

	args.OriginYearMin = parseIntValue(query.Get(keyOriginYearMin))
	args.OriginYearMax = parseIntValue(query.Get(keyOriginYearMax))

	args.Authenticity = decodeEnumSet(
		query, keyAuthenticity, args.Authenticity, domain.ParseAuthenticity,
	)
	args.Condition = decodeEnumSet(
		query, keyCondition, args.Condition, domain.ParseCondition,
	)
	args.Provenance = decodeEnumSet(
		query, keyProvenance, args.Provenance, domain.ParseProvenance,
	)
	args.Restoration = decodeEnumSet(
		query, keyRestoration, args.Restoration, domain.ParseRestoration,
	)

	args.SortField = domain.ParseSortField(query.Get(keySortField))
	args.SortOrder = domain.ParseSortOrder(query.Get(keySortOrder))

	return args
}

func encodeEnumSet[T ~string](q url.Values, key string, selected, all []T) {
	if sameSet(selected, all) {
		return
	}
	if len(selected) == 0 {
		q.Set(key, "")
		return
	}
	for _, v := range selected {
		q.Add(key, string(v))
	}
}

func decodeEnumSet[T comparable](
	query url.Values, key string, def []T, parse func(string) T,
) []T {
	raw, present := query[key]
	if !present {
		return def
	}
	if len(raw) == 1 && raw[0] == "" {
		return []T{}
	}

	out := make([]T, 0, len(raw))
	seen := make(map[T]struct{}, len(raw))
	for _, v := range raw {
		m := parse(v)
		if _, dup := seen[m]; dup {
			continue
		}
		seen[m] = struct{}{}
		out = append(out, m)
	}
	return out
}

// sameSet compares ignoring order; both sides are assumed de-duplicated.
func sameSet[T comparable](a, b []T) bool {
	if len(a) != len(b) {
		return false
	}
	members := make(map[T]struct{}, len(b))
	for _, v := range b {
		members[v] = struct{}{}
	}
	for _, v := range a {
		if _, ok := members[v]; !ok {
			return false
		}
	}
	return true
}

func setInt(q url.Values, key string, v *int) {
	if v != nil {
		q.Set(key, strconv.Itoa(*v))
	}
}

func setDate(q url.Values, key string, t *time.Time) {
	if t != nil {
		q.Set(key, t.Format(dateLayout))
	}
}

func parseIntValue(raw string) *int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return nil
	}
	return &n
}

func parseDateValue(raw string) *time.Time {
	t, err := time.Parse(dateLayout, raw)
	if err != nil {
		return nil
	}
	return &t
}
