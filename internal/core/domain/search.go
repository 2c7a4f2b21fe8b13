package domain

import (
	"errors"
	"time"
)

// MinSearchQueryLength is the shortest accepted free-text query.
const MinSearchQueryLength = 3

var ErrQueryTooShort = errors.New("search query is too short")

// SearchFilterArguments is the typed filter/sort state of the search
// page. It is constructed from URL query parameters and serialized back
// on every filter change; see pkg/searchquery for the codec and the
// documented defaults.
type SearchFilterArguments struct {
	Query            string
	PriceFrom        *int
	PriceTo          *int
	AllowedStates    []ProductState
	CreationDateFrom *time.Time
	CreationDateTo   *time.Time
	UpdateDateFrom   *time.Time
	UpdateDateTo     *time.Time
	Merchant         string
	ExcludeMerchant  string
	OriginYearMin    *int
	OriginYearMax    *int
	Authenticity     []Authenticity
	Condition        []Condition
	Provenance       []Provenance
	Restoration      []Restoration
	SortField        SortField
	SortOrder        SortOrder
}

// DefaultSearchFilters returns the documented defaults: empty query and
// bounds, every multi-select fully selected, relevance-descending sort.
func DefaultSearchFilters() SearchFilterArguments {
	return SearchFilterArguments{
		AllowedStates: append([]ProductState(nil), ProductStates...),
		Authenticity:  append([]Authenticity(nil), Authenticities...),
		Condition:     append([]Condition(nil), Conditions...),
		Provenance:    append([]Provenance(nil), Provenances...),
		Restoration:   append([]Restoration(nil), Restorations...),
		SortField:     SortByRelevance,
		SortOrder:     SortDesc,
	}
}

// SearchResultData is one page of mapped search results plus the cursor
// for the next page.
type SearchResultData struct {
	Products    []OverviewProduct
	Size        int
	Total       int
	SearchAfter []any
}
