package domain

import "strings"

type SortField string

const (
	SortByRelevance    SortField = "RELEVANCE"
	SortByPrice        SortField = "PRICE"
	SortByCreationDate SortField = "CREATION_DATE"
	SortByUpdateDate   SortField = "UPDATE_DATE"
)

var SortFields = []SortField{
	SortByRelevance,
	SortByPrice,
	SortByCreationDate,
	SortByUpdateDate,
}

// ParseSortField falls back to relevance instead of an UNKNOWN member:
// an unrecognized sort in a shared URL must still yield a usable search.
func ParseSortField(raw string) SortField {
	switch f := SortField(strings.ToUpper(raw)); f {
	case SortByRelevance, SortByPrice, SortByCreationDate, SortByUpdateDate:
		return f
	default:
		return SortByRelevance
	}
}

// WireValue returns the backend sort key.
func (f SortField) WireValue() string {
	switch f {
	case SortByPrice:
		return "price"
	case SortByCreationDate:
		return "created"
	case SortByUpdateDate:
		return "updated"
	default:
		return "score"
	}
}

func (f SortField) LabelKey() string {
	switch f {
	case SortByPrice:
		return "search.sortMode.price"
	case SortByCreationDate:
		return "search.sortMode.creationDate"
	case SortByUpdateDate:
		return "search.sortMode.updateDate"
	default:
		return "search.sortMode.relevance"
	}
}

type SortOrder string

const (
	SortAsc  SortOrder = "ASC"
	SortDesc SortOrder = "DESC"
)

func ParseSortOrder(raw string) SortOrder {
	if strings.ToUpper(raw) == string(SortAsc) {
		return SortAsc
	}
	return SortDesc
}

func (o SortOrder) WireValue() string {
	if o == SortAsc {
		return "asc"
	}
	return "desc"
}
