package domain

import (
	"net/url"
	"strings"
)

// ProhibitedContentType flags listings whose imagery is restricted by
// law in some jurisdictions.
type ProhibitedContentType string

const (
	ProhibitedContentNone        ProhibitedContentType = "NONE"
	ProhibitedContentNaziGermany ProhibitedContentType = "NAZI_GERMANY"
	ProhibitedContentUnknown     ProhibitedContentType = "UNKNOWN"
)

func ParseProhibitedContentType(raw string) ProhibitedContentType {
	switch t := ProhibitedContentType(strings.ToUpper(raw)); t {
	case ProhibitedContentNone, ProhibitedContentNaziGermany:
		return t
	default:
		return ProhibitedContentUnknown
	}
}

func (t ProhibitedContentType) WireValue() string {
	switch t {
	case ProhibitedContentNone, ProhibitedContentNaziGermany:
		return string(t)
	default:
		return string(ProhibitedContentUnknown)
	}
}

// ProductImage always carries a well-formed absolute URL.
type ProductImage struct {
	URL               *url.URL
	ProhibitedContent ProhibitedContentType
}

// NewProductImage validates rawURL as an absolute URL. A malformed or
// relative URL yields no image at all rather than a broken reference.
func NewProductImage(rawURL, prohibitedContent string) (ProductImage, bool) {
	u, err := url.Parse(rawURL)
	if err != nil || !u.IsAbs() || u.Host == "" {
		return ProductImage{}, false
	}
	return ProductImage{
		URL:               u,
		ProhibitedContent: ParseProhibitedContentType(prohibitedContent),
	}, true
}
