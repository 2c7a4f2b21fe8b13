package domain

import "strings"

// ShopType classifies the merchant a listing was aggregated from.
type ShopType string

const (
	ShopTypeAuctionHouse     ShopType = "AUCTION_HOUSE"
	ShopTypeCommercialDealer ShopType = "COMMERCIAL_DEALER"
	ShopTypeMarketplace      ShopType = "MARKETPLACE"
	ShopTypeUnknown          ShopType = "UNKNOWN"
)

var ShopTypes = []ShopType{
	ShopTypeAuctionHouse,
	ShopTypeCommercialDealer,
	ShopTypeMarketplace,
	ShopTypeUnknown,
}

func ParseShopType(raw string) ShopType {
	switch t := ShopType(strings.ToUpper(raw)); t {
	case ShopTypeAuctionHouse, ShopTypeCommercialDealer, ShopTypeMarketplace:
		return t
	default:
		return ShopTypeUnknown
	}
}

// WireValue returns the backend spelling. The backend shop-type
// vocabulary has no UNKNOWN member, so ShopTypeUnknown maps to no value.
func (t ShopType) WireValue() (string, bool) {
	switch t {
	case ShopTypeAuctionHouse, ShopTypeCommercialDealer, ShopTypeMarketplace:
		return string(t), true
	default:
		return "", false
	}
}

func (t ShopType) TranslationKey() string {
	switch t {
	case ShopTypeAuctionHouse:
		return "shopType.auctionHouse"
	case ShopTypeCommercialDealer:
		return "shopType.commercialDealer"
	case ShopTypeMarketplace:
		return "shopType.marketplace"
	default:
		return "shopType.unknown"
	}
}
