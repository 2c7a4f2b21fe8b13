package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseSortField(t *testing.T) {
	assert.Equal(t, SortByPrice, ParseSortField("price"))
	assert.Equal(t, SortByCreationDate, ParseSortField("CREATION_DATE"))
	assert.Equal(t, SortByRelevance, ParseSortField(""))
	assert.Equal(t, SortByRelevance, ParseSortField("POPULARITY"))
}

func TestSortFieldWireValue(t *testing.T) {
	assert.Equal(t, "score", SortByRelevance.WireValue())
	assert.Equal(t, "price", SortByPrice.WireValue())
	assert.Equal(t, "created", SortByCreationDate.WireValue())
	assert.Equal(t, "updated", SortByUpdateDate.WireValue())
}

func TestParseSortOrder(t *testing.T) {
	assert.Equal(t, SortAsc, ParseSortOrder("asc"))
	assert.Equal(t, SortDesc, ParseSortOrder("desc"))
	assert.Equal(t, SortDesc, ParseSortOrder(""))
	assert.Equal(t, SortDesc, ParseSortOrder("sideways"))
}

func TestShopType(t *testing.T) {
	t.Run("WireValue", func(t *testing.T) {
		v, ok := ShopTypeAuctionHouse.WireValue()
		assert.True(t, ok)
		assert.Equal(t, "AUCTION_HOUSE", v)

		_, ok = ShopTypeUnknown.WireValue()
		assert.False(t, ok)
	})

	t.Run("TranslationKey", func(t *testing.T) {
		assert.Equal(t, "shopType.commercialDealer",
			ShopTypeCommercialDealer.TranslationKey())
		assert.Equal(t, "shopType.unknown", ShopTypeUnknown.TranslationKey())
	})
}
