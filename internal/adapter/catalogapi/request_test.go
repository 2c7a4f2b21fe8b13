package catalogapi

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/antiqora/marketplace/internal/core/domain"
	"github.com/antiqora/marketplace/internal/core/port"
)

func TestBuildSearchRequest(t *testing.T) {
	t.Run("PriceBoundsConvertToMinorUnits", func(t *testing.T) {
		filters := domain.DefaultSearchFilters()
		from, to := 50, 2000
		filters.PriceFrom = &from
		filters.PriceTo = &to

		req := BuildSearchRequest(port.SearchQuery{
			Filters:  filters,
			Language: domain.LanguageDE,
			Currency: domain.CurrencyEUR,
		})

		require.NotNil(t, req.Price)
		assert.Equal(t, int64(5000), *req.Price.Min)
		assert.Equal(t, int64(200000), *req.Price.Max)
	})

	t.Run("SpansSuppressedWhenUnbounded", func(t *testing.T) {
		req := BuildSearchRequest(port.SearchQuery{
			Filters: domain.DefaultSearchFilters(),
		})

		assert.Nil(t, req.Price)
		assert.Nil(t, req.Created)
		assert.Nil(t, req.Updated)
		assert.Nil(t, req.OriginYear)
	})

	t.Run("OneSidedSpan", func(t *testing.T) {
		filters := domain.DefaultSearchFilters()
		min := 1750
		filters.OriginYearMin = &min

		req := BuildSearchRequest(port.SearchQuery{Filters: filters})

		require.NotNil(t, req.OriginYear)
		assert.Equal(t, 1750, *req.OriginYear.Min)
		assert.Nil(t, req.OriginYear.Max)
	})

	t.Run("DateBoundsAreRFC3339UTC", func(t *testing.T) {
		filters := domain.DefaultSearchFilters()
		from := time.Date(2024, time.March, 5, 0, 0, 0, 0, time.UTC)
		filters.CreationDateFrom = &from

		req := BuildSearchRequest(port.SearchQuery{Filters: filters})

		require.NotNil(t, req.Created)
		require.NotNil(t, req.Created.Min)
		assert.Equal(t, "2024-03-05T00:00:00Z", *req.Created.Min)
		assert.Nil(t, req.Created.Max)
	})

	t.Run("EnumsUseWireSpellings", func(t *testing.T) {
		filters := domain.DefaultSearchFilters()
		filters.AllowedStates = []domain.ProductState{
			domain.StateListed, domain.StateUnknown,
		}
		filters.Condition = []domain.Condition{domain.ConditionExcellent}

		req := BuildSearchRequest(port.SearchQuery{
			Filters:  filters,
			Language: domain.LanguageFR,
			Currency: domain.CurrencyGBP,
		})

		assert.Equal(t, "fr", req.Language)
		assert.Equal(t, "GBP", req.Currency)
		assert.Equal(t, []string{"LISTED", "UNKNOWN"}, req.State)
		assert.Equal(t, []string{"EXCELLENT"}, req.Condition)
	})

	t.Run("MerchantFilters", func(t *testing.T) {
		filters := domain.DefaultSearchFilters()
		filters.Query = "empire clock"
		filters.Merchant = "include-me"
		filters.ExcludeMerchant = "not-me"

		req := BuildSearchRequest(port.SearchQuery{Filters: filters})

		assert.Equal(t, "empire clock", req.ProductQuery)
		assert.Equal(t, "include-me", req.ShopName)
		assert.Equal(t, "not-me", req.ShopNameExclude)
	})
}
