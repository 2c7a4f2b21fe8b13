package searchquery_test

import (
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/antiqora/marketplace/internal/core/domain"
	"github.com/antiqora/marketplace/pkg/searchquery"
)

func intPtr(v int) *int { return &v }

func datePtr(year int, month time.Month, day int) *time.Time {
	t := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	return &t
}

func TestEncode(t *testing.T) {
	t.Run("DefaultsProduceEmptyQuery", func(t *testing.T) {
		q := searchquery.Encode(domain.DefaultSearchFilters())
		assert.Empty(t, q)
	})

	t.Run("NonDefaultScalars", func(t *testing.T) {
		args := domain.DefaultSearchFilters()
		args.Query = "art deco lamp"
		args.PriceFrom = intPtr(50)
		args.PriceTo = intPtr(2000)
		args.Merchant = "Galerie Antiqua"
		args.OriginYearMin = intPtr(1880)

		q := searchquery.Encode(args)

		assert.Equal(t, "art deco lamp", q.Get("q"))
		assert.Equal(t, "50", q.Get("priceFrom"))
		assert.Equal(t, "2000", q.Get("priceTo"))
		assert.Equal(t, "Galerie Antiqua", q.Get("merchant"))
		assert.Equal(t, "1880", q.Get("originYearMin"))
		assert.NotContains(t, q, "originYearMax")
		assert.NotContains(t, q, "sortField")
		assert.NotContains(t, q, "sortOrder")
	})

	t.Run("PartialSelectionUsesRepeatedKeys", func(t *testing.T) {
		args := domain.DefaultSearchFilters()
		args.AllowedStates = []domain.ProductState{
			domain.StateListed, domain.StateAvailable,
		}

		q := searchquery.Encode(args)

		assert.Equal(t, []string{"LISTED", "AVAILABLE"}, q["allowedStates"])
	})

	t.Run("FullSelectionIsSuppressedRegardlessOfOrder", func(t *testing.T) {
		args := domain.DefaultSearchFilters()
		reversed := make([]domain.Condition, 0, len(domain.Conditions))
		for i := len(domain.Conditions) - 1; i >= 0; i-- {
			reversed = append(reversed, domain.Conditions[i])
		}
		args.Condition = reversed

		q := searchquery.Encode(args)
		assert.NotContains(t, q, "condition")
	})

	t.Run("EmptySelectionKeepsSentinel", func(t *testing.T) {
		args := domain.DefaultSearchFilters()
		args.Restoration = []domain.Restoration{}

		q := searchquery.Encode(args)
		assert.Equal(t, []string{""}, q["restoration"])
	})

	t.Run("DateBoundsAreDateOnly", func(t *testing.T) {
		args := domain.DefaultSearchFilters()
		args.CreationDateFrom = datePtr(2024, time.March, 5)

		q := searchquery.Encode(args)
		assert.Equal(t, "2024-03-05", q.Get("creationDateFrom"))
	})

	t.Run("NonDefaultSort", func(t *testing.T) {
		args := domain.DefaultSearchFilters()
		args.SortField = domain.SortByPrice
		args.SortOrder = domain.SortAsc

		q := searchquery.Encode(args)
		assert.Equal(t, "PRICE", q.Get("sortField"))
		assert.Equal(t, "ASC", q.Get("sortOrder"))
	})
}

func TestDecode(t *testing.T) {
	t.Run("EmptyQueryYieldsDefaults", func(t *testing.T) {
		args := searchquery.Decode(url.Values{})
		assert.Equal(t, domain.DefaultSearchFilters(), args)
	})

	t.Run("UnknownMembersCoerceAndDeduplicate", func(t *testing.T) {
		q := url.Values{
			"allowedStates": {"LISTED", "AVAILABLE", "FOO"},
		}

		args := searchquery.Decode(q)
		assert.Equal(t, []domain.ProductState{
			domain.StateListed, domain.StateAvailable, domain.StateUnknown,
		}, args.AllowedStates)
	})

	t.Run("DuplicateUnknownsCollapse", func(t *testing.T) {
		q := url.Values{
			"authenticity": {"FOO", "BAR", "ORIGINAL"},
		}

		args := searchquery.Decode(q)
		assert.Equal(t, []domain.Authenticity{
			domain.AuthenticityUnknown, domain.AuthenticityOriginal,
		}, args.Authenticity)
	})

	t.Run("EmptySentinelYieldsEmptySelection", func(t *testing.T) {
		q := url.Values{"condition": {""}}

		args := searchquery.Decode(q)
		assert.Empty(t, args.Condition)
		assert.NotNil(t, args.Condition)
	})

	t.Run("MalformedScalarsFallBack", func(t *testing.T) {
		q := url.Values{
			"priceFrom":        {"abc"},
			"creationDateFrom": {"05.03.2024"},
			"sortField":        {"banana"},
			"sortOrder":        {"up"},
		}

		args := searchquery.Decode(q)
		assert.Nil(t, args.PriceFrom)
		assert.Nil(t, args.CreationDateFrom)
		assert.Equal(t, domain.SortByRelevance, args.SortField)
		assert.Equal(t, domain.SortDesc, args.SortOrder)
	})

	t.Run("TrimsTextFields", func(t *testing.T) {
		q := url.Values{
			"q":        {"  chippendale chair "},
			"merchant": {" Sotheby's "},
		}

		args := searchquery.Decode(q)
		assert.Equal(t, "chippendale chair", args.Query)
		assert.Equal(t, "Sotheby's", args.Merchant)
	})
}

func TestRoundTrip(t *testing.T) {
	t.Run("CanonicalFilterState", func(t *testing.T) {
		args := domain.DefaultSearchFilters()
		args.Query = "louis xvi commode"
		args.PriceFrom = intPtr(500)
		args.PriceTo = intPtr(15000)
		args.AllowedStates = []domain.ProductState{
			domain.StateListed, domain.StateAvailable,
		}
		args.CreationDateFrom = datePtr(2023, time.June, 1)
		args.UpdateDateTo = datePtr(2024, time.January, 31)
		args.Merchant = "Galerie Antiqua"
		args.ExcludeMerchant = "fleamarket"
		args.OriginYearMin = intPtr(1750)
		args.OriginYearMax = intPtr(1800)
		args.Authenticity = []domain.Authenticity{domain.AuthenticityOriginal}
		args.Condition = []domain.Condition{
			domain.ConditionExcellent, domain.ConditionGreat,
		}
		args.SortField = domain.SortByCreationDate
		args.SortOrder = domain.SortAsc

		decoded := searchquery.Decode(searchquery.Encode(args))
		require.Equal(t, args, decoded)
	})

	t.Run("Defaults", func(t *testing.T) {
		args := domain.DefaultSearchFilters()
		decoded := searchquery.Decode(searchquery.Encode(args))
		require.Equal(t, args, decoded)
	})
}
