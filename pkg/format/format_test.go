package format_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"golang.org/x/text/language"

	"github.com/antiqora/marketplace/internal/core/domain"
	"github.com/antiqora/marketplace/pkg/format"
)

func TestPrice(t *testing.T) {
	t.Run("GermanEuro", func(t *testing.T) {
		p := domain.NewPrice(123456, "EUR")
		assert.Equal(t, "1.234,56 €", format.Price(p, language.German))
	})

	t.Run("GermanZeroDollar", func(t *testing.T) {
		p := domain.NewPrice(0, "USD")
		assert.Equal(t, "0,00 $", format.Price(p, language.German))
	})

	t.Run("GermanNegative", func(t *testing.T) {
		p := domain.NewPrice(-123456, "EUR")
		assert.Equal(t, "-1.234,56 €", format.Price(p, language.German))
	})

	t.Run("AmericanEnglish", func(t *testing.T) {
		p := domain.NewPrice(123456, "USD")
		assert.Equal(t, "$1,234.56", format.Price(p, language.AmericanEnglish))
	})

	t.Run("EnglishNegative", func(t *testing.T) {
		p := domain.NewPrice(-500, "GBP")
		assert.Equal(t, "-£5.00", format.Price(p, language.AmericanEnglish))
	})

	t.Run("PrefixedSymbols", func(t *testing.T) {
		assert.Equal(t, "AU$5.00",
			format.Price(domain.NewPrice(500, "AUD"), language.AmericanEnglish))
		assert.Equal(t, "CA$5.00",
			format.Price(domain.NewPrice(500, "CAD"), language.AmericanEnglish))
		assert.Equal(t, "NZ$5.00",
			format.Price(domain.NewPrice(500, "NZD"), language.AmericanEnglish))
	})

	t.Run("FrenchSuffix", func(t *testing.T) {
		p := domain.NewPrice(500, "GBP")
		assert.Equal(t, "5,00 £", format.Price(p, language.French))
	})
}

func TestPriceEstimate(t *testing.T) {
	low := domain.NewPrice(100000, "EUR")
	high := domain.NewPrice(250000, "EUR")

	t.Run("BothBounds", func(t *testing.T) {
		e := domain.PriceEstimate{Min: &low, Max: &high}
		min, max := format.PriceEstimate(e, language.German)
		assert.Equal(t, "1.000,00 €", min)
		assert.Equal(t, "2.500,00 €", max)
	})

	t.Run("OpenLowerBound", func(t *testing.T) {
		e := domain.PriceEstimate{Max: &high}
		min, max := format.PriceEstimate(e, language.German)
		assert.Empty(t, min)
		assert.Equal(t, "2.500,00 €", max)
	})
}

func TestDate(t *testing.T) {
	ts := time.Date(2024, time.March, 5, 14, 30, 0, 0, time.UTC)

	assert.Equal(t, "05.03.2024", format.Date(ts, language.German))
	assert.Equal(t, "05/03/2024", format.Date(ts, language.French))
	assert.Equal(t, "05/03/2024", format.Date(ts, language.Spanish))
	assert.Equal(t, "03/05/2024", format.Date(ts, language.AmericanEnglish))
}

func TestDateTime(t *testing.T) {
	ts := time.Date(2024, time.March, 5, 14, 30, 0, 0, time.UTC)

	assert.Equal(t, "05.03.2024, 14:30", format.DateTime(ts, language.German))
	assert.Equal(t, "03/05/2024, 02:30 PM",
		format.DateTime(ts, language.AmericanEnglish))
}
