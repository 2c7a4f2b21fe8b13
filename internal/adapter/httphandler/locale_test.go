package httphandler

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/text/language"

	"github.com/antiqora/marketplace/internal/core/domain"
)

func TestRequestLocale(t *testing.T) {
	t.Run("AcceptLanguageHeader", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/v1/search", nil)
		req.Header.Set("Accept-Language", "de-DE,de;q=0.9,en;q=0.5")

		loc := requestLocale(req)
		assert.Equal(t, language.German, loc.tag)
		assert.Equal(t, domain.LanguageDE, loc.language)
		assert.Equal(t, domain.CurrencyEUR, loc.currency)
	})

	t.Run("QueryParameterWins", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/v1/search?language=fr&currency=GBP", nil)
		req.Header.Set("Accept-Language", "de")

		loc := requestLocale(req)
		assert.Equal(t, language.French, loc.tag)
		assert.Equal(t, domain.LanguageFR, loc.language)
		assert.Equal(t, domain.CurrencyGBP, loc.currency)
	})

	t.Run("UnsupportedFallsBack", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/v1/search", nil)
		req.Header.Set("Accept-Language", "ja-JP")

		loc := requestLocale(req)
		assert.Equal(t, language.English, loc.tag)
		assert.Equal(t, domain.LanguageEN, loc.language)
	})

	t.Run("NoHints", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/v1/search", nil)

		loc := requestLocale(req)
		assert.Equal(t, language.English, loc.tag)
		assert.Equal(t, domain.LanguageEN, loc.language)
		assert.Equal(t, domain.CurrencyEUR, loc.currency)
	})
}

func TestBearerCredentials(t *testing.T) {
	t.Run("Present", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/v1/watchlist", nil)
		req.Header.Set("Authorization", "Bearer tok-123")

		auth := bearerCredentials(req)
		assert.True(t, auth.Present())
		assert.Equal(t, "tok-123", auth.BearerToken)
	})

	t.Run("WrongScheme", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/v1/watchlist", nil)
		req.Header.Set("Authorization", "Basic dXNlcjpwYXNz")

		assert.False(t, bearerCredentials(req).Present())
	})

	t.Run("Absent", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/v1/watchlist", nil)
		assert.False(t, bearerCredentials(req).Present())
	})
}
