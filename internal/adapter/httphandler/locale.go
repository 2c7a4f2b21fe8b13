package httphandler

import (
	"net/http"
	"strings"

	"golang.org/x/text/language"

	"github.com/antiqora/marketplace/internal/core/domain"
	"github.com/antiqora/marketplace/internal/core/port"
)

// The first entry is the negotiation fallback.
var supportedTags = []language.Tag{
	language.English,
	language.German,
	language.French,
	language.Spanish,
}

var supportedLanguages = []domain.Language{
	domain.LanguageEN,
	domain.LanguageDE,
	domain.LanguageFR,
	domain.LanguageES,
}

var localeMatcher = language.NewMatcher(supportedTags)

type locale struct {
	tag      language.Tag
	language domain.Language
	currency domain.Currency
}

// requestLocale negotiates the interface language and display currency.
// An explicit language query parameter wins over Accept-Language;
// anything unusable falls back to English and EUR.
func requestLocale(r *http.Request) locale {
	raw := r.URL.Query().Get("language")
	if raw == "" {
		raw = r.Header.Get("Accept-Language")
	}

	tags, _, err := language.ParseAcceptLanguage(raw)
	if err != nil {
		tags = nil
	}
	_, idx, _ := localeMatcher.Match(tags...)

	return locale{
		tag:      supportedTags[idx],
		language: supportedLanguages[idx],
		currency: domain.ParseCurrency(r.URL.Query().Get("currency")),
	}
}

func bearerCredentials(r *http.Request) port.Credentials {
	token, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
	if !ok {
		return port.Credentials{}
	}
	return port.Credentials{BearerToken: strings.TrimSpace(token)}
}
