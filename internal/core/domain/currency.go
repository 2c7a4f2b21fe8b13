package domain

import "strings"

// Currency is the closed set of currencies the aggregator quotes in.
// Unlike the other enums it falls back to EUR, the platform's base
// currency, instead of an UNKNOWN member.
type Currency string

const (
	CurrencyEUR Currency = "EUR"
	CurrencyGBP Currency = "GBP"
	CurrencyUSD Currency = "USD"
	CurrencyAUD Currency = "AUD"
	CurrencyCAD Currency = "CAD"
	CurrencyNZD Currency = "NZD"
)

var Currencies = []Currency{
	CurrencyEUR,
	CurrencyGBP,
	CurrencyUSD,
	CurrencyAUD,
	CurrencyCAD,
	CurrencyNZD,
}

func ParseCurrency(raw string) Currency {
	switch c := Currency(strings.ToUpper(raw)); c {
	case CurrencyEUR, CurrencyGBP, CurrencyUSD,
		CurrencyAUD, CurrencyCAD, CurrencyNZD:
		return c
	default:
		return CurrencyEUR
	}
}

func (c Currency) WireValue() string {
	switch c {
	case CurrencyGBP, CurrencyUSD, CurrencyAUD, CurrencyCAD, CurrencyNZD:
		return string(c)
	default:
		return string(CurrencyEUR)
	}
}

// Language is the interface language, lower-cased on the wire.
type Language string

const (
	LanguageDE Language = "de"
	LanguageEN Language = "en"
	LanguageFR Language = "fr"
	LanguageES Language = "es"
)

var Languages = []Language{LanguageDE, LanguageEN, LanguageFR, LanguageES}

func ParseLanguage(raw string) Language {
	switch l := Language(strings.ToLower(raw)); l {
	case LanguageDE, LanguageEN, LanguageFR, LanguageES:
		return l
	default:
		return LanguageEN
	}
}

func (l Language) WireValue() string {
	switch l {
	case LanguageDE, LanguageFR, LanguageES:
		return string(l)
	default:
		return string(LanguageEN)
	}
}
