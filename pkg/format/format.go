// Package format renders domain values for display. Locale is always an
// explicit argument; nothing reads or mutates ambient formatting state,
// so every function is pure and safe for concurrent use.
package format

import (
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/antiqora/marketplace/internal/core/domain"
)

// currencySymbols holds the narrow symbols the web app renders.
var currencySymbols = map[domain.Currency]string{
	domain.CurrencyEUR: "€",
	domain.CurrencyGBP: "£",
	domain.CurrencyUSD: "$",
	domain.CurrencyAUD: "AU$",
	domain.CurrencyCAD: "CA$",
	domain.CurrencyNZD: "NZ$",
}

// Price renders a price for the given locale: CLDR digit grouping and
// decimal separator via x/text, symbol placement per language.
//
// Known limitation: the minor-unit amount is divided by 100 across the
// board. A 0- or 3-decimal currency would mis-render, but every member
// of the supported currency set uses 2 decimals.
func Price(p domain.Price, tag language.Tag) string {
	printer := message.NewPrinter(tag)
	amount := printer.Sprintf("%v", number.Decimal(
		float64(p.Amount)/100, number.Scale(2),
	))

	symbol, ok := currencySymbols[p.Currency]
	if !ok {
		symbol = string(p.Currency)
	}

	if symbolPrecedes(tag) {
		if rest, negative := strings.CutPrefix(amount, "-"); negative {
			return "-" + symbol + rest
		}
		return symbol + amount
	}
	return amount + " " + symbol
}

// PriceEstimate renders both bounds independently; an absent bound
// stays absent.
func PriceEstimate(e domain.PriceEstimate, tag language.Tag) (min, max string) {
	if e.Min != nil {
		min = Price(*e.Min, tag)
	}
	if e.Max != nil {
		max = Price(*e.Max, tag)
	}
	return min, max
}

// Date renders the date portion in the locale's day/month order.
func Date(t time.Time, tag language.Tag) string {
	return t.Format(dateLayout(tag))
}

// DateTime renders date and wall-clock time.
func DateTime(t time.Time, tag language.Tag) string {
	return Date(t, tag) + ", " + Clock(t, tag)
}

// Clock renders the wall-clock time, 12-hour for English locales.
func Clock(t time.Time, tag language.Tag) string {
	if base(tag) == "en" {
		return t.Format("03:04 PM")
	}
	return t.Format("15:04")
}

func dateLayout(tag language.Tag) string {
	switch base(tag) {
	case "de":
		return "02.01.2006"
	case "fr", "es":
		return "02/01/2006"
	default:
		return "01/02/2006"
	}
}

// English locales lead with the symbol; the other supported locales
// trail it.
func symbolPrecedes(tag language.Tag) bool {
	return base(tag) == "en"
}

func base(tag language.Tag) string {
	b, _ := tag.Base()
	return b.String()
}
