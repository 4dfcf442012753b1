package moneyfmt

import (
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// defaultFractionDigits is used for codes without currency data.
const defaultFractionDigits = 2

// SymbolWidth selects between the standard and the narrow currency symbol.
type SymbolWidth int

const (
	Wide   SymbolWidth = iota // e.g. "CA$"
	Narrow                    // e.g. "$"
)

func (w SymbolWidth) String() string {
	if w == Narrow {
		return "narrow"
	}
	return "wide"
}

// CurrencySource provides currency data by ISO 4217 code.
type CurrencySource interface {
	// FractionDigits returns the standard number of fraction digits of the currency.
	FractionDigits(code string) int

	// Symbol returns the currency symbol in the given locale.
	Symbol(code string, width SymbolWidth, locale string) string
}

// isoCurrencies is the built-in [CurrencySource].
// Fraction digits and symbols come from CLDR; the ISO 4217 table is only
// consulted for codes CLDR does not know.
type isoCurrencies struct{}

// DefaultCurrencies is the built-in [CurrencySource].
// It is safe for concurrent use by multiple goroutines.
var DefaultCurrencies CurrencySource = isoCurrencies{}

// FractionDigits returns the CLDR standard digits, e.g. 0 for IQD, whose
// ISO 4217 scale is 3. It returns 2 for unknown codes.
func (isoCurrencies) FractionDigits(code string) int {
	if u, err := currency.ParseISO(code); err == nil {
		scale, _ := currency.Standard.Rounding(u)
		return scale
	}
	if c, err := ParseCurr(code); err == nil {
		return c.Scale()
	}
	return defaultFractionDigits
}

// Symbol returns the code itself for unknown codes.
func (isoCurrencies) Symbol(code string, width SymbolWidth, locale string) string {
	u, err := currency.ParseISO(code)
	if err != nil {
		return code
	}
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.AmericanEnglish
	}
	p := message.NewPrinter(tag)
	if width == Narrow {
		return p.Sprint(currency.NarrowSymbol(u))
	}
	return p.Sprint(currency.Symbol(u))
}
