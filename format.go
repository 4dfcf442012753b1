package moneyfmt

import (
	"errors"
	"fmt"
	"strings"
)

// Formatter formats numbers as currency using locale and currency data.
// The zero value uses [DefaultLocales] and [DefaultCurrencies].
// Formatter is safe for concurrent use by multiple goroutines as long as
// its sources are.
type Formatter struct {
	Locales    LocaleSource
	Currencies CurrencySource
}

var defaultFormatter Formatter

func (f *Formatter) locales() LocaleSource {
	if f == nil || f.Locales == nil {
		return DefaultLocales
	}
	return f.Locales
}

func (f *Formatter) currencies() CurrencySource {
	if f == nil || f.Currencies == nil {
		return DefaultCurrencies
	}
	return f.Currencies
}

// FormatCurrency is like [Formatter.FormatCurrency] with the built-in
// locale and currency data.
func FormatCurrency(value Number, locale, currency, currencyCode, digitsInfo string) (string, error) {
	return defaultFormatter.FormatCurrency(value, locale, currency, currencyCode, digitsInfo)
}

// FormatCurrency formats a number as currency using locale rules.
//
// Where:
//   - value is the number to format, it is never modified;
//   - locale is a BCP 47 language tag, such as "en-US" or "de-CH";
//   - currency is the text shown in place of the currency sign of the locale
//     pattern, such as "$", "USD" or "";
//   - currencyCode is the [ISO 4217] code that determines the number of
//     fraction digits, such as "USD" (2 digits) or "JPY" (0 digits);
//   - digitsInfo optionally overrides the number of digits, see [ParseDigitsInfo].
//
// FormatCurrency returns an error if:
//   - the locale is unknown;
//   - the locale pattern is invalid;
//   - the digits info is invalid;
//   - the minimum number of fraction digits exceeds the maximum.
//
// [ISO 4217]: https://en.wikipedia.org/wiki/ISO_4217
func (f *Formatter) FormatCurrency(value Number, locale, currency, currencyCode, digitsInfo string) (string, error) {
	if value == nil {
		return "", fmt.Errorf("formatting currency: %w", errNilNumber)
	}
	loc, err := f.locales().Locale(locale)
	if err != nil {
		return "", fmt.Errorf("formatting currency: %w", err)
	}
	p, err := ParsePattern(loc.CurrencyPattern, loc.Symbol(MinusSign))
	if err != nil {
		return "", fmt.Errorf("formatting currency: %w", err)
	}

	digits := f.currencies().FractionDigits(currencyCode)
	p.MinFrac = digits
	p.MaxFrac = digits

	sym := symbols{
		group:       loc.Symbol(CurrencyGroup),
		decimal:     loc.Symbol(CurrencyDecimal),
		exponential: loc.Symbol(Exponential),
	}
	s, err := renderNumber(value, p, sym, digitsInfo)
	if err != nil {
		return "", fmt.Errorf("formatting currency: %w", err)
	}
	return replaceCurrencySign(s, currency), nil
}

var errNilNumber = errors.New("nil number")

// replaceCurrencySign replaces the first currency sign with the currency
// text and drops the second one, if any.
func replaceCurrencySign(s, currency string) string {
	i := strings.Index(s, currencyChar)
	if i < 0 {
		return s
	}
	head, tail := s[:i], s[i+len(currencyChar):]
	tail = strings.Replace(tail, currencyChar, "", 1)
	return head + currency + tail
}
