package moneyfmt

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/govalues/decimal"
	"golang.org/x/text/language"
)

var errNoNumber = errors.New("no number")

// Amount type represents a monetary amount: a [Number] in a [Currency].
// Its zero value corresponds to "XXX 0", where [XXX] indicates an unknown currency.
// Amount is designed to be safe for concurrent use by multiple goroutines.
type Amount struct {
	curr  Currency // ISO 4217 currency
	value Number   // monetary value
}

// NewAmount returns an amount of the given currency.
//
// NewAmount returns an error if:
//   - the currency code is not valid;
//   - the value is nil.
func NewAmount(curr string, value Number) (Amount, error) {
	c, err := ParseCurr(curr)
	if err != nil {
		return Amount{}, fmt.Errorf("parsing currency: %w", err)
	}
	if value == nil {
		return Amount{}, fmt.Errorf("creating amount: %w", errNoNumber)
	}
	return Amount{curr: c, value: value}, nil
}

// MustNewAmount is like [NewAmount] but panics if the amount cannot be constructed.
// It simplifies safe initialization of global variables holding amounts.
func MustNewAmount(curr string, value Number) Amount {
	a, err := NewAmount(curr, value)
	if err != nil {
		panic(fmt.Sprintf("NewAmount(%q, %v) failed: %v", curr, value, err))
	}
	return a
}

// ParseAmount converts currency and decimal strings to an amount.
// The decimal is parsed with [ParseShopspring], so it is not limited in precision.
// See also constructors [ParseCurr] and [NewAmount].
func ParseAmount(curr, amount string) (Amount, error) {
	n, err := ParseShopspring(amount)
	if err != nil {
		return Amount{}, err
	}
	return NewAmount(curr, n)
}

// MustParseAmount is like [ParseAmount] but panics if any of the strings cannot be parsed.
// This function simplifies safe initialization of global variables holding amounts.
func MustParseAmount(curr, amount string) Amount {
	a, err := ParseAmount(curr, amount)
	if err != nil {
		panic(fmt.Sprintf("ParseAmount(%q, %q) failed: %v", curr, amount, err))
	}
	return a
}

// Curr returns the currency of the amount.
func (a Amount) Curr() Currency {
	return a.curr
}

// Number returns the numeric value of the amount.
func (a Amount) Number() Number {
	if a.value == nil {
		return FromGovalues(decimal.Decimal{})
	}
	return a.value
}

// Sign returns:
//
//	-1 if a < 0
//	 0 if a = 0
//	+1 if a > 0
func (a Amount) Sign() int {
	return a.Number().Sign()
}

// IsZero returns true if a = 0.
func (a Amount) IsZero() bool {
	return a.Sign() == 0
}

// String implements the [fmt.Stringer] interface and returns a
// locale-independent representation of an amount, such as "USD 5.1234".
// The value has at least as many fraction digits as the scale of the currency.
// See also methods [Amount.Localize], [Amount.Format].
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (a Amount) String() string {
	n := a.Number()
	s := plain(n)
	// Trailing zeros
	if pad := a.Curr().Scale() - max(n.Digits().FracLen(), 0); pad > 0 {
		if !strings.Contains(s, ".") {
			s += "."
		}
		s += strings.Repeat("0", pad)
	}
	return a.Curr().Code() + " " + s
}

// Localize formats the amount with [FormatCurrency] using the built-in data.
// The display is one of [DisplayCode], [DisplaySymbol], [DisplaySymbolNarrow],
// or a string to use verbatim in place of the currency sign.
func (a Amount) Localize(locale, display, digitsInfo string) (string, error) {
	code := a.Curr().Code()
	curr := displayText(DefaultCurrencies, code, display, locale)
	return FormatCurrency(a.Number(), locale, curr, code, digitsInfo)
}

// Format implements the [fmt.Formatter] interface.
// The following [format verbs] are available:
//
//	| Verb   | Example     | Description                   |
//	| ------ | ----------- | ----------------------------- |
//	| %s, %v | $5.12       | Localized amount              |
//	| %q     | "$5.12"     | Quoted localized amount       |
//	| %c     | USD         | Currency                      |
//
// The amount is localized in the language of the [message.Printer] that
// prints it, or in "en-US" when printed with the [fmt] package.
// The '-' format flag can be used with all verbs.
//
// [format verbs]: https://pkg.go.dev/fmt#hdr-Printing
// [fmt.Formatter]: https://pkg.go.dev/fmt#Formatter
// [message.Printer]: https://pkg.go.dev/golang.org/x/text/message#Printer
func (a Amount) Format(state fmt.State, verb rune) {
	locale := defaultLocale
	if l, ok := state.(interface{ Language() language.Tag }); ok {
		locale = l.Language().String()
	}

	var text string
	switch verb {
	case 'c', 'C':
		text = a.Curr().Code()
	default:
		s, err := a.Localize(locale, DisplaySymbol, "")
		if err != nil {
			s = a.String()
		}
		text = s
	}
	if verb == 'q' || verb == 'Q' {
		text = `"` + text + `"`
	}

	//nolint:errcheck
	switch verb {
	case 'q', 'Q', 's', 'S', 'v', 'V', 'c', 'C':
		writePadded(state, text)
	default:
		state.Write([]byte("%!"))
		state.Write([]byte{byte(verb)})
		state.Write([]byte("(moneyfmt.Amount="))
		state.Write([]byte(a.String()))
		state.Write([]byte(")"))
	}
}

// writePadded writes text padded with spaces to the width of the state.
// The '-' flag pads on the right.
func writePadded(state fmt.State, text string) {
	if w, ok := state.Width(); ok {
		if n := w - utf8.RuneCountInString(text); n > 0 {
			if state.Flag('-') {
				text += strings.Repeat(" ", n)
			} else {
				text = strings.Repeat(" ", n) + text
			}
		}
	}
	//nolint:errcheck
	state.Write([]byte(text))
}
