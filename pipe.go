package moneyfmt

import (
	"fmt"
	"log/slog"
	"math"
	"strconv"

	"github.com/govalues/decimal"
	sdecimal "github.com/shopspring/decimal"
	"github.com/zeebo/errs"
	inf "gopkg.in/inf.v0"
)

// Display modes of the currency indicator.
// Any other string is shown verbatim in place of the currency sign;
// an empty string suppresses it.
const (
	DisplayCode         = "code"          // e.g. "USD"
	DisplaySymbol       = "symbol"        // e.g. "CA$"
	DisplaySymbolNarrow = "symbol-narrow" // e.g. "$"
)

const (
	defaultLocale       = "en-US"
	defaultCurrencyCode = "USD"
	pipeName            = "CurrencyPipe"
)

// ErrInvalidArgument is the error class of values that a [Pipe] cannot format.
var ErrInvalidArgument = errs.Class("invalid argument")

// Parser converts a string to a [Number].
type Parser func(string) (Number, error)

// Pipe adapts [Formatter.FormatCurrency] to loosely typed input,
// such as values coming from templates or user interfaces.
// The zero value formats in "en-US" with the built-in data.
type Pipe struct {
	Locale    string       // default locale, "en-US" if empty
	Formatter *Formatter   // nil means the built-in data
	Parse     Parser       // string parser, [ParseShopspring] if nil
	Logger    *slog.Logger // receives deprecation warnings, may be nil
}

// Transform formats a value as currency.
//
// Where:
//   - value is a string, an integer, a float, a [Number], a [decimal.Decimal],
//     a shopspring decimal or an [*inf.Dec];
//   - currencyCode is the ISO 4217 code, "USD" if empty;
//   - display is one of [DisplayCode], [DisplaySymbol] (the default when nil),
//     [DisplaySymbolNarrow], or any other string to use verbatim; the empty
//     string suppresses the currency indicator. The deprecated boolean form
//     selects the symbol (true) or the code (false);
//   - digitsInfo optionally overrides the number of digits, see [ParseDigitsInfo];
//   - locale overrides the default locale of the pipe.
//
// Transform reports ok=false for nil, empty string and NaN values.
// Errors belong to the [ErrInvalidArgument] class.
func (p *Pipe) Transform(value any, currencyCode string, display any, digitsInfo, locale string) (s string, ok bool, err error) {
	if isEmpty(value) {
		return "", false, nil
	}
	if locale == "" {
		locale = p.Locale
	}
	if locale == "" {
		locale = defaultLocale
	}

	mode := DisplaySymbol
	switch d := display.(type) {
	case nil:
	case string:
		mode = d
	case bool:
		p.warn("the symbolDisplay option (third parameter) is now a string instead of a boolean. " +
			`The accepted values are "code", "symbol" or "symbol-narrow".`)
		if !d {
			mode = DisplayCode
		}
	default:
		return "", false, ErrInvalidArgument.New("%s: display %v is not a string", pipeName, display)
	}

	code := currencyCode
	if code == "" {
		code = defaultCurrencyCode
	}
	curr := displayText(p.Formatter.currencies(), code, mode, locale)

	num, err := p.toNumber(value)
	if err != nil {
		return "", false, ErrInvalidArgument.Wrap(fmt.Errorf("%s: %w", pipeName, err))
	}
	s, err = p.Formatter.FormatCurrency(num, locale, curr, code, digitsInfo)
	if err != nil {
		return "", false, ErrInvalidArgument.Wrap(fmt.Errorf("%s: %w", pipeName, err))
	}
	return s, true, nil
}

// displayText returns the text shown in place of the currency sign.
func displayText(src CurrencySource, code, display, locale string) string {
	switch display {
	case DisplayCode:
		return code
	case DisplaySymbol:
		return src.Symbol(code, Wide, locale)
	case DisplaySymbolNarrow:
		return src.Symbol(code, Narrow, locale)
	}
	return display
}

func (p *Pipe) warn(msg string) {
	if p.Logger != nil {
		p.Logger.Warn(msg, "pipe", pipeName)
	}
}

func (p *Pipe) parse(s string) (Number, error) {
	if p.Parse == nil {
		return ParseShopspring(s)
	}
	return p.Parse(s)
}

// toNumber converts a value to a number.
func (p *Pipe) toNumber(value any) (Number, error) {
	switch v := value.(type) {
	case Number:
		return v, nil
	case decimal.Decimal:
		return FromGovalues(v), nil
	case sdecimal.Decimal:
		return FromShopspring(v), nil
	case *inf.Dec:
		return FromInf(v), nil
	case string:
		return p.parse(v)
	case int:
		return p.parse(strconv.FormatInt(int64(v), 10))
	case int8:
		return p.parse(strconv.FormatInt(int64(v), 10))
	case int16:
		return p.parse(strconv.FormatInt(int64(v), 10))
	case int32:
		return p.parse(strconv.FormatInt(int64(v), 10))
	case int64:
		return p.parse(strconv.FormatInt(v, 10))
	case uint:
		return p.parse(strconv.FormatUint(uint64(v), 10))
	case uint8:
		return p.parse(strconv.FormatUint(uint64(v), 10))
	case uint16:
		return p.parse(strconv.FormatUint(uint64(v), 10))
	case uint32:
		return p.parse(strconv.FormatUint(uint64(v), 10))
	case uint64:
		return p.parse(strconv.FormatUint(v, 10))
	case float32:
		return p.parseFloat(float64(v), 32)
	case float64:
		return p.parseFloat(v, 64)
	}
	return nil, fmt.Errorf("%v is not a number", value)
}

func (p *Pipe) parseFloat(f float64, bitSize int) (Number, error) {
	if math.IsInf(f, 0) {
		return nil, fmt.Errorf("%v is not a finite number", f)
	}
	return p.parse(strconv.FormatFloat(f, 'f', -1, bitSize))
}

// isEmpty reports whether the value is nil, an empty string or NaN.
func isEmpty(value any) bool {
	switch v := value.(type) {
	case nil:
		return true
	case string:
		return v == ""
	case float64:
		return math.IsNaN(v)
	case float32:
		return math.IsNaN(float64(v))
	}
	return false
}
