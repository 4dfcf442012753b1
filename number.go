package moneyfmt

// DefaultExponentAt is the leading-digit exponent from which values are
// rendered in exponential notation, e.g. "$1.00E+21".
const DefaultExponentAt = 21

// Number is an arbitrary-precision decimal value that can be formatted.
//
// Implementations must be immutable: methods return new values and never
// modify the receiver, so the same Number can be formatted any number of
// times, possibly from multiple goroutines.
//
// This package provides implementations for [github.com/govalues/decimal],
// [github.com/shopspring/decimal] and [gopkg.in/inf.v0].
type Number interface {
	// Sign returns -1, 0 or +1.
	Sign() int

	// Digits returns the significant digits of the absolute value.
	Digits() Digits

	// RoundHalfUp returns the value rounded to the given number of digits
	// after the decimal point. Ties are rounded away from zero.
	RoundHalfUp(scale int) Number

	// Shift returns the value multiplied by 10^exp.
	Shift(exp int) Number

	// ExponentAt returns the leading-digit exponent from which the value is
	// rendered in exponential notation.
	ExponentAt() int
}

// Digits is a sequence of decimal digits and the position of the decimal point.
//
// Examples:
//
//	Number     Digits       Exp
//	12345      "12345"      5
//	12.345     "12345"      2
//	12000      "12"         5
//	0.00123    "123"        -2
//	0          ""           0
type Digits struct {
	Digits []byte // ASCII digits, most significant first
	Exp    int    // number of digits before the decimal point, may be <= 0
}

// IsZero reports whether all digits are zero.
func (d Digits) IsZero() bool {
	for _, c := range d.Digits {
		if c != '0' {
			return false
		}
	}
	return true
}

// FracLen returns the number of digits after the decimal point.
// It is negative for integers with trailing zeros, such as 12000.
func (d Digits) FracLen() int {
	return len(d.Digits) - d.Exp
}

// newDigits normalizes the digits of coef / 10^scale, where coef is the
// decimal representation of a non-negative integer.
func newDigits(coef string, scale int) Digits {
	exp := len(coef) - scale
	// Leading zeros
	for len(coef) > 0 && coef[0] == '0' {
		coef = coef[1:]
		exp--
	}
	// Trailing zeros
	for len(coef) > 0 && coef[len(coef)-1] == '0' {
		coef = coef[:len(coef)-1]
	}
	if len(coef) == 0 {
		return Digits{}
	}
	return Digits{Digits: []byte(coef), Exp: exp}
}

// plain returns the shortest decimal representation of a number,
// e.g. "-0.05" or "12000".
func plain(n Number) string {
	d := n.Digits()
	if len(d.Digits) == 0 {
		return "0"
	}
	buf := make([]byte, 0, len(d.Digits)+max(d.Exp, 0)+max(-d.Exp, 0)+3)
	if n.Sign() < 0 {
		buf = append(buf, '-')
	}
	switch {
	case d.Exp <= 0:
		buf = append(buf, '0', '.')
		for range -d.Exp {
			buf = append(buf, '0')
		}
		buf = append(buf, d.Digits...)
	case d.Exp >= len(d.Digits):
		buf = append(buf, d.Digits...)
		for range d.Exp - len(d.Digits) {
			buf = append(buf, '0')
		}
	default:
		buf = append(buf, d.Digits[:d.Exp]...)
		buf = append(buf, '.')
		buf = append(buf, d.Digits[d.Exp:]...)
	}
	return string(buf)
}
