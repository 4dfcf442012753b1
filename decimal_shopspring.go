package moneyfmt

import (
	"fmt"

	sdecimal "github.com/shopspring/decimal"
)

// shopspringNumber is a [Number] backed by a shopspring decimal.
type shopspringNumber struct {
	d sdecimal.Decimal
}

// FromShopspring returns a [Number] backed by a [github.com/shopspring/decimal.Decimal].
func FromShopspring(d sdecimal.Decimal) Number {
	return shopspringNumber{d: d}
}

// ParseShopspring converts a string to a [Number] backed by a
// [github.com/shopspring/decimal.Decimal].
// The string may use scientific notation, e.g. "1.5e3".
func ParseShopspring(s string) (Number, error) {
	d, err := sdecimal.NewFromString(s)
	if err != nil {
		return nil, fmt.Errorf("parsing decimal: %w", err)
	}
	return shopspringNumber{d: d}, nil
}

func (n shopspringNumber) Sign() int {
	return n.d.Sign()
}

func (n shopspringNumber) Digits() Digits {
	// Coefficient returns a copy
	coef := n.d.Coefficient()
	coef.Abs(coef)
	return newDigits(coef.String(), -int(n.d.Exponent()))
}

func (n shopspringNumber) RoundHalfUp(scale int) Number {
	return shopspringNumber{d: n.d.Round(int32(scale))} //nolint:gosec
}

func (n shopspringNumber) Shift(exp int) Number {
	return shopspringNumber{d: n.d.Shift(int32(exp))} //nolint:gosec
}

func (n shopspringNumber) ExponentAt() int {
	return DefaultExponentAt
}

func (n shopspringNumber) String() string {
	return n.d.String()
}
