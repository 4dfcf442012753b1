package moneyfmt

import (
	"fmt"
	"math/big"

	inf "gopkg.in/inf.v0"
)

// infNumber is a [Number] backed by an [inf.Dec].
// The wrapped value is owned by infNumber and never modified.
type infNumber struct {
	d *inf.Dec
}

// FromInf returns a [Number] backed by a copy of d.
// A nil d is treated as zero.
func FromInf(d *inf.Dec) Number {
	c := new(inf.Dec)
	if d != nil {
		c.Set(d)
	}
	return infNumber{d: c}
}

// ParseInf converts a string to a [Number] backed by an [inf.Dec].
func ParseInf(s string) (Number, error) {
	d, ok := new(inf.Dec).SetString(s)
	if !ok {
		return nil, fmt.Errorf("parsing decimal: can't convert %q to decimal", s)
	}
	return infNumber{d: d}, nil
}

func (n infNumber) Sign() int {
	return n.d.Sign()
}

func (n infNumber) Digits() Digits {
	// UnscaledBig exposes the internal coefficient
	coef := new(big.Int).Abs(n.d.UnscaledBig())
	return newDigits(coef.String(), int(n.d.Scale()))
}

func (n infNumber) RoundHalfUp(scale int) Number {
	return infNumber{d: new(inf.Dec).Round(n.d, inf.Scale(scale), inf.RoundHalfUp)} //nolint:gosec
}

func (n infNumber) Shift(exp int) Number {
	coef := new(big.Int).Set(n.d.UnscaledBig())
	return infNumber{d: inf.NewDecBig(coef, n.d.Scale()-inf.Scale(exp))} //nolint:gosec
}

func (n infNumber) ExponentAt() int {
	return DefaultExponentAt
}

func (n infNumber) String() string {
	return n.d.String()
}
