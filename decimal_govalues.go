package moneyfmt

import (
	"fmt"
	"strconv"

	"github.com/govalues/decimal"
)

// govaluesNumber is a [Number] backed by [decimal.Decimal].
type govaluesNumber struct {
	d decimal.Decimal
}

// FromGovalues returns a [Number] backed by a [decimal.Decimal].
// Such numbers have at most [decimal.MaxPrec] significant digits and
// are never rendered in exponential notation.
func FromGovalues(d decimal.Decimal) Number {
	return govaluesNumber{d: d}
}

// ParseGovalues converts a string to a [Number] backed by a [decimal.Decimal].
// See [decimal.Parse] for the accepted formats.
func ParseGovalues(s string) (Number, error) {
	d, err := decimal.Parse(s)
	if err != nil {
		return nil, fmt.Errorf("parsing decimal: %w", err)
	}
	return govaluesNumber{d: d}, nil
}

func (n govaluesNumber) Sign() int {
	return n.d.Sign()
}

func (n govaluesNumber) Digits() Digits {
	return newDigits(strconv.FormatUint(n.d.Coef(), 10), n.d.Scale())
}

// RoundHalfUp is implemented on top of Trunc because [decimal.Decimal.Round]
// rounds half to even.
func (n govaluesNumber) RoundHalfUp(scale int) Number {
	d := n.d
	if scale < 0 || scale >= d.Scale() {
		return n
	}
	t := d.Trunc(scale)
	r, err := d.Sub(t)
	if err != nil {
		panic(fmt.Sprintf("%v.Sub(%v) failed: %v", d, t, err))
	}
	half := decimal.MustNew(5, scale+1)
	if r.CmpAbs(half) >= 0 {
		ulp := decimal.MustNew(1, scale).CopySign(d)
		t, err = t.Add(ulp)
		if err != nil {
			panic(fmt.Sprintf("%v.Add(%v) failed: %v", t, ulp, err))
		}
	}
	return govaluesNumber{d: t}
}

// Shift returns n unchanged if the result does not fit into a [decimal.Decimal].
func (n govaluesNumber) Shift(exp int) Number {
	var e decimal.Decimal
	var err error
	switch {
	case exp == 0:
		return n
	case exp < 0:
		e, err = decimal.New(1, -exp)
	default:
		e, err = decimal.MustNew(10, 0).PowInt(exp)
	}
	if err != nil {
		return n
	}
	d, err := n.d.Mul(e)
	if err != nil {
		return n
	}
	return govaluesNumber{d: d}
}

func (n govaluesNumber) ExponentAt() int {
	return decimal.MaxPrec
}

func (n govaluesNumber) String() string {
	return n.d.String()
}
