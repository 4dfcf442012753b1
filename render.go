package moneyfmt

import (
	"strconv"
	"strings"
)

// symbols holds the locale symbols used by renderNumber.
type symbols struct {
	group       string
	decimal     string
	exponential string
}

// renderNumber formats n according to the pattern.
// If digitsInfo is not empty, it overrides the digit bounds of the pattern.
func renderNumber(n Number, p Pattern, sym symbols, digitsInfo string) (string, error) {
	if digitsInfo != "" {
		info, err := ParseDigitsInfo(digitsInfo)
		if err != nil {
			return "", err
		}
		p = info.apply(p)
	}

	// Exponential notation
	value, exponent := n, 0
	if d := n.Digits(); len(d.Digits) > 0 && d.Exp-1 >= n.ExponentAt() {
		exponent = d.Exp - 1
		value = n.Shift(-exponent)
	}

	d, err := roundNumber(value, p.MinFrac, p.MaxFrac)
	if err != nil {
		return "", err
	}
	// Rounding carried into a new leading digit, e.g. 9.9999E+21 -> 1.00E+22
	if exponent != 0 && d.Exp > 1 {
		exponent += d.Exp - 1
		d, err = roundNumber(n.Shift(-exponent), p.MinFrac, p.MaxFrac)
		if err != nil {
			return "", err
		}
	}
	zero := d.IsZero()

	// Leading zeros
	lzeros := max(p.MinInt-d.Exp, -d.Exp, 0)
	digits := d.Digits
	if lzeros > 0 {
		digits = make([]byte, lzeros+len(d.Digits))
		for i := range lzeros {
			digits[i] = '0'
		}
		copy(digits[lzeros:], d.Digits)
	}
	intlen := d.Exp + lzeros

	// Integer and fraction digits
	integer, fraction := digits[:intlen], digits[intlen:]
	if intlen == 0 {
		integer = []byte{'0'}
	}

	var b strings.Builder
	b.Grow(len(p.NegPrefix) + 2*len(digits) + len(p.NegSuffix) + 8)

	// Sign and prefix
	neg := n.Sign() < 0 && !zero
	if neg {
		b.WriteString(p.NegPrefix)
	} else {
		b.WriteString(p.PosPrefix)
	}

	// Integer groups
	for i, g := range groupDigits(integer, p.GroupSize, p.LastGroupSize) {
		if i > 0 {
			b.WriteString(sym.group)
		}
		b.Write(g)
	}

	// Fraction
	if len(fraction) > 0 {
		b.WriteString(sym.decimal)
		b.Write(fraction)
	}

	// Exponent
	if exponent != 0 {
		b.WriteString(sym.exponential)
		b.WriteByte('+')
		b.WriteString(strconv.Itoa(exponent))
	}

	// Suffix
	if neg {
		b.WriteString(p.NegSuffix)
	} else {
		b.WriteString(p.PosSuffix)
	}
	return b.String(), nil
}

// groupDigits splits integer digits into groups, most significant first.
// The rightmost group has lastSize digits, the others have size digits.
// The slices returned share the storage of digits and must not be modified.
func groupDigits(digits []byte, size, lastSize int) [][]byte {
	if lastSize <= 0 || len(digits) < lastSize {
		return [][]byte{digits}
	}
	end := len(digits) - lastSize
	groups := [][]byte{digits[end:]}
	if size > 0 {
		for end > size {
			groups = append(groups, digits[end-size:end])
			end -= size
		}
	}
	if end > 0 {
		groups = append(groups, digits[:end])
	}
	// Most significant group first
	for i, j := 0, len(groups)-1; i < j; i, j = i+1, j-1 {
		groups[i], groups[j] = groups[j], groups[i]
	}
	return groups
}
