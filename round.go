package moneyfmt

// roundNumber rounds n half up to the number of fraction digits closest to
// its own, but within [minFrac, maxFrac].
// The result is padded with trailing zeros to exactly that many fraction
// digits and is backed by a newly allocated buffer.
func roundNumber(n Number, minFrac, maxFrac int) (Digits, error) {
	if minFrac > maxFrac {
		return Digits{}, fractionBoundsError(minFrac, maxFrac)
	}
	scale := min(max(n.Digits().FracLen(), minFrac), maxFrac)
	r := n.RoundHalfUp(scale).Digits()

	// Trailing zeros
	size := max(r.Exp+scale, len(r.Digits))
	digits := make([]byte, size)
	copy(digits, r.Digits)
	for i := len(r.Digits); i < size; i++ {
		digits[i] = '0'
	}
	return Digits{Digits: digits, Exp: r.Exp}, nil
}
