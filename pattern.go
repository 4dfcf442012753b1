package moneyfmt

import (
	"fmt"
	"strings"
)

const (
	patternSep   = ';'
	decimalSep   = '.'
	groupSep     = ','
	zeroChar     = '0'
	digitChar    = '#'
	quoteChar    = '\''
	currencyChar = "¤"
)

// Pattern is a parsed locale number pattern, such as "¤#,##0.00;(¤#,##0.00)".
type Pattern struct {
	MinInt  int // minimum number of integer digits
	MinFrac int // minimum number of fraction digits
	MaxFrac int // maximum number of fraction digits

	PosPrefix string // prefix of positive numbers, e.g. "¤"
	PosSuffix string // suffix of positive numbers, e.g. " ¤"
	NegPrefix string // prefix of negative numbers, e.g. "-¤" or "(¤"
	NegSuffix string // suffix of negative numbers, e.g. ")"

	GroupSize     int // size of the integer digit groups
	LastGroupSize int // size of the group next to the decimal separator
}

// ParsePattern parses a pattern made of a positive and an optional negative
// sub-pattern separated by a semicolon. In each sub-pattern
//
//   - '0' is a required digit;
//   - '#' is an optional digit;
//   - ',' is a grouping separator;
//   - '.' is the decimal separator;
//   - any other character is a literal prefix or suffix.
//
// If the negative sub-pattern is missing, negative numbers use the positive
// prefix preceded by minusSign.
//
// ParsePattern returns an error if the positive sub-pattern has no digits.
func ParsePattern(pattern, minusSign string) (Pattern, error) {
	p := Pattern{MinInt: 1}

	positive, negative, _ := strings.Cut(pattern, string(patternSep))
	if strings.IndexAny(positive, "#0") < 0 {
		return Pattern{}, &FormatError{Op: "parsing pattern", Input: pattern, Err: ErrInvalidPattern}
	}
	// Negative sub-pattern ends at the next separator, if any
	negative, _, _ = strings.Cut(negative, string(patternSep))

	// Integer and fraction parts
	var integer, fraction string
	if i := strings.IndexByte(positive, decimalSep); i >= 0 {
		integer = positive[:i]
		fraction = positive[i+1:]
		if j := strings.IndexByte(fraction, decimalSep); j >= 0 {
			fraction = fraction[:j]
		}
	} else {
		i := strings.LastIndexByte(positive, zeroChar) + 1
		integer = positive[:i]
		fraction = positive[i:]
	}

	// Prefix
	if i := strings.IndexAny(integer, "#0"); i >= 0 {
		p.PosPrefix = integer[:i]
	}

	// Fraction digits and suffix
	var suffix strings.Builder
	pos := 0
	for _, ch := range fraction {
		pos++
		switch ch {
		case zeroChar:
			p.MinFrac = pos
			p.MaxFrac = pos
		case digitChar:
			p.MaxFrac = pos
		default:
			suffix.WriteRune(ch)
		}
	}
	p.PosSuffix = suffix.String()

	// Grouping
	groups := strings.Split(integer, string(groupSep))
	if len(groups) > 1 {
		p.GroupSize = len(groups[1])
		p.LastGroupSize = p.GroupSize
	}
	if len(groups) > 2 && groups[2] != "" {
		p.LastGroupSize = len(groups[2])
	}

	// Negative prefix and suffix
	pos = strings.IndexAny(negative, "#0")
	if pos < 0 {
		p.NegPrefix = minusSign + p.PosPrefix
		p.NegSuffix = p.PosSuffix
		return p, nil
	}
	trunk := len(positive) - len(p.PosPrefix) - len(p.PosSuffix)
	p.NegPrefix = unquote(negative[:pos])
	if end := pos + trunk; end < len(negative) {
		p.NegSuffix = unquote(negative[end:])
	}
	return p, nil
}

// unquote removes quote characters from pattern literals.
func unquote(s string) string {
	return strings.ReplaceAll(s, string(quoteChar), "")
}

// String returns the canonical pattern, e.g. "¤#,##0.00;-¤#,##0.00".
func (p Pattern) String() string {
	var b strings.Builder
	writeTrunk := func() {
		if p.GroupSize > 0 {
			b.WriteByte(digitChar)
			b.WriteByte(groupSep)
			if p.LastGroupSize != p.GroupSize {
				b.WriteString(strings.Repeat(string(digitChar), p.GroupSize))
				b.WriteByte(groupSep)
			}
			b.WriteString(strings.Repeat(string(digitChar), max(p.LastGroupSize-p.MinInt, 0)))
		}
		b.WriteString(strings.Repeat(string(zeroChar), p.MinInt))
		if p.MaxFrac > 0 {
			b.WriteByte(decimalSep)
			b.WriteString(strings.Repeat(string(zeroChar), p.MinFrac))
			b.WriteString(strings.Repeat(string(digitChar), p.MaxFrac-p.MinFrac))
		}
	}
	b.WriteString(p.PosPrefix)
	writeTrunk()
	b.WriteString(p.PosSuffix)
	b.WriteByte(patternSep)
	b.WriteString(p.NegPrefix)
	writeTrunk()
	b.WriteString(p.NegSuffix)
	return b.String()
}

// Format implements the [fmt.Formatter] interface.
// All verbs print the canonical pattern, %q quotes it.
//
// [fmt.Formatter]: https://pkg.go.dev/fmt#Formatter
func (p Pattern) Format(state fmt.State, verb rune) {
	s := p.String()
	if verb == 'q' || verb == 'Q' {
		s = fmt.Sprintf("%q", s)
	}
	writePadded(state, s)
}
