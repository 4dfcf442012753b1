package moneyfmt

import (
	"fmt"
	"regexp"
	"strconv"
)

var digitsInfoRegexp = regexp.MustCompile(`^(\d+)?\.((\d+)(-(\d+))?)?$`)

// maxDigits is the largest digit count a digits-info string may request.
const maxDigits = 1000

// DigitsInfo holds the digit bounds of a digits-info string.
// A bound is only applied if the corresponding Has* field is set.
type DigitsInfo struct {
	MinInt, MinFrac, MaxFrac          int
	HasMinInt, HasMinFrac, HasMaxFrac bool
}

// ParseDigitsInfo parses a string in the following format:
//
//	{minIntegerDigits}.{minFractionDigits}-{maxFractionDigits}
//
// Every part is optional, e.g. "1.2-2", "3.", ".1" and "." are all valid.
// ParseDigitsInfo returns an error if the string does not match the format
// or if any digit count exceeds 1000.
func ParseDigitsInfo(s string) (DigitsInfo, error) {
	parts := digitsInfoRegexp.FindStringSubmatch(s)
	if parts == nil {
		return DigitsInfo{}, &FormatError{Op: "parsing digits info", Input: s, Err: ErrInvalidDigitsInfo}
	}
	var info DigitsInfo
	var err error
	if parts[1] != "" {
		info.HasMinInt = true
		if info.MinInt, err = strconv.Atoi(parts[1]); err != nil || info.MinInt > maxDigits {
			return DigitsInfo{}, &FormatError{Op: "parsing digits info", Input: s, Err: ErrInvalidDigitsInfo}
		}
	}
	if parts[3] != "" {
		info.HasMinFrac = true
		if info.MinFrac, err = strconv.Atoi(parts[3]); err != nil || info.MinFrac > maxDigits {
			return DigitsInfo{}, &FormatError{Op: "parsing digits info", Input: s, Err: ErrInvalidDigitsInfo}
		}
	}
	if parts[5] != "" {
		info.HasMaxFrac = true
		if info.MaxFrac, err = strconv.Atoi(parts[5]); err != nil || info.MaxFrac > maxDigits {
			return DigitsInfo{}, &FormatError{Op: "parsing digits info", Input: s, Err: ErrInvalidDigitsInfo}
		}
	}
	return info, nil
}

// MustParseDigitsInfo is like [ParseDigitsInfo] but panics if the string cannot be parsed.
func MustParseDigitsInfo(s string) DigitsInfo {
	info, err := ParseDigitsInfo(s)
	if err != nil {
		panic(fmt.Sprintf("ParseDigitsInfo(%q) failed: %v", s, err))
	}
	return info
}

// apply returns the pattern with its digit bounds overridden.
// When only the minimum number of fraction digits is given and it exceeds
// the current maximum, the maximum is raised to match it.
func (info DigitsInfo) apply(p Pattern) Pattern {
	if info.HasMinInt {
		p.MinInt = info.MinInt
	}
	if info.HasMinFrac {
		p.MinFrac = info.MinFrac
	}
	switch {
	case info.HasMaxFrac:
		p.MaxFrac = info.MaxFrac
	case info.HasMinFrac && p.MinFrac > p.MaxFrac:
		p.MaxFrac = p.MinFrac
	}
	return p
}
