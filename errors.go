package moneyfmt

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidDigitsInfo is reported when a digits-info string does not match
	// the {minIntegerDigits}.{minFractionDigits}-{maxFractionDigits} syntax.
	ErrInvalidDigitsInfo = errors.New("invalid digits info")

	// ErrInvalidFractionBounds is reported when the minimum number of fraction
	// digits is greater than the maximum.
	ErrInvalidFractionBounds = errors.New("min > max")

	// ErrInvalidPattern is reported when a locale pattern has no digit placeholder.
	ErrInvalidPattern = errors.New("invalid pattern")

	// ErrUnknownLocale is reported when no locale data matches a language tag.
	ErrUnknownLocale = errors.New("unknown locale")
)

// FormatError describes a failure to format a value.
// Use [errors.Is] with one of the Err* variables to find out its kind.
type FormatError struct {
	Op    string // operation that failed, e.g. "parsing pattern"
	Input string // offending input
	Err   error  // one of the Err* variables
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("%s %q: %v", e.Op, e.Input, e.Err)
}

func (e *FormatError) Unwrap() error {
	return e.Err
}

func fractionBoundsError(minFrac, maxFrac int) error {
	return &FormatError{
		Op:    "rounding",
		Input: fmt.Sprintf("%d-%d", minFrac, maxFrac),
		Err: fmt.Errorf("%w: the minimum number of digits after fraction (%d) is higher than the maximum (%d)",
			ErrInvalidFractionBounds, minFrac, maxFrac),
	}
}
