package timeutil

import (
	"errors"
	"fmt"
)

var (
	// ErrParse matches every *ParseError.
	ErrParse = errors.New("time does not match pattern")
	// ErrInvalidPattern matches every *InvalidPatternError.
	ErrInvalidPattern = errors.New("invalid date pattern")
	// ErrLocationMismatch is returned by New when the cache and the
	// converter disagree on the time zone.
	ErrLocationMismatch = errors.New("cache location differs from converter location")
)

// ParseError reports input that does not conform to a pattern.
type ParseError struct {
	Input   string
	Pattern string
	Err     error
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("cannot parse %q with pattern %q: %v", e.Input, e.Pattern, e.Err)
	}
	return fmt.Sprintf("cannot parse %q with pattern %q", e.Input, e.Pattern)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

func (e *ParseError) Is(target error) bool {
	return target == ErrParse
}

// InvalidPatternError reports a pattern that cannot be compiled.
// Pos is the rune offset of the offending field.
type InvalidPatternError struct {
	Pattern string
	Pos     int
	Reason  string
}

func (e *InvalidPatternError) Error() string {
	return fmt.Sprintf("invalid date pattern %q at offset %d: %s", e.Pattern, e.Pos, e.Reason)
}

func (e *InvalidPatternError) Is(target error) bool {
	return target == ErrInvalidPattern
}

func newInvalidPattern(pattern string, pos int, format string, args ...interface{}) *InvalidPatternError {
	return &InvalidPatternError{
		Pattern: pattern,
		Pos:     pos,
		Reason:  fmt.Sprintf(format, args...),
	}
}
