package timeutil

import "time"

// Formatter formats and parses times with one compiled pattern in one
// location. It is immutable once built and safe for concurrent use.
type Formatter struct {
	pattern string
	layout  string
	loc     *time.Location
}

// NewFormatter compiles pattern for the local time zone.
func NewFormatter(pattern string) (*Formatter, error) {
	return NewFormatterIn(pattern, time.Local)
}

// NewFormatterIn compiles pattern for loc. A nil loc means time.Local.
// Malformed patterns fail here with an *InvalidPatternError.
func NewFormatterIn(pattern string, loc *time.Location) (*Formatter, error) {
	layout, err := compilePattern(pattern)
	if err != nil {
		return nil, err
	}
	if loc == nil {
		loc = time.Local
	}
	return &Formatter{
		pattern: pattern,
		layout:  layout,
		loc:     loc,
	}, nil
}

// Pattern returns the source pattern.
func (f *Formatter) Pattern() string {
	return f.pattern
}

// Layout returns the compiled Go reference layout.
func (f *Formatter) Layout() string {
	return f.layout
}

func (f *Formatter) Location() *time.Location {
	return f.loc
}

// Format renders t in the formatter's location.
func (f *Formatter) Format(t time.Time) string {
	return t.In(f.loc).Format(f.layout)
}

// Parse reads s in the formatter's location. Fields missing from the
// pattern take their zero value (January 1, year 0, midnight).
func (f *Formatter) Parse(s string) (time.Time, error) {
	t, err := time.ParseInLocation(f.layout, s, f.loc)
	if err != nil {
		return time.Time{}, &ParseError{
			Input:   s,
			Pattern: f.pattern,
			Err:     err,
		}
	}
	return t, nil
}
