// Package timeutil converts among epoch milliseconds, time.Time values and
// pattern-formatted strings, and renders friendly relative timestamps.
//
// Patterns use date-format letters (yyyy-MM-dd HH:mm:ss) or strftime
// directives. Compiled formatters are cached per pattern: a Converter built
// with the default options shares one goroutine-safe cache, while
// Converter.ForWorker hands a goroutine its own unsynchronized cache.
package timeutil

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"
)

// Converter is the entry point for time conversions. All methods are
// synchronous; a Converter is safe for concurrent use unless it was
// obtained from ForWorker, in which case it belongs to one goroutine.
type Converter struct {
	cache          Cache
	clock          Clock
	loc            *time.Location
	locale         Locale
	defaultPattern string
	def            *Formatter
	logger         zerolog.Logger
}

// Option configures a Converter.
type Option func(*Converter)

// WithCache sets the formatter cache. Without WithLocation the converter
// adopts the cache's location; with it, the two must match.
func WithCache(c Cache) Option {
	return func(cv *Converter) {
		cv.cache = c
	}
}

// WithClock sets the time source used by the Now helpers and FriendlyTimeSpan.
func WithClock(c Clock) Option {
	return func(cv *Converter) {
		cv.clock = c
	}
}

// WithLocation sets the time zone used for formatting, parsing and day
// boundaries. Nil means time.Local.
func WithLocation(loc *time.Location) Option {
	return func(cv *Converter) {
		cv.loc = loc
	}
}

// WithLocale sets the phrases used by FriendlyTimeSpan.
func WithLocale(l Locale) Option {
	return func(cv *Converter) {
		cv.locale = l
	}
}

// WithDefaultPattern replaces DefaultPattern for the pattern-less conversions.
func WithDefaultPattern(pattern string) Option {
	return func(cv *Converter) {
		cv.defaultPattern = pattern
	}
}

func WithLogger(logger zerolog.Logger) Option {
	return func(cv *Converter) {
		cv.logger = logger
	}
}

// New builds a Converter. It fails when the default pattern does not compile
// or when the cache's location differs from the requested one.
func New(opts ...Option) (*Converter, error) {
	c := &Converter{
		clock:          SystemClock,
		locale:         English,
		defaultPattern: DefaultPattern,
		logger:         zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}

	switch {
	case c.cache != nil && c.loc == nil:
		c.loc = c.cache.Location()
	case c.loc == nil:
		c.loc = time.Local
	}
	if c.cache != nil && !sameLocation(c.cache.Location(), c.loc) {
		return nil, fmt.Errorf("%w: cache uses %s, converter uses %s", ErrLocationMismatch, c.cache.Location(), c.loc)
	}
	if c.clock == nil {
		c.clock = SystemClock
	}
	if c.locale.isZero() {
		c.locale = English
	}
	if c.cache == nil {
		c.cache = NewSharedCache(c.loc)
	}

	def, err := c.cache.Formatter(c.defaultPattern)
	if err != nil {
		return nil, err
	}
	c.def = def
	return c, nil
}

// sameLocation compares zones by identity or, for separately loaded
// copies, by name.
func sameLocation(a, b *time.Location) bool {
	return a == b || a.String() == b.String()
}

// ForWorker returns a copy of c with a private, unsynchronized formatter
// cache. The copy must only be used by the calling goroutine.
func (c *Converter) ForWorker() *Converter {
	w := *c
	w.cache = NewLocalCache(c.loc)
	return &w
}

// Location returns the converter's time zone.
func (c *Converter) Location() *time.Location {
	return c.loc
}

func (c *Converter) Locale() Locale {
	return c.locale
}

// Formatter returns the cached formatter for pattern.
func (c *Converter) Formatter(pattern string) (*Formatter, error) {
	return c.cache.Formatter(pattern)
}

// DefaultFormatter returns the formatter for the default pattern.
func (c *Converter) DefaultFormatter() *Formatter {
	return c.def
}

// Now helpers

func (c *Converter) NowMillis() int64 {
	return c.clock.Now().UnixMilli()
}

func (c *Converter) NowTime() time.Time {
	return c.clock.Now().In(c.loc)
}

func (c *Converter) NowString() string {
	return c.def.Format(c.clock.Now())
}

func (c *Converter) NowStringPattern(pattern string) (string, error) {
	f, err := c.cache.Formatter(pattern)
	if err != nil {
		return "", err
	}
	return f.Format(c.clock.Now()), nil
}

// Epoch millis to string

func (c *Converter) MillisToString(millis int64) string {
	return c.MillisToStringFormatter(millis, c.def)
}

func (c *Converter) MillisToStringPattern(millis int64, pattern string) (string, error) {
	f, err := c.cache.Formatter(pattern)
	if err != nil {
		return "", err
	}
	return c.MillisToStringFormatter(millis, f), nil
}

func (c *Converter) MillisToStringFormatter(millis int64, f *Formatter) string {
	return f.Format(time.UnixMilli(millis))
}

// String to epoch millis

// StringToMillis parses s with the default pattern. A mismatch yields a
// *ParseError, never a sentinel value.
func (c *Converter) StringToMillis(s string) (int64, error) {
	return c.StringToMillisFormatter(s, c.def)
}

func (c *Converter) StringToMillisPattern(s, pattern string) (int64, error) {
	f, err := c.cache.Formatter(pattern)
	if err != nil {
		return 0, err
	}
	return c.StringToMillisFormatter(s, f)
}

func (c *Converter) StringToMillisFormatter(s string, f *Formatter) (int64, error) {
	t, err := c.StringToTimeFormatter(s, f)
	if err != nil {
		return 0, err
	}
	return t.UnixMilli(), nil
}

// String to time.Time

func (c *Converter) StringToTime(s string) (time.Time, error) {
	return c.StringToTimeFormatter(s, c.def)
}

func (c *Converter) StringToTimePattern(s, pattern string) (time.Time, error) {
	f, err := c.cache.Formatter(pattern)
	if err != nil {
		return time.Time{}, err
	}
	return c.StringToTimeFormatter(s, f)
}

func (c *Converter) StringToTimeFormatter(s string, f *Formatter) (time.Time, error) {
	t, err := f.Parse(s)
	if err != nil {
		c.logger.Debug().
			Str("input", s).
			Str("pattern", f.Pattern()).
			Err(err).
			Msg("Time string does not match pattern")
		return time.Time{}, err
	}
	return t, nil
}

// time.Time to string

func (c *Converter) TimeToString(t time.Time) string {
	return c.TimeToStringFormatter(t, c.def)
}

func (c *Converter) TimeToStringPattern(t time.Time, pattern string) (string, error) {
	f, err := c.cache.Formatter(pattern)
	if err != nil {
		return "", err
	}
	return c.TimeToStringFormatter(t, f), nil
}

func (c *Converter) TimeToStringFormatter(t time.Time, f *Formatter) string {
	return f.Format(t)
}

// TimeToMillis reads t as epoch milliseconds.
func (c *Converter) TimeToMillis(t time.Time) int64 {
	return t.UnixMilli()
}

// MillisToTime builds a time.Time in the converter's location.
func (c *Converter) MillisToTime(millis int64) time.Time {
	return time.UnixMilli(millis).In(c.loc)
}
