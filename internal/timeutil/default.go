package timeutil

import (
	"sync"
	"time"
)

// The package-level helpers below use a converter with the system clock,
// time.Local and a shared cache.

var defaultConverter = sync.OnceValue(func() *Converter {
	c, err := New()
	if err != nil {
		// DefaultPattern always compiles.
		panic(err)
	}
	return c
})

// Default returns the package-level converter.
func Default() *Converter {
	return defaultConverter()
}

// MillisToString formats millis with DefaultPattern in the local time zone.
func MillisToString(millis int64) string {
	return Default().MillisToString(millis)
}

// StringToMillis parses s with DefaultPattern in the local time zone.
func StringToMillis(s string) (int64, error) {
	return Default().StringToMillis(s)
}

func StringToTime(s string) (time.Time, error) {
	return Default().StringToTime(s)
}

func TimeToString(t time.Time) string {
	return Default().TimeToString(t)
}

// FriendlyTimeSpanByNow renders millis relative to the system clock in English.
func FriendlyTimeSpanByNow(millis int64) string {
	return Default().FriendlyTimeSpan(millis)
}
