package timeutil

import (
	"fmt"
	"strings"
	"time"
)

// DefaultPattern is used by every conversion that does not name a pattern.
const DefaultPattern = "yyyy-MM-dd HH:mm:ss"

// Go reference layouts used internally by the friendly formatter.
const (
	LayoutDateOnly  = "2006-01-02"
	LayoutClock     = "15:04"
	LayoutDateTime  = "2006-01-02 15:04:05"
	LayoutFullStamp = "Mon Jan 02 15:04:05 MST 2006"
)

// Unit is a time unit expressed as its magnitude in milliseconds.
type Unit int64

const (
	Msec Unit = 1
	Sec  Unit = 1000
	Min  Unit = 60000
	Hour Unit = 3600000
	Day  Unit = 86400000
)

// Millis returns the unit magnitude in milliseconds.
func (u Unit) Millis() int64 {
	return int64(u)
}

// Duration returns the unit as a time.Duration.
func (u Unit) Duration() time.Duration {
	return time.Duration(u) * time.Millisecond
}

func (u Unit) String() string {
	switch u {
	case Msec:
		return "msec"
	case Sec:
		return "sec"
	case Min:
		return "min"
	case Hour:
		return "hour"
	case Day:
		return "day"
	default:
		return fmt.Sprintf("Unit(%d)", int64(u))
	}
}

// ParseUnit maps a unit name to its Unit.
func ParseUnit(s string) (Unit, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "msec", "ms", "millisecond", "milliseconds":
		return Msec, nil
	case "sec", "s", "second", "seconds":
		return Sec, nil
	case "min", "m", "minute", "minutes":
		return Min, nil
	case "hour", "h", "hours":
		return Hour, nil
	case "day", "d", "days":
		return Day, nil
	default:
		return 0, fmt.Errorf("unknown time unit %q", s)
	}
}

// MillisToSpan converts a millisecond span to whole units, truncating toward zero.
func MillisToSpan(millis int64, unit Unit) int64 {
	return millis / unit.Millis()
}

// SpanToMillis converts a count of units to milliseconds.
func SpanToMillis(span int64, unit Unit) int64 {
	return span * unit.Millis()
}
