package timeutil

import "fmt"

// FriendlyTimeSpan describes millis relative to the converter's clock:
//
//   - in the future: the full timestamp, e.g. "Sat Oct 27 14:21:20 CST 2007"
//   - under a second ago: "just now"
//   - under a minute ago: "N seconds ago"
//   - under an hour ago: "N minutes ago"
//   - since local midnight: "today 15:32"
//   - during the 24h before midnight: "yesterday 15:32"
//   - otherwise: "2016-10-15"
func (c *Converter) FriendlyTimeSpan(millis int64) string {
	now := c.clock.Now().In(c.loc)
	span := now.UnixMilli() - millis
	t := c.MillisToTime(millis)

	if span < 0 {
		return t.Format(LayoutFullStamp)
	}

	switch {
	case span < Sec.Millis():
		return c.locale.justNow
	case span < Min.Millis():
		return fmt.Sprintf(c.locale.secondsAgo, MillisToSpan(span, Sec))
	case span < Hour.Millis():
		return fmt.Sprintf(c.locale.minutesAgo, MillisToSpan(span, Min))
	}

	midnight := StartOfDay(now).UnixMilli()
	switch {
	case millis >= midnight:
		return fmt.Sprintf(c.locale.today, t.Format(LayoutClock))
	case millis >= midnight-Day.Millis():
		return fmt.Sprintf(c.locale.yesterday, t.Format(LayoutClock))
	default:
		return t.Format(LayoutDateOnly)
	}
}

// StartOfToday returns local midnight of the clock's current day.
func (c *Converter) StartOfToday() int64 {
	return StartOfDay(c.clock.Now().In(c.loc)).UnixMilli()
}
