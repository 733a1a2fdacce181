package timeutil

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

// Years 0000 through 9999, less a day at each end so every test zone
// stays inside four-digit years.
var (
	minTestMillis = time.Date(0, 1, 2, 0, 0, 0, 0, time.UTC).UnixMilli()
	maxTestMillis = time.Date(9999, 12, 30, 23, 59, 59, 999e6, time.UTC).UnixMilli()
)

func TestProperty_FormatParseRoundTrip(t *testing.T) {
	zones := []*time.Location{time.UTC, time.FixedZone("CST", 8*3600), time.FixedZone("EST", -5*3600)}

	rapid.Check(t, func(rt *rapid.T) {
		loc := rapid.SampledFrom(zones).Draw(rt, "loc")
		millis := rapid.Int64Range(minTestMillis, maxTestMillis).Draw(rt, "millis")

		conv, err := New(WithLocation(loc))
		require.NoError(rt, err)

		seconds := millis - millis%Sec.Millis()
		back, err := conv.StringToMillis(conv.MillisToString(seconds))
		require.NoError(rt, err)
		require.Equal(rt, seconds, back)

		withFraction, err := conv.MillisToStringPattern(millis, "yyyy-MM-dd HH:mm:ss.SSS")
		require.NoError(rt, err)
		back, err = conv.StringToMillisPattern(withFraction, "yyyy-MM-dd HH:mm:ss.SSS")
		require.NoError(rt, err)
		require.Equal(rt, millis, back)
	})
}

func TestProperty_CachesAgree(t *testing.T) {
	patterns := []string{DefaultPattern, "yyyy/MM/dd", "HH:mm:ss.SSS", "EEE, d MMM yyyy", "%Y-%m-%dT%H:%M:%S"}
	shared := NewSharedCache(time.UTC)
	local := NewLocalCache(time.UTC)

	rapid.Check(t, func(rt *rapid.T) {
		pattern := rapid.SampledFrom(patterns).Draw(rt, "pattern")
		millis := rapid.Int64Range(0, maxTestMillis).Draw(rt, "millis")

		fs, err := shared.Formatter(pattern)
		require.NoError(rt, err)
		fl, err := local.Formatter(pattern)
		require.NoError(rt, err)

		tm := time.UnixMilli(millis)
		require.Equal(rt, fs.Format(tm), fl.Format(tm))
	})
}

func TestProperty_FriendlyWithinAnHour(t *testing.T) {
	now := time.Date(2023, 3, 12, 12, 0, 0, 0, time.UTC)
	conv, err := New(WithLocation(time.UTC), WithClock(NewMockClock(now)))
	require.NoError(t, err)

	rapid.Check(t, func(rt *rapid.T) {
		span := rapid.Int64Range(0, Hour.Millis()-1).Draw(rt, "span")
		got := conv.FriendlyTimeSpan(now.UnixMilli() - span)

		switch {
		case span < Sec.Millis():
			require.Equal(rt, "just now", got)
		case span < Min.Millis():
			require.Equal(rt, fmt.Sprintf("%d seconds ago", span/1000), got)
		default:
			require.Equal(rt, fmt.Sprintf("%d minutes ago", span/60000), got)
		}
	})
}
