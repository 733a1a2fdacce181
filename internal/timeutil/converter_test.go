package timeutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestConverter(t *testing.T, opts ...Option) *Converter {
	t.Helper()
	opts = append([]Option{WithLocation(time.UTC)}, opts...)
	c, err := New(opts...)
	require.NoError(t, err)
	return c
}

func TestNew_Defaults(t *testing.T) {
	c, err := New()
	require.NoError(t, err)

	assert.Equal(t, time.Local, c.Location())
	assert.Equal(t, English, c.Locale())
	assert.Equal(t, DefaultPattern, c.DefaultFormatter().Pattern())
}

func TestNew_InvalidDefaultPattern(t *testing.T) {
	c, err := New(WithDefaultPattern("yyyy 'unterminated"))
	assert.Nil(t, c)
	assert.ErrorIs(t, err, ErrInvalidPattern)
}

func TestNew_CacheLocation(t *testing.T) {
	cst := time.FixedZone("CST", 8*3600)

	adopted, err := New(WithCache(NewLocalCache(cst)))
	require.NoError(t, err)
	assert.Equal(t, cst, adopted.Location())
	assert.Equal(t, "1970-01-01 08:00:00", adopted.MillisToString(0))
	assert.Equal(t, 8, adopted.MillisToTime(0).Hour())

	matching, err := New(WithCache(NewSharedCache(time.UTC)), WithLocation(time.UTC))
	require.NoError(t, err)
	assert.Equal(t, time.UTC, matching.Location())

	_, err = New(WithCache(NewSharedCache(cst)), WithLocation(time.UTC))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrLocationMismatch)
}

func TestConverter_MillisToString(t *testing.T) {
	c := newTestConverter(t)
	millis := time.Date(2023, 3, 12, 9, 5, 7, 250*int(time.Millisecond), time.UTC).UnixMilli()

	assert.Equal(t, "2023-03-12 09:05:07", c.MillisToString(millis))

	s, err := c.MillisToStringPattern(millis, "dd/MM/yyyy HH:mm:ss.SSS")
	require.NoError(t, err)
	assert.Equal(t, "12/03/2023 09:05:07.250", s)

	f, err := NewFormatterIn("yyyyMMdd", time.UTC)
	require.NoError(t, err)
	assert.Equal(t, "20230312", c.MillisToStringFormatter(millis, f))

	_, err = c.MillisToStringPattern(millis, "qq")
	assert.ErrorIs(t, err, ErrInvalidPattern)
}

func TestConverter_StringToMillis(t *testing.T) {
	c := newTestConverter(t)
	expected := time.Date(2023, 3, 12, 9, 5, 7, 0, time.UTC).UnixMilli()

	millis, err := c.StringToMillis("2023-03-12 09:05:07")
	require.NoError(t, err)
	assert.Equal(t, expected, millis)

	millis, err = c.StringToMillisPattern("12.03.2023 09:05", "dd.MM.yyyy HH:mm")
	require.NoError(t, err)
	assert.Equal(t, expected-7000, millis)

	f, err := NewFormatterIn("yyyy-MM-dd", time.UTC)
	require.NoError(t, err)
	millis, err = c.StringToMillisFormatter("2023-03-12", f)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2023, 3, 12, 0, 0, 0, 0, time.UTC).UnixMilli(), millis)
}

func TestConverter_StringToMillis_Errors(t *testing.T) {
	c := newTestConverter(t)

	millis, err := c.StringToMillis("not a date")
	assert.ErrorIs(t, err, ErrParse)
	assert.Equal(t, int64(0), millis)

	_, err = c.StringToMillisPattern("2023-03-12", "yyyy-MM-dd HH:mm")
	assert.ErrorIs(t, err, ErrParse)

	_, err = c.StringToMillisPattern("2023-03-12", "")
	assert.ErrorIs(t, err, ErrInvalidPattern)
	assert.NotErrorIs(t, err, ErrParse)
}

func TestConverter_StringToMillis_EpochIsNotAFailure(t *testing.T) {
	c := newTestConverter(t)

	millis, err := c.StringToMillis("1970-01-01 00:00:00")
	require.NoError(t, err)
	assert.Equal(t, int64(0), millis)

	millis, err = c.StringToMillis("1969-12-31 23:59:59")
	require.NoError(t, err)
	assert.Equal(t, int64(-1000), millis)
}

func TestConverter_YearRange(t *testing.T) {
	c := newTestConverter(t)

	first := time.Date(0, 1, 1, 0, 0, 0, 0, time.UTC).UnixMilli()
	assert.Equal(t, "0000-01-01 00:00:00", c.MillisToString(first))
	millis, err := c.StringToMillis("0000-01-01 00:00:00")
	require.NoError(t, err)
	assert.Equal(t, first, millis)

	last := time.Date(9999, 12, 31, 23, 59, 59, 0, time.UTC).UnixMilli()
	millis, err = c.StringToMillis(c.MillisToString(last))
	require.NoError(t, err)
	assert.Equal(t, last, millis)

	// Five-digit years format but do not parse back.
	beyond := time.Date(10000, 1, 1, 0, 0, 0, 0, time.UTC).UnixMilli()
	s := c.MillisToString(beyond)
	assert.Equal(t, "10000-01-01 00:00:00", s)

	_, err = c.StringToMillis(s)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrParse)
	var pe *ParseError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, s, pe.Input)
}

func TestConverter_StringToTime(t *testing.T) {
	c := newTestConverter(t)

	ts, err := c.StringToTime("2023-03-12 09:05:07")
	require.NoError(t, err)
	assert.True(t, ts.Equal(time.Date(2023, 3, 12, 9, 5, 7, 0, time.UTC)))

	ts, err = c.StringToTimePattern("Sun, 12 Mar 2023", "EEE, dd MMM yyyy")
	require.NoError(t, err)
	assert.Equal(t, 2023, ts.Year())
	assert.Equal(t, time.March, ts.Month())

	_, err = c.StringToTimePattern("2023-13-40", "yyyy-MM-dd")
	var pe *ParseError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, "yyyy-MM-dd", pe.Pattern)

	f, err := c.Formatter("HH:mm")
	require.NoError(t, err)
	ts, err = c.StringToTimeFormatter("18:30", f)
	require.NoError(t, err)
	assert.Equal(t, 18, ts.Hour())
	assert.Equal(t, 30, ts.Minute())
}

func TestConverter_TimeToString(t *testing.T) {
	c := newTestConverter(t)
	cst := time.FixedZone("CST", 8*60*60)
	ts := time.Date(2023, 3, 12, 4, 0, 0, 0, cst)

	assert.Equal(t, "2023-03-11 20:00:00", c.TimeToString(ts))

	s, err := c.TimeToStringPattern(ts, "yyyy-MM-dd")
	require.NoError(t, err)
	assert.Equal(t, "2023-03-11", s)

	local, err := NewFormatterIn("yyyy-MM-dd HH:mm", cst)
	require.NoError(t, err)
	assert.Equal(t, "2023-03-12 04:00", c.TimeToStringFormatter(ts, local))

	_, err = c.TimeToStringPattern(ts, "yyyy 'Mon'")
	assert.ErrorIs(t, err, ErrInvalidPattern)
}

func TestConverter_DirectConversions(t *testing.T) {
	c := newTestConverter(t)
	ts := time.Date(2023, 3, 12, 9, 5, 7, 999_999_999, time.UTC)

	assert.Equal(t, ts.UnixMilli(), c.TimeToMillis(ts))

	back := c.MillisToTime(ts.UnixMilli())
	assert.Equal(t, time.UTC, back.Location())
	assert.True(t, back.Equal(ts.Truncate(time.Millisecond)))
}

func TestConverter_RoundTrip(t *testing.T) {
	cst := time.FixedZone("CST", 8*60*60)
	samples := []int64{
		0,
		-86_400_000,
		1_678_622_400_000,
		1_678_622_400_999,
		4_102_444_799_123,
	}

	tests := []struct {
		pattern   string
		precision Unit
	}{
		{DefaultPattern, Sec},
		{"yyyy-MM-dd'T'HH:mm:ss.SSSXXX", Msec},
		{"yyyy-MM-dd HH:mm", Min},
		{"yyyyMMdd", Day},
	}

	for _, loc := range []*time.Location{time.UTC, cst} {
		c := newTestConverter(t, WithLocation(loc))
		for _, tt := range tests {
			for _, millis := range samples {
				s, err := c.MillisToStringPattern(millis, tt.pattern)
				require.NoError(t, err)

				back, err := c.StringToMillisPattern(s, tt.pattern)
				require.NoError(t, err, "pattern %q input %q", tt.pattern, s)

				expected := c.MillisToTime(millis)
				if tt.precision == Day {
					expected = StartOfDay(expected)
				} else {
					expected = expected.Truncate(tt.precision.Duration())
				}
				assert.Equal(t, expected.UnixMilli(), back, "pattern %q in %s", tt.pattern, loc)
			}
		}
	}
}

func TestConverter_NowHelpers(t *testing.T) {
	now := time.Date(2023, 3, 12, 12, 0, 0, 0, time.UTC)
	c := newTestConverter(t, WithClock(NewMockClock(now)))

	assert.Equal(t, now.UnixMilli(), c.NowMillis())
	assert.True(t, c.NowTime().Equal(now))
	assert.Equal(t, "2023-03-12 12:00:00", c.NowString())

	s, err := c.NowStringPattern("HH:mm")
	require.NoError(t, err)
	assert.Equal(t, "12:00", s)
}

func TestConverter_WithDefaultPattern(t *testing.T) {
	c := newTestConverter(t, WithDefaultPattern("yyyy/MM/dd"))

	millis, err := c.StringToMillis("2023/03/12")
	require.NoError(t, err)
	assert.Equal(t, "2023/03/12", c.MillisToString(millis))
}

func TestPackageDefaults(t *testing.T) {
	ts := time.Date(2023, 3, 12, 9, 5, 7, 0, time.Local)

	s := TimeToString(ts)
	assert.Equal(t, ts.Format(LayoutDateTime), s)

	millis, err := StringToMillis(s)
	require.NoError(t, err)
	assert.Equal(t, ts.UnixMilli(), millis)
	assert.Equal(t, s, MillisToString(millis))

	parsed, err := StringToTime(s)
	require.NoError(t, err)
	assert.True(t, parsed.Equal(ts))

	_, err = StringToMillis("garbage")
	assert.ErrorIs(t, err, ErrParse)

	assert.Same(t, Default(), Default())
}
