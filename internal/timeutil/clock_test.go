package timeutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMockClock(t *testing.T) {
	start := time.Date(2023, 3, 12, 12, 0, 0, 0, time.UTC)
	clock := NewMockClock(start)

	assert.Equal(t, start, clock.Now())
	clock.Advance(time.Minute)
	assert.Equal(t, start.Add(time.Minute), clock.Now())
	clock.Set(start)
	assert.Equal(t, start, clock.Now())
}

func TestStartOfDay(t *testing.T) {
	cst := time.FixedZone("CST", 8*60*60)
	ts := time.Date(2023, 3, 12, 23, 59, 59, 999, cst)

	assert.Equal(t, time.Date(2023, 3, 12, 0, 0, 0, 0, cst), StartOfDay(ts))
}

func TestClockFunc(t *testing.T) {
	fixed := time.Date(2001, 2, 3, 4, 5, 6, 0, time.UTC)
	var c Clock = ClockFunc(func() time.Time { return fixed })

	assert.Equal(t, fixed, c.Now())
}
