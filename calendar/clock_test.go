package calendar_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/warp/calendar-engine/calendar"
)

// =============================================================================
// SEGMENTS <-> NANO OF DAY (exact)
// =============================================================================

func TestSegmentsNanoRoundTrip(t *testing.T) {
	cases := []calendar.TimeSegments{
		{},
		{Hour: 12, Minute: 31, Second: 0, Nano: 384_000_000},
		{Hour: 23, Minute: 59, Second: 59, Nano: 999_999_999},
		{Hour: 0, Minute: 0, Second: 1},
		{Hour: 6, Minute: 30},
	}
	for _, seg := range cases {
		assert.Equal(t, seg, seg.NanoOfDay().Segments())
	}
}

func TestNanoOfDayValues(t *testing.T) {
	seg, err := calendar.NewTimeSegments(12, 31, 0, 384_000_000)
	require.NoError(t, err)
	assert.Equal(t, calendar.NanoOfDay(45_060_384_000_000), seg.NanoOfDay())

	assert.Equal(t, calendar.NanoOfDay(0), calendar.Midnight().NanoOfDay())

	last := calendar.TimeSegments{Hour: 23, Minute: 59, Second: 59, Nano: 999_999_999}
	assert.Equal(t, calendar.NanoOfDay(calendar.NanosPerDay-1), last.NanoOfDay())
}

func TestSegmentsValidation(t *testing.T) {
	cases := []struct {
		h, m, s, n int
		sentinel   error
	}{
		{24, 0, 0, 0, calendar.ErrInvalidHour},
		{-1, 0, 0, 0, calendar.ErrInvalidHour},
		{0, 60, 0, 0, calendar.ErrInvalidMinute},
		{0, 0, 60, 0, calendar.ErrInvalidSecond},
		{0, 0, 0, 1_000_000_000, calendar.ErrInvalidNano},
		{0, 0, 0, -1, calendar.ErrInvalidNano},
	}
	for _, c := range cases {
		_, err := calendar.NewTimeSegments(c.h, c.m, c.s, c.n)
		require.Error(t, err)
		assert.ErrorIs(t, err, c.sentinel)
		assert.True(t, calendar.IsValidation(err))
	}
}

// =============================================================================
// NANO OF DAY
// =============================================================================

func TestNewNanoOfDay(t *testing.T) {
	n, err := calendar.NewNanoOfDay(0)
	require.NoError(t, err)
	assert.Equal(t, calendar.NanoOfDay(0), n)

	_, err = calendar.NewNanoOfDay(calendar.NanosPerDay)
	assert.ErrorIs(t, err, calendar.ErrInvalidNano)

	_, err = calendar.NewNanoOfDay(-1)
	assert.ErrorIs(t, err, calendar.ErrInvalidNano)
}

// =============================================================================
// DAY FRACTION (lossy by contract)
// =============================================================================

func TestDayFraction(t *testing.T) {
	half, err := calendar.NewDayFraction(0.5)
	require.NoError(t, err)
	assert.Equal(t, calendar.TimeSegments{Hour: 12}, half.Segments())

	quarter, err := calendar.NewDayFraction(0.25)
	require.NoError(t, err)
	assert.Equal(t, calendar.TimeSegments{Hour: 6}, quarter.Segments())

	_, err = calendar.NewDayFraction(1.0)
	var fe *calendar.FractionError
	require.ErrorAs(t, err, &fe)
	assert.ErrorIs(t, err, calendar.ErrInvalidFraction)

	_, err = calendar.NewDayFraction(-0.1)
	assert.Error(t, err)
}

func TestDayFractionRoundTripTolerance(t *testing.T) {
	// Fraction encoding is documented lossy: a round trip through it must
	// land within a microsecond, not on the exact nanosecond.
	seg := calendar.TimeSegments{Hour: 12, Minute: 31, Second: 0, Nano: 384_000_000}
	back := seg.Fraction().NanoOfDay()
	diff := int64(back) - int64(seg.NanoOfDay())
	if diff < 0 {
		diff = -diff
	}
	assert.Less(t, diff, int64(1000), "fraction round trip drifted %d ns", diff)
}

func TestDayFractionClamped(t *testing.T) {
	// Values just under 1.0 may multiply to NanosPerDay after float
	// rounding; the conversion clamps instead of overflowing the day.
	fr := calendar.DayFraction(0.999999999999999999)
	assert.NoError(t, fr.NanoOfDay().Validate())
}
