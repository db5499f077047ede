package calendar_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/warp/calendar-engine/calendar"
	"github.com/warp/calendar-engine/gregorian"
	"github.com/warp/calendar-engine/hebrew"
	"github.com/warp/calendar-engine/julian"
	"github.com/warp/calendar-engine/unixtime"
)

// =============================================================================
// STATIC CONVERSION
// =============================================================================

func TestConvertGregorianJulian(t *testing.T) {
	g := mustGregorian(t, 2024, 1, 14)
	j := calendar.Convert[julian.Date](g)

	// The Julian calendar runs 13 days behind in the 21st century.
	want, err := julian.New(2024, 1, 1)
	require.NoError(t, err)
	assert.Equal(t, want, j)

	assert.Equal(t, g, calendar.Convert[gregorian.Date](j))
}

func TestConvertGregorianHebrew(t *testing.T) {
	// First day of Passover 5784.
	g := mustGregorian(t, 2024, 4, 23)
	h := calendar.Convert[hebrew.Date](g)

	want, err := hebrew.New(5784, hebrew.Nisan, 15)
	require.NoError(t, err)
	assert.Equal(t, want, h)
	assert.Equal(t, g, calendar.Convert[gregorian.Date](h))
}

func TestConvertPreservesPivot(t *testing.T) {
	for _, f := range []calendar.FixedDay{-100_000, -1, 0, 1, 38, 710_347, 719_163, 738_886} {
		var g gregorian.Date
		d := g.FromFixed(f)
		assert.Equal(t, f, calendar.Convert[julian.Date](d).Fixed())
		assert.Equal(t, f, calendar.Convert[hebrew.Date](d).Fixed())
	}
}

// =============================================================================
// TIERED CONVERSION
// =============================================================================

func TestConvertToFromUnixSeconds(t *testing.T) {
	// 700790400 is exactly midnight UTC, 1992-03-17.
	src := unixtime.NewSeconds(700_790_400)
	g := calendar.ConvertTo[gregorian.Date](src)
	assert.Equal(t, mustGregorian(t, 1992, 3, 17), g)
}

func TestConvertToDateTimeKeepsClock(t *testing.T) {
	src := unixtime.NewSeconds(700_790_400 + 12*3600 + 30*60 + 24)
	dt := calendar.ConvertToDateTime[gregorian.Date](src)
	assert.Equal(t, mustGregorian(t, 1992, 3, 17), dt.Date)
	assert.Equal(t, calendar.TimeSegments{Hour: 12, Minute: 30, Second: 24}, dt.Time)
}

func TestConvertToDateTimeDefaultsMidnight(t *testing.T) {
	dt := calendar.ConvertToDateTime[julian.Date](mustGregorian(t, 2024, 1, 14))
	want, err := julian.New(2024, 1, 1)
	require.NoError(t, err)
	assert.Equal(t, want, dt.Date)
	assert.Equal(t, calendar.Midnight(), dt.Time)
}

func TestConvertToNormalizesZoneBeforeDropping(t *testing.T) {
	// 01:30 local at +03:00 is 22:30 UTC of the previous day; the zone must
	// not be dropped before the normalization.
	z := calendar.NewZonedDateTime(
		mustGregorian(t, 2024, 1, 1),
		calendar.TimeSegments{Hour: 1, Minute: 30},
		calendar.TimeZoneOffset{Hours: 3})

	dt := calendar.ConvertToDateTime[julian.Date](z)
	want, err := julian.New(2023, 12, 18)
	require.NoError(t, err)
	assert.Equal(t, want, dt.Date)
	assert.Equal(t, calendar.TimeSegments{Hour: 22, Minute: 30}, dt.Time)

	d := calendar.ConvertTo[gregorian.Date](z)
	assert.Equal(t, mustGregorian(t, 2023, 12, 31), d)
}

func TestConvertToZonedInfersUTC(t *testing.T) {
	zd := calendar.ConvertToZoned[gregorian.Date](unixtime.NewSeconds(700_790_400))
	assert.Equal(t, mustGregorian(t, 1992, 3, 17), zd.Date)
	assert.True(t, zd.Zone.IsUTC())
}

func TestConvertDateTimeAndZoned(t *testing.T) {
	dt := calendar.NewDateTime(mustGregorian(t, 2024, 4, 23), calendar.TimeSegments{Hour: 9})
	hdt := calendar.ConvertDateTime[hebrew.Date](dt)
	assert.Equal(t, dt.Time, hdt.Time)
	assert.Equal(t, dt.Date.Fixed(), hdt.Date.Fixed())

	z := dt.InZone(calendar.TimeZoneOffset{Hours: -5, Name: "EST"})
	hz := calendar.ConvertZoned[hebrew.Date](z)
	assert.Equal(t, z.Time, hz.Time)
	assert.Equal(t, z.Zone, hz.Zone)
	assert.Equal(t, z.Date.Fixed(), hz.Date.Fixed())
}
