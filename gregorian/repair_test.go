package gregorian

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/warp/calendar-engine/calendar"
)

// Invalid dates cannot be built through New, so the repair tests construct
// the raw struct directly.

func TestNearestValidRepairsOverflow(t *testing.T) {
	cases := []struct {
		in   Date
		want Date
	}{
		// February 30 of a non-leap year lands on March 2.
		{Date{year: 2023, month: 2, day: 30}, Date{year: 2023, month: 3, day: 2}},
		// In a leap year the same fields land one day earlier.
		{Date{year: 2024, month: 2, day: 30}, Date{year: 2024, month: 3, day: 1}},
		// Day overflow past the end of the year rolls into the next.
		{Date{year: 2023, month: 12, day: 32}, Date{year: 2024, month: 1, day: 1}},
		{Date{year: 2023, month: 4, day: 31}, Date{year: 2023, month: 5, day: 1}},
	}
	for _, c := range cases {
		assert.Error(t, c.in.Validate())
		got := calendar.NearestValid(c.in)
		assert.Equal(t, c.want, got)
		assert.NoError(t, got.Validate())
	}
}

func TestNearestValidIdempotent(t *testing.T) {
	d := Date{year: 2023, month: 2, day: 30}
	once := calendar.NearestValid(d)
	assert.Equal(t, once, calendar.NearestValid(once))
}
