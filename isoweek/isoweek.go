// Package isoweek implements the ISO 8601 week-date adapter.
// A date is year-week-weekday, where week 1 is the week containing the
// year's first Thursday and weekdays run Monday=1 .. Sunday=7. Years use
// astronomical numbering.
package isoweek

import (
	"fmt"

	"github.com/warp/calendar-engine/calendar"
	"github.com/warp/calendar-engine/gregorian"
)

// =============================================================================
// DATE
// =============================================================================

// Date is a validated ISO week date.
type Date struct {
	year calendar.AstronomicalYear
	week int // 1..52, or 53 in long years
	day  int // 1=Monday .. 7=Sunday
}

var (
	_ calendar.Date[Date] = Date{}
	_ calendar.Fielded    = Date{}
)

func init() {
	calendar.RegisterSystem(calendar.System{
		Name: "iso",
		Caps: calendar.Capabilities{Dates: true},
	})
}

// New validates and constructs an ISO week date.
func New(year calendar.AstronomicalYear, week, day int) (Date, error) {
	d := Date{year: year, week: week, day: day}
	if err := d.Validate(); err != nil {
		return Date{}, err
	}
	return d, nil
}

// Year returns the ISO year, which can differ from the Gregorian year of
// the same day around January 1.
func (d Date) Year() calendar.AstronomicalYear { return d.year }

// Week returns the week number, 1..53.
func (d Date) Week() int { return d.week }

// Day returns the ISO weekday, Monday=1 .. Sunday=7.
func (d Date) Day() int { return d.day }

func (d Date) String() string {
	return fmt.Sprintf("%04d-W%02d-%d", d.year, d.week, d.day)
}

// =============================================================================
// LONG YEARS
// =============================================================================

// IsLongYear reports whether an ISO year has 53 weeks: exactly when
// January 1 or December 31 of the Gregorian year falls on a Thursday.
func IsLongYear(year calendar.AstronomicalYear) bool {
	jan1, _ := gregorian.New(year, 1, 1)
	dec31, _ := gregorian.New(year, 12, 31)
	return jan1.Weekday() == calendar.Thursday || dec31.Weekday() == calendar.Thursday
}

// WeeksInYear returns 52 or 53.
func WeeksInYear(year calendar.AstronomicalYear) int {
	if IsLongYear(year) {
		return 53
	}
	return 52
}

// =============================================================================
// PIVOT CONVERSION
// =============================================================================

// Fixed converts the date to the pivot day count, anchoring to Gregorian
// December 28 of the previous year (always inside ISO week 1) and
// advancing week Sundays plus day more days.
func (d Date) Fixed() calendar.FixedDay {
	return fixedFrom(d.year, d.week, d.day)
}

func fixedFrom(year calendar.AstronomicalYear, week, day int) calendar.FixedDay {
	anchor, _ := gregorian.New(year-1, 12, 28)
	sunday := anchor.Fixed().AddDays(-1).WeekdayOnOrBefore(calendar.Sunday)
	return sunday.AddDays(7*week + day)
}

// FromFixed converts a pivot day to an ISO week date. The ISO year is
// estimated from the Gregorian year three days earlier (pulling the first
// three days of January into the preceding estimate) and disambiguated
// against the candidate year's week-1 start. The receiver is ignored.
func (Date) FromFixed(f calendar.FixedDay) Date {
	approx := gregorian.YearFromFixed(f.AddDays(-3))
	year := approx
	if f >= fixedFrom(approx+1, 1, 1) {
		year = approx + 1
	}
	week := int(calendar.FloorDiv(int64(f)-int64(fixedFrom(year, 1, 1)), 7)) + 1
	day := calendar.Amod(int(f), 7)
	return Date{year: year, week: week, day: day}
}

// Compare orders two dates.
func (d Date) Compare(other Date) int {
	a, b := d.Fixed(), other.Fixed()
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// Validate reports whether the date's fields are in range, including the
// 53-week rule for long years.
func (d Date) Validate() error {
	if max := WeeksInYear(d.year); d.week < 1 || d.week > max {
		return calendar.NewRangeError("week", int64(d.week), 1, int64(max), calendar.ErrInvalidWeek)
	}
	if d.day < 1 || d.day > 7 {
		return calendar.NewRangeError("weekday", int64(d.day), 1, 7, calendar.ErrInvalidDay)
	}
	return nil
}

// =============================================================================
// DERIVED FIELDS (Recommended contract)
// =============================================================================

func (d Date) CalendarName() string { return "iso" }
func (d Date) YearNumber() int      { return int(d.year) }

// MonthNumber reports the week number; the ISO week calendar has no months,
// and the week is the analogous subdivision formatting cares about.
func (d Date) MonthNumber() int { return d.week }

// DayOfMonth reports the ISO weekday, the day-within-subdivision analogue.
func (d Date) DayOfMonth() int { return d.day }

// DayOfYear returns the ordinal day within the ISO year, 1..371.
func (d Date) DayOfYear() int {
	return (d.week-1)*7 + d.day
}

// WeekOfYear returns the week number.
func (d Date) WeekOfYear() int { return d.week }

// Quarter groups weeks 13 apiece, with the tail of a long year in Q4.
func (d Date) Quarter() int {
	q := (d.week-1)/13 + 1
	if q > 4 {
		q = 4
	}
	return q
}

// Weekday returns the 0-based day of week.
func (d Date) Weekday() calendar.DayOfWeek { return d.Fixed().Weekday() }
