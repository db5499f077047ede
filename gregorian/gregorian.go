// Package gregorian implements the Gregorian calendar adapter.
// It uses the engine's pivot contract with the proleptic Gregorian rules:
// the calendar is extended backward before its historical introduction,
// and years follow the astronomical numbering (year 0 exists).
package gregorian

import (
	"fmt"

	"github.com/warp/calendar-engine/calendar"
)

// =============================================================================
// DATE
// =============================================================================

// Date is a validated Gregorian calendar date.
type Date struct {
	year  calendar.AstronomicalYear
	month int // 1..12
	day   int // 1..DaysInMonth
}

// Compile-time checks against the engine contracts.
var (
	_ calendar.Date[Date] = Date{}
	_ calendar.Fielded    = Date{}
)

func init() {
	calendar.RegisterSystem(calendar.System{
		Name: "gregorian",
		Caps: calendar.Capabilities{Dates: true},
	})
}

// New validates and constructs a Gregorian date.
func New(year calendar.AstronomicalYear, month, day int) (Date, error) {
	d := Date{year: year, month: month, day: day}
	if err := d.Validate(); err != nil {
		return Date{}, err
	}
	return d, nil
}

// Year returns the astronomical year.
func (d Date) Year() calendar.AstronomicalYear { return d.year }

// Month returns the month, 1..12.
func (d Date) Month() int { return d.month }

// Day returns the day of month.
func (d Date) Day() int { return d.day }

func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.year, d.month, d.day)
}

// =============================================================================
// LEAP YEARS AND MONTH LENGTHS
// =============================================================================

// IsLeapYear reports whether a Gregorian year is leap: divisible by 4,
// and not by 100 unless also by 400.
func IsLeapYear(year calendar.AstronomicalYear) bool {
	y := int64(year)
	return calendar.FloorMod(y, 4) == 0 &&
		(calendar.FloorMod(y, 100) != 0 || calendar.FloorMod(y, 400) == 0)
}

var monthDays = [13]int{0, 31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

// DaysInMonth returns the length of a month in the given year.
func DaysInMonth(year calendar.AstronomicalYear, month int) int {
	if month == 2 && IsLeapYear(year) {
		return 29
	}
	return monthDays[month]
}

// DaysInYear returns 365 or 366.
func DaysInYear(year calendar.AstronomicalYear) int {
	if IsLeapYear(year) {
		return 366
	}
	return 365
}

// =============================================================================
// PIVOT CONVERSION
// =============================================================================

// Fixed converts the date to the pivot day count: days in all prior years
// (with the 4/100/400 leap corrections), a month-offset estimate corrected
// for the length of February, then the day of month.
func (d Date) Fixed() calendar.FixedDay {
	return fixedFrom(d.year, d.month, d.day)
}

func fixedFrom(year calendar.AstronomicalYear, month, day int) calendar.FixedDay {
	prior := int64(year) - 1
	f := 365*prior +
		calendar.FloorDiv(prior, 4) -
		calendar.FloorDiv(prior, 100) +
		calendar.FloorDiv(prior, 400) +
		(int64(367*month)-362)/12
	if month > 2 {
		if IsLeapYear(year) {
			f--
		} else {
			f -= 2
		}
	}
	return calendar.FixedDay(f + int64(day))
}

// YearFromFixed returns the Gregorian year containing a pivot day, by
// decomposing the elapsed days into 400/100/4/1-year periods. When the
// remainder lands exactly on a century or quadrennium boundary the day is
// the last day (Dec 31) of a leap year, and the year must not be bumped.
func YearFromFixed(f calendar.FixedDay) calendar.AstronomicalYear {
	d0 := int64(f) - 1
	n400 := calendar.FloorDiv(d0, 146097)
	d1 := calendar.FloorMod(d0, 146097)
	n100 := calendar.FloorDiv(d1, 36524)
	d2 := calendar.FloorMod(d1, 36524)
	n4 := calendar.FloorDiv(d2, 1461)
	d3 := calendar.FloorMod(d2, 1461)
	n1 := calendar.FloorDiv(d3, 365)
	year := 400*n400 + 100*n100 + 4*n4 + n1
	if n100 == 4 || n1 == 4 {
		return calendar.AstronomicalYear(year)
	}
	return calendar.AstronomicalYear(year + 1)
}

// FromFixed converts a pivot day to a Gregorian date. The receiver is
// ignored.
func (Date) FromFixed(f calendar.FixedDay) Date {
	year := YearFromFixed(f)
	priorDays := int64(f) - int64(fixedFrom(year, 1, 1))
	var correction int64
	if f >= fixedFrom(year, 3, 1) {
		if IsLeapYear(year) {
			correction = 1
		} else {
			correction = 2
		}
	}
	month := int((12*(priorDays+correction) + 373) / 367)
	day := int(int64(f)-int64(fixedFrom(year, month, 1))) + 1
	return Date{year: year, month: month, day: day}
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

// Validate reports whether the date's fields are in range.
func (d Date) Validate() error {
	if d.month < 1 || d.month > 12 {
		return calendar.NewRangeError("month", int64(d.month), 1, 12, calendar.ErrInvalidMonth)
	}
	if max := DaysInMonth(d.year, d.month); d.day < 1 || d.day > max {
		return calendar.NewRangeError("day", int64(d.day), 1, int64(max), calendar.ErrInvalidDay)
	}
	return nil
}

// =============================================================================
// DERIVED FIELDS (Recommended contract)
// =============================================================================

func (d Date) CalendarName() string { return "gregorian" }
func (d Date) YearNumber() int      { return int(d.year) }
func (d Date) MonthNumber() int     { return d.month }
func (d Date) DayOfMonth() int      { return d.day }

// DayOfYear returns the ordinal day within the year, 1..366.
func (d Date) DayOfYear() int {
	return int(int64(d.Fixed())-int64(fixedFrom(d.year, 1, 1))) + 1
}

// WeekOfYear returns the ISO 8601 week number, 1..53. The week is found by
// shifting to the Thursday of the same ISO week, which always lies inside
// the ISO year.
func (d Date) WeekOfYear() int {
	offset := int(calendar.Thursday) - int(d.Weekday())
	if offset == 4 {
		// Sunday closes the ISO week; its Thursday is three days back.
		offset = -3
	}
	var probe Date
	t := probe.FromFixed(d.Fixed().AddDays(offset))
	return (t.DayOfYear()-1)/7 + 1
}

// Quarter returns the calendar quarter, 1..4.
func (d Date) Quarter() int { return (d.month-1)/3 + 1 }

// Weekday returns the 0-based day of week.
func (d Date) Weekday() calendar.DayOfWeek { return d.Fixed().Weekday() }
