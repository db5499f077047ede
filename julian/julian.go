// Package julian implements the Julian calendar adapter.
// Years use Anno Domini numbering: there is no year 0, so the year before
// A.D. 1 is -1 (1 B.C.). The leap rule splits accordingly: positive years
// are leap when divisible by 4, negative years when year mod 4 == 3.
package julian

import (
	"fmt"

	"github.com/warp/calendar-engine/calendar"
)

// Julian 0001-01-01 is pivot day -1 (Gregorian 0000-12-30).
const epoch = -1

// =============================================================================
// DATE
// =============================================================================

// Date is a validated Julian calendar date.
type Date struct {
	year  calendar.AnnoDominiYear
	month int // 1..12
	day   int // 1..DaysInMonth
}

var (
	_ calendar.Date[Date] = Date{}
	_ calendar.Fielded    = Date{}
)

func init() {
	calendar.RegisterSystem(calendar.System{
		Name: "julian",
		Caps: calendar.Capabilities{Dates: true},
	})
}

// New validates and constructs a Julian date.
func New(year calendar.AnnoDominiYear, month, day int) (Date, error) {
	d := Date{year: year, month: month, day: day}
	if err := d.Validate(); err != nil {
		return Date{}, err
	}
	return d, nil
}

// Year returns the Anno Domini year (never 0).
func (d Date) Year() calendar.AnnoDominiYear { return d.year }

// Month returns the month, 1..12.
func (d Date) Month() int { return d.month }

// Day returns the day of month.
func (d Date) Day() int { return d.day }

func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d (julian)", d.year, d.month, d.day)
}

// =============================================================================
// LEAP YEARS AND MONTH LENGTHS
// =============================================================================

// IsLeapYear reports whether a Julian year is leap. The negative branch
// compensates for the missing year 0: B.C. years 1, 5, 9, ... (-1, -5, ...)
// are the leap ones, and those satisfy year mod 4 == 3 under floored mod.
func IsLeapYear(year calendar.AnnoDominiYear) bool {
	if year > 0 {
		return calendar.FloorMod(int64(year), 4) == 0
	}
	return calendar.FloorMod(int64(year), 4) == 3
}

var monthDays = [13]int{0, 31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

// DaysInMonth returns the length of a month in the given year.
func DaysInMonth(year calendar.AnnoDominiYear, month int) int {
	if month == 2 && IsLeapYear(year) {
		return 29
	}
	return monthDays[month]
}

// =============================================================================
// PIVOT CONVERSION
// =============================================================================

// Fixed converts the date to the pivot day count. Same structural shape as
// the Gregorian conversion but without the century corrections, and with
// the no-zero year folded into astronomical numbering first.
func (d Date) Fixed() calendar.FixedDay {
	return fixedFrom(d.year, d.month, d.day)
}

func fixedFrom(year calendar.AnnoDominiYear, month, day int) calendar.FixedDay {
	y := int64(year)
	if y < 0 {
		y++
	}
	f := int64(epoch) - 1 +
		365*(y-1) +
		calendar.FloorDiv(y-1, 4) +
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

// FromFixed converts a pivot day to a Julian date. The receiver is ignored.
func (Date) FromFixed(f calendar.FixedDay) Date {
	approx := calendar.FloorDiv(4*(int64(f)-epoch)+1464, 1461)
	var year calendar.AnnoDominiYear
	if approx <= 0 {
		year = calendar.AnnoDominiYear(approx - 1)
	} else {
		year = calendar.AnnoDominiYear(approx)
	}
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

// Validate reports whether the date's fields are in range. Year 0 does not
// exist in Anno Domini numbering.
func (d Date) Validate() error {
	if d.year == 0 {
		return calendar.NewRangeError("year", 0, 1, 1, calendar.ErrInvalidYear)
	}
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

func (d Date) CalendarName() string { return "julian" }
func (d Date) YearNumber() int      { return int(d.year) }
func (d Date) MonthNumber() int     { return d.month }
func (d Date) DayOfMonth() int      { return d.day }

// DayOfYear returns the ordinal day within the Julian year.
func (d Date) DayOfYear() int {
	return int(int64(d.Fixed())-int64(fixedFrom(d.year, 1, 1))) + 1
}

// WeekOfYear numbers weeks from January 1, seven days apiece. The Julian
// calendar predates ISO weeks, so no Thursday rule applies.
func (d Date) WeekOfYear() int {
	return (d.DayOfYear()-1)/7 + 1
}

// Quarter returns the calendar quarter, 1..4.
func (d Date) Quarter() int { return (d.month-1)/3 + 1 }

// Weekday returns the 0-based day of week.
func (d Date) Weekday() calendar.DayOfWeek { return d.Fixed().Weekday() }
