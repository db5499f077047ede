// Package hebrew implements the Hebrew (lunisolar) calendar adapter.
//
// This is the arithmetic ("fixed") Hebrew calendar: the year starts from a
// computed mean lunar conjunction (molad) plus the classical postponement
// corrections, not from observation. The adapter is a documented
// approximation; no correction for long-term molad drift is attempted.
//
// Months are numbered in the nominal Nisan-first order: Nisan=1 .. Adar=12,
// with Adar II=13 existing only in leap years (when month 12 is Adar I).
// The chronological year, however, begins with Tishri, month 7; the pivot
// conversions handle the split. Years use astronomical numbering.
package hebrew

import (
	"fmt"

	"github.com/warp/calendar-engine/calendar"
)

// Hebrew 0001-07-01 (1 Tishri of year 1) as a pivot day.
const epoch = -1373427

// Month numbers in nominal (Nisan-first) order.
const (
	Nisan = 1 + iota
	Iyyar
	Sivan
	Tammuz
	Av
	Elul
	Tishri
	Marcheshvan
	Kislev
	Tevet
	Shevat
	Adar
	AdarII
)

// =============================================================================
// DATE
// =============================================================================

// Date is a validated Hebrew calendar date.
type Date struct {
	year  calendar.AstronomicalYear
	month int // 1..12, or 13 in leap years
	day   int // 1..29 or 30 depending on month and year
}

var (
	_ calendar.Date[Date] = Date{}
	_ calendar.Fielded    = Date{}
	_ calendar.MonthNamer = Date{}
)

func init() {
	calendar.RegisterSystem(calendar.System{
		Name:        "hebrew",
		Caps:        calendar.Capabilities{Dates: true},
		Approximate: true,
	})
}

// New validates and constructs a Hebrew date.
func New(year calendar.AstronomicalYear, month, day int) (Date, error) {
	d := Date{year: year, month: month, day: day}
	if err := d.Validate(); err != nil {
		return Date{}, err
	}
	return d, nil
}

// Year returns the astronomical Hebrew year.
func (d Date) Year() calendar.AstronomicalYear { return d.year }

// Month returns the nominal month number, 1..13.
func (d Date) Month() int { return d.month }

// Day returns the day of month.
func (d Date) Day() int { return d.day }

func (d Date) String() string {
	return fmt.Sprintf("%d %s %d", d.day, d.MonthName(), d.year)
}

// =============================================================================
// YEAR STRUCTURE - leap years, year starts, year lengths
// =============================================================================

// IsLeapYear reports whether a Hebrew year has 13 months, per the 19-year
// Metonic cycle: years 3, 6, 8, 11, 14, 17 and 19 of each cycle.
func IsLeapYear(year calendar.AstronomicalYear) bool {
	return calendar.FloorMod(7*int64(year)+1, 19) < 7
}

// MonthsInYear returns 12, or 13 in leap years.
func MonthsInYear(year calendar.AstronomicalYear) int {
	if IsLeapYear(year) {
		return 13
	}
	return 12
}

// elapsedDays returns the number of days from the Hebrew epoch to the mean
// conjunction of Tishri of the given year, with the molad-based postponement
// folded in: months elapsed in whole Metonic cycles, converted to halakim
// (1/1080 hour parts) and then days, postponing by one day when the
// conjunction falls on a Sunday, Wednesday or Friday.
func elapsedDays(year calendar.AstronomicalYear) int64 {
	monthsElapsed := calendar.FloorDiv(235*int64(year)-234, 19)
	partsElapsed := 12084 + 13753*monthsElapsed
	days := 29*monthsElapsed + calendar.FloorDiv(partsElapsed, 25920)
	if calendar.FloorMod(3*(days+1), 7) < 3 {
		days++
	}
	return days
}

// yearLengthCorrection shifts the year start by 0, 1 or 2 days so that no
// year ends up with an impossible length. Only the two neighboring years'
// elapsed-day counts are consulted.
func yearLengthCorrection(year calendar.AstronomicalYear) int64 {
	ny0 := elapsedDays(year - 1)
	ny1 := elapsedDays(year)
	ny2 := elapsedDays(year + 1)
	switch {
	case ny2-ny1 == 356: // next year would be 356 days: postpone two
		return 2
	case ny1-ny0 == 382: // previous year would be 382 days: postpone one
		return 1
	default:
		return 0
	}
}

// NewYear returns the pivot day of 1 Tishri of the given year.
func NewYear(year calendar.AstronomicalYear) calendar.FixedDay {
	return calendar.FixedDay(int64(epoch) + elapsedDays(year) + yearLengthCorrection(year))
}

// DaysInYear returns the year length: 353, 354, 355, 383, 384 or 385.
func DaysInYear(year calendar.AstronomicalYear) int {
	return int(int64(NewYear(year+1)) - int64(NewYear(year)))
}

// longMarcheshvan reports whether Marcheshvan has 30 days (year lengths
// 355 and 385).
func longMarcheshvan(year calendar.AstronomicalYear) bool {
	switch DaysInYear(year) {
	case 355, 385:
		return true
	}
	return false
}

// shortKislev reports whether Kislev has 29 days (year lengths 353 and 383).
func shortKislev(year calendar.AstronomicalYear) bool {
	switch DaysInYear(year) {
	case 353, 383:
		return true
	}
	return false
}

// DaysInMonth returns the length of a month: 29 or 30.
func DaysInMonth(year calendar.AstronomicalYear, month int) int {
	switch {
	case month == Iyyar || month == Tammuz || month == Elul || month == Tevet || month == AdarII:
		return 29
	case month == Adar && !IsLeapYear(year):
		return 29
	case month == Marcheshvan && !longMarcheshvan(year):
		return 29
	case month == Kislev && shortKislev(year):
		return 29
	default:
		return 30
	}
}

// =============================================================================
// PIVOT CONVERSION
// =============================================================================

// Fixed converts the date to the pivot day count by accumulating month
// lengths from Tishri, the chronological start of the year. Months before
// Tishri in nominal order (Nisan..Elul) fall in the later half of the
// chronological year.
func (d Date) Fixed() calendar.FixedDay {
	return fixedFrom(d.year, d.month, d.day)
}

func fixedFrom(year calendar.AstronomicalYear, month, day int) calendar.FixedDay {
	f := int64(NewYear(year))
	if month < Tishri {
		for m := Tishri; m <= MonthsInYear(year); m++ {
			f += int64(DaysInMonth(year, m))
		}
		for m := Nisan; m < month; m++ {
			f += int64(DaysInMonth(year, m))
		}
	} else {
		for m := Tishri; m < month; m++ {
			f += int64(DaysInMonth(year, m))
		}
	}
	return calendar.FixedDay(f + int64(day) - 1)
}

// FromFixed converts a pivot day to a Hebrew date. The year estimate uses
// the mean year length 35975351/98496 days; the loop past it advances at
// most a few steps. The receiver is ignored.
func (Date) FromFixed(f calendar.FixedDay) Date {
	approx := calendar.FloorDiv((int64(f)-epoch)*98496, 35975351) + 1
	year := calendar.AstronomicalYear(approx - 1)
	for NewYear(year+1) <= f {
		year++
	}
	start := Nisan
	if f < fixedFrom(year, Nisan, 1) {
		start = Tishri
	}
	month := start
	for f > fixedFrom(year, month, DaysInMonth(year, month)) {
		month++
	}
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

// Validate reports whether the date's fields are in range for its year.
func (d Date) Validate() error {
	if max := MonthsInYear(d.year); d.month < 1 || d.month > max {
		return calendar.NewRangeError("month", int64(d.month), 1, int64(max), calendar.ErrInvalidMonth)
	}
	if max := DaysInMonth(d.year, d.month); d.day < 1 || d.day > max {
		return calendar.NewRangeError("day", int64(d.day), 1, int64(max), calendar.ErrInvalidDay)
	}
	return nil
}

// =============================================================================
// DERIVED FIELDS (Recommended contract)
// =============================================================================

func (d Date) CalendarName() string { return "hebrew" }
func (d Date) YearNumber() int      { return int(d.year) }
func (d Date) MonthNumber() int     { return d.month }
func (d Date) DayOfMonth() int      { return d.day }

// DayOfYear counts from 1 Tishri, the chronological start of the year.
func (d Date) DayOfYear() int {
	return int(int64(d.Fixed())-int64(NewYear(d.year))) + 1
}

// WeekOfYear numbers weeks of seven days from 1 Tishri.
func (d Date) WeekOfYear() int {
	return (d.DayOfYear()-1)/7 + 1
}

// Quarter divides the chronological year into four spans of three or four
// months starting at Tishri.
func (d Date) Quarter() int {
	chronological := calendar.Amod(d.month-Tishri+1, MonthsInYear(d.year))
	q := (chronological-1)/3 + 1
	if q > 4 {
		q = 4
	}
	return q
}

// Weekday returns the 0-based day of week.
func (d Date) Weekday() calendar.DayOfWeek { return d.Fixed().Weekday() }

// =============================================================================
// MONTH NAMES - leap-year aware, overrides the default tables
// =============================================================================

var monthNames = [14]string{
	"", "Nisan", "Iyyar", "Sivan", "Tammuz", "Av", "Elul",
	"Tishri", "Marcheshvan", "Kislev", "Tevet", "Shevat", "Adar", "Adar II",
}

// MonthName returns the month's name. In leap years month 12 is Adar I.
func (d Date) MonthName() string {
	if d.month == Adar && IsLeapYear(d.year) {
		return "Adar I"
	}
	if d.month < 1 || d.month > 13 {
		return "?"
	}
	return monthNames[d.month]
}
