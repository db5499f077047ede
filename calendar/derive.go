/*
derive.go - Generic arithmetic derived from the minimal pivot contract

PURPOSE:
  Given only an adapter's two pivot conversions plus comparison and
  validation, this file mechanically produces day arithmetic, weekday
  search and value repair. Adapters never reimplement any of it; the
  hard calendar-specific work stays isolated in Fixed/FromFixed.

THE CONTRACT:
  Date[D] is a self-referential constraint: a calendar date type D
  satisfies it by converting itself to and from the pivot. FromFixed is a
  method rather than a package function so that generic code can call it
  on a zero value of D; implementations must ignore the receiver.

WEEKDAY NUMBERING:
  Everything here uses the internal 0-based Sunday=0 numbering.
  WeekdayOnOrBefore subtracts floorMod(count-k, 7) from the pivot count;
  every other search is a fixed day-shift composed with it.

SEE ALSO:
  - fixed.go: FixedDay and the weekday primitives
  - convert.go: cross-calendar conversion over the same contract
*/
package calendar

// =============================================================================
// THE PIVOT CONTRACT
// =============================================================================

// Date is the minimal ("bare") contract a calendar adapter satisfies to
// receive derived behavior and participate in conversion.
type Date[D any] interface {
	// Fixed converts the date to the pivot day count.
	Fixed() FixedDay

	// FromFixed converts a pivot day count to a date. The receiver is
	// ignored; it exists only so generic code can invoke the conversion.
	FromFixed(FixedDay) D

	// Compare returns -1, 0 or +1 as the receiver is before, equal to or
	// after the argument.
	Compare(D) int

	// Validate reports whether the value is well formed.
	Validate() error
}

// =============================================================================
// DERIVED ARITHMETIC
// =============================================================================

// AddDays returns the date n days after d (before, for negative n).
func AddDays[D Date[D]](d D, n int) D {
	return d.FromFixed(d.Fixed().AddDays(n))
}

// SubDays returns the date n days before d.
func SubDays[D Date[D]](d D, n int) D {
	return AddDays(d, -n)
}

// DaysBetween returns the number of days from 'from' to 'to'. Negative when
// 'to' is earlier.
func DaysBetween[D Date[D]](from, to D) int {
	return to.Fixed().Sub(from.Fixed())
}

// Weekday returns the 0-based (Sunday=0) day of week of d.
func Weekday[D Date[D]](d D) DayOfWeek {
	return d.Fixed().Weekday()
}

// WeekdayOnOrBefore returns the last date on or before d falling on weekday k.
func WeekdayOnOrBefore[D Date[D]](d D, k DayOfWeek) D {
	return d.FromFixed(d.Fixed().WeekdayOnOrBefore(k))
}

// WeekdayBefore returns the last date strictly before d falling on weekday k.
func WeekdayBefore[D Date[D]](d D, k DayOfWeek) D {
	return d.FromFixed(d.Fixed().AddDays(-1).WeekdayOnOrBefore(k))
}

// WeekdayAfter returns the first date strictly after d falling on weekday k.
func WeekdayAfter[D Date[D]](d D, k DayOfWeek) D {
	return d.FromFixed(d.Fixed().AddDays(7).WeekdayOnOrBefore(k))
}

// WeekdayNearest returns the date nearest d falling on weekday k.
func WeekdayNearest[D Date[D]](d D, k DayOfWeek) D {
	return d.FromFixed(d.Fixed().AddDays(3).WeekdayOnOrBefore(k))
}

// WeekdayOnOrAfter returns the first date on or after d falling on weekday k.
func WeekdayOnOrAfter[D Date[D]](d D, k DayOfWeek) D {
	return d.FromFixed(d.Fixed().AddDays(6).WeekdayOnOrBefore(k))
}

// NthWeekday returns, for n > 0, the n-th occurrence of weekday k on or
// after d; for n < 0, the |n|-th occurrence on or before d; for n == 0,
// d unchanged. A date already on k counts as the first occurrence.
func NthWeekday[D Date[D]](d D, n int, k DayOfWeek) D {
	if n == 0 {
		return d
	}
	return d.FromFixed(d.Fixed().NthWeekday(n, k))
}

// NearestValid repairs an invalid value by round-tripping it through the
// pivot. Every pivot day maps to exactly one valid value per adapter, so
// repair always succeeds: Gregorian February 30 of a non-leap year
// normalizes to March 2. Valid values are returned unchanged.
func NearestValid[D Date[D]](d D) D {
	if d.Validate() == nil {
		return d
	}
	return d.FromFixed(d.Fixed())
}
