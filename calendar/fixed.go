/*
Package calendar provides the core multi-calendar conversion engine.

PURPOSE:
  This package contains the calendar-agnostic types and algorithms that every
  calendar adapter builds on. Whether converting Gregorian, Julian, ISO week
  or Hebrew dates, the same pivot representation and derivation layer handle
  day arithmetic, weekday search and cross-calendar conversion.

KEY CONCEPTS IN THIS FILE (fixed.go):
  - FixedDay: The pivot. A signed day count where day 1 is Gregorian
    0001-01-01 (astronomical year 1). All adapters convert through it.
  - DayOfWeek: 0-based weekday (Sunday=0). Day 1 of the pivot is a Monday,
    so the weekday of day n is simply floorMod(n, 7).
  - Floored division helpers: calendrical formulas need mathematical
    (floored) quotient and remainder, not Go's truncated operators.

DESIGN PRINCIPLES:
  1. Immutability: All values are plain value types; arithmetic returns
     new values.
  2. One origin: Every adapter must agree that pivot day 1 is Gregorian
     0001-01-01. Round-trip correctness depends on it.
  3. Purity: No I/O, no shared state. Safe for concurrent use.

SEE ALSO:
  - derive.go: Generic arithmetic derived from the pivot contract
  - year.go: Astronomical vs Anno Domini year numbering
  - convert.go: Cross-calendar conversion through the pivot
*/
package calendar

// =============================================================================
// FIXED DAY - The pivot representation
// =============================================================================

// FixedDay is the canonical day count shared by all calendars. Day 1 is
// Gregorian January 1 of astronomical year 1. The underlying int32 bounds
// the representable range to roughly ±5.8 million years; no further range
// checking is performed.
type FixedDay int32

// Unix epoch 1970-01-01 as a pivot day. Used by the unixtime adapters.
const UnixEpoch FixedDay = 719163

// AddDays returns the pivot day n days after f (before, for negative n).
func (f FixedDay) AddDays(n int) FixedDay { return f + FixedDay(n) }

// Sub returns the number of days from other to f.
func (f FixedDay) Sub(other FixedDay) int { return int(f) - int(other) }

// Weekday returns the 0-based day of week of f. Pivot day 1 is a Monday,
// so no epoch offset is needed beyond the Sunday=0 alignment.
func (f FixedDay) Weekday() DayOfWeek {
	return DayOfWeek(FloorMod(int64(f), 7))
}

// WeekdayOnOrBefore returns the last pivot day on or before f whose weekday
// is k. This is the primitive every other weekday search reduces to.
func (f FixedDay) WeekdayOnOrBefore(k DayOfWeek) FixedDay {
	return f - FixedDay(FloorMod(int64(f)-int64(k), 7))
}

// NthWeekday returns, for n > 0, the n-th pivot day with weekday k on or
// after f; for n < 0, the |n|-th on or before f; for n == 0, f itself.
// When f already falls on k it counts as the first occurrence either way.
func (f FixedDay) NthWeekday(n int, k DayOfWeek) FixedDay {
	switch {
	case n > 0:
		return f.AddDays(-1).WeekdayOnOrBefore(k).AddDays(7 * n)
	case n < 0:
		return f.AddDays(7).WeekdayOnOrBefore(k).AddDays(7 * n)
	default:
		return f
	}
}

// =============================================================================
// DAY OF WEEK - internal 0-based numbering (Sunday=0)
// =============================================================================

// DayOfWeek numbers the days of the week with Sunday=0 through Saturday=6.
// This is the convention used by all pivot arithmetic. Presentation code
// that needs the ISO 1-based Monday..Sunday numbering uses ISO().
type DayOfWeek int

const (
	Sunday DayOfWeek = iota
	Monday
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
)

var dayNames = [...]string{"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"}

func (d DayOfWeek) String() string {
	if d < 0 || d > 6 {
		return "DayOfWeek(?)"
	}
	return dayNames[d]
}

// ISO returns the 1-based ISO numbering of d: Monday=1 .. Sunday=7.
func (d DayOfWeek) ISO() int {
	return Amod(int(d), 7)
}

// FromISO converts an ISO 1-based weekday (Monday=1..Sunday=7) to the
// internal 0-based numbering.
func FromISO(iso int) DayOfWeek {
	return DayOfWeek(iso % 7)
}

// =============================================================================
// FLOORED ARITHMETIC - shared by every adapter
// =============================================================================

// FloorDiv returns the floored quotient of a and b, rounding toward negative
// infinity. Go's / operator truncates toward zero, which is wrong for the
// negative day counts and years calendrical formulas produce.
func FloorDiv(a, b int64) int64 {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

// FloorMod returns the floored remainder of a and b. The result has the sign
// of b.
func FloorMod(a, b int64) int64 {
	return a - b*FloorDiv(a, b)
}

// Amod is the "adjusted mod": like FloorMod but mapping 0 to b, giving a
// result in 1..b. Used wherever a 1-based cyclic index is needed (ISO
// weekdays, month-of-cycle computations).
func Amod(a, b int) int {
	m := int(FloorMod(int64(a), int64(b)))
	if m == 0 {
		return b
	}
	return m
}
