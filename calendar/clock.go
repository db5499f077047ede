/*
clock.go - Time-of-day representations

PURPOSE:
  Three interchangeable encodings of time within a day:
  - TimeSegments: hour/minute/second/nanosecond fields
  - NanoOfDay:    total nanoseconds since midnight
  - DayFraction:  fraction of the day elapsed, in [0, 1)

PRECISION:
  TimeSegments <-> NanoOfDay conversions are exact integer arithmetic.
  Anything through DayFraction is float-based and intentionally lossy;
  callers needing sub-second fidelity must avoid the fraction encoding.

SEE ALSO:
  - datetime.go: composites pairing a date with a time of day
  - api/dto.go: lossless decimal handling of fractions at the API boundary
*/
package calendar

// Nanosecond bucket sizes for a day.
const (
	NanosPerSecond int64 = 1_000_000_000
	NanosPerMinute int64 = 60 * NanosPerSecond
	NanosPerHour   int64 = 60 * NanosPerMinute
	NanosPerDay    int64 = 24 * NanosPerHour

	SecondsPerDay int64 = 86_400
	MillisPerDay  int64 = 86_400_000
)

// =============================================================================
// TIME SEGMENTS - hour/minute/second/nanosecond
// =============================================================================

// TimeSegments is a validated wall-clock time of day.
type TimeSegments struct {
	Hour   int // 0..23
	Minute int // 0..59
	Second int // 0..59
	Nano   int // 0..999_999_999
}

// NewTimeSegments validates and constructs a time of day.
func NewTimeSegments(hour, minute, second, nano int) (TimeSegments, error) {
	switch {
	case hour < 0 || hour > 23:
		return TimeSegments{}, rangeErr("hour", int64(hour), 0, 23, ErrInvalidHour)
	case minute < 0 || minute > 59:
		return TimeSegments{}, rangeErr("minute", int64(minute), 0, 59, ErrInvalidMinute)
	case second < 0 || second > 59:
		return TimeSegments{}, rangeErr("second", int64(second), 0, 59, ErrInvalidSecond)
	case nano < 0 || nano > 999_999_999:
		return TimeSegments{}, rangeErr("nanosecond", int64(nano), 0, 999_999_999, ErrInvalidNano)
	}
	return TimeSegments{Hour: hour, Minute: minute, Second: second, Nano: nano}, nil
}

// Midnight returns the start of day.
func Midnight() TimeSegments { return TimeSegments{} }

// NanoOfDay converts to total nanoseconds since midnight. Exact.
func (t TimeSegments) NanoOfDay() NanoOfDay {
	return NanoOfDay(int64(t.Hour)*NanosPerHour +
		int64(t.Minute)*NanosPerMinute +
		int64(t.Second)*NanosPerSecond +
		int64(t.Nano))
}

// Fraction converts to a day fraction. Lossy: float64 cannot represent
// every nanosecond of the day.
func (t TimeSegments) Fraction() DayFraction {
	return DayFraction(float64(t.NanoOfDay()) / float64(NanosPerDay))
}

// Compare orders two times of day.
func (t TimeSegments) Compare(other TimeSegments) int {
	a, b := t.NanoOfDay(), other.NanoOfDay()
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// Validate reports whether all fields are in range.
func (t TimeSegments) Validate() error {
	_, err := NewTimeSegments(t.Hour, t.Minute, t.Second, t.Nano)
	return err
}

// =============================================================================
// NANO OF DAY - total nanoseconds since midnight
// =============================================================================

// NanoOfDay counts nanoseconds since midnight, in [0, NanosPerDay).
type NanoOfDay int64

// NewNanoOfDay validates and constructs a nanosecond-of-day value.
func NewNanoOfDay(v int64) (NanoOfDay, error) {
	if v < 0 || v >= NanosPerDay {
		return 0, rangeErr("nanosecond of day", v, 0, NanosPerDay-1, ErrInvalidNano)
	}
	return NanoOfDay(v), nil
}

// Segments converts back to hour/minute/second/nanosecond fields. Exact.
func (n NanoOfDay) Segments() TimeSegments {
	v := int64(n)
	return TimeSegments{
		Hour:   int(v / NanosPerHour),
		Minute: int(v % NanosPerHour / NanosPerMinute),
		Second: int(v % NanosPerMinute / NanosPerSecond),
		Nano:   int(v % NanosPerSecond),
	}
}

// Fraction converts to a day fraction. Lossy.
func (n NanoOfDay) Fraction() DayFraction {
	return DayFraction(float64(n) / float64(NanosPerDay))
}

// Validate reports whether the value is in range.
func (n NanoOfDay) Validate() error {
	_, err := NewNanoOfDay(int64(n))
	return err
}

// =============================================================================
// DAY FRACTION - float fraction of the day in [0, 1)
// =============================================================================

// DayFraction encodes time of day as the fraction of the day elapsed.
// Both conversions to and from it go through float64 and are lossy.
type DayFraction float64

// NewDayFraction validates and constructs a day fraction.
func NewDayFraction(v float64) (DayFraction, error) {
	if v < 0 || v >= 1 {
		return 0, &FractionError{Value: v}
	}
	return DayFraction(v), nil
}

// NanoOfDay converts to nanoseconds since midnight, truncating. The result
// is clamped into range so float rounding at the top of the interval cannot
// produce an out-of-range value.
func (fr DayFraction) NanoOfDay() NanoOfDay {
	v := int64(float64(fr) * float64(NanosPerDay))
	if v >= NanosPerDay {
		v = NanosPerDay - 1
	}
	if v < 0 {
		v = 0
	}
	return NanoOfDay(v)
}

// Segments converts to hour/minute/second/nanosecond fields. Lossy.
func (fr DayFraction) Segments() TimeSegments {
	return fr.NanoOfDay().Segments()
}

// Validate reports whether the value is in [0, 1).
func (fr DayFraction) Validate() error {
	_, err := NewDayFraction(float64(fr))
	return err
}
