// Package unixtime implements the Unix-seconds and Unix-milliseconds
// adapters. These are degenerate calendars: a value is a single signed
// count from the 1970-01-01 epoch, and the only meaningful projections are
// the pivot day and the nanosecond of day. Both adapters therefore satisfy
// the date-time tier of the conversion contract, not just the date tier.
package unixtime

import (
	"fmt"

	"github.com/warp/calendar-engine/calendar"
)

func init() {
	calendar.RegisterSystem(calendar.System{
		Name: "unix-seconds",
		Caps: calendar.Capabilities{Dates: true, Times: true},
	})
	calendar.RegisterSystem(calendar.System{
		Name: "unix-millis",
		Caps: calendar.Capabilities{Dates: true, Times: true},
	})
}

// =============================================================================
// UNIX SECONDS
// =============================================================================

// Seconds is a count of seconds since 1970-01-01T00:00:00 UTC.
type Seconds struct {
	sec int64
}

var (
	_ calendar.Date[Seconds]  = Seconds{}
	_ calendar.FixedDateTimer = Seconds{}
)

// NewSeconds constructs a Unix-seconds value. Every int64 is valid.
func NewSeconds(sec int64) Seconds { return Seconds{sec: sec} }

// Unix returns the raw second count.
func (s Seconds) Unix() int64 { return s.sec }

func (s Seconds) String() string { return fmt.Sprintf("unix:%d", s.sec) }

// Fixed returns the pivot day containing the instant. The affine map
// floors toward earlier days, so pre-epoch instants land on the right day.
func (s Seconds) Fixed() calendar.FixedDay {
	return calendar.UnixEpoch.AddDays(int(calendar.FloorDiv(s.sec, calendar.SecondsPerDay)))
}

// FromFixed returns the start of the given pivot day. The receiver is
// ignored.
func (Seconds) FromFixed(f calendar.FixedDay) Seconds {
	return Seconds{sec: int64(f.Sub(calendar.UnixEpoch)) * calendar.SecondsPerDay}
}

// NanoOfDay returns the sub-day offset of the instant.
func (s Seconds) NanoOfDay() calendar.NanoOfDay {
	return calendar.NanoOfDay(calendar.FloorMod(s.sec, calendar.SecondsPerDay) * calendar.NanosPerSecond)
}

// FixedDateTime returns the pivot day and sub-day offset together.
func (s Seconds) FixedDateTime() (calendar.FixedDay, calendar.NanoOfDay) {
	return s.Fixed(), s.NanoOfDay()
}

// FromFixedDateTime builds a value from a pivot day and sub-day offset,
// truncating the offset to whole seconds.
func FromFixedDateTime(f calendar.FixedDay, nano calendar.NanoOfDay) Seconds {
	return Seconds{sec: int64(f.Sub(calendar.UnixEpoch))*calendar.SecondsPerDay +
		int64(nano)/calendar.NanosPerSecond}
}

// AddDays shifts by whole days, preserving the sub-day offset exactly.
// (The generic calendar.AddDays would floor to start of day instead.)
func (s Seconds) AddDays(n int) Seconds {
	return Seconds{sec: s.sec + int64(n)*calendar.SecondsPerDay}
}

// Compare orders two instants.
func (s Seconds) Compare(other Seconds) int {
	switch {
	case s.sec < other.sec:
		return -1
	case s.sec > other.sec:
		return 1
	default:
		return 0
	}
}

// Validate never fails: every second count is a valid instant.
func (Seconds) Validate() error { return nil }

// =============================================================================
// UNIX MILLISECONDS
// =============================================================================

// Millis is a count of milliseconds since 1970-01-01T00:00:00 UTC.
type Millis struct {
	msec int64
}

var (
	_ calendar.Date[Millis]   = Millis{}
	_ calendar.FixedDateTimer = Millis{}
)

// NewMillis constructs a Unix-milliseconds value. Every int64 is valid.
func NewMillis(msec int64) Millis { return Millis{msec: msec} }

// UnixMilli returns the raw millisecond count.
func (m Millis) UnixMilli() int64 { return m.msec }

func (m Millis) String() string { return fmt.Sprintf("unixms:%d", m.msec) }

// Fixed returns the pivot day containing the instant.
func (m Millis) Fixed() calendar.FixedDay {
	return calendar.UnixEpoch.AddDays(int(calendar.FloorDiv(m.msec, calendar.MillisPerDay)))
}

// FromFixed returns the start of the given pivot day. The receiver is
// ignored.
func (Millis) FromFixed(f calendar.FixedDay) Millis {
	return Millis{msec: int64(f.Sub(calendar.UnixEpoch)) * calendar.MillisPerDay}
}

// NanoOfDay returns the sub-day offset of the instant.
func (m Millis) NanoOfDay() calendar.NanoOfDay {
	return calendar.NanoOfDay(calendar.FloorMod(m.msec, calendar.MillisPerDay) * 1_000_000)
}

// FixedDateTime returns the pivot day and sub-day offset together.
func (m Millis) FixedDateTime() (calendar.FixedDay, calendar.NanoOfDay) {
	return m.Fixed(), m.NanoOfDay()
}

// FromFixedDateTimeMillis builds a value from a pivot day and sub-day
// offset, truncating the offset to whole milliseconds.
func FromFixedDateTimeMillis(f calendar.FixedDay, nano calendar.NanoOfDay) Millis {
	return Millis{msec: int64(f.Sub(calendar.UnixEpoch))*calendar.MillisPerDay +
		int64(nano)/1_000_000}
}

// AddDays shifts by whole days, preserving the sub-day offset exactly.
func (m Millis) AddDays(n int) Millis {
	return Millis{msec: m.msec + int64(n)*calendar.MillisPerDay}
}

// Compare orders two instants.
func (m Millis) Compare(other Millis) int {
	switch {
	case m.msec < other.msec:
		return -1
	case m.msec > other.msec:
		return 1
	default:
		return 0
	}
}

// Validate never fails: every millisecond count is a valid instant.
func (Millis) Validate() error { return nil }
