/*
convert.go - Cross-calendar conversion through the pivot

PURPOSE:
  Converts any supported calendar value to any other by routing through
  the pivot. Three tiers of source information exist (date only, date +
  time, date + time + zone); conversion uses the richest representation
  both sides share and degrades deliberately and consistently:

    - A zone is never dropped silently: the value is normalized to UTC
      first, then the zone is discarded.
    - Missing time defaults to start of day; missing zone defaults to UTC.

  This is the only place in the engine where precision is discarded.

TIER DETECTION:
  Sources declare their tier by implementing one of three explicit
  interfaces (FixedDater, FixedDateTimer, FixedZoner). The type switches
  below are the single site of capability dispatch; nothing else in the
  repo probes values for optional behavior.

SEE ALSO:
  - derive.go: the Date contract
  - datetime.go: the composites that implement the richer tiers
*/
package calendar

// =============================================================================
// TIER INTERFACES
// =============================================================================

// FixedDater is the date-only tier: any calendar date.
type FixedDater interface {
	Fixed() FixedDay
}

// FixedDateTimer is the date-time tier: pivot day plus sub-day precision.
// DateTime composites and the Unix adapters implement it.
type FixedDateTimer interface {
	FixedDateTime() (FixedDay, NanoOfDay)
}

// FixedZoner is the zoned tier: pivot day, sub-day precision and a fixed
// offset, all local to that offset.
type FixedZoner interface {
	FixedZoned() (FixedDay, NanoOfDay, TimeZoneOffset)
}

// =============================================================================
// STATIC CONVERSION - both types known at compile time
// =============================================================================

// Convert converts a date from one calendar to another through the pivot.
func Convert[T Date[T], S Date[S]](v S) T {
	var t T
	return t.FromFixed(v.Fixed())
}

// ConvertDateTime converts the date component and keeps the wall clock.
func ConvertDateTime[T Date[T], S Date[S]](v DateTime[S]) DateTime[T] {
	var t T
	return DateTime[T]{Date: t.FromFixed(v.Date.Fixed()), Time: v.Time}
}

// ConvertZoned converts the date component and keeps wall clock and zone.
func ConvertZoned[T Date[T], S Date[S]](v ZonedDateTime[S]) ZonedDateTime[T] {
	var t T
	return ZonedDateTime[T]{Date: t.FromFixed(v.Date.Fixed()), Time: v.Time, Zone: v.Zone}
}

// =============================================================================
// TIERED CONVERSION - source tier discovered at run time
// =============================================================================

// utcDayTime reduces any source to (pivot day, nano of day) in UTC,
// using the richest tier the source implements. This is the shared
// normalization step of all tiered conversions.
func utcDayTime(v FixedDater) (FixedDay, NanoOfDay) {
	switch src := v.(type) {
	case FixedZoner:
		day, nano, zone := src.FixedZoned()
		d, n := shiftClock(pivotDate(day), int64(nano), -zone.Nanoseconds())
		return d.Fixed(), n
	case FixedDateTimer:
		day, nano := src.FixedDateTime()
		return day, nano
	default:
		return v.Fixed(), 0
	}
}

// ConvertTo converts any source to a date in calendar T. Time and zone
// information on the source is first normalized to UTC, then discarded.
func ConvertTo[T Date[T]](v FixedDater) T {
	var t T
	day, _ := utcDayTime(v)
	return t.FromFixed(day)
}

// ConvertToDateTime converts any source to a date-time in calendar T.
// Zoned sources are normalized to UTC before the zone is dropped;
// date-only sources default to start of day.
func ConvertToDateTime[T Date[T]](v FixedDater) DateTime[T] {
	var t T
	day, nano := utcDayTime(v)
	return DateTime[T]{Date: t.FromFixed(day), Time: nano.Segments()}
}

// ConvertToZoned converts any source to a zoned date-time in calendar T.
// Sources without a zone are inferred to be UTC; the result is expressed
// in UTC either way, and callers re-zone with ToTimezone as needed.
func ConvertToZoned[T Date[T]](v FixedDater) ZonedDateTime[T] {
	dt := ConvertToDateTime[T](v)
	return dt.InZone(UTC)
}

// pivotDate lets shiftClock's generic day arithmetic run directly on a
// pivot day when no adapter type is in play.
type pivotDate FixedDay

func (p pivotDate) Fixed() FixedDay               { return FixedDay(p) }
func (p pivotDate) FromFixed(f FixedDay) pivotDate { return pivotDate(f) }
func (p pivotDate) Compare(o pivotDate) int {
	switch {
	case p < o:
		return -1
	case p > o:
		return 1
	default:
		return 0
	}
}
func (p pivotDate) Validate() error { return nil }
