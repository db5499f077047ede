/*
datetime.go - Date-time and zoned date-time composites

PURPOSE:
  Generic composites pairing any calendar adapter with a time of day and,
  for ZonedDateTime, a fixed UTC offset. Timezone conversion is done in
  nanoseconds-of-day with an explicit borrow/carry across midnight, so the
  date rolls backward or forward exactly when the local clock crosses a
  day boundary.

ROUND-TRIP GUARANTEE:
  For any zoned value v and offset z, v.ToTimezone(z).ToUTC() reproduces
  the UTC-equivalent of v bit for bit in both date and time fields. The
  conversion is pure integer arithmetic; nothing is rounded.

SEE ALSO:
  - zone.go: TimeZoneOffset
  - convert.go: cross-calendar conversion of these composites
*/
package calendar

// =============================================================================
// DATE TIME - date + wall clock, no zone
// =============================================================================

// DateTime pairs a calendar date with a time of day.
type DateTime[D Date[D]] struct {
	Date D
	Time TimeSegments
}

// NewDateTime constructs a date-time composite.
func NewDateTime[D Date[D]](date D, t TimeSegments) DateTime[D] {
	return DateTime[D]{Date: date, Time: t}
}

// FixedDateTime returns the pivot day and the nanosecond of day.
func (dt DateTime[D]) FixedDateTime() (FixedDay, NanoOfDay) {
	return dt.Date.Fixed(), dt.Time.NanoOfDay()
}

// Fixed returns the pivot day, discarding the time of day.
func (dt DateTime[D]) Fixed() FixedDay { return dt.Date.Fixed() }

// AddDays shifts the date component, leaving the clock untouched.
func (dt DateTime[D]) AddDays(n int) DateTime[D] {
	return DateTime[D]{Date: AddDays(dt.Date, n), Time: dt.Time}
}

// Compare orders two date-times by date, then time of day.
func (dt DateTime[D]) Compare(other DateTime[D]) int {
	if c := dt.Date.Compare(other.Date); c != 0 {
		return c
	}
	return dt.Time.Compare(other.Time)
}

// Validate checks both components.
func (dt DateTime[D]) Validate() error {
	if err := dt.Date.Validate(); err != nil {
		return err
	}
	return dt.Time.Validate()
}

// InZone attaches a fixed offset, reinterpreting the wall clock as local
// time in that zone. No arithmetic is performed.
func (dt DateTime[D]) InZone(zone TimeZoneOffset) ZonedDateTime[D] {
	return ZonedDateTime[D]{Date: dt.Date, Time: dt.Time, Zone: zone}
}

// =============================================================================
// ZONED DATE TIME - date + wall clock + fixed offset
// =============================================================================

// ZonedDateTime pairs a calendar date and time of day with a fixed UTC
// offset. The wall clock is local to the zone.
type ZonedDateTime[D Date[D]] struct {
	Date D
	Time TimeSegments
	Zone TimeZoneOffset
}

// NewZonedDateTime constructs a zoned date-time composite.
func NewZonedDateTime[D Date[D]](date D, t TimeSegments, zone TimeZoneOffset) ZonedDateTime[D] {
	return ZonedDateTime[D]{Date: date, Time: t, Zone: zone}
}

// FixedZoned returns the pivot day, nanosecond of day and zone, all local.
func (z ZonedDateTime[D]) FixedZoned() (FixedDay, NanoOfDay, TimeZoneOffset) {
	return z.Date.Fixed(), z.Time.NanoOfDay(), z.Zone
}

// Fixed returns the local pivot day, discarding time and zone.
func (z ZonedDateTime[D]) Fixed() FixedDay { return z.Date.Fixed() }

// ToTimezone converts to the same instant expressed in the target offset,
// rolling the date across midnight when the local clock wraps.
func (z ZonedDateTime[D]) ToTimezone(target TimeZoneOffset) ZonedDateTime[D] {
	delta := target.Nanoseconds() - z.Zone.Nanoseconds()
	date, nano := shiftClock(z.Date, int64(z.Time.NanoOfDay()), delta)
	return ZonedDateTime[D]{Date: date, Time: nano.Segments(), Zone: target}
}

// ToUTC converts to the same instant at offset zero.
func (z ZonedDateTime[D]) ToUTC() ZonedDateTime[D] {
	return z.ToTimezone(UTC)
}

// Compare orders two zoned date-times by their UTC instants.
func (z ZonedDateTime[D]) Compare(other ZonedDateTime[D]) int {
	a, b := z.ToUTC(), other.ToUTC()
	if c := a.Date.Compare(b.Date); c != 0 {
		return c
	}
	return a.Time.Compare(b.Time)
}

// Validate checks date, time and zone.
func (z ZonedDateTime[D]) Validate() error {
	if err := z.Date.Validate(); err != nil {
		return err
	}
	if err := z.Time.Validate(); err != nil {
		return err
	}
	return z.Zone.Validate()
}

// DateTime drops the zone without any conversion. Callers that need the
// UTC-normalized wall clock must call ToUTC first; Convert does this.
func (z ZonedDateTime[D]) DateTime() DateTime[D] {
	return DateTime[D]{Date: z.Date, Time: z.Time}
}

// shiftClock adds a signed nanosecond delta to a clock reading, borrowing
// or carrying one calendar day when the result leaves [0, NanosPerDay).
// A fixed offset can never shift more than one day.
func shiftClock[D Date[D]](date D, nano, delta int64) (D, NanoOfDay) {
	n := nano + delta
	switch {
	case n < 0:
		return SubDays(date, 1), NanoOfDay(n + NanosPerDay)
	case n >= NanosPerDay:
		return AddDays(date, 1), NanoOfDay(n - NanosPerDay)
	default:
		return date, NanoOfDay(n)
	}
}
