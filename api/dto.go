/*
dto.go - Data Transfer Objects for API requests and responses

PURPOSE:
  Defines the JSON structures for API communication. These types decouple
  the engine's value types from the external API contract.

NAMING CONVENTION:
  - *DTO: Response types returned to clients
  - *Request: Request body types from clients

FRACTIONAL-DAY PRECISION:
  Day fractions cross the wire as decimal strings, parsed and rendered
  with shopspring/decimal. The engine's own DayFraction type is float64
  (and documented lossy); routing API payloads through decimal keeps
  "0.5215277"-style inputs exact all the way to nanoseconds.

SEE ALSO:
  - handlers.go: Uses these types
  - calendar/clock.go: the time-of-day encodings behind TimeDTO
*/
package api

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/warp/calendar-engine/calendar"
)

// =============================================================================
// REQUEST/RESPONSE TYPES
// =============================================================================

// CalendarDTO describes a registered calendar adapter.
type CalendarDTO struct {
	Name        string `json:"name"`
	Dates       bool   `json:"dates"`
	Times       bool   `json:"times"`
	Zones       bool   `json:"zones"`
	Approximate bool   `json:"approximate,omitempty"`
}

// DateDTO carries a calendar value. Field calendars use year/month/day
// (the ISO calendar uses week in place of month); the Unix calendars use
// seconds or millis instead. Time and zone are optional tiers.
type DateDTO struct {
	Calendar string   `json:"calendar"`
	Year     int      `json:"year,omitempty"`
	Month    int      `json:"month,omitempty"`
	Week     int      `json:"week,omitempty"`
	Day      int      `json:"day,omitempty"`
	Seconds  *int64   `json:"seconds,omitempty"`
	Millis   *int64   `json:"millis,omitempty"`
	Time     *TimeDTO `json:"time,omitempty"`
	Zone     *ZoneDTO `json:"zone,omitempty"`
}

// TimeDTO carries a time of day as either segments or a decimal day
// fraction. When Fraction is set it wins.
type TimeDTO struct {
	Hour     int    `json:"hour"`
	Minute   int    `json:"minute"`
	Second   int    `json:"second"`
	Nano     int    `json:"nano,omitempty"`
	Fraction string `json:"fraction,omitempty"`
}

// ZoneDTO carries a fixed UTC offset, by name (resolved against the zone
// registry) or by explicit components.
type ZoneDTO struct {
	Name    string `json:"name,omitempty"`
	Hours   int    `json:"hours"`
	Minutes int    `json:"minutes"`
	Seconds int    `json:"seconds"`
}

// ConvertRequest converts From into the To calendar, optionally expressing
// the result in TargetZone.
type ConvertRequest struct {
	From       DateDTO  `json:"from"`
	To         string   `json:"to"`
	TargetZone *ZoneDTO `json:"target_zone,omitempty"`
}

// ConvertResponse is the converted value plus its derived fields.
type ConvertResponse struct {
	Result    DateDTO `json:"result"`
	PivotDay  int32   `json:"pivot_day"`
	Weekday   string  `json:"weekday,omitempty"`
	DayOfYear int     `json:"day_of_year,omitempty"`
	Week      int     `json:"week_of_year,omitempty"`
	Quarter   int     `json:"quarter,omitempty"`
	Formatted string  `json:"formatted,omitempty"`
}

// ArithmeticRequest performs date arithmetic on a calendar value.
// Operations: add_days, sub_days, diff, weekday, nth_weekday.
type ArithmeticRequest struct {
	Date    DateDTO  `json:"date"`
	Op      string   `json:"op"`
	N       int      `json:"n,omitempty"`
	Weekday string   `json:"weekday,omitempty"`
	Other   *DateDTO `json:"other,omitempty"`
}

// ArithmeticResponse carries whichever result the operation produces.
type ArithmeticResponse struct {
	Result  *ConvertResponse `json:"result,omitempty"`
	Days    *int             `json:"days,omitempty"`
	Weekday string           `json:"weekday,omitempty"`
}

// ShiftRequest re-expresses a zoned value in another fixed offset.
type ShiftRequest struct {
	From   DateDTO `json:"from"`
	Target ZoneDTO `json:"target"`
}

// =============================================================================
// TIME/ZONE CODECS
// =============================================================================

var nanosPerDayDec = decimal.NewFromInt(calendar.NanosPerDay)

// nanoOfDay resolves a TimeDTO to nanoseconds of day. Fractions are parsed
// with decimal so sub-second digits survive exactly.
func (t *TimeDTO) nanoOfDay() (calendar.NanoOfDay, error) {
	if t == nil {
		return 0, nil
	}
	if t.Fraction != "" {
		d, err := decimal.NewFromString(t.Fraction)
		if err != nil {
			return 0, fmt.Errorf("%w: %q", calendar.ErrInvalidFraction, t.Fraction)
		}
		if d.IsNegative() || d.GreaterThanOrEqual(decimal.NewFromInt(1)) {
			return 0, &calendar.FractionError{Value: d.InexactFloat64()}
		}
		return calendar.NewNanoOfDay(d.Mul(nanosPerDayDec).IntPart())
	}
	seg, err := calendar.NewTimeSegments(t.Hour, t.Minute, t.Second, t.Nano)
	if err != nil {
		return 0, err
	}
	return seg.NanoOfDay(), nil
}

// timeDTO renders a nanosecond of day as segments plus an exact decimal
// fraction.
func timeDTO(n calendar.NanoOfDay) *TimeDTO {
	seg := n.Segments()
	frac := decimal.NewFromInt(int64(n)).DivRound(nanosPerDayDec, 18)
	return &TimeDTO{
		Hour:     seg.Hour,
		Minute:   seg.Minute,
		Second:   seg.Second,
		Nano:     seg.Nano,
		Fraction: frac.String(),
	}
}

func zoneDTO(z calendar.TimeZoneOffset) *ZoneDTO {
	return &ZoneDTO{Name: z.Name, Hours: z.Hours, Minutes: z.Minutes, Seconds: z.Seconds}
}
