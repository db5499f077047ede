package calendar

import "fmt"

// =============================================================================
// TIME ZONE OFFSET - fixed numeric UTC offsets only
// =============================================================================

// TimeZoneOffset is a fixed offset from UTC. The sign lives on Hours;
// Minutes and Seconds are magnitudes, so -07:10:04 is
// {Hours: -7, Minutes: 10, Seconds: 4}. There is deliberately no timezone
// database behind this type: no DST, no historical rules. Name is a
// cosmetic label only.
type TimeZoneOffset struct {
	Hours   int // -12..12, carries the sign
	Minutes int // 0..59
	Seconds int // 0..59
	Name    string
}

// UTC is the zero offset.
var UTC = TimeZoneOffset{Name: "UTC"}

// NewTimeZoneOffset validates and constructs a fixed offset.
func NewTimeZoneOffset(hours, minutes, seconds int, name string) (TimeZoneOffset, error) {
	switch {
	case hours < -12 || hours > 12:
		return TimeZoneOffset{}, rangeErr("offset hours", int64(hours), -12, 12, ErrInvalidHour)
	case minutes < 0 || minutes > 59:
		return TimeZoneOffset{}, rangeErr("offset minutes", int64(minutes), 0, 59, ErrInvalidMinute)
	case seconds < 0 || seconds > 59:
		return TimeZoneOffset{}, rangeErr("offset seconds", int64(seconds), 0, 59, ErrInvalidSecond)
	}
	return TimeZoneOffset{Hours: hours, Minutes: minutes, Seconds: seconds, Name: name}, nil
}

// Nanoseconds returns the signed total offset from UTC in nanoseconds.
func (z TimeZoneOffset) Nanoseconds() int64 {
	sub := int64(z.Minutes)*NanosPerMinute + int64(z.Seconds)*NanosPerSecond
	total := int64(z.Hours) * NanosPerHour
	if z.Hours < 0 {
		return total - sub
	}
	return total + sub
}

// IsUTC reports whether the offset is zero.
func (z TimeZoneOffset) IsUTC() bool { return z.Nanoseconds() == 0 }

// String renders the offset as ±HH:MM:SS, with the name when present.
func (z TimeZoneOffset) String() string {
	h, m, s := z.Hours, z.Minutes, z.Seconds
	sign := "+"
	if h < 0 {
		sign, h = "-", -h
	}
	off := fmt.Sprintf("%s%02d:%02d:%02d", sign, h, m, s)
	if z.Name != "" {
		return fmt.Sprintf("%s (%s)", z.Name, off)
	}
	return off
}

// Validate reports whether all fields are in range.
func (z TimeZoneOffset) Validate() error {
	_, err := NewTimeZoneOffset(z.Hours, z.Minutes, z.Seconds, z.Name)
	return err
}
