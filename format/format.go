// Package format renders calendar values through the engine's Recommended
// contract. It is a fixed-shape renderer: a numeric date form, a long prose
// form, and date-time/zoned variants. There is no token grammar; callers
// needing custom layouts format the accessor values themselves.
//
// Month and weekday names default to the Gregorian-derived tables below.
// Adapters override them by implementing calendar.MonthNamer or
// calendar.WeekdayNamer; those interfaces are asserted here and nowhere
// else.
package format

import (
	"fmt"

	"github.com/warp/calendar-engine/calendar"
)

// =============================================================================
// DEFAULT NAME TABLES (Gregorian-derived)
// =============================================================================

var monthNames = [13]string{
	"", "January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

var weekdayNames = [7]string{
	"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday",
}

// =============================================================================
// NAME LOOKUP - single site of override dispatch
// =============================================================================

// MonthName returns the display name of v's month, honoring adapter
// overrides and falling back to the default table. Months outside the
// default table (an ISO week number, say) render numerically.
func MonthName(v calendar.Fielded) string {
	if n, ok := v.(calendar.MonthNamer); ok {
		return n.MonthName()
	}
	if m := v.MonthNumber(); m >= 1 && m <= 12 {
		return monthNames[m]
	}
	return fmt.Sprintf("%d", v.MonthNumber())
}

// WeekdayName returns the display name of v's weekday.
func WeekdayName(v calendar.Fielded) string {
	if n, ok := v.(calendar.WeekdayNamer); ok {
		return n.WeekdayName()
	}
	return weekdayNames[v.Weekday()]
}

// =============================================================================
// RENDERERS
// =============================================================================

// Date renders the numeric form, e.g. "2024-02-28" or "5784-12-15".
func Date(v calendar.Fielded) string {
	return fmt.Sprintf("%04d-%02d-%02d", v.YearNumber(), v.MonthNumber(), v.DayOfMonth())
}

// Long renders the prose form, e.g. "Wednesday, 28 February 2024".
func Long(v calendar.Fielded) string {
	return fmt.Sprintf("%s, %d %s %d", WeekdayName(v), v.DayOfMonth(), MonthName(v), v.YearNumber())
}

// Clock renders a time of day, e.g. "12:30:24" or "12:30:24.000000500".
func Clock(t calendar.TimeSegments) string {
	if t.Nano == 0 {
		return fmt.Sprintf("%02d:%02d:%02d", t.Hour, t.Minute, t.Second)
	}
	return fmt.Sprintf("%02d:%02d:%02d.%09d", t.Hour, t.Minute, t.Second, t.Nano)
}

// DateTime renders a date and clock separated by "T".
func DateTime[D calendar.Date[D]](dt calendar.DateTime[D]) string {
	f, ok := any(dt.Date).(calendar.Fielded)
	if !ok {
		return fmt.Sprintf("day %d T %s", dt.Date.Fixed(), Clock(dt.Time))
	}
	return Date(f) + "T" + Clock(dt.Time)
}

// Zoned renders a zoned date-time with its offset.
func Zoned[D calendar.Date[D]](z calendar.ZonedDateTime[D]) string {
	return DateTime(z.DateTime()) + " " + z.Zone.String()
}
