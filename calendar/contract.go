/*
contract.go - Adapter capability descriptors and the Recommended contract

PURPOSE:
  Two things live here:
  1. System: an explicit, declared capability descriptor registered by each
     adapter package. Consumers that need to know what an adapter can do
     read the descriptor instead of probing for methods at runtime.
  2. Fielded: the optional richer ("Recommended") contract consumed by
     formatting. The bare Date contract in derive.go is all an adapter
     needs for arithmetic and conversion; Fielded adds the accessors that
     make a value renderable.

CAPABILITY DISPATCH:
  Optional display overrides are explicit single-method interfaces
  (MonthNamer, WeekdayNamer). The format package asserts them in exactly
  one place and falls back to the default Gregorian-derived name tables.

SEE ALSO:
  - format/format.go: the consumer of Fielded and the name overrides
  - api/handlers.go: lists registered systems
*/
package calendar

import "sort"

// =============================================================================
// CAPABILITIES - explicit declared capability set per adapter
// =============================================================================

// Capabilities declares what a calendar adapter can express. This replaces
// any runtime introspection: an adapter states its tier once, at
// registration.
type Capabilities struct {
	// Dates: the adapter converts calendar dates through the pivot.
	Dates bool
	// Times: values carry sub-day precision of their own (the Unix
	// adapters do; field calendars pair with TimeSegments instead).
	Times bool
	// Zones: values carry an offset of their own. No plain adapter does;
	// ZonedDateTime supplies zones by composition.
	Zones bool
}

// System describes a registered calendar adapter.
type System struct {
	Name        string
	Caps        Capabilities
	Approximate bool // true when the adapter is a documented approximation
}

var systems = map[string]System{}

// RegisterSystem records an adapter's descriptor. Adapter packages call
// this from init; duplicate names overwrite, which only matters in tests.
func RegisterSystem(s System) {
	systems[s.Name] = s
}

// Systems returns all registered descriptors sorted by name.
func Systems() []System {
	out := make([]System, 0, len(systems))
	for _, s := range systems {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// LookupSystem returns the descriptor for a calendar name.
func LookupSystem(name string) (System, bool) {
	s, ok := systems[name]
	return s, ok
}

// =============================================================================
// RECOMMENDED CONTRACT - accessors consumed by formatting
// =============================================================================

// Fielded is the richer contract formatting consumes. Accessors return
// plain ints so one interface covers adapters regardless of which year
// numbering they use internally.
type Fielded interface {
	CalendarName() string
	YearNumber() int
	MonthNumber() int
	DayOfMonth() int
	DayOfYear() int
	WeekOfYear() int
	Quarter() int
	Weekday() DayOfWeek
}

// MonthNamer overrides the default month name table. Adapters whose month
// names cannot come from the Gregorian-derived defaults (Hebrew, with its
// leap-year Adar split) implement this.
type MonthNamer interface {
	MonthName() string
}

// WeekdayNamer overrides the default weekday name table.
type WeekdayNamer interface {
	WeekdayName() string
}
