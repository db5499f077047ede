/*
errors.go - Centralized error types for the calendar engine

PURPOSE:
  All validation errors in one place. The engine has no I/O and no
  concurrency, so validation failures are the entire error taxonomy.

PROPAGATION POLICY:
  - Constructors validate eagerly and return these errors to the caller.
  - NearestValid never fails: every pivot day maps to exactly one valid
    value per adapter, so repair by round-tripping always succeeds.
  - Arithmetic on already-validated, pivot-backed values treats an invalid
    internal value as a programmer error, not a recoverable condition.

USAGE:
  Callers match with errors.Is:

    if _, err := gregorian.New(2023, 2, 30); errors.Is(err, calendar.ErrInvalidDay) {
        ...
    }

SEE ALSO:
  - year.go: ADToAstro rejects the nonexistent A.D. year 0
  - clock.go: time-of-day constructors
*/
package calendar

import (
	"errors"
	"fmt"
)

// =============================================================================
// SENTINEL ERRORS - Use with errors.Is()
// =============================================================================

var (
	ErrInvalidYear     = errors.New("invalid year")
	ErrInvalidMonth    = errors.New("invalid month")
	ErrInvalidDay      = errors.New("invalid day")
	ErrInvalidWeek     = errors.New("invalid week")
	ErrInvalidHour     = errors.New("invalid hour")
	ErrInvalidMinute   = errors.New("invalid minute")
	ErrInvalidSecond   = errors.New("invalid second")
	ErrInvalidNano     = errors.New("invalid nanosecond")
	ErrInvalidFraction = errors.New("invalid day fraction")
)

// =============================================================================
// STRUCTURED ERRORS - Carry field context
// =============================================================================

// RangeError reports a field whose value fell outside its permitted range.
type RangeError struct {
	Field    string
	Value    int64
	Min, Max int64
	kind     error
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("%s %d out of range [%d, %d]", e.Field, e.Value, e.Min, e.Max)
}

func (e *RangeError) Unwrap() error { return e.kind }

// FractionError reports a day fraction outside [0, 1).
type FractionError struct {
	Value float64
}

func (e *FractionError) Error() string {
	return fmt.Sprintf("day fraction %v out of range [0, 1)", e.Value)
}

func (e *FractionError) Unwrap() error { return ErrInvalidFraction }

// =============================================================================
// ERROR HELPERS
// =============================================================================

// IsValidation reports whether err is any of the engine's validation errors.
func IsValidation(err error) bool {
	for _, sentinel := range []error{
		ErrInvalidYear, ErrInvalidMonth, ErrInvalidDay, ErrInvalidWeek,
		ErrInvalidHour, ErrInvalidMinute, ErrInvalidSecond, ErrInvalidNano,
		ErrInvalidFraction,
	} {
		if errors.Is(err, sentinel) {
			return true
		}
	}
	return false
}

// NewRangeError constructs a RangeError wrapping the given sentinel.
// Adapter packages use it so errors.Is keeps working across packages.
func NewRangeError(field string, value, min, max int64, kind error) error {
	return &RangeError{Field: field, Value: value, Min: min, Max: max, kind: kind}
}

func rangeErr(field string, value, min, max int64, kind error) error {
	return NewRangeError(field, value, min, max, kind)
}
