/*
errors.go - Centralized error types for the business-time engine

PURPOSE:
  All error types in one place for consistency and discoverability.
  Domain packages should wrap these errors with additional context.

ERROR CATEGORIES:
  1. Boundary errors - Malformed caller input (date strings)
  2. Contract violations - Caller bugs, surfaced as panics

CONTRACT VIOLATIONS:
  The walkers and the nth-weekday lookup panic on invalid counts (negative
  N, or an nth-weekday that cannot fall inside its month). These are
  programming errors in the caller, never runtime data: the engine refuses
  to clamp or default, because a silently wrong statutory deadline is worse
  than a crash.

USAGE:
  Callers can match boundary errors:

    if errors.Is(err, businesstime.ErrInvalidDate) {
        // reject the configuration, do not evaluate deadlines
    }

SEE ALSO:
  - calendar.go: Uses ErrInvalidDate when parsing extra-holiday options
  - spec.go: Panics on out-of-range nth-weekday lookups
*/
package businesstime

import (
	"errors"
	"fmt"
)

// =============================================================================
// SENTINEL ERRORS - Use with errors.Is()
// =============================================================================

var (
	// ErrInvalidDate is returned when an extra-holiday date string cannot be
	// parsed as a YYYY-MM-DD calendar date.
	ErrInvalidDate = errors.New("invalid calendar date")

	// ErrUnknownRuleSet is returned when a configuration names a holiday
	// rule set this build does not carry.
	ErrUnknownRuleSet = errors.New("unknown holiday rule set")
)

// =============================================================================
// STRUCTURED ERRORS - Carry additional context
// =============================================================================

// InvalidDateError reports a malformed date string and where parsing failed.
type InvalidDateError struct {
	Value string
	Cause error
}

func (e *InvalidDateError) Error() string {
	return fmt.Sprintf("invalid calendar date %q: %v", e.Value, e.Cause)
}

func (e *InvalidDateError) Unwrap() error { return ErrInvalidDate }

// IsClientError returns true if the error is due to invalid caller input.
func IsClientError(err error) bool {
	return errors.Is(err, ErrInvalidDate) || errors.Is(err, ErrUnknownRuleSet)
}
