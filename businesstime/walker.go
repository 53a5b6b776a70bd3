/*
walker.go - Business-unit stepping arithmetic

PURPOSE:
  Backward and forward walking over business units. "Subtract 48 business
  hours from a meeting time", "add 7 business days to a receipt time",
  and the inverse measurements used for compliance checks.

WHY DIRECT SIMULATION:
  Every walk advances exactly one unit at a time and asks the classifier
  whether the stepped-to unit counts. A compliance calculation that a court
  or records counselor may scrutinize has to be traceable step by step, and
  the unit counts in use (48 hours, 7 days) make the loop cost negligible.
  A closed-form weekend-skipping version is only acceptable if it matches
  the naive walk on every case in the test suite.

GUARANTEES:
  - A subtract/add result always lands on a unit the classifier itself
    counts as business time: the walk only stops on a counted unit.
  - AddBusinessDays preserves the time-of-day of its input, so a deadline
    inherits the hour and minute of the receipt timestamp.
  - Negative counts panic: a negative statutory window is a caller bug.
  - All arithmetic is wall-clock on the fixed civil calendar (time.go);
    no DST adjustment ever applies.

SEE ALSO:
  - calendar.go: The classifier every step consults
  - compliance package: The two statutory evaluators built on these walks
*/
package businesstime

import "fmt"

// =============================================================================
// BUSINESS TIME UNITS
// =============================================================================

// Unit is the granularity a walk steps in.
type Unit string

const (
	UnitHours Unit = "hours"
	UnitDays  Unit = "days"
)

// =============================================================================
// BACKWARD WALK - Deadline computation for lead-time statutes
// =============================================================================

// SubtractBusinessHours walks backward from the instant one hour at a time,
// counting each stepped-to hour that is business time, and returns the
// instant at which n business hours have been counted. The result is
// itself a counted business hour. n of zero returns the instant unchanged.
func (c *Calendar) SubtractBusinessHours(from TimePoint, n int) TimePoint {
	mustNonNegative(n, UnitHours)
	cur := from
	remaining := n
	for remaining > 0 {
		cur = cur.AddHours(-1)
		if c.IsBusinessTime(cur) {
			remaining--
		}
	}
	return cur
}

// =============================================================================
// FORWARD WALKS
// =============================================================================

// AddBusinessDays walks forward one calendar day at a time, counting each
// stepped-to business day, and returns the instant at which n business days
// have been counted. Time-of-day is preserved from the input.
func (c *Calendar) AddBusinessDays(from TimePoint, n int) TimePoint {
	mustNonNegative(n, UnitDays)
	cur := from
	remaining := n
	for remaining > 0 {
		cur = cur.AddDays(1)
		if c.IsBusinessTime(cur) {
			remaining--
		}
	}
	return cur
}

// CountBusinessHours measures the business hours between two instants by
// walking forward from from to to in one-hour steps. This is the inverse
// measurement used for compliance lead checks, not for deadline
// computation: it exactly mirrors the backward walk, so
// CountBusinessHours(SubtractBusinessHours(t, n), t) == n for any t.
// Returns 0 when from is at or after to.
func (c *Calendar) CountBusinessHours(from, to TimePoint) int {
	count := 0
	for cur := from; cur.Before(to); cur = cur.AddHours(1) {
		if c.IsBusinessTime(cur) {
			count++
		}
	}
	return count
}

// CountBusinessDays measures the business days between two instants the
// same way, in one-day steps. Returns 0 when from is at or after to.
func (c *Calendar) CountBusinessDays(from, to TimePoint) int {
	count := 0
	for cur := from; cur.Before(to); cur = cur.AddDays(1) {
		if c.IsBusinessTime(cur) {
			count++
		}
	}
	return count
}

func mustNonNegative(n int, unit Unit) {
	if n < 0 {
		panic(fmt.Sprintf("businesstime: negative business-%s count %d", unit, n))
	}
}
