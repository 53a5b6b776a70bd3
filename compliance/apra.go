/*
apra.go - Access to Public Records Act response deadline

PURPOSE:
  A public agency must respond to a records request within 7 business days
  of receipt. ResponseDeadline walks 7 business days forward from the
  receipt instant, preserving its time-of-day, so the deadline inherits the
  hour and minute the request arrived.

DEADLINE RESET:
  When a request is sent back for clarification and a clarification
  response is later recorded, the clock restarts from the response date.
  The evaluator is stateless: "reset" is the caller re-invoking
  ResponseDeadline with the clarification-response instant. The workflow
  layer owns that state transition.

YEAR BOUNDARIES:
  Seven business days can cross a calendar year (receipt in late December).
  The calendar's built-in catalog resolves holidays by the year of each
  stepped-to day, so the built-in set spans the boundary automatically;
  callers supplying extra holidays include dates for both years.

SEE ALSO:
  - opendoor.go: Package doc and the meeting-notice evaluator
  - workflow package: The stateful caller owning resets and overdue sweeps
*/
package compliance

import (
	"github.com/civica/compliance-engine/businesstime"
)

// ResponseWindowDays is the statutory response window for records
// requests, in business days.
const ResponseWindowDays = 7

// ResponseCompliance is the verdict for one records-request response.
type ResponseCompliance struct {
	// Deadline is the instant the response was required by. Always lands
	// on a business day, at the receipt's own time-of-day.
	Deadline businesstime.TimePoint

	// Timely is true when the response came at or before the deadline.
	Timely bool

	// BusinessDaysLead is the measured business-day lead between the
	// response and the deadline. Zero when the response was on or after
	// the deadline day.
	BusinessDaysLead int
}

// ResponseDeadline returns the instant a response to a request received at
// receivedAt is due: 7 business days later, at the same time of day.
//
// For a deadline reset after clarification, call this again with the
// clarification-response instant.
func ResponseDeadline(receivedAt businesstime.TimePoint, cal *businesstime.Calendar) businesstime.TimePoint {
	return cal.AddBusinessDays(receivedAt, ResponseWindowDays)
}

// CheckResponse evaluates an actual response instant against the deadline
// computed from the receipt instant.
func CheckResponse(receivedAt, respondedAt businesstime.TimePoint, cal *businesstime.Calendar) ResponseCompliance {
	deadline := ResponseDeadline(receivedAt, cal)
	return ResponseCompliance{
		Deadline:         deadline,
		Timely:           respondedAt.BeforeOrEqual(deadline),
		BusinessDaysLead: cal.CountBusinessDays(respondedAt, deadline),
	}
}
