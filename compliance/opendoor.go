/*
Package compliance implements the two statutory deadline evaluators.

PURPOSE:
  The Open Door Law notice rule and the APRA response rule, built on the
  businesstime walker. Both evaluators are pure: they take timestamps and
  a calendar, and return deadlines and verdicts. Nothing here persists,
  logs, or holds state; lifecycle (deadline resets, overdue sweeps) lives
  in the workflow layer that calls these functions.

OPEN DOOR (this file):
  Public notice of a meeting must be posted at least 48 business hours
  before the meeting starts, excluding weekends and legal holidays.
  RequiredPostedBy walks 48 business hours back from the meeting start;
  CheckNotice compares an actual posting time against that deadline and
  measures the posted lead in business hours.

  Emergency meetings are exempt from the 48-hour floor entirely. That is
  a meeting-type policy decision owned by the calling engine - it simply
  does not invoke this evaluator. The evaluator has no notion of meeting
  type.

SEE ALSO:
  - apra.go: The records-request response deadline
  - businesstime/walker.go: The walks both evaluators are built on
*/
package compliance

import (
	"github.com/civica/compliance-engine/businesstime"
)

// NoticeLeadHours is the statutory minimum posting lead for public
// meetings, in business hours.
const NoticeLeadHours = 48

// NoticeCompliance is the verdict for one meeting's notice posting.
// Produced fresh per evaluation; never persisted here.
type NoticeCompliance struct {
	// RequiredPostedBy is the latest instant a timely notice could have
	// been posted. Always itself a business hour.
	RequiredPostedBy businesstime.TimePoint

	// Timely is true when the notice was posted at or before the deadline.
	Timely bool

	// BusinessHoursLead is the measured business-hour lead between the
	// posting and the meeting start.
	BusinessHoursLead int
}

// RequiredPostedBy returns the latest timely posting instant for a meeting:
// 48 business hours before the meeting start, skipping weekends and the
// calendar's holidays.
func RequiredPostedBy(meetingStart businesstime.TimePoint, cal *businesstime.Calendar) businesstime.TimePoint {
	return cal.SubtractBusinessHours(meetingStart, NoticeLeadHours)
}

// CheckNotice evaluates a posted notice against the 48-business-hour rule.
func CheckNotice(meetingStart, postedAt businesstime.TimePoint, cal *businesstime.Calendar) NoticeCompliance {
	requiredBy := RequiredPostedBy(meetingStart, cal)
	return NoticeCompliance{
		RequiredPostedBy:  requiredBy,
		Timely:            postedAt.BeforeOrEqual(requiredBy),
		BusinessHoursLead: cal.CountBusinessHours(postedAt, meetingStart),
	}
}
