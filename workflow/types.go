// Package workflow implements the stateful caller layer over the pure
// compliance evaluators: records-request lifecycle with deadline resets,
// meeting notice tracking, copy-fee estimation, and the overdue sweep.
// The core engine stays a stateless function library; lifecycle and
// persistence live here.
package workflow

import (
	"time"

	"github.com/civica/compliance-engine/businesstime"
)

// =============================================================================
// RECORDS REQUEST - APRA request lifecycle
// =============================================================================

type RequestID string

// RequestStatus is the tagged state of a records request. Transitions are
// enforced by RequestService; see request.go for the allowed edges.
type RequestStatus string

const (
	StatusReceived          RequestStatus = "received"
	StatusClarificationSent RequestStatus = "clarification_sent"
	StatusClarified         RequestStatus = "clarified"
	StatusFulfilled         RequestStatus = "fulfilled"
	StatusDenied            RequestStatus = "denied"
	StatusOverdue           RequestStatus = "overdue"
)

// RecordsRequest is one public-records request and its running deadline.
// Deadline is recomputed (never mutated in place by the core) when a
// clarification response restarts the statutory clock.
type RecordsRequest struct {
	ID          RequestID
	Requester   string
	Description string

	ReceivedAt businesstime.TimePoint
	Deadline   businesstime.TimePoint
	Status     RequestStatus

	ClarificationSentAt *businesstime.TimePoint
	ClarifiedAt         *businesstime.TimePoint
	ClosedAt            *businesstime.TimePoint

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Open reports whether the request still awaits an agency response.
func (r *RecordsRequest) Open() bool {
	switch r.Status {
	case StatusFulfilled, StatusDenied:
		return false
	default:
		return true
	}
}

// =============================================================================
// REQUEST EVENT - Append-only audit trail
// =============================================================================

type EventType string

const (
	EventReceived          EventType = "received"
	EventClarificationSent EventType = "clarification_sent"
	EventClarified         EventType = "clarified"
	EventDeadlineReset     EventType = "deadline_reset"
	EventFulfilled         EventType = "fulfilled"
	EventDenied            EventType = "denied"
	EventMarkedOverdue     EventType = "marked_overdue"
)

// RequestEvent records one lifecycle transition. Events are append-only;
// corrections happen as new events, never edits.
type RequestEvent struct {
	ID        string
	RequestID RequestID
	Type      EventType

	// At is when the transition legally occurred (the instant deadline
	// arithmetic uses), distinct from RecordedAt.
	At businesstime.TimePoint

	// Deadline carries the request's deadline after the event, when the
	// event changed it.
	Deadline *businesstime.TimePoint

	Note       string
	RecordedAt time.Time
}

// =============================================================================
// MEETING - Open Door notice tracking
// =============================================================================

type MeetingID string

// MeetingKind drives the notice policy. Emergency meetings are exempt from
// the 48-hour floor; the exemption is applied here, never in the core.
type MeetingKind string

const (
	MeetingRegular   MeetingKind = "regular"
	MeetingExecutive MeetingKind = "executive"
	MeetingEmergency MeetingKind = "emergency"
)

// Meeting is one public meeting and its posted notice, if any.
type Meeting struct {
	ID   MeetingID
	Body string // governing body, e.g. "Board of Zoning Appeals"
	Kind MeetingKind

	StartsAt       businesstime.TimePoint
	NoticePostedAt *businesstime.TimePoint

	CreatedAt time.Time
	UpdatedAt time.Time
}
