/*
store.go - Persistence interface for requests, events, and meetings

PURPOSE:
  Defines the interface between the workflow services and the database.
  Requests and meetings are updated in place as their status moves; the
  event log is APPEND-ONLY - every lifecycle transition leaves a row that
  is never edited or deleted, because the trail is what an APRA complaint
  or public-access counselor inquiry gets audited against.

  Holiday data is never persisted anywhere: calendars are rebuilt from
  rule sets and options on every process start.

IMPLEMENTATIONS:
  - store/sqlite: Production SQLite
  - workflow/memory.go: In-memory for tests and the CLI default

SEE ALSO:
  - request.go / meetings.go: Services using this interface
*/
package workflow

import "context"

// =============================================================================
// STORE - Workflow persistence
// =============================================================================

// Store persists requests, their append-only event log, and meetings.
type Store interface {
	// SaveRequest inserts or updates a records request by ID.
	SaveRequest(ctx context.Context, r *RecordsRequest) error

	// GetRequest returns the request or ErrRequestNotFound.
	GetRequest(ctx context.Context, id RequestID) (*RecordsRequest, error)

	// ListRequestsByStatus returns requests in a status, oldest first.
	ListRequestsByStatus(ctx context.Context, status RequestStatus) ([]*RecordsRequest, error)

	// AppendEvent persists a lifecycle event. Append-only: no update or
	// delete exists for events.
	AppendEvent(ctx context.Context, e RequestEvent) error

	// ListEvents returns a request's events in recorded order.
	ListEvents(ctx context.Context, id RequestID) ([]RequestEvent, error)

	// SaveMeeting inserts or updates a meeting by ID.
	SaveMeeting(ctx context.Context, m *Meeting) error

	// GetMeeting returns the meeting or ErrMeetingNotFound.
	GetMeeting(ctx context.Context, id MeetingID) (*Meeting, error)

	// ListMeetings returns all meetings, earliest start first.
	ListMeetings(ctx context.Context) ([]*Meeting, error)
}
