/*
errors.go - Centralized error types for the workflow layer

PURPOSE:
  All workflow error types in one place. The store implementations return
  these sentinels; the services wrap them with transition context.

ERROR CATEGORIES:
  1. Not-found errors - Referenced request/meeting doesn't exist
  2. Transition errors - Lifecycle rule violations (client bugs or races)
  3. Validation errors - Bad caller input (negative page counts)

USAGE:
  if errors.Is(err, workflow.ErrRequestNotFound) { ... }

  var bad *workflow.InvalidTransitionError
  if errors.As(err, &bad) { ... }

SEE ALSO:
  - request.go: Transition rules that produce InvalidTransitionError
  - store/sqlite: Returns the not-found sentinels
*/
package workflow

import (
	"errors"
	"fmt"
)

// =============================================================================
// SENTINEL ERRORS - Use with errors.Is()
// =============================================================================

var (
	// ErrRequestNotFound is returned when a referenced records request
	// doesn't exist.
	ErrRequestNotFound = errors.New("records request not found")

	// ErrMeetingNotFound is returned when a referenced meeting doesn't exist.
	ErrMeetingNotFound = errors.New("meeting not found")

	// ErrInvalidTransition is returned for lifecycle moves the state
	// machine doesn't allow.
	ErrInvalidTransition = errors.New("invalid status transition")

	// ErrNoticeNotPosted is returned when checking compliance for a
	// meeting that has no posted notice.
	ErrNoticeNotPosted = errors.New("no notice posted for meeting")

	// ErrNegativePageCount is returned for fee estimates over a negative
	// number of pages.
	ErrNegativePageCount = errors.New("negative page count")
)

// =============================================================================
// STRUCTURED ERRORS - Carry additional context
// =============================================================================

// InvalidTransitionError reports a disallowed lifecycle move.
type InvalidTransitionError struct {
	RequestID RequestID
	From      RequestStatus
	To        RequestStatus
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("request %s: cannot move from %s to %s", e.RequestID, e.From, e.To)
}

func (e *InvalidTransitionError) Unwrap() error { return ErrInvalidTransition }

// IsNotFound returns true if the error indicates a missing record.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrRequestNotFound) || errors.Is(err, ErrMeetingNotFound)
}
