/*
request.go - Records-request lifecycle

PURPOSE:
  Drives a records request through its tagged states and keeps its
  statutory deadline current. The deadline math itself is delegated to the
  pure compliance evaluator; this service owns what the evaluator
  deliberately does not: state, persistence, and the clarification reset.

REQUEST FLOW:
  received ──▶ clarification_sent ──▶ clarified ──▶ fulfilled | denied
     │                │                   │
     │                └──▶ denied         └──▶ overdue ──▶ fulfilled | denied
     └──▶ fulfilled | denied | overdue

DEADLINE RESET:
  Recording a clarification response re-invokes the same pure deadline
  function with the response instant. The "reset" is this re-invocation
  plus a deadline_reset event in the log - no stored clock state exists
  anywhere.

SEE ALSO:
  - compliance/apra.go: The deadline function this service calls
  - monitor.go: Background sweep that feeds MarkOverdue
*/
package workflow

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/civica/compliance-engine/businesstime"
	"github.com/civica/compliance-engine/compliance"
)

// =============================================================================
// REQUEST SERVICE
// =============================================================================

// RequestService orchestrates the records-request lifecycle.
type RequestService struct {
	Store    Store
	Calendar *businesstime.Calendar
}

func NewRequestService(store Store, cal *businesstime.Calendar) *RequestService {
	return &RequestService{Store: store, Calendar: cal}
}

// Receive opens a request and computes its response deadline from the
// receipt instant.
func (s *RequestService) Receive(ctx context.Context, requester, description string, receivedAt businesstime.TimePoint) (*RecordsRequest, error) {
	now := time.Now()
	r := &RecordsRequest{
		ID:          RequestID(uuid.NewString()),
		Requester:   requester,
		Description: description,
		ReceivedAt:  receivedAt,
		Deadline:    compliance.ResponseDeadline(receivedAt, s.Calendar),
		Status:      StatusReceived,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.Store.SaveRequest(ctx, r); err != nil {
		return nil, fmt.Errorf("failed to save request: %w", err)
	}
	if err := s.appendEvent(ctx, r, EventReceived, receivedAt, &r.Deadline, ""); err != nil {
		return nil, err
	}
	return r, nil
}

// SendForClarification records that the request was returned to the
// requester for clarification. The deadline is left untouched until a
// clarification response arrives.
func (s *RequestService) SendForClarification(ctx context.Context, id RequestID, at businesstime.TimePoint, note string) (*RecordsRequest, error) {
	r, err := s.transition(ctx, id, StatusClarificationSent, StatusReceived)
	if err != nil {
		return nil, err
	}
	r.ClarificationSentAt = &at
	if err := s.Store.SaveRequest(ctx, r); err != nil {
		return nil, fmt.Errorf("failed to save request: %w", err)
	}
	if err := s.appendEvent(ctx, r, EventClarificationSent, at, nil, note); err != nil {
		return nil, err
	}
	return r, nil
}

// RecordClarification records the requester's clarification response and
// restarts the statutory clock from the response instant.
func (s *RequestService) RecordClarification(ctx context.Context, id RequestID, respondedAt businesstime.TimePoint) (*RecordsRequest, error) {
	r, err := s.transition(ctx, id, StatusClarified, StatusClarificationSent)
	if err != nil {
		return nil, err
	}
	r.ClarifiedAt = &respondedAt
	r.Deadline = compliance.ResponseDeadline(respondedAt, s.Calendar)
	if err := s.Store.SaveRequest(ctx, r); err != nil {
		return nil, fmt.Errorf("failed to save request: %w", err)
	}
	if err := s.appendEvent(ctx, r, EventClarified, respondedAt, nil, ""); err != nil {
		return nil, err
	}
	if err := s.appendEvent(ctx, r, EventDeadlineReset, respondedAt, &r.Deadline, "clock restarted from clarification response"); err != nil {
		return nil, err
	}
	return r, nil
}

// Fulfill closes the request as produced/responded and reports whether the
// response beat the deadline.
func (s *RequestService) Fulfill(ctx context.Context, id RequestID, at businesstime.TimePoint) (*RecordsRequest, compliance.ResponseCompliance, error) {
	r, err := s.transition(ctx, id, StatusFulfilled, StatusReceived, StatusClarified, StatusOverdue)
	if err != nil {
		return nil, compliance.ResponseCompliance{}, err
	}
	verdict := compliance.ResponseCompliance{
		Deadline:         r.Deadline,
		Timely:           at.BeforeOrEqual(r.Deadline),
		BusinessDaysLead: s.Calendar.CountBusinessDays(at, r.Deadline),
	}
	r.ClosedAt = &at
	if err := s.Store.SaveRequest(ctx, r); err != nil {
		return nil, compliance.ResponseCompliance{}, fmt.Errorf("failed to save request: %w", err)
	}
	if err := s.appendEvent(ctx, r, EventFulfilled, at, nil, ""); err != nil {
		return nil, compliance.ResponseCompliance{}, err
	}
	return r, verdict, nil
}

// Deny closes the request with a denial. Allowed from any open status,
// including a pending clarification the requester never answered.
func (s *RequestService) Deny(ctx context.Context, id RequestID, at businesstime.TimePoint, reason string) (*RecordsRequest, error) {
	r, err := s.transition(ctx, id, StatusDenied, StatusReceived, StatusClarificationSent, StatusClarified, StatusOverdue)
	if err != nil {
		return nil, err
	}
	r.ClosedAt = &at
	if err := s.Store.SaveRequest(ctx, r); err != nil {
		return nil, fmt.Errorf("failed to save request: %w", err)
	}
	if err := s.appendEvent(ctx, r, EventDenied, at, nil, reason); err != nil {
		return nil, err
	}
	return r, nil
}

// MarkOverdue sweeps open requests whose deadline is behind asOf and marks
// them overdue. Returns the IDs it marked. Requests awaiting clarification
// are skipped: their clock is suspended until the requester answers.
func (s *RequestService) MarkOverdue(ctx context.Context, asOf businesstime.TimePoint) ([]RequestID, error) {
	var marked []RequestID
	for _, status := range []RequestStatus{StatusReceived, StatusClarified} {
		requests, err := s.Store.ListRequestsByStatus(ctx, status)
		if err != nil {
			return nil, fmt.Errorf("failed to list %s requests: %w", status, err)
		}
		for _, r := range requests {
			if asOf.BeforeOrEqual(r.Deadline) {
				continue
			}
			r.Status = StatusOverdue
			r.UpdatedAt = time.Now()
			if err := s.Store.SaveRequest(ctx, r); err != nil {
				return marked, fmt.Errorf("failed to save request %s: %w", r.ID, err)
			}
			if err := s.appendEvent(ctx, r, EventMarkedOverdue, asOf, nil, ""); err != nil {
				return marked, err
			}
			marked = append(marked, r.ID)
		}
	}
	return marked, nil
}

// History returns the request's append-only event trail.
func (s *RequestService) History(ctx context.Context, id RequestID) ([]RequestEvent, error) {
	if _, err := s.Store.GetRequest(ctx, id); err != nil {
		return nil, err
	}
	return s.Store.ListEvents(ctx, id)
}

// transition loads the request, verifies the move is allowed, and applies
// the new status in memory. Callers persist after filling event fields.
func (s *RequestService) transition(ctx context.Context, id RequestID, to RequestStatus, allowedFrom ...RequestStatus) (*RecordsRequest, error) {
	r, err := s.Store.GetRequest(ctx, id)
	if err != nil {
		return nil, err
	}
	ok := false
	for _, from := range allowedFrom {
		if r.Status == from {
			ok = true
			break
		}
	}
	if !ok {
		return nil, &InvalidTransitionError{RequestID: id, From: r.Status, To: to}
	}
	r.Status = to
	r.UpdatedAt = time.Now()
	return r, nil
}

func (s *RequestService) appendEvent(ctx context.Context, r *RecordsRequest, kind EventType, at businesstime.TimePoint, deadline *businesstime.TimePoint, note string) error {
	e := RequestEvent{
		ID:         uuid.NewString(),
		RequestID:  r.ID,
		Type:       kind,
		At:         at,
		Deadline:   deadline,
		Note:       note,
		RecordedAt: time.Now(),
	}
	if err := s.Store.AppendEvent(ctx, e); err != nil {
		return fmt.Errorf("failed to record %s event: %w", kind, err)
	}
	return nil
}
