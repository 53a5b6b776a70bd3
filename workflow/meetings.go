/*
meetings.go - Meeting notice tracking

PURPOSE:
  Tracks public meetings and their posted notices, and evaluates the
  48-business-hour notice rule. The meeting-type policy lives here: an
  emergency meeting is exempt from the floor, so this service simply never
  invokes the evaluator for it - the core has no notion of meeting type.

SEE ALSO:
  - compliance/opendoor.go: The evaluator applied to non-exempt meetings
  - types.go: Meeting and MeetingKind
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
// MEETING SERVICE
// =============================================================================

// MeetingService tracks meetings and applies the notice policy.
type MeetingService struct {
	Store    Store
	Calendar *businesstime.Calendar
}

func NewMeetingService(store Store, cal *businesstime.Calendar) *MeetingService {
	return &MeetingService{Store: store, Calendar: cal}
}

// NoticeStatus is the meeting-level verdict, wrapping the evaluator result
// for meetings the statute actually covers.
type NoticeStatus struct {
	// Exempt is true for emergency meetings; Result is nil for them.
	Exempt bool

	// Posted is false when no notice exists yet; Result is nil then too.
	Posted bool

	Result *compliance.NoticeCompliance
}

// Schedule records a meeting.
func (s *MeetingService) Schedule(ctx context.Context, body string, kind MeetingKind, startsAt businesstime.TimePoint) (*Meeting, error) {
	now := time.Now()
	m := &Meeting{
		ID:        MeetingID(uuid.NewString()),
		Body:      body,
		Kind:      kind,
		StartsAt:  startsAt,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.Store.SaveMeeting(ctx, m); err != nil {
		return nil, fmt.Errorf("failed to save meeting: %w", err)
	}
	return m, nil
}

// PostNotice records the public notice posting instant.
func (s *MeetingService) PostNotice(ctx context.Context, id MeetingID, postedAt businesstime.TimePoint) (*Meeting, error) {
	m, err := s.Store.GetMeeting(ctx, id)
	if err != nil {
		return nil, err
	}
	m.NoticePostedAt = &postedAt
	m.UpdatedAt = time.Now()
	if err := s.Store.SaveMeeting(ctx, m); err != nil {
		return nil, fmt.Errorf("failed to save meeting: %w", err)
	}
	return m, nil
}

// CheckNotice evaluates the meeting's notice posting. Emergency meetings
// are exempt and skip the evaluator entirely.
func (s *MeetingService) CheckNotice(ctx context.Context, id MeetingID) (NoticeStatus, error) {
	m, err := s.Store.GetMeeting(ctx, id)
	if err != nil {
		return NoticeStatus{}, err
	}
	if m.Kind == MeetingEmergency {
		return NoticeStatus{Exempt: true}, nil
	}
	if m.NoticePostedAt == nil {
		return NoticeStatus{}, fmt.Errorf("meeting %s: %w", id, ErrNoticeNotPosted)
	}
	result := compliance.CheckNotice(m.StartsAt, *m.NoticePostedAt, s.Calendar)
	return NoticeStatus{Posted: true, Result: &result}, nil
}

// RequiredPostedBy returns the meeting's notice deadline without needing a
// posting on file. Emergency meetings have none; the second return is
// false for them.
func (s *MeetingService) RequiredPostedBy(ctx context.Context, id MeetingID) (businesstime.TimePoint, bool, error) {
	m, err := s.Store.GetMeeting(ctx, id)
	if err != nil {
		return businesstime.TimePoint{}, false, err
	}
	if m.Kind == MeetingEmergency {
		return businesstime.TimePoint{}, false, nil
	}
	return compliance.RequiredPostedBy(m.StartsAt, s.Calendar), true, nil
}
