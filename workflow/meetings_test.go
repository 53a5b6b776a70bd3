package workflow_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/civica/compliance-engine/businesstime"
	"github.com/civica/compliance-engine/indiana"
	"github.com/civica/compliance-engine/workflow"
)

func newMeetingFixture(t *testing.T) *workflow.MeetingService {
	t.Helper()
	cal, err := indiana.Calendar(businesstime.Options{})
	require.NoError(t, err)
	return workflow.NewMeetingService(workflow.NewMemoryStore(), cal)
}

func TestSchedule_NoticeDeadline(t *testing.T) {
	// GIVEN: A regular board meeting Monday 2025-02-10 at 19:00
	// WHEN: Asking when notice must be posted
	// THEN: Thursday 2025-02-06 19:00, 48 business hours ahead

	svc := newMeetingFixture(t)
	ctx := context.Background()

	m, err := svc.Schedule(ctx, "Board of Zoning Appeals", workflow.MeetingRegular,
		businesstime.NewTimePointWithHour(2025, time.February, 10, 19))
	require.NoError(t, err)

	requiredBy, covered, err := svc.RequiredPostedBy(ctx, m.ID)
	require.NoError(t, err)
	assert.True(t, covered)
	assert.Equal(t, businesstime.NewTimePointWithHour(2025, time.February, 6, 19), requiredBy)
}

func TestCheckNotice_TimelyPosting(t *testing.T) {
	svc := newMeetingFixture(t)
	ctx := context.Background()

	m, err := svc.Schedule(ctx, "Town Council", workflow.MeetingRegular,
		businesstime.NewTimePointWithHour(2025, time.February, 10, 19))
	require.NoError(t, err)

	_, err = svc.PostNotice(ctx, m.ID, businesstime.NewTimePointWithHour(2025, time.February, 5, 10))
	require.NoError(t, err)

	status, err := svc.CheckNotice(ctx, m.ID)
	require.NoError(t, err)

	assert.False(t, status.Exempt)
	assert.True(t, status.Posted)
	require.NotNil(t, status.Result)
	assert.True(t, status.Result.Timely)
}

func TestCheckNotice_LatePosting(t *testing.T) {
	// Executive sessions carry the same notice floor as regular meetings.

	svc := newMeetingFixture(t)
	ctx := context.Background()

	m, err := svc.Schedule(ctx, "Town Council", workflow.MeetingExecutive,
		businesstime.NewTimePointWithHour(2025, time.February, 17, 19))
	require.NoError(t, err)

	_, err = svc.PostNotice(ctx, m.ID, businesstime.NewTimePointWithHour(2025, time.February, 14, 9))
	require.NoError(t, err)

	status, err := svc.CheckNotice(ctx, m.ID)
	require.NoError(t, err)

	require.NotNil(t, status.Result)
	assert.False(t, status.Result.Timely)
}

func TestCheckNotice_NothingPostedYet(t *testing.T) {
	svc := newMeetingFixture(t)
	ctx := context.Background()

	m, err := svc.Schedule(ctx, "Town Council", workflow.MeetingRegular,
		businesstime.NewTimePointWithHour(2025, time.February, 10, 19))
	require.NoError(t, err)

	_, err = svc.CheckNotice(ctx, m.ID)
	assert.ErrorIs(t, err, workflow.ErrNoticeNotPosted)
}

func TestCheckNotice_EmergencyExempt(t *testing.T) {
	// GIVEN: An emergency meeting called with no posted notice
	// WHEN: The notice rule is evaluated
	// THEN: The meeting is exempt; no deadline exists and no error is raised

	svc := newMeetingFixture(t)
	ctx := context.Background()

	m, err := svc.Schedule(ctx, "County Commissioners", workflow.MeetingEmergency,
		businesstime.NewTimePointWithHour(2025, time.March, 3, 8))
	require.NoError(t, err)

	status, err := svc.CheckNotice(ctx, m.ID)
	require.NoError(t, err)
	assert.True(t, status.Exempt)
	assert.Nil(t, status.Result)

	_, covered, err := svc.RequiredPostedBy(ctx, m.ID)
	require.NoError(t, err)
	assert.False(t, covered)
}

func TestCheckNotice_UnknownMeeting(t *testing.T) {
	svc := newMeetingFixture(t)

	_, err := svc.CheckNotice(context.Background(), workflow.MeetingID("nope"))
	assert.ErrorIs(t, err, workflow.ErrMeetingNotFound)
	assert.True(t, workflow.IsNotFound(err))
}
