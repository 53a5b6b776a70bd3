package compliance_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/civica/compliance-engine/businesstime"
	"github.com/civica/compliance-engine/compliance"
	"github.com/civica/compliance-engine/indiana"
)

func newIndianaCalendar(t *testing.T) *businesstime.Calendar {
	t.Helper()
	cal, err := indiana.Calendar(businesstime.Options{})
	require.NoError(t, err)
	return cal
}

// =============================================================================
// NOTICE DEADLINE
// =============================================================================

func TestRequiredPostedBy_PlainWeek(t *testing.T) {
	// GIVEN: A board meeting Monday 2025-02-10 at 19:00
	// WHEN: Walking 48 business hours back (skipping Sat/Sun)
	// THEN: Notice was required by Thursday 2025-02-06 19:00

	cal := newIndianaCalendar(t)
	meeting := businesstime.NewTimePointWithHour(2025, time.February, 10, 19)

	got := compliance.RequiredPostedBy(meeting, cal)
	assert.Equal(t, businesstime.NewTimePointWithHour(2025, time.February, 6, 19), got)
}

func TestRequiredPostedBy_SpansNewYears(t *testing.T) {
	// GIVEN: A meeting Thursday 2025-01-02 at 19:00
	// WHEN: New Year's Day is excluded from the backward count
	// THEN: The deadline lands the prior Monday 2024-12-30 19:00, not Tuesday

	cal := newIndianaCalendar(t)
	meeting := businesstime.NewTimePointWithHour(2025, time.January, 2, 19)

	got := compliance.RequiredPostedBy(meeting, cal)
	assert.Equal(t, businesstime.NewTimePointWithHour(2024, time.December, 30, 19), got)
}

// =============================================================================
// COMPLIANCE CHECK
// =============================================================================

func TestCheckNotice_TimelyPosting(t *testing.T) {
	cal := newIndianaCalendar(t)
	meeting := businesstime.NewTimePointWithHour(2025, time.February, 10, 19)
	posted := businesstime.NewTimePointWithHour(2025, time.February, 6, 16)

	result := compliance.CheckNotice(meeting, posted, cal)

	assert.True(t, result.Timely)
	assert.Equal(t, businesstime.NewTimePointWithHour(2025, time.February, 6, 19), result.RequiredPostedBy)
	assert.GreaterOrEqual(t, result.BusinessHoursLead, compliance.NoticeLeadHours)
}

func TestCheckNotice_LatePosting(t *testing.T) {
	// GIVEN: A later meeting Monday 2025-02-17 19:00, whose own deadline is
	//        Thursday 2025-02-13 19:00 (Lincoln's Birthday Feb 12 excluded)
	// WHEN: The notice goes up Friday 2025-02-14
	// THEN: The posting is late

	cal := newIndianaCalendar(t)
	meeting := businesstime.NewTimePointWithHour(2025, time.February, 17, 19)
	posted := businesstime.NewTimePointWithHour(2025, time.February, 14, 9)

	result := compliance.CheckNotice(meeting, posted, cal)

	assert.False(t, result.Timely)
	assert.Equal(t, businesstime.NewTimePointWithHour(2025, time.February, 13, 19), result.RequiredPostedBy)
	assert.Less(t, result.BusinessHoursLead, compliance.NoticeLeadHours)
}

func TestCheckNotice_PostingExactlyAtDeadline(t *testing.T) {
	cal := newIndianaCalendar(t)
	meeting := businesstime.NewTimePointWithHour(2025, time.February, 10, 19)
	deadline := compliance.RequiredPostedBy(meeting, cal)

	result := compliance.CheckNotice(meeting, deadline, cal)

	assert.True(t, result.Timely, "posting at the deadline instant is timely")
	assert.Equal(t, compliance.NoticeLeadHours, result.BusinessHoursLead)
}

func TestCheckNotice_DeadlineIsBusinessTime(t *testing.T) {
	// The walk only stops on counted hours, so the required-by instant is
	// always itself business time - even for weekend or holiday meetings.
	cal := newIndianaCalendar(t)

	meetings := []businesstime.TimePoint{
		businesstime.NewTimePointWithHour(2025, time.February, 10, 19),
		businesstime.NewTimePointWithHour(2025, time.July, 5, 10),    // Saturday
		businesstime.NewTimePointWithHour(2025, time.November, 27, 9), // Thanksgiving
	}
	for _, m := range meetings {
		requiredBy := compliance.RequiredPostedBy(m, cal)
		assert.True(t, cal.IsBusinessTime(requiredBy), "meeting %s", m)
	}
}
