package businesstime_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/civica/compliance-engine/businesstime"
)

// =============================================================================
// FIXED DATE - Weekend observation
// =============================================================================

func TestFixedDate_ObservedShift(t *testing.T) {
	// GIVEN: A fixed holiday with weekend observation
	// WHEN: The literal date falls on a Saturday or Sunday
	// THEN: It is observed the preceding Friday / following Monday

	tests := []struct {
		name string
		spec businesstime.FixedDate
		year int
		want string
	}{
		{
			name: "weekday stays put",
			spec: businesstime.FixedDate{Name: "Christmas Day", Month: time.December, Day: 25, Observed: true},
			year: 2025, // Thursday
			want: "2025-12-25",
		},
		{
			name: "Saturday observed preceding Friday",
			spec: businesstime.FixedDate{Name: "Christmas Day", Month: time.December, Day: 25, Observed: true},
			year: 2021, // Saturday
			want: "2021-12-24",
		},
		{
			name: "Sunday observed following Monday",
			spec: businesstime.FixedDate{Name: "Independence Day", Month: time.July, Day: 4, Observed: true},
			year: 2021, // Sunday
			want: "2021-07-05",
		},
		{
			name: "Saturday Independence Day",
			spec: businesstime.FixedDate{Name: "Independence Day", Month: time.July, Day: 4, Observed: true},
			year: 2026, // Saturday
			want: "2026-07-03",
		},
		{
			name: "unobserved holiday never shifts",
			spec: businesstime.FixedDate{Name: "Christmas Day", Month: time.December, Day: 25},
			year: 2021, // Saturday
			want: "2021-12-25",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, ok := tt.spec.Resolve(tt.year)
			require.True(t, ok)
			assert.Equal(t, tt.want, d.Key())
		})
	}
}

// =============================================================================
// FLOATING - Nth weekday and last weekday
// =============================================================================

func TestNthWeekday_Resolve(t *testing.T) {
	tests := []struct {
		name string
		spec businesstime.NthWeekday
		year int
		want string
	}{
		{
			name: "3rd Monday of January (MLK Day)",
			spec: businesstime.NthWeekday{Name: "MLK Day", Month: time.January, Weekday: time.Monday, N: 3},
			year: 2025,
			want: "2025-01-20",
		},
		{
			name: "4th Thursday of November (Thanksgiving)",
			spec: businesstime.NthWeekday{Name: "Thanksgiving", Month: time.November, Weekday: time.Thursday, N: 4},
			year: 2025,
			want: "2025-11-27",
		},
		{
			name: "1st Monday of September (Labor Day)",
			spec: businesstime.NthWeekday{Name: "Labor Day", Month: time.September, Weekday: time.Monday, N: 1},
			year: 2025,
			want: "2025-09-01",
		},
		{
			name: "month starting on the target weekday",
			spec: businesstime.NthWeekday{Name: "Labor Day", Month: time.September, Weekday: time.Monday, N: 1},
			year: 2031, // September 1, 2031 is a Monday
			want: "2031-09-01",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, ok := tt.spec.Resolve(tt.year)
			require.True(t, ok)
			assert.Equal(t, tt.want, d.Key())
		})
	}
}

func TestNthWeekday_OutOfRange_Panics(t *testing.T) {
	// An ordinal the month cannot hold is a programming error, not data.

	assert.Panics(t, func() {
		businesstime.NthWeekday{Month: time.January, Weekday: time.Monday, N: 6}.Resolve(2025)
	}, "ordinal above 5 must panic")

	assert.Panics(t, func() {
		businesstime.NthWeekday{Month: time.January, Weekday: time.Monday, N: 0}.Resolve(2025)
	}, "ordinal zero must panic")

	assert.Panics(t, func() {
		// February 2025 has only four Mondays.
		businesstime.NthWeekday{Month: time.February, Weekday: time.Monday, N: 5}.Resolve(2025)
	}, "5th weekday missing from the month must panic")
}

func TestLastWeekday_Resolve(t *testing.T) {
	tests := []struct {
		name string
		spec businesstime.LastWeekday
		year int
		want string
	}{
		{
			name: "last Monday of May (Memorial Day) 2025",
			spec: businesstime.LastWeekday{Name: "Memorial Day", Month: time.May, Weekday: time.Monday},
			year: 2025,
			want: "2025-05-26",
		},
		{
			name: "last Monday of May 2022 lands on month end region",
			spec: businesstime.LastWeekday{Name: "Memorial Day", Month: time.May, Weekday: time.Monday},
			year: 2022,
			want: "2022-05-30",
		},
		{
			name: "last weekday equal to the last day of the month",
			spec: businesstime.LastWeekday{Name: "x", Month: time.June, Weekday: time.Monday},
			year: 2025, // June 30, 2025 is a Monday
			want: "2025-06-30",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, ok := tt.spec.Resolve(tt.year)
			require.True(t, ok)
			assert.Equal(t, tt.want, d.Key())
		})
	}
}

// =============================================================================
// MOVABLE FEAST - Easter arithmetic
// =============================================================================

func TestEasterSunday_KnownYears(t *testing.T) {
	tests := []struct {
		year int
		want string
	}{
		{2024, "2024-03-31"},
		{2025, "2025-04-20"},
		{2026, "2026-04-05"},
		{2027, "2027-03-28"},
		{1583, "1583-04-10"}, // earliest Gregorian year the algorithm covers
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, businesstime.EasterSunday(tt.year).Key(), "Easter %d", tt.year)
	}
}

func TestEasterOffset_GoodFriday(t *testing.T) {
	spec := businesstime.EasterOffset{Name: "Good Friday", Days: -2}

	d, ok := spec.Resolve(2025)
	require.True(t, ok)
	assert.Equal(t, "2025-04-18", d.Key())
	assert.Equal(t, time.Friday, d.Weekday())

	d, ok = spec.Resolve(2024)
	require.True(t, ok)
	assert.Equal(t, "2024-03-29", d.Key())
}

// =============================================================================
// CONDITIONAL PERIODIC - Election days
// =============================================================================

func TestElectionDay_EvenYearsOnly(t *testing.T) {
	general := businesstime.ElectionDay{Name: "General Election Day", Month: time.November, EvenYearsOnly: true}

	// Even year: first Tuesday after the first Monday.
	d, ok := general.Resolve(2024)
	require.True(t, ok)
	assert.Equal(t, "2024-11-05", d.Key())
	assert.Equal(t, time.Tuesday, d.Weekday())

	d, ok = general.Resolve(2026)
	require.True(t, ok)
	assert.Equal(t, "2026-11-03", d.Key())

	// Odd year: omitted entirely.
	_, ok = general.Resolve(2025)
	assert.False(t, ok)
}

func TestElectionDay_MonthStartingMonday(t *testing.T) {
	// November 2027 starts on a Monday; the election would be November 2.
	// EvenYearsOnly false keeps the holiday in every year.
	every := businesstime.ElectionDay{Name: "x", Month: time.November}

	d, ok := every.Resolve(2027)
	require.True(t, ok)
	assert.Equal(t, "2027-11-02", d.Key())
}

// =============================================================================
// RULE SET - Determinism, ordering, de-duplication
// =============================================================================

func testRules() businesstime.RuleSet {
	return businesstime.RuleSet{
		Name:    "test",
		Version: 1,
		Specs: []businesstime.HolidaySpec{
			businesstime.FixedDate{Name: "Christmas Day", Month: time.December, Day: 25, Observed: true},
			businesstime.FixedDate{Name: "New Year's Day", Month: time.January, Day: 1, Observed: true},
			businesstime.NthWeekday{Name: "Thanksgiving", Month: time.November, Weekday: time.Thursday, N: 4},
		},
	}
}

func TestRuleSet_Deterministic(t *testing.T) {
	rules := testRules()
	first := rules.HolidaysForYear(2025)
	second := rules.HolidaysForYear(2025)
	assert.Equal(t, first, second, "same year must yield an identical set")
}

func TestRuleSet_SortedAscending(t *testing.T) {
	dates := testRules().HolidaysForYear(2025)
	require.Len(t, dates, 3)
	for i := 1; i < len(dates); i++ {
		assert.True(t, dates[i-1].Before(dates[i]), "catalog must be sorted: %s before %s", dates[i-1], dates[i])
	}
	assert.Equal(t, "2025-01-01", dates[0].Key())
	assert.Equal(t, "2025-12-25", dates[2].Key())
}

func TestRuleSet_CollapsesDuplicateDates(t *testing.T) {
	rules := businesstime.RuleSet{
		Name: "dup",
		Specs: []businesstime.HolidaySpec{
			businesstime.FixedDate{Name: "Independence Day", Month: time.July, Day: 4},
			businesstime.FixedDate{Name: "Also July Fourth", Month: time.July, Day: 4},
		},
	}
	assert.Len(t, rules.HolidaysForYear(2025), 1)
}

func TestRuleSet_HolidaysForYears_MergesBoundary(t *testing.T) {
	dates := testRules().HolidaysForYears(2024, 2025)
	keys := make([]string, len(dates))
	for i, d := range dates {
		keys[i] = d.Key()
	}
	assert.Contains(t, keys, "2024-12-25")
	assert.Contains(t, keys, "2025-01-01")
}

func TestRuleSet_TotalForAnyYear(t *testing.T) {
	// Far past and far future years resolve without error.
	for _, year := range []int{1600, 1900, 2100, 3000} {
		assert.NotPanics(t, func() { testRules().HolidaysForYear(year) }, "year %d", year)
	}
}
