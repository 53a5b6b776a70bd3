package factory_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/civica/compliance-engine/businesstime"
	"github.com/civica/compliance-engine/factory"
)

func TestParseCalendar_JSON(t *testing.T) {
	// GIVEN: JSON naming the indiana rule set plus one proclamation closure
	// WHEN: The calendar is built
	// THEN: Both catalog and extra dates classify as non-business

	data := []byte(`{
		"rule_set": "indiana",
		"extra_holidays": ["2025-06-12"]
	}`)

	cal, err := factory.ParseCalendar(data)
	require.NoError(t, err)

	assert.False(t, cal.IsBusinessDay(businesstime.NewTimePoint(2025, time.December, 25).Date()))
	assert.False(t, cal.IsBusinessDay(businesstime.NewTimePoint(2025, time.June, 12).Date()))
	assert.True(t, cal.IsBusinessDay(businesstime.NewTimePoint(2025, time.June, 13).Date()))
}

func TestParseCalendarYAML(t *testing.T) {
	data := []byte(`
rule_set: indiana
extra_holidays:
  - "2025-06-12"
  - "2025-08-04"
`)

	cal, err := factory.ParseCalendarYAML(data)
	require.NoError(t, err)

	assert.False(t, cal.IsBusinessDay(businesstime.NewTimePoint(2025, time.June, 12).Date()))
	assert.False(t, cal.IsBusinessDay(businesstime.NewTimePoint(2025, time.August, 4).Date()))
}

func TestFromConfig_DefaultRuleSet(t *testing.T) {
	// The empty rule set name means the built-in catalog.

	cal, err := factory.FromConfig(factory.CalendarConfig{})
	require.NoError(t, err)

	assert.False(t, cal.IsBusinessDay(businesstime.NewTimePoint(2025, time.July, 4).Date()))
	assert.True(t, cal.IsBusinessDay(businesstime.NewTimePoint(2025, time.July, 7).Date()))
}

func TestFromConfig_UnknownRuleSet(t *testing.T) {
	_, err := factory.FromConfig(factory.CalendarConfig{RuleSet: "narnia"})

	require.Error(t, err)
	assert.ErrorIs(t, err, businesstime.ErrUnknownRuleSet)
	assert.Contains(t, err.Error(), "narnia")
}

func TestFromConfig_MalformedExtraDate(t *testing.T) {
	_, err := factory.FromConfig(factory.CalendarConfig{
		ExtraHolidays: []string{"06/12/2025"},
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, businesstime.ErrInvalidDate)
}

func TestParseCalendar_MalformedJSON(t *testing.T) {
	_, err := factory.ParseCalendar([]byte(`{not json`))
	assert.Error(t, err)
}

func TestRuleSetNames(t *testing.T) {
	assert.Contains(t, factory.RuleSetNames(), "indiana")
}

func TestToConfig_SortsExtras(t *testing.T) {
	cfg := factory.ToConfig("indiana", []string{"2025-08-04", "2025-06-12"})

	assert.Equal(t, "indiana", cfg.RuleSet)
	assert.Equal(t, []string{"2025-06-12", "2025-08-04"}, cfg.ExtraHolidays)
}
