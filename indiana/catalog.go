/*
Package indiana provides the Indiana statutory holiday rule set.

PURPOSE:
  The one jurisdiction catalog shipped with the engine: the legal holidays
  of IC 1-1-9-1, expressed as businesstime holiday specs. Local-government
  compliance clocks (Open Door notice, APRA response) exclude these days.

THE SET:
  Fixed (weekend-observed):    New Year's Day, Lincoln's Birthday,
                               Washington's Birthday, Independence Day,
                               Veterans Day, Christmas Day
  Floating:                    MLK Day (3rd Mon Jan), Memorial Day
                               (last Mon May), Labor Day (1st Mon Sep),
                               Columbus Day (2nd Mon Oct), Thanksgiving
                               (4th Thu Nov)
  Movable feast:               Good Friday (Easter - 2)
  Conditional (even years):    Primary Election Day (May), General
                               Election Day (November)

PROCLAMATION MOVES:
  The statute fixes Lincoln's and Washington's birthdays to February 12
  and 22; in practice the governor moves their observance by proclamation
  (typically to the days after Thanksgiving and Christmas). Proclamation
  moves are caller configuration, not catalog rules: pass the proclaimed
  dates as extra holidays in businesstime.Options.

USAGE:
  dates := indiana.Holidays(2025)
  cal, err := businesstime.NewCalendar(indiana.Rules(), opts)

SEE ALSO:
  - businesstime/spec.go: The spec kinds used here
  - compliance package: The statutes consuming this calendar
*/
package indiana

import (
	"time"

	"github.com/civica/compliance-engine/businesstime"
)

// RuleSetVersion identifies the catalog revision carried by this build.
const RuleSetVersion = 1

// Rules returns the Indiana statutory holiday rule set.
func Rules() businesstime.RuleSet {
	return businesstime.RuleSet{
		Name:    "indiana",
		Version: RuleSetVersion,
		Specs: []businesstime.HolidaySpec{
			businesstime.FixedDate{Name: "New Year's Day", Month: time.January, Day: 1, Observed: true},
			businesstime.NthWeekday{Name: "Martin Luther King Jr. Day", Month: time.January, Weekday: time.Monday, N: 3},
			businesstime.FixedDate{Name: "Lincoln's Birthday", Month: time.February, Day: 12, Observed: true},
			businesstime.FixedDate{Name: "Washington's Birthday", Month: time.February, Day: 22, Observed: true},
			businesstime.EasterOffset{Name: "Good Friday", Days: -2},
			businesstime.ElectionDay{Name: "Primary Election Day", Month: time.May, EvenYearsOnly: true},
			businesstime.LastWeekday{Name: "Memorial Day", Month: time.May, Weekday: time.Monday},
			businesstime.FixedDate{Name: "Independence Day", Month: time.July, Day: 4, Observed: true},
			businesstime.NthWeekday{Name: "Labor Day", Month: time.September, Weekday: time.Monday, N: 1},
			businesstime.NthWeekday{Name: "Columbus Day", Month: time.October, Weekday: time.Monday, N: 2},
			businesstime.ElectionDay{Name: "General Election Day", Month: time.November, EvenYearsOnly: true},
			businesstime.FixedDate{Name: "Veterans Day", Month: time.November, Day: 11, Observed: true},
			businesstime.NthWeekday{Name: "Thanksgiving Day", Month: time.November, Weekday: time.Thursday, N: 4},
			businesstime.FixedDate{Name: "Christmas Day", Month: time.December, Day: 25, Observed: true},
		},
	}
}

// Holidays returns the resolved, sorted holiday dates for a year.
func Holidays(year int) []businesstime.HolidayDate {
	return Rules().HolidaysForYear(year)
}

// Calendar builds a classifier over the Indiana rule set with the given
// options. Convenience for callers that don't carry a custom rule set.
func Calendar(opts businesstime.Options) (*businesstime.Calendar, error) {
	return businesstime.NewCalendar(Rules(), opts)
}
