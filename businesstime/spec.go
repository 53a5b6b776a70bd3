/*
spec.go - Holiday specification variants

PURPOSE:
  Defines how a single holiday is specified and resolved to a concrete
  calendar date for a given year. A rule set (ruleset.go) is an ordered
  list of these specs; the catalog query resolves every spec against the
  requested year.

SPEC KINDS:
  FixedDate:     Literal month/day (e.g., Dec 25), optionally shifted to
                 the observed weekday when the literal date falls on a
                 weekend (Saturday -> preceding Friday, Sunday -> following
                 Monday). Each fixed holiday shifts independently.

  NthWeekday:    The Nth occurrence of a weekday in a month (e.g., 3rd
                 Monday of January). N outside what the month can hold is
                 a programming error and panics.

  LastWeekday:   The last occurrence of a weekday in a month (e.g., last
                 Monday of May). Found by stepping backward from the last
                 calendar day of the month.

  EasterOffset:  A movable feast at a fixed day offset from Easter Sunday
                 (e.g., Good Friday = Easter - 2). Easter is computed with
                 the anonymous Gregorian algorithm, valid for any Gregorian
                 year >= 1583.

  ElectionDay:   "First Tuesday after the first Monday" of a month, included
                 only for years passing the periodicity check (general and
                 primary elections run in even years).

EXAMPLE:
  spec := businesstime.NthWeekday{
      Name: "Martin Luther King Jr. Day", Month: time.January,
      Weekday: time.Monday, N: 3,
  }
  date, ok := spec.Resolve(2025) // 2025-01-20, true

SEE ALSO:
  - ruleset.go: RuleSet composing specs into a per-year holiday catalog
  - indiana/catalog.go: The shipped statutory rule set
*/
package businesstime

import (
	"fmt"
	"time"
)

// =============================================================================
// HOLIDAY SPEC - Interface for how one holiday resolves per year
// =============================================================================

// HolidaySpec resolves a holiday rule to a concrete date for a year.
// Implementations define the rule kind (fixed, floating, movable feast,
// conditional periodic).
type HolidaySpec interface {
	// Resolve returns the holiday's date for the year. ok is false when the
	// holiday does not occur that year (e.g., election days in odd years).
	Resolve(year int) (date HolidayDate, ok bool)

	// HolidayName returns the display name of the holiday.
	HolidayName() string
}

// =============================================================================
// FIXED DATE - Literal month/day with weekend observation
// =============================================================================

// FixedDate is a holiday on the same month/day every year.
type FixedDate struct {
	Name  string
	Month time.Month
	Day   int

	// Observed shifts a weekend-falling date to the recognized weekday:
	// Saturday -> preceding Friday, Sunday -> following Monday.
	Observed bool
}

func (s FixedDate) HolidayName() string { return s.Name }

func (s FixedDate) Resolve(year int) (HolidayDate, bool) {
	d := HolidayDate{Year: year, Month: s.Month, Day: s.Day}
	if !s.Observed {
		return d, true
	}
	switch d.Weekday() {
	case time.Saturday:
		return d.AddDays(-1), true
	case time.Sunday:
		return d.AddDays(1), true
	default:
		return d, true
	}
}

// =============================================================================
// FLOATING - Nth weekday and last weekday of a month
// =============================================================================

// NthWeekday is the Nth occurrence of a weekday in a month.
type NthWeekday struct {
	Name    string
	Month   time.Month
	Weekday time.Weekday
	N       int
}

func (s NthWeekday) HolidayName() string { return s.Name }

func (s NthWeekday) Resolve(year int) (HolidayDate, bool) {
	return nthWeekdayOf(year, s.Month, s.Weekday, s.N), true
}

// nthWeekdayOf locates the first matching weekday in the month and advances
// 7*(n-1) days. An n the month cannot hold is a caller bug: panic, never
// clamp, because a silently shifted statutory holiday corrupts deadlines.
func nthWeekdayOf(year int, month time.Month, weekday time.Weekday, n int) HolidayDate {
	if n < 1 || n > 5 {
		panic(fmt.Sprintf("businesstime: nth-weekday ordinal %d out of range [1,5]", n))
	}
	first := HolidayDate{Year: year, Month: month, Day: 1}
	offset := int(weekday-first.Weekday()+7) % 7
	d := first.AddDays(offset + 7*(n-1))
	if d.Month != month {
		panic(fmt.Sprintf("businesstime: no %s #%d of %s in %d", weekday, n, month, year))
	}
	return d
}

// LastWeekday is the final occurrence of a weekday in a month.
type LastWeekday struct {
	Name    string
	Month   time.Month
	Weekday time.Weekday
}

func (s LastWeekday) HolidayName() string { return s.Name }

func (s LastWeekday) Resolve(year int) (HolidayDate, bool) {
	// Last day of the month, then step back until the weekday matches.
	d := HolidayDate{Year: year, Month: s.Month + 1, Day: 1}.AddDays(-1)
	for d.Weekday() != s.Weekday {
		d = d.AddDays(-1)
	}
	return d, true
}

// =============================================================================
// MOVABLE FEAST - Fixed offset from Easter Sunday
// =============================================================================

// EasterOffset is a holiday a fixed number of days from Easter Sunday.
// Days is negative for holidays before Easter (Good Friday is -2).
type EasterOffset struct {
	Name string
	Days int
}

func (s EasterOffset) HolidayName() string { return s.Name }

func (s EasterOffset) Resolve(year int) (HolidayDate, bool) {
	return EasterSunday(year).AddDays(s.Days), true
}

// EasterSunday computes Western Easter with the anonymous Gregorian
// algorithm (Meeus). Integer arithmetic only; valid for any Gregorian
// year from 1583 on.
func EasterSunday(year int) HolidayDate {
	a := year % 19
	b := year / 100
	c := year % 100
	d := b / 4
	e := b % 4
	f := (b + 8) / 25
	g := (b - f + 1) / 3
	h := (19*a + b - d - g + 15) % 30
	i := c / 4
	k := c % 4
	l := (32 + 2*e + 2*i - h - k) % 7
	m := (a + 11*h + 22*l) / 451
	month := (h + l - 7*m + 114) / 31
	day := (h+l-7*m+114)%31 + 1
	return HolidayDate{Year: year, Month: time.Month(month), Day: day}
}

// =============================================================================
// CONDITIONAL PERIODIC - Election days
// =============================================================================

// ElectionDay is the first Tuesday on or after the first Monday of a month,
// occurring only in years that pass the periodicity check.
type ElectionDay struct {
	Name  string
	Month time.Month

	// EvenYearsOnly omits the holiday entirely in odd years.
	EvenYearsOnly bool
}

func (s ElectionDay) HolidayName() string { return s.Name }

func (s ElectionDay) Resolve(year int) (HolidayDate, bool) {
	if s.EvenYearsOnly && year%2 != 0 {
		return HolidayDate{}, false
	}
	firstMonday := nthWeekdayOf(year, s.Month, time.Monday, 1)
	// First Tuesday strictly after the first Monday is always the next day.
	return firstMonday.AddDays(1), true
}
