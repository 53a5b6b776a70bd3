/*
calendar.go - Business-time classifier

PURPOSE:
  A Calendar ties a holiday rule set to caller-supplied extra holidays and
  answers the one question the whole engine reduces to: does this instant
  count as business time? An hour or day counts unless its calendar date is
  a Saturday, a Sunday, or a holiday.

CLASSIFICATION:
  1. Weekend check: Saturday/Sunday is never business time, regardless of
     holiday configuration.
  2. Holiday check: the instant's ISO date key is matched against the extra
     holidays and the catalog for the instant's own year. Matching compares
     calendar date only; time-of-day is ignored.

OPTIONS:
  Options carries caller-supplied extra holiday dates as YYYY-MM-DD strings
  (one-off office closures, locally observed days). Malformed strings are
  rejected when the Calendar is built, never during classification.

MEMOIZATION:
  HolidaysForYear is referentially transparent, so the Calendar memoizes
  resolved years behind an RWMutex. This is a pure performance choice with
  no correctness implications; classification stays safe to call from any
  number of goroutines.

USAGE:
  cal, err := businesstime.NewCalendar(indiana.Rules(), businesstime.Options{
      Holidays: []string{"2025-12-26"},
  })
  cal.IsBusinessTime(tp)

SEE ALSO:
  - ruleset.go: Catalog resolution
  - walker.go: Business-unit arithmetic built on the classifier
*/
package businesstime

import "sync"

// =============================================================================
// OPTIONS - Caller-supplied calendar configuration
// =============================================================================

// Options extends a rule set with explicit extra holiday dates.
type Options struct {
	// Holidays are extra holiday dates as YYYY-MM-DD strings. They extend
	// the built-in catalog; callers computing deadlines near a year
	// boundary include dates for every year the arithmetic might touch.
	Holidays []string
}

// =============================================================================
// CALENDAR - Classifier over rule set + extra holidays
// =============================================================================

// Calendar classifies instants as business time for one jurisdiction.
type Calendar struct {
	rules RuleSet
	extra map[string]bool

	mu     sync.RWMutex
	byYear map[int]map[string]bool
}

// NewCalendar builds a classifier from a rule set and options. Malformed
// extra-holiday strings are rejected here so they never reach comparisons.
func NewCalendar(rules RuleSet, opts Options) (*Calendar, error) {
	extra := make(map[string]bool, len(opts.Holidays))
	for _, s := range opts.Holidays {
		d, err := ParseHolidayDate(s)
		if err != nil {
			return nil, err
		}
		extra[d.Key()] = true
	}
	return &Calendar{
		rules:  rules,
		extra:  extra,
		byYear: make(map[int]map[string]bool),
	}, nil
}

// Rules returns the rule set this calendar classifies against.
func (c *Calendar) Rules() RuleSet { return c.rules }

// IsBusinessTime reports whether the instant counts as business time.
// Never true on a Saturday or Sunday.
func (c *Calendar) IsBusinessTime(tp TimePoint) bool {
	if tp.IsWeekend() {
		return false
	}
	key := tp.DateKey()
	if c.extra[key] {
		return false
	}
	return !c.holidaySet(tp.Year())[key]
}

// IsBusinessDay reports whether any hour of the date counts as business
// time. Hour and day classification reduce to the same date predicate.
func (c *Calendar) IsBusinessDay(d HolidayDate) bool {
	return c.IsBusinessTime(NewTimePoint(d.Year, d.Month, d.Day))
}

// IsHoliday reports whether the date is a holiday (built-in or extra),
// independent of weekday.
func (c *Calendar) IsHoliday(d HolidayDate) bool {
	key := d.Key()
	return c.extra[key] || c.holidaySet(d.Year)[key]
}

func (c *Calendar) holidaySet(year int) map[string]bool {
	c.mu.RLock()
	set, ok := c.byYear[year]
	c.mu.RUnlock()
	if ok {
		return set
	}

	dates := c.rules.HolidaysForYear(year)
	set = make(map[string]bool, len(dates))
	for _, d := range dates {
		set[d.Key()] = true
	}

	c.mu.Lock()
	c.byYear[year] = set
	c.mu.Unlock()
	return set
}
