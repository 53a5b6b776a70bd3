/*
ruleset.go - Named holiday rule sets and the per-year catalog query

PURPOSE:
  A RuleSet bundles an ordered list of HolidaySpecs under a name and
  version. HolidaysForYear resolves every spec against a requested year,
  giving the sorted, de-duplicated holiday set for that year.

KEY PROPERTIES:
  - Pure and total: any integer year works; floating and movable
    computations generalize to every year.
  - Deterministic: the same year always yields an identical set.
  - Year-agnostic: the rule set has no notion of "current year". Deadline
    arithmetic near a year boundary queries multiple years and merges.

USAGE:
  rules := indiana.Rules()
  dates := rules.HolidaysForYear(2025)        // sorted HolidayDates
  span := rules.HolidaysForYears(2025, 2026)   // merged across the boundary

SEE ALSO:
  - spec.go: The spec kinds a rule set is built from
  - calendar.go: Classifier consulting a rule set plus extra holidays
*/
package businesstime

import "sort"

// =============================================================================
// RULE SET - A named, versioned holiday catalog
// =============================================================================

// RuleSet is the complete holiday catalog for one jurisdiction.
type RuleSet struct {
	Name    string
	Version int
	Specs   []HolidaySpec
}

// HolidaysForYear resolves the rule set for a year. The result is freshly
// allocated, sorted ascending, and free of duplicates (two specs resolving
// to the same date collapse to one entry).
func (rs RuleSet) HolidaysForYear(year int) []HolidayDate {
	seen := make(map[string]bool, len(rs.Specs))
	dates := make([]HolidayDate, 0, len(rs.Specs))
	for _, spec := range rs.Specs {
		d, ok := spec.Resolve(year)
		if !ok {
			continue
		}
		if seen[d.Key()] {
			continue
		}
		seen[d.Key()] = true
		dates = append(dates, d)
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })
	return dates
}

// HolidaysForYears merges catalogs for a span of years, inclusive. Deadline
// arithmetic that can cross a year boundary (a records request received in
// late December) needs both years' holidays.
func (rs RuleSet) HolidaysForYears(from, to int) []HolidayDate {
	var dates []HolidayDate
	for year := from; year <= to; year++ {
		dates = append(dates, rs.HolidaysForYear(year)...)
	}
	return dates
}
