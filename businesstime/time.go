package businesstime

import (
	"time"
)

// =============================================================================
// TIME POINT - Civil time abstraction (this IS a business-time system)
// =============================================================================

// TimePoint is an instant on the jurisdiction's single fixed civil calendar.
// All arithmetic is plain wall-clock arithmetic on time.UTC: "one hour back"
// is exactly one wall-clock hour, never a DST-adjusted hour. Statutory
// deadline math must be identical on every platform and every server
// timezone, so the engine never consults a timezone database.
type TimePoint struct {
	Time        time.Time
	Granularity Granularity
}

type Granularity int

const (
	GranularityDay Granularity = iota
	GranularityHour
	GranularityMinute
)

// Constructors
func NewTimePoint(year int, month time.Month, day int) TimePoint {
	return TimePoint{Time: time.Date(year, month, day, 0, 0, 0, 0, time.UTC), Granularity: GranularityDay}
}

func NewTimePointWithHour(year int, month time.Month, day, hour int) TimePoint {
	return TimePoint{Time: time.Date(year, month, day, hour, 0, 0, 0, time.UTC), Granularity: GranularityHour}
}

func NewTimePointWithMinute(year int, month time.Month, day, hour, minute int) TimePoint {
	return TimePoint{Time: time.Date(year, month, day, hour, minute, 0, 0, time.UTC), Granularity: GranularityMinute}
}

// FromTime wraps a time.Time as a minute-granular TimePoint on the civil
// calendar, discarding the location.
func FromTime(t time.Time) TimePoint {
	return NewTimePointWithMinute(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute())
}

// Comparison
func (tp TimePoint) Before(other TimePoint) bool        { return tp.normalize().Before(other.normalize()) }
func (tp TimePoint) Equal(other TimePoint) bool         { return tp.normalize().Equal(other.normalize()) }
func (tp TimePoint) After(other TimePoint) bool         { return tp.normalize().After(other.normalize()) }
func (tp TimePoint) BeforeOrEqual(other TimePoint) bool { return tp.Before(other) || tp.Equal(other) }
func (tp TimePoint) AfterOrEqual(other TimePoint) bool  { return tp.After(other) || tp.Equal(other) }

func (tp TimePoint) normalize() time.Time {
	switch tp.Granularity {
	case GranularityDay:
		return time.Date(tp.Time.Year(), tp.Time.Month(), tp.Time.Day(), 0, 0, 0, 0, time.UTC)
	case GranularityHour:
		return time.Date(tp.Time.Year(), tp.Time.Month(), tp.Time.Day(), tp.Time.Hour(), 0, 0, 0, time.UTC)
	default:
		return time.Date(tp.Time.Year(), tp.Time.Month(), tp.Time.Day(), tp.Time.Hour(), tp.Time.Minute(), 0, 0, time.UTC)
	}
}

// Arithmetic
func (tp TimePoint) AddDays(n int) TimePoint {
	return TimePoint{Time: tp.Time.AddDate(0, 0, n), Granularity: tp.Granularity}
}

func (tp TimePoint) AddHours(n int) TimePoint {
	return TimePoint{Time: tp.Time.Add(time.Duration(n) * time.Hour), Granularity: tp.Granularity}
}

// Properties
func (tp TimePoint) Year() int             { return tp.Time.Year() }
func (tp TimePoint) Month() time.Month     { return tp.Time.Month() }
func (tp TimePoint) Day() int              { return tp.Time.Day() }
func (tp TimePoint) Hour() int             { return tp.Time.Hour() }
func (tp TimePoint) Minute() int           { return tp.Time.Minute() }
func (tp TimePoint) Weekday() time.Weekday { return tp.Time.Weekday() }
func (tp TimePoint) IsWeekend() bool {
	wd := tp.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}
func (tp TimePoint) IsZero() bool { return tp.Time.IsZero() }

// Date returns the calendar date of the instant, dropping time-of-day.
func (tp TimePoint) Date() HolidayDate {
	return HolidayDate{Year: tp.Time.Year(), Month: tp.Time.Month(), Day: tp.Time.Day()}
}

// DateKey returns the ISO calendar-date key used for holiday matching.
func (tp TimePoint) DateKey() string { return tp.Time.Format(dateKeyLayout) }

func (tp TimePoint) String() string {
	switch tp.Granularity {
	case GranularityDay:
		return tp.Time.Format("2006-01-02")
	case GranularityHour:
		return tp.Time.Format("2006-01-02 15:00")
	default:
		return tp.Time.Format("2006-01-02 15:04")
	}
}

// =============================================================================
// HOLIDAY DATE - A calendar day with no time-of-day component
// =============================================================================

const dateKeyLayout = "2006-01-02"

// HolidayDate is a day on which no business activity counts, regardless of
// local time. Immutable; the catalog produces a fresh value on every query.
type HolidayDate struct {
	Year  int
	Month time.Month
	Day   int
}

// ParseHolidayDate parses a YYYY-MM-DD date string. Malformed strings are
// rejected here, at the boundary, so they never reach date comparisons.
func ParseHolidayDate(s string) (HolidayDate, error) {
	t, err := time.Parse(dateKeyLayout, s)
	if err != nil {
		return HolidayDate{}, &InvalidDateError{Value: s, Cause: err}
	}
	return HolidayDate{Year: t.Year(), Month: t.Month(), Day: t.Day()}, nil
}

func (d HolidayDate) Time() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

func (d HolidayDate) Weekday() time.Weekday { return d.Time().Weekday() }

// Key returns the ISO date key ("2025-12-25") used for set membership.
func (d HolidayDate) Key() string { return d.Time().Format(dateKeyLayout) }

func (d HolidayDate) String() string { return d.Key() }

// AddDays returns the date n calendar days away.
func (d HolidayDate) AddDays(n int) HolidayDate {
	t := d.Time().AddDate(0, 0, n)
	return HolidayDate{Year: t.Year(), Month: t.Month(), Day: t.Day()}
}

// Before reports calendar ordering.
func (d HolidayDate) Before(other HolidayDate) bool {
	return d.Time().Before(other.Time())
}
