// Package timerange computes the day, week and sub-day windows that every
// dashboard query is expressed in.
package timerange

import (
	"fmt"
	"time"
)

// DefaultIntervalMinutes is the bucket width used when a caller passes an
// interval that cannot partition a day.
const DefaultIntervalMinutes = 30

const (
	minutesPerDay = 24 * 60
	secondsPerDay = minutesPerDay * 60
)

// DateLayout is the calendar date format accepted from callers.
const DateLayout = "2006-01-02"

// Range is a half-open time window [Start, End).
type Range struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// Contains reports whether t lies in [Start, End).
func (r Range) Contains(t time.Time) bool {
	return !t.Before(r.Start) && t.Before(r.End)
}

// Clip returns r with End moved back to to when to falls inside the range.
// Used for "today so far" queries.
func (r Range) Clip(to time.Time) Range {
	if to.After(r.Start) && to.Before(r.End) {
		r.End = to
	}
	return r
}

// Date returns the calendar date of the range start.
func (r Range) Date() string {
	return r.Start.Format(DateLayout)
}

// ParseDay parses a YYYY-MM-DD string as midnight in loc.
func ParseDay(s string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.Local
	}
	t, err := time.ParseInLocation(DateLayout, s, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q (expected YYYY-MM-DD): %w", s, err)
	}
	return t, nil
}

// Day returns the local calendar day containing t, midnight to midnight in
// t's location. AddDate keeps DST days at their real 23 or 25 hours.
func Day(t time.Time) Range {
	y, m, d := t.Date()
	start := time.Date(y, m, d, 0, 0, 0, 0, t.Location())
	return Range{Start: start, End: start.AddDate(0, 0, 1)}
}

// WeekEnding returns the 7 consecutive day ranges ending with ref's day,
// oldest first.
func WeekEnding(ref time.Time) []Range {
	last := Day(ref)
	out := make([]Range, 7)
	for i := range out {
		out[i] = Day(last.Start.AddDate(0, 0, i-6))
	}
	return out
}

// DayCount returns the number of calendar days from from's day through to's
// day inclusive, each read in its own location. It is zero or negative when
// to's day is before from's. It does not allocate, so callers can bound a
// range before expanding it with Days.
func DayCount(from, to time.Time) int64 {
	return civilDay(to) - civilDay(from) + 1
}

// civilDay numbers t's calendar date in days since the Unix epoch.
func civilDay(t time.Time) int64 {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC).Unix() / secondsPerDay
}

// Days returns every day range from from's day through to's day inclusive.
// It returns nil when to is before from.
func Days(from, to time.Time) []Range {
	first := Day(from)
	last := Day(to)
	if last.Start.Before(first.Start) {
		return nil
	}
	var out []Range
	for d := first; !d.Start.After(last.Start); d = Day(d.End) {
		out = append(out, d)
	}
	return out
}

// ValidInterval reports whether intervalMinutes can partition a day.
func ValidInterval(intervalMinutes int) bool {
	return intervalMinutes > 0 && intervalMinutes <= minutesPerDay
}

// Partition splits day into floor(1440/intervalMinutes) consecutive buckets.
// When the interval does not divide the day evenly, the last bucket is
// stretched to end at day.End. An interval outside (0, 1440] falls back to
// DefaultIntervalMinutes.
func Partition(day Range, intervalMinutes int) []Range {
	if !ValidInterval(intervalMinutes) {
		intervalMinutes = DefaultIntervalMinutes
	}
	n := minutesPerDay / intervalMinutes
	step := time.Duration(intervalMinutes) * time.Minute

	out := make([]Range, n)
	for i := range out {
		start := day.Start.Add(time.Duration(i) * step)
		end := start.Add(step)
		// Short DST days leave trailing buckets empty.
		if start.After(day.End) {
			start = day.End
		}
		if i == n-1 || end.After(day.End) {
			end = day.End
		}
		out[i] = Range{Start: start, End: end}
	}
	return out
}
