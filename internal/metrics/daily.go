// Package metrics holds the pure reducers behind every dashboard number:
// daily totals, latest readings, weekly rollups, interval buckets, heart
// rate zones, the resting-rate estimate and the sleep stage summary.
//
// Every function takes already-normalized, time-sorted input and returns a
// defined empty value (0, nil or a zero-filled series) for empty input.
package metrics

import (
	"math"

	"github.com/claude/healthdash/internal/models"
	"github.com/claude/healthdash/internal/timerange"
)

// DailyTotal is the sum of one metric over one calendar day.
type DailyTotal struct {
	Date  string  `json:"date"`
	Total float64 `json:"total"`
}

// SumIn sums the values of intervals whose start lies in r.
func SumIn(intervals []models.Interval, r timerange.Range) float64 {
	var sum float64
	for _, iv := range intervals {
		if r.Contains(iv.StartTime) {
			sum += iv.Value
		}
	}
	return sum
}

// DailyTotals returns one DailyTotal per day, in the order given.
func DailyTotals(days []timerange.Range, intervals []models.Interval) []DailyTotal {
	out := make([]DailyTotal, len(days))
	for i, d := range days {
		out[i] = DailyTotal{Date: d.Date(), Total: SumIn(intervals, d)}
	}
	return out
}

// CombineCalories merges the active and total calorie sums for the same
// span. The two are overlapping estimates of the same quantity, so the
// larger one wins; when only one is populated the other is zero and the
// populated one is returned.
func CombineCalories(active, total float64) float64 {
	return math.Max(active, total)
}

// Round1 rounds to one decimal place.
func Round1(x float64) float64 {
	return math.Round(x*10) / 10
}

// Round2 rounds to two decimal places.
func Round2(x float64) float64 {
	return math.Round(x*100) / 100
}
