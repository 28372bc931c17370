package metrics

import (
	"github.com/claude/healthdash/internal/models"
	"github.com/claude/healthdash/internal/timerange"
)

// WeeklyPoint is one day of a weekly sleep rollup.
type WeeklyPoint struct {
	Date  string  `json:"date"`
	Hours float64 `json:"hours"`
}

// SleepHours sums the durations of sessions that start inside day, in
// hours. Sessions ending before they start contribute nothing.
func SleepHours(day timerange.Range, sessions []models.SleepSessionRecord) float64 {
	var ms int64
	for _, s := range sessions {
		if !day.Contains(s.StartTime.Time) || !s.EndTime.After(s.StartTime.Time) {
			continue
		}
		ms += s.EndTime.Sub(s.StartTime.Time).Milliseconds()
	}
	return float64(ms) / 3_600_000
}

// WeeklySleep runs SleepHours for each day independently and returns one
// point per day in the order given, hours rounded to one decimal.
// Days without sessions report 0.
func WeeklySleep(days []timerange.Range, sessions []models.SleepSessionRecord) []WeeklyPoint {
	out := make([]WeeklyPoint, len(days))
	for i, d := range days {
		out[i] = WeeklyPoint{Date: d.Date(), Hours: Round1(SleepHours(d, sessions))}
	}
	return out
}
