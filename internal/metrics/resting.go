package metrics

import (
	"time"

	"github.com/claude/healthdash/internal/models"
)

// Resting window in local hours, [start, end).
const (
	RestingWindowStartHour = 3
	RestingWindowEndHour   = 7
)

// EstimateResting approximates resting heart rate as the lowest reading
// taken between 03:00 and 07:00 local time. It is a heuristic proxy, not a
// physiological measurement. Returns nil when no reading falls in the
// window.
func EstimateResting(samples []models.Sample, loc *time.Location) *float64 {
	if loc == nil {
		loc = time.Local
	}
	var lowest *float64
	for _, s := range samples {
		h := s.Time.In(loc).Hour()
		if h < RestingWindowStartHour || h >= RestingWindowEndHour {
			continue
		}
		if lowest == nil || s.Value < *lowest {
			v := s.Value
			lowest = &v
		}
	}
	return lowest
}
