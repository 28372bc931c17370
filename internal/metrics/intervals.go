package metrics

import (
	"time"

	"github.com/claude/healthdash/internal/models"
	"github.com/claude/healthdash/internal/timerange"
)

// IntervalBucket is the step count inside one sub-day window.
type IntervalBucket struct {
	Index int       `json:"bucket_index"`
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
	Steps float64   `json:"steps"`
}

// BucketSteps partitions day into intervalMinutes windows and credits each
// step record to the window containing its start time. The result always
// has floor(1440/intervalMinutes) entries; empty windows are zero.
func BucketSteps(steps []models.Interval, day timerange.Range, intervalMinutes int) []IntervalBucket {
	windows := timerange.Partition(day, intervalMinutes)
	out := make([]IntervalBucket, len(windows))
	for i, w := range windows {
		out[i] = IntervalBucket{Index: i, Start: w.Start, End: w.End}
	}
	for _, s := range steps {
		if !day.Contains(s.StartTime) {
			continue
		}
		for i, w := range windows {
			if w.Contains(s.StartTime) {
				out[i].Steps += s.Value
				break
			}
		}
	}
	return out
}
