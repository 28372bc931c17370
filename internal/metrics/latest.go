package metrics

import (
	"sort"
	"time"

	"github.com/claude/healthdash/internal/models"
)

// LatestReading is the most recent value of a point-in-time metric.
type LatestReading struct {
	Value float64   `json:"value"`
	Time  time.Time `json:"time"`
}

// Latest returns the sample with the greatest timestamp, or nil for an
// empty sequence. When several samples share that timestamp the one that
// came last in input order wins.
func Latest(samples []models.Sample) *LatestReading {
	if len(samples) == 0 {
		return nil
	}
	sorted := make([]models.Sample, len(samples))
	copy(sorted, samples)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Time.Before(sorted[j].Time) })

	last := sorted[len(sorted)-1]
	return &LatestReading{Value: last.Value, Time: last.Time}
}
