package metrics

import (
	"math"

	"github.com/claude/healthdash/internal/models"
	"github.com/claude/healthdash/internal/timerange"
)

// HeartRateStats summarizes a day or session of heart rate samples.
type HeartRateStats struct {
	Min   float64 `json:"min"`
	Avg   float64 `json:"avg"`
	Max   float64 `json:"max"`
	Count int     `json:"count"`
}

// SummarizeHeartRate returns min, rounded average and max bpm, or nil when
// there are no samples.
func SummarizeHeartRate(samples []models.Sample) *HeartRateStats {
	if len(samples) == 0 {
		return nil
	}
	st := &HeartRateStats{Min: samples[0].Value, Max: samples[0].Value, Count: len(samples)}
	var sum float64
	for _, s := range samples {
		sum += s.Value
		st.Min = math.Min(st.Min, s.Value)
		st.Max = math.Max(st.Max, s.Value)
	}
	st.Avg = math.Round(sum / float64(len(samples)))
	return st
}

// SamplesIn returns the samples whose time lies in r, keeping order.
func SamplesIn(samples []models.Sample, r timerange.Range) []models.Sample {
	var out []models.Sample
	for _, s := range samples {
		if r.Contains(s.Time) {
			out = append(out, s)
		}
	}
	return out
}
