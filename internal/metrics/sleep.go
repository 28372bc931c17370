package metrics

import (
	"time"

	"github.com/claude/healthdash/internal/models"
)

// StageDuration is the accumulated time spent in one sleep stage.
type StageDuration struct {
	Stage          string `json:"stage"`
	DurationMillis int64  `json:"duration_millis"`
}

// SleepSummary is the stage breakdown and elapsed window of one night.
// TotalDurationMillis is the envelope from the earliest session start to
// the latest session end and can differ from the sum of stage durations.
type SleepSummary struct {
	Stages              []StageDuration `json:"stages"`
	TotalDurationMillis int64           `json:"total_duration_millis"`
	StartTime           *time.Time      `json:"start_time"`
	EndTime             *time.Time      `json:"end_time"`
}

// SummarizeSleep accumulates stage durations across all sessions. Stage
// codes outside the stage table and stages that do not end after they
// start are dropped. Overlapping sessions are summed as-is. Stages are
// reported in models.SleepStageOrder and stages with no time are omitted.
func SummarizeSleep(sessions []models.SleepSessionRecord) SleepSummary {
	totals := make(map[string]int64, len(models.SleepStageOrder))
	var start, end time.Time

	for _, s := range sessions {
		if !s.StartTime.IsZero() && (start.IsZero() || s.StartTime.Before(start)) {
			start = s.StartTime.Time
		}
		if s.EndTime.After(end) {
			end = s.EndTime.Time
		}
		for _, st := range s.Stages {
			name, ok := models.NormalizeSleepStage(st.Stage)
			if !ok {
				continue
			}
			if !st.EndTime.After(st.StartTime.Time) {
				continue
			}
			totals[name] += st.EndTime.Sub(st.StartTime.Time).Milliseconds()
		}
	}

	summary := SleepSummary{Stages: []StageDuration{}}
	for _, name := range models.SleepStageOrder {
		if ms := totals[name]; ms > 0 {
			summary.Stages = append(summary.Stages, StageDuration{Stage: name, DurationMillis: ms})
		}
	}
	if !start.IsZero() && !end.IsZero() {
		summary.StartTime = &start
		summary.EndTime = &end
		if end.After(start) {
			summary.TotalDurationMillis = end.Sub(start).Milliseconds()
		}
	}
	return summary
}
