package metrics

import (
	"time"

	"github.com/claude/healthdash/internal/models"
	"github.com/claude/healthdash/internal/timerange"
)

// ExerciseInputs are the normalized records read for one exercise window.
type ExerciseInputs struct {
	ActiveCalories []models.Interval
	TotalCalories  []models.Interval
	Steps          []models.Interval
	Distance       []models.Interval
	HeartRate      []models.Sample
}

// ExerciseSummary is the detail view of one exercise session.
type ExerciseSummary struct {
	ID              string          `json:"id"`
	Title           string          `json:"title"`
	ExerciseType    int             `json:"exercise_type"`
	StartTime       time.Time       `json:"start_time"`
	EndTime         time.Time       `json:"end_time"`
	DurationSeconds float64         `json:"duration_seconds"`
	Calories        float64         `json:"calories"`
	Steps           float64         `json:"steps"`
	DistanceKm      float64         `json:"distance_km"`
	HeartRate       *HeartRateStats `json:"heart_rate"`
	Samples         []models.Sample `json:"samples"`
	Zones           []ZoneBucket    `json:"zones"`
}

// SummarizeExercise reduces the records inside a session's window. Calories
// follow CombineCalories; zones are time-weighted over the session's heart
// rate samples.
func SummarizeExercise(s models.ExerciseSessionRecord, in ExerciseInputs, age int) ExerciseSummary {
	window := timerange.Range{Start: s.StartTime.Time, End: s.EndTime.Time}
	hr := SamplesIn(in.HeartRate, window)
	if hr == nil {
		hr = []models.Sample{}
	}

	out := ExerciseSummary{
		ID:           s.Metadata.ID,
		Title:        s.Title,
		ExerciseType: s.ExerciseType,
		StartTime:    s.StartTime.Time,
		EndTime:      s.EndTime.Time,
		Calories:     Round1(CombineCalories(SumIn(in.ActiveCalories, window), SumIn(in.TotalCalories, window))),
		Steps:        SumIn(in.Steps, window),
		DistanceKm:   Round2(SumIn(in.Distance, window)),
		HeartRate:    SummarizeHeartRate(hr),
		Samples:      hr,
		Zones:        ZoneDurations(age, hr),
	}
	if s.EndTime.After(s.StartTime.Time) {
		out.DurationSeconds = s.EndTime.Sub(s.StartTime.Time).Seconds()
	}
	return out
}
