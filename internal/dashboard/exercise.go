package dashboard

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/claude/healthdash/internal/metrics"
	"github.com/claude/healthdash/internal/models"
	"github.com/claude/healthdash/internal/provider"
	"github.com/claude/healthdash/internal/timerange"
	"github.com/google/uuid"
)

// ExerciseItem is one row of the exercise history list.
type ExerciseItem struct {
	ID              string    `json:"id"`
	Title           string    `json:"title"`
	ExerciseType    int       `json:"exercise_type"`
	StartTime       time.Time `json:"start_time"`
	EndTime         time.Time `json:"end_time"`
	DurationMinutes float64   `json:"duration_minutes"`
	ActiveCalories  float64   `json:"active_calories"`
}

// ExercisesResult lists exercise sessions over a date range.
type ExercisesResult struct {
	Meta
	From     string         `json:"from"`
	To       string         `json:"to"`
	Sessions []ExerciseItem `json:"sessions"`
}

// Exercises lists the sessions starting between from's day and to's day,
// with the active calories burned during each. Calories are read with one
// request per session, all in flight together.
func (e *Engine) Exercises(ctx context.Context, from, to time.Time) (*ExercisesResult, error) {
	days, err := e.days(from, to)
	if err != nil {
		return nil, err
	}
	span := timerange.Range{Start: days[0].Start, End: days[len(days)-1].End}
	res, err := e.fetch(ctx, span, models.RecordExerciseSession)
	if err != nil {
		return nil, err
	}

	var sessions []models.ExerciseSessionRecord
	for _, s := range e.norm.ExerciseSessions(res[0]) {
		if span.Contains(s.StartTime.Time) {
			sessions = append(sessions, s)
		}
	}

	reqs := make([]models.ReadRequest, len(sessions))
	for i, s := range sessions {
		reqs[i] = provider.NewReadRequest(models.RecordActiveCaloriesBurned, sessionRange(s))
	}
	calories, err := e.fetchRequests(ctx, reqs)
	if err != nil {
		return nil, err
	}

	items := make([]ExerciseItem, len(sessions))
	for i, s := range sessions {
		window := sessionRange(s)
		kcal := metrics.SumIn(e.norm.EnergyIntervals(models.RecordActiveCaloriesBurned, calories[i]), window)
		items[i] = ExerciseItem{
			ID:              s.Metadata.ID,
			Title:           s.Title,
			ExerciseType:    s.ExerciseType,
			StartTime:       s.StartTime.Time,
			EndTime:         s.EndTime.Time,
			DurationMinutes: math.Round(window.End.Sub(window.Start).Minutes()),
			ActiveCalories:  metrics.Round1(kcal),
		}
	}
	return &ExercisesResult{
		Meta:     newMeta(days[len(days)-1]),
		From:     days[0].Date(),
		To:       days[len(days)-1].Date(),
		Sessions: items,
	}, nil
}

// ExerciseDetailResult is the detail view of one exercise session.
type ExerciseDetailResult struct {
	Meta
	metrics.ExerciseSummary
}

// ExerciseDetail finds the session with the given id on day and reduces the
// calories, steps, distance and heart rate recorded during it.
func (e *Engine) ExerciseDetail(ctx context.Context, day time.Time, id string) (*ExerciseDetailResult, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, fmt.Errorf("%w: exercise id %q is not a UUID", ErrInvalidInput, id)
	}
	age, err := e.resolveAge(0)
	if err != nil {
		return nil, err
	}

	r := e.day(day)
	res, err := e.fetch(ctx, r, models.RecordExerciseSession)
	if err != nil {
		return nil, err
	}
	var session *models.ExerciseSessionRecord
	for _, s := range e.norm.ExerciseSessions(res[0]) {
		if s.Metadata.ID == id {
			session = &s
			break
		}
	}
	if session == nil {
		return nil, fmt.Errorf("%w: exercise %s on %s", ErrNotFound, id, r.Date())
	}

	res, err = e.fetch(ctx, sessionRange(*session),
		models.RecordActiveCaloriesBurned,
		models.RecordTotalCaloriesBurned,
		models.RecordSteps,
		models.RecordDistance,
		models.RecordHeartRate,
	)
	if err != nil {
		return nil, err
	}
	in := metrics.ExerciseInputs{
		ActiveCalories: e.norm.EnergyIntervals(models.RecordActiveCaloriesBurned, res[0]),
		TotalCalories:  e.norm.EnergyIntervals(models.RecordTotalCaloriesBurned, res[1]),
		Steps:          e.norm.StepIntervals(res[2]),
		Distance:       e.norm.DistanceIntervals(res[3]),
		HeartRate:      e.norm.HeartRateSamples(res[4]),
	}
	return &ExerciseDetailResult{
		Meta:            newMeta(r),
		ExerciseSummary: metrics.SummarizeExercise(*session, in, age),
	}, nil
}

func sessionRange(s models.ExerciseSessionRecord) timerange.Range {
	end := s.EndTime.Time
	if end.Before(s.StartTime.Time) {
		end = s.StartTime.Time
	}
	return timerange.Range{Start: s.StartTime.Time, End: end}
}
