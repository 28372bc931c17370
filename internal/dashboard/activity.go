package dashboard

import (
	"context"
	"fmt"
	"time"

	"github.com/claude/healthdash/internal/metrics"
	"github.com/claude/healthdash/internal/models"
	"github.com/claude/healthdash/internal/timerange"
)

// CaloriesResult is a day's energy expenditure in kcal.
type CaloriesResult struct {
	Meta
	Active   float64 `json:"active"`
	Total    float64 `json:"total"`
	Calories float64 `json:"calories"`
}

// DailyCalories reads active and total calories for the day containing day
// and combines them with metrics.CombineCalories.
func (e *Engine) DailyCalories(ctx context.Context, day time.Time) (*CaloriesResult, error) {
	r := e.day(day)
	res, err := e.fetch(ctx, r, models.RecordActiveCaloriesBurned, models.RecordTotalCaloriesBurned)
	if err != nil {
		return nil, err
	}
	active := metrics.SumIn(e.norm.EnergyIntervals(models.RecordActiveCaloriesBurned, res[0]), r)
	total := metrics.SumIn(e.norm.EnergyIntervals(models.RecordTotalCaloriesBurned, res[1]), r)
	return &CaloriesResult{
		Meta:     newMeta(r),
		Active:   metrics.Round1(active),
		Total:    metrics.Round1(total),
		Calories: metrics.Round1(metrics.CombineCalories(active, total)),
	}, nil
}

// CalorieSamplesResult lists a day's active calorie records.
type CalorieSamplesResult struct {
	Meta
	Samples []models.Interval `json:"samples"`
}

// CalorieSamples returns the day's active calorie intervals in time order,
// each rounded to 0.1 kcal.
func (e *Engine) CalorieSamples(ctx context.Context, day time.Time) (*CalorieSamplesResult, error) {
	r := e.day(day)
	res, err := e.fetch(ctx, r, models.RecordActiveCaloriesBurned)
	if err != nil {
		return nil, err
	}
	samples := []models.Interval{}
	for _, iv := range e.norm.EnergyIntervals(models.RecordActiveCaloriesBurned, res[0]) {
		if r.Contains(iv.StartTime) {
			iv.Value = metrics.Round1(iv.Value)
			samples = append(samples, iv)
		}
	}
	return &CalorieSamplesResult{Meta: newMeta(r), Samples: samples}, nil
}

// TotalResult is a single daily total with its unit.
type TotalResult struct {
	Meta
	Total float64 `json:"total"`
	Unit  string  `json:"unit"`
}

// DailySteps sums the day's step records.
func (e *Engine) DailySteps(ctx context.Context, day time.Time) (*TotalResult, error) {
	r := e.day(day)
	res, err := e.fetch(ctx, r, models.RecordSteps)
	if err != nil {
		return nil, err
	}
	return &TotalResult{
		Meta:  newMeta(r),
		Total: metrics.SumIn(e.norm.StepIntervals(res[0]), r),
		Unit:  "count",
	}, nil
}

// DailyDistance sums the day's distance records in kilometers.
func (e *Engine) DailyDistance(ctx context.Context, day time.Time) (*TotalResult, error) {
	r := e.day(day)
	res, err := e.fetch(ctx, r, models.RecordDistance)
	if err != nil {
		return nil, err
	}
	km := metrics.SumIn(e.norm.DistanceIntervals(res[0]), r)
	return &TotalResult{
		Meta:  newMeta(r),
		Total: metrics.Round2(km),
		Unit:  "km",
	}, nil
}

// StepIntervalsResult is a day's steps split into fixed-width buckets.
type StepIntervalsResult struct {
	Meta
	IntervalMinutes int                      `json:"interval_minutes"`
	Total           float64                  `json:"total"`
	Buckets         []metrics.IntervalBucket `json:"buckets"`
}

// StepIntervals buckets the day's steps into intervalMinutes windows. Zero
// selects the configured default; any other value must divide into a day
// at least once.
func (e *Engine) StepIntervals(ctx context.Context, day time.Time, intervalMinutes int) (*StepIntervalsResult, error) {
	if intervalMinutes == 0 {
		intervalMinutes = e.stepInterval
	}
	if !timerange.ValidInterval(intervalMinutes) {
		return nil, fmt.Errorf("%w: interval must be between 1 and 1440 minutes, got %d", ErrInvalidInput, intervalMinutes)
	}
	r := e.day(day)
	res, err := e.fetch(ctx, r, models.RecordSteps)
	if err != nil {
		return nil, err
	}
	buckets := metrics.BucketSteps(e.norm.StepIntervals(res[0]), r, intervalMinutes)
	var total float64
	for _, b := range buckets {
		total += b.Steps
	}
	return &StepIntervalsResult{
		Meta:            newMeta(r),
		IntervalMinutes: intervalMinutes,
		Total:           total,
		Buckets:         buckets,
	}, nil
}

// HistoryResult is one daily total per day over a date range.
type HistoryResult struct {
	Meta
	From string               `json:"from"`
	To   string               `json:"to"`
	Days []metrics.DailyTotal `json:"days"`
}

// StepHistory returns daily step totals from from's day through to's day.
func (e *Engine) StepHistory(ctx context.Context, from, to time.Time) (*HistoryResult, error) {
	days, err := e.days(from, to)
	if err != nil {
		return nil, err
	}
	span := timerange.Range{Start: days[0].Start, End: days[len(days)-1].End}
	res, err := e.fetch(ctx, span, models.RecordSteps)
	if err != nil {
		return nil, err
	}
	return &HistoryResult{
		Meta: newMeta(days[len(days)-1]),
		From: days[0].Date(),
		To:   days[len(days)-1].Date(),
		Days: metrics.DailyTotals(days, e.norm.StepIntervals(res[0])),
	}, nil
}

// days validates an inclusive date range and expands it into day ranges.
// The span is checked before anything is allocated.
func (e *Engine) days(from, to time.Time) ([]timerange.Range, error) {
	from, to = from.In(e.loc), to.In(e.loc)
	n := timerange.DayCount(from, to)
	if n <= 0 {
		return nil, fmt.Errorf("%w: range end is before its start", ErrInvalidInput)
	}
	if n > MaxHistoryDays {
		return nil, fmt.Errorf("%w: range spans %d days, at most %d allowed", ErrInvalidInput, n, MaxHistoryDays)
	}
	return timerange.Days(from, to), nil
}
