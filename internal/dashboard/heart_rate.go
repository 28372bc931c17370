package dashboard

import (
	"context"
	"fmt"
	"time"

	"github.com/claude/healthdash/internal/metrics"
	"github.com/claude/healthdash/internal/models"
	"github.com/claude/healthdash/internal/timerange"
)

// HeartRateResult is a day of heart rate data.
type HeartRateResult struct {
	Meta
	Samples []models.Sample         `json:"samples"`
	Stats   *metrics.HeartRateStats `json:"stats"`
	Latest  *metrics.LatestReading  `json:"latest"`
	// Zones is the whole-day breakdown, one sample-minute per reading.
	Zones []metrics.ZoneBucket `json:"zones"`
}

// HeartRate returns the day's flattened samples with summary stats, the
// latest reading and a count-weighted zone breakdown.
func (e *Engine) HeartRate(ctx context.Context, day time.Time) (*HeartRateResult, error) {
	age, err := e.resolveAge(0)
	if err != nil {
		return nil, err
	}
	r := e.day(day)
	samples, err := e.heartRateSamples(ctx, r)
	if err != nil {
		return nil, err
	}
	return &HeartRateResult{
		Meta:    newMeta(r),
		Samples: samples,
		Stats:   metrics.SummarizeHeartRate(samples),
		Latest:  metrics.Latest(samples),
		Zones:   metrics.ZoneCounts(age, samples),
	}, nil
}

// LatestResult is the most recent reading of one metric on a day, or nil.
type LatestResult struct {
	Meta
	Reading *metrics.LatestReading `json:"reading"`
}

// LatestHeartRate returns the day's most recent heart rate sample.
func (e *Engine) LatestHeartRate(ctx context.Context, day time.Time) (*LatestResult, error) {
	r := e.day(day)
	samples, err := e.heartRateSamples(ctx, r)
	if err != nil {
		return nil, err
	}
	return &LatestResult{Meta: newMeta(r), Reading: metrics.Latest(samples)}, nil
}

// LatestVo2Max returns the day's most recent VO2 max estimate.
func (e *Engine) LatestVo2Max(ctx context.Context, day time.Time) (*LatestResult, error) {
	return e.latestInstant(ctx, day, models.RecordVo2Max)
}

// LatestOxygenSaturation returns the day's most recent SpO2 reading.
func (e *Engine) LatestOxygenSaturation(ctx context.Context, day time.Time) (*LatestResult, error) {
	return e.latestInstant(ctx, day, models.RecordOxygenSaturation)
}

func (e *Engine) latestInstant(ctx context.Context, day time.Time, recordType string) (*LatestResult, error) {
	r := e.day(day)
	res, err := e.fetch(ctx, r, recordType)
	if err != nil {
		return nil, err
	}
	samples := e.norm.Instants(recordType, res[0])
	return &LatestResult{Meta: newMeta(r), Reading: metrics.Latest(samples)}, nil
}

// RestingResult carries the estimated resting heart rate next to the
// provider's own resting heart rate record. The two are never merged.
type RestingResult struct {
	Meta
	// Estimate is the lowest reading between 03:00 and 07:00 local time,
	// an approximation rather than a measured resting rate.
	Estimate *float64 `json:"estimate"`
	// Reported is the latest RestingHeartRate record for the day, if any.
	Reported *metrics.LatestReading `json:"reported"`
}

// RestingHeartRate estimates the day's resting heart rate.
func (e *Engine) RestingHeartRate(ctx context.Context, day time.Time) (*RestingResult, error) {
	r := e.day(day)
	res, err := e.fetch(ctx, r, models.RecordHeartRate, models.RecordRestingHeartRate)
	if err != nil {
		return nil, err
	}
	return &RestingResult{
		Meta:     newMeta(r),
		Estimate: metrics.EstimateResting(e.norm.HeartRateSamples(res[0]), e.loc),
		Reported: metrics.Latest(e.norm.Instants(models.RecordRestingHeartRate, res[1])),
	}, nil
}

// Zone weighting modes.
const (
	ZoneModeDuration = "duration"
	ZoneModeCount    = "count"
)

// ZonesResult is a five-zone heart rate breakdown.
type ZonesResult struct {
	Meta
	Age          int                  `json:"age"`
	MaxHeartRate float64              `json:"max_heart_rate"`
	Mode         string               `json:"mode"`
	Bounds       []metrics.ZoneBound  `json:"bounds"`
	Zones        []metrics.ZoneBucket `json:"zones"`
}

// HeartRateZones breaks the day's heart rate into zones for age (0 uses the
// configured age). mode is "duration" (the default) or "count".
func (e *Engine) HeartRateZones(ctx context.Context, day time.Time, age int, mode string) (*ZonesResult, error) {
	age, err := e.resolveAge(age)
	if err != nil {
		return nil, err
	}
	if mode == "" {
		mode = ZoneModeDuration
	}
	if mode != ZoneModeDuration && mode != ZoneModeCount {
		return nil, fmt.Errorf("%w: zone mode must be %q or %q, got %q", ErrInvalidInput, ZoneModeDuration, ZoneModeCount, mode)
	}

	r := e.day(day)
	samples, err := e.heartRateSamples(ctx, r)
	if err != nil {
		return nil, err
	}
	zones := metrics.ZoneDurations(age, samples)
	if mode == ZoneModeCount {
		zones = metrics.ZoneCounts(age, samples)
	}
	return &ZonesResult{
		Meta:         newMeta(r),
		Age:          age,
		MaxHeartRate: metrics.MaxHeartRate(age),
		Mode:         mode,
		Bounds:       metrics.Zones(age),
		Zones:        zones,
	}, nil
}

// heartRateSamples reads and flattens the heart rate samples inside r.
func (e *Engine) heartRateSamples(ctx context.Context, r timerange.Range) ([]models.Sample, error) {
	res, err := e.fetch(ctx, r, models.RecordHeartRate)
	if err != nil {
		return nil, err
	}
	samples := metrics.SamplesIn(e.norm.HeartRateSamples(res[0]), r)
	if samples == nil {
		samples = []models.Sample{}
	}
	return samples, nil
}
