package dashboard

import (
	"context"
	"time"

	"github.com/claude/healthdash/internal/metrics"
	"github.com/claude/healthdash/internal/models"
)

// Snapshot is the home screen: one value per card for a single day.
type Snapshot struct {
	Meta
	Calories         float64                `json:"calories"`
	Steps            float64                `json:"steps"`
	DistanceKm       float64                `json:"distance_km"`
	SleepHours       float64                `json:"sleep_hours"`
	HeartRate        *metrics.LatestReading `json:"heart_rate"`
	RestingEstimate  *float64               `json:"resting_estimate"`
	OxygenSaturation *metrics.LatestReading `json:"oxygen_saturation"`
	Vo2Max           *metrics.LatestReading `json:"vo2max"`
}

// snapshotTypes are read in a single batch, in this order.
var snapshotTypes = []string{
	models.RecordActiveCaloriesBurned,
	models.RecordTotalCaloriesBurned,
	models.RecordSteps,
	models.RecordDistance,
	models.RecordSleepSession,
	models.RecordHeartRate,
	models.RecordOxygenSaturation,
	models.RecordVo2Max,
}

// Snapshot reads every card's records for the day in one concurrent batch.
// For the current day the window ends now.
func (e *Engine) Snapshot(ctx context.Context, day time.Time) (*Snapshot, error) {
	r := e.day(day)
	window := r.Clip(e.now())
	res, err := e.fetch(ctx, window, snapshotTypes...)
	if err != nil {
		return nil, err
	}

	active := metrics.SumIn(e.norm.EnergyIntervals(models.RecordActiveCaloriesBurned, res[0]), r)
	total := metrics.SumIn(e.norm.EnergyIntervals(models.RecordTotalCaloriesBurned, res[1]), r)
	hr := metrics.SamplesIn(e.norm.HeartRateSamples(res[5]), r)

	return &Snapshot{
		Meta:             newMeta(r),
		Calories:         metrics.Round1(metrics.CombineCalories(active, total)),
		Steps:            metrics.SumIn(e.norm.StepIntervals(res[2]), r),
		DistanceKm:       metrics.Round2(metrics.SumIn(e.norm.DistanceIntervals(res[3]), r)),
		SleepHours:       metrics.Round1(metrics.SleepHours(r, e.norm.SleepSessions(res[4]))),
		HeartRate:        metrics.Latest(hr),
		RestingEstimate:  metrics.EstimateResting(hr, e.loc),
		OxygenSaturation: metrics.Latest(e.norm.Instants(models.RecordOxygenSaturation, res[6])),
		Vo2Max:           metrics.Latest(e.norm.Instants(models.RecordVo2Max, res[7])),
	}, nil
}
