// Package normalize turns raw provider records into the sorted Sample and
// Interval sequences the metrics package works on.
package normalize

import (
	"log/slog"
	"sort"
	"time"

	"github.com/claude/healthdash/internal/models"
)

// Normalizer decodes and reshapes provider records. Records that cannot be
// decoded, carry an unknown unit, or hold out-of-range values are skipped
// with a warning so one bad record never blanks a whole day.
type Normalizer struct {
	log *slog.Logger
}

// New creates a Normalizer that reports skipped records to log.
func New(log *slog.Logger) *Normalizer {
	return &Normalizer{log: log}
}

// Decode decodes raw records of one type, dropping undecodable ones.
func (n *Normalizer) Decode(recordType string, raws []models.RawRecord) []models.Record {
	out := make([]models.Record, 0, len(raws))
	for _, raw := range raws {
		rec, err := models.DecodeRecord(recordType, raw)
		if err != nil {
			n.log.Warn("skipping record", "type", recordType, "error", err)
			continue
		}
		if u, ok := rec.(models.UnrecognizedRecord); ok {
			n.log.Warn("skipping unrecognized record", "type", recordType, "error", u.Err)
			continue
		}
		out = append(out, rec)
	}
	return out
}

// EnergyIntervals returns calorie records as kcal intervals sorted by start.
// recordType is ActiveCaloriesBurned or TotalCaloriesBurned.
func (n *Normalizer) EnergyIntervals(recordType string, raws []models.RawRecord) []models.Interval {
	var out []models.Interval
	for _, rec := range n.Decode(recordType, raws) {
		r, ok := rec.(models.EnergyRecord)
		if !ok {
			continue
		}
		kcal, ok := EnergyToKcal(*r.Energy)
		if !ok {
			n.log.Warn("skipping energy record: unrecognized unit", "type", recordType, "unit", r.Energy.Unit)
			continue
		}
		n.appendInterval(&out, recordType, r.StartTime.Time, r.EndTime.Time, kcal)
	}
	sortIntervals(out)
	return out
}

// StepIntervals returns step records as count intervals sorted by start.
func (n *Normalizer) StepIntervals(raws []models.RawRecord) []models.Interval {
	var out []models.Interval
	for _, rec := range n.Decode(models.RecordSteps, raws) {
		if r, ok := rec.(models.StepsRecord); ok {
			n.appendInterval(&out, models.RecordSteps, r.StartTime.Time, r.EndTime.Time, r.Count)
		}
	}
	sortIntervals(out)
	return out
}

// DistanceIntervals returns distance records as km intervals sorted by start.
func (n *Normalizer) DistanceIntervals(raws []models.RawRecord) []models.Interval {
	var out []models.Interval
	for _, rec := range n.Decode(models.RecordDistance, raws) {
		r, ok := rec.(models.DistanceRecord)
		if !ok {
			continue
		}
		km, ok := LengthToKm(*r.Distance)
		if !ok {
			n.log.Warn("skipping distance record: unrecognized unit", "unit", r.Distance.Unit)
			continue
		}
		n.appendInterval(&out, models.RecordDistance, r.StartTime.Time, r.EndTime.Time, km)
	}
	sortIntervals(out)
	return out
}

// HeartRateSamples flattens the nested samples of every heart rate record
// into one sequence sorted by time. Samples with equal timestamps keep
// provider order.
func (n *Normalizer) HeartRateSamples(raws []models.RawRecord) []models.Sample {
	var out []models.Sample
	for _, rec := range n.Decode(models.RecordHeartRate, raws) {
		r, ok := rec.(models.HeartRateRecord)
		if !ok {
			continue
		}
		for _, s := range r.Samples {
			if s.Time.IsZero() || s.BeatsPerMinute < 0 {
				n.log.Warn("skipping heart rate sample", "time", s.Time.Time, "bpm", s.BeatsPerMinute)
				continue
			}
			out = append(out, models.Sample{Time: s.Time.Time, Value: s.BeatsPerMinute})
		}
	}
	sortSamples(out)
	return out
}

// Instants returns point-in-time readings (RestingHeartRate, Vo2Max,
// OxygenSaturation) sorted by time. Oxygen readings outside [0, 100] are
// dropped.
func (n *Normalizer) Instants(recordType string, raws []models.RawRecord) []models.Sample {
	var out []models.Sample
	for _, rec := range n.Decode(recordType, raws) {
		var s models.Sample
		switch r := rec.(type) {
		case models.RestingHeartRateRecord:
			s = models.Sample{Time: r.Time.Time, Value: r.BeatsPerMinute}
		case models.Vo2MaxRecord:
			s = models.Sample{Time: r.Time.Time, Value: r.Vo2MillilitersPerMinuteKilogram}
		case models.OxygenSaturationRecord:
			if r.Percentage > 100 {
				n.log.Warn("skipping oxygen saturation above 100%", "value", r.Percentage)
				continue
			}
			s = models.Sample{Time: r.Time.Time, Value: r.Percentage}
		default:
			continue
		}
		if s.Value < 0 {
			n.log.Warn("skipping negative reading", "type", recordType, "value", s.Value)
			continue
		}
		out = append(out, s)
	}
	sortSamples(out)
	return out
}

// SleepSessions returns decoded sleep sessions sorted by start time.
func (n *Normalizer) SleepSessions(raws []models.RawRecord) []models.SleepSessionRecord {
	var out []models.SleepSessionRecord
	for _, rec := range n.Decode(models.RecordSleepSession, raws) {
		if r, ok := rec.(models.SleepSessionRecord); ok {
			out = append(out, r)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].StartTime.Before(out[j].StartTime.Time)
	})
	return out
}

// ExerciseSessions returns decoded exercise sessions sorted by start time.
func (n *Normalizer) ExerciseSessions(raws []models.RawRecord) []models.ExerciseSessionRecord {
	var out []models.ExerciseSessionRecord
	for _, rec := range n.Decode(models.RecordExerciseSession, raws) {
		if r, ok := rec.(models.ExerciseSessionRecord); ok {
			out = append(out, r)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].StartTime.Before(out[j].StartTime.Time)
	})
	return out
}

// appendInterval adds a well-formed, non-negative interval to out.
func (n *Normalizer) appendInterval(out *[]models.Interval, recordType string, start, end time.Time, value float64) {
	iv := models.Interval{StartTime: start, EndTime: end, Value: value}
	if !iv.Valid() {
		n.log.Warn("skipping record: end before start", "type", recordType, "start", start, "end", end)
		return
	}
	if value < 0 {
		n.log.Warn("skipping record: negative value", "type", recordType, "value", value)
		return
	}
	*out = append(*out, iv)
}

func sortSamples(s []models.Sample) {
	sort.SliceStable(s, func(i, j int) bool { return s[i].Time.Before(s[j].Time) })
}

func sortIntervals(iv []models.Interval) {
	sort.SliceStable(iv, func(i, j int) bool { return iv[i].StartTime.Before(iv[j].StartTime) })
}
