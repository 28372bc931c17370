package metrics

import (
	"time"

	"github.com/claude/healthdash/internal/models"
)

var testDay = time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)

// at returns testDay at hh:mm UTC.
func at(hh, mm int) time.Time {
	return testDay.Add(time.Duration(hh)*time.Hour + time.Duration(mm)*time.Minute)
}

func rt(t time.Time) models.RecordTime { return models.RecordTime{Time: t} }

func bpm(t time.Time, v float64) models.Sample { return models.Sample{Time: t, Value: v} }

func interval(start, end time.Time, v float64) models.Interval {
	return models.Interval{StartTime: start, EndTime: end, Value: v}
}

func stage(start, end time.Time, code int) models.SleepStage {
	return models.SleepStage{StartTime: rt(start), EndTime: rt(end), Stage: code}
}

// tenMinutes is a ten-minute interval starting at start.
func tenMinutes(start time.Time, v float64) models.Interval {
	return interval(start, start.Add(10*time.Minute), v)
}
