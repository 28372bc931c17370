package metrics

import (
	"fmt"
	"math"
	"time"

	"github.com/claude/healthdash/internal/models"
)

// SleepTiming describes when sleep happens across several nights.
type SleepTiming struct {
	Nights                   int     `json:"nights"`
	AvgBedtime               string  `json:"avg_bedtime"`
	AvgWaketime              string  `json:"avg_waketime"`
	BedtimeConsistencyStdHr  float64 `json:"bedtime_consistency_stddev_hr"`
	WaketimeConsistencyStdHr float64 `json:"waketime_consistency_stddev_hr"`
}

// SummarizeSleepTiming computes circular mean bedtime and waketime in loc,
// with their circular standard deviation as a consistency score. Returns
// nil when there are no usable sessions.
func SummarizeSleepTiming(sessions []models.SleepSessionRecord, loc *time.Location) *SleepTiming {
	if loc == nil {
		loc = time.Local
	}
	bedtimeHours := make([]float64, 0, len(sessions))
	waketimeHours := make([]float64, 0, len(sessions))
	for _, s := range sessions {
		if !s.EndTime.After(s.StartTime.Time) {
			continue
		}
		bedtimeHours = append(bedtimeHours, timeToHourOfDay(s.StartTime.In(loc)))
		waketimeHours = append(waketimeHours, timeToHourOfDay(s.EndTime.In(loc)))
	}
	if len(bedtimeHours) == 0 {
		return nil
	}

	avgBed, stdBed := circularMeanStd(bedtimeHours)
	avgWake, stdWake := circularMeanStd(waketimeHours)
	return &SleepTiming{
		Nights:                   len(bedtimeHours),
		AvgBedtime:               hoursToHHMM(avgBed),
		AvgWaketime:              hoursToHHMM(avgWake),
		BedtimeConsistencyStdHr:  math.Round(stdBed*100) / 100,
		WaketimeConsistencyStdHr: math.Round(stdWake*100) / 100,
	}
}

// timeToHourOfDay extracts fractional hour of day from a time.Time.
func timeToHourOfDay(t time.Time) float64 {
	return float64(t.Hour()) + float64(t.Minute())/60.0 + float64(t.Second())/3600.0
}

// circularMeanStd computes the circular mean and standard deviation for times
// expressed as hours (0-24), so 23:00 and 01:00 average to 00:00.
func circularMeanStd(hours []float64) (mean, std float64) {
	if len(hours) == 0 {
		return 0, 0
	}

	var sinSum, cosSum float64
	for _, h := range hours {
		rad := h / 24.0 * 2 * math.Pi
		sinSum += math.Sin(rad)
		cosSum += math.Cos(rad)
	}

	n := float64(len(hours))
	sinAvg := sinSum / n
	cosAvg := cosSum / n

	meanRad := math.Atan2(sinAvg, cosAvg)
	if meanRad < 0 {
		meanRad += 2 * math.Pi
	}
	mean = meanRad / (2 * math.Pi) * 24.0

	r := math.Min(1, math.Sqrt(sinAvg*sinAvg+cosAvg*cosAvg))
	if r > 0 {
		std = math.Sqrt(-2*math.Log(r)) / (2 * math.Pi) * 24.0
	}
	return mean, std
}

// hoursToHHMM formats fractional hours (0-24) as "HH:MM".
func hoursToHHMM(h float64) string {
	h = math.Mod(h, 24)
	if h < 0 {
		h += 24
	}
	hours := int(h)
	minutes := int(math.Round((h - float64(hours)) * 60))
	if minutes == 60 {
		hours++
		minutes = 0
	}
	if hours >= 24 {
		hours -= 24
	}
	return fmt.Sprintf("%02d:%02d", hours, minutes)
}
