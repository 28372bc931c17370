package metrics

import (
	"math"
	"testing"
	"time"

	"github.com/claude/healthdash/internal/models"
)

// TestCircularMeanStdSimple verifies that times near midnight average correctly
// across the 24->0 boundary instead of producing the naive 12:00 result.
func TestCircularMeanStdSimple(t *testing.T) {
	tests := []struct {
		name     string
		hours    []float64
		wantMean float64
	}{
		{"same time", []float64{22.0, 22.0, 22.0}, 22.0},
		{"around midnight", []float64{23.0, 1.0}, 0.0},
		{"morning cluster", []float64{7.0, 7.5, 8.0}, 7.5},
		{"evening cluster", []float64{22.0, 22.5, 23.0}, 22.5},
		{"empty", []float64{}, 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mean, std := circularMeanStd(tt.hours)
			diff := math.Abs(mean - tt.wantMean)
			if diff > 12 {
				diff = 24 - diff
			}
			if diff > 0.1 {
				t.Errorf("circularMeanStd(%v) mean = %.2f, want %.2f", tt.hours, mean, tt.wantMean)
			}
			if tt.name == "same time" && std > 0.01 {
				t.Errorf("expected std ~ 0 for identical times, got %.4f", std)
			}
		})
	}
}

// TestHoursToHHMM verifies the fractional hours to "HH:MM" formatting.
func TestHoursToHHMM(t *testing.T) {
	tests := []struct {
		hours float64
		want  string
	}{
		{0.0, "00:00"},
		{7.5, "07:30"},
		{22.75, "22:45"},
		{24.0, "00:00"},
		{23.999, "00:00"},
		{-1, "23:00"},
	}
	for _, tt := range tests {
		if got := hoursToHHMM(tt.hours); got != tt.want {
			t.Errorf("hoursToHHMM(%v) = %q, want %q", tt.hours, got, tt.want)
		}
	}
}

// TestSummarizeSleepTiming verifies bedtime and waketime averaging across
// midnight in the given location.
func TestSummarizeSleepTiming(t *testing.T) {
	if got := SummarizeSleepTiming(nil, time.UTC); got != nil {
		t.Errorf("empty = %+v, want nil", got)
	}
	sessions := []models.SleepSessionRecord{
		{StartTime: rt(at(-1, 0)), EndTime: rt(at(7, 0))},
		{StartTime: rt(at(-47, 0)), EndTime: rt(at(-41, 0))},
	}
	got := SummarizeSleepTiming(sessions, time.UTC)
	if got == nil {
		t.Fatal("expected timing")
	}
	if got.Nights != 2 {
		t.Errorf("nights = %d, want 2", got.Nights)
	}
	if got.AvgBedtime != "00:00" {
		t.Errorf("bedtime = %s, want 00:00", got.AvgBedtime)
	}
	if got.AvgWaketime != "07:00" {
		t.Errorf("waketime = %s, want 07:00", got.AvgWaketime)
	}
	if got.BedtimeConsistencyStdHr <= 0 {
		t.Errorf("bedtime std = %v, want > 0", got.BedtimeConsistencyStdHr)
	}
}
