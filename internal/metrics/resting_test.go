package metrics

import (
	"testing"
	"time"

	"github.com/claude/healthdash/internal/models"
)

// TestEstimateResting verifies the 03:00-07:00 window: the minimum inside
// the window is returned and lower readings outside it are ignored.
func TestEstimateResting(t *testing.T) {
	samples := []models.Sample{
		bpm(at(2, 59), 40),
		bpm(at(3, 0), 58),
		bpm(at(4, 30), 52),
		bpm(at(6, 59), 55),
		bpm(at(7, 0), 45),
		bpm(at(13, 0), 48),
	}
	got := EstimateResting(samples, time.UTC)
	if got == nil || *got != 52 {
		t.Errorf("EstimateResting = %v, want 52", got)
	}
}

// TestEstimateResting_NoWindowSamples verifies nil when nothing falls in
// the window, including for empty input.
func TestEstimateResting_NoWindowSamples(t *testing.T) {
	if got := EstimateResting(nil, time.UTC); got != nil {
		t.Errorf("empty input = %v, want nil", *got)
	}
	samples := []models.Sample{bpm(at(1, 0), 50), bpm(at(7, 0), 51), bpm(at(22, 0), 49)}
	if got := EstimateResting(samples, time.UTC); got != nil {
		t.Errorf("outside window = %v, want nil", *got)
	}
}

// TestEstimateResting_LocalHours verifies that the window is applied in the
// given location, not UTC.
func TestEstimateResting_LocalHours(t *testing.T) {
	cet := time.FixedZone("CET", 3600)
	// 02:30 UTC is 03:30 CET.
	samples := []models.Sample{bpm(at(2, 30), 50)}
	if got := EstimateResting(samples, time.UTC); got != nil {
		t.Errorf("UTC = %v, want nil", *got)
	}
	if got := EstimateResting(samples, cet); got == nil || *got != 50 {
		t.Errorf("CET = %v, want 50", got)
	}
}
