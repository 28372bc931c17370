package metrics

import (
	"testing"

	"github.com/claude/healthdash/internal/models"
)

// TestLatest verifies that the sample with the greatest timestamp wins
// regardless of input order, and that empty input yields nil.
func TestLatest(t *testing.T) {
	if got := Latest(nil); got != nil {
		t.Errorf("Latest(nil) = %+v, want nil", got)
	}

	samples := []models.Sample{bpm(at(10, 0), 62), bpm(at(14, 0), 71), bpm(at(9, 0), 80)}
	got := Latest(samples)
	if got == nil || got.Value != 71 || !got.Time.Equal(at(14, 0)) {
		t.Errorf("Latest = %+v, want 71 at 14:00", got)
	}
	if samples[2].Value != 80 {
		t.Error("Latest must not reorder its input")
	}
}

// TestLatest_TieBreak verifies that when several samples share the
// greatest timestamp, the one later in input order is returned.
func TestLatest_TieBreak(t *testing.T) {
	samples := []models.Sample{
		bpm(at(14, 0), 97),
		bpm(at(8, 0), 95),
		bpm(at(14, 0), 98),
		bpm(at(14, 0), 99),
		bpm(at(11, 0), 96),
	}
	got := Latest(samples)
	if got == nil || got.Value != 99 {
		t.Errorf("Latest = %+v, want 99", got)
	}
}
