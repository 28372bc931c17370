package normalize

import (
	"log/slog"
	"math"
	"testing"
	"time"

	"github.com/claude/healthdash/internal/models"
)

func raws(ss ...string) []models.RawRecord {
	out := make([]models.RawRecord, len(ss))
	for i, s := range ss {
		out[i] = models.RawRecord(s)
	}
	return out
}

func ptr(f float64) *float64 { return &f }

// TestEnergyToKcal verifies unit conversion: kilocalories pass through,
// joules divide by 4184, and an unknown unit contributes nothing.
func TestEnergyToKcal(t *testing.T) {
	tests := []struct {
		name   string
		in     models.Energy
		want   float64
		wantOK bool
	}{
		{"kilocalories", models.Energy{Value: 120, Unit: "kilocalories"}, 120, true},
		{"joules", models.Energy{Value: 4184, Unit: "joules"}, 1, true},
		{"joules large", models.Energy{Value: 418400, Unit: "JOULES"}, 100, true},
		{"kilojoules", models.Energy{Value: 41.84, Unit: "kilojoules"}, 10, true},
		{"small calories", models.Energy{Value: 2500, Unit: "calories"}, 2.5, true},
		{"precomputed wins", models.Energy{Value: 4184, Unit: "joules", InKilocalories: ptr(7)}, 7, true},
		{"zero joules", models.Energy{Value: 0, Unit: "joules"}, 0, true},
		{"unknown unit", models.Energy{Value: 50, Unit: "btu"}, 0, false},
		{"empty unit", models.Energy{Value: 50}, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := EnergyToKcal(tt.in)
			if ok != tt.wantOK {
				t.Fatalf("ok = %v, want %v", ok, tt.wantOK)
			}
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("EnergyToKcal = %v, want %v", got, tt.want)
			}
		})
	}
}

// TestLengthToKm verifies distance unit conversion.
func TestLengthToKm(t *testing.T) {
	tests := []struct {
		in     models.Length
		want   float64
		wantOK bool
	}{
		{models.Length{Value: 5000, Unit: "meters"}, 5, true},
		{models.Length{Value: 2, Unit: "kilometers"}, 2, true},
		{models.Length{Value: 1, Unit: "miles"}, 1.609344, true},
		{models.Length{Value: 1, Unit: "parsecs"}, 0, false},
		{models.Length{Value: 9, Unit: "meters", InKilometers: ptr(3)}, 3, true},
	}
	for _, tt := range tests {
		got, ok := LengthToKm(tt.in)
		if ok != tt.wantOK || math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("LengthToKm(%+v) = %v,%v want %v,%v", tt.in, got, ok, tt.want, tt.wantOK)
		}
	}
}

// TestEnergyIntervals_MixedUnits verifies the mixed-unit day from the
// calorie scenario: 120 kcal plus 4184 J normalize to 120 and 1 kcal, sorted
// by start time, with the unknown-unit record dropped.
func TestEnergyIntervals_MixedUnits(t *testing.T) {
	n := New(slog.Default())
	got := n.EnergyIntervals(models.RecordActiveCaloriesBurned, raws(
		`{"startTime":"2024-03-10T09:00:00Z","endTime":"2024-03-10T09:30:00Z","energy":{"value":4184,"unit":"joules"}}`,
		`{"startTime":"2024-03-10T08:00:00Z","endTime":"2024-03-10T08:30:00Z","energy":{"value":120,"unit":"kilocalories"}}`,
		`{"startTime":"2024-03-10T10:00:00Z","endTime":"2024-03-10T10:30:00Z","energy":{"value":99,"unit":"btu"}}`,
	))
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	if got[0].Value != 120 || math.Abs(got[1].Value-1) > 1e-9 {
		t.Errorf("values = %v, %v; want 120, 1", got[0].Value, got[1].Value)
	}
	if !got[0].StartTime.Before(got[1].StartTime) {
		t.Error("intervals not sorted by start time")
	}
}

// TestStepIntervals_SkipsMalformed verifies that undecodable records and
// intervals ending before they start are skipped while good records survive.
func TestStepIntervals_SkipsMalformed(t *testing.T) {
	n := New(slog.Default())
	got := n.StepIntervals(raws(
		`{"startTime":"2024-03-10T08:00:00Z","endTime":"2024-03-10T08:10:00Z","count":100}`,
		`{"startTime":"2024-03-10T09:10:00Z","endTime":"2024-03-10T09:00:00Z","count":50}`,
		`not json`,
		`{"startTime":"2024-03-10T07:00:00Z","endTime":"2024-03-10T07:10:00Z","count":-3}`,
		`{"startTime":"2024-03-10T06:00:00Z","endTime":"2024-03-10T06:10:00Z","count":25}`,
	))
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2: %+v", len(got), got)
	}
	if got[0].Value != 25 || got[1].Value != 100 {
		t.Errorf("values = %v, %v; want 25, 100", got[0].Value, got[1].Value)
	}
}

// TestHeartRateSamples_Flatten verifies that nested samples from several
// records are flattened into one ascending sequence, and that samples sharing
// a timestamp keep provider order.
func TestHeartRateSamples_Flatten(t *testing.T) {
	n := New(slog.Default())
	got := n.HeartRateSamples(raws(
		`{"startTime":"2024-03-10T09:05:00Z","endTime":"2024-03-10T09:10:00Z",
		  "samples":[{"time":"2024-03-10T09:10:00Z","beatsPerMinute":90},{"time":"2024-03-10T09:05:00Z","beatsPerMinute":150}]}`,
		`{"startTime":"2024-03-10T09:00:00Z","endTime":"2024-03-10T09:05:00Z",
		  "samples":[{"time":"2024-03-10T09:00:00Z","beatsPerMinute":70},{"time":"2024-03-10T09:05:00Z","beatsPerMinute":151}]}`,
	))
	want := []float64{70, 150, 151, 90}
	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d", len(got), len(want))
	}
	for i, w := range want {
		if got[i].Value != w {
			t.Errorf("sample[%d] = %v, want %v", i, got[i].Value, w)
		}
	}
}

// TestInstants_OxygenRange verifies that oxygen readings above 100% are
// dropped and the rest come back sorted.
func TestInstants_OxygenRange(t *testing.T) {
	n := New(slog.Default())
	got := n.Instants(models.RecordOxygenSaturation, raws(
		`{"time":"2024-03-10T05:00:00Z","percentage":96}`,
		`{"time":"2024-03-10T04:00:00Z","percentage":104}`,
		`{"time":"2024-03-10T03:00:00Z","percentage":98}`,
	))
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	if got[0].Value != 98 || got[1].Value != 96 {
		t.Errorf("values = %v, %v; want 98, 96", got[0].Value, got[1].Value)
	}
	if !got[0].Time.Equal(time.Date(2024, 3, 10, 3, 0, 0, 0, time.UTC)) {
		t.Errorf("first time = %v", got[0].Time)
	}
}

// TestSessions_Sorted verifies that sleep and exercise sessions come back in
// start-time order.
func TestSessions_Sorted(t *testing.T) {
	n := New(slog.Default())
	sleep := n.SleepSessions(raws(
		`{"startTime":"2024-03-10T13:00:00Z","endTime":"2024-03-10T13:30:00Z"}`,
		`{"startTime":"2024-03-09T23:00:00Z","endTime":"2024-03-10T07:00:00Z"}`,
	))
	if len(sleep) != 2 || sleep[0].StartTime.Hour() != 23 {
		t.Errorf("sleep sessions not sorted: %+v", sleep)
	}
	ex := n.ExerciseSessions(raws(
		`{"startTime":"2024-03-10T18:00:00Z","endTime":"2024-03-10T18:30:00Z","exerciseType":8}`,
		`{"startTime":"2024-03-10T07:00:00Z","endTime":"2024-03-10T07:45:00Z","exerciseType":56}`,
	))
	if len(ex) != 2 || ex[0].ExerciseType != 56 {
		t.Errorf("exercise sessions not sorted: %+v", ex)
	}
}
