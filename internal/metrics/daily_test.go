package metrics

import (
	"testing"

	"github.com/claude/healthdash/internal/models"
	"github.com/claude/healthdash/internal/timerange"
)

// TestSumIn verifies the [start, end) day filter: records starting at
// midnight count, records starting at the next midnight do not.
func TestSumIn(t *testing.T) {
	day := timerange.Day(testDay)
	records := []models.Interval{
		tenMinutes(at(0, 0), 10),
		tenMinutes(at(12, 0), 20),
		tenMinutes(at(23, 59), 30),
		tenMinutes(at(24, 0), 1000),
		tenMinutes(at(-1, 0), 500),
	}
	if got := SumIn(records, day); got != 60 {
		t.Errorf("SumIn = %v, want 60", got)
	}
	if got := SumIn(nil, day); got != 0 {
		t.Errorf("SumIn(nil) = %v, want 0", got)
	}
}

// TestSumIn_Idempotent verifies that aggregating the same records twice
// gives the same total.
func TestSumIn_Idempotent(t *testing.T) {
	day := timerange.Day(testDay)
	records := []models.Interval{tenMinutes(at(8, 0), 120), tenMinutes(at(9, 0), 1), tenMinutes(at(20, 15), 33.5)}
	first := SumIn(records, day)
	second := SumIn(records, day)
	if first != second {
		t.Errorf("first = %v, second = %v", first, second)
	}
}

// TestSumIn_MixedUnitCalories verifies the calorie scenario after
// normalization: 120 kcal at 08:00 and 4184 J (1 kcal) at 09:00 give 121.
func TestSumIn_MixedUnitCalories(t *testing.T) {
	day := timerange.Day(testDay)
	records := []models.Interval{tenMinutes(at(8, 0), 120), tenMinutes(at(9, 0), 4184.0/4184.0)}
	if got := SumIn(records, day); got != 121 {
		t.Errorf("SumIn = %v, want 121", got)
	}
}

// TestCombineCalories verifies the single calorie policy: the larger of
// active and total wins, and a lone populated source is used as-is.
func TestCombineCalories(t *testing.T) {
	tests := []struct {
		active, total, want float64
	}{
		{300, 2100, 2100},
		{450, 0, 450},
		{0, 1900, 1900},
		{0, 0, 0},
		{121, 121, 121},
	}
	for _, tt := range tests {
		if got := CombineCalories(tt.active, tt.total); got != tt.want {
			t.Errorf("CombineCalories(%v, %v) = %v, want %v", tt.active, tt.total, got, tt.want)
		}
	}
}

// TestDailyTotals verifies one entry per day in the order given, zero for
// days without records.
func TestDailyTotals(t *testing.T) {
	days := timerange.Days(testDay.AddDate(0, 0, -2), testDay)
	records := []models.Interval{tenMinutes(at(8, 0), 100), tenMinutes(at(-6, 0), 40)}
	got := DailyTotals(days, records)
	want := []DailyTotal{{"2024-03-08", 0}, {"2024-03-09", 40}, {"2024-03-10", 100}}
	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("day %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}

// TestRound1 verifies one-decimal rounding used for display values.
func TestRound1(t *testing.T) {
	tests := []struct{ in, want float64 }{
		{7.44, 7.4},
		{7.46, 7.5},
		{0, 0},
		{12.96, 13},
	}
	for _, tt := range tests {
		if got := Round1(tt.in); got != tt.want {
			t.Errorf("Round1(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
