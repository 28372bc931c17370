package metrics

import (
	"testing"

	"github.com/claude/healthdash/internal/models"
	"github.com/claude/healthdash/internal/timerange"
)

// TestWeeklySleep verifies 7 entries oldest first, zero for nights without
// sessions, each session credited to the day it starts on.
func TestWeeklySleep(t *testing.T) {
	sessions := []models.SleepSessionRecord{
		{StartTime: rt(at(-1, 0)), EndTime: rt(at(6, 30))},
		{StartTime: rt(at(-72, 0)), EndTime: rt(at(-64, 0))},
		{StartTime: rt(at(14, 0)), EndTime: rt(at(14, 20))},
		{StartTime: rt(at(15, 0)), EndTime: rt(at(14, 0))},
	}
	got := WeeklySleep(timerange.WeekEnding(testDay), sessions)
	if len(got) != 7 {
		t.Fatalf("len = %d, want 7", len(got))
	}
	want := []WeeklyPoint{
		{"2024-03-04", 0},
		{"2024-03-05", 0},
		{"2024-03-06", 0},
		{"2024-03-07", 8},
		{"2024-03-08", 0},
		{"2024-03-09", 7.5},
		{"2024-03-10", 0.3},
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("day %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}

// TestWeeklySleep_NoSessions verifies that an empty week still has 7 zero
// entries.
func TestWeeklySleep_NoSessions(t *testing.T) {
	got := WeeklySleep(timerange.WeekEnding(testDay), nil)
	if len(got) != 7 {
		t.Fatalf("len = %d, want 7", len(got))
	}
	for _, p := range got {
		if p.Hours != 0 {
			t.Errorf("%s = %v, want 0", p.Date, p.Hours)
		}
	}
}
