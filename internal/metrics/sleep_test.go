package metrics

import (
	"testing"
	"time"

	"github.com/claude/healthdash/internal/models"
)

// TestSummarizeSleep_UnknownCodeDropped verifies the stage scenario: codes
// 1 (awake), 4 (light) and 99 lasting 600000, 1800000 and 500000 ms give
// awake=600000 and light=1800000, with the unknown entry not summed anywhere.
func TestSummarizeSleep_UnknownCodeDropped(t *testing.T) {
	start := at(-2, 0)
	s1 := start.Add(600000 * time.Millisecond)
	s2 := s1.Add(1800000 * time.Millisecond)
	s3 := s2.Add(500000 * time.Millisecond)
	session := models.SleepSessionRecord{
		StartTime: rt(start),
		EndTime:   rt(s3),
		Stages: []models.SleepStage{
			stage(start, s1, 1),
			stage(s1, s2, 4),
			stage(s2, s3, 99),
		},
	}

	got := SummarizeSleep([]models.SleepSessionRecord{session})
	want := []StageDuration{{"light", 1800000}, {"awake", 600000}}
	if len(got.Stages) != len(want) {
		t.Fatalf("stages = %+v, want %+v", got.Stages, want)
	}
	for i := range want {
		if got.Stages[i] != want[i] {
			t.Errorf("stage %d = %+v, want %+v", i, got.Stages[i], want[i])
		}
	}
	if got.TotalDurationMillis != 2900000 {
		t.Errorf("total = %d, want 2900000", got.TotalDurationMillis)
	}
}

// TestSummarizeSleep_OrderAndEnvelope verifies the fixed display order
// deep, light, rem, awake, summing across sessions, and the envelope from
// the earliest start to the latest end.
func TestSummarizeSleep_OrderAndEnvelope(t *testing.T) {
	night := models.SleepSessionRecord{
		StartTime: rt(at(-1, 0)),
		EndTime:   rt(at(6, 0)),
		Stages: []models.SleepStage{
			stage(at(-1, 0), at(-1, 10), models.StageCodeAwake),
			stage(at(-1, 10), at(1, 0), models.StageCodeLight),
			stage(at(1, 0), at(2, 0), models.StageCodeDeep),
			stage(at(2, 0), at(3, 0), models.StageCodeREM),
			stage(at(3, 0), at(6, 0), models.StageCodeLight),
		},
	}
	nap := models.SleepSessionRecord{
		StartTime: rt(at(14, 0)),
		EndTime:   rt(at(14, 30)),
		Stages: []models.SleepStage{
			stage(at(14, 0), at(14, 20), models.StageCodeLight),
			stage(at(14, 20), at(14, 30), models.StageCodeAwake),
		},
	}

	got := SummarizeSleep([]models.SleepSessionRecord{nap, night})
	wantOrder := []string{"deep", "light", "rem", "awake"}
	if len(got.Stages) != 4 {
		t.Fatalf("stages = %+v", got.Stages)
	}
	for i, name := range wantOrder {
		if got.Stages[i].Stage != name {
			t.Errorf("stage %d = %s, want %s", i, got.Stages[i].Stage, name)
		}
	}
	minute := int64(time.Minute / time.Millisecond)
	if got.Stages[1].DurationMillis != (110+180+20)*minute {
		t.Errorf("light = %d", got.Stages[1].DurationMillis)
	}
	if got.Stages[3].DurationMillis != 20*minute {
		t.Errorf("awake = %d", got.Stages[3].DurationMillis)
	}
	if got.StartTime == nil || !got.StartTime.Equal(at(-1, 0)) {
		t.Errorf("start = %v", got.StartTime)
	}
	if got.EndTime == nil || !got.EndTime.Equal(at(14, 30)) {
		t.Errorf("end = %v", got.EndTime)
	}
	if got.TotalDurationMillis != 930*minute {
		t.Errorf("total = %d, want %d", got.TotalDurationMillis, 930*minute)
	}
}

// TestSummarizeSleep_AlternateCodes verifies a session mixing every deep
// sleep code with the generic "sleeping" code: 2, 3 and 5 all sum into deep
// and 7 is dropped.
func TestSummarizeSleep_AlternateCodes(t *testing.T) {
	session := models.SleepSessionRecord{
		StartTime: rt(at(0, 0)),
		EndTime:   rt(at(1, 15)),
		Stages: []models.SleepStage{
			stage(at(0, 0), at(0, 10), models.StageCodeDeepAlt),
			stage(at(0, 10), at(0, 30), models.StageCodeDeepAlt2),
			stage(at(0, 30), at(1, 0), models.StageCodeDeep),
			stage(at(1, 0), at(1, 15), models.StageCodeSleeping),
		},
	}
	got := SummarizeSleep([]models.SleepSessionRecord{session})
	minute := int64(time.Minute / time.Millisecond)
	if len(got.Stages) != 1 || got.Stages[0] != (StageDuration{"deep", 60 * minute}) {
		t.Errorf("stages = %+v, want deep=60m only", got.Stages)
	}
}

// TestSummarizeSleep_MalformedStage verifies that a stage ending before it
// starts, or with zero length, contributes nothing.
func TestSummarizeSleep_MalformedStage(t *testing.T) {
	session := models.SleepSessionRecord{
		StartTime: rt(at(0, 0)),
		EndTime:   rt(at(1, 0)),
		Stages: []models.SleepStage{
			stage(at(0, 30), at(0, 0), models.StageCodeDeep),
			stage(at(0, 40), at(0, 40), models.StageCodeREM),
			stage(at(0, 0), at(0, 15), models.StageCodeLight),
		},
	}
	got := SummarizeSleep([]models.SleepSessionRecord{session})
	if len(got.Stages) != 1 || got.Stages[0].Stage != "light" {
		t.Errorf("stages = %+v, want light only", got.Stages)
	}
}

// TestSummarizeSleep_Empty verifies the empty summary: no stages, zero total
// and no envelope.
func TestSummarizeSleep_Empty(t *testing.T) {
	got := SummarizeSleep(nil)
	if got.Stages == nil || len(got.Stages) != 0 {
		t.Errorf("stages = %#v, want empty slice", got.Stages)
	}
	if got.TotalDurationMillis != 0 || got.StartTime != nil || got.EndTime != nil {
		t.Errorf("got %+v", got)
	}
}
