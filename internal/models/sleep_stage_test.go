package models

import "testing"

// TestNormalizeSleepStage verifies the stage code table, including the two
// alternate deep sleep codes.
func TestNormalizeSleepStage(t *testing.T) {
	cases := []struct {
		code int
		want string
	}{
		{StageCodeAwake, SleepStageAwake},
		{StageCodeLight, SleepStageLight},
		{StageCodeDeep, SleepStageDeep},
		{StageCodeREM, SleepStageREM},
		{StageCodeDeepAlt, SleepStageDeep},
		{StageCodeDeepAlt2, SleepStageDeep},
	}
	for _, tc := range cases {
		got, known := NormalizeSleepStage(tc.code)
		if !known {
			t.Errorf("NormalizeSleepStage(%d): expected known=true", tc.code)
		}
		if got != tc.want {
			t.Errorf("NormalizeSleepStage(%d) = %q, want %q", tc.code, got, tc.want)
		}
	}
}

// TestNormalizeSleepStage_Unknown verifies that codes without a stage
// meaning, and codes outside the table, are reported as unknown so callers
// drop them instead of summing them into a bucket.
func TestNormalizeSleepStage_Unknown(t *testing.T) {
	for _, code := range []int{StageCodeUnknown, StageCodeSleeping, 8, 99, -1} {
		got, known := NormalizeSleepStage(code)
		if known {
			t.Errorf("NormalizeSleepStage(%d): expected known=false", code)
		}
		if got != SleepStageUnknown {
			t.Errorf("NormalizeSleepStage(%d) = %q, want %q", code, got, SleepStageUnknown)
		}
	}
}

// TestSleepStageOrder verifies the fixed display order.
func TestSleepStageOrder(t *testing.T) {
	want := []string{"deep", "light", "rem", "awake"}
	if len(SleepStageOrder) != len(want) {
		t.Fatalf("len = %d, want %d", len(SleepStageOrder), len(want))
	}
	for i := range want {
		if SleepStageOrder[i] != want[i] {
			t.Errorf("SleepStageOrder[%d] = %q, want %q", i, SleepStageOrder[i], want[i])
		}
	}
}
