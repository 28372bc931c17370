package models

// Canonical sleep stage names.
const (
	SleepStageAwake   = "awake"
	SleepStageLight   = "light"
	SleepStageDeep    = "deep"
	SleepStageREM     = "rem"
	SleepStageUnknown = "unknown"
)

// Sleep stage codes as reported by the device's Health Connect bridge.
// Deep sleep arrives under three codes depending on the recording app.
const (
	StageCodeUnknown  = 0
	StageCodeAwake    = 1
	StageCodeDeepAlt  = 2
	StageCodeDeepAlt2 = 3
	StageCodeLight    = 4
	StageCodeDeep     = 5
	StageCodeREM      = 6
	StageCodeSleeping = 7
)

// SleepStageOrder is the fixed display order for stage summaries.
var SleepStageOrder = []string{SleepStageDeep, SleepStageLight, SleepStageREM, SleepStageAwake}

var sleepStageCodes = map[int]string{
	StageCodeAwake:    SleepStageAwake,
	StageCodeDeepAlt:  SleepStageDeep,
	StageCodeDeepAlt2: SleepStageDeep,
	StageCodeLight:    SleepStageLight,
	StageCodeDeep:     SleepStageDeep,
	StageCodeREM:      SleepStageREM,
}

// NormalizeSleepStage maps a provider stage code to its canonical name.
// Codes with no stage meaning (unknown, generic sleeping) and codes outside
// the table return SleepStageUnknown and false.
func NormalizeSleepStage(code int) (string, bool) {
	if name, ok := sleepStageCodes[code]; ok {
		return name, true
	}
	return SleepStageUnknown, false
}
