package models

import "encoding/json"

// Record types understood by the engine. Names match the provider's
// recordType strings.
const (
	RecordSteps                = "Steps"
	RecordHeartRate            = "HeartRate"
	RecordRestingHeartRate     = "RestingHeartRate"
	RecordExerciseSession      = "ExerciseSession"
	RecordSleepSession         = "SleepSession"
	RecordOxygenSaturation     = "OxygenSaturation"
	RecordVo2Max               = "Vo2Max"
	RecordActiveCaloriesBurned = "ActiveCaloriesBurned"
	RecordTotalCaloriesBurned  = "TotalCaloriesBurned"
	RecordDistance             = "Distance"
)

// RawRecord is a record exactly as returned by the provider.
type RawRecord = json.RawMessage

// TimeRangeFilter restricts a read to a time window.
type TimeRangeFilter struct {
	Operator  string     `json:"operator"`
	StartTime RecordTime `json:"startTime"`
	EndTime   RecordTime `json:"endTime"`
}

// ReadRequest is the fetch request sent to the provider.
type ReadRequest struct {
	RecordType      string          `json:"recordType"`
	TimeRangeFilter TimeRangeFilter `json:"timeRangeFilter"`
}

// ReadResponse is the provider's answer to a ReadRequest.
type ReadResponse struct {
	Records []RawRecord `json:"records"`
}

// Metadata is the provider bookkeeping attached to every record.
type Metadata struct {
	ID         string `json:"id,omitempty"`
	DataOrigin string `json:"dataOrigin,omitempty"`
}

// Energy is a tagged energy quantity. Some bridges pre-compute
// inKilocalories; when present it takes precedence over value/unit.
type Energy struct {
	Value          float64  `json:"value"`
	Unit           string   `json:"unit"`
	InKilocalories *float64 `json:"inKilocalories,omitempty"`
}

// Length is a tagged length quantity.
type Length struct {
	Value        float64  `json:"value"`
	Unit         string   `json:"unit"`
	InKilometers *float64 `json:"inKilometers,omitempty"`
}

// Record is a decoded provider record. The concrete types below are the
// only implementations.
type Record interface {
	// bounds returns the record's start and end. Instant records return
	// their single timestamp twice.
	bounds() (start, end RecordTime)
}

// StepsRecord is a step count over an interval.
type StepsRecord struct {
	StartTime RecordTime `json:"startTime"`
	EndTime   RecordTime `json:"endTime"`
	Count     float64    `json:"count"`
	Metadata  Metadata   `json:"metadata"`
}

// HeartRateSample is one reading nested inside a HeartRateRecord.
type HeartRateSample struct {
	Time           RecordTime `json:"time"`
	BeatsPerMinute float64    `json:"beatsPerMinute"`
}

// HeartRateRecord groups heart rate samples taken over an interval.
type HeartRateRecord struct {
	StartTime RecordTime        `json:"startTime"`
	EndTime   RecordTime        `json:"endTime"`
	Samples   []HeartRateSample `json:"samples"`
	Metadata  Metadata          `json:"metadata"`
}

// RestingHeartRateRecord is a provider-computed resting heart rate.
type RestingHeartRateRecord struct {
	Time           RecordTime `json:"time"`
	BeatsPerMinute float64    `json:"beatsPerMinute"`
	Metadata       Metadata   `json:"metadata"`
}

// EnergyRecord backs both ActiveCaloriesBurned and TotalCaloriesBurned.
type EnergyRecord struct {
	Kind      string     `json:"-"`
	StartTime RecordTime `json:"startTime"`
	EndTime   RecordTime `json:"endTime"`
	Energy    *Energy    `json:"energy"`
	Metadata  Metadata   `json:"metadata"`
}

// OxygenSaturationRecord is a single SpO2 reading in percent.
type OxygenSaturationRecord struct {
	Time       RecordTime `json:"time"`
	Percentage float64    `json:"percentage"`
	Metadata   Metadata   `json:"metadata"`
}

// Vo2MaxRecord is a single VO2 max estimate in ml/kg/min.
type Vo2MaxRecord struct {
	Time                            RecordTime `json:"time"`
	Vo2MillilitersPerMinuteKilogram float64    `json:"vo2MillilitersPerMinuteKilogram"`
	Metadata                        Metadata   `json:"metadata"`
}

// DistanceRecord is a distance covered over an interval.
type DistanceRecord struct {
	StartTime RecordTime `json:"startTime"`
	EndTime   RecordTime `json:"endTime"`
	Distance  *Length    `json:"distance"`
	Metadata  Metadata   `json:"metadata"`
}

// SleepStage is one stage interval inside a sleep session. Stage holds the
// provider's numeric stage code.
type SleepStage struct {
	StartTime RecordTime `json:"startTime"`
	EndTime   RecordTime `json:"endTime"`
	Stage     int        `json:"stage"`
}

// SleepSessionRecord is a sleep session with optional stage breakdown.
type SleepSessionRecord struct {
	StartTime RecordTime   `json:"startTime"`
	EndTime   RecordTime   `json:"endTime"`
	Title     string       `json:"title,omitempty"`
	Stages    []SleepStage `json:"stages,omitempty"`
	Metadata  Metadata     `json:"metadata"`
}

// ExerciseSessionRecord is a recorded workout.
type ExerciseSessionRecord struct {
	StartTime    RecordTime `json:"startTime"`
	EndTime      RecordTime `json:"endTime"`
	ExerciseType int        `json:"exerciseType"`
	Title        string     `json:"title,omitempty"`
	Metadata     Metadata   `json:"metadata"`
}

// UnrecognizedRecord is a payload that could not be decoded as its
// declared type. It is kept so callers can count and log it.
type UnrecognizedRecord struct {
	Type string
	Raw  RawRecord
	Err  error
}

func (r StepsRecord) bounds() (RecordTime, RecordTime)            { return r.StartTime, r.EndTime }
func (r HeartRateRecord) bounds() (RecordTime, RecordTime)        { return r.StartTime, r.EndTime }
func (r RestingHeartRateRecord) bounds() (RecordTime, RecordTime) { return r.Time, r.Time }
func (r EnergyRecord) bounds() (RecordTime, RecordTime)           { return r.StartTime, r.EndTime }
func (r OxygenSaturationRecord) bounds() (RecordTime, RecordTime) { return r.Time, r.Time }
func (r Vo2MaxRecord) bounds() (RecordTime, RecordTime)           { return r.Time, r.Time }
func (r DistanceRecord) bounds() (RecordTime, RecordTime)         { return r.StartTime, r.EndTime }
func (r SleepSessionRecord) bounds() (RecordTime, RecordTime)     { return r.StartTime, r.EndTime }
func (r ExerciseSessionRecord) bounds() (RecordTime, RecordTime)  { return r.StartTime, r.EndTime }
func (UnrecognizedRecord) bounds() (RecordTime, RecordTime)       { return RecordTime{}, RecordTime{} }
