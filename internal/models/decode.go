package models

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrUnknownRecordType is returned by DecodeRecord for record types the
// engine does not model.
var ErrUnknownRecordType = errors.New("unknown record type")

// recordShape describes how a record's payload is laid out.
type recordShape int

const (
	shapeInterval      recordShape = iota // {startTime, endTime, <quantity>}
	shapeInstant                          // {time, <quantity>}
	shapeNestedSamples                    // {startTime, endTime, samples: [...]}
	shapeNestedStages                     // {startTime, endTime, stages: [...]}
	shapeSession                          // {startTime, endTime, exerciseType}
)

func shapeOf(recordType string) recordShape {
	switch recordType {
	case RecordHeartRate:
		return shapeNestedSamples
	case RecordSleepSession:
		return shapeNestedStages
	case RecordExerciseSession:
		return shapeSession
	case RecordRestingHeartRate, RecordOxygenSaturation, RecordVo2Max:
		return shapeInstant
	default:
		return shapeInterval
	}
}

// checkTimes reports the first timestamp field the shape requires that the
// decoded record lacks.
func checkTimes(shape recordShape, rec Record) error {
	start, end := rec.bounds()
	if shape == shapeInstant {
		if start.IsZero() {
			return errors.New("missing time")
		}
		return nil
	}
	if start.IsZero() {
		return errors.New("missing startTime")
	}
	if end.IsZero() {
		return errors.New("missing endTime")
	}
	return nil
}

// DecodeRecord decodes a raw provider record into its typed variant.
// A payload that fails to decode, or lacks the fields its type requires,
// comes back as an UnrecognizedRecord rather than an error so a single bad
// record cannot abort a whole read. The error return is reserved for
// record types the engine does not know.
func DecodeRecord(recordType string, raw RawRecord) (Record, error) {
	var (
		rec Record
		err error
	)
	switch recordType {
	case RecordSteps:
		var r StepsRecord
		err = json.Unmarshal(raw, &r)
		rec = r
	case RecordHeartRate:
		var r HeartRateRecord
		err = json.Unmarshal(raw, &r)
		rec = r
	case RecordRestingHeartRate:
		var r RestingHeartRateRecord
		err = json.Unmarshal(raw, &r)
		rec = r
	case RecordActiveCaloriesBurned, RecordTotalCaloriesBurned:
		r := EnergyRecord{Kind: recordType}
		err = json.Unmarshal(raw, &r)
		if err == nil && r.Energy == nil {
			err = errors.New("missing energy")
		}
		rec = r
	case RecordOxygenSaturation:
		var r OxygenSaturationRecord
		err = json.Unmarshal(raw, &r)
		rec = r
	case RecordVo2Max:
		var r Vo2MaxRecord
		err = json.Unmarshal(raw, &r)
		rec = r
	case RecordDistance:
		var r DistanceRecord
		err = json.Unmarshal(raw, &r)
		if err == nil && r.Distance == nil {
			err = errors.New("missing distance")
		}
		rec = r
	case RecordSleepSession:
		var r SleepSessionRecord
		err = json.Unmarshal(raw, &r)
		rec = r
	case RecordExerciseSession:
		var r ExerciseSessionRecord
		err = json.Unmarshal(raw, &r)
		rec = r
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownRecordType, recordType)
	}

	if err == nil {
		err = checkTimes(shapeOf(recordType), rec)
	}
	if err != nil {
		return UnrecognizedRecord{Type: recordType, Raw: raw, Err: err}, nil
	}
	return rec, nil
}
