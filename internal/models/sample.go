package models

import "time"

// Sample is a single point-in-time reading: heart rate in bpm, VO2 max in
// ml/kg/min, oxygen saturation in percent.
type Sample struct {
	Time  time.Time `json:"time"`
	Value float64   `json:"value"`
}

// Interval is a value spread over a time span: calories, steps, distance.
type Interval struct {
	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`
	Value     float64   `json:"value"`
}

// Valid reports whether the interval is well ordered (end not before start).
func (iv Interval) Valid() bool {
	return !iv.EndTime.Before(iv.StartTime)
}

// Duration returns the interval length, or zero for a malformed interval.
func (iv Interval) Duration() time.Duration {
	if !iv.Valid() {
		return 0
	}
	return iv.EndTime.Sub(iv.StartTime)
}
