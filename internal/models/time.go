package models

import (
	"encoding/json"
	"fmt"
	"time"
)

// RecordTime handles the timestamp formats seen in provider payloads.
// Health Connect bridges send RFC 3339 with fractional seconds; some exporters
// send "2006-01-02 15:04:05 -0700" or a bare date.
type RecordTime struct {
	time.Time
}

const (
	RecordTimeLayout = time.RFC3339Nano
	ExportTimeLayout = "2006-01-02 15:04:05 -0700"
	DateOnlyLayout   = "2006-01-02"
)

func (t *RecordTime) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	return t.Parse(s)
}

func (t RecordTime) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.Format(RecordTimeLayout))
}

// Parse tries RFC 3339 first, then the export layout, then date-only.
func (t *RecordTime) Parse(s string) error {
	parsed, err := time.Parse(RecordTimeLayout, s)
	if err == nil {
		t.Time = parsed
		return nil
	}
	if parsed, err2 := time.Parse(ExportTimeLayout, s); err2 == nil {
		t.Time = parsed
		return nil
	}
	if parsed, err3 := time.Parse(DateOnlyLayout, s); err3 == nil {
		t.Time = parsed
		return nil
	}
	return fmt.Errorf("cannot parse record time %q: %w", s, err)
}
