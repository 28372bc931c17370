package models

import (
	"encoding/json"
	"testing"
	"time"
)

// TestRecordTime_Parse verifies that every timestamp layout seen in provider
// payloads parses to the same instant.
func TestRecordTime_Parse(t *testing.T) {
	want := time.Date(2024, 3, 10, 8, 0, 0, 0, time.UTC)
	cases := []struct {
		name  string
		input string
		want  time.Time
	}{
		{"rfc3339", "2024-03-10T08:00:00Z", want},
		{"rfc3339 nano", "2024-03-10T08:00:00.000Z", want},
		{"rfc3339 offset", "2024-03-10T09:00:00+01:00", want},
		{"export layout", "2024-03-10 08:00:00 +0000", want},
		{"date only", "2024-03-10", time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var got RecordTime
			if err := got.Parse(tc.input); err != nil {
				t.Fatalf("Parse(%q): %v", tc.input, err)
			}
			if !got.Equal(tc.want) {
				t.Errorf("Parse(%q) = %v, want %v", tc.input, got.Time, tc.want)
			}
		})
	}
}

// TestRecordTime_ParseInvalid verifies that garbage input returns an error
// rather than a zero time.
func TestRecordTime_ParseInvalid(t *testing.T) {
	for _, s := range []string{"", "yesterday", "10/03/2024"} {
		var got RecordTime
		if err := got.Parse(s); err == nil {
			t.Errorf("Parse(%q): expected error", s)
		}
	}
}

// TestRecordTime_JSON verifies that RecordTime marshals as RFC 3339 and reads
// back the same instant.
func TestRecordTime_JSON(t *testing.T) {
	in := RecordTime{time.Date(2024, 3, 10, 8, 30, 0, 0, time.UTC)}
	data, err := json.Marshal(in)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != `"2024-03-10T08:30:00Z"` {
		t.Errorf("Marshal = %s", data)
	}
	var out RecordTime
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatal(err)
	}
	if !out.Equal(in.Time) {
		t.Errorf("round trip = %v, want %v", out.Time, in.Time)
	}
}
