// Package provider reads raw health records from the platform health-data
// provider. The engine only sees the Source interface; concrete sources talk
// to an on-device Health Connect bridge over HTTP or read exported snapshots
// from SQLite or Postgres.
package provider

import (
	"context"
	"errors"

	"github.com/claude/healthdash/internal/models"
	"github.com/claude/healthdash/internal/timerange"
)

// ErrUnavailable means the provider cannot be reached or does not support
// the request. It is always wrapped; test with errors.Is.
var ErrUnavailable = errors.New("health data provider unavailable")

// Source is the read-only contract with the health-data provider.
type Source interface {
	// ReadRecords returns every record of req.RecordType inside the filter.
	ReadRecords(ctx context.Context, req models.ReadRequest) (*models.ReadResponse, error)
	// Ping reports whether the provider is reachable and readable.
	Ping(ctx context.Context) error
}

// OperatorBetween is the only time filter operator the engine issues.
const OperatorBetween = "between"

// NewReadRequest builds a "between" request for recordType over r.
func NewReadRequest(recordType string, r timerange.Range) models.ReadRequest {
	return models.ReadRequest{
		RecordType: recordType,
		TimeRangeFilter: models.TimeRangeFilter{
			Operator:  OperatorBetween,
			StartTime: models.RecordTime{Time: r.Start},
			EndTime:   models.RecordTime{Time: r.End},
		},
	}
}
