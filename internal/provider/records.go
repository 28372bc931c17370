package provider

import (
	"github.com/claude/healthdash/internal/models"
)

// Both database sources read a records table:
//
//	record_type TEXT   NOT NULL
//	start_time  BIGINT NOT NULL
//	end_time    BIGINT NOT NULL
//	payload     TEXT   NOT NULL
//
// Times are unix milliseconds; instant records store the same value in both
// columns. payload holds the record exactly as the provider returned it.

// A record matches a "between" filter when it starts before the filter end
// and has not ended before the filter start, so sessions that cross
// midnight are returned for both days.
func filterBounds(req models.ReadRequest) (start, end int64) {
	return req.TimeRangeFilter.StartTime.UnixMilli(), req.TimeRangeFilter.EndTime.UnixMilli()
}

func collect(payloads []string) *models.ReadResponse {
	resp := &models.ReadResponse{Records: make([]models.RawRecord, 0, len(payloads))}
	for _, p := range payloads {
		resp.Records = append(resp.Records, models.RawRecord(p))
	}
	return resp
}
