package dashboard

import (
	"context"
	"time"

	"github.com/claude/healthdash/internal/metrics"
	"github.com/claude/healthdash/internal/models"
	"github.com/claude/healthdash/internal/provider"
	"github.com/claude/healthdash/internal/timerange"
)

// SleepResult is the stage breakdown of every session overlapping a day.
type SleepResult struct {
	Meta
	metrics.SleepSummary
	Sessions int `json:"sessions"`
}

// SleepSummary summarizes the sleep sessions the provider returns for the
// day containing day, including a night that began the evening before.
func (e *Engine) SleepSummary(ctx context.Context, day time.Time) (*SleepResult, error) {
	r := e.day(day)
	res, err := e.fetch(ctx, r, models.RecordSleepSession)
	if err != nil {
		return nil, err
	}
	sessions := e.norm.SleepSessions(res[0])
	return &SleepResult{
		Meta:         newMeta(r),
		SleepSummary: metrics.SummarizeSleep(sessions),
		Sessions:     len(sessions),
	}, nil
}

// DailySleepHours sums the sessions that start on the day, in hours
// rounded to one decimal.
func (e *Engine) DailySleepHours(ctx context.Context, day time.Time) (*TotalResult, error) {
	r := e.day(day)
	res, err := e.fetch(ctx, r, models.RecordSleepSession)
	if err != nil {
		return nil, err
	}
	hours := metrics.SleepHours(r, e.norm.SleepSessions(res[0]))
	return &TotalResult{Meta: newMeta(r), Total: metrics.Round1(hours), Unit: "h"}, nil
}

// WeeklySleepResult is seven days of sleep hours ending at a date.
type WeeklySleepResult struct {
	Meta
	Days   []metrics.WeeklyPoint `json:"days"`
	Timing *metrics.SleepTiming  `json:"timing"`
}

// WeeklySleep reads each of the 7 days ending with ref's day separately,
// all at once, and rolls them up oldest first.
func (e *Engine) WeeklySleep(ctx context.Context, ref time.Time) (*WeeklySleepResult, error) {
	week := timerange.WeekEnding(ref.In(e.loc))
	reqs := make([]models.ReadRequest, len(week))
	for i, d := range week {
		reqs[i] = provider.NewReadRequest(models.RecordSleepSession, d)
	}
	res, err := e.fetchRequests(ctx, reqs)
	if err != nil {
		return nil, err
	}

	// A session crossing midnight comes back for both days; keep it only
	// for the day it starts on.
	var started []models.SleepSessionRecord
	for i, d := range week {
		for _, s := range e.norm.SleepSessions(res[i]) {
			if d.Contains(s.StartTime.Time) {
				started = append(started, s)
			}
		}
	}
	return &WeeklySleepResult{
		Meta:   newMeta(week[len(week)-1]),
		Days:   metrics.WeeklySleep(week, started),
		Timing: metrics.SummarizeSleepTiming(started, e.loc),
	}, nil
}
