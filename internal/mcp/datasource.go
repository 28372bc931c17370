package mcp

import (
	"context"
	"time"

	"github.com/claude/healthdash/internal/dashboard"
)

// DataSource is the query surface MCP tools read from. *dashboard.Engine
// satisfies it; tests substitute an engine over a canned provider.
type DataSource interface {
	Location() *time.Location
	Snapshot(ctx context.Context, day time.Time) (*dashboard.Snapshot, error)
	StepIntervals(ctx context.Context, day time.Time, intervalMinutes int) (*dashboard.StepIntervalsResult, error)
	StepHistory(ctx context.Context, from, to time.Time) (*dashboard.HistoryResult, error)
	HeartRateZones(ctx context.Context, day time.Time, age int, mode string) (*dashboard.ZonesResult, error)
	SleepSummary(ctx context.Context, day time.Time) (*dashboard.SleepResult, error)
	WeeklySleep(ctx context.Context, ref time.Time) (*dashboard.WeeklySleepResult, error)
	Exercises(ctx context.Context, from, to time.Time) (*dashboard.ExercisesResult, error)
	ExerciseDetail(ctx context.Context, day time.Time, id string) (*dashboard.ExerciseDetailResult, error)
}

// Compile-time check: *dashboard.Engine satisfies DataSource.
var _ DataSource = (*dashboard.Engine)(nil)
