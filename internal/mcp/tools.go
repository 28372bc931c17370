package mcp

import (
	"context"
	"time"

	"github.com/claude/healthdash/internal/dashboard"
	"github.com/claude/healthdash/internal/timerange"
	"github.com/mark3labs/mcp-go/mcp"
)

// parseDate reads a YYYY-MM-DD argument in loc; empty means today.
func parseDate(loc *time.Location, s string) (time.Time, error) {
	if s == "" {
		return time.Now().In(loc), nil
	}
	return timerange.ParseDay(s, loc)
}

// dateRange returns start/end defaulting to the seven days ending today.
func dateRange(loc *time.Location, startStr, endStr string) (time.Time, time.Time, error) {
	end, err := parseDate(loc, endStr)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	if startStr == "" {
		return end.AddDate(0, 0, -6), end, nil
	}
	start, err := parseDate(loc, startStr)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return start, end, nil
}

// --- Tool definitions ---

var dateArg = mcp.WithString("date", mcp.Description("Day to query (YYYY-MM-DD). Defaults to today."))

var toolGetDashboard = mcp.NewTool("get_dashboard",
	mcp.WithDescription("Get the dashboard snapshot for a day: calories, steps, distance, sleep hours, heart rate stats, estimated resting heart rate, latest SpO2 and VO2 max."),
	dateArg,
)

var toolGetDailyTotals = mcp.NewTool("get_daily_totals",
	mcp.WithDescription("Get calories (kcal), steps, distance (km) and sleep hours for a single day."),
	dateArg,
)

var toolGetStepIntervals = mcp.NewTool("get_step_intervals",
	mcp.WithDescription("Get steps bucketed into fixed-width intervals across a day. The buckets sum to the day's step total."),
	dateArg,
	mcp.WithNumber("interval", mcp.Description("Bucket width in minutes (1-1440). Defaults to the configured interval.")),
)

var toolGetStepHistory = mcp.NewTool("get_step_history",
	mcp.WithDescription("Get daily step totals over a date range."),
	mcp.WithString("start", mcp.Description("First day (YYYY-MM-DD). Defaults to 6 days before end.")),
	mcp.WithString("end", mcp.Description("Last day (YYYY-MM-DD). Defaults to today.")),
)

var toolGetHeartRateZones = mcp.NewTool("get_heart_rate_zones",
	mcp.WithDescription("Break a day's heart rate into five zones (light, moderate, aerobic, anaerobic, vo2max) derived from age."),
	dateArg,
	mcp.WithNumber("age", mcp.Description("Age in years. Defaults to the configured profile age.")),
	mcp.WithString("mode", mcp.Description("Weight zones by time between samples or by sample count."), mcp.Enum(dashboard.ZoneModeDuration, dashboard.ZoneModeCount)),
)

var toolGetSleepSummary = mcp.NewTool("get_sleep_summary",
	mcp.WithDescription("Get the sleep stage breakdown (deep, light, REM, awake) and sessions for a day."),
	dateArg,
)

var toolGetWeeklySleep = mcp.NewTool("get_weekly_sleep",
	mcp.WithDescription("Get sleep hours for the seven days ending on a date, plus average bedtime, wake time and their consistency."),
	dateArg,
)

var toolGetExercises = mcp.NewTool("get_exercises",
	mcp.WithDescription("List exercise sessions over a date range with active calories burned."),
	mcp.WithString("start", mcp.Description("First day (YYYY-MM-DD). Defaults to 6 days before end.")),
	mcp.WithString("end", mcp.Description("Last day (YYYY-MM-DD). Defaults to today.")),
)

var toolGetExerciseDetail = mcp.NewTool("get_exercise_detail",
	mcp.WithDescription("Get one exercise session with calories, steps, distance, heart rate stats and zones."),
	mcp.WithString("id", mcp.Required(), mcp.Description("Session id from get_exercises")),
	mcp.WithString("date", mcp.Required(), mcp.Description("Day the session started (YYYY-MM-DD)")),
)

// --- Tool handlers ---

func (h *handlers) getDashboard(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	day, err := parseDate(h.ds.Location(), req.GetString("date", ""))
	if err != nil {
		return mcp.NewToolResultError("invalid date: " + err.Error()), nil
	}
	snap, err := h.ds.Snapshot(ctx, day)
	if err != nil {
		h.log.Error("mcp get_dashboard", "error", err)
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}
	return jsonResult(snap)
}

func (h *handlers) getDailyTotals(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	day, err := parseDate(h.ds.Location(), req.GetString("date", ""))
	if err != nil {
		return mcp.NewToolResultError("invalid date: " + err.Error()), nil
	}

	snap, err := h.ds.Snapshot(ctx, day)
	if err != nil {
		return h.queryFailed("get_daily_totals", err), nil
	}

	return jsonResult(map[string]any{
		"date":        snap.Date,
		"calories":    snap.Calories,
		"steps":       snap.Steps,
		"distance_km": snap.DistanceKm,
		"sleep_hours": snap.SleepHours,
	})
}

func (h *handlers) getStepIntervals(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	day, err := parseDate(h.ds.Location(), req.GetString("date", ""))
	if err != nil {
		return mcp.NewToolResultError("invalid date: " + err.Error()), nil
	}
	res, err := h.ds.StepIntervals(ctx, day, req.GetInt("interval", 0))
	if err != nil {
		return h.queryFailed("get_step_intervals", err), nil
	}
	return jsonResult(res)
}

func (h *handlers) getStepHistory(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	start, end, err := dateRange(h.ds.Location(), req.GetString("start", ""), req.GetString("end", ""))
	if err != nil {
		return mcp.NewToolResultError("invalid date: " + err.Error()), nil
	}
	res, err := h.ds.StepHistory(ctx, start, end)
	if err != nil {
		return h.queryFailed("get_step_history", err), nil
	}
	return jsonResult(res)
}

func (h *handlers) getHeartRateZones(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	day, err := parseDate(h.ds.Location(), req.GetString("date", ""))
	if err != nil {
		return mcp.NewToolResultError("invalid date: " + err.Error()), nil
	}
	res, err := h.ds.HeartRateZones(ctx, day, req.GetInt("age", 0), req.GetString("mode", ""))
	if err != nil {
		return h.queryFailed("get_heart_rate_zones", err), nil
	}
	return jsonResult(res)
}

func (h *handlers) getSleepSummary(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	day, err := parseDate(h.ds.Location(), req.GetString("date", ""))
	if err != nil {
		return mcp.NewToolResultError("invalid date: " + err.Error()), nil
	}
	res, err := h.ds.SleepSummary(ctx, day)
	if err != nil {
		return h.queryFailed("get_sleep_summary", err), nil
	}
	return jsonResult(res)
}

func (h *handlers) getWeeklySleep(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	day, err := parseDate(h.ds.Location(), req.GetString("date", ""))
	if err != nil {
		return mcp.NewToolResultError("invalid date: " + err.Error()), nil
	}
	res, err := h.ds.WeeklySleep(ctx, day)
	if err != nil {
		return h.queryFailed("get_weekly_sleep", err), nil
	}
	return jsonResult(res)
}

func (h *handlers) getExercises(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	start, end, err := dateRange(h.ds.Location(), req.GetString("start", ""), req.GetString("end", ""))
	if err != nil {
		return mcp.NewToolResultError("invalid date: " + err.Error()), nil
	}
	res, err := h.ds.Exercises(ctx, start, end)
	if err != nil {
		return h.queryFailed("get_exercises", err), nil
	}
	return jsonResult(res)
}

func (h *handlers) getExerciseDetail(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := req.RequireString("id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	dateStr, err := req.RequireString("date")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	day, err := parseDate(h.ds.Location(), dateStr)
	if err != nil {
		return mcp.NewToolResultError("invalid date: " + err.Error()), nil
	}
	res, err := h.ds.ExerciseDetail(ctx, day, id)
	if err != nil {
		return h.queryFailed("get_exercise_detail", err), nil
	}
	return jsonResult(res)
}

func (h *handlers) queryFailed(tool string, err error) *mcp.CallToolResult {
	h.log.Error("mcp "+tool, "error", err)
	return mcp.NewToolResultError("query failed: " + err.Error())
}

func jsonResult(v any) (*mcp.CallToolResult, error) {
	result, err := mcp.NewToolResultJSON(v)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}
