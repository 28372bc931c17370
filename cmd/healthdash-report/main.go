package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/claude/healthdash/internal/config"
	"github.com/claude/healthdash/internal/dashboard"
	"github.com/claude/healthdash/internal/metrics"
	"github.com/claude/healthdash/internal/provider"
	"github.com/claude/healthdash/internal/timerange"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file (empty: env only)")
	envFile := flag.String("env-file", ".env", "optional .env file loaded before config")
	date := flag.String("date", "", "day to report (YYYY-MM-DD, default today)")
	age := flag.Int("age", 0, "age for heart rate zones (default: profile age)")
	flag.Parse()

	log := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

	if err := config.LoadDotEnv(*envFile); err != nil {
		log.Error("failed to load env file", "error", err)
		os.Exit(1)
	}

	// Load config
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	loc, err := cfg.Profile.Location()
	if err != nil {
		log.Error("invalid time zone", "error", err)
		os.Exit(1)
	}

	day := time.Now().In(loc)
	if *date != "" {
		day, err = timerange.ParseDay(*date, loc)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Usage: healthdash-report -config config.yaml [-date YYYY-MM-DD] [-age N]\n")
			flag.PrintDefaults()
			os.Exit(1)
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	src, closeSrc, err := provider.Open(ctx, cfg.Provider)
	if err != nil {
		log.Error("failed to open provider", "kind", cfg.Provider.Kind, "error", err)
		os.Exit(1)
	}
	defer closeSrc()

	engine := dashboard.New(src, dashboard.Options{
		Location:            loc,
		Age:                 cfg.Profile.Age,
		StepIntervalMinutes: cfg.Dashboard.StepIntervalMinutes,
	}, log)

	if err := report(ctx, log, engine, day, *age); err != nil {
		log.Error("report failed", "error", err)
		os.Exit(1)
	}
}

// report runs the day's queries one after another and logs each result.
func report(ctx context.Context, log *slog.Logger, engine *dashboard.Engine, day time.Time, age int) error {
	snap, err := engine.Snapshot(ctx, day)
	if err != nil {
		return fmt.Errorf("snapshot: %w", err)
	}
	printSnapshot(log, snap)

	sleep, err := engine.SleepSummary(ctx, day)
	if err != nil {
		return fmt.Errorf("sleep summary: %w", err)
	}
	printSleep(log, sleep)

	zones, err := engine.HeartRateZones(ctx, day, age, dashboard.ZoneModeDuration)
	if err != nil {
		return fmt.Errorf("heart rate zones: %w", err)
	}
	printZones(log, zones)

	week, err := engine.WeeklySleep(ctx, day)
	if err != nil {
		return fmt.Errorf("weekly sleep: %w", err)
	}
	for _, p := range week.Days {
		log.Info("weekly sleep", "date", p.Date, "hours", p.Hours)
	}
	if week.Timing != nil {
		log.Info("sleep timing",
			"nights", week.Timing.Nights,
			"avg_bedtime", week.Timing.AvgBedtime,
			"avg_waketime", week.Timing.AvgWaketime,
			"bedtime_stddev_hr", week.Timing.BedtimeConsistencyStdHr,
		)
	}
	return nil
}

func printSnapshot(log *slog.Logger, s *dashboard.Snapshot) {
	log.Info("daily totals",
		"date", s.Date,
		"calories_kcal", s.Calories,
		"steps", s.Steps,
		"distance_km", s.DistanceKm,
		"sleep_hours", s.SleepHours,
	)
	log.Info("latest readings",
		"heart_rate", reading(s.HeartRate),
		"resting_estimate", optional(s.RestingEstimate),
		"spo2", reading(s.OxygenSaturation),
		"vo2max", reading(s.Vo2Max),
	)
}

func printSleep(log *slog.Logger, s *dashboard.SleepResult) {
	args := []any{"sessions", s.Sessions, "total", time.Duration(s.TotalDurationMillis) * time.Millisecond}
	for _, st := range s.Stages {
		args = append(args, st.Stage, time.Duration(st.DurationMillis)*time.Millisecond)
	}
	log.Info("sleep", args...)
}

func printZones(log *slog.Logger, z *dashboard.ZonesResult) {
	log.Info("heart rate zones", "age", z.Age, "max_hr", z.MaxHeartRate)
	for _, b := range z.Zones {
		log.Info("zone",
			"zone", b.Zone,
			"minutes", metrics.Round1(b.DurationSeconds/60),
			"percent", b.Percentage,
		)
	}
}

func reading(r *metrics.LatestReading) string {
	if r == nil {
		return "none"
	}
	return fmt.Sprintf("%g at %s", r.Value, r.Time.Format("15:04"))
}

func optional(v *float64) string {
	if v == nil {
		return "none"
	}
	return fmt.Sprintf("%g", *v)
}
