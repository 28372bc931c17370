// Package dashboard answers the dashboard's queries. Each operation builds
// its provider requests, fetches them concurrently, normalizes the raw
// records and reduces them with the metrics package. Nothing is cached or
// shared between calls, so an Engine is safe for concurrent use.
package dashboard

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/claude/healthdash/internal/metrics"
	"github.com/claude/healthdash/internal/models"
	"github.com/claude/healthdash/internal/normalize"
	"github.com/claude/healthdash/internal/provider"
	"github.com/claude/healthdash/internal/timerange"
	"github.com/google/uuid"
)

var (
	// ErrInvalidInput is returned for caller mistakes: bad dates, intervals,
	// ages or ids.
	ErrInvalidInput = errors.New("invalid input")
	// ErrNotFound is returned when a requested exercise session does not exist.
	ErrNotFound = errors.New("not found")
)

// MaxHistoryDays bounds range queries.
const MaxHistoryDays = 366

// Options configures an Engine.
type Options struct {
	// Location is the user's time zone; day boundaries are computed in it.
	Location *time.Location
	// Age drives the heart rate zones when a query does not give one.
	Age int
	// StepIntervalMinutes is the default bucket width for step intervals.
	StepIntervalMinutes int
}

// Engine runs dashboard queries against a provider Source.
type Engine struct {
	src          provider.Source
	norm         *normalize.Normalizer
	log          *slog.Logger
	loc          *time.Location
	age          int
	stepInterval int
	now          func() time.Time
}

// New creates an Engine.
func New(src provider.Source, opts Options, log *slog.Logger) *Engine {
	loc := opts.Location
	if loc == nil {
		loc = time.Local
	}
	interval := opts.StepIntervalMinutes
	if !timerange.ValidInterval(interval) {
		interval = timerange.DefaultIntervalMinutes
	}
	return &Engine{
		src:          src,
		norm:         normalize.New(log),
		log:          log,
		loc:          loc,
		age:          opts.Age,
		stepInterval: interval,
		now:          time.Now,
	}
}

// Location returns the time zone day boundaries are computed in.
func (e *Engine) Location() *time.Location {
	return e.loc
}

// Meta identifies one query result. QueryID is fresh for every call, and
// Date echoes the day that was asked for, so a consumer that has moved on to
// another date can recognize and drop a late result.
type Meta struct {
	QueryID uuid.UUID `json:"query_id"`
	Date    string    `json:"date"`
}

func newMeta(day timerange.Range) Meta {
	return Meta{QueryID: uuid.New(), Date: day.Date()}
}

// Status reports whether the provider is reachable.
func (e *Engine) Status(ctx context.Context) error {
	return e.src.Ping(ctx)
}

// day returns the calendar day containing t in the engine's location.
func (e *Engine) day(t time.Time) timerange.Range {
	return timerange.Day(t.In(e.loc))
}

// fetch reads every record type over r in one concurrent batch.
func (e *Engine) fetch(ctx context.Context, r timerange.Range, recordTypes ...string) ([][]models.RawRecord, error) {
	reqs := make([]models.ReadRequest, len(recordTypes))
	for i, rt := range recordTypes {
		reqs[i] = provider.NewReadRequest(rt, r)
	}
	return e.fetchRequests(ctx, reqs)
}

func (e *Engine) fetchRequests(ctx context.Context, reqs []models.ReadRequest) ([][]models.RawRecord, error) {
	start := time.Now()
	res, err := provider.FetchAll(ctx, e.src, reqs...)
	if err != nil {
		return nil, err
	}
	e.log.Debug("fetched records", "requests", len(reqs), "took", time.Since(start))
	return res, nil
}

// resolveAge returns age, or the configured age when age is 0.
func (e *Engine) resolveAge(age int) (int, error) {
	if age == 0 {
		age = e.age
	}
	if err := metrics.ValidateAge(age); err != nil {
		return 0, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	return age, nil
}
