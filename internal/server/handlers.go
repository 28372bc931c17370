package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/claude/healthdash/internal/dashboard"
	"github.com/claude/healthdash/internal/provider"
	"github.com/claude/healthdash/internal/timerange"
	"github.com/go-chi/chi/v5"
)

// daily adapts a per-day engine query to a handler reading ?date=YYYY-MM-DD.
func daily[T any](s *Server, query func(context.Context, time.Time) (T, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		day, err := s.parseDate(r, "date")
		if err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
			return
		}
		res, err := query(r.Context(), day)
		if err != nil {
			s.writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, res)
	}
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	if err := s.engine.Status(r.Context()); err != nil {
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{
			"status": "unavailable",
			"error":  err.Error(),
		})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleStepIntervals(w http.ResponseWriter, r *http.Request) {
	day, err := s.parseDate(r, "date")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	interval, err := parseInt(r, "interval")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	res, err := s.engine.StepIntervals(r.Context(), day, interval)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

func (s *Server) handleStepHistory(w http.ResponseWriter, r *http.Request) {
	from, to, err := s.parseRange(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	res, err := s.engine.StepHistory(r.Context(), from, to)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

func (s *Server) handleZones(w http.ResponseWriter, r *http.Request) {
	day, err := s.parseDate(r, "date")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	age, err := parseInt(r, "age")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	res, err := s.engine.HeartRateZones(r.Context(), day, age, r.URL.Query().Get("mode"))
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

func (s *Server) handleExercises(w http.ResponseWriter, r *http.Request) {
	from, to, err := s.parseRange(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	res, err := s.engine.Exercises(r.Context(), from, to)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

func (s *Server) handleExerciseDetail(w http.ResponseWriter, r *http.Request) {
	day, err := s.parseDate(r, "date")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	res, err := s.engine.ExerciseDetail(r.Context(), day, chi.URLParam(r, "id"))
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

// writeError maps engine errors onto HTTP status codes.
func (s *Server) writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, dashboard.ErrInvalidInput):
		status = http.StatusBadRequest
	case errors.Is(err, dashboard.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, provider.ErrUnavailable):
		status = http.StatusServiceUnavailable
	case errors.Is(err, context.Canceled):
		// Client went away; nobody reads the body.
		return
	default:
		s.log.Error("query failed", "error", err)
	}
	writeJSON(w, status, map[string]string{"error": err.Error()})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// parseDate reads a YYYY-MM-DD query parameter in the engine's time zone.
// A missing parameter means today.
func (s *Server) parseDate(r *http.Request, key string) (time.Time, error) {
	v := r.URL.Query().Get(key)
	if v == "" {
		return time.Now().In(s.engine.Location()), nil
	}
	day, err := timerange.ParseDay(v, s.engine.Location())
	if err != nil {
		return time.Time{}, fmt.Errorf("%s: %w", key, err)
	}
	return day, nil
}

// parseRange reads ?from= and ?to=. Both default so that a bare request
// covers the last seven days ending today.
func (s *Server) parseRange(r *http.Request) (from, to time.Time, err error) {
	to, err = s.parseDate(r, "to")
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	if r.URL.Query().Get("from") == "" {
		return to.AddDate(0, 0, -6), to, nil
	}
	from, err = s.parseDate(r, "from")
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return from, to, nil
}

// parseInt reads an optional integer query parameter; missing means 0.
func parseInt(r *http.Request, key string) (int, error) {
	v := r.URL.Query().Get(key)
	if v == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %q is not an integer", key, v)
	}
	return n, nil
}
