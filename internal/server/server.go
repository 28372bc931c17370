package server

import (
	"log/slog"
	"net/http"

	"github.com/claude/healthdash/internal/dashboard"
	"github.com/go-chi/chi/v5"
)

// Server holds dependencies for HTTP handlers.
type Server struct {
	engine *dashboard.Engine
	log    *slog.Logger
	router chi.Router
}

// New creates a new Server with all routes configured.
func New(engine *dashboard.Engine, log *slog.Logger) *Server {
	s := &Server{
		engine: engine,
		log:    log,
		router: chi.NewRouter(),
	}
	s.routes()
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) routes() {
	s.router.Use(RequestLogging(s.log))
	s.router.Use(CORS)

	s.router.Route("/api/v1", func(r chi.Router) {
		r.Get("/status", s.handleStatus)
		r.Get("/dashboard", daily(s, s.engine.Snapshot))

		r.Get("/calories", daily(s, s.engine.DailyCalories))
		r.Get("/calories/samples", daily(s, s.engine.CalorieSamples))
		r.Get("/steps", daily(s, s.engine.DailySteps))
		r.Get("/steps/intervals", s.handleStepIntervals)
		r.Get("/steps/daily", s.handleStepHistory)
		r.Get("/distance", daily(s, s.engine.DailyDistance))

		r.Get("/heart-rate", daily(s, s.engine.HeartRate))
		r.Get("/heart-rate/latest", daily(s, s.engine.LatestHeartRate))
		r.Get("/heart-rate/resting", daily(s, s.engine.RestingHeartRate))
		r.Get("/heart-rate/zones", s.handleZones)
		r.Get("/vo2max", daily(s, s.engine.LatestVo2Max))
		r.Get("/oxygen", daily(s, s.engine.LatestOxygenSaturation))

		r.Get("/sleep", daily(s, s.engine.SleepSummary))
		r.Get("/sleep/hours", daily(s, s.engine.DailySleepHours))
		r.Get("/sleep/weekly", daily(s, s.engine.WeeklySleep))

		r.Get("/exercises", s.handleExercises)
		r.Get("/exercises/{id}", s.handleExerciseDetail)
	})
}

// Mount attaches another handler under pattern, e.g. the MCP endpoint.
func (s *Server) Mount(pattern string, h http.Handler) {
	s.router.Mount(pattern, h)
}
