// Package api serves the generated site and exposes an authenticated
// endpoint to trigger a generation run.
package api

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/arefai/juzdigest/internal/config"
	"github.com/arefai/juzdigest/internal/generate"
)

// RunStatus is the lifecycle of the most recent generation run.
type RunStatus string

const (
	StatusIdle      RunStatus = "idle"
	StatusRunning   RunStatus = "running"
	StatusCompleted RunStatus = "completed"
	StatusSkipped   RunStatus = "skipped"
	StatusFailed    RunStatus = "failed"
)

// RunState is the JSON snapshot returned by the status endpoint.
type RunState struct {
	Status     RunStatus `json:"status"`
	JuzNumber  int       `json:"juz_number,omitempty"`
	WordCount  int       `json:"word_count,omitempty"`
	StartedAt  string    `json:"started_at,omitempty"`
	FinishedAt string    `json:"finished_at,omitempty"`
	Error      string    `json:"error,omitempty"`
}

// Server is the HTTP server for juzdigest's serve mode.
type Server struct {
	router chi.Router
	runner *generate.Runner
	log    *slog.Logger
	cfg    config.Config

	mu    sync.Mutex
	state RunState
}

// NewServer creates and configures the HTTP server.
func NewServer(runner *generate.Runner, log *slog.Logger, cfg config.Config) *Server {
	s := &Server{
		runner: runner,
		log:    log,
		cfg:    cfg,
		state:  RunState{Status: StatusIdle},
	}
	s.setupRoutes()
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) setupRoutes() {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(RequestLogger(s.log))

	r.Get("/health", s.handleHealth)

	r.Group(func(r chi.Router) {
		r.Use(AuthMiddleware(s.cfg.APIKey, s.log))

		r.Post("/api/generate", s.handleGenerate)
		r.Get("/api/generate/status", s.handleStatus)
	})

	// Everything else is the generated static site.
	r.Handle("/*", http.FileServer(http.Dir(s.cfg.OutputDir)))

	s.router = r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}

func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	if !s.TriggerGenerate() {
		writeJSON(w, http.StatusConflict, map[string]string{"error": "a generation run is already in progress"})
		return
	}
	writeJSON(w, http.StatusAccepted, map[string]string{"status": "started"})
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	state := s.state
	s.mu.Unlock()
	writeJSON(w, http.StatusOK, state)
}

// TriggerGenerate starts a run in the background unless one is already in
// progress. Returns false when busy. Used by both the HTTP endpoint and the
// cron schedule.
func (s *Server) TriggerGenerate() bool {
	s.mu.Lock()
	if s.state.Status == StatusRunning {
		s.mu.Unlock()
		return false
	}
	started := time.Now()
	s.state = RunState{Status: StatusRunning, StartedAt: started.Format(time.RFC3339)}
	s.mu.Unlock()

	go func() {
		res, err := s.runner.Run(context.Background())

		s.mu.Lock()
		defer s.mu.Unlock()
		s.state.FinishedAt = time.Now().Format(time.RFC3339)
		switch {
		case err != nil:
			s.log.Error("generation run failed", "error", err)
			s.state.Status = StatusFailed
			s.state.Error = err.Error()
		case res.Skipped:
			s.state.Status = StatusSkipped
		default:
			s.state.Status = StatusCompleted
			s.state.JuzNumber = res.JuzNumber
			s.state.WordCount = res.WordCount
		}
	}()
	return true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
