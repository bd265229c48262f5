package api

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/arefai/juzdigest/internal/config"
	"github.com/arefai/juzdigest/internal/generate"
)

func testServer(t *testing.T) (*Server, string) {
	t.Helper()
	dir := t.TempDir()
	cfg := config.Config{
		OutputDir:    dir,
		RamadanStart: "2026-02-17",
		JuzOverride:  3,
		APIKey:       "test-key",
	}
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	runner := generate.NewLocal(cfg, log)
	return NewServer(runner, log, cfg), dir
}

func TestHealth(t *testing.T) {
	s, _ := testServer(t)
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if got := rec.Body.String(); got != `{"status":"ok"}` {
		t.Errorf("unexpected body: %s", got)
	}
}

func TestAuth(t *testing.T) {
	s, _ := testServer(t)

	tests := []struct {
		name   string
		header string
		want   int
	}{
		{"no header", "", http.StatusUnauthorized},
		{"wrong scheme", "Basic dGVzdA==", http.StatusUnauthorized},
		{"wrong key", "Bearer nope", http.StatusUnauthorized},
		{"valid key", "Bearer test-key", http.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/generate/status", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			s.ServeHTTP(rec, req)
			if rec.Code != tt.want {
				t.Errorf("expected %d, got %d", tt.want, rec.Code)
			}
		})
	}
}

func TestStatus_InitiallyIdle(t *testing.T) {
	s, _ := testServer(t)
	req := httptest.NewRequest(http.MethodGet, "/api/generate/status", nil)
	req.Header.Set("Authorization", "Bearer test-key")
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)

	var state RunState
	if err := json.Unmarshal(rec.Body.Bytes(), &state); err != nil {
		t.Fatalf("decode status: %v", err)
	}
	if state.Status != StatusIdle {
		t.Errorf("expected idle, got %s", state.Status)
	}
}

func TestGenerate_RunsToCompletion(t *testing.T) {
	s, dir := testServer(t)

	req := httptest.NewRequest(http.MethodPost, "/api/generate", nil)
	req.Header.Set("Authorization", "Bearer test-key")
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)
	if rec.Code != http.StatusAccepted {
		t.Fatalf("expected 202, got %d: %s", rec.Code, rec.Body.String())
	}

	state := waitForFinish(t, s)
	if state.Status != StatusCompleted {
		t.Fatalf("expected completed, got %s (error %q)", state.Status, state.Error)
	}
	if state.JuzNumber != 3 {
		t.Errorf("expected juz 3, got %d", state.JuzNumber)
	}
	if _, err := os.Stat(filepath.Join(dir, "juz-3.html")); err != nil {
		t.Errorf("generated page missing: %v", err)
	}
}

func TestGenerate_ConflictWhileRunning(t *testing.T) {
	s, _ := testServer(t)

	// Hold the running state directly; the local runner finishes too fast
	// to race against over HTTP.
	s.mu.Lock()
	s.state = RunState{Status: StatusRunning}
	s.mu.Unlock()

	req := httptest.NewRequest(http.MethodPost, "/api/generate", nil)
	req.Header.Set("Authorization", "Bearer test-key")
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)
	if rec.Code != http.StatusConflict {
		t.Errorf("expected 409, got %d", rec.Code)
	}
}

func TestStaticSite(t *testing.T) {
	s, dir := testServer(t)
	if err := os.WriteFile(filepath.Join(dir, "index.html"), []byte("<html>archive</html>"), 0o644); err != nil {
		t.Fatal(err)
	}

	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if got := rec.Body.String(); got != "<html>archive</html>" {
		t.Errorf("unexpected body: %s", got)
	}
}

func waitForFinish(t *testing.T, s *Server) RunState {
	t.Helper()
	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		s.mu.Lock()
		state := s.state
		s.mu.Unlock()
		if state.Status != StatusRunning {
			return state
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatal("generation run did not finish in time")
	return RunState{}
}
