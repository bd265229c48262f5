package generate

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/arefai/juzdigest/internal/config"
	"github.com/arefai/juzdigest/internal/site"
	"github.com/arefai/juzdigest/internal/tafsir"
)

type fakeFetcher struct {
	entries []tafsir.Entry
	err     error
}

func (f *fakeFetcher) FetchJuz(ctx context.Context, juzNumber int) ([]tafsir.Entry, error) {
	return f.entries, f.err
}

type fakeSummarizer struct {
	summary string
	err     error
	gotText string
	gotJuz  int
}

func (f *fakeSummarizer) Summarize(ctx context.Context, plainText string, juzNumber int) (string, error) {
	f.gotText = plainText
	f.gotJuz = juzNumber
	return f.summary, f.err
}

func testConfig(t *testing.T) config.Config {
	t.Helper()
	cfg := config.Config{
		OutputDir:    t.TempDir(),
		RamadanStart: "2026-02-17",
		JuzOverride:  7,
	}
	return cfg
}

func discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestRun_WritesPageManifestAndIndex(t *testing.T) {
	cfg := testConfig(t)
	fetcher := &fakeFetcher{entries: []tafsir.Entry{
		{VerseKey: "7:1", Text: "<p>Commentary one two three.</p>", Uthmani: "المص"},
		{VerseKey: "7:2", Text: "<p>More words here.</p>"},
	}}
	summarizer := &fakeSummarizer{summary: "## Juz 7\n\nA short digest."}

	r := New(cfg, fetcher, summarizer, discard())
	res, err := r.Run(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Skipped {
		t.Fatal("run should not be skipped")
	}
	if res.JuzNumber != 7 {
		t.Errorf("expected juz 7, got %d", res.JuzNumber)
	}
	if summarizer.gotJuz != 7 {
		t.Errorf("summarizer received juz %d", summarizer.gotJuz)
	}
	if !strings.Contains(summarizer.gotText, "[7:1]") {
		t.Errorf("summarizer input missing verse marker: %q", summarizer.gotText)
	}

	page, err := os.ReadFile(filepath.Join(cfg.OutputDir, "juz-7.html"))
	if err != nil {
		t.Fatalf("page not written: %v", err)
	}
	if !strings.Contains(string(page), "A short digest.") {
		t.Error("page missing summary content")
	}

	m, err := site.LoadManifest(filepath.Join(cfg.OutputDir, "manifest.json"))
	if err != nil {
		t.Fatalf("manifest not written: %v", err)
	}
	entry, ok := m.Get(7)
	if !ok {
		t.Fatal("manifest missing juz 7")
	}
	if entry.WordCount != res.WordCount {
		t.Errorf("manifest word count %d, result %d", entry.WordCount, res.WordCount)
	}

	index, err := os.ReadFile(filepath.Join(cfg.OutputDir, "index.html"))
	if err != nil {
		t.Fatalf("index not written: %v", err)
	}
	if !strings.Contains(string(index), `href="juz-7.html"`) {
		t.Error("index missing link to generated page")
	}
}

func TestRun_SkipsOutsideSchedule(t *testing.T) {
	cfg := testConfig(t)
	cfg.JuzOverride = 0

	r := New(cfg, &fakeFetcher{}, &fakeSummarizer{}, discard())
	r.now = func() time.Time {
		return time.Date(2026, time.April, 1, 9, 0, 0, 0, time.UTC)
	}

	res, err := r.Run(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !res.Skipped {
		t.Error("run after the window should be skipped")
	}
	if _, err := os.Stat(filepath.Join(cfg.OutputDir, "index.html")); !errors.Is(err, os.ErrNotExist) {
		t.Error("skipped run must not write anything")
	}
}

func TestRun_FetchFailureWritesNothing(t *testing.T) {
	cfg := testConfig(t)
	r := New(cfg, &fakeFetcher{err: errors.New("api down")}, &fakeSummarizer{}, discard())

	if _, err := r.Run(context.Background()); err == nil {
		t.Fatal("expected fetch error")
	}
	entries, _ := os.ReadDir(cfg.OutputDir)
	if len(entries) != 0 {
		t.Errorf("failed run must not write files, found %d", len(entries))
	}
}

func TestRun_SummarizeFailureWritesNothing(t *testing.T) {
	cfg := testConfig(t)
	fetcher := &fakeFetcher{entries: []tafsir.Entry{{VerseKey: "7:1", Text: "text"}}}
	r := New(cfg, fetcher, &fakeSummarizer{err: errors.New("model unavailable")}, discard())

	_, err := r.Run(context.Background())
	if err == nil {
		t.Fatal("expected summarize error")
	}
	if !strings.Contains(err.Error(), "summarise juz 7") {
		t.Errorf("unexpected error: %v", err)
	}
	entries, _ := os.ReadDir(cfg.OutputDir)
	if len(entries) != 0 {
		t.Errorf("failed run must not write files, found %d", len(entries))
	}
}

func TestRun_NoEntries(t *testing.T) {
	cfg := testConfig(t)
	r := New(cfg, &fakeFetcher{}, &fakeSummarizer{}, discard())

	if _, err := r.Run(context.Background()); err == nil {
		t.Fatal("expected error for empty juz")
	}
}

func TestRun_Local(t *testing.T) {
	cfg := testConfig(t)
	r := NewLocal(cfg, discard())

	res, err := r.Run(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.PagePath == "" {
		t.Fatal("expected a page path")
	}
	page, err := os.ReadFile(res.PagePath)
	if err != nil {
		t.Fatalf("page not written: %v", err)
	}
	if !strings.Contains(string(page), "Juz 7") {
		t.Error("local page missing juz heading")
	}
}
