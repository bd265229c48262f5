// Package generate orchestrates one end-to-end run: pick the day's juz,
// fetch its tafsir, summarise it, and write the site pages.
package generate

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/arefai/juzdigest/internal/config"
	"github.com/arefai/juzdigest/internal/juz"
	"github.com/arefai/juzdigest/internal/quran"
	"github.com/arefai/juzdigest/internal/site"
	"github.com/arefai/juzdigest/internal/tafsir"
)

// Fetcher supplies the tafsir entries for a juz.
type Fetcher interface {
	FetchJuz(ctx context.Context, juzNumber int) ([]tafsir.Entry, error)
}

// Summarizer compresses the flattened tafsir text into a markdown summary.
type Summarizer interface {
	Summarize(ctx context.Context, plainText string, juzNumber int) (string, error)
}

// Runner generates the page for one juz and refreshes the archive index.
type Runner struct {
	cfg        config.Config
	fetcher    Fetcher
	summarizer Summarizer
	log        *slog.Logger
	local      bool
	now        func() time.Time
}

func New(cfg config.Config, fetcher Fetcher, summarizer Summarizer, log *slog.Logger) *Runner {
	return &Runner{
		cfg:        cfg,
		fetcher:    fetcher,
		summarizer: summarizer,
		log:        log,
		now:        time.Now,
	}
}

// NewLocal returns a runner that uses canned tafsir and summary data and
// never touches the network. For template and development work.
func NewLocal(cfg config.Config, log *slog.Logger) *Runner {
	r := New(cfg, nil, nil, log)
	r.local = true
	return r
}

// Result describes a completed (or skipped) run.
type Result struct {
	JuzNumber    int
	WordCount    int
	SummaryWords int
	PagePath     string
	Skipped      bool
}

// Run executes one generation. When the schedule has run past juz 30 the
// run is a clean no-op with Skipped set. Any failure aborts before a page
// is written.
func (r *Runner) Run(ctx context.Context) (Result, error) {
	juzNumber := r.cfg.JuzOverride
	if juzNumber == 0 {
		juzNumber = juz.ForDate(r.now(), r.cfg.StartDate())
		if juzNumber == 0 {
			r.log.Info("all 30 juz have been completed, nothing to generate")
			return Result{Skipped: true}, nil
		}
	}

	log := r.log.With("juz", juzNumber, "name", juz.Names[juzNumber])
	log.Info("generating tafsir page", "local", r.local)

	var entries []tafsir.Entry
	if r.local {
		entries = quran.MockEntries(juzNumber)
	} else {
		var err error
		entries, err = r.fetcher.FetchJuz(ctx, juzNumber)
		if err != nil {
			return Result{}, fmt.Errorf("fetch juz %d: %w", juzNumber, err)
		}
	}
	if len(entries) == 0 {
		return Result{}, fmt.Errorf("juz %d: no tafsir entries", juzNumber)
	}
	log.Info("fetched tafsir entries", "entries", len(entries))

	plainText := tafsir.PlainText(entries)
	wordCount := tafsir.WordCount(plainText)
	log.Info("assembled source text", "words", wordCount)

	var summary string
	if r.local {
		summary = quran.MockSummary(juzNumber, juz.Names[juzNumber])
	} else {
		var err error
		summary, err = r.summarizer.Summarize(ctx, plainText, juzNumber)
		if err != nil {
			return Result{}, fmt.Errorf("summarise juz %d: %w", juzNumber, err)
		}
	}
	log.Info("summary ready", "summary_words", tafsir.WordCount(summary))

	now := r.now()
	pageHTML, err := site.RenderPage(juzNumber, summary, entries, wordCount, now)
	if err != nil {
		return Result{}, fmt.Errorf("render page: %w", err)
	}

	if err := os.MkdirAll(r.cfg.OutputDir, 0o755); err != nil {
		return Result{}, fmt.Errorf("create output dir: %w", err)
	}

	pagePath := filepath.Join(r.cfg.OutputDir, site.PageFilename(juzNumber))
	if err := os.WriteFile(pagePath, []byte(pageHTML), 0o644); err != nil {
		return Result{}, fmt.Errorf("write page: %w", err)
	}

	manifestPath := filepath.Join(r.cfg.OutputDir, "manifest.json")
	manifest, err := site.LoadManifest(manifestPath)
	if err != nil {
		return Result{}, err
	}
	manifest.Set(juzNumber, now.Format("2006-01-02"), wordCount)
	if err := manifest.Save(manifestPath); err != nil {
		return Result{}, err
	}

	indexHTML, err := site.RenderIndex(manifest)
	if err != nil {
		return Result{}, fmt.Errorf("render index: %w", err)
	}
	if err := os.WriteFile(filepath.Join(r.cfg.OutputDir, "index.html"), []byte(indexHTML), 0o644); err != nil {
		return Result{}, fmt.Errorf("write index: %w", err)
	}

	log.Info("generation complete", "page", pagePath)
	return Result{
		JuzNumber:    juzNumber,
		WordCount:    wordCount,
		SummaryWords: tafsir.WordCount(summary),
		PagePath:     pagePath,
	}, nil
}
