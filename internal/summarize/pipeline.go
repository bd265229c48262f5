package summarize

import (
	"context"
	"fmt"
	"log/slog"
	"time"
)

// Pacer spaces successive chunk summarisation calls to respect the
// provider's rate-limit budget.
type Pacer interface {
	Wait(ctx context.Context)
}

type sleepPacer struct {
	d time.Duration
}

func (p sleepPacer) Wait(ctx context.Context) {
	select {
	case <-time.After(p.d):
	case <-ctx.Done():
	}
}

// NewSleepPacer returns a Pacer that blocks for a fixed interval.
func NewSleepPacer(d time.Duration) Pacer {
	return sleepPacer{d: d}
}

// NopPacer never waits. Used in tests and local runs.
type NopPacer struct{}

func (NopPacer) Wait(context.Context) {}

// Options configures a Pipeline. Zero values pick defaults.
type Options struct {
	MaxTokens     int
	ChunkMaxChars int
	ChunkPause    time.Duration
	Pacer         Pacer // overrides ChunkPause when set
	Logger        *slog.Logger
}

// Pipeline is the chunk-and-merge summariser. Execution is strictly
// sequential: chunks are summarised one at a time, paced between calls.
type Pipeline struct {
	gen      *Generator
	maxChars int
	pacer    Pacer
	log      *slog.Logger
}

func NewPipeline(caller Caller, opts Options) *Pipeline {
	if opts.MaxTokens <= 0 {
		opts.MaxTokens = 4096
	}
	if opts.ChunkMaxChars <= 0 {
		opts.ChunkMaxChars = DefaultChunkMaxChars
	}
	if opts.ChunkPause <= 0 {
		opts.ChunkPause = 65 * time.Second
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	pacer := opts.Pacer
	if pacer == nil {
		pacer = NewSleepPacer(opts.ChunkPause)
	}
	return &Pipeline{
		gen:      NewGenerator(caller, opts.MaxTokens, opts.Logger),
		maxChars: opts.ChunkMaxChars,
		pacer:    pacer,
		log:      opts.Logger,
	}
}

// Summarize produces the final markdown summary for one juz. A document
// within the chunk budget goes through a single call; anything larger is
// summarised per chunk in order and merged with one more call.
func (p *Pipeline) Summarize(ctx context.Context, plainText string, juzNumber int) (string, error) {
	chunks := Chunk(plainText, p.maxChars)

	if len(chunks) == 1 {
		return p.gen.Generate(ctx, SinglePrompt(juzNumber, chunks[0]))
	}

	p.log.Info("text split for summarisation", "chunks", len(chunks))

	summaries := make([]string, 0, len(chunks))
	for i, chunk := range chunks {
		if i > 0 {
			p.log.Info("waiting before next chunk")
			p.pacer.Wait(ctx)
		}
		p.log.Info("summarising chunk", "chunk", i+1, "total", len(chunks))
		s, err := p.gen.Generate(ctx, ChunkPrompt(juzNumber, chunk))
		if err != nil {
			return "", fmt.Errorf("summarise chunk %d/%d: %w", i+1, len(chunks), err)
		}
		summaries = append(summaries, s)
	}

	p.log.Info("merging chunk summaries", "sections", len(summaries))
	merged, err := p.gen.Generate(ctx, MergePrompt(juzNumber, summaries))
	if err != nil {
		return "", fmt.Errorf("merge summaries: %w", err)
	}
	return merged, nil
}
