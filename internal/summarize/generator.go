package summarize

import (
	"context"
	"fmt"
	"log/slog"
	"time"
)

// MaxContinuations bounds follow-up calls for truncated output. A result
// still truncated after the last continuation is returned as-is.
const MaxContinuations = 5

const continueInstruction = "Continue from where you left off. Do not repeat what you already wrote."

// Generator produces one logical completion. It absorbs transient provider
// failures with bounded exponential backoff and extends truncated output by
// re-prompting with the accumulated text as a prior assistant turn.
type Generator struct {
	caller    Caller
	maxTokens int64
	log       *slog.Logger
	sleep     Sleeper
}

func NewGenerator(caller Caller, maxTokens int, log *slog.Logger) *Generator {
	return &Generator{
		caller:    caller,
		maxTokens: int64(maxTokens),
		log:       log,
		sleep:     time.Sleep,
	}
}

// Generate runs one prompt to a complete answer.
func (g *Generator) Generate(ctx context.Context, prompt string) (string, error) {
	base := []Message{{Role: RoleUser, Text: prompt}}

	resp, err := g.callWithRetry(ctx, Request{Messages: base, MaxTokens: g.maxTokens})
	if err != nil {
		return "", err
	}
	full := resp.Text

	for cont := 1; resp.Truncated && cont <= MaxContinuations; cont++ {
		g.log.Info("output truncated, continuing",
			"continuation", cont, "max_continuations", MaxContinuations)

		msgs := append(append([]Message{}, base...),
			Message{Role: RoleAssistant, Text: full},
			Message{Role: RoleUser, Text: continueInstruction},
		)
		resp, err = g.callWithRetry(ctx, Request{Messages: msgs, MaxTokens: g.maxTokens})
		if err != nil {
			return "", fmt.Errorf("continuation %d: %w", cont, err)
		}
		full += resp.Text
	}

	return full, nil
}

// callWithRetry issues one request, retrying transient failures. Fatal
// errors surface immediately; this is the sole place flakiness is absorbed.
func (g *Generator) callWithRetry(ctx context.Context, req Request) (Response, error) {
	for attempt := 0; attempt < MaxAttempts; attempt++ {
		resp, err := g.caller.Complete(ctx, req)
		if err == nil {
			return resp, nil
		}
		if !IsRetryable(err) {
			return Response{}, err
		}
		wait := Backoff(attempt)
		g.log.Warn("retryable model error",
			"attempt", attempt+1, "max_attempts", MaxAttempts,
			"wait", wait, "error", err)
		g.sleep(wait)
	}
	return Response{}, ErrRetriesExhausted
}
