// Package summarize turns a long tafsir document into a single markdown
// summary via a chunk-and-merge Claude pipeline.
package summarize

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

// Role identifies who a conversation turn belongs to.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message is one conversation turn.
type Message struct {
	Role Role
	Text string
}

// Request is a single completion request. Built fresh per call, never reused.
type Request struct {
	Messages  []Message
	MaxTokens int64
}

// Response carries the generated text and whether the model stopped because
// it ran out of output tokens rather than finishing naturally.
type Response struct {
	Text      string
	Truncated bool
}

// Caller issues one model completion. The pipeline's retry and continuation
// layers wrap it; implementations never retry internally.
type Caller interface {
	Complete(ctx context.Context, req Request) (Response, error)
}

// AnthropicCaller calls the Anthropic Messages API. SDK-level retries are
// disabled so the pipeline's own retry policy is the only one in play.
type AnthropicCaller struct {
	client anthropic.Client
	model  string
}

func NewAnthropicCaller(apiKey, model string) *AnthropicCaller {
	return &AnthropicCaller{
		client: anthropic.NewClient(
			option.WithAPIKey(apiKey),
			option.WithMaxRetries(0),
		),
		model: model,
	}
}

func (c *AnthropicCaller) Complete(ctx context.Context, req Request) (Response, error) {
	msgs := make([]anthropic.MessageParam, 0, len(req.Messages))
	for _, m := range req.Messages {
		block := anthropic.NewTextBlock(m.Text)
		if m.Role == RoleAssistant {
			msgs = append(msgs, anthropic.NewAssistantMessage(block))
		} else {
			msgs = append(msgs, anthropic.NewUserMessage(block))
		}
	}

	message, err := c.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(c.model),
		MaxTokens: req.MaxTokens,
		Messages:  msgs,
	})
	if err != nil {
		return Response{}, classify(err)
	}
	if len(message.Content) == 0 {
		return Response{}, fmt.Errorf("empty response from claude")
	}

	var sb strings.Builder
	for _, block := range message.Content {
		if tb, ok := block.AsAny().(anthropic.TextBlock); ok {
			sb.WriteString(tb.Text)
		}
	}

	return Response{
		Text:      sb.String(),
		Truncated: message.StopReason == anthropic.StopReasonMaxTokens,
	}, nil
}

// classify maps transient API failures onto RetryableError; everything else
// passes through as fatal.
func classify(err error) error {
	var apierr *anthropic.Error
	if errors.As(err, &apierr) {
		// 429 rate limit, 529 overloaded, and 5xx server hiccups recover
		// with backoff; other statuses (auth, malformed request) do not.
		if apierr.StatusCode == http.StatusTooManyRequests || apierr.StatusCode >= 500 {
			return &RetryableError{StatusCode: apierr.StatusCode, Message: err.Error()}
		}
	}
	return err
}

// RetryableError indicates a transient provider failure worth retrying.
type RetryableError struct {
	StatusCode int
	Message    string
}

func (e *RetryableError) Error() string {
	return fmt.Sprintf("retryable error (status %d): %s", e.StatusCode, truncate(e.Message, 200))
}

// IsRetryable reports whether an error is worth retrying.
func IsRetryable(err error) bool {
	var retryErr *RetryableError
	return errors.As(err, &retryErr)
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
