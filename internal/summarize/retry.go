package summarize

import (
	"errors"
	"time"
)

// MaxAttempts bounds retries of a single model call.
const MaxAttempts = 8

// ErrRetriesExhausted is returned when every attempt failed with a
// retryable error. The whole generation aborts at that point.
var ErrRetriesExhausted = errors.New("model call failed after 8 attempts")

// Backoff returns the wait after failed attempt n (0-indexed):
// 10s, 20s, 40s, 80s, then capped at 120s.
func Backoff(attempt int) time.Duration {
	d := time.Duration(1<<uint(attempt)) * 10 * time.Second
	if d > 120*time.Second {
		d = 120 * time.Second
	}
	return d
}

// Sleeper pauses between retry attempts. Tests substitute a recording no-op.
type Sleeper func(d time.Duration)
