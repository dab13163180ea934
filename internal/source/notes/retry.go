package notes

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"
)

// RetryPolicy is the single shared policy applied to every note service
// call. Transient failures retry with exponential backoff. Rate limits at
// or under ShortWaitCap wait the requested duration and retry; anything
// above the cap propagates immediately so the caller can report the wait
// instead of blocking on it. Auth and not-found errors never retry.
type RetryPolicy struct {
	MaxAttempts    int
	InitialBackoff time.Duration
	MaxBackoff     time.Duration
	ShortWaitCap   time.Duration

	logger *slog.Logger
}

func NewRetryPolicy(maxAttempts int, initial, max, shortWaitCap time.Duration, logger *slog.Logger) RetryPolicy {
	return RetryPolicy{
		MaxAttempts:    maxAttempts,
		InitialBackoff: initial,
		MaxBackoff:     max,
		ShortWaitCap:   shortWaitCap,
		logger:         logger,
	}
}

// Do runs fn under the policy. The returned error is always the last
// classified error, wrapped with the operation name.
func (p RetryPolicy) Do(ctx context.Context, op string, fn func() error) error {
	var err error

	for attempt := 1; attempt <= p.MaxAttempts; attempt++ {
		err = fn()
		if err == nil {
			return nil
		}

		var wait time.Duration

		var rl *RateLimitedError
		var tr *TransientError
		switch {
		case errors.As(err, &rl):
			if rl.RetryAfter > p.ShortWaitCap {
				return fmt.Errorf("%s: %w", op, err)
			}
			wait = rl.RetryAfter
		case errors.As(err, &tr):
			wait = p.backoff(attempt)
		default:
			return fmt.Errorf("%s: %w", op, err)
		}

		if attempt == p.MaxAttempts {
			break
		}

		p.logger.Warn("call failed, retrying",
			"op", op,
			"attempt", attempt,
			"wait", wait,
			"error", err,
		)

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(wait):
		}
	}

	return fmt.Errorf("%s: after %d attempts: %w", op, p.MaxAttempts, err)
}

func (p RetryPolicy) backoff(attempt int) time.Duration {
	backoff := p.InitialBackoff
	for i := 1; i < attempt; i++ {
		backoff *= 2
	}
	if backoff > p.MaxBackoff {
		backoff = p.MaxBackoff
	}
	return backoff
}
