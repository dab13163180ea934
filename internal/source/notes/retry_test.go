package notes

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testPolicy() RetryPolicy {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
	return NewRetryPolicy(3, time.Millisecond, 10*time.Millisecond, 60*time.Second, logger)
}

func TestRetryPolicy_SucceedsFirstAttempt(t *testing.T) {
	calls := 0
	err := testPolicy().Do(context.Background(), "op", func() error {
		calls++
		return nil
	})

	assert.NoError(t, err)
	assert.Equal(t, 1, calls)
}

func TestRetryPolicy_RetriesTransientErrors(t *testing.T) {
	calls := 0
	err := testPolicy().Do(context.Background(), "op", func() error {
		calls++
		if calls < 3 {
			return &TransientError{Message: "connection reset"}
		}
		return nil
	})

	assert.NoError(t, err)
	assert.Equal(t, 3, calls)
}

func TestRetryPolicy_ExhaustsAttempts(t *testing.T) {
	calls := 0
	err := testPolicy().Do(context.Background(), "op", func() error {
		calls++
		return &TransientError{Message: "still down"}
	})

	require.Error(t, err)
	assert.Equal(t, 3, calls)

	var tr *TransientError
	assert.True(t, errors.As(err, &tr))
	assert.Contains(t, err.Error(), "after 3 attempts")
}

func TestRetryPolicy_WaitsOutShortRateLimit(t *testing.T) {
	calls := 0
	err := testPolicy().Do(context.Background(), "op", func() error {
		calls++
		if calls == 1 {
			return &RateLimitedError{RetryAfter: time.Millisecond}
		}
		return nil
	})

	assert.NoError(t, err)
	assert.Equal(t, 2, calls)
}

func TestRetryPolicy_PropagatesLongRateLimitImmediately(t *testing.T) {
	calls := 0
	err := testPolicy().Do(context.Background(), "op", func() error {
		calls++
		return &RateLimitedError{RetryAfter: 5 * time.Minute}
	})

	require.Error(t, err)
	assert.Equal(t, 1, calls)

	wait, ok := RateLimitWait(err)
	assert.True(t, ok)
	assert.Equal(t, 5*time.Minute, wait)
}

func TestRetryPolicy_NeverRetriesAuthErrors(t *testing.T) {
	calls := 0
	err := testPolicy().Do(context.Background(), "op", func() error {
		calls++
		return &UnauthorizedError{Message: "token expired"}
	})

	require.Error(t, err)
	assert.Equal(t, 1, calls)
	assert.True(t, IsUnauthorized(err))
}

func TestRetryPolicy_NeverRetriesNotFound(t *testing.T) {
	calls := 0
	err := testPolicy().Do(context.Background(), "op", func() error {
		calls++
		return &NotFoundError{Kind: "notebook", ID: "nb-1"}
	})

	require.Error(t, err)
	assert.Equal(t, 1, calls)
	assert.True(t, IsNotFound(err))
}

func TestRetryPolicy_StopsOnCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	calls := 0
	err := testPolicy().Do(ctx, "op", func() error {
		calls++
		cancel()
		return &TransientError{Message: "flaky"}
	})

	require.Error(t, err)
	assert.Equal(t, 1, calls)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRetryPolicy_BackoffDoublesUpToCap(t *testing.T) {
	p := testPolicy()

	assert.Equal(t, time.Millisecond, p.backoff(1))
	assert.Equal(t, 2*time.Millisecond, p.backoff(2))
	assert.Equal(t, 4*time.Millisecond, p.backoff(3))
	assert.Equal(t, 10*time.Millisecond, p.backoff(10))
}
