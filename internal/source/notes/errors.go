package notes

import (
	"errors"
	"fmt"
	"time"
)

// RateLimitedError is returned when the note service rejects a call for
// quota reasons. RetryAfter is the wait the service asked for.
type RateLimitedError struct {
	RetryAfter time.Duration
}

func (e *RateLimitedError) Error() string {
	return fmt.Sprintf("rate limited, retry after %s", e.RetryAfter)
}

// UnauthorizedError is returned when the access token is invalid or
// expired. It is never retried.
type UnauthorizedError struct {
	Message string
}

func (e *UnauthorizedError) Error() string {
	if e.Message == "" {
		return "unauthorized"
	}
	return "unauthorized: " + e.Message
}

// NotFoundError is returned when a notebook, note, or resource does not
// exist or is no longer shared with the authenticated account.
type NotFoundError struct {
	Kind string
	ID   string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Kind, e.ID)
}

// TransientError covers network failures and 5xx responses that are worth
// retrying with backoff.
type TransientError struct {
	Message string
}

func (e *TransientError) Error() string {
	return "transient: " + e.Message
}

// RateLimitWait extracts the requested wait if err is a rate-limit
// classification anywhere in the chain.
func RateLimitWait(err error) (time.Duration, bool) {
	var rl *RateLimitedError
	if errors.As(err, &rl) {
		return rl.RetryAfter, true
	}
	return 0, false
}

// IsUnauthorized reports whether err is an auth classification.
func IsUnauthorized(err error) bool {
	var ua *UnauthorizedError
	return errors.As(err, &ua)
}

// IsNotFound reports whether err is a not-found classification.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}
