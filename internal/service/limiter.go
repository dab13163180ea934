package service

import (
	"errors"
	"sync"
	"time"
)

// ErrSyncTooSoon rejects a sync trigger that arrives before the per-blog
// minimum interval has elapsed since the previous attempt.
var ErrSyncTooSoon = errors.New("sync triggered too soon after previous attempt")

// IntervalLimiter enforces a minimum spacing between sync passes per
// blog, before any external call is made. It is in-process only; passes
// for the same external account in other processes are not coordinated.
type IntervalLimiter struct {
	mu   sync.Mutex
	min  time.Duration
	last map[int64]time.Time
	now  func() time.Time
}

func NewIntervalLimiter(min time.Duration) *IntervalLimiter {
	return &IntervalLimiter{
		min:  min,
		last: make(map[int64]time.Time),
		now:  time.Now,
	}
}

// Allow reports whether a pass may start for the blog, recording the
// attempt time when it may.
func (l *IntervalLimiter) Allow(blogID int64) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	if prev, ok := l.last[blogID]; ok && now.Sub(prev) < l.min {
		return false
	}
	l.last[blogID] = now
	return true
}
