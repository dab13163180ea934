package scheduler

import (
	"context"
	"errors"
	"log/slog"
	"math/rand/v2"
	"time"

	"notepress/internal/domain"
	"notepress/internal/service"
)

// maxStartJitter spreads per-blog passes apart so blogs sharing an
// external account do not hit it back to back.
const maxStartJitter = 5 * time.Second

// Syncer runs one sync pass for one blog.
type Syncer interface {
	Sync(ctx context.Context, blogID int64, forceFull bool) (*domain.SyncResult, error)
}

// BlogLister enumerates the blogs eligible for scheduled syncing.
type BlogLister interface {
	List(ctx context.Context) ([]domain.Blog, error)
}

type Scheduler struct {
	syncers  map[domain.SourceKind]Syncer
	blogs    BlogLister
	interval time.Duration
	logger   *slog.Logger
}

func NewScheduler(syncers map[domain.SourceKind]Syncer, blogs BlogLister, interval time.Duration, logger *slog.Logger) *Scheduler {
	return &Scheduler{
		syncers:  syncers,
		blogs:    blogs,
		interval: interval,
		logger:   logger,
	}
}

func (s *Scheduler) Start(ctx context.Context) error {
	s.logger.Info("scheduler started", "interval", s.interval)

	s.runAll(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("scheduler stopped")
			return ctx.Err()
		case <-ticker.C:
			s.runAll(ctx)
		}
	}
}

func (s *Scheduler) runAll(ctx context.Context) {
	blogs, err := s.blogs.List(ctx)
	if err != nil {
		s.logger.Error("list blogs", "error", err)
		return
	}

	for i, blog := range blogs {
		if ctx.Err() != nil {
			return
		}
		if i > 0 {
			select {
			case <-ctx.Done():
				return
			case <-time.After(rand.N(maxStartJitter)):
			}
		}
		s.runSync(ctx, blog)
	}
}

func (s *Scheduler) runSync(ctx context.Context, blog domain.Blog) {
	syncer, ok := s.syncers[blog.SourceKind]
	if !ok {
		return
	}

	syncCtx, cancel := context.WithTimeout(ctx, 15*time.Minute)
	defer cancel()

	if _, err := syncer.Sync(syncCtx, blog.ID, false); err != nil {
		if errors.Is(err, service.ErrSyncTooSoon) {
			return
		}
		s.logger.Error("sync failed", "blog_id", blog.ID, "error", err)
	}
}
