package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"notepress/internal/config"
	"notepress/internal/domain"
	"notepress/internal/source/ghost"
	"notepress/internal/transform"
)

// GhostSyncService mirrors posts from a hosted Ghost blog. The hosted
// content is already HTML; the pass localizes its remote media and
// reconciles the posts table, reusing the same transformer and limiter
// as the note path.
type GhostSyncService struct {
	client      GhostClient
	blogs       BlogStore
	posts       PostStore
	transformer Transformer
	txManager   TransactionManager
	publisher   Publisher
	limiter     *IntervalLimiter
	logger      *slog.Logger
	cfg         config.SyncConfig
}

func NewGhostSyncService(
	client GhostClient,
	blogs BlogStore,
	posts PostStore,
	transformer Transformer,
	txManager TransactionManager,
	publisher Publisher,
	logger *slog.Logger,
	cfg config.SyncConfig,
) *GhostSyncService {
	return &GhostSyncService{
		client:      client,
		blogs:       blogs,
		posts:       posts,
		transformer: transformer,
		txManager:   txManager,
		publisher:   publisher,
		limiter:     NewIntervalLimiter(cfg.MinSyncInterval),
		logger:      logger.With("source", domain.SourceGhost),
		cfg:         cfg,
	}
}

func (s *GhostSyncService) Sync(ctx context.Context, blogID int64, forceFull bool) (*domain.SyncResult, error) {
	if !s.limiter.Allow(blogID) {
		return nil, ErrSyncTooSoon
	}

	blog, err := s.blogs.Get(ctx, blogID)
	if err != nil {
		return nil, fmt.Errorf("load blog: %w", err)
	}

	start := time.Now().UTC()
	result := &domain.SyncResult{BlogID: blogID}

	finish := func(success bool) {
		var synced *time.Time
		if success {
			synced = &start
		}
		if err := s.blogs.MarkAttempt(ctx, blogID, start, synced, blog.LastUpdateCount); err != nil {
			s.logger.Error("record sync attempt", "blog_id", blogID, "error", err)
		}
	}

	since := time.Time{}
	if !forceFull && blog.LastSyncedAt != nil {
		since = *blog.LastSyncedAt
	}

	posts, err := s.client.FetchPostsUpdatedSince(ctx, since)
	if err != nil {
		finish(false)
		return nil, fmt.Errorf("fetch ghost posts: %w", err)
	}
	result.Candidates = len(posts)

	for _, p := range posts {
		if err := s.syncPost(ctx, blog, p, result); err != nil {
			result.Errors = append(result.Errors, domain.SyncError{
				SourceID: p.ID, Stage: "sync", Message: err.Error(),
			})
		}
	}

	result.Failed = result.FailureRatioExceeded()
	result.Duration = time.Since(start)
	finish(!result.Failed)

	s.logger.Info("sync completed",
		"blog_id", blogID,
		"created", result.Created,
		"updated", result.Updated,
		"unpublished", result.Unpublished,
		"skipped", result.Skipped,
		"errors", len(result.Errors),
		"duration", result.Duration,
	)

	return result, nil
}

func (s *GhostSyncService) syncPost(ctx context.Context, blog *domain.Blog, gp ghost.Post, result *domain.SyncResult) error {
	source := domain.PostSource{Kind: domain.SourceGhost, ID: gp.ID}
	existing, err := s.posts.FindBySource(ctx, blog.ID, source)
	if err != nil {
		return fmt.Errorf("find post: %w", err)
	}

	now := time.Now().UTC()

	if !gp.Published() {
		if existing == nil || !existing.Published {
			result.Skipped++
			return nil
		}
		existing.Published = false
		existing.PublishedAt = nil
		existing.SourceUpdatedAt = gp.UpdatedAt
		existing.UpdatedAt = now
		if err := s.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
			return s.posts.Update(txCtx, existing)
		}); err != nil {
			return fmt.Errorf("unpublish post: %w", err)
		}
		result.Unpublished++
		s.publish(ctx, existing, "unpublish")
		return nil
	}

	if existing != nil && !gp.UpdatedAt.After(existing.SourceUpdatedAt) && existing.Published {
		result.Skipped++
		return nil
	}

	markup := gp.HTML
	kind := domain.SourceGhost
	if markup == "" && gp.Markdown != "" {
		markup = gp.Markdown
		kind = domain.SourceManual
	}

	tres, err := s.transformer.Transform(ctx, transform.Input{
		Kind:        kind,
		Markup:      markup,
		OwnerID:     blog.OwnerID,
		Title:       gp.Title,
		ContentDate: gp.UpdatedAt,
	})
	if err != nil {
		return fmt.Errorf("transform post: %w", err)
	}
	for _, e := range tres.Errors {
		s.logger.Warn("media localization failed", "post", gp.ID, "error", e)
	}

	publishedAt := gp.PublishedAt
	if publishedAt == nil {
		publishedAt = &now
	}

	if existing == nil {
		slugValue, err := uniqueSlug(ctx, s.posts, blog.ID, gp.Title, "")
		if err != nil {
			return err
		}
		post := &domain.Post{
			ID:              uuid.NewString(),
			BlogID:          blog.ID,
			Title:           gp.Title,
			HTML:            tres.HTML,
			Excerpt:         tres.Excerpt,
			Slug:            slugValue,
			Published:       true,
			PublishedAt:     publishedAt,
			Source:          source,
			SourceUpdatedAt: gp.UpdatedAt,
			CreatedAt:       now,
			UpdatedAt:       now,
		}
		if err := s.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
			return s.posts.Create(txCtx, post)
		}); err != nil {
			return fmt.Errorf("create post: %w", err)
		}
		result.Created++
		s.publish(ctx, post, "create")
		return nil
	}

	existing.Title = gp.Title
	existing.HTML = tres.HTML
	existing.Excerpt = tres.Excerpt
	existing.Published = true
	existing.PublishedAt = publishedAt
	existing.SourceUpdatedAt = gp.UpdatedAt
	existing.UpdatedAt = now

	if err := s.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		return s.posts.Update(txCtx, existing)
	}); err != nil {
		return fmt.Errorf("update post: %w", err)
	}
	result.Updated++
	s.publish(ctx, existing, "update")
	return nil
}

func (s *GhostSyncService) publish(ctx context.Context, post *domain.Post, action string) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.Publish(ctx, post, action); err != nil {
		s.logger.Warn("publish post event", "post_id", post.ID, "action", action, "error", err)
	}
}
