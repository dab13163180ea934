package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"notepress/internal/config"
	"notepress/internal/domain"
	"notepress/internal/source/notes"
	"notepress/internal/transform"
)

// SyncService drives one incremental sync pass for one blog against the
// external note service. Notes are processed sequentially with an
// inter-call delay; the dominant constraint is the shared external rate
// limit, not local CPU.
type SyncService struct {
	client      NoteClient
	credentials CredentialStore
	blogs       BlogStore
	posts       PostStore
	publishTags PublishTagStore
	transformer Transformer
	txManager   TransactionManager
	publisher   Publisher
	limiter     *IntervalLimiter
	logger      *slog.Logger
	cfg         config.SyncConfig
}

func NewSyncService(
	client NoteClient,
	credentials CredentialStore,
	blogs BlogStore,
	posts PostStore,
	publishTags PublishTagStore,
	transformer Transformer,
	txManager TransactionManager,
	publisher Publisher,
	logger *slog.Logger,
	cfg config.SyncConfig,
) *SyncService {
	return &SyncService{
		client:      client,
		credentials: credentials,
		blogs:       blogs,
		posts:       posts,
		publishTags: publishTags,
		transformer: transformer,
		txManager:   txManager,
		publisher:   publisher,
		limiter:     NewIntervalLimiter(cfg.MinSyncInterval),
		logger:      logger.With("source", domain.SourceNotes),
		cfg:         cfg,
	}
}

// Sync runs one pass. Per-item failures are recorded and do not abort the
// pass unless they affect more than a third of the candidates; classified
// auth errors, missing notebooks, and rate limits above the short-wait
// cap abort immediately.
func (s *SyncService) Sync(ctx context.Context, blogID int64, forceFull bool) (*domain.SyncResult, error) {
	if !s.limiter.Allow(blogID) {
		return nil, ErrSyncTooSoon
	}

	blog, err := s.blogs.Get(ctx, blogID)
	if err != nil {
		return nil, fmt.Errorf("load blog: %w", err)
	}

	start := time.Now().UTC()
	result := &domain.SyncResult{BlogID: blogID}
	updateCount := blog.LastUpdateCount

	// The attempt is recorded whatever happens; the success marker only
	// moves on a passing run, because the next change window is computed
	// from it.
	finish := func(success bool) {
		var synced *time.Time
		if success {
			synced = &start
		}
		if err := s.blogs.MarkAttempt(ctx, blogID, start, synced, updateCount); err != nil {
			s.logger.Error("record sync attempt", "blog_id", blogID, "error", err)
		}
	}

	creds, err := s.credentials.Get(ctx, blogID)
	if err != nil {
		finish(false)
		return nil, fmt.Errorf("load credentials: %w", err)
	}

	// A failed attempt must not narrow the window: only the last
	// successful sync bounds it.
	var updatedSince *time.Time
	if !forceFull && blog.LastSyncedAt != nil {
		updatedSince = blog.LastSyncedAt
	}

	s.logger.Info("starting sync",
		"blog_id", blogID,
		"notebook", blog.NotebookID,
		"force_full", forceFull,
		"window_start", updatedSince,
	)

	cache := NewTagCache()
	tagID, err := s.resolvePublishTag(ctx, blog, *creds, cache)
	if err != nil {
		if fatalSourceError(err) {
			finish(false)
			return nil, fmt.Errorf("resolve publish tag: %w", err)
		}
		s.logger.Warn("publish tag resolution failed, filtering by name post-fetch",
			"blog_id", blogID, "error", err)
		tagID = ""
	}

	page, err := s.client.FindNoteMetadata(ctx, *creds, notes.NoteFilter{
		NotebookID:   blog.NotebookID,
		TagID:        tagID,
		UpdatedSince: updatedSince,
		PageSize:     s.cfg.PageSize,
	})
	if err != nil {
		finish(false)
		return nil, fmt.Errorf("find note metadata: %w", err)
	}
	updateCount = page.UpdateCount
	result.Candidates = len(page.Notes)

	tagged := make(map[string]bool, len(page.Notes))
	errored := make(map[string]bool)
	unmarked := make(map[string]bool)

	for i, meta := range page.Notes {
		if i > 0 {
			if err := s.pause(ctx); err != nil {
				finish(false)
				return nil, err
			}
		}

		hasMarker, err := s.hasPublishMarker(ctx, *creds, meta, cache)
		if err != nil {
			if fatalSourceError(err) {
				finish(false)
				return nil, fmt.Errorf("check tags for note %s: %w", meta.GUID, err)
			}
			// An errored tag check is not evidence of tag loss; the
			// note must stay out of the unpublish scan.
			errored[meta.GUID] = true
			result.Errors = append(result.Errors, domain.SyncError{
				SourceID: meta.GUID, Stage: "tags", Message: err.Error(),
			})
			continue
		}
		if !hasMarker {
			unmarked[meta.GUID] = true
			result.Skipped++
			continue
		}
		tagged[meta.GUID] = true

		if err := s.syncNote(ctx, blog, *creds, meta, result); err != nil {
			if fatalSourceError(err) {
				finish(false)
				return nil, fmt.Errorf("sync note %s: %w", meta.GUID, err)
			}
			result.Errors = append(result.Errors, domain.SyncError{
				SourceID: meta.GUID, Stage: "sync", Message: err.Error(),
			})
		}
	}

	verdicts := tagVerdicts{tagged: tagged, errored: errored, unmarked: unmarked}
	if err := s.unpublishDropped(ctx, blog, *creds, tagID, page, updatedSince, verdicts, result); err != nil {
		if fatalSourceError(err) {
			finish(false)
			return nil, fmt.Errorf("scan for unpublished notes: %w", err)
		}
		result.Errors = append(result.Errors, domain.SyncError{
			Stage: "unpublish", Message: err.Error(),
		})
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
		"failed", result.Failed,
		"duration", result.Duration,
	)

	return result, nil
}

// resolvePublishTag returns the publish-tag id, preferring the persisted
// per-account value. The persisted id is discarded when the account it
// was resolved against no longer matches the authenticated one.
func (s *SyncService) resolvePublishTag(ctx context.Context, blog *domain.Blog, creds domain.Credentials, cache *TagCache) (string, error) {
	rec, err := s.publishTags.Get(ctx, blog.ID)
	if err != nil {
		s.logger.Warn("load publish tag cache", "blog_id", blog.ID, "error", err)
	}
	if rec != nil && rec.AccountID == creds.AccountID {
		return rec.TagID, nil
	}

	tags, err := s.client.ListTags(ctx, creds)
	if err != nil {
		return "", err
	}
	cache.Put(tags)

	for _, t := range tags {
		if strings.EqualFold(t.Name, s.cfg.PublishTagName) {
			if err := s.publishTags.Put(ctx, &domain.PublishTagCache{
				BlogID:    blog.ID,
				AccountID: creds.AccountID,
				TagID:     t.ID,
			}); err != nil {
				s.logger.Warn("persist publish tag", "blog_id", blog.ID, "error", err)
			}
			return t.ID, nil
		}
	}

	return "", fmt.Errorf("no tag named %q in account", s.cfg.PublishTagName)
}

func (s *SyncService) hasPublishMarker(ctx context.Context, creds domain.Credentials, meta notes.NoteMetadata, cache *TagCache) (bool, error) {
	names, ok := cache.Resolve(meta.TagIDs)
	if !ok {
		fetched, err := s.client.GetNoteTagNames(ctx, creds, meta.GUID)
		if err != nil {
			return false, err
		}
		cache.PutNames(meta.TagIDs, fetched)
		names = fetched
	}

	for _, n := range names {
		if strings.EqualFold(n, s.cfg.PublishTagName) {
			return true, nil
		}
	}
	return false, nil
}

// syncNote fetches, transforms, and reconciles one published note.
func (s *SyncService) syncNote(ctx context.Context, blog *domain.Blog, creds domain.Credentials, meta notes.NoteMetadata, result *domain.SyncResult) error {
	note, err := s.client.GetNote(ctx, creds, meta.GUID)
	if err != nil {
		return fmt.Errorf("fetch note: %w", err)
	}

	tres, err := s.transformer.Transform(ctx, transform.Input{
		Kind:        domain.SourceNotes,
		Markup:      note.Markup,
		OwnerID:     blog.OwnerID,
		Title:       note.Title,
		ContentDate: note.CreatedAt,
		Resources:   note.Resources,
		FetchResource: func(ctx context.Context, guid string) ([]byte, error) {
			return s.client.GetResourceData(ctx, creds, guid)
		},
	})
	if err != nil {
		return fmt.Errorf("transform note: %w", err)
	}
	for _, e := range tres.Errors {
		s.logger.Warn("media resolution failed", "note", meta.GUID, "error", e)
	}

	source := domain.PostSource{Kind: domain.SourceNotes, ID: note.GUID}
	existing, err := s.posts.FindBySource(ctx, blog.ID, source)
	if err != nil {
		return fmt.Errorf("find post: %w", err)
	}

	now := time.Now().UTC()

	if existing == nil {
		slugValue, err := uniqueSlug(ctx, s.posts, blog.ID, note.Title, "")
		if err != nil {
			return err
		}

		publishedAt := note.CreatedAt
		post := &domain.Post{
			ID:              uuid.NewString(),
			BlogID:          blog.ID,
			Title:           note.Title,
			HTML:            tres.HTML,
			Excerpt:         tres.Excerpt,
			Slug:            slugValue,
			Published:       true,
			PublishedAt:     &publishedAt,
			Source:          source,
			SourceUpdatedAt: note.UpdatedAt,
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

	changed := note.UpdatedAt.After(existing.SourceUpdatedAt)
	republished := !existing.Published
	if !changed && !republished {
		result.Skipped++
		return nil
	}

	existing.Title = note.Title
	existing.HTML = tres.HTML
	existing.Excerpt = tres.Excerpt
	existing.SourceUpdatedAt = note.UpdatedAt
	existing.UpdatedAt = now
	if republished {
		existing.Published = true
		existing.PublishedAt = &now
	}

	if err := s.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		return s.posts.Update(txCtx, existing)
	}); err != nil {
		return fmt.Errorf("update post: %w", err)
	}

	result.Updated++
	s.publish(ctx, existing, "update")
	return nil
}

// tagVerdicts records the per-note outcome of the candidate loop's
// publish-marker checks.
type tagVerdicts struct {
	tagged   map[string]bool
	errored  map[string]bool
	unmarked map[string]bool
}

// dropped reports whether the metadata shows the note no longer carries
// the publish marker. With a resolved tag id the metadata's tag ids are
// checked directly; otherwise only a confirmed unmarked verdict counts.
func (v tagVerdicts) dropped(meta notes.NoteMetadata, tagID string) bool {
	if tagID != "" {
		for _, id := range meta.TagIDs {
			if id == tagID {
				return false
			}
		}
		return true
	}
	return v.unmarked[meta.GUID]
}

// unpublishDropped transitions currently published posts whose source
// notes verifiably dropped the publish marker. Removing a tag bumps a
// note's update time, so the change window already contains every
// candidate; when the first fetch was server-side tag-filtered, an
// unfiltered pass over the same window replaces a per-post probe, and
// the metadata's own tag ids are the evidence of loss. Without a tag id,
// only notes the candidate loop confirmed unmarked qualify; an errored
// tag check proves nothing and leaves the post alone.
func (s *SyncService) unpublishDropped(
	ctx context.Context,
	blog *domain.Blog,
	creds domain.Credentials,
	tagID string,
	page *notes.MetadataPage,
	updatedSince *time.Time,
	verdicts tagVerdicts,
	result *domain.SyncResult,
) error {
	windowMetas := page.Notes
	if tagID != "" {
		if err := s.pause(ctx); err != nil {
			return err
		}
		unfiltered, err := s.client.FindNoteMetadata(ctx, creds, notes.NoteFilter{
			NotebookID:   blog.NotebookID,
			UpdatedSince: updatedSince,
			PageSize:     s.cfg.PageSize,
		})
		if err != nil {
			return err
		}
		windowMetas = unfiltered.Notes
	}

	// The absent-note scan below treats windowMetas as the whole
	// notebook, so a windowless pass walks every remaining page first.
	if updatedSince == nil && s.cfg.PageSize > 0 {
		for lastLen := len(windowMetas); lastLen == s.cfg.PageSize; {
			if err := s.pause(ctx); err != nil {
				return err
			}
			next, err := s.client.FindNoteMetadata(ctx, creds, notes.NoteFilter{
				NotebookID: blog.NotebookID,
				PageSize:   s.cfg.PageSize,
				Offset:     len(windowMetas),
			})
			if err != nil {
				return err
			}
			windowMetas = append(windowMetas, next.Notes...)
			lastLen = len(next.Notes)
		}
	}

	for _, meta := range windowMetas {
		if verdicts.tagged[meta.GUID] || verdicts.errored[meta.GUID] {
			continue
		}
		if !verdicts.dropped(meta, tagID) {
			continue
		}

		post, err := s.posts.FindBySource(ctx, blog.ID, domain.PostSource{Kind: domain.SourceNotes, ID: meta.GUID})
		if err != nil {
			result.Errors = append(result.Errors, domain.SyncError{
				SourceID: meta.GUID, Stage: "unpublish", Message: err.Error(),
			})
			continue
		}
		if post == nil || !post.Published {
			continue
		}
		s.unpublishPost(ctx, post, meta.UpdatedAt, result)
	}

	// A windowless fetch covers the whole notebook, so a published post
	// whose source does not appear at all belongs to a deleted note.
	if updatedSince == nil {
		seen := make(map[string]bool, len(windowMetas))
		for _, meta := range windowMetas {
			seen[meta.GUID] = true
		}

		published, err := s.posts.ListPublishedBySource(ctx, blog.ID, domain.SourceNotes)
		if err != nil {
			return fmt.Errorf("list published posts: %w", err)
		}
		for i := range published {
			post := &published[i]
			if seen[post.Source.ID] {
				continue
			}
			s.unpublishPost(ctx, post, post.SourceUpdatedAt, result)
		}
	}

	return nil
}

func (s *SyncService) unpublishPost(ctx context.Context, post *domain.Post, sourceUpdatedAt time.Time, result *domain.SyncResult) {
	now := time.Now().UTC()
	post.Published = false
	post.PublishedAt = nil
	post.SourceUpdatedAt = sourceUpdatedAt
	post.UpdatedAt = now

	if err := s.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		return s.posts.Update(txCtx, post)
	}); err != nil {
		result.Errors = append(result.Errors, domain.SyncError{
			SourceID: post.Source.ID, Stage: "unpublish", Message: err.Error(),
		})
		return
	}

	result.Unpublished++
	s.publish(ctx, post, "unpublish")
}

func (s *SyncService) publish(ctx context.Context, post *domain.Post, action string) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.Publish(ctx, post, action); err != nil {
		s.logger.Warn("publish post event", "post_id", post.ID, "action", action, "error", err)
	}
}

func (s *SyncService) pause(ctx context.Context) error {
	if s.cfg.InterCallDelay <= 0 {
		return nil
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(s.cfg.InterCallDelay):
		return nil
	}
}

// fatalSourceError reports whether a classified note service error must
// abort the pass: auth failures, missing notebooks, and rate limits whose
// wait exceeded the short-wait cap.
func fatalSourceError(err error) bool {
	if _, ok := notes.RateLimitWait(err); ok {
		return true
	}
	return notes.IsUnauthorized(err) || notes.IsNotFound(err)
}
