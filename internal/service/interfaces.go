package service

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"
	"time"

	"notepress/internal/domain"
	"notepress/internal/source/ghost"
	"notepress/internal/source/notes"
	"notepress/internal/transform"
)

// NoteClient is the rate-limit-aware adapter for the external note
// service. All errors it returns are already classified.
type NoteClient interface {
	ListTags(ctx context.Context, creds domain.Credentials) ([]domain.Tag, error)
	FindNoteMetadata(ctx context.Context, creds domain.Credentials, filter notes.NoteFilter) (*notes.MetadataPage, error)
	GetNote(ctx context.Context, creds domain.Credentials, guid string) (*domain.SourceNote, error)
	GetNoteTagNames(ctx context.Context, creds domain.Credentials, guid string) ([]string, error)
	GetResourceData(ctx context.Context, creds domain.Credentials, guid string) ([]byte, error)
}

// GhostClient fetches posts from a Ghost-style blog API.
type GhostClient interface {
	FetchPostsUpdatedSince(ctx context.Context, since time.Time) ([]ghost.Post, error)
}

// CredentialStore supplies the external service access token for a blog.
type CredentialStore interface {
	Get(ctx context.Context, blogID int64) (*domain.Credentials, error)
}

type BlogStore interface {
	Get(ctx context.Context, id int64) (*domain.Blog, error)
	List(ctx context.Context) ([]domain.Blog, error)
	MarkAttempt(ctx context.Context, blogID int64, attemptAt time.Time, syncedAt *time.Time, updateCount int) error
}

type PostStore interface {
	FindBySource(ctx context.Context, blogID int64, source domain.PostSource) (*domain.Post, error)
	Create(ctx context.Context, post *domain.Post) error
	Update(ctx context.Context, post *domain.Post) error
	ListPublishedBySource(ctx context.Context, blogID int64, kind domain.SourceKind) ([]domain.Post, error)
	SlugTaken(ctx context.Context, blogID int64, slug, excludeID string) (bool, error)
}

type PublishTagStore interface {
	Get(ctx context.Context, blogID int64) (*domain.PublishTagCache, error)
	Put(ctx context.Context, rec *domain.PublishTagCache) error
}

// Transformer converts source markup into canonical HTML with media
// resolved into local asset URLs.
type Transformer interface {
	Transform(ctx context.Context, in transform.Input) (*transform.Result, error)
}

type TransactionManager interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

type Publisher interface {
	Publish(ctx context.Context, post *domain.Post, action string) error
	Close() error
}
