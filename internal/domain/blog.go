package domain

import "time"

// SourceKind identifies where a post's content originates.
type SourceKind string

const (
	SourceNotes  SourceKind = "notes"
	SourceGhost  SourceKind = "ghost"
	SourceManual SourceKind = "manual"
)

// PostSource is a tagged variant identifying a post's origin. Manual posts
// carry an empty ID.
type PostSource struct {
	Kind SourceKind `db:"source_kind"`
	ID   string     `db:"source_id"`
}

// Blog is a publishing destination bound to one external notebook.
type Blog struct {
	ID         int64      `db:"id"`
	OwnerID    string     `db:"owner_id"`
	Title      string     `db:"title"`
	SourceKind SourceKind `db:"source_kind"`
	NotebookID string     `db:"notebook_id"`

	// LastSyncedAt only advances on a pass that completes without
	// exceeding the failure-ratio threshold. The incremental change
	// window is always computed from it, never from LastAttemptAt.
	LastSyncedAt    *time.Time `db:"last_synced_at"`
	LastAttemptAt   *time.Time `db:"last_attempt_at"`
	LastUpdateCount int        `db:"last_update_count"`

	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

// Post is a locally materialized, publishable article.
type Post struct {
	ID      string `db:"id"`
	BlogID  int64  `db:"blog_id"`
	Title   string `db:"title"`
	HTML    string `db:"html"`
	Excerpt string `db:"excerpt"`
	Slug    string `db:"slug"`

	Published   bool       `db:"published"`
	PublishedAt *time.Time `db:"published_at"`

	Source          PostSource
	SourceUpdatedAt time.Time `db:"source_updated_at"`

	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

// Credentials grant access to the external note service for a blog owner.
type Credentials struct {
	Token        string
	AccountID    string
	NoteStoreURL string
}

// PublishTagCache is the persisted publish-tag id for a blog, keyed by the
// external account it was resolved against. A stale entry costs one extra
// tag-listing call, never incorrect data.
type PublishTagCache struct {
	BlogID    int64  `db:"blog_id"`
	AccountID string `db:"account_id"`
	TagID     string `db:"tag_id"`
}
