package postgres

import (
	"context"
	"database/sql"
	"time"

	"github.com/jmoiron/sqlx"

	"notepress/internal/domain"
)

type PostStore struct {
	db *sqlx.DB
}

func NewPostStore(db *sqlx.DB) *PostStore {
	return &PostStore{db: db}
}

type postRow struct {
	ID              string     `db:"id"`
	BlogID          int64      `db:"blog_id"`
	Title           string     `db:"title"`
	HTML            string     `db:"html"`
	Excerpt         string     `db:"excerpt"`
	Slug            string     `db:"slug"`
	Published       bool       `db:"published"`
	PublishedAt     *time.Time `db:"published_at"`
	SourceKind      string     `db:"source_kind"`
	SourceID        string     `db:"source_id"`
	SourceUpdatedAt time.Time  `db:"source_updated_at"`
	CreatedAt       time.Time  `db:"created_at"`
	UpdatedAt       time.Time  `db:"updated_at"`
}

func (r postRow) toDomain() domain.Post {
	return domain.Post{
		ID:          r.ID,
		BlogID:      r.BlogID,
		Title:       r.Title,
		HTML:        r.HTML,
		Excerpt:     r.Excerpt,
		Slug:        r.Slug,
		Published:   r.Published,
		PublishedAt: r.PublishedAt,
		Source: domain.PostSource{
			Kind: domain.SourceKind(r.SourceKind),
			ID:   r.SourceID,
		},
		SourceUpdatedAt: r.SourceUpdatedAt,
		CreatedAt:       r.CreatedAt,
		UpdatedAt:       r.UpdatedAt,
	}
}

const postColumns = `
	id, blog_id, title, html, excerpt, slug, published, published_at,
	source_kind, source_id, source_updated_at, created_at, updated_at`

// FindBySource returns the post materialized from a given source item, or
// nil when none exists. The source kind + id pair is unique per blog.
func (s *PostStore) FindBySource(ctx context.Context, blogID int64, source domain.PostSource) (*domain.Post, error) {
	query := `SELECT ` + postColumns + `
		FROM posts
		WHERE blog_id = $1 AND source_kind = $2 AND source_id = $3`

	var row postRow
	err := sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &row, query, blogID, source.Kind, source.ID)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	post := row.toDomain()
	return &post, nil
}

func (s *PostStore) Create(ctx context.Context, post *domain.Post) error {
	query := `
		INSERT INTO posts (
			id, blog_id, title, html, excerpt, slug, published, published_at,
			source_kind, source_id, source_updated_at, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`

	_, err := GetExecutor(ctx, s.db).ExecContext(ctx, query,
		post.ID, post.BlogID, post.Title, post.HTML, post.Excerpt, post.Slug,
		post.Published, post.PublishedAt,
		post.Source.Kind, post.Source.ID, post.SourceUpdatedAt,
		post.CreatedAt, post.UpdatedAt,
	)
	return err
}

func (s *PostStore) Update(ctx context.Context, post *domain.Post) error {
	query := `
		UPDATE posts SET
			title = $2, html = $3, excerpt = $4, slug = $5,
			published = $6, published_at = $7,
			source_updated_at = $8, updated_at = $9
		WHERE id = $1`

	_, err := GetExecutor(ctx, s.db).ExecContext(ctx, query,
		post.ID, post.Title, post.HTML, post.Excerpt, post.Slug,
		post.Published, post.PublishedAt, post.SourceUpdatedAt, post.UpdatedAt,
	)
	return err
}

// ListPublishedBySource returns every currently published post of one
// source kind; the orchestrator scans these for unpublish candidates.
func (s *PostStore) ListPublishedBySource(ctx context.Context, blogID int64, kind domain.SourceKind) ([]domain.Post, error) {
	query := `SELECT ` + postColumns + `
		FROM posts
		WHERE blog_id = $1 AND source_kind = $2 AND published = true
		ORDER BY published_at DESC`

	var rows []postRow
	if err := sqlx.SelectContext(ctx, GetExecutor(ctx, s.db), &rows, query, blogID, kind); err != nil {
		return nil, err
	}

	posts := make([]domain.Post, 0, len(rows))
	for _, r := range rows {
		posts = append(posts, r.toDomain())
	}
	return posts, nil
}

// SlugTaken reports whether another post on the blog already owns a slug.
func (s *PostStore) SlugTaken(ctx context.Context, blogID int64, slug, excludeID string) (bool, error) {
	query := `SELECT EXISTS (
		SELECT 1 FROM posts WHERE blog_id = $1 AND slug = $2 AND id <> $3
	)`

	var taken bool
	err := sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &taken, query, blogID, slug, excludeID)
	return taken, err
}
