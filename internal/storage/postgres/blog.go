package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"notepress/internal/domain"
)

type BlogStore struct {
	db *sqlx.DB
}

func NewBlogStore(db *sqlx.DB) *BlogStore {
	return &BlogStore{db: db}
}

func (s *BlogStore) Get(ctx context.Context, id int64) (*domain.Blog, error) {
	query := `
		SELECT id, owner_id, title, source_kind, notebook_id, last_synced_at,
		       last_attempt_at, last_update_count, created_at, updated_at
		FROM blogs
		WHERE id = $1`

	var blog domain.Blog
	err := sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &blog, query, id)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("blog %d: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return &blog, nil
}

func (s *BlogStore) List(ctx context.Context) ([]domain.Blog, error) {
	query := `
		SELECT id, owner_id, title, source_kind, notebook_id, last_synced_at,
		       last_attempt_at, last_update_count, created_at, updated_at
		FROM blogs
		ORDER BY id`

	var blogs []domain.Blog
	err := sqlx.SelectContext(ctx, GetExecutor(ctx, s.db), &blogs, query)
	return blogs, err
}

// MarkAttempt records that a sync pass ran. syncedAt is nil when the pass
// failed; the last-successful-sync column must not move then, because the
// next change window is computed from it.
func (s *BlogStore) MarkAttempt(ctx context.Context, blogID int64, attemptAt time.Time, syncedAt *time.Time, updateCount int) error {
	query := `
		UPDATE blogs SET
			last_attempt_at = $2,
			last_synced_at = COALESCE($3, last_synced_at),
			last_update_count = $4,
			updated_at = now()
		WHERE id = $1`

	_, err := GetExecutor(ctx, s.db).ExecContext(ctx, query, blogID, attemptAt, syncedAt, updateCount)
	return err
}
