package postgres

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"

	"notepress/internal/domain"
)

// PublishTagStore persists the resolved publish-tag id per blog. Writes
// are last-write-wins; the value is an optimization, never authoritative.
type PublishTagStore struct {
	db *sqlx.DB
}

func NewPublishTagStore(db *sqlx.DB) *PublishTagStore {
	return &PublishTagStore{db: db}
}

func (s *PublishTagStore) Get(ctx context.Context, blogID int64) (*domain.PublishTagCache, error) {
	query := `SELECT blog_id, account_id, tag_id FROM publish_tags WHERE blog_id = $1`

	var rec domain.PublishTagCache
	err := sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &rec, query, blogID)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

func (s *PublishTagStore) Put(ctx context.Context, rec *domain.PublishTagCache) error {
	query := `
		INSERT INTO publish_tags (blog_id, account_id, tag_id)
		VALUES ($1, $2, $3)
		ON CONFLICT (blog_id) DO UPDATE SET
			account_id = EXCLUDED.account_id,
			tag_id = EXCLUDED.tag_id`

	_, err := GetExecutor(ctx, s.db).ExecContext(ctx, query, rec.BlogID, rec.AccountID, rec.TagID)
	return err
}
