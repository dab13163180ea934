package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"

	"notepress/internal/domain"
)

type CredentialStore struct {
	db *sqlx.DB
}

func NewCredentialStore(db *sqlx.DB) *CredentialStore {
	return &CredentialStore{db: db}
}

func (s *CredentialStore) Get(ctx context.Context, blogID int64) (*domain.Credentials, error) {
	query := `
		SELECT token, account_id, note_store_url
		FROM credentials
		WHERE blog_id = $1`

	var row struct {
		Token        string `db:"token"`
		AccountID    string `db:"account_id"`
		NoteStoreURL string `db:"note_store_url"`
	}
	err := sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &row, query, blogID)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("credentials for blog %d: %w", blogID, ErrNotFound)
	}
	if err != nil {
		return nil, err
	}

	return &domain.Credentials{
		Token:        row.Token,
		AccountID:    row.AccountID,
		NoteStoreURL: row.NoteStoreURL,
	}, nil
}

func (s *CredentialStore) Put(ctx context.Context, blogID int64, creds *domain.Credentials) error {
	query := `
		INSERT INTO credentials (blog_id, token, account_id, note_store_url)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (blog_id) DO UPDATE SET
			token = EXCLUDED.token,
			account_id = EXCLUDED.account_id,
			note_store_url = EXCLUDED.note_store_url`

	_, err := GetExecutor(ctx, s.db).ExecContext(ctx, query, blogID, creds.Token, creds.AccountID, creds.NoteStoreURL)
	return err
}
