package postgres

import (
	"context"
	"database/sql"
	"time"

	"github.com/jmoiron/sqlx"

	"notepress/internal/domain"
)

type AssetStore struct {
	db *sqlx.DB
}

func NewAssetStore(db *sqlx.DB) *AssetStore {
	return &AssetStore{db: db}
}

type assetRow struct {
	ID             string     `db:"id"`
	OwnerID        string     `db:"owner_id"`
	ContentHash    string     `db:"content_hash"`
	CallerHash     string     `db:"caller_hash"`
	Filename       string     `db:"filename"`
	MIME           string     `db:"mime"`
	Size           int64      `db:"size"`
	URL            string     `db:"url"`
	NamingStrategy string     `db:"naming_strategy"`
	NamingReason   string     `db:"naming_reason"`
	CapturedAt     *time.Time `db:"captured_at"`
	CreatedAt      time.Time  `db:"created_at"`
	UpdatedAt      time.Time  `db:"updated_at"`
}

func (r assetRow) toDomain() *domain.AssetRecord {
	return &domain.AssetRecord{
		ID:          r.ID,
		OwnerID:     r.OwnerID,
		ContentHash: r.ContentHash,
		CallerHash:  r.CallerHash,
		Filename:    r.Filename,
		MIME:        r.MIME,
		Size:        r.Size,
		URL:         r.URL,
		Naming: domain.NamingDecision{
			Strategy: domain.NamingStrategy(r.NamingStrategy),
			Reason:   r.NamingReason,
		},
		CapturedAt: r.CapturedAt,
		CreatedAt:  r.CreatedAt,
		UpdatedAt:  r.UpdatedAt,
	}
}

const assetColumns = `
	id, owner_id, content_hash, caller_hash, filename, mime, size, url,
	naming_strategy, naming_reason, captured_at, created_at, updated_at`

// GetByContentHash looks up a record by the dedup key. Content hashes are
// globally unique across owners by invariant.
func (s *AssetStore) GetByContentHash(ctx context.Context, contentHash string) (*domain.AssetRecord, error) {
	query := `SELECT ` + assetColumns + ` FROM assets WHERE content_hash = $1`

	var row assetRow
	err := sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &row, query, contentHash)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return row.toDomain(), nil
}

func (s *AssetStore) GetByCallerHash(ctx context.Context, ownerID, callerHash string) (*domain.AssetRecord, error) {
	query := `SELECT ` + assetColumns + ` FROM assets WHERE owner_id = $1 AND caller_hash = $2`

	var row assetRow
	err := sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &row, query, ownerID, callerHash)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return row.toDomain(), nil
}

func (s *AssetStore) FilenameTaken(ctx context.Context, ownerID, filename, excludeID string) (bool, error) {
	query := `SELECT EXISTS (
		SELECT 1 FROM assets WHERE owner_id = $1 AND filename = $2 AND id <> $3
	)`

	var taken bool
	err := sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &taken, query, ownerID, filename, excludeID)
	return taken, err
}

func (s *AssetStore) Save(ctx context.Context, rec *domain.AssetRecord) error {
	query := `
		INSERT INTO assets (
			id, owner_id, content_hash, caller_hash, filename, mime, size, url,
			naming_strategy, naming_reason, captured_at, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		ON CONFLICT (id) DO UPDATE SET
			caller_hash = EXCLUDED.caller_hash,
			filename = EXCLUDED.filename,
			url = EXCLUDED.url,
			naming_strategy = EXCLUDED.naming_strategy,
			naming_reason = EXCLUDED.naming_reason,
			captured_at = EXCLUDED.captured_at,
			updated_at = EXCLUDED.updated_at`

	_, err := GetExecutor(ctx, s.db).ExecContext(ctx, query,
		rec.ID, rec.OwnerID, rec.ContentHash, rec.CallerHash, rec.Filename,
		rec.MIME, rec.Size, rec.URL,
		rec.Naming.Strategy, rec.Naming.Reason, rec.CapturedAt,
		rec.CreatedAt, rec.UpdatedAt,
	)
	return err
}
