package assets

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"notepress/internal/domain"
)

// ObjectStorage is the object store backend: opaque keys in, URLs out.
type ObjectStorage interface {
	Put(ctx context.Context, key string, body []byte, contentType string) (string, error)
	Head(ctx context.Context, key string) (*ObjectInfo, error)
	Copy(ctx context.Context, srcKey, dstKey string) error
	Delete(ctx context.Context, key string) error
}

// ObjectInfo describes one stored object. A nil ObjectInfo from Head means
// the key does not exist.
type ObjectInfo struct {
	URL  string
	Size int64
}

// RecordStore persists asset records.
type RecordStore interface {
	GetByContentHash(ctx context.Context, contentHash string) (*domain.AssetRecord, error)
	GetByCallerHash(ctx context.Context, ownerID, callerHash string) (*domain.AssetRecord, error)
	FilenameTaken(ctx context.Context, ownerID, filename, excludeID string) (bool, error)
	Save(ctx context.Context, rec *domain.AssetRecord) error
}

// StoreInput is one binary to persist. CallerHash is whatever identifier
// the caller references the bytes by; the dedup key is always the SHA-256
// of Bytes.
type StoreInput struct {
	Bytes            []byte
	CallerHash       string
	MIME             string
	OwnerID          string
	Title            string
	OriginalFilename string
	ContentDate      time.Time
}

// Store is the content-addressed asset store. Byte-identical content is
// stored exactly once regardless of how callers identify it, and a change
// in naming inputs renames the existing object instead of re-uploading.
type Store struct {
	objects ObjectStorage
	records RecordStore
	logger  *slog.Logger
	now     func() time.Time
}

func New(objects ObjectStorage, records RecordStore, logger *slog.Logger) *Store {
	return &Store{
		objects: objects,
		records: records,
		logger:  logger.With("component", "assets"),
		now:     time.Now,
	}
}

// Store persists in.Bytes and returns the addressable record. The
// existence check and the write are not atomic; a concurrent double store
// of the same bytes may briefly produce two objects, both valid, and
// later syncs converge on one record.
func (s *Store) Store(ctx context.Context, in StoreInput) (*domain.AssetRecord, error) {
	sum := sha256.Sum256(in.Bytes)
	contentHash := hex.EncodeToString(sum[:])

	existing, err := s.findExisting(ctx, in, contentHash)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return s.reconcileName(ctx, existing, in)
	}

	naming := s.deriveName(ctx, in, contentHash, "")

	url, err := s.objects.Put(ctx, objectKey(in.OwnerID, naming.filename), in.Bytes, in.MIME)
	if err != nil {
		return nil, fmt.Errorf("put object: %w", err)
	}

	now := s.now().UTC()
	rec := &domain.AssetRecord{
		ID:          uuid.NewString(),
		OwnerID:     in.OwnerID,
		ContentHash: contentHash,
		CallerHash:  in.CallerHash,
		Filename:    naming.filename,
		MIME:        in.MIME,
		Size:        int64(len(in.Bytes)),
		URL:         url,
		Naming:      naming.decision,
		CapturedAt:  naming.capturedAt,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.records.Save(ctx, rec); err != nil {
		return nil, fmt.Errorf("save asset record: %w", err)
	}

	s.logger.Debug("stored asset",
		"filename", rec.Filename,
		"content_hash", contentHash[:12],
		"strategy", rec.Naming.Strategy,
		"size", rec.Size,
	)
	return rec, nil
}

// findExisting looks for a prior record by caller identity first, then by
// content hash. The second check is what enforces the one-object-per-hash
// invariant across callers that identify the same bytes differently.
func (s *Store) findExisting(ctx context.Context, in StoreInput, contentHash string) (*domain.AssetRecord, error) {
	rec, err := s.records.GetByCallerHash(ctx, in.OwnerID, in.CallerHash)
	if err != nil {
		return nil, fmt.Errorf("lookup by caller hash: %w", err)
	}
	if rec != nil {
		return rec, nil
	}

	rec, err = s.records.GetByContentHash(ctx, contentHash)
	if err != nil {
		return nil, fmt.Errorf("lookup by content hash: %w", err)
	}
	return rec, nil
}

// reconcileName re-derives the filename under current inputs. When it
// matches the stored one nothing is written. When it differs the object
// is copied to the new key and the old key deleted, never re-uploaded;
// a failed copy falls back to a fresh upload of the bytes.
func (s *Store) reconcileName(ctx context.Context, rec *domain.AssetRecord, in StoreInput) (*domain.AssetRecord, error) {
	naming := s.deriveName(ctx, in, rec.ContentHash, rec.ID)
	if naming.filename == rec.Filename {
		return rec, nil
	}

	oldKey := objectKey(rec.OwnerID, rec.Filename)
	newKey := objectKey(rec.OwnerID, naming.filename)

	if err := s.objects.Copy(ctx, oldKey, newKey); err != nil {
		s.logger.Warn("rename copy failed, re-uploading",
			"from", oldKey, "to", newKey, "error", err)
		if _, err := s.objects.Put(ctx, newKey, in.Bytes, rec.MIME); err != nil {
			return nil, fmt.Errorf("rename fallback upload: %w", err)
		}
	} else if err := s.objects.Delete(ctx, oldKey); err != nil {
		// Orphaned old object; harmless, the record points at the new key.
		s.logger.Warn("delete after rename failed", "key", oldKey, "error", err)
	}

	info, err := s.objects.Head(ctx, newKey)
	if err != nil {
		return nil, fmt.Errorf("head renamed object: %w", err)
	}
	if info != nil {
		rec.URL = info.URL
	}

	s.logger.Info("renamed asset",
		"from", rec.Filename,
		"to", naming.filename,
		"strategy", naming.decision.Strategy,
	)

	rec.Filename = naming.filename
	rec.Naming = naming.decision
	if naming.capturedAt != nil {
		rec.CapturedAt = naming.capturedAt
	}
	rec.UpdatedAt = s.now().UTC()

	if err := s.records.Save(ctx, rec); err != nil {
		return nil, fmt.Errorf("save asset record: %w", err)
	}
	return rec, nil
}

func objectKey(ownerID, filename string) string {
	return ownerID + "/" + filename
}
