package assets

import (
	"context"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"notepress/internal/domain"
)

// fakeObjects is an in-memory ObjectStorage counting writes.
type fakeObjects struct {
	data    map[string][]byte
	puts    int
	copies  int
	deletes int
	copyErr error
}

func newFakeObjects() *fakeObjects {
	return &fakeObjects{data: map[string][]byte{}}
}

func (f *fakeObjects) Put(_ context.Context, key string, body []byte, _ string) (string, error) {
	f.puts++
	f.data[key] = body
	return "https://assets.local/" + key, nil
}

func (f *fakeObjects) Head(_ context.Context, key string) (*ObjectInfo, error) {
	body, ok := f.data[key]
	if !ok {
		return nil, nil
	}
	return &ObjectInfo{URL: "https://assets.local/" + key, Size: int64(len(body))}, nil
}

func (f *fakeObjects) Copy(_ context.Context, srcKey, dstKey string) error {
	f.copies++
	if f.copyErr != nil {
		return f.copyErr
	}
	f.data[dstKey] = f.data[srcKey]
	return nil
}

func (f *fakeObjects) Delete(_ context.Context, key string) error {
	f.deletes++
	delete(f.data, key)
	return nil
}

// fakeRecords is an in-memory RecordStore.
type fakeRecords struct {
	byID map[string]*domain.AssetRecord
}

func newFakeRecords() *fakeRecords {
	return &fakeRecords{byID: map[string]*domain.AssetRecord{}}
}

func (f *fakeRecords) GetByContentHash(_ context.Context, contentHash string) (*domain.AssetRecord, error) {
	for _, r := range f.byID {
		if r.ContentHash == contentHash {
			return r, nil
		}
	}
	return nil, nil
}

func (f *fakeRecords) GetByCallerHash(_ context.Context, ownerID, callerHash string) (*domain.AssetRecord, error) {
	for _, r := range f.byID {
		if r.OwnerID == ownerID && r.CallerHash == callerHash {
			return r, nil
		}
	}
	return nil, nil
}

func (f *fakeRecords) FilenameTaken(_ context.Context, ownerID, filename, excludeID string) (bool, error) {
	for _, r := range f.byID {
		if r.OwnerID == ownerID && r.Filename == filename && r.ID != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeRecords) Save(_ context.Context, rec *domain.AssetRecord) error {
	clone := *rec
	f.byID[rec.ID] = &clone
	return nil
}

func newTestStore(objects *fakeObjects, records *fakeRecords) *Store {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
	return New(objects, records, logger)
}

func TestStore_NewContentUploadedAndRecorded(t *testing.T) {
	objects := newFakeObjects()
	records := newFakeRecords()
	store := newTestStore(objects, records)

	rec, err := store.Store(context.Background(), StoreInput{
		Bytes:      []byte("image bytes"),
		CallerHash: "res-hash-1",
		MIME:       "image/jpeg",
		OwnerID:    "owner-1",
		Title:      "Beach Day",
	})
	require.NoError(t, err)

	assert.Equal(t, 1, objects.puts)
	assert.Equal(t, "beach-day.jpg", rec.Filename)
	assert.Equal(t, domain.NamingTitle, rec.Naming.Strategy)
	assert.Equal(t, "https://assets.local/owner-1/beach-day.jpg", rec.URL)
	assert.Equal(t, int64(len("image bytes")), rec.Size)
	assert.NotEmpty(t, rec.ContentHash)
}

func TestStore_SameBytesStoredOnce(t *testing.T) {
	objects := newFakeObjects()
	records := newFakeRecords()
	store := newTestStore(objects, records)

	in := StoreInput{
		Bytes:      []byte("same bytes"),
		CallerHash: "res-hash-1",
		MIME:       "image/jpeg",
		OwnerID:    "owner-1",
		Title:      "Beach Day",
	}

	first, err := store.Store(context.Background(), in)
	require.NoError(t, err)

	second, err := store.Store(context.Background(), in)
	require.NoError(t, err)

	assert.Equal(t, 1, objects.puts)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, first.URL, second.URL)
}

func TestStore_SameBytesDifferentCallerHashDeduped(t *testing.T) {
	objects := newFakeObjects()
	records := newFakeRecords()
	store := newTestStore(objects, records)

	first, err := store.Store(context.Background(), StoreInput{
		Bytes:      []byte("shared bytes"),
		CallerHash: "note-resource-hash",
		MIME:       "image/jpeg",
		OwnerID:    "owner-1",
		Title:      "Beach Day",
	})
	require.NoError(t, err)

	second, err := store.Store(context.Background(), StoreInput{
		Bytes:      []byte("shared bytes"),
		CallerHash: "https://cdn.example.com/a.jpg",
		MIME:       "image/jpeg",
		OwnerID:    "owner-1",
		Title:      "Beach Day",
	})
	require.NoError(t, err)

	assert.Equal(t, 1, objects.puts)
	assert.Equal(t, first.ID, second.ID)
}

func TestStore_TitleChangeRenamesWithoutReupload(t *testing.T) {
	objects := newFakeObjects()
	records := newFakeRecords()
	store := newTestStore(objects, records)

	in := StoreInput{
		Bytes:      []byte("stable bytes"),
		CallerHash: "res-1",
		MIME:       "image/jpeg",
		OwnerID:    "owner-1",
		Title:      "Old Title",
	}
	first, err := store.Store(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, "old-title.jpg", first.Filename)

	in.Title = "New Title"
	renamed, err := store.Store(context.Background(), in)
	require.NoError(t, err)

	assert.Equal(t, 1, objects.puts)
	assert.Equal(t, 1, objects.copies)
	assert.Equal(t, 1, objects.deletes)
	assert.Equal(t, "new-title.jpg", renamed.Filename)
	assert.Equal(t, "https://assets.local/owner-1/new-title.jpg", renamed.URL)
	assert.Equal(t, first.ID, renamed.ID)

	_, oldExists := objects.data["owner-1/old-title.jpg"]
	assert.False(t, oldExists)
}

func TestStore_RenameCopyFailureFallsBackToUpload(t *testing.T) {
	objects := newFakeObjects()
	records := newFakeRecords()
	store := newTestStore(objects, records)

	in := StoreInput{
		Bytes:      []byte("stable bytes"),
		CallerHash: "res-1",
		MIME:       "image/jpeg",
		OwnerID:    "owner-1",
		Title:      "Old Title",
	}
	_, err := store.Store(context.Background(), in)
	require.NoError(t, err)

	objects.copyErr = assert.AnError
	in.Title = "New Title"
	renamed, err := store.Store(context.Background(), in)
	require.NoError(t, err)

	assert.Equal(t, 2, objects.puts)
	assert.Equal(t, "new-title.jpg", renamed.Filename)
}

func TestStore_FilenameCollisionSuffixed(t *testing.T) {
	objects := newFakeObjects()
	records := newFakeRecords()
	store := newTestStore(objects, records)

	first, err := store.Store(context.Background(), StoreInput{
		Bytes:      []byte("first bytes"),
		CallerHash: "res-1",
		MIME:       "image/jpeg",
		OwnerID:    "owner-1",
		Title:      "Beach Day",
	})
	require.NoError(t, err)
	assert.Equal(t, "beach-day.jpg", first.Filename)

	second, err := store.Store(context.Background(), StoreInput{
		Bytes:      []byte("different bytes"),
		CallerHash: "res-2",
		MIME:       "image/jpeg",
		OwnerID:    "owner-1",
		Title:      "Beach Day",
	})
	require.NoError(t, err)
	assert.Equal(t, "beach-day-1.jpg", second.Filename)
	assert.NotEqual(t, first.ID, second.ID)
}

func TestStore_StableInputsAreIdempotent(t *testing.T) {
	objects := newFakeObjects()
	records := newFakeRecords()
	store := newTestStore(objects, records)

	in := StoreInput{
		Bytes:      []byte("stable"),
		CallerHash: "res-1",
		MIME:       "image/jpeg",
		OwnerID:    "owner-1",
		Title:      "Fixed Title",
	}

	first, err := store.Store(context.Background(), in)
	require.NoError(t, err)
	updatedAt := first.UpdatedAt

	time.Sleep(time.Millisecond)

	again, err := store.Store(context.Background(), in)
	require.NoError(t, err)

	assert.Equal(t, 0, objects.copies)
	assert.Equal(t, updatedAt, again.UpdatedAt)
}
