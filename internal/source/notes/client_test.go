package notes

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"notepress/internal/domain"
)

func testClient(t *testing.T, handler http.Handler) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
	client := New(Config{
		BaseURL: srv.URL,
		Timeout: 5 * time.Second,
		Retry:   NewRetryPolicy(1, time.Millisecond, time.Millisecond, 60*time.Second, logger),
	}, logger)
	return client, srv
}

func testCreds() domain.Credentials {
	return domain.Credentials{Token: "tok-123", AccountID: "acct-1"}
}

func TestClient_ListTags(t *testing.T) {
	client, _ := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/tags", r.URL.Path)
		assert.Equal(t, "Bearer tok-123", r.Header.Get("Authorization"))
		json.NewEncoder(w).Encode([]apiTag{
			{GUID: "t1", Name: "published"},
			{GUID: "t2", Name: "travel"},
		})
	}))

	tags, err := client.ListTags(context.Background(), testCreds())
	require.NoError(t, err)
	assert.Equal(t, []domain.Tag{
		{ID: "t1", Name: "published"},
		{ID: "t2", Name: "travel"},
	}, tags)
}

func TestClient_FindNoteMetadata_SendsFilter(t *testing.T) {
	since := time.Date(2025, 8, 1, 12, 0, 0, 0, time.UTC)

	client, _ := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/notes/search", r.URL.Path)

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "nb-1", body["notebookGuid"])
		assert.Equal(t, "tag-pub", body["tagGuid"])
		assert.Equal(t, float64(since.UnixMilli()), body["updatedSince"])
		assert.Equal(t, float64(50), body["maxNotes"])

		json.NewEncoder(w).Encode(apiSearchResponse{
			Notes: []apiNoteMetadata{
				{GUID: "n1", Title: "Hello", TagIDs: []string{"tag-pub"}, Updated: since.UnixMilli()},
			},
			UpdateCount: 42,
		})
	}))

	page, err := client.FindNoteMetadata(context.Background(), testCreds(), NoteFilter{
		NotebookID:   "nb-1",
		TagID:        "tag-pub",
		UpdatedSince: &since,
		PageSize:     50,
	})
	require.NoError(t, err)
	assert.Equal(t, 42, page.UpdateCount)
	require.Len(t, page.Notes, 1)
	assert.Equal(t, "n1", page.Notes[0].GUID)
	assert.Equal(t, since, page.Notes[0].UpdatedAt)
}

func TestClient_FindNoteMetadata_SendsOffset(t *testing.T) {
	client, _ := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, float64(100), body["offset"])
		json.NewEncoder(w).Encode(apiSearchResponse{})
	}))

	_, err := client.FindNoteMetadata(context.Background(), testCreds(), NoteFilter{
		NotebookID: "nb-1",
		PageSize:   50,
		Offset:     100,
	})
	require.NoError(t, err)
}

func TestClient_GetNote(t *testing.T) {
	created := time.Date(2025, 8, 1, 9, 0, 0, 0, time.UTC)

	client, _ := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/notes/n1", r.URL.Path)
		json.NewEncoder(w).Encode(apiNote{
			GUID:    "n1",
			Title:   "Hello",
			Content: "<en-note><p>hi</p></en-note>",
			Resources: []apiResource{
				{GUID: "r1", BodyHash: "abc123", MIME: "image/jpeg", Width: 800, Height: 600, Filename: "photo.jpg"},
			},
			Created: created.UnixMilli(),
			Updated: created.UnixMilli(),
		})
	}))

	note, err := client.GetNote(context.Background(), testCreds(), "n1")
	require.NoError(t, err)
	assert.Equal(t, "<en-note><p>hi</p></en-note>", note.Markup)
	require.Len(t, note.Resources, 1)
	assert.Equal(t, "abc123", note.Resources[0].BodyHash)
	assert.Equal(t, "photo.jpg", note.Resources[0].Filename)
	assert.Equal(t, created, note.CreatedAt)
}

func TestClient_GetResourceData(t *testing.T) {
	client, _ := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/resources/r1/data", r.URL.Path)
		w.Write([]byte{0xFF, 0xD8, 0xFF, 0xE0})
	}))

	data, err := client.GetResourceData(context.Background(), testCreds(), "r1")
	require.NoError(t, err)
	assert.Equal(t, []byte{0xFF, 0xD8, 0xFF, 0xE0}, data)
}

func TestClient_NoteStoreURLOverridesBase(t *testing.T) {
	called := false
	override := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		json.NewEncoder(w).Encode([]apiTag{})
	}))
	defer override.Close()

	client, _ := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("base URL must not be used when credentials carry a store URL")
	}))

	creds := testCreds()
	creds.NoteStoreURL = override.URL

	_, err := client.ListTags(context.Background(), creds)
	require.NoError(t, err)
	assert.True(t, called)
}

func TestClient_Classify429WithRetryAfterHeader(t *testing.T) {
	client, _ := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Retry-After", "120")
		w.WriteHeader(http.StatusTooManyRequests)
	}))

	_, err := client.ListTags(context.Background(), testCreds())
	require.Error(t, err)

	wait, ok := RateLimitWait(err)
	assert.True(t, ok)
	assert.Equal(t, 2*time.Minute, wait)
}

func TestClient_Classify429WithBodyWait(t *testing.T) {
	client, _ := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		json.NewEncoder(w).Encode(apiError{Code: "RATE_LIMIT_REACHED", RetryAfter: 90})
	}))

	_, err := client.ListTags(context.Background(), testCreds())
	require.Error(t, err)

	wait, ok := RateLimitWait(err)
	assert.True(t, ok)
	assert.Equal(t, 90*time.Second, wait)
}

func TestClient_Classify401(t *testing.T) {
	client, _ := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(apiError{Code: "AUTH_EXPIRED", Message: "token expired"})
	}))

	_, err := client.ListTags(context.Background(), testCreds())
	require.Error(t, err)
	assert.True(t, IsUnauthorized(err))
	assert.Contains(t, err.Error(), "token expired")
}

func TestClient_Classify404(t *testing.T) {
	client, _ := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))

	_, err := client.GetNote(context.Background(), testCreds(), "missing")
	require.Error(t, err)
	assert.True(t, IsNotFound(err))
}

func TestClient_Classify500AsTransient(t *testing.T) {
	client, _ := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))

	_, err := client.ListTags(context.Background(), testCreds())
	require.Error(t, err)

	_, rateLimited := RateLimitWait(err)
	assert.False(t, rateLimited)
	assert.False(t, IsUnauthorized(err))
	assert.False(t, IsNotFound(err))
}
