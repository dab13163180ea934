package notes

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"notepress/internal/domain"
)

// Client is the rate-limit-aware adapter for the external note service.
// Every method returns either normalized results or one of the classified
// errors from this package. Credentials travel with each call; the call
// signatures do not vary by deployment environment.
type Client struct {
	httpClient *http.Client
	baseURL    string
	retry      RetryPolicy
	logger     *slog.Logger
}

// Config holds note service client configuration.
type Config struct {
	BaseURL string
	Timeout time.Duration
	Retry   RetryPolicy
}

// New creates a note service client.
func New(cfg Config, logger *slog.Logger) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: cfg.Timeout},
		baseURL:    strings.TrimSuffix(cfg.BaseURL, "/"),
		retry:      cfg.Retry,
		logger:     logger.With("source", domain.SourceNotes),
	}
}

// ListTags returns every tag in the authenticated account.
func (c *Client) ListTags(ctx context.Context, creds domain.Credentials) ([]domain.Tag, error) {
	var out []apiTag
	err := c.retry.Do(ctx, "list tags", func() error {
		return c.do(ctx, creds, http.MethodGet, "/tags", nil, &out)
	})
	if err != nil {
		return nil, err
	}

	tags := make([]domain.Tag, 0, len(out))
	for _, t := range out {
		tags = append(tags, domain.Tag{ID: t.GUID, Name: t.Name})
	}
	return tags, nil
}

// FindNoteMetadata runs a filtered metadata search bounded to one page of
// at most filter.PageSize entries.
func (c *Client) FindNoteMetadata(ctx context.Context, creds domain.Credentials, filter NoteFilter) (*MetadataPage, error) {
	body := map[string]any{
		"notebookGuid": filter.NotebookID,
		"maxNotes":     filter.PageSize,
	}
	if filter.TagID != "" {
		body["tagGuid"] = filter.TagID
	}
	if filter.Offset > 0 {
		body["offset"] = filter.Offset
	}
	if filter.UpdatedSince != nil {
		body["updatedSince"] = filter.UpdatedSince.UnixMilli()
	}

	var out apiSearchResponse
	err := c.retry.Do(ctx, "find note metadata", func() error {
		return c.do(ctx, creds, http.MethodPost, "/notes/search", body, &out)
	})
	if err != nil {
		return nil, err
	}

	page := &MetadataPage{UpdateCount: out.UpdateCount}
	for _, n := range out.Notes {
		page.Notes = append(page.Notes, NoteMetadata{
			GUID:      n.GUID,
			Title:     n.Title,
			TagIDs:    n.TagIDs,
			UpdatedAt: time.UnixMilli(n.Updated).UTC(),
		})
	}
	return page, nil
}

// GetNote fetches full note content together with its resource list.
func (c *Client) GetNote(ctx context.Context, creds domain.Credentials, guid string) (*domain.SourceNote, error) {
	var out apiNote
	err := c.retry.Do(ctx, "get note", func() error {
		return c.do(ctx, creds, http.MethodGet, "/notes/"+guid, nil, &out)
	})
	if err != nil {
		return nil, err
	}

	note := &domain.SourceNote{
		GUID:      out.GUID,
		Title:     out.Title,
		Markup:    out.Content,
		TagIDs:    out.TagIDs,
		CreatedAt: time.UnixMilli(out.Created).UTC(),
		UpdatedAt: time.UnixMilli(out.Updated).UTC(),
	}
	for _, r := range out.Resources {
		note.Resources = append(note.Resources, domain.NoteResource{
			GUID:     r.GUID,
			BodyHash: r.BodyHash,
			MIME:     r.MIME,
			Width:    r.Width,
			Height:   r.Height,
			Filename: r.Filename,
		})
	}
	return note, nil
}

// GetNoteTagNames returns the tag names currently on a note.
func (c *Client) GetNoteTagNames(ctx context.Context, creds domain.Credentials, guid string) ([]string, error) {
	var out apiTagNamesResponse
	err := c.retry.Do(ctx, "get note tag names", func() error {
		return c.do(ctx, creds, http.MethodGet, "/notes/"+guid+"/tags", nil, &out)
	})
	if err != nil {
		return nil, err
	}
	return out.Names, nil
}

// GetResourceData fetches the raw bytes of one embedded resource.
func (c *Client) GetResourceData(ctx context.Context, creds domain.Credentials, guid string) ([]byte, error) {
	var data []byte
	err := c.retry.Do(ctx, "get resource data", func() error {
		var err error
		data, err = c.doRaw(ctx, creds, "/resources/"+guid+"/data")
		return err
	})
	if err != nil {
		return nil, err
	}
	return data, nil
}

func (c *Client) endpoint(creds domain.Credentials, path string) string {
	base := c.baseURL
	if creds.NoteStoreURL != "" {
		base = strings.TrimSuffix(creds.NoteStoreURL, "/")
	}
	return base + path
}

func (c *Client) do(ctx context.Context, creds domain.Credentials, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.endpoint(creds, path), reader)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", "Bearer "+creds.Token)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &TransientError{Message: err.Error()}
	}
	defer resp.Body.Close()

	if err := classify(resp); err != nil {
		return err
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func (c *Client) doRaw(ctx context.Context, creds domain.Credentials, path string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint(creds, path), nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+creds.Token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &TransientError{Message: err.Error()}
	}
	defer resp.Body.Close()

	if err := classify(resp); err != nil {
		return nil, err
	}
	return io.ReadAll(resp.Body)
}

// classify maps an HTTP response onto this package's error taxonomy. The
// body is only consumed on error statuses.
func classify(resp *http.Response) error {
	switch {
	case resp.StatusCode == http.StatusOK:
		return nil
	case resp.StatusCode == http.StatusTooManyRequests:
		return &RateLimitedError{RetryAfter: retryAfter(resp)}
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return &UnauthorizedError{Message: errorMessage(resp)}
	case resp.StatusCode == http.StatusNotFound:
		return &NotFoundError{Kind: "object", ID: resp.Request.URL.Path}
	default:
		return &TransientError{Message: fmt.Sprintf("unexpected status %d: %s", resp.StatusCode, errorMessage(resp))}
	}
}

func retryAfter(resp *http.Response) time.Duration {
	if v := resp.Header.Get("Retry-After"); v != "" {
		if secs, err := strconv.Atoi(v); err == nil && secs > 0 {
			return time.Duration(secs) * time.Second
		}
	}
	var body apiError
	if err := json.NewDecoder(resp.Body).Decode(&body); err == nil && body.RetryAfter > 0 {
		return time.Duration(body.RetryAfter) * time.Second
	}
	// The service did not say; assume a minute.
	return time.Minute
}

func errorMessage(resp *http.Response) string {
	var body apiError
	if err := json.NewDecoder(resp.Body).Decode(&body); err == nil && body.Message != "" {
		return body.Message
	}
	return resp.Status
}
