package ghost

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// Post is one entry from the Ghost-style content API.
type Post struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	HTML        string     `json:"html"`
	Markdown    string     `json:"markdown"`
	Status      string     `json:"status"`
	UpdatedAt   time.Time  `json:"updated_at"`
	PublishedAt *time.Time `json:"published_at"`
}

// Published reports whether the post should be live.
func (p Post) Published() bool {
	return p.Status == "published"
}

type postsResponse struct {
	Posts []Post `json:"posts"`
	Meta  struct {
		Pagination struct {
			Page  int `json:"page"`
			Pages int `json:"pages"`
		} `json:"pagination"`
	} `json:"meta"`
}

// Config holds Ghost API client configuration.
type Config struct {
	BaseURL  string
	APIKey   string
	PageSize int
	Timeout  time.Duration
}

// Client fetches posts from a Ghost-style blog API. It is deliberately
// simpler than the note service adapter: the API has no per-account rate
// budget worth classifying, so failures just propagate.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	pageSize   int
	logger     *slog.Logger
}

func New(cfg Config, logger *slog.Logger) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: cfg.Timeout},
		baseURL:    strings.TrimSuffix(cfg.BaseURL, "/"),
		apiKey:     cfg.APIKey,
		pageSize:   cfg.PageSize,
		logger:     logger.With("source", "ghost"),
	}
}

// FetchPostsUpdatedSince returns every post updated after since, walking
// pagination until exhausted.
func (c *Client) FetchPostsUpdatedSince(ctx context.Context, since time.Time) ([]Post, error) {
	var all []Post

	for page := 1; ; page++ {
		resp, err := c.fetchPage(ctx, since, page)
		if err != nil {
			return all, fmt.Errorf("fetch page %d: %w", page, err)
		}

		all = append(all, resp.Posts...)

		c.logger.Debug("fetched page",
			"page", page,
			"posts", len(resp.Posts),
			"total", len(all),
		)

		if page >= resp.Meta.Pagination.Pages {
			break
		}
	}

	return all, nil
}

func (c *Client) fetchPage(ctx context.Context, since time.Time, page int) (*postsResponse, error) {
	q := url.Values{}
	q.Set("key", c.apiKey)
	q.Set("limit", strconv.Itoa(c.pageSize))
	q.Set("page", strconv.Itoa(page))
	q.Set("formats", "html")
	if !since.IsZero() {
		q.Set("filter", "updated_at:>'"+since.UTC().Format("2006-01-02 15:04:05")+"'")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/posts/?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status: %d", resp.StatusCode)
	}

	var out postsResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	return &out, nil
}
