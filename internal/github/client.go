// Package github proxies repository listings from the GitHub API.
package github

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"devconnect/internal/cache"
	apperrors "devconnect/internal/errors"
)

const (
	repoCacheTTL   = 10 * time.Minute
	requestTimeout = 10 * time.Second
)

// Client fetches a user's most recent public repositories. Responses are
// forwarded verbatim and cached briefly to spare the upstream rate limit.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
	cache      *cache.Client
}

// NewClient creates a client against the given API base URL. An empty token
// means unauthenticated requests.
func NewClient(baseURL, token string, cacheClient *cache.Client) *Client {
	return &Client{
		baseURL:    baseURL,
		token:      token,
		httpClient: &http.Client{Timeout: requestTimeout},
		cache:      cacheClient,
	}
}

// ListRepos returns the raw upstream JSON for a username's five most recent
// repositories. Any upstream non-success maps to ErrGithubUserNotFound.
func (c *Client) ListRepos(ctx context.Context, username string) (json.RawMessage, error) {
	key := "github:repos:" + username
	if data, _ := c.cache.Get(ctx, key); data != nil {
		return json.RawMessage(data), nil
	}

	endpoint := fmt.Sprintf("%s/users/%s/repos?per_page=5&sort=created:asc", c.baseURL, url.PathEscape(username))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("build github request: %w", err)
	}
	req.Header.Set("User-Agent", "devconnect")
	req.Header.Set("Accept", "application/vnd.github+json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("github request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, apperrors.ErrGithubUserNotFound
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read github response: %w", err)
	}

	_ = c.cache.Set(ctx, key, body, repoCacheTTL)
	return json.RawMessage(body), nil
}
