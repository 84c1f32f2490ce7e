package github

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	defaultAPIBaseURL = "https://api.github.com"
	defaultRawBaseURL = "https://raw.githubusercontent.com"
)

// Client fetches repository listings and raw file content from GitHub.
type Client struct {
	apiBaseURL string
	rawBaseURL string
	owner      string
	repo       string
	branch     string
	token      string
	httpClient *http.Client
}

// Option customizes a Client.
type Option func(*Client)

// WithBaseURLs overrides the GitHub endpoints, used by tests.
func WithBaseURLs(apiBaseURL, rawBaseURL string) Option {
	return func(c *Client) {
		c.apiBaseURL = strings.TrimSuffix(apiBaseURL, "/")
		c.rawBaseURL = strings.TrimSuffix(rawBaseURL, "/")
	}
}

// WithToken sets a bearer token for authenticated requests, which raises
// the GitHub API rate limit.
func WithToken(token string) Option {
	return func(c *Client) { c.token = token }
}

// NewClient creates a client for one repository branch.
func NewClient(owner, repo, branch string, timeout time.Duration, opts ...Option) *Client {
	c := &Client{
		apiBaseURL: defaultAPIBaseURL,
		rawBaseURL: defaultRawBaseURL,
		owner:      owner,
		repo:       repo,
		branch:     branch,
		httpClient: &http.Client{Timeout: timeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// treeResponse is the subset of the git trees API payload we consume.
type treeResponse struct {
	Tree []struct {
		Path string `json:"path"`
		Type string `json:"type"`
	} `json:"tree"`
	Truncated bool `json:"truncated"`
}

// ListTree returns every file path in the repository branch as a flat list.
func (c *Client) ListTree(ctx context.Context) ([]string, error) {
	endpoint := fmt.Sprintf("%s/repos/%s/%s/git/trees/%s?recursive=1",
		c.apiBaseURL, c.owner, c.repo, c.branch)

	body, err := c.get(ctx, endpoint)
	if err != nil {
		return nil, err
	}

	var tree treeResponse
	if err := json.Unmarshal(body, &tree); err != nil {
		return nil, fmt.Errorf("failed to decode tree listing: %w", err)
	}

	paths := make([]string, 0, len(tree.Tree))
	for _, entry := range tree.Tree {
		if entry.Type == "blob" {
			paths = append(paths, entry.Path)
		}
	}
	return paths, nil
}

// FetchFile returns the raw content of one repository file.
func (c *Client) FetchFile(ctx context.Context, path string) (string, error) {
	endpoint := fmt.Sprintf("%s/%s/%s/%s/%s",
		c.rawBaseURL, c.owner, c.repo, c.branch, escapePath(path))

	body, err := c.get(ctx, endpoint)
	if err != nil {
		return "", err
	}
	return string(body), nil
}

func (c *Client) get(ctx context.Context, endpoint string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/vnd.github+json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("unexpected status %d from %s: %s",
			resp.StatusCode, endpoint, truncate(string(body), 200))
	}
	return body, nil
}

// escapePath percent-encodes each path segment while keeping separators.
func escapePath(path string) string {
	segments := strings.Split(path, "/")
	for i, seg := range segments {
		segments[i] = url.PathEscape(seg)
	}
	return strings.Join(segments, "/")
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
