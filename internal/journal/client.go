package journal

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const (
	DefaultBaseURL      = "http://localhost:5000"
	DefaultJournalsPath = "/dailyJournal"

	defaultUserAgent = "journal-cli/0.1"
	maxErrorBody     = 4096
)

// Client talks to the journal HTTP API.
type Client struct {
	baseURL      string
	journalsPath string
	userAgent    string
	http         *http.Client
}

func NewClient(baseURL, journalsPath string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}
	if strings.TrimSpace(baseURL) == "" {
		baseURL = DefaultBaseURL
	}
	if strings.TrimSpace(journalsPath) == "" {
		journalsPath = DefaultJournalsPath
	}
	if !strings.HasPrefix(journalsPath, "/") {
		journalsPath = "/" + journalsPath
	}
	return &Client{
		baseURL:      strings.TrimRight(baseURL, "/"),
		journalsPath: journalsPath,
		userAgent:    defaultUserAgent,
		http:         httpClient,
	}
}

// ListJournals fetches the complete journal list in server order. Every
// failure wraps ErrFetchFailed.
func (c *Client) ListJournals(ctx context.Context, token string) ([]Entry, error) {
	req, err := c.newRequest(ctx, http.MethodGet, c.journalsPath, token)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFetchFailed, err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: list journals request failed: %w", ErrFetchFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return nil, fmt.Errorf("%w: list journals failed with status %d: %s", ErrFetchFailed, resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var raw json.RawMessage
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, fmt.Errorf("%w: decode journals response: %w", ErrFetchFailed, err)
	}
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || raw[0] != '[' {
		return nil, fmt.Errorf("%w: decode journals response: expected a JSON array", ErrFetchFailed)
	}

	entries := make([]Entry, 0)
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil, fmt.Errorf("%w: decode journals response: %w", ErrFetchFailed, err)
	}
	return entries, nil
}

func (c *Client) newRequest(ctx context.Context, method, path, token string) (*http.Request, error) {
	fullURL := c.baseURL + path
	req, err := http.NewRequestWithContext(ctx, method, fullURL, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	return req, nil
}
