// internal/poller/neatqueue/client.go
package neatqueue

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// maxBody caps how much of a response is read.
const maxBody = 4 << 20

// Client implements poller.Client over the NeatQueue HTTP API.
// This adapter is transport-only: it returns raw JSON bodies and never interprets them.
type Client struct {
	base   string
	apiKey string
	http   *http.Client
}

// Config is minimal transport config.
type Config struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration

	// HTTPClient overrides the default client (tests).
	HTTPClient *http.Client
}

// StatusError is returned for any non-2xx response.
type StatusError struct {
	Op         string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("neatqueue %s: unexpected status %d", e.Op, e.StatusCode)
}

// New creates a client. No request is made.
func New(cfg Config) (*Client, error) {
	if cfg.BaseURL == "" {
		return nil, errors.New("neatqueue client: base url required")
	}
	if _, err := url.Parse(cfg.BaseURL); err != nil {
		return nil, fmt.Errorf("neatqueue client: base url: %w", err)
	}
	if cfg.APIKey == "" {
		return nil, errors.New("neatqueue client: api key required")
	}

	hc := cfg.HTTPClient
	if hc == nil {
		hc = &http.Client{Timeout: cfg.Timeout}
	}

	return &Client{
		base:   strings.TrimRight(cfg.BaseURL, "/"),
		apiKey: cfg.APIKey,
		http:   hc,
	}, nil
}

// ---- poller.Client interface ----

// QueuePlayers fetches the roster of one queue.
func (c *Client) QueuePlayers(ctx context.Context, queueID string) ([]byte, error) {
	return c.get(ctx, "players", "/api/v1/queue/"+url.PathEscape(queueID)+"/players")
}

// Match fetches one match resource.
func (c *Client) Match(ctx context.Context, matchID string) ([]byte, error) {
	return c.get(ctx, "match", "/api/v1/matches/"+url.PathEscape(matchID))
}

// ---- internal request helpers ----

func (c *Client) get(ctx context.Context, op, path string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.base+path, nil)
	if err != nil {
		return nil, fmt.Errorf("neatqueue %s: build request: %w", op, err)
	}
	req.Header.Set("Authorization", c.apiKey)
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("neatqueue %s: %w", op, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// drain so the connection can be reused
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxBody))
		return nil, &StatusError{Op: op, StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBody))
	if err != nil {
		return nil, fmt.Errorf("neatqueue %s: read body: %w", op, err)
	}
	return body, nil
}
