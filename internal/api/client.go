// Package api is the gateway client for the printscout backend. It is the
// only package that performs network I/O; callers get typed results or one of
// the error types below, never a raw *http.Response.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"
)

// DefaultTimeout bounds every request when the config does not say otherwise.
const DefaultTimeout = 15 * time.Second

// NetworkError indicates the request never produced a usable response:
// DNS failure, connection refused, or timeout.
type NetworkError struct {
	URL string
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("request to %s failed: %v", e.URL, e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// StatusError indicates the backend answered with a non-2xx status.
type StatusError struct {
	URL        string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("backend returned HTTP %d for %s", e.StatusCode, e.URL)
}

// DecodeError indicates a response body that does not match the expected shape.
type DecodeError struct {
	URL string
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decoding response from %s: %v", e.URL, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// Client talks to the printscout backend over HTTP.
type Client struct {
	baseURL string
	http    *http.Client
	logger  *slog.Logger
}

// NewClient creates a Client rooted at baseURL. A zero timeout falls back to
// DefaultTimeout.
func NewClient(baseURL string, timeout time.Duration, logger *slog.Logger) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		logger:  logger,
	}
}

// Recommend posts the quiz answers and returns the backend's ranked results.
// An empty slice is a valid outcome, not an error.
func (c *Client) Recommend(ctx context.Context, req RecommendRequest) ([]RecommendationResult, error) {
	var results []RecommendationResult
	if err := c.postJSON(ctx, "/printers/recommend", req, &results); err != nil {
		return nil, err
	}
	if results == nil {
		results = []RecommendationResult{}
	}
	return results, nil
}

// Printers fetches the full printer catalog.
func (c *Client) Printers(ctx context.Context) ([]PrinterSummary, error) {
	var printers []PrinterSummary
	if err := c.getJSON(ctx, "/printers", &printers); err != nil {
		return nil, err
	}
	return printers, nil
}

// Materials fetches the material catalog.
func (c *Client) Materials(ctx context.Context) ([]Material, error) {
	var materials []Material
	if err := c.getJSON(ctx, "/materials", &materials); err != nil {
		return nil, err
	}
	return materials, nil
}

// Guides fetches the troubleshooting guide catalog.
func (c *Client) Guides(ctx context.Context) ([]Guide, error) {
	var guides []Guide
	if err := c.getJSON(ctx, "/guides", &guides); err != nil {
		return nil, err
	}
	return guides, nil
}

func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodGet, path, nil, out)
}

func (c *Client) postJSON(ctx context.Context, path string, body any, out any) error {
	data, err := json.Marshal(body)
	if err != nil {
		return &DecodeError{URL: c.baseURL + path, Err: err}
	}
	return c.do(ctx, http.MethodPost, path, data, out)
}

// do performs one request and decodes the body into out. Every failure mode
// maps to exactly one of NetworkError, StatusError, or DecodeError.
func (c *Client) do(ctx context.Context, method, path string, body []byte, out any) error {
	url := c.baseURL + path

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return &NetworkError{URL: url, Err: err}
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Error("request failed",
			slog.String("method", method),
			slog.String("url", url),
			slog.String("error", err.Error()),
		)
		return &NetworkError{URL: url, Err: err}
	}
	defer resp.Body.Close()

	c.logger.Debug("request completed",
		slog.String("method", method),
		slog.String("url", url),
		slog.Int("status", resp.StatusCode),
		slog.Duration("elapsed", time.Since(start)),
	)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// Drain so the connection can be reused.
		io.Copy(io.Discard, resp.Body)
		return &StatusError{URL: url, StatusCode: resp.StatusCode}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &DecodeError{URL: url, Err: err}
	}

	return nil
}
