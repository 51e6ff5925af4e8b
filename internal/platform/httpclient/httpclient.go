// Package httpclient provides a small HTTP client for JSON services and page
// fetches with timeouts, a fixed User-Agent and status classification.
package httpclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"crackbench/internal/platform/errors"
	"crackbench/internal/platform/logx"
)

// DefaultUserAgent is sent when none is configured.
const DefaultUserAgent = "crackbench/1.0"

// Client wraps http.Client. Retries are left to the caller (see the
// resilience package) so every attempt is visible to the circuit breaker.
type Client struct {
	httpClient *http.Client
	logger     logx.Logger
	config     Config
}

// Config holds the configuration for the HTTP client.
type Config struct {
	// Timeout is the per-request timeout.
	// Default: 30 seconds
	Timeout time.Duration

	// UserAgent is the User-Agent header value.
	UserAgent string

	// MaxBodyBytes caps how much of a response body is read.
	// Default: 8 MiB
	MaxBodyBytes int64
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		Timeout:      30 * time.Second,
		UserAgent:    DefaultUserAgent,
		MaxBodyBytes: 8 << 20,
	}
}

// New creates a new HTTP client with the given configuration.
func New(config Config, logger logx.Logger) *Client {
	def := DefaultConfig()
	if config.Timeout <= 0 {
		config.Timeout = def.Timeout
	}
	if config.UserAgent == "" {
		config.UserAgent = def.UserAgent
	}
	if config.MaxBodyBytes <= 0 {
		config.MaxBodyBytes = def.MaxBodyBytes
	}
	if logger == nil {
		logger = logx.NewNop()
	}

	return &Client{
		httpClient: &http.Client{Timeout: config.Timeout},
		logger:     logger.With("component", "httpclient"),
		config:     config,
	}
}

// Do performs a request and returns the body of a 2xx response.
// Non-2xx statuses are classified by CheckStatus.
func (c *Client) Do(ctx context.Context, method, url string, body io.Reader, headers map[string]string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrInvalidInput, "failed to create request for %s %s: %v", method, url, err)
	}
	req.Header.Set("User-Agent", c.config.UserAgent)
	for key, value := range headers {
		req.Header.Set(key, value)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	duration := time.Since(start)
	if err != nil {
		c.logger.Warn("HTTP request failed",
			"method", method,
			"url", url,
			"error", err.Error(),
			"duration_ms", duration.Milliseconds(),
		)
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		return nil, errors.Mark(err, errors.ErrServiceUnavailable)
	}
	defer resp.Body.Close()

	c.logger.Debug("HTTP response received",
		"method", method,
		"url", url,
		"status", resp.StatusCode,
		"duration_ms", duration.Milliseconds(),
	)

	data, err := io.ReadAll(io.LimitReader(resp.Body, c.config.MaxBodyBytes))
	if err != nil {
		return nil, errors.Mark(err, errors.ErrServiceUnavailable)
	}
	if err := CheckStatus(resp); err != nil {
		return nil, errors.Wrapf(err, "%s %s", method, url)
	}
	return data, nil
}

// Get fetches url and returns the body.
func (c *Client) Get(ctx context.Context, url string, headers map[string]string) ([]byte, error) {
	return c.Do(ctx, http.MethodGet, url, nil, headers)
}

// PostJSON encodes in, posts it to url and decodes the response into out.
func (c *Client) PostJSON(ctx context.Context, url string, in, out any) error {
	payload, err := json.Marshal(in)
	if err != nil {
		return errors.Wrap(err, "failed to encode request body")
	}
	headers := map[string]string{
		"Content-Type": "application/json",
		"Accept":       "application/json",
	}
	data, err := c.Do(ctx, http.MethodPost, url, bytes.NewReader(payload), headers)
	if err != nil {
		return err
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return errors.Mark(err, errors.ErrInvalidResponse)
	}
	return nil
}

// CheckStatus validates the HTTP status code and returns an error if it's not successful.
func CheckStatus(resp *http.Response) error {
	if resp == nil {
		return errors.New("response is nil")
	}

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	switch resp.StatusCode {
	case http.StatusNotFound:
		return errors.ErrNotFound
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		return errors.Wrapf(errors.ErrInvalidInput, "HTTP %d", resp.StatusCode)
	case http.StatusTooManyRequests, http.StatusServiceUnavailable,
		http.StatusGatewayTimeout, http.StatusBadGateway:
		return errors.Wrapf(errors.ErrServiceUnavailable, "HTTP %d", resp.StatusCode)
	default:
		if resp.StatusCode >= 500 {
			return errors.Wrapf(errors.ErrServiceUnavailable, "HTTP %d", resp.StatusCode)
		}
		return errors.Errorf("HTTP %d: %s", resp.StatusCode, resp.Status)
	}
}

// String returns a human-readable representation of the client configuration.
func (c *Client) String() string {
	return fmt.Sprintf("HTTPClient{timeout=%s, user_agent=%q}", c.config.Timeout, c.config.UserAgent)
}
