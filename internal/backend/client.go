// Package backend talks to the market-order statistics API.
//
// The client issues plain GET requests and returns raw bodies; Decode* turn
// those bodies into validated models. There are no retries and no client-side
// timeout: a call lives as long as the context it was given.
package backend

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// PingPath is requested by Ping; it is the cheapest statistics endpoint.
const PingPath = "/api/statistics/orders/count"

// APIError is returned when the backend answers with a non-2xx status.
type APIError struct {
	StatusCode int
	Message    string
	Body       []byte
}

func (e *APIError) Error() string {
	return fmt.Sprintf("statistics backend error %d: %s", e.StatusCode, e.Message)
}

// Client provides access to the statistics backend.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *zerolog.Logger
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// NewClient creates a client rooted at baseURL (e.g. "http://aodata-api:8080").
func NewClient(baseURL string, opts ...ClientOption) *Client {
	nop := zerolog.Nop()
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{},
		logger:     &nop,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithLogger sets the logger.
func WithLogger(logger *zerolog.Logger) ClientOption {
	return func(c *Client) {
		c.logger = logger
	}
}

// BaseURL returns the root every request path is appended to.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Get performs a GET on path (which may carry a query string) and returns the body.
//
// Errors:
//   - transport failures are wrapped and returned as-is;
//   - a non-2xx status yields *APIError carrying the raw body.
func (c *Client) Get(ctx context.Context, path string) ([]byte, error) {
	fullURL := c.baseURL + path

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn().Str("path", path).Err(err).Msg("backend request failed")
		return nil, fmt.Errorf("get %s: %w", path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response %s: %w", path, err)
	}

	c.logger.Debug().
		Str("path", path).
		Int("status", resp.StatusCode).
		Int64("latency_ms", time.Since(start).Milliseconds()).
		Int("bytes", len(body)).
		Msg("backend request")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &APIError{
			StatusCode: resp.StatusCode,
			Message:    http.StatusText(resp.StatusCode),
			Body:       body,
		}
	}

	return body, nil
}

// Ping checks that the backend is reachable and answering.
func (c *Client) Ping(ctx context.Context) error {
	_, err := c.Get(ctx, PingPath)
	return err
}
