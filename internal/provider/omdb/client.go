// Package omdb provides a client for the OMDb API, the film/series
// rating-and-image provider.
package omdb

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/otakuverse/otakuverse-client/internal/ratelimit"
)

const (
	// Rate limit: free-tier keys are capped per day, 1 request per
	// second with a small burst keeps lookups well under it.
	defaultRPS   = 1.0
	defaultBurst = 5

	defaultTimeout = 15 * time.Second
)

// Client is a rate-limited OMDb API client.
type Client struct {
	http    *http.Client
	limiter *ratelimit.KeyedRateLimiter
	baseURL string
	apiKey  string
	logger  *slog.Logger
}

// Options configures a Client.
type Options struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration
}

// New creates a new OMDb client. An empty API key is allowed; lookups
// then fail with a provider unavailable error without hitting the
// network.
func New(opts Options, logger *slog.Logger) *Client {
	timeout := opts.Timeout
	if timeout == 0 {
		timeout = defaultTimeout
	}
	return &Client{
		http: &http.Client{
			Timeout: timeout,
		},
		limiter: ratelimit.New(defaultRPS, defaultBurst),
		baseURL: opts.BaseURL,
		apiKey:  opts.APIKey,
		logger:  logger,
	}
}

// Configured reports whether an API key is available.
func (c *Client) Configured() bool {
	return c.apiKey != ""
}

// Close releases resources held by the client.
func (c *Client) Close() {
	c.limiter.Stop()
}
