// Package jikan provides a client for the Jikan API, the anime/manga
// rating-and-image provider backed by MyAnimeList.
package jikan

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/otakuverse/otakuverse-client/internal/ratelimit"
)

const (
	// Jikan allows 3 requests per second per client; stay at the limit
	// with a matching burst.
	defaultRPS   = 3.0
	defaultBurst = 3

	defaultTimeout = 15 * time.Second
)

// Kind selects the MyAnimeList media kind for a search.
type Kind string

// Supported media kinds.
const (
	KindAnime Kind = "anime"
	KindManga Kind = "manga"
)

// Client is a rate-limited Jikan API client.
type Client struct {
	http    *http.Client
	limiter *ratelimit.KeyedRateLimiter
	baseURL string
	logger  *slog.Logger
}

// Options configures a Client.
type Options struct {
	BaseURL string
	Timeout time.Duration
}

// New creates a new Jikan client. Jikan requires no credentials.
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
		logger:  logger,
	}
}

// Close releases resources held by the client.
func (c *Client) Close() {
	c.limiter.Stop()
}
