// Package recommend talks to the recommendation backend: it translates
// typed requests into the backend's wire shape and raw backend items
// into the canonical content schema.
package recommend

import (
	"bytes"
	"context"
	json "github.com/go-json-experiment/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/otakuverse/otakuverse-client/internal/domain"
	"github.com/otakuverse/otakuverse-client/internal/errors"
	"github.com/otakuverse/otakuverse-client/internal/validation"
)

// RequestCount is the fixed number of results requested per call. The
// backend accepts other counts but this client always asks for 15.
const RequestCount = 15

const defaultTimeout = 30 * time.Second

// FallbackFunc supplies a placeholder cover for a content type when the
// backend item carries none.
type FallbackFunc func(domain.ContentType) string

// Client is the recommendation backend client.
type Client struct {
	http      *http.Client
	baseURL   string
	validator *validation.Validator
	fallback  FallbackFunc
	logger    *slog.Logger
}

// Options configures a Client.
type Options struct {
	BaseURL string
	Timeout time.Duration
}

// New creates a recommendation client. fallback must not be nil; it is
// consulted for items the backend returns without a cover image.
func New(opts Options, v *validation.Validator, fallback FallbackFunc, logger *slog.Logger) *Client {
	timeout := opts.Timeout
	if timeout == 0 {
		timeout = defaultTimeout
	}
	return &Client{
		http: &http.Client{
			Timeout: timeout,
		},
		baseURL:   opts.BaseURL,
		validator: v,
		fallback:  fallback,
		logger:    logger,
	}
}

// BuildRequest converts a typed request into the backend wire shape.
// Contract: moods always wraps the single mood, exclude_titles is always
// empty (no exclusion feature is exposed), count is fixed. Style and
// custom prompt ride on Request for UI round-tripping but are not part
// of the wire contract.
func BuildRequest(req Request) WireRequest {
	genres := req.Genres
	if genres == nil {
		genres = []string{}
	}

	types := make([]string, 0, len(req.ContentTypes))
	for _, ct := range req.ContentTypes {
		types = append(types, string(ct))
	}

	return WireRequest{
		UserID:        req.UserID,
		Genres:        genres,
		Moods:         []string{req.Mood},
		ContentTypes:  types,
		ExcludeTitles: []string{},
		Count:         RequestCount,
	}
}

// Recommend requests ranked matches from the backend and normalizes
// them. Any transport or decode failure surfaces as a single
// FETCH_FAILED error with no partial results; the client never retries
// automatically.
func (c *Client) Recommend(ctx context.Context, req Request) ([]domain.ContentItem, error) {
	if err := c.validator.Validate(req); err != nil {
		return nil, err
	}
	for _, ct := range req.ContentTypes {
		if !ct.Valid() {
			return nil, errors.Validationf("unknown content type %q", ct)
		}
	}

	wire := BuildRequest(req)

	var resp wireResponse
	if err := c.post(ctx, "/recommendations", wire, &resp); err != nil {
		return nil, errors.Wrap(err, errors.CodeFetchFailed, "fetch recommendations")
	}

	items := make([]domain.ContentItem, 0, len(resp.Recommendations))
	for _, raw := range resp.Recommendations {
		items = append(items, c.NormalizeItem(raw))
	}

	c.logger.Debug("fetched recommendations",
		"user_id", req.UserID,
		"count", len(items),
	)

	return items, nil
}

// Rate submits a user rating for an item. Rating is best-effort: after
// validation, transport failures are logged and swallowed so a rating
// can never block or fail the surrounding flow.
func (c *Client) Rate(ctx context.Context, userID, itemID string, rating int) error {
	req := RateRequest{UserID: userID, ItemID: itemID, Rating: rating}
	if err := c.validator.Validate(req); err != nil {
		return err
	}

	if err := c.post(ctx, "/recommendations/rate", req, nil); err != nil {
		c.logger.Warn("rating submission failed",
			"user_id", userID,
			"item_id", itemID,
			"error", err,
		)
	}
	return nil
}

// History fetches the backend-side recommendation history for a user.
func (c *Client) History(ctx context.Context, userID string) ([]HistoryItem, error) {
	if userID == "" {
		return nil, errors.Validation("user id is required")
	}

	var items []HistoryItem
	if err := c.get(ctx, "/recommendations/history/"+userID, &items); err != nil {
		return nil, errors.Wrap(err, errors.CodeFetchFailed, "fetch history")
	}
	if items == nil {
		items = []HistoryItem{}
	}
	return items, nil
}

// post issues a JSON POST and optionally decodes the response body.
func (c *Client) post(ctx context.Context, path string, body, dest any) error {
	data, err := json.Marshal(body)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(data))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return errors.Internal("unexpected status " + resp.Status)
	}

	if dest == nil {
		return nil
	}
	return json.UnmarshalRead(resp.Body, dest)
}

// get issues a JSON GET and decodes the response body.
func (c *Client) get(ctx context.Context, path string, dest any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return errors.Internal("unexpected status " + resp.Status)
	}

	return json.UnmarshalRead(resp.Body, dest)
}
