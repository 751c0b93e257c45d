package jikan

import (
	"context"
	json "github.com/go-json-experiment/json"
	"net/http"
	"net/url"

	"github.com/otakuverse/otakuverse-client/internal/errors"
)

// searchResponse is the Jikan wire shape for a search. Only the fields
// the enrichment layer consumes are decoded.
type searchResponse struct {
	Data []struct {
		Images struct {
			JPG struct {
				ImageURL      string `json:"image_url"`
				SmallImageURL string `json:"small_image_url"`
				LargeImageURL string `json:"large_image_url"`
			} `json:"jpg"`
		} `json:"images"`
		Score    float64 `json:"score"`
		ScoredBy int     `json:"scored_by"`
	} `json:"data"`
}

// Result is the first-ranked search hit for a title. Zero Score/ScoredBy
// mean MyAnimeList has no score yet.
type Result struct {
	ImageURL      string
	SmallImageURL string
	LargeImageURL string
	Score         float64
	ScoredBy      int
}

// Search looks a title up by media kind and returns the first-ranked
// result. An empty result list returns (nil, nil); transport and decode
// failures return a PROVIDER_UNAVAILABLE error.
func (c *Client) Search(ctx context.Context, kind Kind, title string) (*Result, error) {
	if err := c.limiter.Wait(ctx, string(kind)); err != nil {
		return nil, errors.Wrap(err, errors.CodeProviderUnavailable, "rate limit wait")
	}

	params := url.Values{}
	params.Set("query", title)
	params.Set("limit", "1")

	searchURL := c.baseURL + "/v4/search/" + string(kind) + "?" + params.Encode()

	c.logger.Debug("searching Jikan",
		"kind", kind,
		"title", title,
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, searchURL, nil)
	if err != nil {
		return nil, errors.Wrap(err, errors.CodeProviderUnavailable, "create request")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, errors.CodeProviderUnavailable, "search request")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.ProviderUnavailablef("search failed: status %d", resp.StatusCode)
	}

	var wire searchResponse
	if err := json.UnmarshalRead(resp.Body, &wire); err != nil {
		return nil, errors.Wrap(err, errors.CodeProviderUnavailable, "parse response")
	}

	if len(wire.Data) == 0 {
		c.logger.Debug("Jikan search returned no results",
			"kind", kind,
			"title", title,
		)
		return nil, nil
	}

	first := wire.Data[0]
	return &Result{
		ImageURL:      first.Images.JPG.ImageURL,
		SmallImageURL: first.Images.JPG.SmallImageURL,
		LargeImageURL: first.Images.JPG.LargeImageURL,
		Score:         first.Score,
		ScoredBy:      first.ScoredBy,
	}, nil
}
