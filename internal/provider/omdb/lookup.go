package omdb

import (
	"context"
	json "github.com/go-json-experiment/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/otakuverse/otakuverse-client/internal/errors"
)

// absent is the sentinel OMDb uses for missing fields. Absence is
// signaled in-band, not by omitting the field.
const absent = "N/A"

// lookupResponse is the OMDb wire shape for a title lookup.
type lookupResponse struct {
	Poster     string `json:"Poster"`
	IMDBRating string `json:"imdbRating"`
	Response   string `json:"Response"`
	Error      string `json:"Error"`
}

// Result is a normalized OMDb lookup result. HasPoster/HasRating
// distinguish "field present" from the provider's "N/A" sentinel.
type Result struct {
	Poster     string
	IMDBRating float64
	HasPoster  bool
	HasRating  bool
}

// Lookup fetches a title record by exact title and optional year.
// year <= 0 omits the year filter. A title the provider does not know
// returns (nil, nil); transport, credential, and decode failures return
// a PROVIDER_UNAVAILABLE error.
func (c *Client) Lookup(ctx context.Context, title string, year int) (*Result, error) {
	if !c.Configured() {
		return nil, errors.ProviderUnavailable("OMDb API key not configured")
	}

	if err := c.limiter.Wait(ctx, "omdb"); err != nil {
		return nil, errors.Wrap(err, errors.CodeProviderUnavailable, "rate limit wait")
	}

	params := url.Values{}
	params.Set("apikey", c.apiKey)
	params.Set("t", title)
	if year > 0 {
		params.Set("y", strconv.Itoa(year))
	}

	lookupURL := c.baseURL + "/?" + params.Encode()

	c.logger.Debug("looking up OMDb title",
		"title", title,
		"year", year,
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, lookupURL, nil)
	if err != nil {
		return nil, errors.Wrap(err, errors.CodeProviderUnavailable, "create request")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, errors.CodeProviderUnavailable, "lookup request")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.ProviderUnavailablef("lookup failed: status %d", resp.StatusCode)
	}

	var wire lookupResponse
	if err := json.UnmarshalRead(resp.Body, &wire); err != nil {
		return nil, errors.Wrap(err, errors.CodeProviderUnavailable, "parse response")
	}

	// OMDb reports "title not found" as a 200 with Response=False.
	if wire.Response == "False" {
		c.logger.Debug("OMDb title not found",
			"title", title,
			"reason", wire.Error,
		)
		return nil, nil
	}

	result := &Result{}
	if wire.Poster != "" && wire.Poster != absent {
		result.Poster = wire.Poster
		result.HasPoster = true
	}
	if wire.IMDBRating != "" && wire.IMDBRating != absent {
		rating, err := strconv.ParseFloat(wire.IMDBRating, 64)
		if err != nil {
			return nil, errors.Wrapf(err, errors.CodeProviderUnavailable, "parse rating %q", wire.IMDBRating)
		}
		result.IMDBRating = rating
		result.HasRating = true
	}

	return result, nil
}

// String implements fmt.Stringer for debug logging.
func (r *Result) String() string {
	return fmt.Sprintf("omdb.Result{poster=%t rating=%.1f}", r.HasPoster, r.IMDBRating)
}
