package recommend

import "github.com/otakuverse/otakuverse-client/internal/domain"

// NormalizeItem converts a raw backend recommendation into the
// canonical content schema. The displayed rating prefers a non-zero
// backend rating, then the MAL score, then the IMDb score. Missing
// genres become an empty slice, a missing explanation falls back to the
// description, and a missing cover falls back to the per-type
// placeholder. No field is ever nil.
func (c *Client) NormalizeItem(raw RawItem) domain.ContentItem {
	ctype, _ := domain.ParseContentType(raw.ContentType)

	genres := raw.Genres
	if genres == nil {
		genres = []string{}
	}

	explanation := raw.Explanation
	if explanation == "" {
		explanation = raw.Description
	}

	cover := raw.CoverImage
	if cover == "" {
		cover = c.fallback(ctype)
	}

	return domain.ContentItem{
		ContentID:   raw.ContentID,
		Title:       raw.Title,
		ContentType: ctype,
		Genres:      genres,
		Description: raw.Description,
		Explanation: explanation,
		RatingScore: domain.BestRating(raw.Rating, raw.MALScore, raw.IMDBScore),
		MALScore:    raw.MALScore,
		IMDBScore:   raw.IMDBScore,
		CoverImage:  cover,
	}
}
