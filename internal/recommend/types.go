package recommend

import "github.com/otakuverse/otakuverse-client/internal/domain"

// Request is the typed recommendation request assembled from UI
// preference state.
type Request struct {
	UserID       string               `json:"user_id" validate:"required"`
	Mood         string               `json:"mood" validate:"required"`
	ContentTypes []domain.ContentType `json:"content_types" validate:"required,min=1"`
	Genres       []string             `json:"genres"`
	Style        string               `json:"style"`
	CustomPrompt string               `json:"custom_prompt"`
}

// WireRequest is the backend's expected request shape.
type WireRequest struct {
	UserID        string   `json:"user_id"`
	Genres        []string `json:"genres"`
	Moods         []string `json:"moods"`
	ContentTypes  []string `json:"content_types"`
	ExcludeTitles []string `json:"exclude_titles"`
	Count         int      `json:"count"`
}

// RawItem is one recommendation as the backend returns it. Score and
// image fields are optional; normalization fills the gaps.
type RawItem struct {
	ContentID   string   `json:"content_id"`
	Title       string   `json:"title"`
	ContentType string   `json:"content_type"`
	Genres      []string `json:"genres"`
	Description string   `json:"description"`
	Explanation string   `json:"explanation"`
	Rating      float64  `json:"rating"`
	MALScore    float64  `json:"mal_score"`
	IMDBScore   float64  `json:"imdb_score"`
	CoverImage  string   `json:"cover_image"`
}

// wireResponse is the backend's response envelope.
type wireResponse struct {
	Recommendations []RawItem `json:"recommendations"`
}

// RateRequest is the backend's rating submission shape.
type RateRequest struct {
	UserID string `json:"user_id" validate:"required"`
	ItemID string `json:"item_id" validate:"required"`
	Rating int    `json:"rating" validate:"gte=1,lte=5"`
}

// HistoryItem is one row of the backend-side recommendation history.
type HistoryItem struct {
	ContentID   string  `json:"content_id"`
	ContentType string  `json:"content_type"`
	Title       string  `json:"title"`
	Rating      float64 `json:"rating,omitempty"`
	Timestamp   string  `json:"timestamp,omitempty"`
}
