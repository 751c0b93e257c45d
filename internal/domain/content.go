package domain

import "strings"

// ContentType identifies the medium a content item belongs to.
type ContentType string

// Supported content types.
const (
	TypeAnime       ContentType = "anime"
	TypeMovies      ContentType = "movies"
	TypeWebSeries   ContentType = "web_series"
	TypeManga       ContentType = "manga"
	TypeManhwa      ContentType = "manhwa"
	TypeComics      ContentType = "comics"
	TypeGames       ContentType = "games"
	TypeLightNovels ContentType = "light_novels"
	TypeNovels      ContentType = "novels"
)

// ContentTypes lists every supported content type.
var ContentTypes = []ContentType{
	TypeAnime,
	TypeMovies,
	TypeWebSeries,
	TypeManga,
	TypeManhwa,
	TypeComics,
	TypeGames,
	TypeLightNovels,
	TypeNovels,
}

// ParseContentType normalizes a raw string into a ContentType.
// Unknown values are returned as-is with ok=false so callers can decide
// whether to reject or fall through to defaults.
func ParseContentType(raw string) (ContentType, bool) {
	ct := ContentType(strings.ToLower(strings.TrimSpace(raw)))
	return ct, ct.Valid()
}

// Valid reports whether the content type is one of the supported types.
func (c ContentType) Valid() bool {
	switch c {
	case TypeAnime, TypeMovies, TypeWebSeries, TypeManga, TypeManhwa,
		TypeComics, TypeGames, TypeLightNovels, TypeNovels:
		return true
	default:
		return false
	}
}

// ContentItem is the canonical, provider-agnostic item schema used
// throughout the client. Every recommendation, catalog entry, and
// watchlist row is carried in this shape regardless of origin.
type ContentItem struct {
	ContentID   string      `json:"content_id"`
	Title       string      `json:"title"`
	ContentType ContentType `json:"content_type"`
	Genres      []string    `json:"genres"`
	Description string      `json:"description"`
	Explanation string      `json:"explanation"`
	RatingScore float64     `json:"rating_score"`
	MALScore    float64     `json:"mal_score"`
	IMDBScore   float64     `json:"imdb_score"`
	CoverImage  string      `json:"cover_image"`
}

// BestRating picks the displayed rating from the available sources.
// A non-zero backend rating wins, then the MAL score, then the IMDb
// score. Zero means "no rating available", not "rated zero".
func BestRating(backend, mal, imdb float64) float64 {
	switch {
	case backend != 0:
		return backend
	case mal != 0:
		return mal
	case imdb != 0:
		return imdb
	default:
		return 0
	}
}

// ImageSet holds the image URLs resolved for a title. Providers that
// return a single URL populate all four fields with it.
type ImageSet struct {
	Poster    string `json:"poster_url"`
	Banner    string `json:"banner_url"`
	Thumbnail string `json:"thumbnail_url"`
	Cover     string `json:"cover_url"`
}

// RatingSet holds the ratings resolved for a title. Fields are additive:
// a set may carry an IMDb rating, a MAL rating, or both. Zero values mean
// the source had nothing, mirroring ContentItem score semantics.
type RatingSet struct {
	IMDBRating  float64 `json:"imdb_rating,omitempty"`
	MALRating   float64 `json:"mal_rating,omitempty"`
	RatingCount int     `json:"rating_count,omitempty"`
	Source      string  `json:"source,omitempty"`
}

// Sources returns the names of the populated rating fields, used to fill
// RatingSet.Source.
func (r RatingSet) Sources() []string {
	var src []string
	if r.IMDBRating != 0 {
		src = append(src, "imdbRating")
	}
	if r.MALRating != 0 {
		src = append(src, "malRating")
	}
	if r.RatingCount != 0 {
		src = append(src, "ratingCount")
	}
	return src
}
