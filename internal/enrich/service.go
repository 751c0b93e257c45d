// Package enrich resolves best-effort images and ratings for content
// titles from the external catalog providers, memoizing results for the
// lifetime of the process.
package enrich

import (
	"context"
	"log/slog"
	"strconv"
	"strings"
	"sync"

	"github.com/otakuverse/otakuverse-client/internal/domain"
	"github.com/otakuverse/otakuverse-client/internal/provider/jikan"
	"github.com/otakuverse/otakuverse-client/internal/provider/omdb"
)

// Service memoizes provider lookups. Images and ratings live in two
// independent maps: the lookups hit different endpoints and fail
// independently, so coupling them would force a rating re-fetch whenever
// an image lookup misses.
//
// Entries never expire. Failed and empty lookups are never cached, so
// every later call retries; providers are rate-limited and
// title-not-found is often transient, and callers fall back to a static
// placeholder in the meantime.
//
// Concurrent lookups for the same key may each issue a provider call (no
// request coalescing). The providers are idempotent lookups, so the only
// cost is a duplicate request.
type Service struct {
	mu      sync.RWMutex
	images  map[string]domain.ImageSet
	ratings map[string]domain.RatingSet

	omdb   *omdb.Client
	jikan  *jikan.Client
	logger *slog.Logger
}

// NewService creates an enrichment service over the two provider clients.
func NewService(omdbClient *omdb.Client, jikanClient *jikan.Client, logger *slog.Logger) *Service {
	return &Service{
		images:  make(map[string]domain.ImageSet),
		ratings: make(map[string]domain.RatingSet),
		omdb:    omdbClient,
		jikan:   jikanClient,
		logger:  logger,
	}
}

// imageKey builds the image cache key. Film/series lookups key on
// title+year with a literal "unknown" when the year is absent; MAL-side
// lookups key on kind+title since Jikan has no year filter.
func imageKey(title string, year int, ctype domain.ContentType) string {
	if malKind, ok := malKindFor(ctype); ok {
		return "mal:" + string(malKind) + ":" + title
	}
	if year > 0 {
		return title + "-" + strconv.Itoa(year)
	}
	return title + "-unknown"
}

// ratingKey builds the rating cache key.
func ratingKey(title string, ctype domain.ContentType) string {
	return title + "-" + string(ctype)
}

// malKindFor maps MAL-side content types to the Jikan media kind.
// Book-shaped types search the manga catalog, which covers manhwa and
// light novels as well.
func malKindFor(ctype domain.ContentType) (jikan.Kind, bool) {
	switch ctype {
	case domain.TypeAnime:
		return jikan.KindAnime, true
	case domain.TypeManga, domain.TypeManhwa, domain.TypeLightNovels:
		return jikan.KindManga, true
	default:
		return "", false
	}
}

// ResolveImages returns the image set for a title, fetching from the
// provider selected by content type on a cache miss. year <= 0 means
// unknown. ok is false when no provider had the title or the provider
// was unavailable; callers are expected to use FallbackImage then.
func (s *Service) ResolveImages(ctx context.Context, title string, year int, ctype domain.ContentType) (domain.ImageSet, bool) {
	key := imageKey(title, year, ctype)

	s.mu.RLock()
	cached, hit := s.images[key]
	s.mu.RUnlock()
	if hit {
		return cached, true
	}

	images, ok := s.fetchImages(ctx, title, year, ctype)
	if !ok {
		// Not cached: the next call retries.
		return domain.ImageSet{}, false
	}

	s.mu.Lock()
	s.images[key] = images
	s.mu.Unlock()

	return images, true
}

// fetchImages issues the single provider call for a cache miss.
func (s *Service) fetchImages(ctx context.Context, title string, year int, ctype domain.ContentType) (domain.ImageSet, bool) {
	if malKind, ok := malKindFor(ctype); ok {
		result, err := s.jikan.Search(ctx, malKind, title)
		if err != nil {
			s.logger.Warn("image lookup failed",
				"provider", "jikan",
				"title", title,
				"error", err,
			)
			return domain.ImageSet{}, false
		}
		if result == nil || (result.ImageURL == "" && result.SmallImageURL == "" && result.LargeImageURL == "") {
			return domain.ImageSet{}, false
		}
		poster := result.ImageURL
		if poster == "" {
			poster = result.SmallImageURL
		}
		return domain.ImageSet{
			Poster:    poster,
			Banner:    result.LargeImageURL,
			Thumbnail: result.SmallImageURL,
			Cover:     result.ImageURL,
		}, true
	}

	result, err := s.omdb.Lookup(ctx, title, year)
	if err != nil {
		s.logger.Warn("image lookup failed",
			"provider", "omdb",
			"title", title,
			"error", err,
		)
		return domain.ImageSet{}, false
	}
	if result == nil || !result.HasPoster {
		return domain.ImageSet{}, false
	}

	// OMDb supplies a single poster URL; it serves all four slots.
	return domain.ImageSet{
		Poster:    result.Poster,
		Banner:    result.Poster,
		Thumbnail: result.Poster,
		Cover:     result.Poster,
	}, true
}

// ResolveRatings returns the rating set for a title. Provider selection
// by content type: movies and web series consult the film provider,
// anime/manga/light novels consult the MAL provider, every other type is
// immediately absent without a network call. A successful lookup is
// cached even when partially (or fully) empty; only provider failures
// are retried.
func (s *Service) ResolveRatings(ctx context.Context, title string, ctype domain.ContentType) (domain.RatingSet, bool) {
	switch ctype {
	case domain.TypeMovies, domain.TypeWebSeries,
		domain.TypeAnime, domain.TypeManga, domain.TypeLightNovels:
	default:
		return domain.RatingSet{}, false
	}

	key := ratingKey(title, ctype)

	s.mu.RLock()
	cached, hit := s.ratings[key]
	s.mu.RUnlock()
	if hit {
		return cached, true
	}

	ratings, ok := s.fetchRatings(ctx, title, ctype)
	if !ok {
		return domain.RatingSet{}, false
	}

	s.mu.Lock()
	s.ratings[key] = ratings
	s.mu.Unlock()

	return ratings, true
}

// fetchRatings issues the provider call for a rating cache miss. ok is
// false only when the provider call itself failed.
func (s *Service) fetchRatings(ctx context.Context, title string, ctype domain.ContentType) (domain.RatingSet, bool) {
	var ratings domain.RatingSet

	switch ctype {
	case domain.TypeMovies, domain.TypeWebSeries:
		result, err := s.omdb.Lookup(ctx, title, 0)
		if err != nil {
			s.logger.Warn("rating lookup failed",
				"provider", "omdb",
				"title", title,
				"error", err,
			)
			return domain.RatingSet{}, false
		}
		if result != nil && result.HasRating {
			ratings.IMDBRating = result.IMDBRating
		}

	default:
		// light_novels searches the manga catalog.
		kind := jikan.KindAnime
		if ctype != domain.TypeAnime {
			kind = jikan.KindManga
		}
		result, err := s.jikan.Search(ctx, kind, title)
		if err != nil {
			s.logger.Warn("rating lookup failed",
				"provider", "jikan",
				"title", title,
				"error", err,
			)
			return domain.RatingSet{}, false
		}
		if result != nil {
			ratings.MALRating = result.Score
			ratings.RatingCount = result.ScoredBy
		}
	}

	ratings.Source = strings.Join(ratings.Sources(), ", ")
	return ratings, true
}

// ClearCache wipes both cache maps atomically. Safe to call at any time;
// in-flight resolves re-populate from scratch.
func (s *Service) ClearCache() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.images = make(map[string]domain.ImageSet)
	s.ratings = make(map[string]domain.RatingSet)
}

// CacheSize returns the number of cached image and rating entries.
func (s *Service) CacheSize() (images, ratings int) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.images), len(s.ratings)
}
