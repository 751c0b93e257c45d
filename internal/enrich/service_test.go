package enrich_test

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/otakuverse/otakuverse-client/internal/domain"
	"github.com/otakuverse/otakuverse-client/internal/enrich"
	"github.com/otakuverse/otakuverse-client/internal/provider/jikan"
	"github.com/otakuverse/otakuverse-client/internal/provider/omdb"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// setupService wires an enrichment service against fake provider
// servers. Either handler may be nil when the test never reaches that
// provider.
func setupService(t *testing.T, omdbHandler, jikanHandler http.HandlerFunc) *enrich.Service {
	t.Helper()

	if omdbHandler == nil {
		omdbHandler = func(w http.ResponseWriter, r *http.Request) {
			t.Error("unexpected OMDb call")
		}
	}
	if jikanHandler == nil {
		jikanHandler = func(w http.ResponseWriter, r *http.Request) {
			t.Error("unexpected Jikan call")
		}
	}

	omdbSrv := httptest.NewServer(omdbHandler)
	t.Cleanup(omdbSrv.Close)
	jikanSrv := httptest.NewServer(jikanHandler)
	t.Cleanup(jikanSrv.Close)

	omdbClient := omdb.New(omdb.Options{
		BaseURL: omdbSrv.URL,
		APIKey:  "test-key",
		Timeout: 5 * time.Second,
	}, discardLogger())
	t.Cleanup(omdbClient.Close)

	jikanClient := jikan.New(jikan.Options{
		BaseURL: jikanSrv.URL,
		Timeout: 5 * time.Second,
	}, discardLogger())
	t.Cleanup(jikanClient.Close)

	return enrich.NewService(omdbClient, jikanClient, discardLogger())
}

func TestResolveImagesAnimeCachesHit(t *testing.T) {
	var calls atomic.Int32

	svc := setupService(t, nil, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		assert.Equal(t, "/v4/search/anime", r.URL.Path)
		assert.Equal(t, "Attack on Titan", r.URL.Query().Get("query"))
		assert.Equal(t, "1", r.URL.Query().Get("limit"))
		w.Write([]byte(`{"data":[{"images":{"jpg":{
			"image_url":"https://cdn.example/aot.jpg",
			"small_image_url":"https://cdn.example/aot_s.jpg",
			"large_image_url":"https://cdn.example/aot_l.jpg"
		}},"score":8.9,"scored_by":2000000}]}`))
	})

	ctx := context.Background()

	images, ok := svc.ResolveImages(ctx, "Attack on Titan", 0, domain.TypeAnime)
	require.True(t, ok)
	assert.Equal(t, "https://cdn.example/aot.jpg", images.Poster)
	assert.Equal(t, "https://cdn.example/aot_l.jpg", images.Banner)
	assert.Equal(t, "https://cdn.example/aot_s.jpg", images.Thumbnail)
	assert.Equal(t, "https://cdn.example/aot.jpg", images.Cover)

	// Second resolve is a cache hit: no second provider call.
	again, ok := svc.ResolveImages(ctx, "Attack on Titan", 0, domain.TypeAnime)
	require.True(t, ok)
	assert.Equal(t, images, again)
	assert.Equal(t, int32(1), calls.Load())
}

func TestResolveImagesMovieUsesOMDb(t *testing.T) {
	svc := setupService(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Inception", r.URL.Query().Get("t"))
		assert.Equal(t, "2010", r.URL.Query().Get("y"))
		w.Write([]byte(`{"Poster":"https://img.example/inception.jpg","imdbRating":"8.8","Response":"True"}`))
	}, nil)

	images, ok := svc.ResolveImages(context.Background(), "Inception", 2010, domain.TypeMovies)
	require.True(t, ok)

	// One poster URL serves all four slots.
	assert.Equal(t, "https://img.example/inception.jpg", images.Poster)
	assert.Equal(t, images.Poster, images.Banner)
	assert.Equal(t, images.Poster, images.Thumbnail)
	assert.Equal(t, images.Poster, images.Cover)
}

func TestResolveImagesMissNotCached(t *testing.T) {
	var calls atomic.Int32

	svc := setupService(t, nil, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.Write([]byte(`{"data":[]}`))
	})

	ctx := context.Background()

	_, ok := svc.ResolveImages(ctx, "Nonexistent", 0, domain.TypeAnime)
	assert.False(t, ok)

	// Absence is not cached: the next call retries the provider.
	_, ok = svc.ResolveImages(ctx, "Nonexistent", 0, domain.TypeAnime)
	assert.False(t, ok)
	assert.Equal(t, int32(2), calls.Load())

	imageCount, _ := svc.CacheSize()
	assert.Equal(t, 0, imageCount)
}

func TestResolveImagesProviderDownNotCached(t *testing.T) {
	var calls atomic.Int32

	svc := setupService(t, nil, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusServiceUnavailable)
	})

	ctx := context.Background()

	_, ok := svc.ResolveImages(ctx, "Attack on Titan", 0, domain.TypeAnime)
	assert.False(t, ok)
	_, ok = svc.ResolveImages(ctx, "Attack on Titan", 0, domain.TypeAnime)
	assert.False(t, ok)
	assert.Equal(t, int32(2), calls.Load())
}

func TestResolveRatingsAnime(t *testing.T) {
	var calls atomic.Int32

	svc := setupService(t, nil, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		assert.Equal(t, "/v4/search/anime", r.URL.Path)
		w.Write([]byte(`{"data":[{"images":{"jpg":{}},"score":8.9,"scored_by":2000000}]}`))
	})

	ctx := context.Background()

	ratings, ok := svc.ResolveRatings(ctx, "Attack on Titan", domain.TypeAnime)
	require.True(t, ok)
	assert.Equal(t, 8.9, ratings.MALRating)
	assert.Equal(t, 2000000, ratings.RatingCount)
	assert.Zero(t, ratings.IMDBRating)
	assert.Equal(t, "malRating, ratingCount", ratings.Source)

	// Second resolve with the same arguments performs no network call.
	again, ok := svc.ResolveRatings(ctx, "Attack on Titan", domain.TypeAnime)
	require.True(t, ok)
	assert.Equal(t, ratings, again)
	assert.Equal(t, int32(1), calls.Load())
}

func TestResolveRatingsMovie(t *testing.T) {
	svc := setupService(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"Poster":"N/A","imdbRating":"8.8","Response":"True"}`))
	}, nil)

	ratings, ok := svc.ResolveRatings(context.Background(), "Inception", domain.TypeMovies)
	require.True(t, ok)
	assert.Equal(t, 8.8, ratings.IMDBRating)
	assert.Zero(t, ratings.MALRating)
	assert.Equal(t, "imdbRating", ratings.Source)
}

func TestResolveRatingsLightNovelsSearchManga(t *testing.T) {
	svc := setupService(t, nil, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v4/search/manga", r.URL.Path)
		w.Write([]byte(`{"data":[{"images":{"jpg":{}},"score":7.5,"scored_by":40000}]}`))
	})

	ratings, ok := svc.ResolveRatings(context.Background(), "Overlord", domain.TypeLightNovels)
	require.True(t, ok)
	assert.Equal(t, 7.5, ratings.MALRating)
}

func TestResolveRatingsUnsupportedTypeNoCall(t *testing.T) {
	// Both handlers nil: any provider call fails the test.
	svc := setupService(t, nil, nil)

	for _, ctype := range []domain.ContentType{
		domain.TypeGames, domain.TypeComics, domain.TypeManhwa, domain.TypeNovels,
	} {
		_, ok := svc.ResolveRatings(context.Background(), "Anything", ctype)
		assert.False(t, ok, "type %s", ctype)
	}
}

func TestResolveRatingsEmptySuccessIsCached(t *testing.T) {
	var calls atomic.Int32

	svc := setupService(t, nil, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		// Listed but not yet scored.
		w.Write([]byte(`{"data":[{"images":{"jpg":{}},"score":0,"scored_by":0}]}`))
	})

	ctx := context.Background()

	ratings, ok := svc.ResolveRatings(ctx, "Brand New Show", domain.TypeAnime)
	require.True(t, ok)
	assert.Zero(t, ratings.MALRating)

	// The empty-but-successful lookup is cached.
	_, ok = svc.ResolveRatings(ctx, "Brand New Show", domain.TypeAnime)
	require.True(t, ok)
	assert.Equal(t, int32(1), calls.Load())
}

func TestClearCache(t *testing.T) {
	var calls atomic.Int32

	svc := setupService(t, nil, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.Write([]byte(`{"data":[{"images":{"jpg":{"image_url":"https://cdn.example/x.jpg"}},"score":8.0,"scored_by":100}]}`))
	})

	ctx := context.Background()

	_, ok := svc.ResolveImages(ctx, "Attack on Titan", 0, domain.TypeAnime)
	require.True(t, ok)

	imageCount, _ := svc.CacheSize()
	assert.Equal(t, 1, imageCount)

	svc.ClearCache()

	imageCount, ratingCount := svc.CacheSize()
	assert.Equal(t, 0, imageCount)
	assert.Equal(t, 0, ratingCount)

	// Re-resolve hits the provider again.
	_, ok = svc.ResolveImages(ctx, "Attack on Titan", 0, domain.TypeAnime)
	require.True(t, ok)
	assert.Equal(t, int32(2), calls.Load())
}
