package omdb_test

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/otakuverse/otakuverse-client/internal/errors"
	"github.com/otakuverse/otakuverse-client/internal/provider/omdb"
)

func newTestClient(t *testing.T, apiKey string, handler http.HandlerFunc) *omdb.Client {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	client := omdb.New(omdb.Options{
		BaseURL: srv.URL,
		APIKey:  apiKey,
		Timeout: 5 * time.Second,
	}, logger)
	t.Cleanup(client.Close)

	return client
}

func TestLookup(t *testing.T) {
	client := newTestClient(t, "test-key", func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, "test-key", q.Get("apikey"))
		assert.Equal(t, "Inception", q.Get("t"))
		assert.Equal(t, "2010", q.Get("y"))
		w.Write([]byte(`{"Poster":"https://img.example/inception.jpg","imdbRating":"8.8","Response":"True"}`))
	})

	result, err := client.Lookup(context.Background(), "Inception", 2010)
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.True(t, result.HasPoster)
	assert.Equal(t, "https://img.example/inception.jpg", result.Poster)
	assert.True(t, result.HasRating)
	assert.Equal(t, 8.8, result.IMDBRating)
}

func TestLookupOmitsYearWhenUnknown(t *testing.T) {
	client := newTestClient(t, "test-key", func(w http.ResponseWriter, r *http.Request) {
		assert.False(t, r.URL.Query().Has("y"))
		w.Write([]byte(`{"Poster":"N/A","imdbRating":"N/A","Response":"True"}`))
	})

	result, err := client.Lookup(context.Background(), "Inception", 0)
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.False(t, result.HasPoster)
	assert.False(t, result.HasRating)
}

func TestLookupAbsentSentinel(t *testing.T) {
	client := newTestClient(t, "test-key", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"Poster":"N/A","imdbRating":"8.8","Response":"True"}`))
	})

	result, err := client.Lookup(context.Background(), "Obscure Film", 0)
	require.NoError(t, err)
	require.NotNil(t, result)

	// "N/A" means absent, not a poster named "N/A".
	assert.False(t, result.HasPoster)
	assert.Empty(t, result.Poster)
	assert.True(t, result.HasRating)
}

func TestLookupNotFound(t *testing.T) {
	client := newTestClient(t, "test-key", func(w http.ResponseWriter, r *http.Request) {
		// "Not found" is a 200 with Response=False.
		w.Write([]byte(`{"Response":"False","Error":"Movie not found!"}`))
	})

	result, err := client.Lookup(context.Background(), "No Such Film", 0)
	require.NoError(t, err)
	assert.Nil(t, result)
}

func TestLookupWithoutAPIKey(t *testing.T) {
	client := newTestClient(t, "", func(w http.ResponseWriter, r *http.Request) {
		t.Error("request should not reach the provider")
	})

	assert.False(t, client.Configured())

	_, err := client.Lookup(context.Background(), "Inception", 2010)
	assert.ErrorIs(t, err, errors.ErrProviderUnavailable)
}

func TestLookupProviderError(t *testing.T) {
	client := newTestClient(t, "test-key", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})

	_, err := client.Lookup(context.Background(), "Inception", 0)
	assert.ErrorIs(t, err, errors.ErrProviderUnavailable)
}

func TestLookupBadRating(t *testing.T) {
	client := newTestClient(t, "test-key", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"Poster":"N/A","imdbRating":"eight point eight","Response":"True"}`))
	})

	_, err := client.Lookup(context.Background(), "Inception", 0)
	assert.ErrorIs(t, err, errors.ErrProviderUnavailable)
}
