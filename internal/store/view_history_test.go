package store_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/otakuverse/otakuverse-client/internal/domain"
)

func TestViewHistoryOrder(t *testing.T) {
	s := setupTestStore(t)

	require.NoError(t, s.AddView("user-1", "Attack on Titan", domain.TypeAnime))
	require.NoError(t, s.AddView("user-1", "Berserk", domain.TypeManga))

	history, err := s.ViewHistory("user-1")
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, "Berserk", history[0].Title)
	assert.Equal(t, domain.TypeManga, history[0].ContentType)
	assert.Equal(t, "Attack on Titan", history[1].Title)
	assert.False(t, history[0].Timestamp.IsZero())
}

func TestViewHistoryNotDeduplicated(t *testing.T) {
	s := setupTestStore(t)

	require.NoError(t, s.AddView("user-1", "Attack on Titan", domain.TypeAnime))
	require.NoError(t, s.AddView("user-1", "Attack on Titan", domain.TypeAnime))

	history, err := s.ViewHistory("user-1")
	require.NoError(t, err)
	assert.Len(t, history, 2)
}

func TestViewHistoryClear(t *testing.T) {
	s := setupTestStore(t)

	require.NoError(t, s.AddView("user-1", "Attack on Titan", domain.TypeAnime))
	require.NoError(t, s.ClearViewHistory("user-1"))

	history, err := s.ViewHistory("user-1")
	require.NoError(t, err)
	assert.Empty(t, history)
}

func TestViewHistoryAnonymousNoop(t *testing.T) {
	s := setupTestStore(t)

	require.NoError(t, s.AddView("", "Attack on Titan", domain.TypeAnime))

	history, err := s.ViewHistory("")
	require.NoError(t, err)
	assert.Empty(t, history)
}
