package store_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/otakuverse/otakuverse-client/internal/domain"
)

func TestSessionRoundTrip(t *testing.T) {
	s := setupTestStore(t)

	user := &domain.User{
		ID:       "user-1",
		Username: "miko",
		Email:    "miko@example.com",
		Preferences: domain.Preferences{
			FavoriteGenres: []string{"action", "drama"},
		},
	}

	require.NoError(t, s.SaveSession("tok-123", user))

	token, loaded, err := s.LoadSession()
	require.NoError(t, err)
	assert.Equal(t, "tok-123", token)
	require.NotNil(t, loaded)
	assert.Equal(t, "user-1", loaded.ID)
	assert.Equal(t, []string{"action", "drama"}, loaded.Preferences.FavoriteGenres)
}

func TestSessionLoadEmpty(t *testing.T) {
	s := setupTestStore(t)

	token, user, err := s.LoadSession()
	require.NoError(t, err)
	assert.Empty(t, token)
	assert.Nil(t, user)
}

func TestSessionDeleteRemovesBothKeys(t *testing.T) {
	s := setupTestStore(t)

	require.NoError(t, s.SaveSession("tok-123", &domain.User{ID: "user-1"}))
	require.NoError(t, s.DeleteSession())

	token, user, err := s.LoadSession()
	require.NoError(t, err)
	assert.Empty(t, token)
	assert.Nil(t, user)
}

func TestSaveUserLeavesTokenUntouched(t *testing.T) {
	s := setupTestStore(t)

	require.NoError(t, s.SaveSession("tok-123", &domain.User{ID: "user-1", Username: "miko"}))
	require.NoError(t, s.SaveUser(&domain.User{ID: "user-1", Username: "mikoto"}))

	token, user, err := s.LoadSession()
	require.NoError(t, err)
	assert.Equal(t, "tok-123", token)
	require.NotNil(t, user)
	assert.Equal(t, "mikoto", user.Username)
}
