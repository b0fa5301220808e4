package store

import (
	"testing"

	"github.com/mwhitley/reel/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFavoritesRoundTrip(t *testing.T) {
	dir := t.TempDir()

	s, err := New(dir)
	require.NoError(t, err)

	movies := []domain.Movie{
		{ID: 603, Title: "The Matrix", VoteAverage: 8.2},
		{ID: 27205, Title: "Inception", VoteAverage: 8.4},
		{ID: 155, Title: "The Dark Knight", VoteAverage: 8.5},
	}
	require.NoError(t, s.SaveFavorites(movies))
	require.NoError(t, s.Close())

	// Reopen and verify order survives the round trip
	s, err = New(dir)
	require.NoError(t, err)
	defer s.Close()

	got, ok := s.GetFavorites()
	require.True(t, ok)
	assert.Equal(t, movies, got)
}

func TestUserRoundTrip(t *testing.T) {
	s, err := New("")
	require.NoError(t, err)
	defer s.Close()

	_, ok := s.GetUser()
	assert.False(t, ok)

	user := domain.User{ID: "user-1715000000000", Username: "sasha"}
	require.NoError(t, s.SaveUser(user))

	got, ok := s.GetUser()
	require.True(t, ok)
	assert.Equal(t, user, got)

	s.DeleteUser()
	_, ok = s.GetUser()
	assert.False(t, ok)
}

func TestCorruptRecordTreatedAsAbsent(t *testing.T) {
	s, err := New("")
	require.NoError(t, err)
	defer s.Close()

	s.cache["favorites:list"] = []byte("{not json")
	_, ok := s.GetFavorites()
	assert.False(t, ok)

	s.cache["session:current"] = []byte("42")
	_, ok = s.GetUser()
	assert.False(t, ok)
}

func TestEmptyUserRecordTreatedAsAbsent(t *testing.T) {
	s, err := New("")
	require.NoError(t, err)
	defer s.Close()

	require.NoError(t, s.SaveUser(domain.User{}))
	_, ok := s.GetUser()
	assert.False(t, ok)
}

func TestLastSearch(t *testing.T) {
	s, err := New("")
	require.NoError(t, err)
	defer s.Close()

	_, ok := s.GetLastSearch()
	assert.False(t, ok)

	require.NoError(t, s.SaveLastSearch("batman"))
	q, ok := s.GetLastSearch()
	require.True(t, ok)
	assert.Equal(t, "batman", q)

	s.DeleteLastSearch()
	_, ok = s.GetLastSearch()
	assert.False(t, ok)
}
