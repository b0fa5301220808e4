package service

import (
	"testing"

	"github.com/mwhitley/reel/internal/domain"
	"github.com/mwhitley/reel/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	matrix     = domain.Movie{ID: 603, Title: "The Matrix"}
	inception  = domain.Movie{ID: 27205, Title: "Inception"}
	darkKnight = domain.Movie{ID: 155, Title: "The Dark Knight"}
)

func TestAddAndRemove(t *testing.T) {
	svc := NewFavoritesService(newTestStore(t), nil)

	require.NoError(t, svc.Add(matrix))
	require.NoError(t, svc.Add(inception))

	assert.True(t, svc.IsFavorite(matrix.ID))
	assert.True(t, svc.IsFavorite(inception.ID))
	assert.Equal(t, 2, svc.Count())

	require.NoError(t, svc.Remove(matrix.ID))
	assert.False(t, svc.IsFavorite(matrix.ID))
	assert.Equal(t, []domain.Movie{inception}, svc.List())
}

func TestDuplicateAddIsNoOp(t *testing.T) {
	svc := NewFavoritesService(newTestStore(t), nil)

	require.NoError(t, svc.Add(matrix))
	require.NoError(t, svc.Add(inception))
	require.NoError(t, svc.Add(matrix))

	assert.Equal(t, []domain.Movie{matrix, inception}, svc.List())
}

func TestRemoveAbsentIsNoOp(t *testing.T) {
	svc := NewFavoritesService(newTestStore(t), nil)

	require.NoError(t, svc.Add(matrix))
	require.NoError(t, svc.Remove(999))

	assert.Equal(t, 1, svc.Count())
}

func TestInsertionOrderPreserved(t *testing.T) {
	svc := NewFavoritesService(newTestStore(t), nil)

	require.NoError(t, svc.Add(darkKnight))
	require.NoError(t, svc.Add(matrix))
	require.NoError(t, svc.Add(inception))

	assert.Equal(t, []domain.Movie{darkKnight, matrix, inception}, svc.List())
}

func TestMembershipTracksLastMutation(t *testing.T) {
	svc := NewFavoritesService(newTestStore(t), nil)

	ops := []struct {
		add  bool
		want bool
	}{
		{add: true, want: true},
		{add: true, want: true},
		{add: false, want: false},
		{add: false, want: false},
		{add: true, want: true},
	}

	for _, op := range ops {
		if op.add {
			require.NoError(t, svc.Add(matrix))
		} else {
			require.NoError(t, svc.Remove(matrix.ID))
		}
		assert.Equal(t, op.want, svc.IsFavorite(matrix.ID))
	}
	assert.Equal(t, 1, svc.Count())
}

func TestPersistenceRoundTrip(t *testing.T) {
	dir := t.TempDir()

	st, err := store.New(dir)
	require.NoError(t, err)

	svc := NewFavoritesService(st, nil)
	require.NoError(t, svc.Add(darkKnight))
	require.NoError(t, svc.Add(matrix))
	require.NoError(t, st.Close())

	st, err = store.New(dir)
	require.NoError(t, err)
	defer st.Close()

	reloaded := NewFavoritesService(st, nil)
	assert.Equal(t, []domain.Movie{darkKnight, matrix}, reloaded.List())
}

func TestFilter(t *testing.T) {
	svc := NewFavoritesService(newTestStore(t), nil)

	require.NoError(t, svc.Add(matrix))
	require.NoError(t, svc.Add(inception))
	require.NoError(t, svc.Add(darkKnight))

	// Blank query returns everything in insertion order
	all := svc.Filter("  ")
	require.Len(t, all, 3)
	assert.Equal(t, matrix, all[0].Movie)

	matches := svc.Filter("dark")
	require.Len(t, matches, 1)
	assert.Equal(t, darkKnight, matches[0].Movie)
	assert.NotEmpty(t, matches[0].MatchedIndexes)

	assert.Empty(t, svc.Filter("zzzz"))
}
