package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestYear(t *testing.T) {
	tests := []struct {
		releaseDate string
		want        int
	}{
		{"1999-03-31", 1999},
		{"2024-01-01", 2024},
		{"", 0},
		{"bad", 0},
	}

	for _, tt := range tests {
		m := Movie{ReleaseDate: tt.releaseDate}
		assert.Equal(t, tt.want, m.Year(), "release date %q", tt.releaseDate)
	}
}

func TestStars(t *testing.T) {
	assert.InDelta(t, 4.1, Movie{VoteAverage: 8.2}.Stars(), 0.001)
	assert.Zero(t, Movie{}.Stars())
}

func TestFormattedRating(t *testing.T) {
	assert.Equal(t, "Not rated", Movie{VoteAverage: 7.0}.FormattedRating())
	assert.Equal(t, "7.8 (1234 votes)", Movie{VoteAverage: 7.8, VoteCount: 1234}.FormattedRating())
}

func TestFormattedRuntime(t *testing.T) {
	tests := []struct {
		minutes int
		want    string
	}{
		{136, "2h 16m"},
		{45, "45m"},
		{60, "1h 0m"},
		{0, ""},
	}

	for _, tt := range tests {
		d := MovieDetails{Runtime: tt.minutes}
		assert.Equal(t, tt.want, d.FormattedRuntime())
	}
}

func TestPageHasMore(t *testing.T) {
	assert.True(t, MoviePage{Page: 1, TotalPages: 3}.HasMore())
	assert.False(t, MoviePage{Page: 3, TotalPages: 3}.HasMore())
	assert.False(t, MoviePage{Page: 1, TotalPages: 0}.HasMore())
}

func TestImageResolver(t *testing.T) {
	r := NewImageResolver("https://image.tmdb.org/t/p")

	m := Movie{PosterPath: "/poster.jpg", BackdropPath: "/backdrop.jpg"}
	assert.Equal(t, "https://image.tmdb.org/t/p/w500/poster.jpg", r.PosterURL(m))
	assert.Equal(t, "https://image.tmdb.org/t/p/original/backdrop.jpg", r.BackdropURL(m))

	// No path: no URL, callers render a placeholder
	assert.Empty(t, r.PosterURL(Movie{}))
	assert.Empty(t, r.BackdropURL(Movie{}))
}
