package service

import (
	"log/slog"
	"strings"
	"sync"

	"github.com/mwhitley/reel/internal/domain"
	"github.com/mwhitley/reel/internal/store"
	"github.com/sahilm/fuzzy"
)

// FavoritesService maintains the user's saved movies: de-duplicated by movie
// ID, insertion order preserved, whole collection persisted after every
// mutation.
type FavoritesService struct {
	store  *store.Store
	logger *slog.Logger

	mu     sync.RWMutex
	movies []domain.Movie
	ids    map[int]bool
}

// NewFavoritesService creates the service and loads the persisted collection.
// A missing or corrupt record starts the collection empty.
func NewFavoritesService(st *store.Store, logger *slog.Logger) *FavoritesService {
	if logger == nil {
		logger = slog.Default()
	}

	s := &FavoritesService{
		store:  st,
		logger: logger,
		ids:    make(map[int]bool),
	}

	if movies, ok := st.GetFavorites(); ok {
		for _, m := range movies {
			if s.ids[m.ID] {
				continue
			}
			s.ids[m.ID] = true
			s.movies = append(s.movies, m)
		}
	}

	return s
}

// Add inserts a movie unless it is already present. A duplicate add is a
// no-op. The updated collection is persisted before returning.
func (s *FavoritesService) Add(movie domain.Movie) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.ids[movie.ID] {
		return nil
	}

	s.ids[movie.ID] = true
	s.movies = append(s.movies, movie)
	s.logger.Debug("favorite added", "id", movie.ID, "title", movie.Title)

	return s.store.SaveFavorites(s.movies)
}

// Remove deletes the movie with the given ID, if present.
func (s *FavoritesService) Remove(id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.ids[id] {
		return nil
	}

	delete(s.ids, id)
	for i, m := range s.movies {
		if m.ID == id {
			s.movies = append(s.movies[:i], s.movies[i+1:]...)
			break
		}
	}
	s.logger.Debug("favorite removed", "id", id)

	return s.store.SaveFavorites(s.movies)
}

// IsFavorite reports membership by movie ID.
func (s *FavoritesService) IsFavorite(id int) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.ids[id]
}

// List returns the collection in insertion order.
func (s *FavoritesService) List() []domain.Movie {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Movie, len(s.movies))
	copy(out, s.movies)
	return out
}

// Count returns the number of saved movies.
func (s *FavoritesService) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.movies)
}

// FavoriteMatch is a fuzzy filter hit with match positions for highlighting.
type FavoriteMatch struct {
	Movie          domain.Movie
	MatchedIndexes []int
	Score          int
}

// favoritesIndex implements fuzzy.Source over movie titles.
type favoritesIndex struct {
	movies []domain.Movie
	titles []string
}

func (idx favoritesIndex) String(i int) string { return idx.titles[i] }
func (idx favoritesIndex) Len() int            { return len(idx.titles) }

// Filter fuzzy-matches the collection by title. An empty query returns the
// whole collection in insertion order with no match metadata.
func (s *FavoritesService) Filter(query string) []FavoriteMatch {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if strings.TrimSpace(query) == "" {
		out := make([]FavoriteMatch, len(s.movies))
		for i, m := range s.movies {
			out[i] = FavoriteMatch{Movie: m}
		}
		return out
	}

	idx := favoritesIndex{movies: s.movies, titles: make([]string, len(s.movies))}
	for i, m := range s.movies {
		idx.titles[i] = m.Title
	}

	matches := fuzzy.FindFrom(query, idx)

	out := make([]FavoriteMatch, 0, len(matches))
	for _, match := range matches {
		out = append(out, FavoriteMatch{
			Movie:          idx.movies[match.Index],
			MatchedIndexes: match.MatchedIndexes,
			Score:          match.Score,
		})
	}
	return out
}
