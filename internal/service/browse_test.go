package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/mwhitley/reel/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeCatalog serves canned pages and records issued calls.
type fakeCatalog struct {
	pages    map[string]*domain.MoviePage // key: "query:page"
	trending *domain.MoviePage
	err      error
	calls    int
}

func (f *fakeCatalog) Search(ctx context.Context, query string, page int) (*domain.MoviePage, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	p, ok := f.pages[fmt.Sprintf("%s:%d", query, page)]
	if !ok {
		return &domain.MoviePage{Page: page, Results: []domain.Movie{}}, nil
	}
	return p, nil
}

func (f *fakeCatalog) Trending(ctx context.Context) (*domain.MoviePage, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.trending, nil
}

func (f *fakeCatalog) TopRated(ctx context.Context, page int) (*domain.MoviePage, error) {
	return f.Search(ctx, "top_rated", page)
}

func (f *fakeCatalog) Upcoming(ctx context.Context, page int) (*domain.MoviePage, error) {
	return f.Search(ctx, "upcoming", page)
}

func (f *fakeCatalog) Details(ctx context.Context, id int) (*domain.MovieDetails, error) {
	return nil, domain.ErrMovieNotFound
}

func movies(ids ...int) []domain.Movie {
	out := make([]domain.Movie, len(ids))
	for i, id := range ids {
		out[i] = domain.Movie{ID: id, Title: fmt.Sprintf("Movie %d", id)}
	}
	return out
}

func batmanCatalog() *fakeCatalog {
	return &fakeCatalog{
		pages: map[string]*domain.MoviePage{
			"batman:1": {Page: 1, Results: movies(1, 2, 3), TotalPages: 3, TotalResults: 7},
			"batman:2": {Page: 2, Results: movies(4, 3, 5), TotalPages: 3, TotalResults: 7},
			"batman:3": {Page: 3, Results: movies(6), TotalPages: 3, TotalResults: 7},
		},
	}
}

// run drives a request through Fetch and Apply, the way the TUI does.
func run(t *testing.T, svc *BrowseService, req *BrowseRequest) {
	t.Helper()
	page, err := svc.Fetch(context.Background(), req)
	svc.Apply(req, page, err)
}

func TestSearchThenLoadMoreConcatenates(t *testing.T) {
	svc := NewBrowseService(batmanCatalog(), newTestStore(t), nil)

	req, ok := svc.StartSearch("batman")
	require.True(t, ok)
	assert.Equal(t, BrowseLoading, svc.State())
	run(t, svc, req)

	assert.Equal(t, BrowseLoaded, svc.State())
	assert.Equal(t, movies(1, 2, 3), svc.Results())

	req, ok = svc.LoadMore()
	require.True(t, ok)
	assert.Equal(t, 2, req.Page)
	run(t, svc, req)

	// Page 2 repeats id 3; the overlap is preserved, not de-duplicated
	assert.Equal(t, movies(1, 2, 3, 4, 3, 5), svc.Results())
	assert.Equal(t, 2, svc.Page())
}

func TestLoadMoreNoOpWhileLoading(t *testing.T) {
	svc := NewBrowseService(batmanCatalog(), newTestStore(t), nil)

	req, ok := svc.StartSearch("batman")
	require.True(t, ok)

	// Response not applied yet: still Loading
	_, ok = svc.LoadMore()
	assert.False(t, ok)

	run(t, svc, req)
	_, ok = svc.LoadMore()
	assert.True(t, ok)
}

func TestLoadMoreStopsAtLastPage(t *testing.T) {
	svc := NewBrowseService(batmanCatalog(), newTestStore(t), nil)

	req, _ := svc.StartSearch("batman")
	run(t, svc, req)
	for {
		next, ok := svc.LoadMore()
		if !ok {
			break
		}
		run(t, svc, next)
	}

	assert.Equal(t, 3, svc.Page())
	assert.Equal(t, movies(1, 2, 3, 4, 3, 5, 6), svc.Results())
	assert.False(t, svc.CanLoadMore())
}

func TestFailedLoadMoreKeepsResults(t *testing.T) {
	catalog := batmanCatalog()
	svc := NewBrowseService(catalog, newTestStore(t), nil)

	req, _ := svc.StartSearch("batman")
	run(t, svc, req)

	catalog.err = domain.ErrCatalogUnavailable
	req, ok := svc.LoadMore()
	require.True(t, ok)
	run(t, svc, req)

	assert.Equal(t, BrowseError, svc.State())
	assert.Equal(t, "Failed to search movies. Please try again later.", svc.Err())
	assert.Equal(t, movies(1, 2, 3), svc.Results())

	// Recovery: the error state still allows another attempt
	catalog.err = nil
	req, ok = svc.LoadMore()
	require.True(t, ok)
	run(t, svc, req)
	assert.Equal(t, BrowseLoaded, svc.State())
	assert.Empty(t, svc.Err())
}

func TestBlankQueryResetsToIdle(t *testing.T) {
	catalog := batmanCatalog()
	st := newTestStore(t)
	svc := NewBrowseService(catalog, st, nil)

	req, _ := svc.StartSearch("batman")
	run(t, svc, req)
	q, ok := st.GetLastSearch()
	require.True(t, ok)
	assert.Equal(t, "batman", q)

	before := catalog.calls
	_, ok = svc.StartSearch("   ")
	assert.False(t, ok)

	assert.Equal(t, BrowseIdle, svc.State())
	assert.Empty(t, svc.Results())
	assert.Equal(t, FeedTrending, svc.Feed())
	assert.Equal(t, before, catalog.calls)

	_, ok = st.GetLastSearch()
	assert.False(t, ok, "last-search marker should be dropped")
}

func TestStaleResponseDiscarded(t *testing.T) {
	svc := NewBrowseService(batmanCatalog(), newTestStore(t), nil)

	stale, _ := svc.StartSearch("batman")
	stalePage, staleErr := svc.Fetch(context.Background(), stale)

	// A newer search supersedes the in-flight one
	fresh, _ := svc.StartSearch("superman")

	assert.False(t, svc.Apply(stale, stalePage, staleErr))
	assert.Equal(t, BrowseLoading, svc.State())
	assert.Empty(t, svc.Results())

	run(t, svc, fresh)
	assert.Equal(t, BrowseLoaded, svc.State())
	assert.Equal(t, "superman", svc.Query())
}

func TestTrendingNeverPaginates(t *testing.T) {
	catalog := batmanCatalog()
	catalog.trending = &domain.MoviePage{Page: 1, Results: movies(10, 11), TotalPages: 1000, TotalResults: 20000}
	svc := NewBrowseService(catalog, newTestStore(t), nil)

	req := svc.StartFeed(FeedTrending)
	run(t, svc, req)

	assert.Equal(t, movies(10, 11), svc.Results())
	_, ok := svc.LoadMore()
	assert.False(t, ok)
}

func TestTopRatedFeedPaginates(t *testing.T) {
	catalog := &fakeCatalog{
		pages: map[string]*domain.MoviePage{
			"top_rated:1": {Page: 1, Results: movies(1), TotalPages: 2, TotalResults: 2},
			"top_rated:2": {Page: 2, Results: movies(2), TotalPages: 2, TotalResults: 2},
		},
	}
	svc := NewBrowseService(catalog, newTestStore(t), nil)

	run(t, svc, svc.StartFeed(FeedTopRated))
	req, ok := svc.LoadMore()
	require.True(t, ok)
	run(t, svc, req)

	assert.Equal(t, movies(1, 2), svc.Results())
}

func TestRestoreLastSearch(t *testing.T) {
	st := newTestStore(t)
	svc := NewBrowseService(batmanCatalog(), st, nil)

	req, _ := svc.StartSearch("batman")
	run(t, svc, req)

	// A fresh coordinator over the same store sees only the query
	fresh := NewBrowseService(batmanCatalog(), st, nil)
	q, ok := fresh.RestoreLastSearch()
	require.True(t, ok)
	assert.Equal(t, "batman", q)
	assert.Empty(t, fresh.Results())
}
