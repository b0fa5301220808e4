package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/mwhitley/reel/internal/domain"
	"github.com/mwhitley/reel/internal/store"
)

// BrowseState is the coordinator's lifecycle state.
type BrowseState int

const (
	BrowseIdle BrowseState = iota
	BrowseLoading
	BrowseLoaded
	BrowseError
)

// Feed identifies which catalog listing is being browsed.
type Feed int

const (
	FeedTrending Feed = iota
	FeedTopRated
	FeedUpcoming
	FeedSearch
)

// Title returns the display name for a feed.
func (f Feed) Title() string {
	switch f {
	case FeedTopRated:
		return "Top Rated"
	case FeedUpcoming:
		return "Upcoming"
	case FeedSearch:
		return "Search Results"
	default:
		return "Trending Today"
	}
}

func (f Feed) errMessage() string {
	switch f {
	case FeedSearch:
		return "Failed to search movies. Please try again later."
	default:
		return fmt.Sprintf("Failed to load %s movies. Please try again later.", strings.ToLower(f.Title()))
	}
}

// BrowseRequest describes one in-flight catalog fetch. The sequence number
// lets the coordinator detect and discard responses superseded by a newer
// request.
type BrowseRequest struct {
	Seq    int
	Feed   Feed
	Query  string
	Page   int
	Append bool
}

// BrowseService coordinates catalog fetches for the browse views: it tracks
// loading/error state, accumulates pages on load-more, and persists the last
// search query so the view restores on the next start.
//
// Appended pages are concatenated exactly as the catalog returns them, with
// no re-sorting and no de-duplication across pages; overlapping pages are a
// legitimate catalog behavior when data shifts between fetches.
type BrowseService struct {
	catalog domain.Catalog
	store   *store.Store
	logger  *slog.Logger

	mu         sync.Mutex
	seq        int
	state      BrowseState
	feed       Feed
	query      string
	page       int
	totalPages int
	results    []domain.Movie
	errMsg     string
}

// NewBrowseService creates a new browse coordinator starting at Idle on the
// trending feed.
func NewBrowseService(catalog domain.Catalog, st *store.Store, logger *slog.Logger) *BrowseService {
	if logger == nil {
		logger = slog.Default()
	}
	return &BrowseService{
		catalog: catalog,
		store:   st,
		logger:  logger,
		feed:    FeedTrending,
	}
}

// RestoreLastSearch returns the persisted query from the previous run, if
// any. Only the query survives restarts, never the enumerated results.
func (s *BrowseService) RestoreLastSearch() (string, bool) {
	return s.store.GetLastSearch()
}

// StartSearch begins a page-1 search for query. A blank query instead resets
// the coordinator to Idle, drops the persisted last-search record and leaves
// the caller to fall back to the trending feed; no request is issued.
func (s *BrowseService) StartSearch(query string) (*BrowseRequest, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if strings.TrimSpace(query) == "" {
		s.state = BrowseIdle
		s.feed = FeedTrending
		s.query = ""
		s.page = 0
		s.totalPages = 0
		s.results = nil
		s.errMsg = ""
		s.store.DeleteLastSearch()
		return nil, false
	}

	s.seq++
	s.state = BrowseLoading
	s.feed = FeedSearch
	s.query = query
	s.errMsg = ""

	if err := s.store.SaveLastSearch(query); err != nil {
		s.logger.Warn("failed to persist last search", "error", err)
	}

	return &BrowseRequest{Seq: s.seq, Feed: FeedSearch, Query: query, Page: 1}, true
}

// StartFeed begins a page-1 fetch of a non-search feed.
func (s *BrowseService) StartFeed(feed Feed) *BrowseRequest {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.seq++
	s.state = BrowseLoading
	s.feed = feed
	s.query = ""
	s.errMsg = ""

	return &BrowseRequest{Seq: s.seq, Feed: feed, Page: 1}
}

// LoadMore requests the next page in append mode. It is a no-op while a
// request is in flight, on the trending feed (which never paginates), and
// once the last known page has been fetched.
func (s *BrowseService) LoadMore() (*BrowseRequest, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == BrowseLoading || s.state == BrowseIdle {
		return nil, false
	}
	if s.feed == FeedTrending {
		return nil, false
	}
	if s.feed == FeedSearch && s.query == "" {
		return nil, false
	}
	if s.totalPages > 0 && s.page >= s.totalPages {
		return nil, false
	}

	s.seq++
	s.state = BrowseLoading
	s.errMsg = ""

	return &BrowseRequest{
		Seq:    s.seq,
		Feed:   s.feed,
		Query:  s.query,
		Page:   s.page + 1,
		Append: true,
	}, true
}

// Fetch performs the catalog call described by req. It holds no coordinator
// state and is safe to run off the update loop.
func (s *BrowseService) Fetch(ctx context.Context, req *BrowseRequest) (*domain.MoviePage, error) {
	switch req.Feed {
	case FeedSearch:
		return s.catalog.Search(ctx, req.Query, req.Page)
	case FeedTopRated:
		return s.catalog.TopRated(ctx, req.Page)
	case FeedUpcoming:
		return s.catalog.Upcoming(ctx, req.Page)
	default:
		return s.catalog.Trending(ctx)
	}
}

// Apply folds a completed fetch back into the coordinator. A response whose
// sequence number is stale (a newer request has been issued since) is
// discarded and Apply reports false. On failure the accumulated results are
// left untouched and an error message is recorded.
func (s *BrowseService) Apply(req *BrowseRequest, page *domain.MoviePage, err error) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if req == nil {
		return false
	}
	if req.Seq != s.seq {
		s.logger.Debug("discarding stale response", "seq", req.Seq, "current", s.seq)
		return false
	}

	if err != nil {
		s.logger.Error("browse fetch failed", "feed", req.Feed.Title(), "page", req.Page, "error", err)
		s.state = BrowseError
		s.errMsg = req.Feed.errMessage()
		return true
	}

	if req.Append {
		s.results = append(s.results, page.Results...)
	} else {
		s.results = page.Results
	}
	s.page = page.Page
	s.totalPages = page.TotalPages
	s.state = BrowseLoaded
	s.errMsg = ""

	s.logger.Debug("browse page applied",
		"feed", req.Feed.Title(), "page", page.Page, "results", len(s.results))
	return true
}

// State returns the current lifecycle state.
func (s *BrowseService) State() BrowseState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Results returns the accumulated result list.
func (s *BrowseService) Results() []domain.Movie {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.Movie, len(s.results))
	copy(out, s.results)
	return out
}

// Query returns the active search query ("" outside the search feed).
func (s *BrowseService) Query() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.query
}

// Feed returns the feed currently being browsed.
func (s *BrowseService) Feed() Feed {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.feed
}

// Page returns the last applied page number.
func (s *BrowseService) Page() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.page
}

// Err returns the recorded error message, if any.
func (s *BrowseService) Err() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.errMsg
}

// CanLoadMore reports whether a load-more request would be issued right now.
func (s *BrowseService) CanLoadMore() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != BrowseLoaded && s.state != BrowseError {
		return false
	}
	if s.feed == FeedTrending {
		return false
	}
	if s.feed == FeedSearch && s.query == "" {
		return false
	}
	return s.totalPages == 0 || s.page < s.totalPages
}
