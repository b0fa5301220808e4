package tmdb

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/mwhitley/reel/internal/domain"
)

const (
	defaultTimeout = 15 * time.Second
	userAgent      = "Reel/1.0"

	// DefaultBaseURL is the production TMDB API root.
	DefaultBaseURL = "https://api.themoviedb.org/3"
)

// Client implements domain.Catalog against the TMDB v3 API.
type Client struct {
	baseURL    string
	apiKey     string
	language   string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient creates a new TMDB API client. Every request carries the API key
// and the configured language.
func NewClient(baseURL, apiKey, language string, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		baseURL:  baseURL,
		apiKey:   apiKey,
		language: language,
		httpClient: &http.Client{
			Timeout: defaultTimeout,
		},
		logger: logger,
	}
}

// doRequest performs an authenticated GET request against the API.
func (c *Client) doRequest(ctx context.Context, path string, query url.Values) ([]byte, error) {
	if query == nil {
		query = url.Values{}
	}
	query.Set("api_key", c.apiKey)
	query.Set("language", c.language)

	reqURL := fmt.Sprintf("%s%s?%s", c.baseURL, path, query.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)

	c.logger.Debug("tmdb request", "path", path)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("tmdb request failed", "path", path, "error", err)
		return nil, fmt.Errorf("%w: %v", domain.ErrCatalogUnavailable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode == http.StatusNotFound {
		return nil, domain.ErrMovieNotFound
	}

	if resp.StatusCode != http.StatusOK {
		c.logger.Error("tmdb request error", "path", path, "status", resp.StatusCode)
		return nil, fmt.Errorf("%w: unexpected status %d", domain.ErrCatalogUnavailable, resp.StatusCode)
	}

	return body, nil
}

func (c *Client) fetchPage(ctx context.Context, path string, query url.Values) (*domain.MoviePage, error) {
	body, err := c.doRequest(ctx, path, query)
	if err != nil {
		return nil, err
	}

	var page pageResponse
	if err := json.Unmarshal(body, &page); err != nil {
		c.logger.Error("tmdb parse error", "path", path, "error", err)
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}

	return mapPage(page), nil
}

// Search returns one page of results for a query. An empty or whitespace-only
// query short-circuits to an empty page without touching the network.
func (c *Client) Search(ctx context.Context, query string, page int) (*domain.MoviePage, error) {
	if strings.TrimSpace(query) == "" {
		return &domain.MoviePage{Page: 1, Results: []domain.Movie{}, TotalPages: 0, TotalResults: 0}, nil
	}

	q := url.Values{}
	q.Set("query", query)
	q.Set("page", strconv.Itoa(page))
	q.Set("include_adult", "false")

	return c.fetchPage(ctx, "/search/movie", q)
}

// Trending returns today's trending movies. The endpoint takes no page
// parameter.
func (c *Client) Trending(ctx context.Context) (*domain.MoviePage, error) {
	return c.fetchPage(ctx, "/trending/movie/day", nil)
}

// TopRated returns one page of the all-time top rated movies.
func (c *Client) TopRated(ctx context.Context, page int) (*domain.MoviePage, error) {
	q := url.Values{}
	q.Set("page", strconv.Itoa(page))
	return c.fetchPage(ctx, "/movie/top_rated", q)
}

// Upcoming returns one page of upcoming releases.
func (c *Client) Upcoming(ctx context.Context, page int) (*domain.MoviePage, error) {
	q := url.Values{}
	q.Set("page", strconv.Itoa(page))
	return c.fetchPage(ctx, "/movie/upcoming", q)
}

// Details returns the full record for a single movie.
func (c *Client) Details(ctx context.Context, id int) (*domain.MovieDetails, error) {
	body, err := c.doRequest(ctx, fmt.Sprintf("/movie/%d", id), nil)
	if err != nil {
		return nil, err
	}

	var detail movieDetailResponse
	if err := json.Unmarshal(body, &detail); err != nil {
		c.logger.Error("tmdb parse error", "path", "/movie/{id}", "error", err)
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}

	return mapDetails(detail), nil
}
