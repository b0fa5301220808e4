package domain

import "context"

// Catalog provides access to the remote movie catalog.
type Catalog interface {
	// Search returns one page of results for a query. An empty or
	// whitespace-only query yields an empty page without a network call.
	Search(ctx context.Context, query string, page int) (*MoviePage, error)

	// Trending returns today's trending movies. The endpoint does not
	// paginate.
	Trending(ctx context.Context) (*MoviePage, error)

	// TopRated returns one page of the all-time top rated movies.
	TopRated(ctx context.Context, page int) (*MoviePage, error)

	// Upcoming returns one page of upcoming releases.
	Upcoming(ctx context.Context, page int) (*MoviePage, error)

	// Details returns the full record for a single movie.
	Details(ctx context.Context, id int) (*MovieDetails, error)
}
