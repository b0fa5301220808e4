package domain

import "errors"

// Sentinel errors for domain operations
var (
	// ErrInvalidCredentials indicates a rejected login attempt
	ErrInvalidCredentials = errors.New("invalid username or password")

	// ErrCatalogUnavailable indicates the movie catalog could not be reached
	// or returned a non-success response
	ErrCatalogUnavailable = errors.New("movie catalog is unavailable")

	// ErrMovieNotFound indicates the requested movie does not exist
	ErrMovieNotFound = errors.New("movie not found")
)
