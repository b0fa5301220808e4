package tui

import (
	"github.com/mwhitley/reel/internal/domain"
	"github.com/mwhitley/reel/internal/service"
)

// Message types for the TUI

// ErrMsg represents an error
type ErrMsg struct {
	Err     error
	Context string
}

// Error implements the error interface
func (e ErrMsg) Error() string {
	if e.Context != "" {
		return e.Context + ": " + e.Err.Error()
	}
	return e.Err.Error()
}

// LoginResultMsg carries the outcome of a login attempt
type LoginResultMsg struct {
	User domain.User
	Err  error
}

// BrowseResultMsg carries one completed catalog fetch back to the
// coordinator. Req identifies the request so stale responses are discarded.
type BrowseResultMsg struct {
	Req  *service.BrowseRequest
	Page *domain.MoviePage
	Err  error
}

// DetailsLoadedMsg signals that a movie detail page is ready
type DetailsLoadedMsg struct {
	Details *domain.MovieDetails
}

// TickMsg is a general tick message for the loading spinner
type TickMsg struct{}

// StatusMsg sets a temporary status message
type StatusMsg struct {
	Message string
	IsError bool
}

// ClearStatusMsg clears the status bar message
type ClearStatusMsg struct{}
