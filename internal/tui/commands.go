package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mwhitley/reel/internal/domain"
	"github.com/mwhitley/reel/internal/service"
)

// Command factories for async operations

const fetchTimeout = 30 * time.Second

// FetchBrowseCmd runs one coordinator request against the catalog. A nil
// request (blank search, suppressed load-more) produces no command.
func FetchBrowseCmd(svc *service.BrowseService, req *service.BrowseRequest) tea.Cmd {
	if req == nil {
		return nil
	}
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
		defer cancel()

		page, err := svc.Fetch(ctx, req)
		return BrowseResultMsg{Req: req, Page: page, Err: err}
	}
}

// LoadDetailsCmd fetches the detail page for a movie
func LoadDetailsCmd(catalog domain.Catalog, id int) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
		defer cancel()

		details, err := catalog.Details(ctx, id)
		if err != nil {
			return ErrMsg{Err: err, Context: "loading details"}
		}
		return DetailsLoadedMsg{Details: details}
	}
}

// LoginCmd runs a login attempt
func LoginCmd(svc *service.SessionService, username, password string) tea.Cmd {
	return func() tea.Msg {
		user, err := svc.Login(username, password)
		return LoginResultMsg{User: user, Err: err}
	}
}

// TickCmd schedules the next spinner tick
func TickCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return TickMsg{}
	})
}

// ClearStatusCmd clears the status line after a delay
func ClearStatusCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return ClearStatusMsg{}
	})
}
