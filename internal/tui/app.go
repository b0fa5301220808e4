package tui

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mwhitley/reel/internal/domain"
	"github.com/mwhitley/reel/internal/service"
	"github.com/mwhitley/reel/internal/tui/components"
	"github.com/mwhitley/reel/internal/tui/styles"
)

// ApplicationState represents the current state of the application
type ApplicationState int

const (
	StateLogin ApplicationState = iota
	StateBrowsing
	StateFavorites
	StateDetails
	StateHelp
	StateConfirmLogout
)

// Chrome sizing
const (
	headerLines = 4 // title row, search bar, tabs, spacer
	footerLines = 2
)

const statusTimeout = 3 * time.Second

// Model is the main Bubble Tea model for the application
type Model struct {
	State ApplicationState
	Ready bool
	Keys  KeyMap

	// Services
	Session   *service.SessionService
	Favorites *service.FavoritesService
	Browse    *service.BrowseService
	Catalog   domain.Catalog

	// UI components
	Login     components.LoginForm
	Search    components.SearchBar
	Grid      components.MovieGrid
	FavGrid   components.MovieGrid
	FavFilter components.SearchBar
	Detail    components.DetailView

	// Dimensions
	Width  int
	Height int

	// UI state
	StatusMsg     string
	StatusIsErr   bool
	SpinnerFrame  int
	detailLoading bool
	detailReturn  ApplicationState
	gridColumns   int
}

// NewModel creates a new application model
func NewModel(
	session *service.SessionService,
	favorites *service.FavoritesService,
	browse *service.BrowseService,
	catalog domain.Catalog,
	images domain.ImageResolver,
	gridColumns int,
) Model {
	state := StateLogin
	if session.IsAuthenticated() {
		state = StateBrowsing
	}

	m := Model{
		State:        state,
		Keys:         DefaultKeyMap(),
		Session:      session,
		Favorites:    favorites,
		Browse:       browse,
		Catalog:      catalog,
		Login:        components.NewLoginForm(),
		Search:       components.NewSearchBar("/ ", "Search movies..."),
		Grid:         components.NewMovieGrid(),
		FavGrid:      components.NewMovieGrid(),
		FavFilter:    components.NewSearchBar("/ ", "Filter favorites..."),
		Detail:       components.NewDetailView(images),
		detailReturn: StateBrowsing,
		gridColumns:  gridColumns,
	}
	m.Grid.SetColumns(gridColumns)
	m.FavGrid.SetColumns(gridColumns)
	return m
}

// Init initializes the application
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{TickCmd(100 * time.Millisecond)}
	if m.State != StateLogin {
		cmds = append(cmds, m.startupBrowseCmd())
	}
	return tea.Batch(cmds...)
}

// startupBrowseCmd restores the previous search if one was persisted,
// otherwise loads the trending feed.
func (m *Model) startupBrowseCmd() tea.Cmd {
	if query, ok := m.Browse.RestoreLastSearch(); ok {
		m.Search.SetValue(query)
		req, _ := m.Browse.StartSearch(query)
		return FetchBrowseCmd(m.Browse, req)
	}
	return FetchBrowseCmd(m.Browse, m.Browse.StartFeed(service.FeedTrending))
}

// Update handles all messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.Ready = true
		m.updateLayout()
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case TickMsg:
		m.SpinnerFrame++
		return m, TickCmd(100 * time.Millisecond)

	case LoginResultMsg:
		if msg.Err != nil {
			if errors.Is(msg.Err, domain.ErrInvalidCredentials) {
				m.Login.SetError("Invalid username or password")
			} else {
				m.Login.SetError(msg.Err.Error())
			}
			return m, nil
		}
		m.State = StateBrowsing
		m.StatusMsg = fmt.Sprintf("Welcome, %s", msg.User.Username)
		m.StatusIsErr = false
		return m, tea.Batch(m.startupBrowseCmd(), ClearStatusCmd(statusTimeout))

	case BrowseResultMsg:
		if m.Browse.Apply(msg.Req, msg.Page, msg.Err) {
			m.refreshGrid()
		}
		return m, nil

	case DetailsLoadedMsg:
		m.detailLoading = false
		m.Detail.SetDetails(msg.Details, m.Favorites.IsFavorite(msg.Details.ID))
		m.State = StateDetails
		return m, nil

	case ErrMsg:
		m.detailLoading = false
		if msg.Context == "loading details" {
			m.StatusMsg = "Failed to load movie details."
		} else {
			m.StatusMsg = msg.Error()
		}
		m.StatusIsErr = true
		return m, ClearStatusCmd(statusTimeout)

	case StatusMsg:
		m.StatusMsg = msg.Message
		m.StatusIsErr = msg.IsError
		return m, ClearStatusCmd(statusTimeout)

	case ClearStatusMsg:
		m.StatusMsg = ""
		m.StatusIsErr = false
		return m, nil
	}

	return m, nil
}

func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Ctrl+C always quits
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	switch m.State {
	case StateLogin:
		return m.handleLoginKeys(msg)
	case StateBrowsing:
		return m.handleBrowseKeys(msg)
	case StateFavorites:
		return m.handleFavoritesKeys(msg)
	case StateDetails:
		return m.handleDetailKeys(msg)
	case StateHelp:
		m.State = StateBrowsing
		return m, nil
	case StateConfirmLogout:
		return m.handleLogoutConfirmKeys(msg)
	}
	return m, nil
}

func (m Model) handleLoginKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	var submitted bool
	m.Login, cmd, submitted = m.Login.Update(msg)
	if submitted {
		return m, tea.Batch(cmd, LoginCmd(m.Session, m.Login.Username(), m.Login.Password()))
	}
	return m, cmd
}

func (m Model) handleBrowseKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.Search.Focused() {
		switch msg.String() {
		case "enter":
			m.Search.Blur()
			return m, m.submitSearch()
		case "esc":
			m.Search.Blur()
			return m, nil
		}
		var cmd tea.Cmd
		m.Search, cmd = m.Search.Update(msg)
		return m, cmd
	}

	switch {
	case key.Matches(msg, m.Keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.Keys.Help):
		m.State = StateHelp
		return m, nil

	case key.Matches(msg, m.Keys.Search):
		m.Search.Focus()
		return m, nil

	case key.Matches(msg, m.Keys.Logout):
		m.State = StateConfirmLogout
		return m, nil

	case key.Matches(msg, m.Keys.Favorites):
		m.State = StateFavorites
		m.FavGrid.Reset()
		m.refreshFavGrid()
		return m, nil

	case key.Matches(msg, m.Keys.Up):
		m.Grid.MoveUp()
		return m, nil

	case key.Matches(msg, m.Keys.Down):
		atLast := m.Grid.AtLastRow()
		m.Grid.MoveDown()
		if atLast && m.Browse.CanLoadMore() {
			req, ok := m.Browse.LoadMore()
			if ok {
				return m, FetchBrowseCmd(m.Browse, req)
			}
		}
		return m, nil

	case key.Matches(msg, m.Keys.Left):
		m.Grid.MoveLeft()
		return m, nil

	case key.Matches(msg, m.Keys.Right):
		m.Grid.MoveRight()
		return m, nil

	case key.Matches(msg, m.Keys.LoadMore):
		req, ok := m.Browse.LoadMore()
		if !ok {
			return m, nil
		}
		return m, FetchBrowseCmd(m.Browse, req)

	case key.Matches(msg, m.Keys.Enter):
		return m.openDetails(m.Grid, StateBrowsing)

	case key.Matches(msg, m.Keys.ToggleFavorite):
		return m.toggleFavorite(&m.Grid)

	case key.Matches(msg, m.Keys.Trending):
		return m.switchFeed(service.FeedTrending)

	case key.Matches(msg, m.Keys.TopRated):
		return m.switchFeed(service.FeedTopRated)

	case key.Matches(msg, m.Keys.Upcoming):
		return m.switchFeed(service.FeedUpcoming)

	case key.Matches(msg, m.Keys.Refresh):
		return m, m.refreshBrowse()
	}

	return m, nil
}

func (m Model) handleFavoritesKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.FavFilter.Focused() {
		switch msg.String() {
		case "enter":
			m.FavFilter.Blur()
			return m, nil
		case "esc":
			m.FavFilter.Blur()
			m.FavFilter.SetValue("")
			m.refreshFavGrid()
			return m, nil
		}
		var cmd tea.Cmd
		m.FavFilter, cmd = m.FavFilter.Update(msg)
		m.FavGrid.Reset()
		m.refreshFavGrid()
		return m, cmd
	}

	switch {
	case key.Matches(msg, m.Keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.Keys.Back):
		m.State = StateBrowsing
		return m, nil

	case key.Matches(msg, m.Keys.Search):
		m.FavFilter.Focus()
		return m, nil

	case key.Matches(msg, m.Keys.Up):
		m.FavGrid.MoveUp()
		return m, nil

	case key.Matches(msg, m.Keys.Down):
		m.FavGrid.MoveDown()
		return m, nil

	case key.Matches(msg, m.Keys.Left):
		m.FavGrid.MoveLeft()
		return m, nil

	case key.Matches(msg, m.Keys.Right):
		m.FavGrid.MoveRight()
		return m, nil

	case key.Matches(msg, m.Keys.Enter):
		return m.openDetails(m.FavGrid, StateFavorites)

	case key.Matches(msg, m.Keys.ToggleFavorite):
		return m.toggleFavorite(&m.FavGrid)
	}

	return m, nil
}

func (m Model) handleDetailKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.Keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.Keys.Back):
		m.State = m.detailReturn
		if m.State == StateFavorites {
			m.refreshFavGrid()
		}
		return m, nil

	case key.Matches(msg, m.Keys.ToggleFavorite):
		movie, ok := m.Detail.Movie()
		if !ok {
			return m, nil
		}
		cmd := m.setFavorite(movie, !m.Favorites.IsFavorite(movie.ID))
		m.Detail.SetFavorite(m.Favorites.IsFavorite(movie.ID))
		return m, cmd
	}
	return m, nil
}

func (m Model) handleLogoutConfirmKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.Keys.Confirm):
		m.Session.Logout()
		m.Login = components.NewLoginForm()
		m.State = StateLogin
		return m, nil
	case key.Matches(msg, m.Keys.Deny):
		m.State = StateBrowsing
		return m, nil
	}
	return m, nil
}

// submitSearch starts a search for the bar's text; a blank query falls back
// to the trending feed.
func (m *Model) submitSearch() tea.Cmd {
	m.Grid.Reset()
	req, ok := m.Browse.StartSearch(m.Search.Value())
	if !ok {
		m.Search.SetValue("")
		return FetchBrowseCmd(m.Browse, m.Browse.StartFeed(service.FeedTrending))
	}
	return FetchBrowseCmd(m.Browse, req)
}

func (m *Model) switchFeed(feed service.Feed) (tea.Model, tea.Cmd) {
	m.Search.SetValue("")
	m.Grid.Reset()
	return *m, FetchBrowseCmd(m.Browse, m.Browse.StartFeed(feed))
}

// refreshBrowse re-fetches whatever is currently shown.
func (m *Model) refreshBrowse() tea.Cmd {
	if m.Browse.Feed() == service.FeedSearch {
		req, ok := m.Browse.StartSearch(m.Browse.Query())
		if !ok {
			return nil
		}
		return FetchBrowseCmd(m.Browse, req)
	}
	return FetchBrowseCmd(m.Browse, m.Browse.StartFeed(m.Browse.Feed()))
}

func (m Model) openDetails(grid components.MovieGrid, returnTo ApplicationState) (tea.Model, tea.Cmd) {
	movie, ok := grid.Selected()
	if !ok {
		return m, nil
	}
	m.detailReturn = returnTo
	m.detailLoading = true
	return m, LoadDetailsCmd(m.Catalog, movie.ID)
}

func (m Model) toggleFavorite(grid *components.MovieGrid) (tea.Model, tea.Cmd) {
	movie, ok := grid.Selected()
	if !ok {
		return m, nil
	}
	cmd := m.setFavorite(movie, !m.Favorites.IsFavorite(movie.ID))
	m.refreshGrid()
	m.refreshFavGrid()
	return m, cmd
}

// setFavorite applies the toggle and returns a status command.
func (m *Model) setFavorite(movie domain.Movie, favorite bool) tea.Cmd {
	var err error
	var note string
	if favorite {
		err = m.Favorites.Add(movie)
		note = fmt.Sprintf("Added %q to favorites", movie.Title)
	} else {
		err = m.Favorites.Remove(movie.ID)
		note = fmt.Sprintf("Removed %q from favorites", movie.Title)
	}

	if err != nil {
		m.StatusMsg = "Failed to save favorites"
		m.StatusIsErr = true
	} else {
		m.StatusMsg = note
		m.StatusIsErr = false
	}
	return ClearStatusCmd(statusTimeout)
}

func (m *Model) refreshGrid() {
	results := m.Browse.Results()
	items := make([]components.GridItem, len(results))
	for i, movie := range results {
		items[i] = components.GridItem{
			Movie:    movie,
			Favorite: m.Favorites.IsFavorite(movie.ID),
		}
	}
	m.Grid.SetItems(items)
}

func (m *Model) refreshFavGrid() {
	matches := m.Favorites.Filter(m.FavFilter.Value())
	items := make([]components.GridItem, len(matches))
	for i, match := range matches {
		items[i] = components.GridItem{
			Movie:          match.Movie,
			Favorite:       true,
			MatchedIndexes: match.MatchedIndexes,
		}
	}
	m.FavGrid.SetItems(items)
}

func (m *Model) updateLayout() {
	contentWidth := m.Width - 2
	contentHeight := m.Height - headerLines - footerLines

	m.Grid.SetSize(contentWidth, contentHeight)
	m.Grid.SetColumns(m.gridColumns)
	m.FavGrid.SetSize(contentWidth, contentHeight)
	m.FavGrid.SetColumns(m.gridColumns)
	m.Detail.SetSize(contentWidth, contentHeight)
	m.Search.SetWidth(contentWidth / 2)
	m.FavFilter.SetWidth(contentWidth / 2)
}

// View renders the application
func (m Model) View() string {
	if !m.Ready {
		return "Loading..."
	}

	switch m.State {
	case StateLogin:
		return lipgloss.Place(m.Width, m.Height, lipgloss.Center, lipgloss.Center, m.Login.View())
	case StateHelp:
		return m.renderHelp()
	case StateConfirmLogout:
		return lipgloss.Place(m.Width, m.Height, lipgloss.Center, lipgloss.Center, m.renderLogoutConfirmation())
	case StateDetails:
		return m.renderDetails()
	case StateFavorites:
		return m.renderFavorites()
	default:
		return m.renderBrowse()
	}
}

func (m Model) renderHeader(title string) string {
	brand := styles.AccentStyle.Bold(true).Render("Reel")

	user := ""
	if u, ok := m.Session.User(); ok {
		user = styles.DimStyle.Render(u.Username)
	}

	gap := m.Width - lipgloss.Width(brand) - lipgloss.Width(user) - lipgloss.Width(title) - 4
	if gap < 1 {
		gap = 1
	}

	return brand + "  " + styles.TitleStyle.Render(title) + strings.Repeat(" ", gap) + user
}

func (m Model) renderTabs() string {
	feeds := []service.Feed{service.FeedTrending, service.FeedTopRated, service.FeedUpcoming}
	active := m.Browse.Feed()

	tabs := make([]string, 0, len(feeds)+1)
	for i, feed := range feeds {
		label := fmt.Sprintf("%d %s", i+1, feed.Title())
		if feed == active {
			tabs = append(tabs, styles.HighlightStyle.Render(label))
		} else {
			tabs = append(tabs, styles.DimStyle.Render(label))
		}
	}
	if active == service.FeedSearch {
		tabs = append(tabs, styles.HighlightStyle.Render(fmt.Sprintf("Search: %s", m.Browse.Query())))
	}

	return strings.Join(tabs, "  ")
}

func (m Model) renderFooter(hints string) string {
	left := styles.DimStyle.Render(hints)

	right := ""
	if m.StatusMsg != "" {
		if m.StatusIsErr {
			right = styles.ErrorStyle.Render(m.StatusMsg)
		} else {
			right = styles.SuccessStyle.Render(m.StatusMsg)
		}
	} else if m.loading() {
		right = styles.AccentStyle.Render(
			styles.SpinnerFrames[m.SpinnerFrame%len(styles.SpinnerFrames)] + " loading")
	}

	gap := m.Width - lipgloss.Width(left) - lipgloss.Width(right) - 2
	if gap < 1 {
		gap = 1
	}
	return left + strings.Repeat(" ", gap) + right
}

func (m Model) loading() bool {
	return m.detailLoading || m.Browse.State() == service.BrowseLoading
}

func (m Model) renderBrowse() string {
	rows := []string{
		m.renderHeader(m.Browse.Feed().Title()),
		m.Search.View(),
		m.renderTabs(),
		"",
	}

	if errMsg := m.Browse.Err(); errMsg != "" {
		rows = append(rows, styles.BannerStyle.Render(errMsg), "")
	}

	rows = append(rows, m.Grid.View())

	body := lipgloss.JoinVertical(lipgloss.Left, rows...)
	footer := m.renderFooter("/ search · f favorite · F favorites · enter details · m more · ? help · q quit")

	return m.frame(body, footer)
}

func (m Model) renderFavorites() string {
	title := fmt.Sprintf("Favorites (%d)", m.Favorites.Count())
	rows := []string{
		m.renderHeader(title),
		m.FavFilter.View(),
		"",
		"",
	}

	if m.Favorites.Count() == 0 {
		rows = append(rows, styles.DimStyle.Render("No favorites yet. Press f on any movie to save it."))
	} else {
		rows = append(rows, m.FavGrid.View())
	}

	body := lipgloss.JoinVertical(lipgloss.Left, rows...)
	footer := m.renderFooter("/ filter · f remove · enter details · esc back · q quit")

	return m.frame(body, footer)
}

func (m Model) renderDetails() string {
	rows := []string{
		m.renderHeader("Details"),
		"",
		m.Detail.View(),
	}

	body := lipgloss.JoinVertical(lipgloss.Left, rows...)
	footer := m.renderFooter("f toggle favorite · esc back · q quit")

	return m.frame(body, footer)
}

// frame pins the footer to the bottom of the terminal.
func (m Model) frame(body, footer string) string {
	bodyHeight := m.Height - footerLines
	content := lipgloss.NewStyle().
		Width(m.Width).
		Height(bodyHeight).
		MaxHeight(bodyHeight).
		Padding(0, 1).
		Render(body)
	return content + "\n" + footer
}

func (m Model) renderHelp() string {
	rows := []string{
		styles.TitleStyle.Render("Keyboard Shortcuts"),
		"",
		"/         search (browse) or filter (favorites)",
		"enter     open details for the selected movie",
		"f         toggle favorite",
		"F         open favorites",
		"m         load more search results",
		"1/2/3     trending · top rated · upcoming",
		"r         refresh current view",
		"L         logout",
		"esc       back",
		"q         quit",
		"",
		styles.DimStyle.Render("press any key to return"),
	}
	return lipgloss.Place(m.Width, m.Height, lipgloss.Center, lipgloss.Center,
		lipgloss.JoinVertical(lipgloss.Left, rows...))
}

func (m Model) renderLogoutConfirmation() string {
	content := lipgloss.JoinVertical(lipgloss.Left,
		styles.TitleStyle.Render("Log out?"),
		"",
		styles.SubtitleStyle.Render("Your favorites stay on this machine."),
		"",
		styles.DimStyle.Render("y confirm · n cancel"),
	)
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(styles.Crimson).
		Padding(1, 2).
		Render(content)
}
