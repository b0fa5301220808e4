package styles

import "github.com/charmbracelet/lipgloss"

// Color palette
var (
	Crimson    = lipgloss.Color("#E53E3E")
	SlateDark  = lipgloss.Color("#1F2937")
	SlateLight = lipgloss.Color("#374151")
	DimGray    = lipgloss.Color("#6B7280")
	LightGray  = lipgloss.Color("#9CA3AF")
	White      = lipgloss.Color("#F9FAFB")
	Gold       = lipgloss.Color("#F59E0B")
	Green      = lipgloss.Color("#10B981")
	Red        = lipgloss.Color("#EF4444")
)

// Borders
var (
	ActiveBorder = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Crimson)

	InactiveBorder = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(DimGray)
)

// Text styles
var (
	TitleStyle = lipgloss.NewStyle().
			Foreground(White).
			Bold(true)

	SubtitleStyle = lipgloss.NewStyle().
			Foreground(LightGray)

	DimStyle = lipgloss.NewStyle().
			Foreground(DimGray)

	AccentStyle = lipgloss.NewStyle().
			Foreground(Crimson)

	StarStyle = lipgloss.NewStyle().
			Foreground(Gold)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(Red)

	SuccessStyle = lipgloss.NewStyle().
			Foreground(Green)

	HighlightStyle = lipgloss.NewStyle().
			Foreground(White).
			Background(Crimson).
			Padding(0, 1)

	MatchStyle = lipgloss.NewStyle().
			Foreground(Gold).
			Underline(true)
)

// Favorite markers
const (
	FavoriteChar    = "♥"
	NotFavoriteChar = " "
	StarChar        = "★"
	EmptyStarChar   = "☆"
)

var FavoriteMark = AccentStyle.Render(FavoriteChar)

// Error banner shown for catalog failures
var BannerStyle = lipgloss.NewStyle().
	Foreground(White).
	Background(Red).
	Padding(0, 1)

// SpinnerFrames are the braille animation frames for loading states
var SpinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}
