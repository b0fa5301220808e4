package components

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mwhitley/reel/internal/tui/styles"
)

// SearchBar is the query input shown above the browse and favorites grids.
type SearchBar struct {
	input   textinput.Model
	focused bool
}

// NewSearchBar creates a search bar with the given prompt and placeholder.
func NewSearchBar(prompt, placeholder string) SearchBar {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = 100
	ti.Width = 40
	ti.Prompt = prompt
	ti.PromptStyle = styles.AccentStyle
	ti.TextStyle = lipgloss.NewStyle().Foreground(styles.White)
	ti.PlaceholderStyle = styles.DimStyle

	return SearchBar{input: ti}
}

// Focus moves keyboard input to the bar.
func (s *SearchBar) Focus() {
	s.focused = true
	s.input.Focus()
}

// Blur releases keyboard input.
func (s *SearchBar) Blur() {
	s.focused = false
	s.input.Blur()
}

// Focused reports whether the bar has keyboard input.
func (s SearchBar) Focused() bool {
	return s.focused
}

// Value returns the current query text.
func (s SearchBar) Value() string {
	return s.input.Value()
}

// SetValue replaces the query text.
func (s *SearchBar) SetValue(v string) {
	s.input.SetValue(v)
	s.input.CursorEnd()
}

// SetWidth resizes the input.
func (s *SearchBar) SetWidth(w int) {
	if w > 10 {
		s.input.Width = w - 4
	}
}

// Update forwards events to the underlying input.
func (s SearchBar) Update(msg tea.Msg) (SearchBar, tea.Cmd) {
	if !s.focused {
		return s, nil
	}
	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

// View renders the bar.
func (s SearchBar) View() string {
	return s.input.View()
}
