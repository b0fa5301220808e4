package components

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mwhitley/reel/internal/tui/styles"
)

const loginFieldCount = 2

// LoginForm is the username/password form gating the rest of the app.
type LoginForm struct {
	username textinput.Model
	password textinput.Model
	focusIdx int
	errMsg   string
	busy     bool
}

// NewLoginForm creates the form with the username field focused.
func NewLoginForm() LoginForm {
	user := textinput.New()
	user.Placeholder = "username"
	user.CharLimit = 50
	user.Width = 28
	user.Prompt = "› "
	user.PromptStyle = styles.AccentStyle
	user.TextStyle = lipgloss.NewStyle().Foreground(styles.White)
	user.PlaceholderStyle = styles.DimStyle
	user.Focus()

	pass := textinput.New()
	pass.Placeholder = "password"
	pass.CharLimit = 50
	pass.Width = 28
	pass.Prompt = "› "
	pass.PromptStyle = styles.AccentStyle
	pass.TextStyle = lipgloss.NewStyle().Foreground(styles.White)
	pass.PlaceholderStyle = styles.DimStyle
	pass.EchoMode = textinput.EchoPassword
	pass.EchoCharacter = '•'

	return LoginForm{username: user, password: pass}
}

// Username returns the entered username.
func (f LoginForm) Username() string {
	return f.username.Value()
}

// Password returns the entered password.
func (f LoginForm) Password() string {
	return f.password.Value()
}

// SetError shows an inline error message and re-enables the form.
func (f *LoginForm) SetError(msg string) {
	f.errMsg = msg
	f.busy = false
}

// SetBusy disables submission while a login attempt is outstanding.
func (f *LoginForm) SetBusy(busy bool) {
	f.busy = busy
}

// Update handles input events. submitted is true when the user pressed enter
// on a non-empty username with the form idle.
func (f LoginForm) Update(msg tea.Msg) (LoginForm, tea.Cmd, bool) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "tab", "shift+tab", "down", "up":
			f.focusIdx = (f.focusIdx + 1) % loginFieldCount
			if f.focusIdx == 0 {
				f.username.Focus()
				f.password.Blur()
			} else {
				f.username.Blur()
				f.password.Focus()
			}
			return f, nil, false
		case "enter":
			if f.busy {
				return f, nil, false
			}
			if f.username.Value() == "" {
				f.errMsg = "Username is required"
				return f, nil, false
			}
			f.errMsg = ""
			f.busy = true
			return f, nil, true
		}
	}

	var cmd tea.Cmd
	if f.focusIdx == 0 {
		f.username, cmd = f.username.Update(msg)
	} else {
		f.password, cmd = f.password.Update(msg)
	}
	return f, cmd, false
}

// View renders the login modal.
func (f LoginForm) View() string {
	const modalWidth = 38

	title := styles.TitleStyle.Render("Sign in to Reel")
	hint := styles.DimStyle.Render("any username, password \"password\"")

	rows := []string{
		title,
		"",
		styles.SubtitleStyle.Render("Username"),
		f.username.View(),
		"",
		styles.SubtitleStyle.Render("Password"),
		f.password.View(),
		"",
		hint,
	}

	if f.busy {
		rows = append(rows, "", styles.DimStyle.Render("Signing in..."))
	} else if f.errMsg != "" {
		rows = append(rows, "", styles.ErrorStyle.Render(f.errMsg))
	}

	content := lipgloss.JoinVertical(lipgloss.Left, rows...)

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(styles.Crimson).
		Padding(1, 2).
		Width(modalWidth).
		Render(content)
}
