// Package login is the placeholder sign-in page shown after logging out.
// Credentials are not checked; any non-empty pair signs in.
package login

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/nhle/admin-console/internal/keys"
	"github.com/nhle/admin-console/internal/theme"
)

// SignedInMsg is dispatched when the form is submitted.
type SignedInMsg struct {
	User string
}

const (
	fieldUser = iota
	fieldPassword
)

// Model is the sign-in page.
type Model struct {
	inputs []textinput.Model
	focus  int
	keys   *keys.KeyMap
	errMsg string
	width  int
	height int
}

// New creates the sign-in page with the username prefilled.
func New(user string, k *keys.KeyMap, width, height int) Model {
	u := textinput.New()
	u.Prompt = "Username  "
	u.Placeholder = "admin"
	u.SetValue(user)
	u.Width = 30

	p := textinput.New()
	p.Prompt = "Password  "
	p.Placeholder = "••••••••"
	p.EchoMode = textinput.EchoPassword
	p.EchoCharacter = '•'
	p.Width = 30

	m := Model{
		inputs: []textinput.Model{u, p},
		keys:   k,
		width:  width,
		height: height,
	}
	return m
}

// Reset clears the password and focuses the first empty field.
func (m *Model) Reset() tea.Cmd {
	m.inputs[fieldPassword].Reset()
	m.inputs[fieldPassword].EchoMode = textinput.EchoPassword
	m.errMsg = ""
	if m.inputs[fieldUser].Value() == "" {
		return m.setFocus(fieldUser)
	}
	return m.setFocus(fieldPassword)
}

// PasswordVisible reports whether the password is shown in clear text.
func (m Model) PasswordVisible() bool {
	return m.inputs[fieldPassword].EchoMode == textinput.EchoNormal
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(k, m.keys.TogglePassword):
			if m.PasswordVisible() {
				m.inputs[fieldPassword].EchoMode = textinput.EchoPassword
			} else {
				m.inputs[fieldPassword].EchoMode = textinput.EchoNormal
			}
			return m, nil

		case k.String() == "tab", k.String() == "down":
			return m, m.setFocus((m.focus + 1) % len(m.inputs))

		case k.String() == "shift+tab", k.String() == "up":
			return m, m.setFocus((m.focus + len(m.inputs) - 1) % len(m.inputs))

		case k.String() == "enter":
			if m.focus == fieldUser {
				return m, m.setFocus(fieldPassword)
			}
			return m.submit()
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m Model) submit() (Model, tea.Cmd) {
	user := strings.TrimSpace(m.inputs[fieldUser].Value())
	if user == "" || m.inputs[fieldPassword].Value() == "" {
		m.errMsg = "Username and password are required"
		return m, nil
	}
	m.errMsg = ""
	m.inputs[fieldPassword].Reset()
	return m, func() tea.Msg { return SignedInMsg{User: user} }
}

func (m *Model) setFocus(i int) tea.Cmd {
	m.focus = i
	var cmd tea.Cmd
	for j := range m.inputs {
		if j == i {
			cmd = m.inputs[j].Focus()
		} else {
			m.inputs[j].Blur()
		}
	}
	return cmd
}

// View renders the sign-in box centered in the content area.
func (m Model) View() string {
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(theme.ColorWhite).MarginBottom(1)

	toggle := "ctrl+t show password"
	if m.PasswordVisible() {
		toggle = "ctrl+t hide password"
	}

	lines := []string{
		titleStyle.Render("Sign in"),
		m.inputs[fieldUser].View(),
		m.inputs[fieldPassword].View(),
		"",
		theme.HintStyle.Render(toggle + " · tab next field · enter sign in"),
	}
	if m.errMsg != "" {
		lines = append(lines, "", lipgloss.NewStyle().Foreground(theme.ColorRed).Render(m.errMsg))
	}

	box := theme.PanelStyle.Width(50).Render(strings.Join(lines, "\n"))
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}

// SetSize updates dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}
