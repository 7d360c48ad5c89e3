// Package command implements the ":" command palette.
package command

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/nhle/admin-console/internal/navigation"
	"github.com/nhle/admin-console/internal/theme"
)

// Names of the commands understood by the console.
const (
	ReadAll       = "read all"
	Clear         = "clear"
	Notifications = "notifications"
	Team          = "team"
	Logout        = "logout"
	Quit          = "quit"
)

// Commands lists every palette command, used for completion.
var Commands = []string{ReadAll, Clear, Notifications, Team, Logout, Quit}

// routes maps page commands to the path they open.
var routes = map[string]string{
	Notifications: navigation.PathNotifications,
	Team:          navigation.PathTeam,
}

// CommandMsg is emitted when the user executes a command. Page commands
// have already navigated by the time it is delivered.
type CommandMsg string

// Model is the command palette view.
type Model struct {
	input  textinput.Model
	nav    navigation.Navigator
	width  int
	height int
}

// New creates a new command palette model that opens pages through nav.
func New(nav navigation.Navigator, width, height int) Model {
	ti := textinput.New()
	ti.Placeholder = "type a command..."
	ti.Prompt = ": "
	ti.ShowSuggestions = true
	ti.SetSuggestions(Commands)
	ti.Focus()
	ti.Width = max(width-6, 0)

	return Model{
		input:  ti,
		nav:    nav,
		width:  width,
		height: height,
	}
}

// Init returns the initial command.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages for the command palette.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && msg.String() == "enter" {
		cmd := strings.ToLower(strings.TrimSpace(m.input.Value()))
		m.input.Reset()
		if cmd == "" {
			return m, nil
		}
		if path, ok := routes[cmd]; ok {
			m.nav.NavigateTo(path)
		}
		return m, func() tea.Msg {
			return CommandMsg(cmd)
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View renders the command palette.
func (m Model) View() string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(theme.ColorWhite).
		MarginBottom(1)

	title := titleStyle.Render("Command Palette")
	hint := theme.HintStyle.Render(strings.Join(Commands, " · "))

	content := lipgloss.JoinVertical(lipgloss.Left, title, m.input.View(), "", hint)

	return theme.PanelStyle.
		Width(max(m.width-4, 0)).
		Render(content)
}

// SetSize updates the command palette dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.input.Width = max(width-6, 0)
}

// Focus gives keyboard focus to the text input.
func (m *Model) Focus() tea.Cmd {
	return m.input.Focus()
}
