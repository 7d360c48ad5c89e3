// Package app holds the root Bubble Tea model: it owns the layout, the
// router and the pages, and dispatches messages to whichever is active.
package app

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/nhle/admin-console/internal/keys"
	"github.com/nhle/admin-console/internal/model"
	"github.com/nhle/admin-console/internal/navigation"
	"github.com/nhle/admin-console/internal/notification"
	"github.com/nhle/admin-console/internal/theme"
	"github.com/nhle/admin-console/internal/ui"
	"github.com/nhle/admin-console/internal/ui/command"
	helpview "github.com/nhle/admin-console/internal/ui/help"
	"github.com/nhle/admin-console/internal/ui/login"
	"github.com/nhle/admin-console/internal/ui/notifications"
	"github.com/nhle/admin-console/internal/ui/notifyform"
	"github.com/nhle/admin-console/internal/ui/team"
)

// Overlay is a panel drawn over the active page.
type Overlay int

const (
	OverlayNone Overlay = iota
	OverlayHelp
	OverlayCommand
)

var sidebarItems = []ui.SidebarItem{
	{Label: "Notifications", Path: navigation.PathNotifications},
	{Label: "Team", Path: navigation.PathTeam},
	{Label: "Log out", Path: navigation.PathLogin},
}

// pageOrder is the tab cycle among signed-in pages.
var pageOrder = []string{navigation.PathNotifications, navigation.PathTeam}

// Model is the root Bubble Tea model that manages routing, layout and the
// notification store.
type Model struct {
	router      *navigation.Router
	overlay     Overlay
	layout      ui.Layout
	store       *notification.Store
	keys        *keys.KeyMap
	log         zerolog.Logger
	adminUser   string
	panel       notifications.Model
	team        team.Model
	login       login.Model
	helpView    helpview.Model
	commandView command.Model
	ready       bool
	loaded      bool
	unreadCount int
	persistErr  error
}

// New creates the root model over an initialized notification store.
func New(s *notification.Store, cfg *model.AppConfig, logger zerolog.Logger) Model {
	k := keys.DefaultKeyMap()
	router := navigation.NewRouter(
		navigation.PathNotifications,
		navigation.PathTeam,
		navigation.PathLogin,
	)

	return Model{
		router:      router,
		store:       s,
		keys:        k,
		log:         logger,
		adminUser:   cfg.Display.AdminUser,
		panel:       notifications.New(s, k, 80, 24),
		team:        team.New(cfg.Team, k, 80, 24),
		login:       login.New(cfg.Display.AdminUser, k, 80, 24),
		helpView:    helpview.New(k, 80, 24),
		commandView: command.New(router, 80, 24),
	}
}

// Init loads the notification panel.
func (m Model) Init() tea.Cmd {
	return m.panel.Init()
}

// Current returns the active route.
func (m Model) Current() string {
	return m.router.Current()
}

// Overlay returns the overlay drawn over the page, if any.
func (m Model) Overlay() Overlay {
	return m.overlay
}

// Update handles messages and dispatches to the active view.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.layout = ui.NewLayout(msg.Width, msg.Height)
		m.ready = true
		contentWidth := m.layout.ContentWidth()
		contentHeight := m.layout.ContentHeight()
		m.panel.SetSize(contentWidth, contentHeight)
		m.team.SetSize(contentWidth, contentHeight)
		m.login.SetSize(contentWidth, contentHeight)
		m.helpView.SetSize(contentWidth, contentHeight)
		m.commandView.SetSize(contentWidth, contentHeight)
		// Forward to the active page so huh forms can calculate their layout.
		return m.updateActivePage(msg)

	case notifications.SnapshotMsg:
		m.loaded = true
		m.unreadCount = msg.Unread
		m.persistErr = msg.PersistErr
		var cmd tea.Cmd
		m.panel, cmd = m.panel.Update(msg)
		return m, cmd

	case notifyform.SubmittedMsg, notifyform.CancelMsg:
		var cmd tea.Cmd
		m.panel, cmd = m.panel.Update(msg)
		return m, cmd

	case command.CommandMsg:
		m.overlay = OverlayNone
		return m, m.executeCommand(string(msg))

	case login.SignedInMsg:
		m.adminUser = msg.User
		m.router.Reset(navigation.PathNotifications)
		m.log.Info().Str("user", msg.User).Msg("signed in")
		return m, m.panel.Refresh()

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	if m.overlay == OverlayCommand {
		var cmd tea.Cmd
		m.commandView, cmd = m.commandView.Update(msg)
		return m, cmd
	}
	return m.updateActivePage(msg)
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	switch m.overlay {
	case OverlayHelp:
		if key.Matches(msg, m.keys.Help, m.keys.Back, m.keys.Quit) {
			m.overlay = OverlayNone
		}
		return m, nil

	case OverlayCommand:
		if key.Matches(msg, m.keys.Back) {
			m.overlay = OverlayNone
			return m, nil
		}
		var cmd tea.Cmd
		m.commandView, cmd = m.commandView.Update(msg)
		return m, cmd
	}

	// Pages with focused inputs receive every key.
	if m.inputActive() {
		return m.updateActivePage(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.overlay = OverlayHelp
		return m, nil

	case key.Matches(msg, m.keys.Command):
		m.overlay = OverlayCommand
		return m, m.commandView.Focus()

	case key.Matches(msg, m.keys.NextPage):
		m.router.NavigateTo(nextPage(m.router.Current()))
		return m, nil

	case key.Matches(msg, m.keys.Logout):
		return m, m.logout()

	case key.Matches(msg, m.keys.Back):
		m.router.Back()
		return m, nil
	}

	return m.updateActivePage(msg)
}

func (m Model) inputActive() bool {
	switch m.router.Current() {
	case navigation.PathLogin:
		return true
	case navigation.PathNotifications:
		return m.panel.InputActive()
	}
	return false
}

// updateActivePage dispatches the message to the page for the current route.
func (m Model) updateActivePage(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch m.router.Current() {
	case navigation.PathNotifications:
		m.panel, cmd = m.panel.Update(msg)
	case navigation.PathTeam:
		m.team, cmd = m.team.Update(msg)
	case navigation.PathLogin:
		m.login, cmd = m.login.Update(msg)
	}

	return m, cmd
}

// View renders the full terminal UI using the layout manager.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	header := m.layout.RenderHeader("Admin Console", m.headerStatus())
	sidebar := m.layout.RenderSidebar(sidebarItems, m.router.Current())
	statusBar := m.layout.RenderStatusBar(m.keyHints())

	return m.layout.RenderWithFrame(header, sidebar, m.renderContent(), statusBar)
}

func (m Model) renderContent() string {
	switch m.overlay {
	case OverlayHelp:
		return m.helpView.View()
	case OverlayCommand:
		return m.commandView.View()
	}

	switch m.router.Current() {
	case navigation.PathTeam:
		return m.team.View()
	case navigation.PathLogin:
		return m.login.View()
	default:
		return m.panel.View()
	}
}

// headerStatus shows the signed-in user and the unread badge.
func (m Model) headerStatus() string {
	if m.router.Current() == navigation.PathLogin {
		return "signed out"
	}
	user := "@" + m.adminUser
	if !m.loaded {
		return user
	}
	if m.unreadCount == 0 {
		return user + " · no new"
	}
	return fmt.Sprintf("%s %s", user, theme.UnreadBadgeStyle.Render(fmt.Sprintf("%d", m.unreadCount)))
}

// keyHints returns keyboard shortcut hints for the status bar.
func (m Model) keyHints() string {
	if m.persistErr != nil && m.router.Current() == navigation.PathNotifications {
		return "⚠ notifications are not being saved"
	}

	switch m.overlay {
	case OverlayHelp:
		return "? close help | esc back"
	case OverlayCommand:
		return "enter execute | tab complete | esc close"
	}

	switch m.router.Current() {
	case navigation.PathTeam:
		return "j/k move | tab notifications | L log out | ? help | q quit"
	case navigation.PathLogin:
		return "enter sign in | tab next field | ctrl+t show password | ctrl+c quit"
	default:
		if m.panel.InputActive() {
			return "enter submit | esc cancel"
		}
		return "r read | R read all | d delete | C clear | n new | tab team | ? help | q quit"
	}
}

// executeCommand handles a command string from the command palette.
func (m *Model) executeCommand(cmd string) tea.Cmd {
	switch cmd {
	case command.ReadAll:
		return m.panel.MarkAllAsRead()
	case command.Clear:
		return m.panel.ClearAll()
	case command.Notifications, command.Team:
		// The palette has already navigated.
		return nil
	case command.Logout:
		return m.logout()
	case command.Quit, "q":
		return tea.Quit
	default:
		m.log.Debug().Str("command", cmd).Msg("unknown command")
		return nil
	}
}

func (m *Model) logout() tea.Cmd {
	if m.router.Current() == navigation.PathLogin {
		return nil
	}
	m.router.Reset(navigation.PathLogin)
	m.log.Info().Str("user", m.adminUser).Msg("signed out")
	return m.login.Reset()
}

func nextPage(current string) string {
	for i, p := range pageOrder {
		if p == current {
			return pageOrder[(i+1)%len(pageOrder)]
		}
	}
	return pageOrder[0]
}
