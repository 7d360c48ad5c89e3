// Package notifications is the console's notification panel: a list of
// alerts with read, delete and clear actions backed by notification.Store.
package notifications

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/nhle/admin-console/internal/keys"
	"github.com/nhle/admin-console/internal/model"
	"github.com/nhle/admin-console/internal/notification"
	"github.com/nhle/admin-console/internal/theme"
	"github.com/nhle/admin-console/internal/ui/notifyform"
	"github.com/nhle/admin-console/internal/ui/skeleton"
)

// SnapshotMsg carries the store's state after a load or a change. The
// root model also reads it to refresh the unread badge.
type SnapshotMsg struct {
	Items      []model.Notification
	Unread     int
	PersistErr error
	Status     string
}

type panelMode int

const (
	modeList panelMode = iota
	modeForm
	modeConfirmClear
)

type confirmBindings struct {
	confirm bool
}

// Model is the Bubble Tea model for the notification panel.
type Model struct {
	mode        panelMode
	list        list.Model
	store       *notification.Store
	keys        *keys.KeyMap
	form        notifyform.Model
	confirmForm *huh.Form
	cb          *confirmBindings
	loaded      bool
	unread      int
	persistErr  error
	statusMsg   string
	width       int
	height      int
}

// New creates a notification panel over s.
func New(s *notification.Store, k *keys.KeyMap, width, height int) Model {
	return newWithClock(s, k, width, height, time.Now)
}

func newWithClock(s *notification.Store, k *keys.KeyMap, width, height int, now func() time.Time) Model {
	l := list.New([]list.Item{}, Delegate{now: now}, width, max(height-2, 0))
	l.SetShowTitle(false)
	l.SetShowStatusBar(false)
	l.SetShowHelp(false)
	l.SetFilteringEnabled(false)
	l.DisableQuitKeybindings()
	l.KeyMap.ShowFullHelp.SetEnabled(false)
	l.KeyMap.CloseFullHelp.SetEnabled(false)

	return Model{
		mode:   modeList,
		list:   l,
		store:  s,
		keys:   k,
		form:   notifyform.New(width, height),
		cb:     &confirmBindings{},
		width:  width,
		height: height,
	}
}

// Init loads the current collection.
func (m Model) Init() tea.Cmd {
	return m.Refresh()
}

// Loaded reports whether the first snapshot has arrived.
func (m Model) Loaded() bool {
	return m.loaded
}

// InputActive reports whether a form has keyboard focus, so global
// shortcuts must not be intercepted.
func (m Model) InputActive() bool {
	return m.mode != modeList
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case SnapshotMsg:
		return m.applySnapshot(msg), nil

	case notifyform.SubmittedMsg:
		m.mode = modeList
		in := msg.Input
		return m, m.mutate("Notification added", func(ctx context.Context, s *notification.Store) error {
			_, err := s.Add(ctx, in)
			return err
		})

	case notifyform.CancelMsg:
		m.mode = modeList
		return m, nil

	case tea.KeyMsg:
		switch m.mode {
		case modeForm:
			var cmd tea.Cmd
			m.form, cmd = m.form.Update(msg)
			return m, cmd
		case modeConfirmClear:
			return m.updateConfirm(msg)
		}
		return m.handleListKey(msg)
	}

	switch m.mode {
	case modeForm:
		var cmd tea.Cmd
		m.form, cmd = m.form.Update(msg)
		return m, cmd
	case modeConfirmClear:
		return m.updateConfirm(msg)
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) applySnapshot(msg SnapshotMsg) Model {
	items := make([]list.Item, len(msg.Items))
	for i, n := range msg.Items {
		items[i] = Item{Notification: n}
	}
	m.list.SetItems(items)
	if idx := m.list.Index(); len(items) > 0 && idx >= len(items) {
		m.list.Select(len(items) - 1)
	}

	m.loaded = true
	m.unread = msg.Unread
	m.persistErr = msg.PersistErr
	if msg.Status != "" {
		m.statusMsg = msg.Status
	}
	return m
}

func (m Model) handleListKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.MarkRead):
		it, ok := m.list.SelectedItem().(Item)
		if !ok {
			return m, nil
		}
		id := it.Notification.ID
		return m, m.mutate("", func(ctx context.Context, s *notification.Store) error {
			s.MarkAsRead(ctx, id)
			return nil
		})

	case key.Matches(msg, m.keys.MarkAllRead):
		return m, m.MarkAllAsRead()

	case key.Matches(msg, m.keys.Delete):
		it, ok := m.list.SelectedItem().(Item)
		if !ok {
			return m, nil
		}
		id := it.Notification.ID
		return m, m.mutate("Notification deleted", func(ctx context.Context, s *notification.Store) error {
			s.Delete(ctx, id)
			return nil
		})

	case key.Matches(msg, m.keys.ClearAll):
		if len(m.list.Items()) == 0 {
			return m, nil
		}
		m.cb.confirm = false
		m.confirmForm = m.buildConfirmForm()
		m.mode = modeConfirmClear
		return m, m.confirmForm.Init()

	case key.Matches(msg, m.keys.New):
		m.form.SetSize(m.width, m.height)
		m.mode = modeForm
		return m, m.form.Start()
	}

	// Delegate to the list for navigation keys (j/k, pgup/pgdn).
	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) buildConfirmForm() *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(fmt.Sprintf("Clear all %d notifications?", len(m.list.Items()))).
				Description("This cannot be undone.").
				Affirmative("Yes, clear").
				Negative("Cancel").
				Value(&m.cb.confirm),
		),
	).WithWidth(min(max(m.width-4, 40), 100))
}

func (m Model) updateConfirm(msg tea.Msg) (Model, tea.Cmd) {
	if m.confirmForm == nil {
		m.mode = modeList
		return m, nil
	}
	if k, ok := msg.(tea.KeyMsg); ok && k.String() == "esc" {
		m.mode = modeList
		return m, nil
	}

	mdl, cmd := m.confirmForm.Update(msg)
	if f, ok := mdl.(*huh.Form); ok {
		m.confirmForm = f
	}

	switch m.confirmForm.State {
	case huh.StateCompleted:
		m.mode = modeList
		if m.cb.confirm {
			return m, m.ClearAll()
		}
		return m, nil
	case huh.StateAborted:
		m.mode = modeList
		return m, nil
	}
	return m, cmd
}

// View renders the panel.
func (m Model) View() string {
	switch m.mode {
	case modeForm:
		return m.form.View()
	case modeConfirmClear:
		if m.confirmForm != nil {
			return lipgloss.NewStyle().Padding(1, 2).Render(m.confirmForm.View())
		}
	}

	var b strings.Builder
	b.WriteString(m.renderTitle())
	b.WriteString("\n\n")

	switch {
	case !m.loaded:
		b.WriteString(skeleton.Rows(m.width, 3))
	case len(m.list.Items()) == 0:
		b.WriteString(theme.HintStyle.Render("  No notifications. Press n to create one."))
	default:
		b.WriteString(m.list.View())
	}

	if m.persistErr != nil {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().Foreground(theme.ColorRed).Render("  Changes are not being saved: " + m.persistErr.Error()))
	} else if m.statusMsg != "" {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().Foreground(theme.ColorYellow).Italic(true).Render("  " + m.statusMsg))
	}

	return lipgloss.NewStyle().Width(m.width).Height(m.height).Render(b.String())
}

func (m Model) renderTitle() string {
	title := lipgloss.NewStyle().Bold(true).Foreground(theme.ColorWhite).Render("  Notifications")
	if !m.loaded {
		return title
	}
	if m.unread == 0 {
		return title + theme.DimmedStyle.Render("  all caught up")
	}
	return title + "  " + theme.UnreadBadgeStyle.Render(fmt.Sprintf("%d unread", m.unread))
}

// SetSize updates dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.list.SetSize(width, max(height-4, 0))
	m.form.SetSize(width, height)
}

// Refresh returns a command that reads the store's current state.
func (m Model) Refresh() tea.Cmd {
	s := m.store
	return func() tea.Msg {
		return Snapshot(s, "")
	}
}

// MarkAllAsRead returns a command flagging every notification as read.
func (m Model) MarkAllAsRead() tea.Cmd {
	return m.mutate("All notifications marked as read", func(ctx context.Context, s *notification.Store) error {
		s.MarkAllAsRead(ctx)
		return nil
	})
}

// ClearAll returns a command emptying the collection.
func (m Model) ClearAll() tea.Cmd {
	return m.mutate("Notifications cleared", func(ctx context.Context, s *notification.Store) error {
		s.ClearAll(ctx)
		return nil
	})
}

func (m Model) mutate(status string, fn func(context.Context, *notification.Store) error) tea.Cmd {
	s := m.store
	return func() tea.Msg {
		if err := fn(context.Background(), s); err != nil {
			return Snapshot(s, fmt.Sprintf("Error: %v", err))
		}
		return Snapshot(s, status)
	}
}

// Snapshot captures the store's state as a SnapshotMsg.
func Snapshot(s *notification.Store, status string) SnapshotMsg {
	return SnapshotMsg{
		Items:      s.Notifications(),
		Unread:     s.UnreadCount(),
		PersistErr: s.LastPersistError(),
		Status:     status,
	}
}
