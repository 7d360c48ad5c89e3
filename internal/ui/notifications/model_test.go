package notifications

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nhle/admin-console/internal/keys"
	"github.com/nhle/admin-console/internal/model"
	"github.com/nhle/admin-console/internal/notification"
	"github.com/nhle/admin-console/internal/store"
	"github.com/nhle/admin-console/internal/ui/notifyform"
)

var epoch = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

func newPanel(t *testing.T) (Model, *notification.Store) {
	t.Helper()
	s := notification.New(store.NewMemoryStore(), notification.DefaultNotifications(epoch), zerolog.Nop())
	m := newWithClock(s, keys.DefaultKeyMap(), 100, 30, func() time.Time { return epoch })
	m.SetSize(100, 30)
	return m, s
}

func press(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// run executes cmd and feeds its message back into the panel.
func run(t *testing.T, m Model, cmd tea.Cmd) Model {
	t.Helper()
	require.NotNil(t, cmd)
	m, _ = m.Update(cmd())
	return m
}

func loaded(t *testing.T) (Model, *notification.Store) {
	t.Helper()
	m, s := newPanel(t)
	return run(t, m, m.Init()), s
}

func TestView_SkeletonUntilFirstSnapshot(t *testing.T) {
	m, _ := newPanel(t)
	assert.False(t, m.Loaded())
	assert.NotContains(t, m.View(), "New user registered")

	m = run(t, m, m.Init())
	assert.True(t, m.Loaded())
	out := m.View()
	assert.Contains(t, out, "New user registered")
	assert.Contains(t, out, "Backup completed")
	assert.Contains(t, out, "3 unread")
}

func TestMarkRead_SelectedItem(t *testing.T) {
	m, s := loaded(t)

	m, cmd := m.Update(press("r"))
	m = run(t, m, cmd)

	n, ok := s.Get("1")
	require.True(t, ok)
	assert.True(t, n.Read)
	assert.Equal(t, 2, s.UnreadCount())
	assert.Contains(t, m.View(), "2 unread")
}

func TestDelete_AfterMovingDown(t *testing.T) {
	m, s := loaded(t)

	m, _ = m.Update(press("j"))
	m, cmd := m.Update(press("d"))
	m = run(t, m, cmd)

	ids := make([]string, 0, 2)
	for _, n := range s.Notifications() {
		ids = append(ids, n.ID)
	}
	assert.Equal(t, []string{"1", "3"}, ids)
	assert.Contains(t, m.View(), "Notification deleted")
}

func TestDelete_LastItemClampsSelection(t *testing.T) {
	m, s := loaded(t)

	m, _ = m.Update(press("j"))
	m, _ = m.Update(press("j"))
	m, cmd := m.Update(press("d"))
	m = run(t, m, cmd)

	require.Len(t, s.Notifications(), 2)
	assert.Equal(t, 1, m.list.Index())
}

func TestMarkAllRead(t *testing.T) {
	m, s := loaded(t)

	m, cmd := m.Update(press("R"))
	m = run(t, m, cmd)

	assert.Zero(t, s.UnreadCount())
	assert.Contains(t, m.View(), "all caught up")
}

func TestClearAll_RequiresConfirmation(t *testing.T) {
	m, s := loaded(t)

	m, cmd := m.Update(press("C"))
	assert.NotNil(t, cmd)
	assert.True(t, m.InputActive())
	assert.Contains(t, m.View(), "Clear all 3 notifications?")

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, m.InputActive())
	assert.Len(t, s.Notifications(), 3, "cancel keeps notifications")

	m = run(t, m, m.ClearAll())
	assert.Empty(t, s.Notifications())
	assert.Contains(t, m.View(), "No notifications")
}

func TestClearAll_EmptyListIsNoop(t *testing.T) {
	m, _ := loaded(t)
	m = run(t, m, m.ClearAll())

	m, cmd := m.Update(press("C"))
	assert.Nil(t, cmd)
	assert.False(t, m.InputActive())
}

func TestNew_OpensFormAndAddsOnSubmit(t *testing.T) {
	m, s := loaded(t)

	m, _ = m.Update(press("n"))
	assert.True(t, m.InputActive())
	assert.Contains(t, m.View(), "New Notification")

	m, cmd := m.Update(notifyform.SubmittedMsg{Input: model.NotificationInput{
		Title:   "Deploy finished",
		Message: "v2.3.1 is live",
		Type:    model.NotificationSuccess,
	}})
	assert.False(t, m.InputActive())
	m = run(t, m, cmd)

	items := s.Notifications()
	require.Len(t, items, 4)
	assert.Equal(t, "Deploy finished", items[0].Title)
	assert.Contains(t, m.View(), "Deploy finished")
	assert.Contains(t, m.View(), "4 unread")
}

func TestNew_InvalidInputReportsError(t *testing.T) {
	m, s := loaded(t)

	m, cmd := m.Update(notifyform.SubmittedMsg{Input: model.NotificationInput{Type: model.NotificationInfo}})
	m = run(t, m, cmd)

	assert.Len(t, s.Notifications(), 3)
	assert.Contains(t, m.View(), "title is required")
}

func TestNavigationKeysOnEmptyList(t *testing.T) {
	m, _ := loaded(t)
	m = run(t, m, m.ClearAll())

	for _, k := range []string{"r", "d", "j", "k"} {
		var cmd tea.Cmd
		m, cmd = m.Update(press(k))
		if cmd != nil {
			_, isSnapshot := cmd().(SnapshotMsg)
			assert.False(t, isSnapshot, "key %q should not touch the store", k)
		}
	}
}

func TestRelativeTime(t *testing.T) {
	assert.Equal(t, "just now", relativeTime(epoch.Add(-10*time.Second), epoch))
	assert.Equal(t, "1 hour ago", relativeTime(epoch.Add(-time.Hour), epoch))
	assert.Equal(t, "1 day ago", relativeTime(epoch.Add(-24*time.Hour), epoch))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "abcd…", truncate("abcdefgh", 5))
	assert.Equal(t, "…", truncate("abcdefgh", 1))
	assert.Equal(t, "first …", firstLine("first\nsecond"))
}
