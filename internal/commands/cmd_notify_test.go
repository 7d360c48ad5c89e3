package commands

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v3"

	"github.com/nhle/admin-console/internal/model"
	"github.com/nhle/admin-console/internal/notification"
	"github.com/nhle/admin-console/internal/store"
)

func newFlags(t *testing.T) *Flags {
	t.Helper()
	cfg := model.DefaultAppConfig()
	kv := store.NewMemoryStore()
	return &Flags{
		Config:        cfg,
		KV:            kv,
		Notifications: NewNotificationStore(context.Background(), cfg, kv, zerolog.Nop()),
	}
}

func runNotify(t *testing.T, flags *Flags, args ...string) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	app := &cli.Command{Name: "adminui", Writer: &buf}
	NewNotifyCmd(flags).Register(app)

	err := app.Run(context.Background(), append([]string{"adminui", "notify"}, args...))
	return buf.String(), err
}

func decodeLines(t *testing.T, out string) []model.Notification {
	t.Helper()
	var items []model.Notification
	sc := bufio.NewScanner(strings.NewReader(out))
	for sc.Scan() {
		var n model.Notification
		require.NoError(t, json.Unmarshal(sc.Bytes(), &n))
		items = append(items, n)
	}
	return items
}

func TestNotifyList_JSONLines(t *testing.T) {
	flags := newFlags(t)

	out, err := runNotify(t, flags, "list")
	require.NoError(t, err)

	items := decodeLines(t, out)
	require.Len(t, items, 3)
	assert.Equal(t, "1", items[0].ID)
	assert.Equal(t, "New user registered", items[0].Title)
}

func TestNotifyList_UnreadPretty(t *testing.T) {
	flags := newFlags(t)
	flags.Notifications.MarkAsRead(context.Background(), "2")

	out, err := runNotify(t, flags, "list", "--unread", "--pretty")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "New user registered")
	assert.Contains(t, lines[1], "1 day ago")
	assert.NotContains(t, out, "System update available")
}

func TestNotifyUnread(t *testing.T) {
	flags := newFlags(t)

	out, err := runNotify(t, flags, "unread")
	require.NoError(t, err)
	assert.Equal(t, "3\n", out)
}

func TestNotifyAdd(t *testing.T) {
	flags := newFlags(t)

	out, err := runNotify(t, flags, "add", "--title", "Deploy", "--message", "v2 is live", "--type", "SUCCESS")
	require.NoError(t, err)

	created := decodeLines(t, out)
	require.Len(t, created, 1)
	assert.Equal(t, model.NotificationSuccess, created[0].Type)
	assert.False(t, created[0].Read)

	items := flags.Notifications.Notifications()
	require.Len(t, items, 4)
	assert.Equal(t, created[0].ID, items[0].ID)
}

func TestNotifyAdd_InvalidType(t *testing.T) {
	flags := newFlags(t)

	_, err := runNotify(t, flags, "add", "--title", "x", "--message", "y", "--type", "fatal")
	require.ErrorIs(t, err, notification.ErrInvalidInput)
	assert.Len(t, flags.Notifications.Notifications(), 3)
}

func TestNotifyRead(t *testing.T) {
	flags := newFlags(t)

	_, err := runNotify(t, flags, "read", "3")
	require.NoError(t, err)
	assert.Equal(t, 2, flags.Notifications.UnreadCount())

	_, err = runNotify(t, flags, "read", "missing")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"missing" not found`)

	_, err = runNotify(t, flags, "read")
	require.Error(t, err)
}

func TestNotifyReadAll(t *testing.T) {
	flags := newFlags(t)

	_, err := runNotify(t, flags, "read-all")
	require.NoError(t, err)
	assert.Zero(t, flags.Notifications.UnreadCount())
}

func TestNotifyDelete(t *testing.T) {
	flags := newFlags(t)

	_, err := runNotify(t, flags, "delete", "2")
	require.NoError(t, err)

	var ids []string
	for _, n := range flags.Notifications.Notifications() {
		ids = append(ids, n.ID)
	}
	assert.Equal(t, []string{"1", "3"}, ids)
}

func TestNotifyClear_RequiresForce(t *testing.T) {
	flags := newFlags(t)

	_, err := runNotify(t, flags, "clear")
	require.Error(t, err)
	assert.Len(t, flags.Notifications.Notifications(), 3)

	_, err = runNotify(t, flags, "clear", "--force")
	require.NoError(t, err)
	assert.Empty(t, flags.Notifications.Notifications())

	raw, ok, err := flags.KV.Read(context.Background(), notification.SlotKey)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "[]", raw)
}

func TestNewNotificationStore_LoadsPersistedOverSeed(t *testing.T) {
	ctx := context.Background()
	cfg := model.DefaultAppConfig()
	kv := store.NewMemoryStore()

	first := NewNotificationStore(ctx, cfg, kv, zerolog.Nop())
	first.Delete(ctx, "1")

	second := NewNotificationStore(ctx, cfg, kv, zerolog.Nop())
	require.Len(t, second.Notifications(), 2)
	_, ok := second.Get("1")
	assert.False(t, ok)
}

func TestNewNotificationStore_NoSeed(t *testing.T) {
	cfg := model.DefaultAppConfig()
	cfg.Notifications.SeedDefaults = false

	s := NewNotificationStore(context.Background(), cfg, store.NewMemoryStore(), zerolog.Nop())
	assert.Empty(t, s.Notifications())
}

func TestPrettyLine(t *testing.T) {
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	n := model.Notification{
		ID:        "abc",
		Title:     "Disk",
		Message:   "full",
		Type:      model.NotificationError,
		Timestamp: now.Add(-2 * time.Hour),
	}

	line := prettyLine(n, now)
	assert.True(t, strings.HasPrefix(line, "* error"))
	assert.Contains(t, line, "2 hours ago")
	assert.Contains(t, line, "id abc")
}
