package notifyform

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nhle/admin-console/internal/model"
)

func TestStart_ResetsBindings(t *testing.T) {
	m := New(80, 30)
	m.fb.title = "stale"
	m.fb.kind = model.NotificationError

	m.Start()
	assert.True(t, m.active())
	assert.Empty(t, m.fb.title)
	assert.Equal(t, model.NotificationInfo, m.fb.kind)
	assert.Contains(t, m.View(), "New Notification")
}

func TestEsc_Cancels(t *testing.T) {
	m := New(80, 30)
	m.Start()

	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)
	assert.Equal(t, CancelMsg{}, cmd())
	assert.False(t, m.active())
	assert.Empty(t, m.View())
}

func TestInput_TrimsFields(t *testing.T) {
	m := New(80, 30)
	m.Start()
	m.fb.title = "  Disk full "
	m.fb.message = "\n/var is at 99%\n"
	m.fb.kind = model.NotificationWarning

	assert.Equal(t, model.NotificationInput{
		Title:   "Disk full",
		Message: "/var is at 99%",
		Type:    model.NotificationWarning,
	}, m.input())
}

func TestValidateRequired(t *testing.T) {
	v := validateRequired("Title")
	assert.EqualError(t, v("   "), "Title is required")
	assert.NoError(t, v("x"))
}

func TestUpdate_WithoutFormIsNoop(t *testing.T) {
	m := New(80, 30)
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Nil(t, cmd)
}
