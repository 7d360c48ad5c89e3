package login

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nhle/admin-console/internal/keys"
)

func typeText(m Model, s string) Model {
	for _, r := range s {
		m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return m
}

func newPage() Model {
	m := New("admin", keys.DefaultKeyMap(), 100, 30)
	m.Reset()
	return m
}

func TestReset_FocusesPasswordWhenUserKnown(t *testing.T) {
	m := newPage()
	assert.Equal(t, fieldPassword, m.focus)

	m = New("", keys.DefaultKeyMap(), 100, 30)
	m.Reset()
	assert.Equal(t, fieldUser, m.focus)
}

func TestTogglePassword(t *testing.T) {
	m := newPage()
	m = typeText(m, "hunter2")
	assert.False(t, m.PasswordVisible())
	assert.NotContains(t, m.View(), "hunter2")

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlT})
	assert.True(t, m.PasswordVisible())
	assert.Contains(t, m.View(), "hunter2")

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlT})
	assert.False(t, m.PasswordVisible())
}

func TestSubmit(t *testing.T) {
	m := newPage()
	m = typeText(m, "secret")

	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	assert.Equal(t, SignedInMsg{User: "admin"}, cmd())
	assert.Empty(t, m.inputs[fieldPassword].Value(), "password cleared after submit")
}

func TestSubmit_RequiresPassword(t *testing.T) {
	m := newPage()

	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Nil(t, cmd)
	assert.Contains(t, m.View(), "Username and password are required")
}

func TestTab_CyclesFocus(t *testing.T) {
	m := newPage()

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, fieldUser, m.focus)

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	assert.Equal(t, fieldPassword, m.focus)
}
