// Package notifyform is the huh form used to compose a notification by
// hand from the console.
package notifyform

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/nhle/admin-console/internal/model"
	"github.com/nhle/admin-console/internal/theme"
)

// SubmittedMsg is dispatched when the form is completed.
type SubmittedMsg struct {
	Input model.NotificationInput
}

// CancelMsg is dispatched when the user abandons the form.
type CancelMsg struct{}

// formBindings holds field values on the heap so that huh's Value()
// pointers stay valid across Bubble Tea model copies.
type formBindings struct {
	title   string
	message string
	kind    model.NotificationType
}

// Model is the Bubble Tea model for the new-notification form.
type Model struct {
	form   *huh.Form
	fb     *formBindings
	width  int
	height int
}

// New creates a new form model. Call Start before routing messages to it.
func New(width, height int) Model {
	return Model{
		fb:     &formBindings{kind: model.NotificationInfo},
		width:  width,
		height: height,
	}
}

// Start resets the fields and builds a fresh form.
func (m *Model) Start() tea.Cmd {
	m.fb.title = ""
	m.fb.message = ""
	m.fb.kind = model.NotificationInfo
	m.form = m.buildForm()
	return m.form.Init()
}

// active reports whether a form is being filled in.
func (m Model) active() bool {
	return m.form != nil && m.form.State == huh.StateNormal
}

// Update handles messages for the form.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if m.form == nil {
		return m, nil
	}

	if k, ok := msg.(tea.KeyMsg); ok && k.String() == "esc" {
		m.form = nil
		return m, func() tea.Msg { return CancelMsg{} }
	}

	mdl, cmd := m.form.Update(msg)
	if f, ok := mdl.(*huh.Form); ok {
		m.form = f
	}

	switch m.form.State {
	case huh.StateCompleted:
		in := m.input()
		m.form = nil
		return m, func() tea.Msg { return SubmittedMsg{Input: in} }
	case huh.StateAborted:
		m.form = nil
		return m, func() tea.Msg { return CancelMsg{} }
	}

	return m, cmd
}

// View renders the form.
func (m Model) View() string {
	if m.form == nil {
		return ""
	}

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(theme.ColorWhite).
		MarginBottom(1)

	content := titleStyle.Render("New Notification") + "\n" + m.form.View()

	return lipgloss.NewStyle().
		Padding(1, 2).
		Render(content)
}

// SetSize updates the form dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

func (m *Model) buildForm() *huh.Form {
	opts := make([]huh.Option[model.NotificationType], len(model.NotificationTypes))
	for i, t := range model.NotificationTypes {
		opts[i] = huh.NewOption(strings.ToUpper(string(t[:1]))+string(t[1:]), t)
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Title").
				Placeholder("Short headline").
				Value(&m.fb.title).
				Validate(validateRequired("Title")),
			huh.NewText().
				Title("Message").
				Placeholder("What happened?").
				Value(&m.fb.message).
				Validate(validateRequired("Message")),
			huh.NewSelect[model.NotificationType]().
				Title("Type").
				Options(opts...).
				Value(&m.fb.kind),
		),
	).WithWidth(m.formWidth()).WithHeight(m.formHeight())
}

func (m Model) input() model.NotificationInput {
	return model.NotificationInput{
		Title:   strings.TrimSpace(m.fb.title),
		Message: strings.TrimSpace(m.fb.message),
		Type:    m.fb.kind,
	}
}

func (m Model) formWidth() int {
	return min(max(m.width-4, 40), 100)
}

func (m Model) formHeight() int {
	return max(m.height-4, 10)
}

func validateRequired(fieldName string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("%s is required", fieldName)
		}
		return nil
	}
}
