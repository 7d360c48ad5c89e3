// Package team renders the roster page as a grid of member cards.
package team

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/nhle/admin-console/internal/keys"
	"github.com/nhle/admin-console/internal/model"
	"github.com/nhle/admin-console/internal/theme"
)

const cardWidth = 30

// Model is the team page.
type Model struct {
	members     []model.TeamMember
	keys        *keys.KeyMap
	selectedIdx int
	width       int
	height      int
}

// New creates the team page for members.
func New(members []model.TeamMember, k *keys.KeyMap, width, height int) Model {
	return Model{
		members: members,
		keys:    k,
		width:   width,
		height:  height,
	}
}

// Update moves the card selection.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	k, ok := msg.(tea.KeyMsg)
	if !ok || len(m.members) == 0 {
		return m, nil
	}

	switch {
	case key.Matches(k, m.keys.Down):
		m.selectedIdx = (m.selectedIdx + 1) % len(m.members)
	case key.Matches(k, m.keys.Up):
		m.selectedIdx--
		if m.selectedIdx < 0 {
			m.selectedIdx = len(m.members) - 1
		}
	}
	return m, nil
}

// View renders the cards, wrapping to as many columns as fit.
func (m Model) View() string {
	var b strings.Builder

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(theme.ColorWhite).MarginBottom(1)
	b.WriteString(titleStyle.Render("Team"))
	b.WriteString("\n\n")

	if len(m.members) == 0 {
		b.WriteString(theme.HintStyle.Render("No team members configured. Add them under team: in the config file."))
		return lipgloss.NewStyle().Padding(1, 2).Width(m.width).Height(m.height).Render(b.String())
	}

	perRow := max((m.width-4)/(cardWidth+3), 1)

	var rows []string
	for start := 0; start < len(m.members); start += perRow {
		end := min(start+perRow, len(m.members))
		cards := make([]string, 0, end-start)
		for i := start; i < end; i++ {
			cards = append(cards, m.renderCard(m.members[i], i == m.selectedIdx))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cards...))
	}
	b.WriteString(lipgloss.JoinVertical(lipgloss.Left, rows...))

	return lipgloss.NewStyle().Padding(1, 2).Width(m.width).Height(m.height).Render(b.String())
}

func (m Model) renderCard(member model.TeamMember, selected bool) string {
	avatar := lipgloss.NewStyle().
		Bold(true).
		Foreground(theme.ColorWhite).
		Background(theme.ColorMagenta).
		Padding(0, 1).
		Render(member.Initials())

	name := lipgloss.NewStyle().Bold(true).Foreground(theme.ColorWhite).Render(member.Name)
	status := member.Status
	if status == "" {
		status = "unknown"
	}
	dot := theme.MemberStatusStyle(member.Status).Render("●") + " " + theme.DimmedStyle.Render(status)

	lines := []string{
		avatar + " " + name,
		theme.DimmedStyle.Render(member.Role),
	}
	if member.Email != "" {
		lines = append(lines, lipgloss.NewStyle().Foreground(theme.ColorBlue).Render(member.Email))
	}
	lines = append(lines, dot)

	style := theme.CardStyle.Width(cardWidth).MarginRight(1).MarginBottom(1)
	if selected {
		style = style.BorderForeground(theme.ColorBlue)
	}
	return style.Render(strings.Join(lines, "\n"))
}

// SetSize updates dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}
