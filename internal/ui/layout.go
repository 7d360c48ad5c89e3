package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/nhle/admin-console/internal/theme"
)

// SidebarItem is one entry in the navigation shell.
type SidebarItem struct {
	Label string
	Path  string
}

// Layout manages the header, sidebar, content and status bar dimensions.
type Layout struct {
	Width           int
	Height          int
	HeaderHeight    int
	StatusBarHeight int
	SidebarWidth    int
}

// NewLayout creates a Layout with the given terminal dimensions. The
// sidebar collapses on narrow terminals.
func NewLayout(width, height int) Layout {
	sidebar := 22
	if width < 70 {
		sidebar = 0
	}
	return Layout{
		Width:           width,
		Height:          height,
		HeaderHeight:    1,
		StatusBarHeight: 1,
		SidebarWidth:    sidebar,
	}
}

// ContentWidth returns the width left of the sidebar.
func (l Layout) ContentWidth() int {
	return max(l.Width-l.SidebarWidth, 0)
}

// ContentHeight returns the height available for the main content area,
// accounting for the header and status bar.
func (l Layout) ContentHeight() int {
	return max(l.Height-l.HeaderHeight-l.StatusBarHeight, 0)
}

// RenderHeader renders the top bar: title on the left, user and badge on
// the right.
func (l Layout) RenderHeader(title string, right string) string {
	titleRendered := theme.HeaderStyle.Render(title)
	rightRendered := theme.HeaderStyle.Render(right)

	gap := max(l.Width-lipgloss.Width(titleRendered)-lipgloss.Width(rightRendered), 0)

	filler := lipgloss.NewStyle().
		Width(gap).
		Background(theme.HeaderStyle.GetBackground()).
		Render("")

	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		titleRendered,
		filler,
		rightRendered,
	)
}

// RenderSidebar renders the menu with the entry for active highlighted.
func (l Layout) RenderSidebar(items []SidebarItem, active string) string {
	if l.SidebarWidth == 0 {
		return ""
	}

	var b strings.Builder
	for i, item := range items {
		if i > 0 {
			b.WriteString("\n")
		}
		if item.Path == active {
			b.WriteString(theme.SidebarActiveStyle.Render(item.Label))
		} else {
			b.WriteString(theme.SidebarItemStyle.Render(item.Label))
		}
	}

	return theme.SidebarStyle.
		Width(l.SidebarWidth - 1).
		Height(max(l.ContentHeight()-2, 0)).
		Render(b.String())
}

// RenderStatusBar renders the bottom status bar with keyboard hints.
func (l Layout) RenderStatusBar(hints string) string {
	rendered := theme.StatusBarStyle.Render(hints)

	gap := max(l.Width-lipgloss.Width(rendered), 0)

	filler := lipgloss.NewStyle().
		Width(gap).
		Background(theme.StatusBarStyle.GetBackground()).
		Render("")

	return lipgloss.JoinHorizontal(lipgloss.Top, rendered, filler)
}

// RenderWithFrame composes the full view: header on top, sidebar and
// content side by side, status bar at the bottom.
func (l Layout) RenderWithFrame(
	header string,
	sidebar string,
	content string,
	statusBar string,
) string {
	body := content
	if sidebar != "" {
		body = lipgloss.JoinHorizontal(lipgloss.Top, sidebar, content)
	}
	return lipgloss.JoinVertical(
		lipgloss.Left,
		header,
		body,
		statusBar,
	)
}
