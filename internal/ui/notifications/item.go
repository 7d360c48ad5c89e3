package notifications

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/nhle/admin-console/internal/model"
	"github.com/nhle/admin-console/internal/theme"
)

// Item wraps a model.Notification so it can be used in a bubbles/list.
type Item struct {
	Notification model.Notification
}

// FilterValue returns the string used for fuzzy filtering.
func (i Item) FilterValue() string { return i.Notification.Title }

// Delegate implements list.ItemDelegate for notification rows.
type Delegate struct {
	now func() time.Time
}

// Height returns the number of lines each item takes.
func (d Delegate) Height() int { return 2 }

// Spacing returns the number of blank lines between items.
func (d Delegate) Spacing() int { return 1 }

// Update handles per-item messages (unused).
func (d Delegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd {
	return nil
}

// Render draws a notification as a headline and a message line.
func (d Delegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	it, ok := item.(Item)
	if !ok {
		return
	}
	n := it.Notification
	width := max(m.Width()-4, 10)

	marker := " "
	if !n.Read {
		marker = lipgloss.NewStyle().Foreground(theme.ColorBlue).Render("●")
	}

	badge := theme.TypeStyle(string(n.Type)).Render(strings.ToUpper(string(n.Type)))
	when := theme.DimmedStyle.Render(relativeTime(n.Timestamp, d.clock()))

	titleStyle := lipgloss.NewStyle()
	if n.Read {
		titleStyle = titleStyle.Foreground(theme.ColorGray)
	} else {
		titleStyle = titleStyle.Bold(true).Foreground(theme.ColorWhite)
	}
	room := max(width-lipgloss.Width(marker)-lipgloss.Width(badge)-lipgloss.Width(when)-3, 1)
	title := titleStyle.Render(truncate(n.Title, room))

	gap := max(width-lipgloss.Width(marker)-lipgloss.Width(badge)-lipgloss.Width(title)-lipgloss.Width(when)-2, 1)
	headline := fmt.Sprintf("%s %s %s%s%s", marker, badge, title, strings.Repeat(" ", gap), when)
	body := "  " + theme.DimmedStyle.Render(truncate(firstLine(n.Message), width-2))

	row := headline + "\n" + body
	if index == m.Index() {
		fmt.Fprint(w, theme.SelectedItemStyle.Render(row))
		return
	}
	fmt.Fprint(w, theme.ListItemStyle.Render(row))
}

func (d Delegate) clock() time.Time {
	if d.now == nil {
		return time.Now()
	}
	return d.now()
}

// relativeTime renders t as "3 minutes ago" relative to now.
func relativeTime(t, now time.Time) string {
	if now.Sub(t) < time.Minute && !t.After(now) {
		return "just now"
	}
	return humanize.RelTime(t, now, "ago", "from now")
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i] + " …"
	}
	return s
}

func truncate(s string, width int) string {
	if lipgloss.Width(s) <= width {
		return s
	}
	if width <= 1 {
		return "…"
	}
	r := []rune(s)
	for len(r) > 0 && lipgloss.Width(string(r))+1 > width {
		r = r[:len(r)-1]
	}
	return string(r) + "…"
}
