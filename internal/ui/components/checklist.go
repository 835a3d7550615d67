package components

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/kanacards/internal/ui/theme"
)

// CheckItem is one row of a Checklist.
type CheckItem struct {
	Label   string
	Detail  string
	Checked bool
}

// Checklist is a vertical list of toggleable rows. It only moves the
// cursor; the owner decides what toggling a row means and refreshes the
// Checked flags afterwards.
type Checklist struct {
	Title  string
	Items  []CheckItem
	Cursor int
}

// NewChecklist creates a checklist with the cursor on the first row.
func NewChecklist(title string, items []CheckItem) Checklist {
	return Checklist{
		Title: title,
		Items: items,
	}
}

// Current returns the row under the cursor.
func (c Checklist) Current() (CheckItem, bool) {
	if c.Cursor < 0 || c.Cursor >= len(c.Items) {
		return CheckItem{}, false
	}
	return c.Items[c.Cursor], true
}

// Update handles cursor navigation.
func (c Checklist) Update(msg tea.Msg) (Checklist, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return c, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if c.Cursor > 0 {
			c.Cursor--
		}
	case "down", "j":
		if c.Cursor < len(c.Items)-1 {
			c.Cursor++
		}
	}

	return c, nil
}

// View renders the checklist. The cursor is only drawn when focused.
func (c Checklist) View(focused bool) string {
	var b strings.Builder

	titleStyle := lipgloss.NewStyle().Foreground(theme.TextDim).Bold(true)
	if focused {
		titleStyle = titleStyle.Foreground(theme.Primary)
	}
	b.WriteString(titleStyle.Render(c.Title))
	b.WriteString("\n")

	for i, item := range c.Items {
		prefix := "  "
		if focused && i == c.Cursor {
			prefix = "▸ "
		}
		box := "[ ] "
		if item.Checked {
			box = "[x] "
		}

		style := theme.Unselected
		if item.Checked {
			style = lipgloss.NewStyle().Foreground(theme.Success)
		}
		if focused && i == c.Cursor {
			style = theme.Selected
		}

		line := style.Render(prefix + box + item.Label)
		if item.Detail != "" {
			line += "  " + theme.Disabled.Render(item.Detail)
		}
		b.WriteString(line)
		if i < len(c.Items)-1 {
			b.WriteString("\n")
		}
	}

	return b.String()
}
