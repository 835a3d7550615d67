package components

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/kanacards/internal/ui/theme"
)

// ButtonWidth is the fixed width of menu buttons.
const ButtonWidth = 22

// ContentWidth returns the uniform inner width used for framed sections.
// All boxes are rendered at this width so they visually align.
func ContentWidth(frameWidth int) int {
	// Leave room for frame border (2) + inner padding (4)
	w := frameWidth - 6
	if w > 60 {
		w = 60
	}
	if w < 20 {
		w = 20
	}
	return w
}

// Frame wraps content in a double-border frame, centering vertically and
// horizontally within the given dimensions.
func Frame(content string, width, height int) string {
	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.Primary).
		Width(width-2).
		Height(height-2).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}

// Panel wraps content in a rounded-border box at the given content width.
func Panel(content string, cw int) string {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Width(cw-2).
		Padding(0, 1).
		Render(content)
}

// MenuButton renders a fixed-width bordered button.
func MenuButton(label string, selected bool) string {
	if selected {
		return lipgloss.NewStyle().
			Width(ButtonWidth).
			Align(lipgloss.Center).
			Bold(true).
			Foreground(theme.BgDark).
			Background(theme.Primary).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(theme.Primary).
			Padding(0, 1).
			Render("▸ " + label)
	}
	return lipgloss.NewStyle().
		Width(ButtonWidth).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Padding(0, 1).
		Render(label)
}

// ButtonMenu renders a menu as a column of buttons, or as highlighted text
// lines when compact.
func ButtonMenu(m Menu, cw int, compact bool) string {
	lines := make([]string, 0, len(m.Items))
	for i, item := range m.Items {
		label := item.Label
		selected := i == m.Selected
		if item.Disabled {
			lines = append(lines, theme.Disabled.Render(label))
			continue
		}
		if !compact {
			lines = append(lines, MenuButton(label, selected))
			continue
		}
		if selected {
			lines = append(lines, lipgloss.NewStyle().
				Foreground(theme.BgDark).
				Background(theme.Primary).
				Bold(true).
				Render(" ▸ "+label+" "))
		} else {
			lines = append(lines, theme.Unselected.Render("   "+label))
		}
	}
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(strings.Join(lines, "\n"))
}
