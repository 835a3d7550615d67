// Package chart renders the reference table of every kana group.
package chart

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"charm.land/lipgloss/v2/table"

	"github.com/abhisek/kanacards/internal/kana"
	"github.com/abhisek/kanacards/internal/screen"
	"github.com/abhisek/kanacards/internal/ui/layout"
	"github.com/abhisek/kanacards/internal/ui/theme"
)

// Table builds the chart: one row per group, one column per script. Each
// cell lists the glyphs of that group with their readings.
func Table(scripts []kana.Script) *table.Table {
	if len(scripts) == 0 {
		scripts = kana.Scripts()
	}

	cells := make(map[string]map[kana.Script][]string)
	for _, it := range kana.All() {
		if cells[it.Group] == nil {
			cells[it.Group] = make(map[kana.Script][]string)
		}
		cells[it.Group][it.Script] = append(cells[it.Group][it.Script], it.Glyph+" "+it.Romaji)
	}

	headers := []string{"Group"}
	for _, sc := range scripts {
		headers = append(headers, strings.ToUpper(string(sc[:1]))+string(sc[1:]))
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(theme.Border)).
		Headers(headers...).
		StyleFunc(func(row, col int) lipgloss.Style {
			base := lipgloss.NewStyle().Padding(0, 1)
			switch {
			case row == table.HeaderRow:
				return base.Foreground(theme.Primary).Bold(true)
			case col == 0:
				return base.Foreground(theme.Secondary).Bold(true)
			}
			return base.Foreground(theme.Text)
		})

	for _, g := range kana.Groups() {
		row := []string{groupLabel(g)}
		for _, sc := range scripts {
			row = append(row, strings.Join(cells[g][sc], "  "))
		}
		t.Row(row...)
	}
	return t
}

func groupLabel(g string) string {
	if kana.IsDiacritic(g) {
		return g + " ゛"
	}
	return g
}

// Render returns the chart as a string.
func Render(scripts []kana.Script) string {
	return Table(scripts).String()
}

// ChartScreen shows the chart with vertical scrolling.
type ChartScreen struct {
	lines  []string
	offset int
	height int
}

var _ screen.Screen = (*ChartScreen)(nil)
var _ screen.KeyHintProvider = (*ChartScreen)(nil)

// New creates a ChartScreen for both scripts.
func New() *ChartScreen {
	return &ChartScreen{
		lines: strings.Split(Render(nil), "\n"),
	}
}

func (c *ChartScreen) Init() tea.Cmd {
	return nil
}

func (c *ChartScreen) Title() string {
	return "Kana Chart"
}

func (c *ChartScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Scroll"},
		{Key: "Esc", Description: "Back"},
	}
}

func (c *ChartScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return c, nil
	}
	switch kmsg.String() {
	case "up", "k":
		c.offset--
	case "down", "j":
		c.offset++
	case "pgup":
		c.offset -= c.page()
	case "pgdown", "space":
		c.offset += c.page()
	case "home", "g":
		c.offset = 0
	}
	c.clamp()
	return c, nil
}

func (c *ChartScreen) page() int {
	if c.height > 2 {
		return c.height - 2
	}
	return 1
}

func (c *ChartScreen) clamp() {
	maxOffset := len(c.lines) - c.height
	if c.height == 0 || maxOffset < 0 {
		maxOffset = 0
	}
	if c.offset > maxOffset {
		c.offset = maxOffset
	}
	if c.offset < 0 {
		c.offset = 0
	}
}

func (c *ChartScreen) View(width, height int) string {
	c.height = height
	c.clamp()

	end := c.offset + height
	if end > len(c.lines) {
		end = len(c.lines)
	}
	visible := strings.Join(c.lines[c.offset:end], "\n")

	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Render(visible)
}
