package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/kanacards/internal/ui/theme"
)

// ProgressBar shows how far through a round the learner is.
type ProgressBar struct {
	Label     string
	Done      int
	Total     int
	ShowCount bool
	Width     int
}

// Fraction returns done/total clamped to [0, 1]. A zero total is 0.
func Fraction(done, total int) float64 {
	if total <= 0 || done <= 0 {
		return 0
	}
	if done >= total {
		return 1
	}
	return float64(done) / float64(total)
}

// NewProgressBar creates a progress bar of done out of total.
func NewProgressBar(label string, done, total int, showCount bool, width int) ProgressBar {
	return ProgressBar{
		Label:     label,
		Done:      done,
		Total:     total,
		ShowCount: showCount,
		Width:     width,
	}
}

// View renders the progress bar.
func (p ProgressBar) View() string {
	var b strings.Builder

	if p.Label != "" {
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Render(p.Label))
		b.WriteString("  ")
	}

	count := ""
	if p.ShowCount {
		count = fmt.Sprintf("  %d/%d", p.Done, p.Total)
	}

	barWidth := max(p.Width-lipgloss.Width(b.String())-lipgloss.Width(count), 4)
	filled := int(float64(barWidth) * Fraction(p.Done, p.Total))

	b.WriteString(lipgloss.NewStyle().Foreground(theme.Primary).Render(strings.Repeat("█", filled)))
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("░", barWidth-filled)))

	if count != "" {
		b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Render(count))
	}
	return b.String()
}
