package study

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/kanacards/internal/kana"
	"github.com/abhisek/kanacards/internal/ui/components"
	"github.com/abhisek/kanacards/internal/ui/layout"
	"github.com/abhisek/kanacards/internal/ui/theme"
)

const cardWidth = 40

func (s *StudyScreen) View(width, height int) string {
	main := s.renderMain(width)
	if s.panel.open {
		panel := s.renderPanel()
		if width >= cardWidth+lipgloss.Width(panel)+8 {
			main = lipgloss.JoinHorizontal(lipgloss.Top, main, "    ", panel)
		} else {
			main = lipgloss.JoinVertical(lipgloss.Center, main, "", panel)
		}
	}

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(main)
}

func (s *StudyScreen) renderMain(width int) string {
	var sections []string

	bar := components.NewProgressBar("Seen", s.sess.Seen(), s.sess.PoolSize(), true, cardWidth)
	sections = append(sections, bar.View())

	if s.sess.Empty() {
		sections = append(sections, renderEmpty())
	} else {
		sections = append(sections, s.renderCard())
	}

	sections = append(sections, s.renderButtons())

	if s.flash != "" {
		sections = append(sections, theme.Warning.Render(s.flash))
	}
	if !layout.IsCompactWidth(width) {
		sections = append(sections, theme.Hint.Render(s.selectionSummary()))
	}

	return lipgloss.JoinVertical(lipgloss.Center, sections...)
}

func renderEmpty() string {
	return theme.Card.
		Width(cardWidth).
		Align(lipgloss.Center).
		Render(theme.Disabled.Render("No characters match this selection.\nPress S to change settings."))
}

func (s *StudyScreen) renderCard() string {
	item, _ := s.sess.Visible()
	mode := s.sess.Mode()

	var b strings.Builder
	b.WriteString(theme.Disabled.Render(scriptLabel(item.Script) + " · " + item.Group))
	b.WriteString("\n\n")
	b.WriteString(faceStyle(mode, false).Render(item.Prompt(mode)))
	b.WriteString("\n\n")

	if !s.sess.Flipped() {
		hint := "Press Space to reveal"
		if s.sess.Swapping() {
			hint = "Next card…"
		}
		b.WriteString(theme.Hint.Render(hint))
		return theme.Card.Width(cardWidth).Align(lipgloss.Center).Render(b.String())
	}

	b.WriteString(faceStyle(mode, true).Render(item.Answer(mode)))
	b.WriteString("\n\n")
	b.WriteString(s.renderEnrichment())

	return theme.CardRevealed.Width(cardWidth).Align(lipgloss.Center).Render(b.String())
}

// faceStyle picks the glyph or reading style for a face. answer selects the
// back face.
func faceStyle(mode kana.Mode, answer bool) lipgloss.Style {
	showsGlyph := (mode == kana.CharFirst) != answer
	if showsGlyph {
		return theme.Glyph
	}
	return theme.Reading
}

func (s *StudyScreen) renderEnrichment() string {
	if !s.sess.EnrichmentEnabled() {
		return theme.Disabled.Render("AI mnemonics are off")
	}
	if s.sess.Loading() {
		return s.spinner.View() + " " + theme.Hint.Render("Generating mnemonic…")
	}
	res, ok := s.sess.Result()
	if !ok {
		return ""
	}

	inner := cardWidth - 6
	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Accent).Width(inner).Render(res.Note))
	if len(res.Examples) > 0 {
		b.WriteString("\n")
		for _, ex := range res.Examples {
			b.WriteString("\n")
			b.WriteString(lipgloss.NewStyle().Width(inner).Align(lipgloss.Left).Render(
				theme.Body.Bold(true).Render(ex.Word) + theme.Disabled.Render("  "+ex.Meaning)))
		}
	}
	return b.String()
}

func (s *StudyScreen) renderButtons() string {
	flipLabel := "Flip"
	if s.sess.Flipped() {
		flipLabel = "Hide"
	}
	return lipgloss.JoinHorizontal(lipgloss.Center,
		components.NewButton("Space", flipLabel, !s.sess.Flipped() && !s.sess.Empty()).View(),
		"  ",
		components.NewButton("N", "Next", s.sess.Flipped()).View(),
		"  ",
		components.NewButton("S", "Settings", s.panel.open).View(),
	)
}

func (s *StudyScreen) selectionSummary() string {
	sel := s.sess.Selection()
	scripts := make([]string, 0, 2)
	for _, sc := range sel.Scripts() {
		scripts = append(scripts, scriptLabel(sc))
	}
	return strings.Join(scripts, " + ") + " · " + strings.Join(sel.Groups(), " ")
}

func (s *StudyScreen) renderPanel() string {
	parts := make([]string, 0, sectionCount)
	for i, c := range s.panel.sections {
		parts = append(parts, c.View(i == s.panel.focus))
	}
	return components.Panel(strings.Join(parts, "\n\n"), 34)
}

func scriptLabel(sc kana.Script) string {
	if sc == kana.Katakana {
		return "Katakana"
	}
	return "Hiragana"
}
