package home

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/kanacards/internal/kana"
	"github.com/abhisek/kanacards/internal/router"
	"github.com/abhisek/kanacards/internal/screen"
	"github.com/abhisek/kanacards/internal/screens/chart"
	studyscreen "github.com/abhisek/kanacards/internal/screens/study"
	"github.com/abhisek/kanacards/internal/study"
	"github.com/abhisek/kanacards/internal/ui/components"
	"github.com/abhisek/kanacards/internal/ui/layout"
	"github.com/abhisek/kanacards/internal/ui/theme"
)

const titleFull = `╻┏ ┏━┓┏┓╻┏━┓   ┏━╸┏━┓┏━┓╺┳┓┏━┓
┣┻┓┣━┫┃┗┫┣━┫   ┃  ┣━┫┣┳┛ ┃┃┗━┓
╹ ╹╹ ╹╹ ╹╹ ╹   ┗━╸╹ ╹╹┗╸╺┻┛┗━┛`

const titleCompact = "か な · C A R D S"

// Options configures the home screen.
type Options struct {
	// Study is passed to every new study session.
	Study study.Options

	// AIStatus describes the enrichment backend, e.g. "gemini-2.5-flash".
	// Empty means enrichment is off.
	AIStatus string
}

// HomeScreen is the main menu.
type HomeScreen struct {
	menu components.Menu
	opts Options
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a new HomeScreen.
func New(opts Options) *HomeScreen {
	items := []components.MenuItem{
		{Label: "START STUDYING", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: studyscreen.New(opts.Study)}
			}
		}},
		{Label: "VIEW CHARTS", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: chart.New()}
			}
		}},
		{Label: "EXIT", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	return &HomeScreen{
		menu: components.NewMenu(items),
		opts: opts,
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	// height is the content area; add back header and footer
	compact := layout.IsCompactHeight(height+layout.HeaderHeight+layout.FooterHeight) ||
		layout.IsCompactWidth(width)

	cw := components.ContentWidth(width)

	var sections []string
	sections = append(sections, renderTitle(cw, compact))

	if !compact {
		variant := MascotIdle
		if h.opts.AIStatus == "" {
			variant = MascotSleepy
		}
		sections = append(sections, lipgloss.NewStyle().
			Width(cw).
			Align(lipgloss.Center).
			Render(RenderMascot(variant)))
	}

	sections = append(sections, h.renderStatsBar(cw))
	sections = append(sections, components.ButtonMenu(h.menu, cw, compact))

	return components.Frame(strings.Join(sections, "\n\n"), width, height)
}

func (h *HomeScreen) Title() string {
	return "Home"
}

func renderTitle(cw int, compact bool) string {
	art := titleFull
	if compact {
		art = titleCompact
	}
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(theme.Title.Render(art))
}

// renderStatsBar shows the starting selection and the AI backend.
func (h *HomeScreen) renderStatsBar(cw int) string {
	sel := h.opts.Study.Selection
	if len(sel.Groups()) == 0 {
		sel = kana.DefaultSelection()
	}
	items := h.opts.Study.Items
	if items == nil {
		items = kana.All()
	}
	cards := len(kana.DerivePool(items, sel))

	cardStyle := lipgloss.NewStyle().Foreground(theme.Accent).Bold(true)
	dimStyle := lipgloss.NewStyle().Foreground(theme.TextDim)

	ai := dimStyle.Render("AI mnemonics off")
	if h.opts.AIStatus != "" {
		ai = lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).Render("AI " + h.opts.AIStatus)
	}

	stats := fmt.Sprintf("%s  %s  %s",
		cardStyle.Render(fmt.Sprintf("%d CARDS", cards)),
		dimStyle.Render(sel.Mode().Label()),
		ai,
	)

	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.Secondary).
		Width(cw-2).
		Align(lipgloss.Center).
		Padding(0, 1).
		Render(stats)
}
