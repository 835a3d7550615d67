// Package study is the flashcard screen: the card, its enrichment, the
// progress counter and the inline settings panel.
package study

import (
	"errors"
	"fmt"
	"time"

	"charm.land/bubbles/v2/key"
	"charm.land/bubbles/v2/spinner"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/kanacards/internal/kana"
	"github.com/abhisek/kanacards/internal/screen"
	core "github.com/abhisek/kanacards/internal/study"
	"github.com/abhisek/kanacards/internal/ui/layout"
	"github.com/abhisek/kanacards/internal/ui/theme"
)

// flashDuration is how long a rejected-toggle notice stays on screen.
const flashDuration = 2 * time.Second

// StudyScreen implements screen.Screen for a study session.
type StudyScreen struct {
	sess    *core.Session
	keys    keyMap
	spinner spinner.Model
	panel   settingsPanel

	flash   string
	flashID int
}

var _ screen.Screen = (*StudyScreen)(nil)
var _ screen.KeyHintProvider = (*StudyScreen)(nil)
var _ screen.StatusProvider = (*StudyScreen)(nil)
var _ screen.Closer = (*StudyScreen)(nil)

// New creates a StudyScreen over a new session.
func New(opts core.Options) *StudyScreen {
	s := &StudyScreen{
		sess: core.New(opts),
		keys: defaultKeys(),
		spinner: spinner.New(
			spinner.WithSpinner(spinner.MiniDot),
			spinner.WithStyle(lipgloss.NewStyle().Foreground(theme.Primary)),
		),
		panel: newSettingsPanel(),
	}
	s.panel.sync(s.sess.Selection())
	return s
}

func (s *StudyScreen) Init() tea.Cmd {
	return s.run(s.sess.Start())
}

func (s *StudyScreen) Title() string {
	return "Study · " + s.sess.Mode().Label()
}

// Status shows progress through the current cycle.
func (s *StudyScreen) Status() string {
	return fmt.Sprintf("%d / %d", s.sess.Seen(), s.sess.PoolSize())
}

// Close cancels in-flight enrichment and pending swaps.
func (s *StudyScreen) Close() {
	s.sess.Close()
}

func (s *StudyScreen) KeyHints() []layout.KeyHint {
	if s.panel.open {
		return []layout.KeyHint{
			hint(s.keys.Toggle),
			hint(s.keys.NextSection),
			{Key: "S", Description: "Close"},
			{Key: "Esc", Description: "Back"},
		}
	}
	return []layout.KeyHint{
		hint(s.keys.Flip),
		hint(s.keys.Next),
		hint(s.keys.Settings),
		hint(s.keys.Mode),
		{Key: "Esc", Description: "Back"},
	}
}

func hint(b key.Binding) layout.KeyHint {
	h := b.Help()
	return layout.KeyHint{Key: h.Key, Description: h.Desc}
}

func (s *StudyScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case fetchedMsg:
		s.sess.Complete(core.Fetched(msg))
		return s, nil

	case settledMsg:
		s.sess.Settle(core.Settled(msg))
		return s, nil

	case flashExpiredMsg:
		if msg.id == s.flashID {
			s.flash = ""
		}
		return s, nil

	case spinner.TickMsg:
		if !s.sess.Loading() {
			return s, nil
		}
		var cmd tea.Cmd
		s.spinner, cmd = s.spinner.Update(msg)
		return s, cmd

	case tea.KeyMsg:
		if s.panel.open {
			return s.handlePanelKey(msg)
		}
		return s.handleKey(msg)
	}
	return s, nil
}

func (s *StudyScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch {
	case key.Matches(msg, s.keys.Flip):
		return s, s.run(s.sess.Flip())
	case key.Matches(msg, s.keys.Next):
		return s, s.run(s.sess.Next())
	case key.Matches(msg, s.keys.Settings):
		s.panel.open = true
		return s, nil
	case key.Matches(msg, s.keys.Mode):
		return s.apply(s.sess.SetMode(flipMode(s.sess.Mode())))
	case key.Matches(msg, s.keys.Diacritics):
		return s.apply(s.sess.ToggleDiacritics())
	case key.Matches(msg, s.keys.Hiragana):
		return s.apply(s.sess.ToggleScript(kana.Hiragana))
	case key.Matches(msg, s.keys.Katakana):
		return s.apply(s.sess.ToggleScript(kana.Katakana))
	}
	return s, nil
}

func (s *StudyScreen) handlePanelKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch {
	case key.Matches(msg, s.keys.Settings):
		s.panel.open = false
		return s, nil
	case key.Matches(msg, s.keys.NextSection):
		s.panel.cycle(1)
		return s, nil
	case key.Matches(msg, s.keys.PrevSection):
		s.panel.cycle(-1)
		return s, nil
	case key.Matches(msg, s.keys.Toggle):
		return s.apply(s.panel.toggle(s.sess))
	case key.Matches(msg, s.keys.Next):
		return s, s.run(s.sess.Next())
	}

	var cmd tea.Cmd
	s.panel.sections[s.panel.focus], cmd = s.panel.sections[s.panel.focus].Update(msg)
	return s, cmd
}

// apply finishes a selection change: rejected changes flash a notice,
// accepted ones refresh the panel and run their effects.
func (s *StudyScreen) apply(eff core.Effects, err error) (screen.Screen, tea.Cmd) {
	if err != nil {
		return s, s.showFlash(rejectionText(err))
	}
	s.panel.sync(s.sess.Selection())
	return s, s.run(eff)
}

func rejectionText(err error) string {
	switch {
	case errors.Is(err, kana.ErrLastGroup):
		return "Keep at least one group selected."
	case errors.Is(err, kana.ErrLastScript):
		return "Keep at least one script selected."
	}
	return err.Error()
}

func (s *StudyScreen) showFlash(text string) tea.Cmd {
	s.flashID++
	s.flash = text
	id := s.flashID
	return tea.Tick(flashDuration, func(time.Time) tea.Msg {
		return flashExpiredMsg{id: id}
	})
}

// run turns session effects into commands. A fetch also starts the
// loading spinner.
func (s *StudyScreen) run(eff core.Effects) tea.Cmd {
	var cmds []tea.Cmd
	if f := eff.Fetch; f != nil {
		cmds = append(cmds,
			func() tea.Msg { return fetchedMsg(f.Run()) },
			s.spinner.Tick,
		)
	}
	if t := eff.Settle; t != nil {
		cmds = append(cmds, func() tea.Msg {
			ev, ok := t.Wait()
			if !ok {
				return nil
			}
			return settledMsg(ev)
		})
	}
	return tea.Batch(cmds...)
}
