package study

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/kanacards/internal/enrich"
	"github.com/abhisek/kanacards/internal/kana"
	core "github.com/abhisek/kanacards/internal/study"
)

// inOrder makes every shuffle the identity permutation.
type inOrder struct{}

func (inOrder) IntN(n int) int { return n - 1 }

type stubEnricher struct {
	mu    sync.Mutex
	calls []string
}

func (e *stubEnricher) Enrich(_ context.Context, glyph, reading string) (enrich.Result, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.calls = append(e.calls, glyph)
	return enrich.Result{
		Note:     reading + " is for apple",
		Examples: []enrich.Example{{Word: "ame", Meaning: "rain"}},
	}, nil
}

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

// drain runs cmd and any batched commands, returning the produced
// messages. Spinner ticks are dropped.
func drain(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	switch msg := msg.(type) {
	case nil:
		return nil
	case tea.BatchMsg:
		var out []tea.Msg
		for _, c := range msg {
			out = append(out, drain(c)...)
		}
		return out
	}
	if _, ok := msg.(fetchedMsg); ok {
		return []tea.Msg{msg}
	}
	if _, ok := msg.(settledMsg); ok {
		return []tea.Msg{msg}
	}
	return nil
}

func newTestScreen(t *testing.T, e core.Enricher) *StudyScreen {
	t.Helper()
	return newTestScreenWithDelay(t, e, 10*time.Millisecond)
}

func newTestScreenWithDelay(t *testing.T, e core.Enricher, delay time.Duration) *StudyScreen {
	t.Helper()
	sel, err := kana.NewSelection([]string{"Vowels"}, []kana.Script{kana.Hiragana}, kana.CharFirst)
	if err != nil {
		t.Fatalf("selection: %v", err)
	}
	s := New(core.Options{
		Selection:   sel,
		Rand:        inOrder{},
		Enricher:    e,
		SettleDelay: delay,
	})
	t.Cleanup(s.Close)
	for _, msg := range drain(s.Init()) {
		s.Update(msg)
	}
	return s
}

// press sends a key and feeds every resulting message back in.
func press(s *StudyScreen, msg tea.KeyPressMsg) {
	_, cmd := s.Update(msg)
	for _, m := range drain(cmd) {
		s.Update(m)
	}
}

func TestStudyScreen_Start(t *testing.T) {
	s := newTestScreen(t, nil)

	if got := s.Status(); got != "1 / 5" {
		t.Fatalf("expected status '1 / 5', got %q", got)
	}
	view := s.View(100, 30)
	if !strings.Contains(view, "あ") {
		t.Fatalf("expected first card あ in view:\n%s", view)
	}
	if !strings.Contains(view, "Press Space to reveal") {
		t.Fatal("expected face-down prompt")
	}
}

func TestStudyScreen_FlipFetchesEnrichment(t *testing.T) {
	e := &stubEnricher{}
	s := newTestScreen(t, e)

	press(s, specialKey(tea.KeySpace))

	if !s.sess.Flipped() {
		t.Fatal("expected card flipped")
	}
	view := s.View(100, 30)
	if !strings.Contains(view, "a is for apple") {
		t.Fatalf("expected mnemonic in view:\n%s", view)
	}
	if !strings.Contains(view, "ame") {
		t.Fatal("expected example word in view")
	}

	// Hiding and revealing again reuses the result.
	press(s, specialKey(tea.KeySpace))
	press(s, specialKey(tea.KeySpace))
	if len(e.calls) != 1 {
		t.Fatalf("expected 1 enrichment call, got %d", len(e.calls))
	}
}

func TestStudyScreen_NoEnricher(t *testing.T) {
	s := newTestScreen(t, nil)
	press(s, keyPress('f'))

	if !strings.Contains(s.View(100, 30), "AI mnemonics are off") {
		t.Fatal("expected disabled enrichment notice")
	}
}

func TestStudyScreen_FaceUpAdvanceSettles(t *testing.T) {
	s := newTestScreen(t, &stubEnricher{})
	press(s, specialKey(tea.KeySpace))

	_, cmd := s.Update(keyPress('n'))
	if got := s.Status(); got != "2 / 5" {
		t.Fatalf("expected status '2 / 5', got %q", got)
	}
	view := s.View(100, 30)
	if !strings.Contains(view, "あ") || !strings.Contains(view, "Next card…") {
		t.Fatalf("expected previous card while settling:\n%s", view)
	}

	for _, m := range drain(cmd) {
		s.Update(m)
	}
	view = s.View(100, 30)
	if !strings.Contains(view, "い") {
		t.Fatalf("expected い after settle:\n%s", view)
	}
}

func TestStudyScreen_FlipDuringSettleShowsPrompt(t *testing.T) {
	s := newTestScreenWithDelay(t, &stubEnricher{}, time.Hour)
	press(s, specialKey(tea.KeySpace))
	s.Update(keyPress('n'))

	_, cmd := s.Update(specialKey(tea.KeySpace))
	if cmd != nil {
		t.Fatal("finishing the swap must not start a fetch")
	}
	if s.sess.Flipped() {
		t.Fatal("expected the new card face down")
	}
	view := s.View(100, 30)
	if !strings.Contains(view, "い") || strings.Contains(view, "Next card…") {
		t.Fatalf("expected い prompt after the flip:\n%s", view)
	}
}

func TestStudyScreen_SettingsPanel(t *testing.T) {
	s := newTestScreen(t, nil)

	press(s, keyPress('s'))
	if !s.panel.open {
		t.Fatal("expected settings panel open")
	}

	// Scripts section, Katakana row.
	press(s, specialKey(tea.KeyTab))
	press(s, keyPress('j'))
	press(s, specialKey(tea.KeySpace))

	if s.sess.Flipped() {
		t.Fatal("space in the panel must not flip the card")
	}
	if got := s.Status(); got != "1 / 10" {
		t.Fatalf("expected status '1 / 10' after adding katakana, got %q", got)
	}
	if !s.panel.sections[sectionScripts].Items[1].Checked {
		t.Fatal("expected katakana checked")
	}

	// Back to groups; removing the only group is rejected.
	press(s, specialKey(tea.KeyTab))
	press(s, specialKey(tea.KeyTab))
	s.Update(specialKey(tea.KeySpace))

	if !strings.Contains(s.View(120, 40), "Keep at least one group selected.") {
		t.Fatal("expected rejection notice")
	}
	if len(s.sess.Selection().Groups()) != 1 {
		t.Fatal("selection must be unchanged after rejection")
	}

	press(s, keyPress('s'))
	if s.panel.open {
		t.Fatal("expected settings panel closed")
	}
}

func TestStudyScreen_ModeToggle(t *testing.T) {
	s := newTestScreen(t, nil)

	press(s, keyPress('m'))
	if s.sess.Mode() != kana.RomajiFirst {
		t.Fatalf("expected romaji-first, got %s", s.sess.Mode())
	}
	if !strings.Contains(s.Title(), "Romaji → Character") {
		t.Fatalf("unexpected title %q", s.Title())
	}
	if got := s.Status(); got != "1 / 5" {
		t.Fatalf("mode change must not reshuffle, got %q", got)
	}
	if !s.panel.sections[sectionOptions].Items[optionRomajiFirst].Checked {
		t.Fatal("expected panel to reflect the mode")
	}
}

func TestStudyScreen_RejectsLastScript(t *testing.T) {
	s := newTestScreen(t, nil)

	_, cmd := s.Update(keyPress('1'))
	if cmd == nil {
		t.Fatal("expected a flash expiry command")
	}
	if s.flash != "Keep at least one script selected." {
		t.Fatalf("unexpected flash %q", s.flash)
	}

	s.Update(flashExpiredMsg{id: s.flashID - 1})
	if s.flash == "" {
		t.Fatal("stale expiry must not clear the notice")
	}
	s.Update(flashExpiredMsg{id: s.flashID})
	if s.flash != "" {
		t.Fatal("expected notice cleared")
	}
}

func TestStudyScreen_CloseCancelsSettle(t *testing.T) {
	s := newTestScreenWithDelay(t, nil, time.Hour)
	press(s, specialKey(tea.KeySpace))

	_, cmd := s.Update(keyPress('n'))
	s.Close()
	if msgs := drain(cmd); len(msgs) != 0 {
		t.Fatalf("expected no messages after close, got %v", msgs)
	}
}
