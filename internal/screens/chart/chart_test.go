package chart

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/kanacards/internal/kana"
)

func TestRender_ListsEveryGroup(t *testing.T) {
	out := Render(nil)
	for _, g := range kana.Groups() {
		if !strings.Contains(out, g) {
			t.Errorf("chart is missing group %q", g)
		}
	}
	for _, want := range []string{"あ a", "ア a", "ぢ ji", "ヲ wo", "ん n"} {
		if !strings.Contains(out, want) {
			t.Errorf("chart is missing %q", want)
		}
	}
}

func TestRender_SingleScript(t *testing.T) {
	out := Render([]kana.Script{kana.Katakana})
	if strings.Contains(out, "あ a") {
		t.Error("katakana chart should not contain hiragana")
	}
	if !strings.Contains(out, "カ ka") {
		t.Error("katakana chart is missing カ")
	}
}

func TestChartScreen_ScrollClamps(t *testing.T) {
	c := New()
	c.View(80, 10)

	c.Update(tea.KeyPressMsg{Code: tea.KeyUp})
	if c.offset != 0 {
		t.Fatalf("expected offset clamped at 0, got %d", c.offset)
	}

	for range 500 {
		c.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	}
	if want := len(c.lines) - 10; c.offset != want {
		t.Fatalf("expected offset clamped at %d, got %d", want, c.offset)
	}

	c.Update(tea.KeyPressMsg{Code: 'g', Text: "g"})
	if c.offset != 0 {
		t.Fatalf("expected home to reset offset, got %d", c.offset)
	}
}
