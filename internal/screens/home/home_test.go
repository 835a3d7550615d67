package home

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/kanacards/internal/router"
	studyscreen "github.com/abhisek/kanacards/internal/screens/study"
	"github.com/abhisek/kanacards/internal/study"
)

func TestHome_StartPushesStudyScreen(t *testing.T) {
	h := New(Options{})

	_, cmd := h.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a command from START STUDYING")
	}
	push, ok := cmd().(router.PushScreenMsg)
	if !ok {
		t.Fatalf("expected PushScreenMsg, got %T", cmd())
	}
	s, ok := push.Screen.(*studyscreen.StudyScreen)
	if !ok {
		t.Fatalf("expected study screen, got %T", push.Screen)
	}
	s.Close()
}

func TestHome_ExitQuits(t *testing.T) {
	h := New(Options{})
	h.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	h.Update(tea.KeyPressMsg{Code: tea.KeyDown})

	_, cmd := h.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatal("expected tea.QuitMsg")
	}
}

func TestHome_ViewShowsStats(t *testing.T) {
	h := New(Options{AIStatus: "gemini-2.5-flash"})
	view := h.View(100, 34)

	for _, want := range []string{"5 CARDS", "AI gemini-2.5-flash", "START STUDYING", "VIEW CHARTS"} {
		if !strings.Contains(view, want) {
			t.Errorf("expected %q in view", want)
		}
	}

	off := New(Options{Study: study.Options{}})
	if !strings.Contains(off.View(100, 34), "AI mnemonics off") {
		t.Error("expected AI off notice")
	}
}
