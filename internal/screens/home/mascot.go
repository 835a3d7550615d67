package home

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/kanacards/internal/ui/theme"
)

// MascotVariant selects which mascot art to display.
type MascotVariant int

const (
	MascotIdle   MascotVariant = iota // AI mnemonics available
	MascotSleepy                      // No provider configured
)

const mascotIdle = `┌─────┐
│ ◉ ◉ │
│  ▽  │
│あ ア│
└─────┘`

const mascotSleepy = `┌─────┐
│ - - │ z
│  ▿  │
│あ ア│
└─────┘`

// RenderMascot returns the mascot art for the given variant.
func RenderMascot(v MascotVariant) string {
	art := mascotIdle
	fg := theme.Primary
	if v == MascotSleepy {
		art = mascotSleepy
		fg = theme.TextDim
	}
	return lipgloss.NewStyle().
		Foreground(fg).
		Render(art)
}
