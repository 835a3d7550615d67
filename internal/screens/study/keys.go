package study

import "charm.land/bubbles/v2/key"

type keyMap struct {
	Flip        key.Binding
	Next        key.Binding
	Settings    key.Binding
	Mode        key.Binding
	Diacritics  key.Binding
	Hiragana    key.Binding
	Katakana    key.Binding
	Toggle      key.Binding
	NextSection key.Binding
	PrevSection key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Flip: key.NewBinding(
			key.WithKeys("space", "enter", "f"),
			key.WithHelp("Space", "Flip"),
		),
		Next: key.NewBinding(
			key.WithKeys("n", "right", "l"),
			key.WithHelp("N", "Next"),
		),
		Settings: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("S", "Settings"),
		),
		Mode: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("M", "Direction"),
		),
		Diacritics: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("D", "Diacritics"),
		),
		Hiragana: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "Hiragana"),
		),
		Katakana: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", "Katakana"),
		),
		Toggle: key.NewBinding(
			key.WithKeys("space", "enter", "x"),
			key.WithHelp("Space", "Toggle"),
		),
		NextSection: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("Tab", "Section"),
		),
		PrevSection: key.NewBinding(
			key.WithKeys("shift+tab"),
		),
	}
}
