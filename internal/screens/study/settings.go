package study

import (
	"strings"

	"github.com/abhisek/kanacards/internal/kana"
	core "github.com/abhisek/kanacards/internal/study"
	"github.com/abhisek/kanacards/internal/ui/components"
)

const (
	sectionGroups = iota
	sectionScripts
	sectionOptions
	sectionCount
)

const (
	optionRomajiFirst = iota
	optionDiacritics
)

// settingsPanel is the inline selection editor.
type settingsPanel struct {
	open     bool
	focus    int
	sections [sectionCount]components.Checklist
	groups   []string
}

func newSettingsPanel() settingsPanel {
	groups := kana.Groups()
	samples := groupSamples()

	items := make([]components.CheckItem, len(groups))
	for i, g := range groups {
		items[i] = components.CheckItem{Label: g, Detail: samples[g]}
	}

	p := settingsPanel{groups: groups}
	p.sections[sectionGroups] = components.NewChecklist("Groups", items)
	p.sections[sectionScripts] = components.NewChecklist("Scripts", []components.CheckItem{
		{Label: "Hiragana"},
		{Label: "Katakana"},
	})
	p.sections[sectionOptions] = components.NewChecklist("Options", []components.CheckItem{
		{Label: "Romaji first"},
		{Label: "All diacritics", Detail: strings.Join(kana.DiacriticGroups(), " ")},
	})
	return p
}

// groupSamples returns the hiragana of each group, e.g. "かきくけこ".
func groupSamples() map[string]string {
	out := make(map[string]string)
	for _, it := range kana.All() {
		if it.Script == kana.Hiragana {
			out[it.Group] += it.Glyph
		}
	}
	return out
}

// sync copies the session's selection into the check marks.
func (p *settingsPanel) sync(sel kana.Selection) {
	for i, g := range p.groups {
		p.sections[sectionGroups].Items[i].Checked = sel.HasGroup(g)
	}
	p.sections[sectionScripts].Items[0].Checked = sel.HasScript(kana.Hiragana)
	p.sections[sectionScripts].Items[1].Checked = sel.HasScript(kana.Katakana)
	p.sections[sectionOptions].Items[optionRomajiFirst].Checked = sel.Mode() == kana.RomajiFirst
	p.sections[sectionOptions].Items[optionDiacritics].Checked = sel.HasDiacritics()
}

func (p *settingsPanel) cycle(delta int) {
	p.focus = (p.focus + delta + sectionCount) % sectionCount
}

// toggle applies the row under the cursor to the session.
func (p *settingsPanel) toggle(sess *core.Session) (core.Effects, error) {
	cursor := p.sections[p.focus].Cursor
	switch p.focus {
	case sectionGroups:
		return sess.ToggleGroup(p.groups[cursor])
	case sectionScripts:
		return sess.ToggleScript(kana.Scripts()[cursor])
	}
	if cursor == optionRomajiFirst {
		return sess.SetMode(flipMode(sess.Mode()))
	}
	return sess.ToggleDiacritics()
}

func flipMode(m kana.Mode) kana.Mode {
	if m == kana.RomajiFirst {
		return kana.CharFirst
	}
	return kana.RomajiFirst
}
