package kana

import (
	"errors"
	"fmt"
)

var (
	// ErrLastGroup is returned when a toggle would leave no active group.
	ErrLastGroup = errors.New("at least one group must stay selected")

	// ErrLastScript is returned when a toggle would leave no active script.
	ErrLastScript = errors.New("at least one script must stay selected")

	// ErrUnknownGroup is returned for a group identifier not in the dataset.
	ErrUnknownGroup = errors.New("unknown group")
)

// Selection is the set of active groups and scripts plus the study
// direction. Both sets are never empty; toggles that would empty them are
// rejected and leave the selection untouched.
type Selection struct {
	groups  map[string]bool
	scripts map[Script]bool
	mode    Mode
}

// DefaultSelection is the selection a fresh session starts with: vowels,
// hiragana only, character shown first.
func DefaultSelection() Selection {
	sel, _ := NewSelection([]string{"Vowels"}, []Script{Hiragana}, CharFirst)
	return sel
}

// NewSelection builds a selection, validating every group and script.
func NewSelection(groups []string, scripts []Script, mode Mode) (Selection, error) {
	if len(groups) == 0 {
		return Selection{}, ErrLastGroup
	}
	if len(scripts) == 0 {
		return Selection{}, ErrLastScript
	}
	if mode == "" {
		mode = CharFirst
	}
	if _, err := ParseMode(string(mode)); err != nil {
		return Selection{}, err
	}

	sel := Selection{
		groups:  make(map[string]bool, len(groups)),
		scripts: make(map[Script]bool, len(scripts)),
		mode:    mode,
	}
	for _, g := range groups {
		if !IsGroup(g) {
			return Selection{}, fmt.Errorf("%w: %q", ErrUnknownGroup, g)
		}
		sel.groups[g] = true
	}
	for _, s := range scripts {
		if _, err := ParseScript(string(s)); err != nil {
			return Selection{}, err
		}
		sel.scripts[s] = true
	}
	return sel, nil
}

// Groups returns the active groups in dataset order.
func (s Selection) Groups() []string {
	var out []string
	for _, g := range groups {
		if s.groups[g] {
			out = append(out, g)
		}
	}
	return out
}

// Scripts returns the active scripts in display order.
func (s Selection) Scripts() []Script {
	var out []Script
	for _, sc := range Scripts() {
		if s.scripts[sc] {
			out = append(out, sc)
		}
	}
	return out
}

func (s Selection) Mode() Mode { return s.mode }

func (s Selection) HasGroup(g string) bool { return s.groups[g] }

func (s Selection) HasScript(sc Script) bool { return s.scripts[sc] }

// HasDiacritics reports whether any diacritic group is active.
func (s Selection) HasDiacritics() bool {
	for _, g := range diacriticGroups {
		if s.groups[g] {
			return true
		}
	}
	return false
}

// ToggleGroup adds or removes a group. Selections are values; the receiver
// is not modified and the updated selection is returned.
func (s Selection) ToggleGroup(g string) (Selection, error) {
	if !IsGroup(g) {
		return s, fmt.Errorf("%w: %q", ErrUnknownGroup, g)
	}
	next := s.clone()
	if next.groups[g] {
		if len(next.groups) == 1 {
			return s, ErrLastGroup
		}
		delete(next.groups, g)
	} else {
		next.groups[g] = true
	}
	return next, nil
}

// ToggleScript adds or removes a script.
func (s Selection) ToggleScript(sc Script) (Selection, error) {
	if _, err := ParseScript(string(sc)); err != nil {
		return s, err
	}
	next := s.clone()
	if next.scripts[sc] {
		if len(next.scripts) == 1 {
			return s, ErrLastScript
		}
		delete(next.scripts, sc)
	} else {
		next.scripts[sc] = true
	}
	return next, nil
}

// ToggleDiacritics adds all diacritic groups when none are active and
// removes all of them otherwise.
func (s Selection) ToggleDiacritics() (Selection, error) {
	next := s.clone()
	if !s.HasDiacritics() {
		for _, g := range diacriticGroups {
			next.groups[g] = true
		}
		return next, nil
	}
	for _, g := range diacriticGroups {
		delete(next.groups, g)
	}
	if len(next.groups) == 0 {
		return s, ErrLastGroup
	}
	return next, nil
}

// SetMode changes the study direction.
func (s Selection) SetMode(m Mode) (Selection, error) {
	if _, err := ParseMode(string(m)); err != nil {
		return s, err
	}
	next := s.clone()
	next.mode = m
	return next, nil
}

func (s Selection) clone() Selection {
	next := Selection{
		groups:  make(map[string]bool, len(s.groups)),
		scripts: make(map[Script]bool, len(s.scripts)),
		mode:    s.mode,
	}
	for g := range s.groups {
		next.groups[g] = true
	}
	for sc := range s.scripts {
		next.scripts[sc] = true
	}
	return next
}
