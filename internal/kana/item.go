// Package kana holds the static kana dataset and the selection rules that
// derive a study pool from it.
package kana

import "fmt"

// Script is one of the two kana syllabaries.
type Script string

const (
	Hiragana Script = "hiragana"
	Katakana Script = "katakana"
)

// Scripts lists every script in display order.
func Scripts() []Script {
	return []Script{Hiragana, Katakana}
}

// ParseScript converts a user-supplied name into a Script.
func ParseScript(s string) (Script, error) {
	switch Script(s) {
	case Hiragana, Katakana:
		return Script(s), nil
	}
	return "", fmt.Errorf("unknown script %q (want hiragana or katakana)", s)
}

// Mode selects which face of the card is shown first.
type Mode string

const (
	CharFirst   Mode = "char-first"
	RomajiFirst Mode = "romaji-first"
)

// ParseMode converts a user-supplied name into a Mode.
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case CharFirst, RomajiFirst:
		return Mode(s), nil
	}
	return "", fmt.Errorf("unknown study mode %q (want char-first or romaji-first)", s)
}

// Label returns the human-readable direction, e.g. "Character → Romaji".
func (m Mode) Label() string {
	if m == RomajiFirst {
		return "Romaji → Character"
	}
	return "Character → Romaji"
}

// Item is a single kana card. Items are compared with ==; two items are the
// same card when glyph, reading, group and script all match.
type Item struct {
	Glyph  string
	Romaji string
	Group  string
	Script Script
}

// Prompt returns the text shown on the question face for the given mode.
func (it Item) Prompt(m Mode) string {
	if m == RomajiFirst {
		return it.Romaji
	}
	return it.Glyph
}

// Answer returns the text shown on the answer face for the given mode.
func (it Item) Answer(m Mode) string {
	if m == RomajiFirst {
		return it.Glyph
	}
	return it.Romaji
}

func (it Item) String() string {
	return fmt.Sprintf("%s (%s, %s, %s)", it.Glyph, it.Romaji, it.Group, it.Script)
}
