package kana

import "sync"

var groups = []string{
	"Vowels",
	"K-series",
	"S-series",
	"T-series",
	"N-series",
	"H-series",
	"M-series",
	"Y-series",
	"R-series",
	"W-series",
	"G-series",
	"Z-series",
	"D-series",
	"B-series",
	"P-series",
}

// diacriticGroups are the voiced and semi-voiced series toggled together.
var diacriticGroups = []string{
	"G-series",
	"Z-series",
	"D-series",
	"B-series",
	"P-series",
}

var hiraganaByGroup = map[string][]string{
	"Vowels":   {"あ", "い", "う", "え", "お"},
	"K-series": {"か", "き", "く", "け", "こ"},
	"S-series": {"さ", "し", "す", "せ", "そ"},
	"T-series": {"た", "ち", "つ", "て", "と"},
	"N-series": {"な", "に", "ぬ", "ね", "の"},
	"H-series": {"は", "ひ", "ふ", "へ", "ほ"},
	"M-series": {"ま", "み", "む", "め", "も"},
	"Y-series": {"や", "ゆ", "よ"},
	"R-series": {"ら", "り", "る", "れ", "ろ"},
	"W-series": {"わ", "を", "ん"},
	"G-series": {"が", "ぎ", "ぐ", "げ", "ご"},
	"Z-series": {"ざ", "じ", "ず", "ぜ", "ぞ"},
	"D-series": {"だ", "ぢ", "づ", "で", "ど"},
	"B-series": {"ば", "び", "ぶ", "べ", "ぼ"},
	"P-series": {"ぱ", "ぴ", "ぷ", "ぺ", "ぽ"},
}

var katakanaByGroup = map[string][]string{
	"Vowels":   {"ア", "イ", "ウ", "エ", "オ"},
	"K-series": {"カ", "キ", "ク", "ケ", "コ"},
	"S-series": {"サ", "シ", "ス", "セ", "ソ"},
	"T-series": {"タ", "チ", "ツ", "テ", "ト"},
	"N-series": {"ナ", "ニ", "ヌ", "ネ", "ノ"},
	"H-series": {"ハ", "ヒ", "フ", "ヘ", "ホ"},
	"M-series": {"マ", "ミ", "ム", "メ", "モ"},
	"Y-series": {"ヤ", "ユ", "ヨ"},
	"R-series": {"ラ", "リ", "ル", "レ", "ロ"},
	"W-series": {"ワ", "ヲ", "ン"},
	"G-series": {"ガ", "ギ", "グ", "ゲ", "ゴ"},
	"Z-series": {"ザ", "ジ", "ズ", "ゼ", "ゾ"},
	"D-series": {"ダ", "ヂ", "ヅ", "デ", "ド"},
	"B-series": {"バ", "ビ", "ブ", "ベ", "ボ"},
	"P-series": {"パ", "ピ", "プ", "ペ", "ポ"},
}

// readings are shared by both scripts: index i of a group's row in one
// script reads the same as index i in the other.
var readings = map[string][]string{
	"Vowels":   {"a", "i", "u", "e", "o"},
	"K-series": {"ka", "ki", "ku", "ke", "ko"},
	"S-series": {"sa", "shi", "su", "se", "so"},
	"T-series": {"ta", "chi", "tsu", "te", "to"},
	"N-series": {"na", "ni", "nu", "ne", "no"},
	"H-series": {"ha", "hi", "fu", "he", "ho"},
	"M-series": {"ma", "mi", "mu", "me", "mo"},
	"Y-series": {"ya", "yu", "yo"},
	"R-series": {"ra", "ri", "ru", "re", "ro"},
	"W-series": {"wa", "wo", "n"},
	"G-series": {"ga", "gi", "gu", "ge", "go"},
	"Z-series": {"za", "ji", "zu", "ze", "zo"},
	"D-series": {"da", "ji", "zu", "de", "do"},
	"B-series": {"ba", "bi", "bu", "be", "bo"},
	"P-series": {"pa", "pi", "pu", "pe", "po"},
}

var (
	buildOnce sync.Once
	allItems  []Item
)

// All returns every kana item: all hiragana in group order, then all
// katakana. The table is built once per process; callers get their own copy.
func All() []Item {
	buildOnce.Do(func() {
		allItems = buildItems()
	})
	out := make([]Item, len(allItems))
	copy(out, allItems)
	return out
}

func buildItems() []Item {
	var items []Item
	for _, sc := range []struct {
		script Script
		rows   map[string][]string
	}{
		{Hiragana, hiraganaByGroup},
		{Katakana, katakanaByGroup},
	} {
		for _, g := range groups {
			for i, glyph := range sc.rows[g] {
				reading := "?"
				if r := readings[g]; i < len(r) {
					reading = r[i]
				}
				items = append(items, Item{
					Glyph:  glyph,
					Romaji: reading,
					Group:  g,
					Script: sc.script,
				})
			}
		}
	}
	return items
}

// Groups returns the valid group identifiers in display order.
func Groups() []string {
	out := make([]string, len(groups))
	copy(out, groups)
	return out
}

// DiacriticGroups returns the voiced/semi-voiced groups.
func DiacriticGroups() []string {
	out := make([]string, len(diacriticGroups))
	copy(out, diacriticGroups)
	return out
}

// IsGroup reports whether name is a known group identifier.
func IsGroup(name string) bool {
	_, ok := readings[name]
	return ok
}

// IsDiacritic reports whether the group is one of the diacritic series.
func IsDiacritic(name string) bool {
	for _, g := range diacriticGroups {
		if g == name {
			return true
		}
	}
	return false
}

// Lookup finds the dataset item for a glyph.
func Lookup(glyph string) (Item, bool) {
	for _, it := range All() {
		if it.Glyph == glyph {
			return it, true
		}
	}
	return Item{}, false
}
