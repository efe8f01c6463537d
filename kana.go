package kotobadict

import (
	"strings"
)

const (
	katakanaBlockBegin = 'ァ' // U+30A1
	katakanaBlockEnd   = 'ヶ' // U+30F6
	kanaBlockOffset    = 0x60

	hiraganaBegin      = 'ぁ' // U+3041
	hiraganaEnd        = 'ゞ' // U+309E
	prolongedSoundMark = 'ー' // U+30FC
)

// kanaExceptions maps the katakana characters whose hiragana counterpart
// is not at the fixed block offset: the small KA/KE and the voiced
// historical variants. Checked before the block shift.
var kanaExceptions = map[rune]rune{
	'ヵ': 'か',
	'ヶ': 'け',
	'ヷ': 'わ',
	'ヸ': 'ゐ',
	'ヹ': 'ゑ',
	'ヺ': 'を',
	'ヴ': 'ゔ',
}

// ToHiragana converts a single katakana character to its hiragana
// counterpart. Characters outside the katakana block are returned
// unchanged.
func ToHiragana(c rune) rune {
	h, ok := kanaExceptions[c]
	if ok {
		return h
	}
	if c >= katakanaBlockBegin && c <= katakanaBlockEnd {
		return c - kanaBlockOffset
	}
	return c
}

func isReadingRune(c rune) bool {
	return (c >= hiraganaBegin && c <= hiraganaEnd) || c == prolongedSoundMark
}

// NormalizeReading converts a raw reading to hiragana and drops every
// character outside the hiragana block and the prolonged sound mark.
// The empty result means the reading is unusable. Applying
// NormalizeReading to its own output returns the output unchanged.
func NormalizeReading(reading string) string {
	var sb strings.Builder
	for _, c := range reading {
		h := ToHiragana(c)
		if isReadingRune(h) {
			sb.WriteRune(h)
		}
	}
	return sb.String()
}
