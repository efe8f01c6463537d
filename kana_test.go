package kotobadict

import (
	"testing"
)

func TestToHiragana(t *testing.T) {
	tests := []struct {
		in       rune
		expected rune
	}{
		{'ア', 'あ'},
		{'ァ', 'ぁ'},
		{'ン', 'ん'},
		{'ヵ', 'か'},
		{'ヶ', 'け'},
		{'ヷ', 'わ'},
		{'ヸ', 'ゐ'},
		{'ヹ', 'ゑ'},
		{'ヺ', 'を'},
		{'ヴ', 'ゔ'},
		{'あ', 'あ'},
		{'ー', 'ー'},
		{'A', 'A'},
		{'東', '東'},
	}
	for _, tt := range tests {
		if got := ToHiragana(tt.in); got != tt.expected {
			t.Errorf("ToHiragana(%q): got %q, expected %q", tt.in, got, tt.expected)
		}
	}
}

func TestNormalizeReading(t *testing.T) {
	tests := []struct {
		in       string
		expected string
	}{
		{"アイ", "あい"},
		{"ヴァイオリン", "ゔぁいおりん"},
		{"ヵ", "か"},
		{"ヶ", "け"},
		{"ヷヸヹヺ", "わゐゑを"},
		{"バイオリン", "ばいおりん"},
		{"がっこう", "がっこう"},
		{"トーキョー", "とーきょー"},
		{"Tokyo東京", ""},
		{"あい(漢字)", "あい"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := NormalizeReading(tt.in); got != tt.expected {
			t.Errorf("NormalizeReading(%q): got %q, expected %q", tt.in, got, tt.expected)
		}
	}
}

func TestNormalizeReadingIdempotent(t *testing.T) {
	inputs := []string{
		"アイ",
		"ヴァイオリン",
		"ヵヶヷヸヹヺ",
		"がっこう",
		"Tokyo東京あい",
		"トーキョー",
	}
	for _, in := range inputs {
		once := NormalizeReading(in)
		twice := NormalizeReading(once)
		if once != twice {
			t.Errorf("NormalizeReading(%q) is not idempotent: %q != %q", in, once, twice)
		}
	}
}

func TestNormalizeReadingAlphabet(t *testing.T) {
	inputs := []string{
		"アイウエオヴヵヶ",
		"ひらがなとカタカナmixed123",
		"ヷヸヹヺー・、。「」",
		"漢字ノ読ミ",
	}
	for _, in := range inputs {
		for _, c := range NormalizeReading(in) {
			if (c < 'ぁ' || c > 'ゞ') && c != 'ー' {
				t.Errorf("NormalizeReading(%q) emitted %q outside the reading alphabet", in, c)
			}
		}
	}
}
