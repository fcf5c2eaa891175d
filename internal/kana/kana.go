// Package kana provides Japanese script normalisation used by lookups.
package kana

import (
	"strings"

	"golang.org/x/text/unicode/norm"
	"golang.org/x/text/width"
)

const (
	katakanaStart = 'ァ' // U+30A1
	katakanaEnd   = 'ヶ' // U+30F6
	kanaOffset    = 'ァ' - 'ぁ'
)

// ToHiragana converts katakana to hiragana. Text is width-folded and
// NFC-composed first, so half-width katakana (including voiced marks)
// converts too. Other characters, including the long vowel mark, pass
// through unchanged.
func ToHiragana(s string) string {
	if s == "" {
		return s
	}
	s = norm.NFC.String(width.Fold.String(s))
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r >= katakanaStart && r <= katakanaEnd {
			r -= kanaOffset
		}
		b.WriteRune(r)
	}
	return b.String()
}

// IsKatakana reports whether r is a full-width katakana letter.
func IsKatakana(r rune) bool {
	return r >= katakanaStart && r <= katakanaEnd
}

// IsHiragana reports whether r is a hiragana letter.
func IsHiragana(r rune) bool {
	return r >= 'ぁ' && r <= 'ゖ'
}

// sentenceTerminators end a sentence; a single word never spans one.
const sentenceTerminators = "。｡！？．!?\n\r"

// HasSentenceTerminator reports whether s contains a sentence-ending
// punctuation mark or a line break.
func HasSentenceTerminator(s string) bool {
	return strings.ContainsAny(s, sentenceTerminators)
}
