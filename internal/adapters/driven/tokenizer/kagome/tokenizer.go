// Package kagome adapts the kagome morphological analyzer to the
// driven.Tokenizer port. It supplies reading hints for lookups.
package kagome

import (
	"fmt"
	"unicode/utf8"

	"github.com/ikawaha/kagome-dict/ipa"
	"github.com/ikawaha/kagome/v2/tokenizer"

	"github.com/custodia-labs/yomu-cli/internal/core/domain"
	"github.com/custodia-labs/yomu-cli/internal/core/ports/driven"
	"github.com/custodia-labs/yomu-cli/internal/kana"
)

// Ensure Tokenizer implements the interface.
var _ driven.Tokenizer = (*Tokenizer)(nil)

// Tokenizer segments text with the IPA dictionary.
type Tokenizer struct {
	t *tokenizer.Tokenizer
}

// New creates a tokenizer backed by the IPA dictionary.
func New() (*Tokenizer, error) {
	t, err := tokenizer.New(ipa.Dict(), tokenizer.OmitBosEos())
	if err != nil {
		return nil, fmt.Errorf("create tokenizer: %w", err)
	}
	return &Tokenizer{t: t}, nil
}

// Tokenize splits text into morphemes with hiragana readings.
// Start and End are rune offsets into text.
func (k *Tokenizer) Tokenize(text string) ([]domain.Token, error) {
	if text == "" {
		return nil, nil
	}

	tokens := k.t.Tokenize(text)
	out := make([]domain.Token, 0, len(tokens))
	for _, tok := range tokens {
		if tok.Class == tokenizer.DUMMY {
			continue
		}

		start := utf8.RuneCountInString(text[:tok.Position])
		out = append(out, domain.Token{
			Surface:  tok.Surface,
			BaseForm: baseForm(tok),
			Reading:  kana.ToHiragana(reading(tok)),
			Start:    start,
			End:      start + utf8.RuneCountInString(tok.Surface),
		})
	}
	return out, nil
}

func baseForm(tok tokenizer.Token) string {
	if base, ok := tok.BaseForm(); ok && base != "*" {
		return base
	}
	return tok.Surface
}

func reading(tok tokenizer.Token) string {
	if r, ok := tok.Reading(); ok && r != "*" {
		return r
	}
	return ""
}
