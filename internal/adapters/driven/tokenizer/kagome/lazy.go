package kagome

import (
	"sync"

	"github.com/custodia-labs/yomu-cli/internal/core/domain"
	"github.com/custodia-labs/yomu-cli/internal/core/ports/driven"
	"github.com/custodia-labs/yomu-cli/internal/logger"
)

// Ensure Lazy implements the interface.
var _ driven.Tokenizer = (*Lazy)(nil)

// Lazy defers loading the IPA dictionary until the first Tokenize call.
// If loading fails, reading hints stay disabled and Tokenize returns no
// tokens.
type Lazy struct {
	load func() (*Tokenizer, error)

	once sync.Once
	tok  *Tokenizer
}

// NewLazy returns a tokenizer that loads on first use.
func NewLazy() *Lazy {
	return &Lazy{load: New}
}

// Tokenize loads the dictionary if needed and delegates to Tokenizer.
func (l *Lazy) Tokenize(text string) ([]domain.Token, error) {
	l.once.Do(func() {
		tok, err := l.load()
		if err != nil {
			logger.Warn("Tokenizer unavailable, reading hints disabled: %v", err)
			return
		}
		l.tok = tok
	})
	if l.tok == nil {
		return nil, nil
	}
	return l.tok.Tokenize(text)
}
