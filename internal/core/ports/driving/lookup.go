package driving

import (
	"context"

	"github.com/custodia-labs/yomu-cli/internal/core/domain"
)

// LookupService resolves clicked or typed Japanese words against the
// imported dictionaries.
type LookupService interface {
	// Deinflect returns every dictionary-form candidate reachable from word,
	// the original word first.
	Deinflect(word string) []domain.DeinflectionCandidate

	// LookupWord returns ranked dictionary results for a single word.
	// No match returns an empty slice, never an error.
	LookupWord(ctx context.Context, word string, opts domain.LookupOptions) ([]domain.LookupResult, error)

	// LookupWordBest returns the top ranked result, or nil when nothing matches.
	LookupWordBest(ctx context.Context, word string, opts domain.LookupOptions) (*domain.LookupResult, error)

	// LookupWordWithSubstrings performs longest-match lookup over text
	// starting at the rune offset start.
	LookupWordWithSubstrings(ctx context.Context, text string, start int, opts domain.LookupOptions) ([]domain.LookupResult, error)

	// ReadingHintAt returns the hiragana reading of the token covering the
	// rune offset start, or "" when no tokenizer is configured.
	ReadingHintAt(ctx context.Context, text string, start int) (string, error)
}
