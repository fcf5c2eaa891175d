package driven

import (
	"context"

	"github.com/custodia-labs/yomu-cli/internal/core/domain"
)

// DictionaryIndex is the read side of the dictionary storage.
// It is the only operation the lookup engine requires.
type DictionaryIndex interface {
	// LookupByTermOrReading returns every entry whose term or reading equals
	// text, deduplicated by sequence and sorted by descending score.
	// No match returns an empty slice and a nil error.
	LookupByTermOrReading(ctx context.Context, text string) ([]domain.DictionaryEntry, error)
}

// DictionaryStore persists imported dictionaries and their entries.
// Backed by SQLite, or by an in-memory trie for tests and ephemeral use.
type DictionaryStore interface {
	DictionaryIndex

	// SaveDictionary stores or updates dictionary metadata.
	SaveDictionary(ctx context.Context, dict domain.Dictionary) error

	// SaveEntries stores entries for a dictionary.
	SaveEntries(ctx context.Context, dictionaryID string, entries []domain.DictionaryEntry) error

	// GetDictionary retrieves dictionary metadata by ID.
	GetDictionary(ctx context.Context, id string) (*domain.Dictionary, error)

	// ListDictionaries returns all imported dictionaries.
	ListDictionaries(ctx context.Context) ([]domain.Dictionary, error)

	// DeleteDictionary removes a dictionary and all of its entries.
	DeleteDictionary(ctx context.Context, id string) error
}
