package driving

import (
	"context"

	"github.com/custodia-labs/yomu-cli/internal/core/domain"
)

// DictionaryService manages imported dictionaries.
type DictionaryService interface {
	// Import reads a term-bank archive, runs the import pipeline and stores
	// the resulting entries.
	Import(ctx context.Context, path string) (*domain.Dictionary, error)

	// List returns all imported dictionaries.
	List(ctx context.Context) ([]domain.Dictionary, error)

	// Get retrieves a dictionary by ID.
	Get(ctx context.Context, id string) (*domain.Dictionary, error)

	// Remove deletes a dictionary and its entries.
	Remove(ctx context.Context, id string) error
}
