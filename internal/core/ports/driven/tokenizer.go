package driven

import "github.com/custodia-labs/yomu-cli/internal/core/domain"

// Tokenizer segments text into morphemes with readings.
// It is an external collaborator; lookups only use it for reading hints.
type Tokenizer interface {
	// Tokenize splits text into tokens. Readings are hiragana.
	Tokenize(text string) ([]domain.Token, error)
}
