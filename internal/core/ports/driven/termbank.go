package driven

import (
	"context"

	"github.com/custodia-labs/yomu-cli/internal/core/domain"
)

// TermBankReader parses a distributed dictionary archive.
// Implementations accept a .zip archive or an unpacked directory.
type TermBankReader interface {
	// Read parses the archive at path. Glossary text is already extracted
	// from structured content; no records are filtered.
	Read(ctx context.Context, path string) (*domain.TermBank, error)
}
