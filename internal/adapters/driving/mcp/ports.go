package mcp

import (
	"github.com/custodia-labs/yomu-cli/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Lookup provides deinflection and dictionary lookups.
	Lookup driving.LookupService

	// Dictionary lists imported dictionaries.
	Dictionary driving.DictionaryService
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.Lookup == nil {
		return ErrMissingLookupService
	}
	// Dictionary is optional; without it the dictionaries resource is empty.
	return nil
}
