// Package mcp provides an MCP (Model Context Protocol) server adapter for yomu.
// It lets AI assistants deinflect Japanese words and look them up in the
// locally imported dictionaries.
package mcp

import "errors"

// ErrMissingLookupService is returned when the lookup service is not provided.
var ErrMissingLookupService = errors.New("mcp: lookup service is required")
