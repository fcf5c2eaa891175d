// Package domain defines the core business entities for yomu.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - GrammarClass: Closed set of conjugation classes (v1, v5, vs, vk, adj-i)
//   - DeinflectionRule: One suffix rewrite of the static rule table
//   - DeinflectionCandidate: A possible base form with its derivation chain
//   - DictionaryEntry: An indexed dictionary record (term, reading, glosses)
//   - LookupResult: A ranked, flattened answer to a lookup
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
