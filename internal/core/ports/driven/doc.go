// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
// These must be provided for the application to function:
//
//   - DictionaryIndex: Term/reading lookup over indexed dictionary entries
//   - DictionaryStore: Dictionary persistence (SQLite or in-memory)
//   - TermBankReader: Parses dictionary archives for import
//   - RecordProcessor: One step of the import record pipeline
//   - ConfigStore: Application configuration
//
// # Optional Interfaces
//
// These can be nil - the application degrades gracefully:
//
//   - Tokenizer: Supplies reading hints. Without it, lookups only use
//     explicitly passed hints.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter package
package driven
