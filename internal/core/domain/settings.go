package domain

// StorageBackend selects the dictionary index implementation.
type StorageBackend string

// Available storage backends.
const (
	// StorageSQLite persists dictionaries in a local SQLite database.
	StorageSQLite StorageBackend = "sqlite"

	// StorageMemory keeps dictionaries in memory for the process lifetime.
	StorageMemory StorageBackend = "memory"
)

// IsValid returns true if the backend is recognised.
func (b StorageBackend) IsValid() bool {
	switch b {
	case StorageSQLite, StorageMemory:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (b StorageBackend) String() string {
	return string(b)
}

// LookupSettings holds lookup behaviour configuration.
type LookupSettings struct {
	// MaxLength is the default substring scan span, in runes.
	MaxLength int

	// MaxParallel bounds concurrent index queries per lookup.
	MaxParallel int

	// CacheSize is the number of index queries kept in the LRU cache.
	// Zero disables caching.
	CacheSize int
}

// DeinflectSettings holds deinflector configuration.
type DeinflectSettings struct {
	// StrictChaining only lets a rule follow a step whose output
	// classes intersect the rule's input classes.
	StrictChaining bool
}

// StorageSettings holds dictionary storage configuration.
type StorageSettings struct {
	// Backend selects the index implementation.
	Backend StorageBackend

	// DataDir is the directory holding the SQLite database.
	// Empty means ~/.yomu/data.
	DataDir string
}

// ImportSettings holds dictionary import configuration.
type ImportSettings struct {
	// Processors is the ordered list of record processors to run.
	Processors []string
}

// AppSettings is the complete application configuration.
type AppSettings struct {
	Lookup    LookupSettings
	Deinflect DeinflectSettings
	Storage   StorageSettings
	Import    ImportSettings
}

// DefaultProcessors returns the default import processor chain.
func DefaultProcessors() []string {
	return []string{"reading_fallback", "drop_forms", "dedupe_glossary", "drop_empty"}
}

// DefaultAppSettings returns settings that work out of the box.
func DefaultAppSettings() AppSettings {
	return AppSettings{
		Lookup: LookupSettings{
			MaxLength:   DefaultMaxLength,
			MaxParallel: 8,
			CacheSize:   4096,
		},
		Deinflect: DeinflectSettings{
			StrictChaining: false,
		},
		Storage: StorageSettings{
			Backend: StorageSQLite,
		},
		Import: ImportSettings{
			Processors: DefaultProcessors(),
		},
	}
}
