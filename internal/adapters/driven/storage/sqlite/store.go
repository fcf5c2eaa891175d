package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/vmihailenco/msgpack/v5"
	_ "modernc.org/sqlite" // SQLite driver

	"github.com/custodia-labs/yomu-cli/internal/adapters/driven/storage/sqlite/migrations"
	"github.com/custodia-labs/yomu-cli/internal/core/domain"
	"github.com/custodia-labs/yomu-cli/internal/core/ports/driven"
)

// DatabaseName is the file name of the dictionary database.
const DatabaseName = "dictionary.db"

// Store is the SQLite-based dictionary storage.
type Store struct {
	db   *sql.DB
	path string
}

// NewStore creates a new SQLite store at the specified data directory.
// If dataDir is empty, defaults to ~/.yomu/data/dictionary.db.
func NewStore(dataDir string) (*Store, error) {
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, ".yomu", "data")
	}

	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	dbPath := filepath.Join(dataDir, DatabaseName)

	// WAL for concurrent readers; pragmas apply to every pooled connection.
	dsn := dbPath + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=foreign_keys(1)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{
		db:   db,
		path: dbPath,
	}

	if err := s.migrate(migrations.FS); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// DictionaryStore returns a DictionaryStore interface backed by this store.
func (s *Store) DictionaryStore() driven.DictionaryStore {
	return &dictionaryStore{store: s}
}

// migrate runs all pending migrations, recording each applied version.
func (s *Store) migrate(fsys fs.FS) error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY,
			applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("creating schema_migrations table: %w", err)
	}

	var currentVersion int
	row := s.db.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_migrations")
	if err := row.Scan(&currentVersion); err != nil {
		return fmt.Errorf("getting current version: %w", err)
	}

	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return fmt.Errorf("reading migrations directory: %w", err)
	}

	var upFiles []string
	for _, entry := range entries {
		if name := entry.Name(); strings.HasSuffix(name, ".up.sql") {
			upFiles = append(upFiles, name)
		}
	}
	sort.Strings(upFiles)

	for _, name := range upFiles {
		// "001_initial.up.sql" -> 1
		var version int
		if _, err := fmt.Sscanf(name, "%d_", &version); err != nil {
			continue
		}
		if version <= currentVersion {
			continue
		}

		content, err := fs.ReadFile(fsys, name)
		if err != nil {
			return fmt.Errorf("reading migration %s: %w", name, err)
		}
		if err := s.apply(version, string(content)); err != nil {
			return fmt.Errorf("executing migration %s: %w", name, err)
		}
	}

	return nil
}

// apply runs one migration and records its version atomically.
func (s *Store) apply(version int, script string) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback() //nolint:errcheck

	if _, err := tx.Exec(script); err != nil {
		return err
	}
	if _, err := tx.Exec("INSERT INTO schema_migrations (version) VALUES (?)", version); err != nil {
		return err
	}
	return tx.Commit()
}

// ==================== Dictionary Store ====================

// dictionaryStore implements driven.DictionaryStore.
type dictionaryStore struct {
	store *Store
}

var _ driven.DictionaryStore = (*dictionaryStore)(nil)

// LookupByTermOrReading returns entries whose term or reading equals text,
// deduplicated by sequence and sorted by descending score.
func (s *dictionaryStore) LookupByTermOrReading(ctx context.Context, text string) ([]domain.DictionaryEntry, error) {
	if text == "" {
		return []domain.DictionaryEntry{}, nil
	}

	rows, err := s.store.db.QueryContext(ctx, `
		SELECT dictionary_id, sequence, term, reading, tags, rules, score, definitions
		FROM entries
		WHERE term = ? OR reading = ?
		ORDER BY score DESC, id ASC
	`, text, text)
	if err != nil {
		return nil, fmt.Errorf("querying entries: %w", err)
	}
	defer rows.Close()

	seen := make(map[int64]bool)
	entries := make([]domain.DictionaryEntry, 0)
	for rows.Next() {
		entry, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		if seen[entry.Sequence] {
			continue
		}
		seen[entry.Sequence] = true
		entries = append(entries, *entry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating entries: %w", err)
	}

	return entries, nil
}

// SaveDictionary stores or updates dictionary metadata.
func (s *dictionaryStore) SaveDictionary(ctx context.Context, dict domain.Dictionary) error {
	if dict.ID == "" {
		return fmt.Errorf("%w: dictionary id is empty", domain.ErrInvalidInput)
	}
	if dict.ImportedAt.IsZero() {
		dict.ImportedAt = time.Now()
	}

	_, err := s.store.db.ExecContext(ctx, `
		INSERT INTO dictionaries (id, title, revision, format, entry_count, imported_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			title = excluded.title,
			revision = excluded.revision,
			format = excluded.format,
			entry_count = excluded.entry_count,
			imported_at = excluded.imported_at
	`, dict.ID, dict.Title, dict.Revision, dict.Format, dict.EntryCount, dict.ImportedAt.UTC())

	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed") {
			return fmt.Errorf("saving dictionary %s: %w", dict.Title, domain.ErrAlreadyExists)
		}
		return fmt.Errorf("saving dictionary: %w", err)
	}
	return nil
}

// SaveEntries stores entries for a dictionary in a single transaction.
func (s *dictionaryStore) SaveEntries(ctx context.Context, dictionaryID string, entries []domain.DictionaryEntry) error {
	tx, err := s.store.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	var exists int
	err = tx.QueryRowContext(ctx, "SELECT COUNT(*) FROM dictionaries WHERE id = ?", dictionaryID).Scan(&exists)
	if err != nil {
		return fmt.Errorf("checking dictionary: %w", err)
	}
	if exists == 0 {
		return fmt.Errorf("dictionary %s: %w", dictionaryID, domain.ErrNotFound)
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO entries (dictionary_id, sequence, term, reading, tags, rules, score, definitions)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("preparing statement: %w", err)
	}
	defer stmt.Close()

	for i := range entries {
		entry := &entries[i]
		blob, err := msgpack.Marshal(entry.Definitions)
		if err != nil {
			return fmt.Errorf("encoding definitions for %s: %w", entry.Term, err)
		}

		if _, err := stmt.ExecContext(ctx, dictionaryID, entry.Sequence, entry.Term, entry.Reading,
			entry.Tags, entry.Rules, entry.Score, blob); err != nil {
			return fmt.Errorf("saving entry %s: %w", entry.Term, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}
	return nil
}

// GetDictionary retrieves dictionary metadata by ID.
func (s *dictionaryStore) GetDictionary(ctx context.Context, id string) (*domain.Dictionary, error) {
	row := s.store.db.QueryRowContext(ctx, `
		SELECT id, title, revision, format, entry_count, imported_at
		FROM dictionaries WHERE id = ?
	`, id)

	var dict domain.Dictionary
	if err := row.Scan(&dict.ID, &dict.Title, &dict.Revision, &dict.Format,
		&dict.EntryCount, &dict.ImportedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("scanning dictionary: %w", err)
	}
	return &dict, nil
}

// ListDictionaries returns all dictionaries ordered by import time.
func (s *dictionaryStore) ListDictionaries(ctx context.Context) ([]domain.Dictionary, error) {
	rows, err := s.store.db.QueryContext(ctx, `
		SELECT id, title, revision, format, entry_count, imported_at
		FROM dictionaries
		ORDER BY imported_at, id
	`)
	if err != nil {
		return nil, fmt.Errorf("querying dictionaries: %w", err)
	}
	defer rows.Close()

	dicts := make([]domain.Dictionary, 0)
	for rows.Next() {
		var dict domain.Dictionary
		if err := rows.Scan(&dict.ID, &dict.Title, &dict.Revision, &dict.Format,
			&dict.EntryCount, &dict.ImportedAt); err != nil {
			return nil, fmt.Errorf("scanning dictionary: %w", err)
		}
		dicts = append(dicts, dict)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating dictionaries: %w", err)
	}

	return dicts, nil
}

// DeleteDictionary removes a dictionary and all of its entries.
func (s *dictionaryStore) DeleteDictionary(ctx context.Context, id string) error {
	tx, err := s.store.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	if _, err := tx.ExecContext(ctx, "DELETE FROM entries WHERE dictionary_id = ?", id); err != nil {
		return fmt.Errorf("deleting entries: %w", err)
	}

	res, err := tx.ExecContext(ctx, "DELETE FROM dictionaries WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("deleting dictionary: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return domain.ErrNotFound
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}
	return nil
}

// scanEntry scans an entry row and decodes its definitions.
func scanEntry(rows *sql.Rows) (*domain.DictionaryEntry, error) {
	var entry domain.DictionaryEntry
	var blob []byte

	if err := rows.Scan(&entry.DictionaryID, &entry.Sequence, &entry.Term, &entry.Reading,
		&entry.Tags, &entry.Rules, &entry.Score, &blob); err != nil {
		return nil, fmt.Errorf("scanning entry: %w", err)
	}

	if len(blob) > 0 {
		if err := msgpack.Unmarshal(blob, &entry.Definitions); err != nil {
			return nil, fmt.Errorf("decoding definitions for %s: %w", entry.Term, err)
		}
	}

	return &entry, nil
}
