package services

import (
	"context"
	"fmt"
	"hash/fnv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/custodia-labs/yomu-cli/internal/core/domain"
	"github.com/custodia-labs/yomu-cli/internal/core/ports/driven"
	"github.com/custodia-labs/yomu-cli/internal/core/ports/driving"
	"github.com/custodia-labs/yomu-cli/internal/logger"
)

// Ensure DictionaryService implements the interface.
var _ driving.DictionaryService = (*DictionaryService)(nil)

// DictionaryService imports and manages dictionaries.
type DictionaryService struct {
	store    driven.DictionaryStore
	reader   driven.TermBankReader
	pipeline driven.RecordPipeline
}

// NewDictionaryService creates a new dictionary service.
// The pipeline parameter is optional (can be nil).
func NewDictionaryService(
	store driven.DictionaryStore,
	reader driven.TermBankReader,
	pipeline driven.RecordPipeline,
) *DictionaryService {
	return &DictionaryService{
		store:    store,
		reader:   reader,
		pipeline: pipeline,
	}
}

// Import reads the archive at path, runs the record pipeline and stores
// the grouped entries under a new dictionary ID.
func (s *DictionaryService) Import(ctx context.Context, path string) (*domain.Dictionary, error) {
	logger.Section("Dictionary Import")
	logger.Debug("Path: %s", path)

	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("%w: empty path", domain.ErrInvalidInput)
	}

	bank, err := s.reader.Read(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("read term bank: %w", err)
	}
	logger.Info("Read %q rev %s: %d records", bank.Info.Title, bank.Info.Revision, len(bank.Records))

	if err := s.ensureNew(ctx, bank.Info); err != nil {
		return nil, err
	}

	records := bank.Records
	if s.pipeline != nil {
		records, err = s.pipeline.Process(ctx, records)
		if err != nil {
			return nil, fmt.Errorf("process records: %w", err)
		}
	}

	dict := bank.Info
	dict.ID = uuid.NewString()
	dict.ImportedAt = time.Now()

	entries := GroupRecords(dict.ID, records)
	dict.EntryCount = len(entries)
	logger.Debug("Grouped %d records into %d entries", len(records), len(entries))

	if err := s.store.SaveDictionary(ctx, dict); err != nil {
		return nil, fmt.Errorf("save dictionary: %w", err)
	}
	if err := s.store.SaveEntries(ctx, dict.ID, entries); err != nil {
		if delErr := s.store.DeleteDictionary(ctx, dict.ID); delErr != nil {
			logger.Warn("Cleanup after failed import: %v", delErr)
		}
		return nil, fmt.Errorf("save entries: %w", err)
	}

	logger.Info("Imported %s as %s", dict.Title, dict.ID)
	return &dict, nil
}

// List returns all imported dictionaries.
func (s *DictionaryService) List(ctx context.Context) ([]domain.Dictionary, error) {
	dicts, err := s.store.ListDictionaries(ctx)
	if err != nil {
		return nil, fmt.Errorf("list dictionaries: %w", err)
	}
	return dicts, nil
}

// Get retrieves a dictionary by ID.
func (s *DictionaryService) Get(ctx context.Context, id string) (*domain.Dictionary, error) {
	if id == "" {
		return nil, fmt.Errorf("%w: empty dictionary id", domain.ErrInvalidInput)
	}
	return s.store.GetDictionary(ctx, id)
}

// Remove deletes a dictionary and its entries.
func (s *DictionaryService) Remove(ctx context.Context, id string) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	if err := s.store.DeleteDictionary(ctx, id); err != nil {
		return fmt.Errorf("delete dictionary: %w", err)
	}
	return nil
}

// ensureNew rejects a second import of the same title and revision.
func (s *DictionaryService) ensureNew(ctx context.Context, info domain.Dictionary) error {
	existing, err := s.store.ListDictionaries(ctx)
	if err != nil {
		return fmt.Errorf("list dictionaries: %w", err)
	}
	for _, d := range existing {
		if d.Title == info.Title && d.Revision == info.Revision {
			return fmt.Errorf("%w: %s (rev %s) is %s", domain.ErrAlreadyExists, d.Title, d.Revision, d.ID)
		}
	}
	return nil
}

// groupKey identifies the records that form one entry.
type groupKey struct {
	sequence int64
	term     string
	reading  string
}

// GroupRecords folds term records into dictionary entries. Records sharing
// sequence, term and reading become one entry: each record adds a
// definition, the highest score wins and tag and rule tokens are merged.
// Records without a sequence get one derived from dictionaryID, term and
// reading. Entries keep the order of their first record.
func GroupRecords(dictionaryID string, records []domain.TermRecord) []domain.DictionaryEntry {
	index := make(map[groupKey]int)
	entries := make([]domain.DictionaryEntry, 0, len(records))

	for _, r := range records {
		seq := r.Sequence
		if seq == 0 {
			seq = syntheticSequence(dictionaryID, r.Term, r.Reading)
		}
		key := groupKey{sequence: seq, term: r.Term, reading: r.Reading}
		def := domain.Definition{
			Glossary:     r.Glossary,
			PartOfSpeech: strings.Fields(r.Tags),
		}

		i, ok := index[key]
		if !ok {
			index[key] = len(entries)
			entries = append(entries, domain.DictionaryEntry{
				Term:         r.Term,
				Reading:      r.Reading,
				Tags:         joinTokens("", r.Tags),
				Rules:        joinTokens("", r.Rules),
				Score:        r.Score,
				Sequence:     seq,
				Definitions:  []domain.Definition{def},
				DictionaryID: dictionaryID,
			})
			continue
		}

		e := &entries[i]
		e.Definitions = append(e.Definitions, def)
		e.Score = max(e.Score, r.Score)
		e.Tags = joinTokens(e.Tags, r.Tags)
		e.Rules = joinTokens(e.Rules, r.Rules)
	}

	return entries
}

// joinTokens returns the space-separated union of the tokens of a and b.
func joinTokens(a, b string) string {
	seen := make(map[string]bool)
	var out []string
	for _, token := range append(strings.Fields(a), strings.Fields(b)...) {
		if seen[token] {
			continue
		}
		seen[token] = true
		out = append(out, token)
	}
	return strings.Join(out, " ")
}

// syntheticSequence derives a stable negative sequence so it never
// collides with sequences assigned by dictionary authors.
func syntheticSequence(parts ...string) int64 {
	h := fnv.New64a()
	for _, p := range parts {
		_, _ = h.Write([]byte(p))
		_, _ = h.Write([]byte{0})
	}
	return -int64(h.Sum64() >> 1)
}
