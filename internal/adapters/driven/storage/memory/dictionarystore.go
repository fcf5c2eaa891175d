// Package memory provides in-memory implementations of driven ports.
package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/tchap/go-patricia/v2/patricia"

	"github.com/custodia-labs/yomu-cli/internal/core/domain"
	"github.com/custodia-labs/yomu-cli/internal/core/ports/driven"
)

// Ensure DictionaryStore implements the interface.
var _ driven.DictionaryStore = (*DictionaryStore)(nil)

// DictionaryStore keeps dictionaries in memory. Entries are indexed in a
// patricia trie keyed by both term and reading; each trie item is the list
// of entry IDs sharing that key.
type DictionaryStore struct {
	mu           sync.RWMutex
	trie         *patricia.Trie
	entries      map[int64]domain.DictionaryEntry
	dictionaries map[string]domain.Dictionary
	nextID       int64
}

// NewDictionaryStore creates a new in-memory dictionary store.
func NewDictionaryStore() *DictionaryStore {
	return &DictionaryStore{
		trie:         patricia.NewTrie(),
		entries:      make(map[int64]domain.DictionaryEntry),
		dictionaries: make(map[string]domain.Dictionary),
	}
}

// LookupByTermOrReading returns entries whose term or reading equals text,
// deduplicated by sequence and sorted by descending score. Ties keep
// insertion order.
func (s *DictionaryStore) LookupByTermOrReading(_ context.Context, text string) ([]domain.DictionaryEntry, error) {
	if text == "" {
		return []domain.DictionaryEntry{}, nil
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	ids, _ := s.trie.Get(patricia.Prefix(text)).([]int64)
	sorted := make([]int64, len(ids))
	copy(sorted, ids)
	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := s.entries[sorted[i]], s.entries[sorted[j]]
		if a.Score != b.Score {
			return a.Score > b.Score
		}
		return sorted[i] < sorted[j]
	})

	seen := make(map[int64]bool, len(sorted))
	result := make([]domain.DictionaryEntry, 0, len(sorted))
	for _, id := range sorted {
		entry := s.entries[id]
		if seen[entry.Sequence] {
			continue
		}
		seen[entry.Sequence] = true
		result = append(result, entry)
	}
	return result, nil
}

// SaveDictionary stores or updates dictionary metadata.
func (s *DictionaryStore) SaveDictionary(_ context.Context, dict domain.Dictionary) error {
	if dict.ID == "" {
		return fmt.Errorf("%w: dictionary id is empty", domain.ErrInvalidInput)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.dictionaries[dict.ID] = dict
	return nil
}

// SaveEntries stores entries for a dictionary.
func (s *DictionaryStore) SaveEntries(_ context.Context, dictionaryID string, entries []domain.DictionaryEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.dictionaries[dictionaryID]; !ok {
		return fmt.Errorf("dictionary %s: %w", dictionaryID, domain.ErrNotFound)
	}

	for _, entry := range entries {
		s.nextID++
		id := s.nextID
		entry.DictionaryID = dictionaryID
		s.entries[id] = entry

		s.index(entry.Term, id)
		if entry.Reading != entry.Term {
			s.index(entry.Reading, id)
		}
	}
	return nil
}

// index appends id to the trie item for key (caller must hold lock).
func (s *DictionaryStore) index(key string, id int64) {
	if key == "" {
		return
	}
	prefix := patricia.Prefix(key)
	ids, _ := s.trie.Get(prefix).([]int64)
	s.trie.Set(prefix, append(ids, id))
}

// GetDictionary retrieves dictionary metadata by ID.
func (s *DictionaryStore) GetDictionary(_ context.Context, id string) (*domain.Dictionary, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	dict, ok := s.dictionaries[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &dict, nil
}

// ListDictionaries returns all dictionaries ordered by import time.
func (s *DictionaryStore) ListDictionaries(_ context.Context) ([]domain.Dictionary, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]domain.Dictionary, 0, len(s.dictionaries))
	for _, dict := range s.dictionaries {
		result = append(result, dict)
	}
	sort.Slice(result, func(i, j int) bool {
		if !result[i].ImportedAt.Equal(result[j].ImportedAt) {
			return result[i].ImportedAt.Before(result[j].ImportedAt)
		}
		return result[i].ID < result[j].ID
	})
	return result, nil
}

// DeleteDictionary removes a dictionary and all of its entries.
func (s *DictionaryStore) DeleteDictionary(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.dictionaries[id]; !ok {
		return domain.ErrNotFound
	}
	delete(s.dictionaries, id)

	for entryID, entry := range s.entries {
		if entry.DictionaryID == id {
			delete(s.entries, entryID)
		}
	}

	// Prune dangling IDs from every trie item.
	var empty []patricia.Prefix
	updates := make(map[string][]int64)
	_ = s.trie.Visit(func(prefix patricia.Prefix, item patricia.Item) error {
		ids, _ := item.([]int64)
		kept := make([]int64, 0, len(ids))
		for _, entryID := range ids {
			if _, ok := s.entries[entryID]; ok {
				kept = append(kept, entryID)
			}
		}
		switch {
		case len(kept) == 0:
			empty = append(empty, append(patricia.Prefix(nil), prefix...))
		case len(kept) != len(ids):
			updates[string(prefix)] = kept
		}
		return nil
	})
	for key, ids := range updates {
		s.trie.Set(patricia.Prefix(key), ids)
	}
	for _, prefix := range empty {
		s.trie.Delete(prefix)
	}
	return nil
}

// EntryCount returns the number of stored entries.
func (s *DictionaryStore) EntryCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

// Close releases resources. The memory store holds none.
func (s *DictionaryStore) Close() error {
	return nil
}
