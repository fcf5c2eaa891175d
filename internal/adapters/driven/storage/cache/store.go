// Package cache provides an LRU caching decorator for dictionary stores.
package cache

import (
	"context"
	"fmt"
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/custodia-labs/yomu-cli/internal/core/domain"
	"github.com/custodia-labs/yomu-cli/internal/core/ports/driven"
	"github.com/custodia-labs/yomu-cli/internal/logger"
)

// Ensure DictionaryStore implements the interface.
var _ driven.DictionaryStore = (*DictionaryStore)(nil)

// DictionaryStore caches LookupByTermOrReading results in front of another
// store. Any write purges the cache.
type DictionaryStore struct {
	next  driven.DictionaryStore
	cache *lru.Cache[string, []domain.DictionaryEntry]

	// mu orders purges against fills; generation counts purges so a lookup
	// that overlapped a write does not cache what it read before the write.
	mu         sync.Mutex
	generation uint64
}

// New wraps next with an LRU cache holding up to size lookups.
func New(next driven.DictionaryStore, size int) (*DictionaryStore, error) {
	cache, err := lru.New[string, []domain.DictionaryEntry](size)
	if err != nil {
		return nil, fmt.Errorf("create lookup cache: %w", err)
	}
	return &DictionaryStore{next: next, cache: cache}, nil
}

// LookupByTermOrReading returns cached entries when present. Errors are
// not cached.
func (s *DictionaryStore) LookupByTermOrReading(ctx context.Context, text string) ([]domain.DictionaryEntry, error) {
	if entries, ok := s.cache.Get(text); ok {
		return clone(entries), nil
	}

	gen := s.currentGeneration()
	entries, err := s.next.LookupByTermOrReading(ctx, text)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	if s.generation == gen {
		s.cache.Add(text, clone(entries))
	}
	s.mu.Unlock()
	return entries, nil
}

// SaveDictionary stores dictionary metadata and purges the cache.
func (s *DictionaryStore) SaveDictionary(ctx context.Context, dict domain.Dictionary) error {
	defer s.purge()
	return s.next.SaveDictionary(ctx, dict)
}

// SaveEntries stores entries and purges the cache.
func (s *DictionaryStore) SaveEntries(ctx context.Context, dictionaryID string, entries []domain.DictionaryEntry) error {
	defer s.purge()
	return s.next.SaveEntries(ctx, dictionaryID, entries)
}

// GetDictionary is passed through uncached.
func (s *DictionaryStore) GetDictionary(ctx context.Context, id string) (*domain.Dictionary, error) {
	return s.next.GetDictionary(ctx, id)
}

// ListDictionaries is passed through uncached.
func (s *DictionaryStore) ListDictionaries(ctx context.Context) ([]domain.Dictionary, error) {
	return s.next.ListDictionaries(ctx)
}

// DeleteDictionary removes a dictionary and purges the cache.
func (s *DictionaryStore) DeleteDictionary(ctx context.Context, id string) error {
	defer s.purge()
	return s.next.DeleteDictionary(ctx, id)
}

// Len returns the number of cached lookups.
func (s *DictionaryStore) Len() int {
	return s.cache.Len()
}

func (s *DictionaryStore) currentGeneration() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.generation
}

func (s *DictionaryStore) purge() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.generation++
	if n := s.cache.Len(); n > 0 {
		logger.Debug("Purging %d cached lookups", n)
	}
	s.cache.Purge()
}

// clone copies the slice header so callers cannot reorder cached results.
func clone(entries []domain.DictionaryEntry) []domain.DictionaryEntry {
	out := make([]domain.DictionaryEntry, len(entries))
	copy(out, entries)
	return out
}
