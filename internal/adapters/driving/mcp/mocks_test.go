package mcp

import (
	"context"

	"github.com/custodia-labs/yomu-cli/internal/core/domain"
)

// mockLookupService is a mock implementation of driving.LookupService.
type mockLookupService struct {
	candidates []domain.DeinflectionCandidate
	results    []domain.LookupResult
	hint       string
	err        error

	// Captured arguments of the last call.
	lastWord  string
	lastStart int
	lastOpts  domain.LookupOptions
}

func (m *mockLookupService) Deinflect(word string) []domain.DeinflectionCandidate {
	m.lastWord = word
	return m.candidates
}

func (m *mockLookupService) LookupWord(
	_ context.Context,
	word string,
	opts domain.LookupOptions,
) ([]domain.LookupResult, error) {
	m.lastWord = word
	m.lastOpts = opts
	return m.results, m.err
}

func (m *mockLookupService) LookupWordBest(
	ctx context.Context,
	word string,
	opts domain.LookupOptions,
) (*domain.LookupResult, error) {
	results, err := m.LookupWord(ctx, word, opts)
	if err != nil || len(results) == 0 {
		return nil, err
	}
	return &results[0], nil
}

func (m *mockLookupService) LookupWordWithSubstrings(
	_ context.Context,
	text string,
	start int,
	opts domain.LookupOptions,
) ([]domain.LookupResult, error) {
	m.lastWord = text
	m.lastStart = start
	m.lastOpts = opts
	return m.results, m.err
}

func (m *mockLookupService) ReadingHintAt(_ context.Context, _ string, _ int) (string, error) {
	return m.hint, nil
}

// mockDictionaryService is a mock implementation of driving.DictionaryService.
type mockDictionaryService struct {
	dictionaries []domain.Dictionary
	dictionary   *domain.Dictionary
	err          error
}

func (m *mockDictionaryService) Import(_ context.Context, _ string) (*domain.Dictionary, error) {
	return m.dictionary, m.err
}

func (m *mockDictionaryService) List(_ context.Context) ([]domain.Dictionary, error) {
	return m.dictionaries, m.err
}

func (m *mockDictionaryService) Get(_ context.Context, _ string) (*domain.Dictionary, error) {
	return m.dictionary, m.err
}

func (m *mockDictionaryService) Remove(_ context.Context, _ string) error {
	return m.err
}
