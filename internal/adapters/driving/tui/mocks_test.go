package tui

import (
	"context"

	"github.com/custodia-labs/yomu-cli/internal/core/domain"
)

// mockLookupService implements driving.LookupService for testing.
type mockLookupService struct {
	results []domain.LookupResult
}

func (m *mockLookupService) Deinflect(word string) []domain.DeinflectionCandidate {
	return []domain.DeinflectionCandidate{{Term: word}}
}

func (m *mockLookupService) LookupWord(context.Context, string, domain.LookupOptions) ([]domain.LookupResult, error) {
	return m.results, nil
}

func (m *mockLookupService) LookupWordBest(context.Context, string, domain.LookupOptions) (*domain.LookupResult, error) {
	if len(m.results) == 0 {
		return nil, nil
	}
	return &m.results[0], nil
}

func (m *mockLookupService) LookupWordWithSubstrings(
	context.Context, string, int, domain.LookupOptions,
) ([]domain.LookupResult, error) {
	return m.results, nil
}

func (m *mockLookupService) ReadingHintAt(context.Context, string, int) (string, error) {
	return "", nil
}
