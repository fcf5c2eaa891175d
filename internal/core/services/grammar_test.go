package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/custodia-labs/yomu-cli/internal/core/domain"
)

func TestIsCompatible(t *testing.T) {
	chain := func(classes ...domain.GrammarClass) []domain.GrammarClass { return classes }

	tests := []struct {
		name  string
		chain []domain.GrammarClass
		entry domain.DictionaryEntry
		want  bool
	}{
		{"empty chain", nil, domain.DictionaryEntry{Rules: "vk"}, true},
		{"empty chain no tokens", chain(), domain.DictionaryEntry{}, true},
		{"entry without tokens", chain(domain.GrammarGodan), domain.DictionaryEntry{}, true},
		{"literal rule", chain(domain.GrammarIchidan), domain.DictionaryEntry{Rules: "v1"}, true},
		{"literal tag", chain(domain.GrammarSuru), domain.DictionaryEntry{Tags: "n vs"}, true},
		{"godan prefix", chain(domain.GrammarGodan), domain.DictionaryEntry{Rules: "v5u"}, true},
		{"godan special", chain(domain.GrammarGodan), domain.DictionaryEntry{Rules: "v5k-s"}, true},
		{"ichidan special", chain(domain.GrammarIchidan), domain.DictionaryEntry{Rules: "v1-s"}, true},
		{"adjective", chain(domain.GrammarIAdjective), domain.DictionaryEntry{Rules: "adj-i"}, true},
		{"any class matches", chain(domain.GrammarIAdjective, domain.GrammarIchidan), domain.DictionaryEntry{Rules: "v1"}, true},
		{"kuru literal", chain(domain.GrammarKuru), domain.DictionaryEntry{Rules: "vk"}, true},
		{"godan vs ichidan", chain(domain.GrammarGodan), domain.DictionaryEntry{Rules: "v1"}, false},
		{"ichidan vs godan", chain(domain.GrammarIchidan), domain.DictionaryEntry{Rules: "v5r"}, false},
		{"kuru vs ichidan", chain(domain.GrammarKuru), domain.DictionaryEntry{Rules: "v1"}, false},
		{"suru prefix not accepted", chain(domain.GrammarSuru), domain.DictionaryEntry{Rules: "vs-i"}, false},
		{"noun only", chain(domain.GrammarIchidan), domain.DictionaryEntry{Tags: "n"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsCompatible(tt.chain, &tt.entry))
		})
	}
}

func TestIsCompatible_EmptyChainIgnoresEntry(t *testing.T) {
	entries := []domain.DictionaryEntry{
		{},
		{Rules: "v5u"},
		{Tags: "n"},
		{Rules: "adj-i", Tags: "P"},
	}

	for _, entry := range entries {
		assert.True(t, IsCompatible(nil, &entry))
		assert.True(t, IsCompatible([]domain.GrammarClass{}, &entry))
	}
}
