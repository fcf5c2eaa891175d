package services

import (
	"strings"

	"github.com/custodia-labs/yomu-cli/internal/core/domain"
)

// IsCompatible reports whether a deinflection grammar chain is consistent
// with the rule and tag tokens of a dictionary entry.
//
// An empty chain (the word itself) always matches, as does an entry that
// carries no grammar information. Otherwise at least one class in the chain
// must be satisfied by the entry's tokens, either literally or through the
// family tokens dictionaries use (v5u, v5k-s, v1-s, ...).
func IsCompatible(chain []domain.GrammarClass, entry *domain.DictionaryEntry) bool {
	if len(chain) == 0 {
		return true
	}

	tokens := append(entry.RuleTokens(), entry.TagTokens()...)
	if len(tokens) == 0 {
		return true
	}

	for _, class := range chain {
		if classMatches(class, tokens) {
			return true
		}
	}
	return false
}

func classMatches(class domain.GrammarClass, tokens []string) bool {
	for _, token := range tokens {
		if token == string(class) {
			return true
		}
		switch class {
		case domain.GrammarGodan:
			if strings.HasPrefix(token, "v5") {
				return true
			}
		case domain.GrammarIchidan:
			if token == "v1" || token == "v1-s" {
				return true
			}
		case domain.GrammarIAdjective:
			if token == "adj-i" {
				return true
			}
		case domain.GrammarSuru, domain.GrammarKuru:
			// Literal match only.
		}
	}
	return false
}
