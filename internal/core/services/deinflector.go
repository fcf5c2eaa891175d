package services

import (
	"strings"

	"github.com/custodia-labs/yomu-cli/internal/core/domain"
)

// Deinflector derives dictionary-form candidates from conjugated words
// by applying the rule table backwards, breadth first.
type Deinflector struct {
	rules  []domain.DeinflectionRule
	strict bool
}

// NewDeinflector creates a deinflector over rules. With strict set, a rule
// only applies to a derived candidate when it accepts the output classes of
// the step that produced that candidate.
func NewDeinflector(rules []domain.DeinflectionRule, strict bool) *Deinflector {
	return &Deinflector{rules: rules, strict: strict}
}

// queued is a candidate waiting to be expanded.
type queued struct {
	candidate   domain.DeinflectionCandidate
	lastClasses []domain.GrammarClass
}

// Deinflect returns every candidate reachable from word in discovery order.
// The first candidate is always word itself with empty chains. A term
// reachable along several paths keeps the path discovered first.
func (d *Deinflector) Deinflect(word string) []domain.DeinflectionCandidate {
	origin := domain.DeinflectionCandidate{
		Term:         word,
		GrammarChain: []domain.GrammarClass{},
		ReasonChain:  []string{},
	}
	results := []domain.DeinflectionCandidate{origin}
	if word == "" {
		return results
	}

	visited := map[string]bool{word: true}
	queue := []queued{{candidate: origin}}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		term := current.candidate.Term

		for _, rule := range d.rules {
			if !strings.HasSuffix(term, rule.InflectedSuffix) {
				continue
			}
			if d.strict && !current.candidate.IsOriginal() && !rule.Accepts(current.lastClasses) {
				continue
			}

			next := term[:len(term)-len(rule.InflectedSuffix)] + rule.BaseSuffix
			if next == "" || visited[next] {
				continue
			}
			visited[next] = true

			candidate := domain.DeinflectionCandidate{
				Term:         next,
				GrammarChain: appendClasses(current.candidate.GrammarChain, rule.OutputClasses),
				ReasonChain:  appendReason(current.candidate.ReasonChain, rule.Reason),
			}
			results = append(results, candidate)
			queue = append(queue, queued{candidate: candidate, lastClasses: rule.OutputClasses})
		}
	}

	return results
}

func appendClasses(chain, classes []domain.GrammarClass) []domain.GrammarClass {
	out := make([]domain.GrammarClass, 0, len(chain)+len(classes))
	out = append(out, chain...)
	return append(out, classes...)
}

func appendReason(chain []string, reason string) []string {
	out := make([]string, 0, len(chain)+1)
	out = append(out, chain...)
	return append(out, reason)
}
