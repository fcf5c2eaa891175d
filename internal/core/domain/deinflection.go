package domain

// DeinflectionRule is one backward suffix rewrite.
// A term ending in InflectedSuffix may be the inflected form of a term
// ending in BaseSuffix.
type DeinflectionRule struct {
	// InflectedSuffix is the kana suffix found on the conjugated form.
	InflectedSuffix string

	// BaseSuffix replaces InflectedSuffix to produce the base form.
	BaseSuffix string

	// InputClasses are the classes the inflected form conjugates as.
	// Empty means any.
	InputClasses []GrammarClass

	// OutputClasses are the classes of the produced base form. Never empty.
	OutputClasses []GrammarClass

	// Reason is the human-readable label of the transformation
	// (e.g. "negative", "past", "potential").
	Reason string
}

// Accepts reports whether the rule may follow a step that produced
// the given classes. Rules without input classes accept anything.
func (r DeinflectionRule) Accepts(classes []GrammarClass) bool {
	if len(r.InputClasses) == 0 {
		return true
	}
	for _, in := range r.InputClasses {
		for _, c := range classes {
			if in == c {
				return true
			}
		}
	}
	return false
}

// DeinflectionCandidate is a possible base form of a looked-up word.
type DeinflectionCandidate struct {
	// Term is the candidate string.
	Term string `json:"term"`

	// GrammarChain accumulates the output classes of every applied rule.
	GrammarChain []GrammarClass `json:"grammar_chain"`

	// ReasonChain holds one reason per applied rule, in application order.
	ReasonChain []string `json:"reason_chain"`
}

// IsOriginal returns true for the zero-transformation candidate.
func (c DeinflectionCandidate) IsOriginal() bool {
	return len(c.ReasonChain) == 0
}
