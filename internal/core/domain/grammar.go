package domain

// GrammarClass is a conjugation category used to validate that a
// deinflection is grammatically sound against a dictionary entry.
// The value is the tag token dictionaries use for the class.
type GrammarClass string

// Known grammar classes. The set is closed.
const (
	// GrammarIchidan is the ichidan (ru-verb) class.
	GrammarIchidan GrammarClass = "v1"

	// GrammarGodan is the generic godan (u-verb) class.
	// Dictionaries use sub-variants such as v5u, v5k, v5r.
	GrammarGodan GrammarClass = "v5"

	// GrammarSuru is the suru-verb class.
	GrammarSuru GrammarClass = "vs"

	// GrammarKuru is the kuru-verb class.
	GrammarKuru GrammarClass = "vk"

	// GrammarIAdjective is the i-adjective class.
	GrammarIAdjective GrammarClass = "adj-i"
)

// AllGrammarClasses returns every known grammar class in a stable order.
func AllGrammarClasses() []GrammarClass {
	return []GrammarClass{
		GrammarIchidan,
		GrammarGodan,
		GrammarSuru,
		GrammarKuru,
		GrammarIAdjective,
	}
}

// IsValid returns true if the grammar class is recognised.
func (g GrammarClass) IsValid() bool {
	switch g {
	case GrammarIchidan, GrammarGodan, GrammarSuru, GrammarKuru, GrammarIAdjective:
		return true
	default:
		return false
	}
}

// String returns the dictionary tag token for the class.
func (g GrammarClass) String() string {
	return string(g)
}

// Description returns a human-readable name for the class.
func (g GrammarClass) Description() string {
	switch g {
	case GrammarIchidan:
		return "Ichidan verb"
	case GrammarGodan:
		return "Godan verb"
	case GrammarSuru:
		return "Suru verb"
	case GrammarKuru:
		return "Kuru verb"
	case GrammarIAdjective:
		return "I-adjective"
	default:
		return "Unknown"
	}
}
