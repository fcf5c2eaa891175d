package domain

// DefaultMaxLength is the default span scanned by substring lookups.
const DefaultMaxLength = 20

// LookupOptions configures a lookup.
type LookupOptions struct {
	// ReadingHint is an externally supplied reading used to prefer
	// the right homograph. Empty disables the preference.
	ReadingHint string

	// MaxLength bounds the span scanned by substring lookups.
	// Zero means DefaultMaxLength.
	MaxLength int
}

// LookupResult is a single ranked answer to a lookup.
type LookupResult struct {
	// SelectedWord is the text that was looked up.
	SelectedWord string `json:"selected_word"`

	// DictionaryForm is the matched entry's term.
	DictionaryForm string `json:"dictionary_form"`

	// Reading is the matched entry's reading.
	Reading string `json:"reading"`

	// PartOfSpeech lists the entry's part-of-speech tags.
	PartOfSpeech []string `json:"part_of_speech"`

	// Definitions is the flattened, deduplicated glossary.
	Definitions []string `json:"definitions"`

	// InflectionPath is the reason chain of the matching candidate.
	InflectionPath []string `json:"inflection_path"`

	// Score is copied from the entry.
	Score int `json:"score"`

	// Sequence is the entry identity.
	Sequence int64 `json:"sequence"`

	// MatchLength is the rune length of the substring that produced
	// this result. Only set by substring lookups.
	MatchLength int `json:"match_length,omitempty"`
}

// Token is a morpheme reported by an external tokenizer.
// Offsets are rune indexes into the tokenized text.
type Token struct {
	Surface  string
	BaseForm string
	Reading  string
	Start    int
	End      int
}

// Covers returns true if the rune offset falls inside the token.
func (t Token) Covers(offset int) bool {
	return offset >= t.Start && offset < t.End
}
