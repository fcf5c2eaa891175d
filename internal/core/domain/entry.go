package domain

import (
	"strings"
	"time"
)

// Definition is one sense of a dictionary entry.
type Definition struct {
	// Glossary holds the gloss lines for this sense.
	Glossary []string `json:"glossary" msgpack:"g"`

	// PartOfSpeech holds the part-of-speech tags for this sense.
	PartOfSpeech []string `json:"part_of_speech,omitempty" msgpack:"p,omitempty"`
}

// DictionaryEntry is an indexed dictionary record.
// Entries are owned by the dictionary index; the lookup engine only reads them.
type DictionaryEntry struct {
	// Term is the headword as written.
	Term string

	// Reading is the kana reading of Term.
	Reading string

	// Tags is a space-separated list of grammar and usage tags.
	Tags string

	// Rules is a space-separated list of deinflection-compatible grammar tags.
	Rules string

	// Score is the frequency/priority of the entry. Higher is more common.
	Score int

	// Sequence is the stable identity shared by duplicate term/reading rows.
	Sequence int64

	// Definitions are the senses in dictionary order.
	Definitions []Definition

	// DictionaryID links to the Dictionary the entry was imported from.
	DictionaryID string
}

// RuleTokens returns the whitespace-separated tokens of Rules.
func (e *DictionaryEntry) RuleTokens() []string {
	return strings.Fields(e.Rules)
}

// TagTokens returns the whitespace-separated tokens of Tags.
func (e *DictionaryEntry) TagTokens() []string {
	return strings.Fields(e.Tags)
}

// Glossary returns every gloss line across all definitions,
// deduplicated, in first-seen order.
func (e *DictionaryEntry) Glossary() []string {
	return flattenUnique(e.Definitions, func(d Definition) []string { return d.Glossary })
}

// PartsOfSpeech returns every part-of-speech tag across all definitions,
// deduplicated, in first-seen order.
func (e *DictionaryEntry) PartsOfSpeech() []string {
	return flattenUnique(e.Definitions, func(d Definition) []string { return d.PartOfSpeech })
}

func flattenUnique(defs []Definition, field func(Definition) []string) []string {
	seen := make(map[string]bool)
	out := make([]string, 0)
	for _, d := range defs {
		for _, s := range field(d) {
			if s == "" || seen[s] {
				continue
			}
			seen[s] = true
			out = append(out, s)
		}
	}
	return out
}

// Dictionary describes an imported dictionary.
type Dictionary struct {
	// ID is the unique identifier assigned at import.
	ID string

	// Title is the dictionary name from its index file.
	Title string

	// Revision is the dictionary revision string.
	Revision string

	// Format is the term bank format version.
	Format int

	// EntryCount is the number of entries stored.
	EntryCount int

	// ImportedAt is when the dictionary was imported.
	ImportedAt time.Time
}

// TermRecord is one term-bank row after glossary extraction.
// Several records may share a sequence; import groups them into entries.
type TermRecord struct {
	Term     string
	Reading  string
	Tags     string
	Rules    string
	Score    int
	Glossary []string
	Sequence int64
	TermTags string
}

// TermBank is a parsed dictionary archive.
type TermBank struct {
	// Info is the dictionary metadata from index.json. ID is empty until import.
	Info Dictionary

	// Records are the term rows in file order.
	Records []TermRecord
}
