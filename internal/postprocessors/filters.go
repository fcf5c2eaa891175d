package postprocessors

import (
	"context"

	"github.com/custodia-labs/yomu-cli/internal/core/domain"
)

// Processor names.
const (
	ReadingFallbackName = "reading_fallback"
	DropFormsName       = "drop_forms"
	DropEmptyName       = "drop_empty"
)

// formsTag marks term-bank rows that only cross-reference other forms.
const formsTag = "forms"

// ReadingFallback uses the term as reading when a record has none.
// Kana-only headwords are usually distributed without a reading.
type ReadingFallback struct{}

// Name returns the processor name.
func (ReadingFallback) Name() string { return ReadingFallbackName }

// Process fills empty readings in place.
func (ReadingFallback) Process(_ context.Context, records []domain.TermRecord) ([]domain.TermRecord, error) {
	for i := range records {
		if records[i].Reading == "" {
			records[i].Reading = records[i].Term
		}
	}
	return records, nil
}

// DropForms removes records tagged "forms".
type DropForms struct{}

// Name returns the processor name.
func (DropForms) Name() string { return DropFormsName }

// Process filters out cross-reference stubs.
func (DropForms) Process(_ context.Context, records []domain.TermRecord) ([]domain.TermRecord, error) {
	return keep(records, func(r *domain.TermRecord) bool {
		return r.Tags != formsTag
	}), nil
}

// DropEmpty removes records without gloss lines.
type DropEmpty struct{}

// Name returns the processor name.
func (DropEmpty) Name() string { return DropEmptyName }

// Process filters out records that produced no glossary.
func (DropEmpty) Process(_ context.Context, records []domain.TermRecord) ([]domain.TermRecord, error) {
	return keep(records, func(r *domain.TermRecord) bool {
		return len(r.Glossary) > 0
	}), nil
}

// keep filters records in place, preserving order.
func keep(records []domain.TermRecord, fn func(*domain.TermRecord) bool) []domain.TermRecord {
	out := records[:0]
	for i := range records {
		if fn(&records[i]) {
			out = append(out, records[i])
		}
	}
	return out
}
