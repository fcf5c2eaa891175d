// Package glossary provides a glossary cleanup processor for term records.
package glossary

import (
	"context"
	"strings"

	"github.com/custodia-labs/yomu-cli/internal/core/domain"
)

// Name is the registry name of the processor.
const Name = "dedupe_glossary"

// Processor trims gloss lines and removes blank and repeated lines.
// It implements the RecordProcessor interface.
type Processor struct {
	maxLines int
}

// Option configures the glossary processor.
type Option func(*Processor)

// WithMaxLines caps the number of gloss lines kept per record.
// Zero keeps every line.
func WithMaxLines(n int) Option {
	return func(p *Processor) {
		if n >= 0 {
			p.maxLines = n
		}
	}
}

// New creates a new glossary processor with the given options.
func New(opts ...Option) *Processor {
	p := &Processor{}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Name returns the processor name.
func (p *Processor) Name() string {
	return Name
}

// Process cleans the glossary of every record in place.
func (p *Processor) Process(ctx context.Context, records []domain.TermRecord) ([]domain.TermRecord, error) {
	for i := range records {
		if i%1024 == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}
		records[i].Glossary = p.clean(records[i].Glossary)
	}
	return records, nil
}

func (p *Processor) clean(lines []string) []string {
	seen := make(map[string]bool, len(lines))
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" || seen[line] {
			continue
		}
		seen[line] = true
		out = append(out, line)
		if p.maxLines > 0 && len(out) == p.maxLines {
			break
		}
	}
	return out
}
