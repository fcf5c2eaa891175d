// Package postprocessors provides the term record pipeline run during
// dictionary import.
package postprocessors

import (
	"context"
	"fmt"

	"github.com/custodia-labs/yomu-cli/internal/core/domain"
	"github.com/custodia-labs/yomu-cli/internal/core/ports/driven"
	"github.com/custodia-labs/yomu-cli/internal/logger"
)

// Ensure Pipeline implements the interface.
var _ driven.RecordPipeline = (*Pipeline)(nil)

// Pipeline chains multiple RecordProcessors and runs them in order.
type Pipeline struct {
	processors []driven.RecordProcessor
}

// NewPipeline creates a new processing pipeline with the given processors.
// Processors are executed in the order provided.
func NewPipeline(processors ...driven.RecordProcessor) *Pipeline {
	return &Pipeline{
		processors: processors,
	}
}

// Process runs the records through all processors in order.
// Each processor receives the output of the previous one.
func (p *Pipeline) Process(ctx context.Context, records []domain.TermRecord) ([]domain.TermRecord, error) {
	for _, processor := range p.processors {
		before := len(records)

		var err error
		records, err = processor.Process(ctx, records)
		if err != nil {
			return nil, fmt.Errorf("processor %s: %w", processor.Name(), err)
		}

		logger.Debug("Processor %s: %d -> %d records", processor.Name(), before, len(records))
	}

	return records, nil
}

// Add appends a processor to the pipeline.
func (p *Pipeline) Add(processor driven.RecordProcessor) {
	p.processors = append(p.processors, processor)
}

// Len returns the number of processors in the pipeline.
func (p *Pipeline) Len() int {
	return len(p.processors)
}

// Names returns the processor names in execution order.
func (p *Pipeline) Names() []string {
	names := make([]string, len(p.processors))
	for i, processor := range p.processors {
		names[i] = processor.Name()
	}
	return names
}
