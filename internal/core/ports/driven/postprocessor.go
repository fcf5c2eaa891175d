package driven

import (
	"context"

	"github.com/custodia-labs/yomu-cli/internal/core/domain"
)

// RecordProcessor transforms term records during dictionary import.
// Processors are chained in a pipeline (e.g. filtering, cleanup).
type RecordProcessor interface {
	// Name returns the processor name for logging and configuration.
	Name() string

	// Process receives the records produced so far and returns the
	// records to pass on. Processors may drop, modify or add records.
	Process(ctx context.Context, records []domain.TermRecord) ([]domain.TermRecord, error)
}

// RecordPipeline chains multiple RecordProcessors.
type RecordPipeline interface {
	// Process runs the records through all processors in order.
	Process(ctx context.Context, records []domain.TermRecord) ([]domain.TermRecord, error)
}
