package postprocessors

import (
	"github.com/custodia-labs/yomu-cli/internal/core/ports/driven"
	"github.com/custodia-labs/yomu-cli/internal/postprocessors/glossary"
)

// RegisterDefaults registers all built-in processors with the registry.
// Call this during application initialisation to enable standard processors.
func RegisterDefaults(r *Registry) {
	r.Register(ReadingFallbackName, func(map[string]any) (driven.RecordProcessor, error) {
		return ReadingFallback{}, nil
	})
	r.Register(DropFormsName, func(map[string]any) (driven.RecordProcessor, error) {
		return DropForms{}, nil
	})
	r.Register(DropEmptyName, func(map[string]any) (driven.RecordProcessor, error) {
		return DropEmpty{}, nil
	})
	r.Register(glossary.Name, buildGlossary)
}

// buildGlossary creates a glossary processor from generic config.
// Supported config keys:
//   - max_lines (int): Gloss lines kept per record (default: all)
func buildGlossary(cfg map[string]any) (driven.RecordProcessor, error) {
	var opts []glossary.Option

	if cfg != nil {
		if n := getIntFromConfig(cfg, "max_lines"); n > 0 {
			opts = append(opts, glossary.WithMaxLines(n))
		}
	}

	return glossary.New(opts...), nil
}

// getIntFromConfig safely extracts an int from generic config map.
// Handles int, int64, and float64 types that may come from TOML/JSON parsing.
func getIntFromConfig(cfg map[string]any, key string) int {
	val, ok := cfg[key]
	if !ok {
		return 0
	}

	switch v := val.(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	default:
		return 0
	}
}
