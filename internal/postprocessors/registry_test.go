package postprocessors

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/yomu-cli/internal/core/domain"
	"github.com/custodia-labs/yomu-cli/internal/core/ports/driven"
	"github.com/custodia-labs/yomu-cli/internal/postprocessors/glossary"
)

func TestRegistry_Build_Success(t *testing.T) {
	r := NewRegistry()
	r.Register("test", func(cfg map[string]any) (driven.RecordProcessor, error) {
		name := "default"
		if n, ok := cfg["name"].(string); ok {
			name = n
		}
		return &mockProcessor{name: name}, nil
	})

	proc, err := r.Build("test", map[string]any{"name": "custom"})

	require.NoError(t, err)
	assert.Equal(t, "custom", proc.Name())
}

func TestRegistry_Build_UnknownProcessor(t *testing.T) {
	r := NewRegistry()

	_, err := r.Build("nope", nil)

	assert.EqualError(t, err, "unknown processor: nope")
}

func TestRegistry_BuildPipeline_Unknown(t *testing.T) {
	r := NewRegistry()
	RegisterDefaults(r)

	_, err := r.BuildPipeline([]string{"drop_forms", "stemmer"})

	assert.EqualError(t, err, "unknown processor: stemmer")
}

func TestRegisterDefaults(t *testing.T) {
	r := NewRegistry()
	RegisterDefaults(r)

	assert.Equal(t, []string{"dedupe_glossary", "drop_empty", "drop_forms", "reading_fallback"}, r.Names())
	for _, name := range domain.DefaultProcessors() {
		assert.True(t, r.Has(name), name)
	}
}

func TestBuildGlossary_WithConfig(t *testing.T) {
	proc, err := buildGlossary(map[string]any{"max_lines": int64(1)})
	require.NoError(t, err)

	out, err := proc.Process(context.Background(), []domain.TermRecord{
		{Term: "行く", Glossary: []string{"to go", "to move"}},
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"to go"}, out[0].Glossary)
	assert.Equal(t, glossary.Name, proc.Name())
}

func TestGetIntFromConfig(t *testing.T) {
	cfg := map[string]any{
		"int":    5,
		"int64":  int64(6),
		"float":  7.0,
		"string": "8",
	}

	assert.Equal(t, 5, getIntFromConfig(cfg, "int"))
	assert.Equal(t, 6, getIntFromConfig(cfg, "int64"))
	assert.Equal(t, 7, getIntFromConfig(cfg, "float"))
	assert.Equal(t, 0, getIntFromConfig(cfg, "string"))
	assert.Equal(t, 0, getIntFromConfig(cfg, "missing"))
}
