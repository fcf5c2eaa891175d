package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/yomu-cli/internal/core/domain"
)

func TestSettingsCmd_Use(t *testing.T) {
	assert.Equal(t, "settings", settingsCmd.Use)
	assert.Contains(t, settingsSetCmd.Long, "lookup.max_length")
	assert.Contains(t, settingsSetCmd.Long, "deinflect.strict_chaining")
}

func TestSettingsCmd_ShowsDefaults(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	out, err := execute(t, "settings")

	require.NoError(t, err)
	assert.Contains(t, out, "[Lookup]")
	assert.Contains(t, out, "Max length: 20")
	assert.Contains(t, out, "Max parallel: 8")
	assert.Contains(t, out, "Cache size: 4096")
	assert.Contains(t, out, "[Deinflect]")
	assert.Contains(t, out, "Strict chaining: false")
	assert.Contains(t, out, "[Storage]")
	assert.Contains(t, out, "Backend: sqlite")
	assert.Contains(t, out, "Data dir: (default)")
	assert.Contains(t, out, "[Import]")
	assert.Contains(t, out, "Processors: reading_fallback, drop_forms, dedupe_glossary, drop_empty")
	assert.Contains(t, out, "Configuration is valid.")
}

func TestSettingsShowCmd(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	out, err := execute(t, "settings", "show")

	require.NoError(t, err)
	assert.Contains(t, out, "Current Settings")
}

func TestSettingsSetCmd(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	out, err := execute(t, "settings", "set", "deinflect.strict_chaining", "true")
	require.NoError(t, err)
	assert.Contains(t, out, "Set deinflect.strict_chaining = true")

	_, err = execute(t, "settings", "set", "lookup.cache_size", "0")
	require.NoError(t, err)

	out, err = execute(t, "settings", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "Strict chaining: true")
	assert.Contains(t, out, "Cache size: disabled")
}

func TestSettingsSetCmd_Invalid(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	tests := []struct {
		name string
		args []string
	}{
		{"unknown key", []string{"lookup.colour", "red"}},
		{"bad backend", []string{"storage.backend", "postgres"}},
		{"not a number", []string{"lookup.max_length", "many"}},
		{"zero parallel", []string{"lookup.max_parallel", "0"}},
		{"not a bool", []string{"deinflect.strict_chaining", "maybe"}},
		{"unknown processor", []string{"import.processors", "drop_forms,bogus"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := execute(t, append([]string{"settings", "set"}, tt.args...)...)

			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
			assert.Contains(t, err.Error(), "failed to set "+tt.args[0])
		})
	}
}

func TestSettingsSetCmd_RequiresTwoArgs(t *testing.T) {
	_, err := execute(t, "settings", "set", "lookup.max_length")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "accepts 2 arg(s)")
}

func TestSettingsCmd_NoService(t *testing.T) {
	prev := settingsService
	settingsService = nil
	defer func() { settingsService = prev }()

	_, err := execute(t, "settings", "show")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "settings service not configured")
}
