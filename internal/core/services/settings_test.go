package services

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/yomu-cli/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/yomu-cli/internal/core/domain"
)

// failingConfigStore rejects every write.
type failingConfigStore struct {
	*memory.ConfigStore
}

func (f *failingConfigStore) Set(string, any) error {
	return errors.New("read-only")
}

func TestNewSettingsService(t *testing.T) {
	service := NewSettingsService(memory.NewConfigStore())
	require.NotNil(t, service)
}

func TestSettingsService_Get_ReturnsDefaults(t *testing.T) {
	service := NewSettingsService(memory.NewConfigStore())

	settings, err := service.Get()
	require.NoError(t, err)

	defaults := domain.DefaultAppSettings()
	assert.Equal(t, defaults.Lookup, settings.Lookup)
	assert.Equal(t, defaults.Deinflect, settings.Deinflect)
	assert.Equal(t, domain.StorageSQLite, settings.Storage.Backend)
	assert.Empty(t, settings.Storage.DataDir)
	assert.Equal(t, domain.DefaultProcessors(), settings.Import.Processors)
}

func TestSettingsService_Get_ReturnsStoredValues(t *testing.T) {
	store := memory.NewConfigStore()
	_ = store.Set(KeyLookupMaxLength, int64(12))
	_ = store.Set(KeyLookupMaxParallel, 2)
	_ = store.Set(KeyLookupCacheSize, 0)
	_ = store.Set(KeyStrictChaining, true)
	_ = store.Set(KeyStorageBackend, "memory")
	_ = store.Set(KeyStorageDataDir, "/var/lib/yomu")
	_ = store.Set(KeyImportProcessors, []any{"drop_forms", "drop_empty"})

	settings, err := NewSettingsService(store).Get()
	require.NoError(t, err)

	assert.Equal(t, 12, settings.Lookup.MaxLength)
	assert.Equal(t, 2, settings.Lookup.MaxParallel)
	assert.Equal(t, 0, settings.Lookup.CacheSize)
	assert.True(t, settings.Deinflect.StrictChaining)
	assert.Equal(t, domain.StorageMemory, settings.Storage.Backend)
	assert.Equal(t, "/var/lib/yomu", settings.Storage.DataDir)
	assert.Equal(t, []string{"drop_forms", "drop_empty"}, settings.Import.Processors)
}

func TestSettingsService_Get_InvalidBackendReturnsDefault(t *testing.T) {
	store := memory.NewConfigStore()
	_ = store.Set(KeyStorageBackend, "postgres")

	settings, err := NewSettingsService(store).Get()
	require.NoError(t, err)
	assert.Equal(t, domain.StorageSQLite, settings.Storage.Backend)
}

func TestSettingsService_SaveRoundTrip(t *testing.T) {
	service := NewSettingsService(memory.NewConfigStore())

	settings := domain.DefaultAppSettings()
	settings.Lookup.MaxLength = 8
	settings.Deinflect.StrictChaining = true
	settings.Storage.Backend = domain.StorageMemory
	settings.Import.Processors = []string{"drop_empty"}
	require.NoError(t, service.Save(&settings))

	got, err := service.Get()
	require.NoError(t, err)
	assert.Equal(t, settings, *got)
}

func TestSettingsService_Save_Error(t *testing.T) {
	service := NewSettingsService(&failingConfigStore{ConfigStore: memory.NewConfigStore()})

	settings := domain.DefaultAppSettings()
	err := service.Save(&settings)
	require.Error(t, err)
	assert.Contains(t, err.Error(), KeyLookupMaxLength)
}

func TestSettingsService_Set(t *testing.T) {
	tests := []struct {
		key   string
		value string
		check func(t *testing.T, s *domain.AppSettings)
	}{
		{KeyLookupMaxLength, "30", func(t *testing.T, s *domain.AppSettings) { assert.Equal(t, 30, s.Lookup.MaxLength) }},
		{KeyLookupMaxParallel, "4", func(t *testing.T, s *domain.AppSettings) { assert.Equal(t, 4, s.Lookup.MaxParallel) }},
		{KeyLookupCacheSize, "0", func(t *testing.T, s *domain.AppSettings) { assert.Equal(t, 0, s.Lookup.CacheSize) }},
		{KeyStrictChaining, "true", func(t *testing.T, s *domain.AppSettings) { assert.True(t, s.Deinflect.StrictChaining) }},
		{KeyStorageBackend, "memory", func(t *testing.T, s *domain.AppSettings) {
			assert.Equal(t, domain.StorageMemory, s.Storage.Backend)
		}},
		{KeyStorageDataDir, "/data", func(t *testing.T, s *domain.AppSettings) { assert.Equal(t, "/data", s.Storage.DataDir) }},
		{KeyImportProcessors, "drop_forms, drop_empty", func(t *testing.T, s *domain.AppSettings) {
			assert.Equal(t, []string{"drop_forms", "drop_empty"}, s.Import.Processors)
		}},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			service := NewSettingsService(memory.NewConfigStore())
			require.NoError(t, service.Set(tt.key, tt.value))

			settings, err := service.Get()
			require.NoError(t, err)
			tt.check(t, settings)
		})
	}
}

func TestSettingsService_Set_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"unknown key", "lookup.colour", "red"},
		{"zero max length", KeyLookupMaxLength, "0"},
		{"non-numeric parallel", KeyLookupMaxParallel, "many"},
		{"negative cache", KeyLookupCacheSize, "-1"},
		{"bad bool", KeyStrictChaining, "maybe"},
		{"bad backend", KeyStorageBackend, "postgres"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewSettingsService(memory.NewConfigStore())
			err := service.Set(tt.key, tt.value)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
}

func TestSettingsService_Validate(t *testing.T) {
	service := NewSettingsService(memory.NewConfigStore())
	assert.NoError(t, service.Validate())
}

func TestSettingsService_Set_KnownProcessors(t *testing.T) {
	store := memory.NewConfigStore()
	service := NewSettingsService(store)
	service.SetKnownProcessors([]string{"drop_forms", "drop_empty"})

	require.NoError(t, service.Set(KeyImportProcessors, "drop_empty"))

	tests := []struct {
		name  string
		value string
		want  string
	}{
		{"unknown name", "bogus", "unknown import processor: bogus"},
		{"one unknown among known", "drop_forms,bogus", "unknown import processor: bogus"},
		{"empty list", " , ", "at least one processor"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := service.Set(KeyImportProcessors, tt.value)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
			assert.Contains(t, err.Error(), tt.want)

			settings, err := service.Get()
			require.NoError(t, err)
			assert.Equal(t, []string{"drop_empty"}, settings.Import.Processors, "rejected value must not be saved")
		})
	}
}

func TestSettingsService_Validate_UnknownProcessor(t *testing.T) {
	store := memory.NewConfigStore()
	require.NoError(t, store.Set(KeyImportProcessors, []any{"drop_forms", "bogus"}))

	service := NewSettingsService(store)
	assert.NoError(t, service.Validate(), "any name passes without a known set")

	service.SetKnownProcessors(domain.DefaultProcessors())
	err := service.Validate()
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Contains(t, err.Error(), "bogus")
}

func TestSettingsService_GetDefaults(t *testing.T) {
	service := NewSettingsService(memory.NewConfigStore())
	assert.Equal(t, domain.DefaultAppSettings(), service.GetDefaults())
}
