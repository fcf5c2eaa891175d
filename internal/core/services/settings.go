package services

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/custodia-labs/yomu-cli/internal/core/domain"
	"github.com/custodia-labs/yomu-cli/internal/core/ports/driven"
	"github.com/custodia-labs/yomu-cli/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
const (
	KeyLookupMaxLength   = "lookup.max_length"
	KeyLookupMaxParallel = "lookup.max_parallel"
	KeyLookupCacheSize   = "lookup.cache_size"
	KeyStrictChaining    = "deinflect.strict_chaining"
	KeyStorageBackend    = "storage.backend"
	KeyStorageDataDir    = "storage.data_dir"
	KeyImportProcessors  = "import.processors"
)

// SettingsService manages application settings.
type SettingsService struct {
	configStore driven.ConfigStore

	// processors holds the accepted import processor names. Nil accepts any.
	processors map[string]bool
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{
		configStore: configStore,
	}
}

// SetKnownProcessors restricts import.processors to names.
func (s *SettingsService) SetKnownProcessors(names []string) {
	s.processors = make(map[string]bool, len(names))
	for _, name := range names {
		s.processors[name] = true
	}
}

// Get retrieves current application settings.
func (s *SettingsService) Get() (*domain.AppSettings, error) {
	defaults := domain.DefaultAppSettings()

	settings := &domain.AppSettings{
		Lookup: domain.LookupSettings{
			MaxLength:   s.getInt(KeyLookupMaxLength, defaults.Lookup.MaxLength),
			MaxParallel: s.getInt(KeyLookupMaxParallel, defaults.Lookup.MaxParallel),
			CacheSize:   s.getIntOrZero(KeyLookupCacheSize, defaults.Lookup.CacheSize),
		},
		Deinflect: domain.DeinflectSettings{
			StrictChaining: s.getBool(KeyStrictChaining, defaults.Deinflect.StrictChaining),
		},
		Storage: domain.StorageSettings{
			Backend: s.getBackend(defaults.Storage.Backend),
			DataDir: s.configStore.GetString(KeyStorageDataDir), // No default - resolved by the caller
		},
		Import: domain.ImportSettings{
			Processors: s.getStringSlice(KeyImportProcessors, defaults.Import.Processors),
		},
	}

	return settings, nil
}

// Save persists application settings.
func (s *SettingsService) Save(settings *domain.AppSettings) error {
	values := []struct {
		key   string
		value any
	}{
		{KeyLookupMaxLength, settings.Lookup.MaxLength},
		{KeyLookupMaxParallel, settings.Lookup.MaxParallel},
		{KeyLookupCacheSize, settings.Lookup.CacheSize},
		{KeyStrictChaining, settings.Deinflect.StrictChaining},
		{KeyStorageBackend, settings.Storage.Backend.String()},
		{KeyStorageDataDir, settings.Storage.DataDir},
		{KeyImportProcessors, settings.Import.Processors},
	}

	for _, v := range values {
		if err := s.configStore.Set(v.key, v.value); err != nil {
			return fmt.Errorf("save %s: %w", v.key, err)
		}
	}

	return nil
}

// Set updates a single setting from its string form.
func (s *SettingsService) Set(key, value string) error {
	settings, err := s.Get()
	if err != nil {
		return err
	}

	switch key {
	case KeyLookupMaxLength:
		settings.Lookup.MaxLength, err = parsePositive(key, value)
	case KeyLookupMaxParallel:
		settings.Lookup.MaxParallel, err = parsePositive(key, value)
	case KeyLookupCacheSize:
		settings.Lookup.CacheSize, err = parseNonNegative(key, value)
	case KeyStrictChaining:
		settings.Deinflect.StrictChaining, err = strconv.ParseBool(value)
		if err != nil {
			err = fmt.Errorf("%w: %s must be true or false", domain.ErrInvalidInput, key)
		}
	case KeyStorageBackend:
		backend := domain.StorageBackend(value)
		if !backend.IsValid() {
			return fmt.Errorf("%w: invalid storage backend: %s", domain.ErrInvalidInput, value)
		}
		settings.Storage.Backend = backend
	case KeyStorageDataDir:
		settings.Storage.DataDir = value
	case KeyImportProcessors:
		settings.Import.Processors = splitList(value)
		err = s.checkProcessors(settings.Import.Processors)
	default:
		return fmt.Errorf("%w: unknown setting: %s", domain.ErrInvalidInput, key)
	}
	if err != nil {
		return err
	}

	return s.Save(settings)
}

// Validate checks that the current settings are usable.
func (s *SettingsService) Validate() error {
	settings, err := s.Get()
	if err != nil {
		return err
	}

	if !settings.Storage.Backend.IsValid() {
		return fmt.Errorf("invalid storage backend: %s", settings.Storage.Backend)
	}
	if settings.Lookup.MaxLength <= 0 {
		return fmt.Errorf("%s must be positive", KeyLookupMaxLength)
	}
	if settings.Lookup.MaxParallel <= 0 {
		return fmt.Errorf("%s must be positive", KeyLookupMaxParallel)
	}
	return s.checkProcessors(settings.Import.Processors)
}

func (s *SettingsService) checkProcessors(names []string) error {
	if len(names) == 0 {
		return fmt.Errorf("%w: %s must name at least one processor", domain.ErrInvalidInput, KeyImportProcessors)
	}
	if s.processors == nil {
		return nil
	}
	for _, name := range names {
		if !s.processors[name] {
			return fmt.Errorf("%w: unknown import processor: %s", domain.ErrInvalidInput, name)
		}
	}
	return nil
}

// GetDefaults returns default settings.
func (s *SettingsService) GetDefaults() domain.AppSettings {
	return domain.DefaultAppSettings()
}

// Helper methods for reading config with defaults.

func (s *SettingsService) getInt(key string, defaultVal int) int {
	val := s.configStore.GetInt(key)
	if val == 0 {
		return defaultVal
	}
	return val
}

// getIntOrZero honours an explicit zero, unlike getInt.
func (s *SettingsService) getIntOrZero(key string, defaultVal int) int {
	if _, exists := s.configStore.Get(key); !exists {
		return defaultVal
	}
	return s.configStore.GetInt(key)
}

func (s *SettingsService) getBool(key string, defaultVal bool) bool {
	if _, exists := s.configStore.Get(key); !exists {
		return defaultVal
	}
	return s.configStore.GetBool(key)
}

func (s *SettingsService) getStringSlice(key string, defaultVal []string) []string {
	val := s.configStore.GetStringSlice(key)
	if len(val) == 0 {
		return defaultVal
	}
	return val
}

func (s *SettingsService) getBackend(defaultVal domain.StorageBackend) domain.StorageBackend {
	val := s.configStore.GetString(KeyStorageBackend)
	if val == "" {
		return defaultVal
	}
	backend := domain.StorageBackend(val)
	if !backend.IsValid() {
		return defaultVal
	}
	return backend
}

func parsePositive(key, value string) (int, error) {
	n, err := strconv.Atoi(value)
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("%w: %s must be a positive integer", domain.ErrInvalidInput, key)
	}
	return n, nil
}

func parseNonNegative(key, value string) (int, error) {
	n, err := strconv.Atoi(value)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("%w: %s must be a non-negative integer", domain.ErrInvalidInput, key)
	}
	return n, nil
}

func splitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
