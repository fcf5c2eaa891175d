// Command yomu is a Japanese dictionary lookup tool with deinflection.
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/custodia-labs/yomu-cli/internal/adapters/driven/config/file"
	"github.com/custodia-labs/yomu-cli/internal/adapters/driven/storage/cache"
	"github.com/custodia-labs/yomu-cli/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/yomu-cli/internal/adapters/driven/storage/sqlite"
	"github.com/custodia-labs/yomu-cli/internal/adapters/driven/termbank"
	"github.com/custodia-labs/yomu-cli/internal/adapters/driven/tokenizer/kagome"
	"github.com/custodia-labs/yomu-cli/internal/adapters/driving/cli"
	"github.com/custodia-labs/yomu-cli/internal/core/domain"
	"github.com/custodia-labs/yomu-cli/internal/core/ports/driven"
	"github.com/custodia-labs/yomu-cli/internal/core/services"
	"github.com/custodia-labs/yomu-cli/internal/logger"
	"github.com/custodia-labs/yomu-cli/internal/postprocessors"
)

// version is set at build time via ldflags.
var version = "dev"

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func run() error {
	configDir, err := file.DefaultDir()
	if err != nil {
		return err
	}
	configStore, err := file.NewConfigStore(configDir)
	if err != nil {
		return fmt.Errorf("open config: %w", err)
	}

	registry := postprocessors.NewRegistry()
	postprocessors.RegisterDefaults(registry)

	settingsService := services.NewSettingsService(configStore)
	settingsService.SetKnownProcessors(registry.Names())
	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("load settings: %w", err)
	}

	store, closer, err := openStore(settings, configDir)
	if err != nil {
		return err
	}
	defer closer.Close()

	deinflector := services.NewDeinflector(services.DefaultRules(), settings.Deinflect.StrictChaining)
	lookupService := services.NewLookupService(store, deinflector)
	lookupService.SetMaxLength(settings.Lookup.MaxLength)
	lookupService.SetMaxParallel(settings.Lookup.MaxParallel)

	lookupService.SetTokenizer(kagome.NewLazy())

	pipeline, err := importPipeline(registry, settings.Import.Processors)
	if err != nil {
		return err
	}

	dictionaryService := services.NewDictionaryService(store, termbank.NewReader(), pipeline)

	cli.SetServices(cli.Services{
		Lookup:     lookupService,
		Dictionary: dictionaryService,
		Settings:   settingsService,
	})
	cli.SetVersion(version)

	return cli.Execute()
}

// importPipeline builds the configured processors. An unusable setting
// falls back to the defaults so the settings command can still repair it.
func importPipeline(registry *postprocessors.Registry, names []string) (*postprocessors.Pipeline, error) {
	pipeline, err := registry.BuildPipeline(names)
	if err == nil {
		return pipeline, nil
	}
	logger.Warn("Import processors %v unusable, using defaults: %v", names, err)

	pipeline, err = registry.BuildPipeline(domain.DefaultProcessors())
	if err != nil {
		return nil, fmt.Errorf("build import pipeline: %w", err)
	}
	return pipeline, nil
}

// openStore opens the configured dictionary backend, wrapped in the query
// cache when one is configured. The closer releases the backend.
func openStore(settings *domain.AppSettings, configDir string) (driven.DictionaryStore, io.Closer, error) {
	var (
		store  driven.DictionaryStore
		closer io.Closer
	)

	switch settings.Storage.Backend {
	case domain.StorageMemory:
		mem := memory.NewDictionaryStore()
		store, closer = mem, mem
	default:
		dataDir := settings.Storage.DataDir
		if dataDir == "" {
			dataDir = filepath.Join(configDir, "data")
		}
		db, err := sqlite.NewStore(dataDir)
		if err != nil {
			return nil, nil, fmt.Errorf("open dictionary database: %w", err)
		}
		logger.Debug("Dictionary database: %s", db.Path())
		store, closer = db.DictionaryStore(), db
	}

	if settings.Lookup.CacheSize > 0 {
		cached, err := cache.New(store, settings.Lookup.CacheSize)
		if err != nil {
			closer.Close()
			return nil, nil, fmt.Errorf("create lookup cache: %w", err)
		}
		store = cached
	}

	return store, closer, nil
}
