package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage application settings",
	Long: `View and change lookup, deinflection, storage and import settings.

Settings are stored in ~/.yomu/config.toml.`,
	RunE: runSettingsShow,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	RunE:  runSettingsShow,
}

var settingsSetCmd = &cobra.Command{
	Use:   "set [key] [value]",
	Short: "Change a setting",
	Long: `Change a single setting.

Available keys:
  lookup.max_length          - longest span tried by scan (positive integer)
  lookup.max_parallel        - concurrent dictionary queries (positive integer)
  lookup.cache_size          - cached dictionary queries, 0 disables
  deinflect.strict_chaining  - only chain rules with matching grammar (true/false)
  storage.backend            - sqlite or memory
  storage.data_dir           - directory holding the dictionary database
  import.processors          - comma-separated import processor chain

Storage and import changes apply the next time yomu starts.`,
	Args: cobra.ExactArgs(2),
	RunE: runSettingsSet,
}

func init() {
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsSetCmd)
	rootCmd.AddCommand(settingsCmd)
}

func runSettingsShow(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	cmd.Println("Current Settings")
	cmd.Println("================")
	cmd.Println()

	cmd.Println("[Lookup]")
	cmd.Printf("  Max length: %d\n", settings.Lookup.MaxLength)
	cmd.Printf("  Max parallel: %d\n", settings.Lookup.MaxParallel)
	if settings.Lookup.CacheSize > 0 {
		cmd.Printf("  Cache size: %d\n", settings.Lookup.CacheSize)
	} else {
		cmd.Println("  Cache size: disabled")
	}
	cmd.Println()

	cmd.Println("[Deinflect]")
	cmd.Printf("  Strict chaining: %t\n", settings.Deinflect.StrictChaining)
	cmd.Println()

	cmd.Println("[Storage]")
	cmd.Printf("  Backend: %s\n", settings.Storage.Backend)
	dataDir := settings.Storage.DataDir
	if dataDir == "" {
		dataDir = "(default)"
	}
	cmd.Printf("  Data dir: %s\n", dataDir)
	cmd.Println()

	cmd.Println("[Import]")
	cmd.Printf("  Processors: %s\n", strings.Join(settings.Import.Processors, ", "))
	cmd.Println()

	if err := settingsService.Validate(); err != nil {
		cmd.Printf("Warning: %v\n", err)
	} else {
		cmd.Println("Configuration is valid.")
	}

	return nil
}

func runSettingsSet(cmd *cobra.Command, args []string) error {
	key, value := args[0], args[1]

	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	if err := settingsService.Set(key, value); err != nil {
		return fmt.Errorf("failed to set %s: %w", key, err)
	}

	cmd.Printf("Set %s = %s\n", key, value)
	return nil
}
