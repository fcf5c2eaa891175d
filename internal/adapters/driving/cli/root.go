// Package cli provides the yomu command-line interface.
// Commands are registered on rootCmd in their init functions and call the
// driving ports installed with SetServices.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/custodia-labs/yomu-cli/internal/core/ports/driving"
	"github.com/custodia-labs/yomu-cli/internal/logger"
)

// version is set at build time via ldflags or SetVersion.
var version = "dev"

var verbose bool

// Driving ports used by the commands.
var (
	lookupService     driving.LookupService
	dictionaryService driving.DictionaryService
	settingsService   driving.SettingsService
)

var rootCmd = &cobra.Command{
	Use:   "yomu",
	Short: "Japanese dictionary lookup with deinflection",
	Long: `yomu looks up Japanese words in locally imported dictionaries.

Conjugated words are traced back to their dictionary forms, so "食べなかった"
finds "食べる" along with the inflections that were undone.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "print pipeline details to stderr")
}

// Services holds the driving ports the CLI depends on.
type Services struct {
	Lookup     driving.LookupService
	Dictionary driving.DictionaryService
	Settings   driving.SettingsService
}

// SetServices installs the services used by the commands.
func SetServices(s Services) {
	lookupService = s.Lookup
	dictionaryService = s.Dictionary
	settingsService = s.Settings
}

// SetVersion sets the version reported by the version command.
func SetVersion(v string) {
	if v != "" {
		version = v
	}
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
