package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/yomu-cli/internal/core/domain"
)

var (
	scanStart     int
	scanMaxLength int
	scanReading   string
	scanAutoHint  bool
	scanJSON      bool
)

var scanCmd = &cobra.Command{
	Use:   "scan [text]",
	Short: "Find the longest words starting at a position in text",
	Long: `Scans text from a character offset and returns the dictionary words that
start there, longest match first. This is what a click on running text does:
the word boundary is found by trying every span from --max-length down to one.

--auto-hint derives a reading for the clicked token with the built-in
morphological analyser when --reading is not given.`,
	Args: cobra.ExactArgs(1),
	RunE: runScan,
}

func init() {
	scanCmd.Flags().IntVarP(&scanStart, "start", "s", 0, "character offset to scan from")
	scanCmd.Flags().IntVarP(&scanMaxLength, "max-length", "m", 0, "longest span to try (0 = configured default)")
	scanCmd.Flags().StringVarP(&scanReading, "reading", "r", "", "preferred kana reading")
	scanCmd.Flags().BoolVar(&scanAutoHint, "auto-hint", false, "derive the reading from the tokenizer")
	scanCmd.Flags().BoolVar(&scanJSON, "json", false, "output results as JSON")
	rootCmd.AddCommand(scanCmd)
}

func runScan(cmd *cobra.Command, args []string) error {
	text := args[0]

	if lookupService == nil {
		return errors.New("lookup service not configured")
	}

	ctx := context.Background()

	reading := scanReading
	if reading == "" && scanAutoHint {
		hint, err := lookupService.ReadingHintAt(ctx, text, scanStart)
		if err != nil {
			return fmt.Errorf("reading hint failed: %w", err)
		}
		reading = hint
	}

	opts := domain.LookupOptions{
		ReadingHint: reading,
		MaxLength:   scanMaxLength,
	}
	results, err := lookupService.LookupWordWithSubstrings(ctx, text, scanStart, opts)
	if err != nil {
		return fmt.Errorf("scan failed: %w", err)
	}

	if scanJSON {
		return outputJSON(cmd, results)
	}
	return outputResults(cmd, results)
}
