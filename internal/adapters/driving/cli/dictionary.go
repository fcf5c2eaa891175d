package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/yomu-cli/internal/core/domain"
)

var dictionaryWatch bool

var dictionaryCmd = &cobra.Command{
	Use:     "dictionary",
	Aliases: []string{"dict"},
	Short:   "Manage imported dictionaries",
	Long: `Import, list and remove dictionaries.

Dictionaries are Yomichan-format archives: a zip file (or an unpacked
directory) holding index.json and term_bank_N.json files.`,
}

var dictionaryImportCmd = &cobra.Command{
	Use:   "import [path]",
	Short: "Import a dictionary archive",
	Long: `Imports a dictionary archive or directory.

With --watch, yomu keeps running and re-imports the archive whenever it
changes on disk. A revision that is already imported is skipped.`,
	Args: cobra.ExactArgs(1),
	RunE: runDictionaryImport,
}

var dictionaryListCmd = &cobra.Command{
	Use:   "list",
	Short: "List imported dictionaries",
	RunE:  runDictionaryList,
}

var dictionaryRemoveCmd = &cobra.Command{
	Use:   "remove [id]",
	Short: "Remove an imported dictionary",
	Args:  cobra.ExactArgs(1),
	RunE:  runDictionaryRemove,
}

func init() {
	dictionaryImportCmd.Flags().BoolVarP(&dictionaryWatch, "watch", "w", false, "re-import when the archive changes")
	dictionaryCmd.AddCommand(dictionaryImportCmd)
	dictionaryCmd.AddCommand(dictionaryListCmd)
	dictionaryCmd.AddCommand(dictionaryRemoveCmd)
	rootCmd.AddCommand(dictionaryCmd)
}

func runDictionaryImport(cmd *cobra.Command, args []string) error {
	path := args[0]

	if dictionaryService == nil {
		return errors.New("dictionary service not configured")
	}

	if !dictionaryWatch {
		ctx := context.Background()
		cmd.Printf("Importing %s...\n", path)
		dict, err := dictionaryService.Import(ctx, path)
		if err != nil {
			return fmt.Errorf("import failed: %w", err)
		}
		printImported(cmd, dict)
		return nil
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	importOnce(ctx, cmd, path)
	return watchImports(ctx, cmd, path)
}

// importOnce imports path and reports the outcome without failing.
// Used by watch mode, where a bad or repeated archive must not stop the loop.
func importOnce(ctx context.Context, cmd *cobra.Command, path string) {
	cmd.Printf("Importing %s...\n", path)
	dict, err := dictionaryService.Import(ctx, path)
	switch {
	case errors.Is(err, domain.ErrAlreadyExists):
		cmd.Println("Already imported, skipping.")
	case err != nil:
		cmd.Printf("Import failed: %v\n", err)
	default:
		printImported(cmd, dict)
	}
}

func printImported(cmd *cobra.Command, dict *domain.Dictionary) {
	cmd.Printf("Imported %s (rev %s): %d entries\n", dict.Title, dict.Revision, dict.EntryCount)
	cmd.Printf("  ID: %s\n", dict.ID)
}

func runDictionaryList(cmd *cobra.Command, _ []string) error {
	if dictionaryService == nil {
		return errors.New("dictionary service not configured")
	}

	dicts, err := dictionaryService.List(context.Background())
	if err != nil {
		return fmt.Errorf("list failed: %w", err)
	}

	if len(dicts) == 0 {
		cmd.Println("No dictionaries imported.")
		cmd.Println("Run 'yomu dictionary import <path>' to add one.")
		return nil
	}

	cmd.Println("Dictionaries:")
	cmd.Println()
	for _, d := range dicts {
		cmd.Printf("  %s (rev %s)\n", d.Title, d.Revision)
		cmd.Printf("      ID: %s\n", d.ID)
		cmd.Printf("      Entries: %d\n", d.EntryCount)
		if !d.ImportedAt.IsZero() {
			cmd.Printf("      Imported: %s\n", d.ImportedAt.Format("2006-01-02 15:04"))
		}
	}

	return nil
}

func runDictionaryRemove(cmd *cobra.Command, args []string) error {
	id := args[0]

	if dictionaryService == nil {
		return errors.New("dictionary service not configured")
	}

	if err := dictionaryService.Remove(context.Background(), id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return fmt.Errorf("dictionary not found: %s", id)
		}
		return fmt.Errorf("remove failed: %w", err)
	}

	cmd.Printf("Removed dictionary %s.\n", id)
	return nil
}
