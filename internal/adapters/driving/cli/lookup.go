package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/yomu-cli/internal/core/domain"
)

var (
	lookupReading string
	lookupBest    bool
	lookupJSON    bool
)

var lookupCmd = &cobra.Command{
	Use:   "lookup [word]",
	Short: "Look up a word in the imported dictionaries",
	Long: `Looks up a Japanese word, conjugated or not, in every imported dictionary.
The word is deinflected first; each result shows the inflections that lead
back to its dictionary form. Use --reading to prefer one homograph.`,
	Args: cobra.ExactArgs(1),
	RunE: runLookup,
}

func init() {
	lookupCmd.Flags().StringVarP(&lookupReading, "reading", "r", "", "preferred kana reading")
	lookupCmd.Flags().BoolVar(&lookupBest, "best", false, "show only the top result")
	lookupCmd.Flags().BoolVar(&lookupJSON, "json", false, "output results as JSON")
	rootCmd.AddCommand(lookupCmd)
}

func runLookup(cmd *cobra.Command, args []string) error {
	word := args[0]

	if lookupService == nil {
		return errors.New("lookup service not configured")
	}

	ctx := context.Background()
	opts := domain.LookupOptions{ReadingHint: lookupReading}

	var results []domain.LookupResult
	if lookupBest {
		best, err := lookupService.LookupWordBest(ctx, word, opts)
		if err != nil {
			return fmt.Errorf("lookup failed: %w", err)
		}
		if best != nil {
			results = append(results, *best)
		}
	} else {
		var err error
		results, err = lookupService.LookupWord(ctx, word, opts)
		if err != nil {
			return fmt.Errorf("lookup failed: %w", err)
		}
	}

	if lookupJSON {
		return outputJSON(cmd, results)
	}
	return outputResults(cmd, results)
}

func outputJSON(cmd *cobra.Command, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal results: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

func outputResults(cmd *cobra.Command, results []domain.LookupResult) error {
	if len(results) == 0 {
		cmd.Println("No results found.")
		return nil
	}

	st := newStyles(cmd.OutOrStdout())
	for i := range results {
		r := &results[i]

		// Format: [N] 食べる【たべる】 (100)
		header := st.index.Render(fmt.Sprintf("[%d]", i+1)) + " " + st.term.Render(r.DictionaryForm)
		if r.Reading != "" && r.Reading != r.DictionaryForm {
			header += st.reading.Render("【" + r.Reading + "】")
		}
		header += st.muted.Render(fmt.Sprintf(" (%d)", r.Score))
		if r.MatchLength > 0 {
			header += st.muted.Render(fmt.Sprintf(" [%s]", r.SelectedWord))
		}
		cmd.Println(header)

		if len(r.InflectionPath) > 0 {
			cmd.Println("      " + st.path.Render("← "+strings.Join(r.InflectionPath, " ← ")))
		}
		if len(r.PartOfSpeech) > 0 {
			cmd.Println("      " + st.tags.Render(strings.Join(r.PartOfSpeech, ", ")))
		}
		for j, def := range r.Definitions {
			cmd.Println(st.gloss.Render(fmt.Sprintf("%d. %s", j+1, def)))
		}
		cmd.Println()
	}

	return nil
}
