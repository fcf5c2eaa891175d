package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/yomu-cli/internal/core/domain"
)

var deinflectJSON bool

var deinflectCmd = &cobra.Command{
	Use:   "deinflect [word]",
	Short: "List the possible dictionary forms of a word",
	Long: `Applies the deinflection rules backwards and prints every candidate
dictionary form with the grammar classes and inflections that produced it.
No dictionary is consulted.`,
	Args: cobra.ExactArgs(1),
	RunE: runDeinflect,
}

func init() {
	deinflectCmd.Flags().BoolVar(&deinflectJSON, "json", false, "output candidates as JSON")
	rootCmd.AddCommand(deinflectCmd)
}

func runDeinflect(cmd *cobra.Command, args []string) error {
	if lookupService == nil {
		return errors.New("lookup service not configured")
	}

	candidates := lookupService.Deinflect(args[0])

	if deinflectJSON {
		return outputJSON(cmd, candidates)
	}
	return outputCandidates(cmd, candidates)
}

func outputCandidates(cmd *cobra.Command, candidates []domain.DeinflectionCandidate) error {
	st := newStyles(cmd.OutOrStdout())

	for i, c := range candidates {
		line := st.index.Render(fmt.Sprintf("[%d]", i+1)) + " " + st.term.Render(c.Term)
		if len(c.GrammarChain) > 0 {
			classes := make([]string, len(c.GrammarChain))
			for j, class := range c.GrammarChain {
				classes[j] = class.String()
			}
			line += "  " + st.tags.Render(strings.Join(classes, " "))
		}
		if len(c.ReasonChain) > 0 {
			line += "  " + st.path.Render("← "+strings.Join(c.ReasonChain, " ← "))
		}
		cmd.Println(line)
	}

	return nil
}
