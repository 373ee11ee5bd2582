package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/calctutor/internal/problembank"
)

func newProblemsCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "problems",
		Short: "List the practice problems (optionally filtered by difficulty)",
		RunE: func(cmd *cobra.Command, args []string) error {
			diff, _ := cmd.Flags().GetString("difficulty")

			var filter problembank.Difficulty
			if diff != "" {
				d, err := problembank.ParseDifficulty(diff)
				if err != nil {
					return err
				}
				filter = d
			}

			e, err := setup(cmd)
			if err != nil {
				return err
			}
			defer e.cleanup()

			bank := e.assistant.Bank()
			problems := bank.All()
			if filter != "" {
				problems = bank.Filter(filter)
			}

			out := cmd.OutOrStdout()
			if len(problems) == 0 {
				fmt.Fprintf(out, "No problems found in %s.\n", e.settings.problems)
				return nil
			}

			fmt.Fprintf(out, "%-6s  %-50s  %s\n", "Level", "Question", "Answer")
			fmt.Fprintln(out, strings.Repeat("─", 72))
			for _, p := range problems {
				q := p.Question
				if len([]rune(q)) > 50 {
					q = string([]rune(q)[:47]) + "..."
				}
				fmt.Fprintf(out, "%-6s  %-50s  %s\n", p.Difficulty, q, p.Answer)
			}

			counts := bank.Counts()
			fmt.Fprintf(out, "\n%d problems (easy %d, medium %d, hard %d)\n",
				bank.Len(), counts[problembank.Easy], counts[problembank.Medium], counts[problembank.Hard])
			return nil
		},
	}
	c.Flags().String("difficulty", "", "Filter by difficulty (easy, medium or hard)")
	return c
}
