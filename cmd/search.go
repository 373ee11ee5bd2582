package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newSearchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "search <term>",
		Short: "Search the knowledge text, case-insensitively",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := setup(cmd)
			if err != nil {
				return err
			}
			defer e.cleanup()

			term := strings.Join(args, " ")
			matches := e.assistant.SearchKnowledge(term)
			out := cmd.OutOrStdout()
			if len(matches) == 0 {
				fmt.Fprintf(out, "No matches for %q.\n", term)
				return nil
			}
			for _, m := range matches {
				fmt.Fprintf(out, "%5d: %s\n", m.Line, strings.TrimSpace(m.Text))
			}
			fmt.Fprintf(out, "\n%d matches\n", len(matches))
			return nil
		},
	}
}
