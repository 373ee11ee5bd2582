package cmd

import (
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/spf13/cobra"

	"github.com/abhisek/calctutor/internal/assistant"
	"github.com/abhisek/calctutor/internal/ui/components"
)

func newPlotCmd() *cobra.Command {
	c := &cobra.Command{
		Use:     "plot <expression>",
		Short:   "Draw an expression as a terminal chart",
		Example: `  calctutor plot "sin(x)"` + "\n" + `  calctutor plot "x**3 - x" --from -2 --to 2`,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			variable, _ := cmd.Flags().GetString("var")
			lo, _ := cmd.Flags().GetFloat64("from")
			hi, _ := cmd.Flags().GetFloat64("to")
			width, _ := cmd.Flags().GetInt("width")
			height, _ := cmd.Flags().GetInt("height")

			e, err := setup(cmd)
			if err != nil {
				return err
			}
			defer e.cleanup()

			fig, err := e.assistant.Plot(strings.Join(args, " "), strings.TrimSpace(variable), lo, hi)
			if err != nil {
				return err
			}
			chart := components.Chart(components.ChartData{
				X:      fig.X,
				Y:      fig.Y,
				Title:  fig.Title,
				XLabel: fig.XLabel,
				YLabel: fig.YLabel,
				Legend: fig.Legend,
			}, width, height)
			lipgloss.Fprintln(cmd.OutOrStdout(), chart)
			return nil
		},
	}
	c.Flags().String("var", assistant.DefaultVariable, "Variable on the x axis")
	c.Flags().Float64("from", -10, "Lower end of the x range")
	c.Flags().Float64("to", 10, "Upper end of the x range")
	c.Flags().Int("width", 70, "Chart width in columns")
	c.Flags().Int("height", 15, "Chart height in rows")
	return c
}
