package cmd

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/calctutor/internal/assistant"
	"github.com/abhisek/calctutor/internal/explain"
)

type calcOp struct {
	use     string
	short   string
	example string
	kind    explain.Kind
	run     func(*assistant.Assistant, string, string) assistant.Result
}

var (
	opDerive = calcOp{
		use:     "derive <expression>",
		short:   "Differentiate an expression",
		example: `  calctutor derive "x**2 + 3*x + 1"` + "\n" + `  calctutor derive "sin(t)*t" --var t`,
		kind:    explain.KindDerivative,
		run:     (*assistant.Assistant).Differentiate,
	}
	opIntegrate = calcOp{
		use:     "integrate <expression>",
		short:   "Find the indefinite integral of an expression",
		example: `  calctutor integrate "2*x + 1"`,
		kind:    explain.KindIntegral,
		run:     (*assistant.Assistant).Integrate,
	}
)

func newCalculusCmd(op calcOp) *cobra.Command {
	c := &cobra.Command{
		Use:     op.use,
		Short:   op.short,
		Example: op.example,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			variable, _ := cmd.Flags().GetString("var")
			variable = strings.TrimSpace(variable)
			withExplain, _ := cmd.Flags().GetBool("explain")

			e, err := setup(cmd)
			if err != nil {
				return err
			}
			defer e.cleanup()

			expr := strings.Join(args, " ")
			res := op.run(e.assistant, expr, variable)
			if !res.OK() {
				return res.Err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, res.Value)

			if !withExplain {
				return nil
			}
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			explainer, _ := newExplainer(ctx, e.logger)
			if explainer == nil {
				return fmt.Errorf("--explain needs an LLM provider; set ANTHROPIC_API_KEY, OPENAI_API_KEY, GEMINI_API_KEY or OPENROUTER_API_KEY")
			}
			ex, err := explainer.Explain(ctx, explain.Input{
				Kind:       op.kind,
				Expression: expr,
				Variable:   variable,
				Result:     res.Value,
			})
			if err != nil {
				return err
			}
			printExplanation(out, ex)
			return nil
		},
	}
	c.Flags().String("var", assistant.DefaultVariable, "Variable of differentiation or integration")
	c.Flags().Bool("explain", false, "Ask the AI tutor to explain the result")
	return c
}

func printExplanation(w io.Writer, ex *explain.Explanation) {
	fmt.Fprintf(w, "\n%s\n", ex.Summary)
	for i, step := range ex.Steps {
		fmt.Fprintf(w, "  %d. %s\n", i+1, step)
	}
}
