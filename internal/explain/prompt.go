package explain

import (
	"fmt"
	"strings"
)

const systemPrompt = `You are a patient calculus tutor for high-school and first-year university students. You explain results step by step without skipping the rule that justifies each step.`

func buildUserMessage(input Input) string {
	var b strings.Builder

	switch input.Kind {
	case KindDerivative, KindIntegral:
		b.WriteString(fmt.Sprintf("Task: %s with respect to %s\n", input.Kind, input.Variable))
		b.WriteString(fmt.Sprintf("Function: %s\n", input.Expression))
		b.WriteString(fmt.Sprintf("Computed result: %s\n", input.Result))
		b.WriteString(`
Instructions:
1. Name the rule or rules that produce the computed result in the summary.
2. Walk from the function to the result in 2-6 short steps.
3. Do not contradict the computed result. It comes from a symbolic engine.`)
		if input.Kind == KindIntegral {
			b.WriteString("\n4. Mention the constant of integration in the last step.")
		}
	case KindPractice:
		b.WriteString(fmt.Sprintf("Practice problem: %s\n", input.Question))
		if input.Answer != "" {
			b.WriteString(fmt.Sprintf("Expected answer: %s\n", input.Answer))
			b.WriteString(`
Instructions:
1. Show how to reach the expected answer in 2-6 short steps.
2. Name the rule used in the summary.`)
		} else {
			b.WriteString(`
Instructions:
1. Give a hint, not the answer. The student has not seen the answer yet.
2. The summary names the rule to use. The steps set the problem up but stop before the final value.`)
		}
	}
	b.WriteString("\nUse plain ASCII text for all math. No LaTeX. Use ** for powers and * for multiplication.")

	return b.String()
}
