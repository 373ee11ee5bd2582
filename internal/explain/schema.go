package explain

import "github.com/abhisek/calctutor/internal/llm"

// ExplanationSchema defines the JSON schema for step-by-step explanations.
var ExplanationSchema = &llm.Schema{
	Name:        "calculus-explanation",
	Description: "A short step-by-step explanation of a calculus result",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"summary": map[string]any{
				"type":        "string",
				"description": "One or two sentences naming the rule or idea used",
			},
			"steps": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"description": "2-6 ordered steps, each a single line of plain ASCII math",
			},
		},
		"required":             []any{"summary", "steps"},
		"additionalProperties": false,
	},
}
