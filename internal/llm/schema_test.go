package llm

import (
	"encoding/json"
	"testing"
)

// explainTestSchema mirrors the shape of the tutor's explanation schema.
var explainTestSchema = &Schema{
	Name:        "test-explanation",
	Description: "A worked explanation",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"summary": map[string]any{"type": "string"},
			"steps": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "string"},
			},
		},
		"required":             []string{"summary", "steps"},
		"additionalProperties": false,
	},
}

func TestValidateJSON(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		wantErr bool
	}{
		{"valid", `{"summary":"s","steps":["a","b"]}`, false},
		{"empty steps", `{"summary":"s","steps":[]}`, false},
		{"missing summary", `{"steps":["a"]}`, true},
		{"wrong type", `{"summary":1,"steps":["a"]}`, true},
		{"extra field", `{"summary":"s","steps":[],"x":1}`, true},
		{"not json", `summary: s`, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateJSON(explainTestSchema, json.RawMessage(tt.raw))
			if (err != nil) != tt.wantErr {
				t.Fatalf("validateJSON() err = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && KindOf(err) != KindInvalidResponse {
				t.Fatalf("kind = %q, want invalid_response", KindOf(err))
			}
		})
	}
}

func TestValidateJSON_NilSchema(t *testing.T) {
	if err := validateJSON(nil, json.RawMessage(`not json`)); err != nil {
		t.Fatalf("nil schema should accept anything, got %v", err)
	}
}

func TestInvalidResponseKeepsContent(t *testing.T) {
	err := validateJSON(explainTestSchema, json.RawMessage(`{"steps":[]}`))
	e, ok := err.(*Error)
	if !ok {
		t.Fatalf("expected *Error, got %T", err)
	}
	if string(e.Content) != `{"steps":[]}` {
		t.Fatalf("content = %s", e.Content)
	}
}
