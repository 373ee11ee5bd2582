// Package llm talks to hosted language models for the AI tutor.
//
// Every provider returns JSON content. When a request carries a Schema the
// provider asks the model for structured output and validates the reply
// before returning it. Failures share one error type (*Error) so the retry
// middleware can tell transient failures from permanent ones.
package llm

import (
	"context"
	"encoding/json"
)

// Provider generates a reply for a request.
type Provider interface {
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID is the model this provider sends requests to.
	ModelID() string
}

// Request is one generation call.
type Request struct {
	// System sets the model's role and constraints.
	System string

	// Messages is the conversation. Tutor requests are single-turn.
	Messages []Message

	// Schema, when set, selects the provider's structured output mode and
	// the reply is validated against it.
	Schema *Schema

	MaxTokens   int
	Temperature float64
}

// Prompt builds a single-turn request.
func Prompt(system, user string, schema *Schema, maxTokens int) Request {
	return Request{
		System:    system,
		Messages:  []Message{{Role: RoleUser, Content: user}},
		Schema:    schema,
		MaxTokens: maxTokens,
	}
}

// Message is one conversation turn.
type Message struct {
	Role    Role
	Content string
}

// Role is the sender of a message.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Schema is a named JSON Schema for structured output.
type Schema struct {
	// Name is sent as the schema or tool name, kebab-case.
	Name        string
	Description string
	Definition  map[string]any
}

// Stop reasons reported in Response.StopReason.
const (
	StopEnd       = "end"
	StopMaxTokens = "max_tokens"
)

// Response is a model reply.
type Response struct {
	// Content is the validated JSON object when the request had a Schema,
	// otherwise the raw reply text.
	Content    json.RawMessage
	Usage      Usage
	Model      string
	StopReason string
}

// Usage counts tokens for one request.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
