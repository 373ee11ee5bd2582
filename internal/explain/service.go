// Package explain asks an LLM tutor for step-by-step explanations of
// calculus results and hints for practice problems.
package explain

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/abhisek/calctutor/internal/llm"
)

// Service generates explanations.
type Service struct {
	provider llm.Provider
	cfg      Config
}

// NewService creates an explanation service.
func NewService(provider llm.Provider, cfg Config) *Service {
	return &Service{provider: provider, cfg: cfg}
}

type explanationOutput struct {
	Summary string   `json:"summary"`
	Steps   []string `json:"steps"`
}

// Explain asks the provider for an explanation of input. The call is
// bounded by Config.Timeout.
func (s *Service) Explain(ctx context.Context, input Input) (*Explanation, error) {
	if err := validate(input); err != nil {
		return nil, err
	}
	ctx = llm.WithPurpose(ctx, "explain-"+string(input.Kind))
	if s.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.cfg.Timeout)
		defer cancel()
	}

	req := llm.Prompt(systemPrompt, buildUserMessage(input), ExplanationSchema, s.cfg.MaxTokens)
	req.Temperature = s.cfg.Temperature

	resp, err := s.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("explanation: %w", err)
	}

	var out explanationOutput
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return nil, fmt.Errorf("parse explanation response: %w", err)
	}
	return &Explanation{Summary: out.Summary, Steps: out.Steps}, nil
}

func validate(input Input) error {
	switch input.Kind {
	case KindDerivative, KindIntegral:
		if input.Expression == "" || input.Result == "" {
			return fmt.Errorf("explain %s: expression and result are required", input.Kind)
		}
	case KindPractice:
		if input.Question == "" {
			return fmt.Errorf("explain practice: question is required")
		}
	default:
		return fmt.Errorf("explain: unknown kind %q", input.Kind)
	}
	return nil
}
