package llm

import (
	"context"
	"fmt"

	"go.uber.org/zap"
)

// NewProvider builds the provider selected by cfg, wrapped as
// caller -> retry -> logging -> provider. The mock provider is returned
// bare with an empty script.
func NewProvider(ctx context.Context, cfg Config, logger *zap.Logger) (Provider, error) {
	var (
		base Provider
		err  error
	)
	switch cfg.Provider {
	case ProviderAnthropic:
		base, err = NewAnthropicProvider(cfg.Anthropic)
	case ProviderOpenAI:
		base, err = NewOpenAIProvider(cfg.OpenAI)
	case ProviderOpenRouter:
		base, err = NewOpenRouterProvider(cfg.OpenRouter)
	case ProviderGemini:
		base, err = NewGeminiProvider(ctx, cfg.Gemini)
	case ProviderMock:
		return NewMockProvider(), nil
	default:
		return nil, fmt.Errorf("unknown LLM provider: %q", cfg.Provider)
	}
	if err != nil {
		return nil, fmt.Errorf("initializing %s provider: %w", cfg.Provider, err)
	}
	return WithRetry(WithLogging(base, logger), cfg.Retry, logger), nil
}

// NewProviderFromEnv resolves configuration from the environment and builds
// the provider. It fails when no provider is configured.
func NewProviderFromEnv(ctx context.Context, logger *zap.Logger) (Provider, Config, error) {
	cfg, err := ResolveConfig()
	if err != nil {
		return nil, Config{}, err
	}
	p, err := NewProvider(ctx, cfg, logger)
	if err != nil {
		return nil, Config{}, err
	}
	return p, cfg, nil
}
