package llm

import (
	"fmt"
	"os"
	"strings"
	"time"
)

// envPrefix namespaces every variable read by ConfigFromEnv.
const envPrefix = "CALCTUTOR_"

// Provider names accepted in Config.Provider.
const (
	ProviderAnthropic  = "anthropic"
	ProviderOpenAI     = "openai"
	ProviderGemini     = "gemini"
	ProviderOpenRouter = "openrouter"
	ProviderMock       = "mock"
)

// Config selects and configures one provider.
type Config struct {
	Provider string

	Anthropic  ProviderConfig
	OpenAI     ProviderConfig
	Gemini     ProviderConfig
	OpenRouter ProviderConfig

	Retry RetryConfig

	// Timeout bounds one logical request, retries included.
	Timeout time.Duration
}

// ProviderConfig holds the settings shared by every hosted provider.
type ProviderConfig struct {
	APIKey  string
	Model   string // friendly name or provider model ID
	BaseURL string // optional API endpoint override
}

// RetryConfig configures backoff for transient failures.
type RetryConfig struct {
	MaxAttempts int
	InitialWait time.Duration
	MaxWait     time.Duration
	Multiplier  float64
}

// DefaultConfig returns the defaults: Anthropic Haiku, three attempts, 30s.
func DefaultConfig() Config {
	return Config{
		Provider:   ProviderAnthropic,
		Anthropic:  ProviderConfig{Model: "claude-haiku"},
		OpenAI:     ProviderConfig{Model: "gpt-4o-mini"},
		Gemini:     ProviderConfig{Model: "gemini-flash"},
		OpenRouter: ProviderConfig{Model: "google/gemini-2.0-flash-exp"},
		Retry: RetryConfig{
			MaxAttempts: 3,
			InitialWait: time.Second,
			MaxWait:     10 * time.Second,
			Multiplier:  2,
		},
		Timeout: 30 * time.Second,
	}
}

// providers maps provider names to their settings within c.
func (c *Config) providers() map[string]*ProviderConfig {
	return map[string]*ProviderConfig{
		ProviderAnthropic:  &c.Anthropic,
		ProviderOpenAI:     &c.OpenAI,
		ProviderGemini:     &c.Gemini,
		ProviderOpenRouter: &c.OpenRouter,
	}
}

// ConfigFromEnv overlays CALCTUTOR_* variables on the defaults:
// CALCTUTOR_LLM_PROVIDER, CALCTUTOR_LLM_TIMEOUT and, per provider,
// CALCTUTOR_<NAME>_API_KEY, _MODEL and _BASE_URL.
func ConfigFromEnv() Config {
	cfg := DefaultConfig()
	setFromEnv(&cfg.Provider, "LLM_PROVIDER")
	if v := os.Getenv(envPrefix + "LLM_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			cfg.Timeout = d
		}
	}
	for name, pc := range cfg.providers() {
		upper := strings.ToUpper(name)
		setFromEnv(&pc.APIKey, upper+"_API_KEY")
		setFromEnv(&pc.Model, upper+"_MODEL")
		setFromEnv(&pc.BaseURL, upper+"_BASE_URL")
	}
	return cfg
}

func setFromEnv(dst *string, name string) {
	if v := os.Getenv(envPrefix + name); v != "" {
		*dst = v
	}
}

// discoveryOrder is the priority in which DiscoverConfig probes the
// providers' own API key variables.
var discoveryOrder = []struct {
	provider string
	env      string
}{
	{ProviderGemini, "GEMINI_API_KEY"},
	{ProviderOpenAI, "OPENAI_API_KEY"},
	{ProviderAnthropic, "ANTHROPIC_API_KEY"},
	{ProviderOpenRouter, "OPENROUTER_API_KEY"},
}

// DiscoverConfig returns a config for the first provider whose standard
// *_API_KEY variable is set.
func DiscoverConfig() (Config, bool) {
	cfg := DefaultConfig()
	for _, d := range discoveryOrder {
		if k := os.Getenv(d.env); k != "" {
			cfg.Provider = d.provider
			cfg.providers()[d.provider].APIKey = k
			return cfg, true
		}
	}
	return Config{}, false
}

// ResolveConfig prefers an explicit CALCTUTOR_LLM_PROVIDER setup and falls
// back to discovery.
func ResolveConfig() (Config, error) {
	if os.Getenv(envPrefix+"LLM_PROVIDER") != "" {
		cfg := ConfigFromEnv()
		return cfg, cfg.Validate()
	}
	if cfg, ok := DiscoverConfig(); ok {
		return cfg, nil
	}
	return Config{}, fmt.Errorf("no LLM provider configured: set %sLLM_PROVIDER or a provider API key", envPrefix)
}

// Validate checks that the selected provider is known and has a key.
func (c Config) Validate() error {
	if c.Provider == ProviderMock {
		return nil
	}
	pc, ok := c.providers()[c.Provider]
	if !ok {
		return fmt.Errorf("unknown LLM provider: %q", c.Provider)
	}
	if pc.APIKey == "" {
		return fmt.Errorf("%s%s_API_KEY is required for the %s provider",
			envPrefix, strings.ToUpper(c.Provider), c.Provider)
	}
	return nil
}
