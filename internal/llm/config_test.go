package llm

import (
	"strings"
	"testing"
	"time"
)

// clearProviderEnv blanks every variable the config readers look at.
func clearProviderEnv(t *testing.T) {
	t.Helper()
	for _, d := range discoveryOrder {
		t.Setenv(d.env, "")
	}
	t.Setenv(envPrefix+"LLM_PROVIDER", "")
	t.Setenv(envPrefix+"LLM_TIMEOUT", "")
	for _, name := range []string{"ANTHROPIC", "OPENAI", "GEMINI", "OPENROUTER"} {
		t.Setenv(envPrefix+name+"_API_KEY", "")
		t.Setenv(envPrefix+name+"_MODEL", "")
		t.Setenv(envPrefix+name+"_BASE_URL", "")
	}
}

func TestConfigFromEnv(t *testing.T) {
	clearProviderEnv(t)
	t.Setenv("CALCTUTOR_LLM_PROVIDER", "openai")
	t.Setenv("CALCTUTOR_OPENAI_API_KEY", "sk-test")
	t.Setenv("CALCTUTOR_OPENAI_MODEL", "gpt-4o")
	t.Setenv("CALCTUTOR_OPENAI_BASE_URL", "http://localhost:8080/v1")
	t.Setenv("CALCTUTOR_LLM_TIMEOUT", "5s")

	cfg := ConfigFromEnv()
	if cfg.Provider != ProviderOpenAI {
		t.Fatalf("provider = %q", cfg.Provider)
	}
	if cfg.OpenAI.APIKey != "sk-test" || cfg.OpenAI.Model != "gpt-4o" || cfg.OpenAI.BaseURL != "http://localhost:8080/v1" {
		t.Fatalf("openai = %+v", cfg.OpenAI)
	}
	if cfg.Timeout != 5*time.Second {
		t.Fatalf("timeout = %v", cfg.Timeout)
	}
	if cfg.Anthropic.Model != "claude-haiku" {
		t.Fatalf("anthropic defaults lost: %+v", cfg.Anthropic)
	}
}

func TestConfigFromEnv_BadTimeoutKeepsDefault(t *testing.T) {
	clearProviderEnv(t)
	t.Setenv("CALCTUTOR_LLM_TIMEOUT", "soon")
	if cfg := ConfigFromEnv(); cfg.Timeout != DefaultConfig().Timeout {
		t.Fatalf("timeout = %v", cfg.Timeout)
	}
}

func TestDiscoverConfig(t *testing.T) {
	clearProviderEnv(t)
	if _, ok := DiscoverConfig(); ok {
		t.Fatal("expected no provider with an empty environment")
	}

	t.Setenv("ANTHROPIC_API_KEY", "a-key")
	t.Setenv("OPENAI_API_KEY", "o-key")
	cfg, ok := DiscoverConfig()
	if !ok {
		t.Fatal("expected a provider")
	}
	if cfg.Provider != ProviderOpenAI || cfg.OpenAI.APIKey != "o-key" {
		t.Fatalf("openai should win over anthropic, got %q", cfg.Provider)
	}
}

func TestResolveConfig(t *testing.T) {
	clearProviderEnv(t)
	if _, err := ResolveConfig(); err == nil {
		t.Fatal("expected error with nothing configured")
	}

	t.Setenv("GEMINI_API_KEY", "g-key")
	cfg, err := ResolveConfig()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Provider != ProviderGemini {
		t.Fatalf("provider = %q", cfg.Provider)
	}

	// An explicit provider wins over discovery and must be complete.
	t.Setenv("CALCTUTOR_LLM_PROVIDER", "anthropic")
	if _, err := ResolveConfig(); err == nil || !strings.Contains(err.Error(), "CALCTUTOR_ANTHROPIC_API_KEY") {
		t.Fatalf("expected missing key error, got %v", err)
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"mock needs nothing", func(c *Config) { c.Provider = ProviderMock }, false},
		{"unknown provider", func(c *Config) { c.Provider = "bard" }, true},
		{"missing key", func(c *Config) { c.Provider = ProviderGemini }, true},
		{"complete", func(c *Config) { c.Provider = ProviderOpenRouter; c.OpenRouter.APIKey = "k" }, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			if err := cfg.Validate(); (err != nil) != tt.wantErr {
				t.Fatalf("Validate() = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
