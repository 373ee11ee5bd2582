package explain

import "time"

// Config holds explanation generation settings.
type Config struct {
	MaxTokens   int
	Temperature float64

	// Timeout bounds one explanation, provider retries included.
	Timeout time.Duration
}

// DefaultConfig returns sensible defaults for explanations.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   768,
		Temperature: 0.3,
		Timeout:     30 * time.Second,
	}
}
