package enrich

import "time"

// Config holds mnemonic generation settings.
type Config struct {
	MaxTokens   int
	Temperature float64

	// Timeout bounds a single Enrich call, retries included.
	Timeout time.Duration
}

// DefaultConfig returns sensible defaults for mnemonic generation.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   400,
		Temperature: 0.7,
		Timeout:     20 * time.Second,
	}
}
