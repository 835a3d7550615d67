package llm

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/abhisek/kanacards/internal/store"
)

// ErrNotConfigured is returned when no provider credentials are available.
var ErrNotConfigured = errors.New("no LLM provider configured")

// Options are the shared dependencies of the provider middleware.
type Options struct {
	// Events records every request. Nil disables the request log.
	Events    store.EventRepo
	Logger    *slog.Logger
	SessionID string
}

// NewProvider creates a Provider from configuration.
// It returns the provider wrapped with rate limiting, retry and logging
// middleware.
func NewProvider(ctx context.Context, cfg Config, opts Options) (Provider, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	var base Provider
	var err error

	switch cfg.Provider {
	case "gemini":
		base, err = NewGeminiProvider(ctx, cfg.Gemini)
	case "openai":
		base, err = NewOpenAIProvider(cfg.OpenAI)
	case "anthropic":
		base, err = NewAnthropicProvider(cfg.Anthropic)
	case "openrouter":
		base, err = NewOpenRouterProvider(cfg.OpenRouter)
	case "mock":
		base = NewDemoProvider()
	default:
		return nil, fmt.Errorf("unknown LLM provider: %q", cfg.Provider)
	}
	if err != nil {
		return nil, fmt.Errorf("initializing %s provider: %w", cfg.Provider, err)
	}

	return wrap(base, cfg, opts), nil
}

// wrap applies middleware: caller → rate limit → retry → logging → base.
// Each retry attempt is logged; the limiter admits one logical request.
func wrap(base Provider, cfg Config, opts Options) Provider {
	logged := WithLogging(base, opts.Events, opts.Logger, opts.SessionID)
	retried := WithRetry(logged, cfg.Retry).WithLogger(opts.Logger)
	return WithRateLimit(retried, cfg.RequestsPerMinute)
}

// NewProviderFromEnv builds a provider from KANACARDS_* variables, falling
// back to the standard vendor key variables. It returns ErrNotConfigured
// when no credentials are found.
func NewProviderFromEnv(ctx context.Context, opts Options) (Provider, error) {
	cfg := ConfigFromEnv()
	if !cfg.HasKey() {
		discovered, ok := DiscoverConfig()
		if !ok {
			return nil, ErrNotConfigured
		}
		discovered.RequestsPerMinute = cfg.RequestsPerMinute
		cfg = discovered
	}
	return NewProvider(ctx, cfg, opts)
}
