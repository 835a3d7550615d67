package llm

import (
	"context"
	"time"

	"golang.org/x/time/rate"
)

// RateLimitProvider is a decorator that spaces out requests with a token
// bucket so rapid card flipping cannot flood the provider.
type RateLimitProvider struct {
	inner   Provider
	limiter *rate.Limiter
}

// WithRateLimit wraps a Provider with a requests-per-minute limit. A
// non-positive rpm returns p unchanged.
func WithRateLimit(p Provider, rpm int) Provider {
	if rpm <= 0 {
		return p
	}
	every := time.Minute / time.Duration(rpm)
	burst := max(1, rpm/10)
	return &RateLimitProvider{inner: p, limiter: rate.NewLimiter(rate.Every(every), burst)}
}

func (r *RateLimitProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	if err := r.limiter.Wait(ctx); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		// The wait would outlast the context deadline.
		return nil, &ErrRateLimit{Err: err}
	}
	return r.inner.Generate(ctx, req)
}

func (r *RateLimitProvider) ModelID() string {
	return r.inner.ModelID()
}
