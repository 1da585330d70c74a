package ratelimit

import (
	"context"

	"golang.org/x/time/rate"
)

// Limiter paces calls to a rate-constrained backend.
// This allows for different implementations (e.g., token-bucket, noop).
type Limiter interface {
	// Wait blocks until a call is allowed or the context is done.
	Wait(ctx context.Context) error
}

// NewBackendRateLimiter creates a token-bucket limiter for a single
// upstream backend with the given rate and burst size.
func NewBackendRateLimiter(r rate.Limit, b int) Limiter {
	return &backendRateLimiter{limiter: rate.NewLimiter(r, b)}
}

type backendRateLimiter struct {
	limiter *rate.Limiter
}

func (l *backendRateLimiter) Wait(ctx context.Context) error {
	return l.limiter.Wait(ctx)
}

// NewNoopLimiter returns a limiter that never blocks. Used in tests.
func NewNoopLimiter() Limiter {
	return noopLimiter{}
}

type noopLimiter struct{}

func (noopLimiter) Wait(ctx context.Context) error { return ctx.Err() }
