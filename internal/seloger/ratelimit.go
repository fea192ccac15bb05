package seloger

import (
	"context"
	"fmt"

	"golang.org/x/time/rate"
)

// RateLimiter paces page fetches against the remote service with a
// token bucket. Cycle-level pacing is handled separately by the
// scheduler cooldown; this bounds burst behavior within a cycle.
type RateLimiter struct {
	limiter *rate.Limiter
}

// NewRateLimiter creates a limiter allowing perSecond requests with the
// given burst size.
func NewRateLimiter(perSecond float64, burst int) *RateLimiter {
	return &RateLimiter{
		limiter: rate.NewLimiter(rate.Limit(perSecond), burst),
	}
}

// Wait blocks until the limiter allows the call or the context is
// canceled.
func (r *RateLimiter) Wait(ctx context.Context) error {
	if err := r.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limiter wait: %w", err)
	}
	return nil
}
