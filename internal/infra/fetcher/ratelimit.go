package fetcher

import (
	"context"

	"golang.org/x/time/rate"
)

// RateLimiter implements token bucket rate limiting toward the dataset API.
// It keeps paginated downloads polite instead of hammering the upstream.
type RateLimiter struct {
	limiter *rate.Limiter
}

// NewRateLimiter creates a new RateLimiter.
//
// Parameters:
//   - requestsPerSecond: maximum sustained request rate
//   - burst: maximum number of requests allowed in a burst
func NewRateLimiter(requestsPerSecond float64, burst int) *RateLimiter {
	return &RateLimiter{
		limiter: rate.NewLimiter(rate.Limit(requestsPerSecond), burst),
	}
}

// Allow blocks until a token is available or the context is canceled.
func (r *RateLimiter) Allow(ctx context.Context) error {
	return r.limiter.Wait(ctx)
}
