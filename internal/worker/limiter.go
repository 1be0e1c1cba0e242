// Package worker provides shared admission control for outbound model calls.
// Retry/backoff inside the gateway only paces one extraction; many
// simultaneous uploads could still collectively exceed the provider's rate
// limit, so every call first passes through one process-wide limiter.
package worker

import (
	"context"

	"golang.org/x/time/rate"

	"github.com/chaitanyajadhav1/RStar-FreightDocBot-sub003/internal/config"
)

// Limiter combines a token-bucket rate limit with a bounded concurrency
// semaphore. It satisfies the gateway's Admission interface.
type Limiter struct {
	rl  *rate.Limiter
	sem chan struct{}
}

// NewLimiter creates a limiter from config, applying sane floors for
// zero-valued settings.
func NewLimiter(cfg *config.LimiterConfig) *Limiter {
	rps := cfg.RequestsPerSecond
	if rps <= 0 {
		rps = 2.0
	}
	burst := cfg.Burst
	if burst <= 0 {
		burst = 1
	}
	maxConcurrent := cfg.MaxConcurrent
	if maxConcurrent <= 0 {
		maxConcurrent = 8
	}
	return &Limiter{
		rl:  rate.NewLimiter(rate.Limit(rps), burst),
		sem: make(chan struct{}, maxConcurrent),
	}
}

// Acquire blocks until a concurrency slot and a rate token are available, or
// the context expires. The returned release func must be called exactly once.
func (l *Limiter) Acquire(ctx context.Context) (func(), error) {
	select {
	case l.sem <- struct{}{}:
	case <-ctx.Done():
		return nil, ctx.Err()
	}

	if err := l.rl.Wait(ctx); err != nil {
		<-l.sem
		return nil, err
	}

	return func() { <-l.sem }, nil
}
