// Package ratelimit provides a per-key politeness limiter for outbound
// requests, backed by token buckets.
package ratelimit

import (
	"context"
	"sync"

	ratelib "golang.org/x/time/rate"
)

// Limiter hands out one token bucket per key (an authority, for the
// user agent) and blocks callers until their bucket allows another
// request. A nil Limiter or a zero rate never blocks.
type Limiter struct {
	rps   float64
	burst int

	mu     sync.Mutex
	perKey map[string]*ratelib.Limiter
}

// New returns a Limiter allowing rps requests per second with the
// given burst per key. rps <= 0 disables throttling.
func New(rps float64, burst int) *Limiter {
	if burst < 1 {
		burst = 1
	}
	return &Limiter{
		rps:    rps,
		burst:  burst,
		perKey: make(map[string]*ratelib.Limiter),
	}
}

// Wait blocks until the key's bucket permits one more request, or ctx
// is done.
func (l *Limiter) Wait(ctx context.Context, key string) error {
	if l == nil || l.rps <= 0 {
		return nil
	}
	l.mu.Lock()
	lim, ok := l.perKey[key]
	if !ok {
		lim = ratelib.NewLimiter(ratelib.Limit(l.rps), l.burst)
		l.perKey[key] = lim
	}
	l.mu.Unlock()
	return lim.Wait(ctx)
}

// Keys reports how many distinct keys have been throttled so far.
func (l *Limiter) Keys() int {
	if l == nil {
		return 0
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.perKey)
}
