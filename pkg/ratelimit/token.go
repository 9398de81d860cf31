package ratelimit

import (
	"context"
	"sync"
	"time"
)

// TokenLimiter enforces a token budget per refill period. Request-count limits
// are handled by golang.org/x/time/rate; this limiter tracks consumed model
// tokens instead.
type TokenLimiter struct {
	sync.Mutex
	capacity     int
	remaining    int
	refillPeriod time.Duration
	lastRefill   time.Time
}

func NewTokenLimiter(tokensPerMinute int) *TokenLimiter {
	return &TokenLimiter{
		capacity:     tokensPerMinute,
		remaining:    tokensPerMinute,
		refillPeriod: time.Minute,
		lastRefill:   time.Now(),
	}
}

// Wait blocks until the requested number of tokens is available or the context
// is cancelled.
func (l *TokenLimiter) Wait(ctx context.Context, tokens int) error {
	for {
		l.refill()

		l.Lock()
		if l.remaining >= tokens {
			l.remaining -= tokens
			l.Unlock()
			return nil
		}
		l.Unlock()

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(100 * time.Millisecond):
		}
	}
}

func (l *TokenLimiter) refill() {
	l.Lock()
	defer l.Unlock()

	now := time.Now()
	if now.Sub(l.lastRefill) >= l.refillPeriod {
		l.remaining = l.capacity
		l.lastRefill = now
	}
}

func (l *TokenLimiter) GetRemaining() int {
	l.Lock()
	defer l.Unlock()
	return l.remaining
}
