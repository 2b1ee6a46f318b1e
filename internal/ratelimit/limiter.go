// Package ratelimit provides client-side request budgeting keyed by access
// token, using a fixed-window counter. It honors server Retry-After hints
// over local accounting and is safe for concurrent use.
package ratelimit

import (
	"context"
	"sync"
	"time"

	"github.com/hyacinth-io/clio/pkg/clio"
)

// Config holds the window parameters. They are inputs, never hard-coded.
type Config struct {
	// Limit is the number of requests allowed per Window. Zero disables
	// limiting entirely.
	Limit int
	// Window is the budget window duration.
	Window time.Duration
	// FailFast returns *clio.RateLimitError instead of waiting for capacity.
	FailFast bool
}

// bucket tracks one token's budget. used never exceeds the configured limit
// within a window; notBefore carries a server Retry-After penalty.
type bucket struct {
	windowStart time.Time
	used        int
	notBefore   time.Time
}

// Limiter is a fixed-window counter keyed by token identifier. Buckets are
// created lazily per key and discarded with Forget when a token is discarded.
type Limiter struct {
	mu      sync.Mutex
	config  Config
	buckets map[string]*bucket
}

// New creates a limiter with the given window parameters.
func New(config Config) *Limiter {
	if config.Window <= 0 {
		config.Window = time.Minute
	}

	return &Limiter{
		config:  config,
		buckets: make(map[string]*bucket),
	}
}

// Acquire blocks until a request slot is available for key, or fails with
// *clio.RateLimitError in fail-fast mode. Waits respect ctx cancellation;
// accounting already applied is not rolled back on cancellation.
func (l *Limiter) Acquire(ctx context.Context, key string) error {
	if l == nil || l.config.Limit <= 0 {
		return nil
	}

	for {
		wait, err := l.tryAcquire(key)
		if err != nil {
			return err
		}

		if wait <= 0 {
			return nil
		}

		timer := time.NewTimer(wait)
		select {
		case <-ctx.Done():
			timer.Stop()

			return ctx.Err()
		case <-timer.C:
		}
	}
}

// tryAcquire consumes a slot or reports how long to wait for one.
func (l *Limiter) tryAcquire(key string) (time.Duration, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := time.Now()

	b, ok := l.buckets[key]
	if !ok {
		b = &bucket{windowStart: now}
		l.buckets[key] = b
	}

	// A server Retry-After hint overrides local accounting.
	if now.Before(b.notBefore) {
		wait := b.notBefore.Sub(now)
		if l.config.FailFast {
			return 0, &clio.RateLimitError{RetryAfter: wait}
		}

		return wait, nil
	}

	if now.Sub(b.windowStart) >= l.config.Window {
		b.windowStart = now
		b.used = 0
	}

	if b.used < l.config.Limit {
		b.used++

		return 0, nil
	}

	wait := b.windowStart.Add(l.config.Window).Sub(now)
	if l.config.FailFast {
		return 0, &clio.RateLimitError{RetryAfter: wait}
	}

	return wait, nil
}

// Penalize records a server-issued Retry-After for key so the next Acquire
// honors it, correcting drift between local and server-side accounting.
func (l *Limiter) Penalize(key string, retryAfter time.Duration) {
	if l == nil || l.config.Limit <= 0 || retryAfter <= 0 {
		return
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	b, ok := l.buckets[key]
	if !ok {
		b = &bucket{windowStart: time.Now()}
		l.buckets[key] = b
	}

	notBefore := time.Now().Add(retryAfter)
	if notBefore.After(b.notBefore) {
		b.notBefore = notBefore
	}
}

// Forget drops the budget for key, e.g. when its token is rotated away.
func (l *Limiter) Forget(key string) {
	if l == nil {
		return
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	delete(l.buckets, key)
}
