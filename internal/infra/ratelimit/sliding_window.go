// Package ratelimit provides the in-memory sliding-window rate limiter used
// to slow down registration spam and credential guessing. State is
// process-local and rebuilt from empty on restart; multi-node coordination
// is out of scope.
package ratelimit

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"taskhive/config"
	"taskhive/internal/domain/service"
)

const defaultPruneInterval = 10 * time.Minute

// SlidingWindowLimiter counts request instants per client identifier inside
// a trailing window. A single mutex guards the whole map; the
// read-drop-check-append sequence is atomic per call, which is the
// correctness requirement at this scale.
type SlidingWindowLimiter struct {
	mu          sync.Mutex
	windows     map[string][]time.Time
	maxRequests int
	window      time.Duration
	now         func() time.Time
}

// New creates a limiter with the policy from config (5 requests per 300
// seconds when unset) and the wall clock.
func New(cfg *config.Config) service.RateLimiter {
	maxRequests, window := cfg.RateLimitPolicy()

	return NewWithClock(maxRequests, window, time.Now)
}

// NewWithClock creates a limiter with an explicit policy and clock. Tests
// inject a fake clock here to step through the window deterministically.
func NewWithClock(maxRequests int, window time.Duration, now func() time.Time) *SlidingWindowLimiter {
	return &SlidingWindowLimiter{
		windows:     make(map[string][]time.Time),
		maxRequests: maxRequests,
		window:      window,
		now:         now,
	}
}

// Allow drops instants older than now-window for the identifier, rejects if
// the survivors already fill the budget, and otherwise records now.
func (l *SlidingWindowLimiter) Allow(identifier string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	cutoff := now.Add(-l.window)

	instants := l.windows[identifier]
	live := instants[:0]
	for _, instant := range instants {
		if instant.After(cutoff) {
			live = append(live, instant)
		}
	}

	if len(live) >= l.maxRequests {
		l.windows[identifier] = live

		return false
	}

	l.windows[identifier] = append(live, now)

	return true
}

// Prune removes identifiers whose every recorded instant has aged out of
// the window, and returns how many were dropped. Without this the map grows
// without bound as client addresses churn.
func (l *SlidingWindowLimiter) Prune() int {
	l.mu.Lock()
	defer l.mu.Unlock()

	cutoff := l.now().Add(-l.window)
	dropped := 0
	for identifier, instants := range l.windows {
		if len(instants) == 0 || !instants[len(instants)-1].After(cutoff) {
			delete(l.windows, identifier)
			dropped++
		}
	}

	return dropped
}

// RunPruner prunes idle identifiers on a ticker until the context is
// cancelled. The process entry point runs this on its own goroutine.
func (l *SlidingWindowLimiter) RunPruner(ctx context.Context, logger *slog.Logger, interval time.Duration) {
	if interval <= 0 {
		interval = defaultPruneInterval
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if dropped := l.Prune(); dropped > 0 && logger != nil {
				logger.Debug("Pruned idle rate-limit windows", slog.Int("dropped", dropped))
			}
		}
	}
}
