// Package ratelimit implements a sliding-window request limiter. Each
// key holds the timestamps of its recent requests; a request is admitted
// while fewer than max timestamps fall inside the trailing window.
package ratelimit

import (
	"sync"
	"time"
)

// Limiter counts requests per key over a sliding window. Stale
// timestamps are pruned lazily on the next check for that key; there is
// no background sweep.
type Limiter struct {
	mu     sync.Mutex
	window time.Duration
	max    int
	hits   map[string][]time.Time
	now    func() time.Time
}

// New creates a limiter admitting at most max requests per key within
// any trailing window.
func New(window time.Duration, max int) *Limiter {
	return &Limiter{
		window: window,
		max:    max,
		hits:   make(map[string][]time.Time),
		now:    time.Now,
	}
}

// SetClock overrides the limiter's time source. Test use only.
func (l *Limiter) SetClock(now func() time.Time) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.now = now
}

// Allow records a request for key and reports whether it is admitted.
// On rejection retryAfter is the time until the oldest in-window
// request expires, or the full window when the history is empty (a
// zero limit rejects everything). A timestamp aged exactly one window
// is already expired (strict less-than).
func (l *Limiter) Allow(key string) (ok bool, retryAfter time.Duration) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	recent := l.hits[key][:0]
	for _, t := range l.hits[key] {
		if now.Sub(t) < l.window {
			recent = append(recent, t)
		}
	}

	if len(recent) >= l.max {
		l.hits[key] = recent
		if len(recent) == 0 {
			return false, l.window
		}
		return false, l.window - now.Sub(recent[0])
	}

	l.hits[key] = append(recent, now)
	return true, 0
}
