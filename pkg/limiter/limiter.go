package limiter

import (
	"sync"
	"time"
)

// MemoryLimiter is a simple in-memory sliding-window rate limiter keyed by
// an arbitrary string (here, the client IP). It is process-local and not
// suitable for multi-instance deployments.
type MemoryLimiter struct {
	mu      sync.Mutex
	history map[string][]time.Time
	window  time.Duration
	maxHits int
}

func NewMemoryLimiter(window time.Duration, maxHits int) *MemoryLimiter {
	return &MemoryLimiter{
		history: make(map[string][]time.Time),
		window:  window,
		maxHits: maxHits,
	}
}

// TooMany reports whether the key has reached the maximum number of hits
// within the window. Expired entries are pruned on access.
func (r *MemoryLimiter) TooMany(key string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()
	slice := r.history[key]

	pruned := slice[:0]
	for _, t := range slice {
		if now.Sub(t) <= r.window {
			pruned = append(pruned, t)
		}
	}

	r.history[key] = pruned

	return len(pruned) >= r.maxHits
}

// Hit records one request for the given key.
func (r *MemoryLimiter) Hit(key string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.history[key] = append(r.history[key], time.Now())
}
