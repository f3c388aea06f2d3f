package cache

import (
	"context"
	"errors"
	"time"
)

// ErrUnavailable reports that the backing store could not be reached.
// Callers are expected to treat it as a miss, never as a request failure.
var ErrUnavailable = errors.New("cache unavailable")

// Store abstracts the shared key/value store used for score caching and
// rate-limit counters. Implementations may be Redis, in-memory, etc.
// Single-key operations are atomic; no cross-key transactions are offered.
type Store interface {
	// Get returns the value and whether the key was present.
	Get(ctx context.Context, key string) (string, bool, error)
	// Set writes value under key. A zero ttl means no expiry.
	Set(ctx context.Context, key, value string, ttl time.Duration) error
	Del(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
	// IncrWithTTL atomically increments the counter at key and starts the
	// expiry window on the first increment. Returns the new count.
	IncrWithTTL(ctx context.Context, key string, ttl time.Duration) (int64, error)
}
