package cache

import (
	"context"
	"time"
)

// Noop is the Store used when no cache backend is configured or reachable
// at startup. Reads miss, writes succeed silently, counters never trip.
// It makes "cache disabled" an explicit wiring decision instead of a nil
// client checked defensively at every call site.
type Noop struct{}

func (Noop) Get(ctx context.Context, key string) (string, bool, error) { return "", false, nil }

func (Noop) Set(ctx context.Context, key, value string, ttl time.Duration) error { return nil }

func (Noop) Del(ctx context.Context, key string) error { return nil }

func (Noop) Exists(ctx context.Context, key string) (bool, error) { return false, nil }

func (Noop) IncrWithTTL(ctx context.Context, key string, ttl time.Duration) (int64, error) {
	return 0, nil
}
