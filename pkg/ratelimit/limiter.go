package ratelimit

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/jobmatch/backend/pkg/cache"
)

// Limiter is a fixed-window request counter per client key backed by the
// shared cache store. Fixed windows admit a burst of up to 2*max around a
// window boundary; that imprecision is accepted for coarse abuse prevention.
type Limiter struct {
	store  cache.Store
	name   string
	window time.Duration
	max    int64
	log    *zap.Logger
}

// New creates a limiter. name namespaces the counters so several endpoints
// can share one store without colliding.
func New(store cache.Store, name string, window time.Duration, max int, log *zap.Logger) *Limiter {
	if log == nil {
		log = zap.NewNop()
	}
	return &Limiter{store: store, name: name, window: window, max: int64(max), log: log}
}

// Allow reports whether the request from clientKey fits in the current
// window. The counter uses the store's atomic increment-with-expiry, so
// concurrent requests from one client never undercount. When the store is
// unreachable the limiter fails open: rate limiting is protection, not a
// reason to refuse otherwise valid traffic.
func (l *Limiter) Allow(ctx context.Context, clientKey string) bool {
	key := fmt.Sprintf("ratelimit:%s:%s", l.name, clientKey)
	count, err := l.store.IncrWithTTL(ctx, key, l.window)
	if err != nil {
		l.log.Warn("rate limiter store error, failing open",
			zap.String("key", key), zap.Error(err))
		return true
	}
	return count <= l.max
}
