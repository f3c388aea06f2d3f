package ratelimit

import (
	"context"
	"errors"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/jobmatch/backend/pkg/cache"
)

// windowStore is a minimal cache.Store with a manual clock, counting like a
// real fixed-window backend: expiry is set on the first increment only.
type windowStore struct {
	now     time.Time
	counts  map[string]int64
	expires map[string]time.Time
}

func newWindowStore() *windowStore {
	return &windowStore{
		now:     time.Unix(1700000000, 0),
		counts:  map[string]int64{},
		expires: map[string]time.Time{},
	}
}

func (s *windowStore) advance(d time.Duration) { s.now = s.now.Add(d) }

func (s *windowStore) IncrWithTTL(ctx context.Context, key string, ttl time.Duration) (int64, error) {
	if exp, ok := s.expires[key]; ok && !s.now.Before(exp) {
		delete(s.counts, key)
		delete(s.expires, key)
	}
	s.counts[key]++
	if _, ok := s.expires[key]; !ok {
		s.expires[key] = s.now.Add(ttl)
	}
	return s.counts[key], nil
}

func (s *windowStore) Get(ctx context.Context, key string) (string, bool, error) {
	n, ok := s.counts[key]
	return strconv.FormatInt(n, 10), ok, nil
}
func (s *windowStore) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	return nil
}
func (s *windowStore) Del(ctx context.Context, key string) error { return nil }
func (s *windowStore) Exists(ctx context.Context, key string) (bool, error) { return false, nil }

type downStore struct{ windowStore }

func (downStore) IncrWithTTL(ctx context.Context, key string, ttl time.Duration) (int64, error) {
	return 0, errors.New("connection refused")
}

func TestLimiterFixedWindow(t *testing.T) {
	store := newWindowStore()
	l := New(store, "login", time.Minute, 3, nil)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		assert.True(t, l.Allow(ctx, "10.0.0.1"), "request %d should pass", i+1)
	}
	// The (N+1)th call inside the window is rejected.
	assert.False(t, l.Allow(ctx, "10.0.0.1"))

	// A different client key has its own counter.
	assert.True(t, l.Allow(ctx, "10.0.0.2"))

	// After the window expires the first call is permitted again.
	store.advance(time.Minute + time.Second)
	assert.True(t, l.Allow(ctx, "10.0.0.1"))
}

func TestLimiterNamespaces(t *testing.T) {
	store := newWindowStore()
	login := New(store, "login", time.Minute, 1, nil)
	upload := New(store, "upload", time.Minute, 1, nil)
	ctx := context.Background()

	assert.True(t, login.Allow(ctx, "10.0.0.1"))
	assert.False(t, login.Allow(ctx, "10.0.0.1"))
	// Exhausting "login" does not consume the "upload" quota.
	assert.True(t, upload.Allow(ctx, "10.0.0.1"))
}

func TestLimiterFailsOpen(t *testing.T) {
	l := New(&downStore{}, "login", time.Minute, 1, nil)
	ctx := context.Background()
	for i := 0; i < 5; i++ {
		assert.True(t, l.Allow(ctx, "10.0.0.1"))
	}
}

var _ cache.Store = (*windowStore)(nil)
