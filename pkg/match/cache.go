package match

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jobmatch/backend/pkg/cache"
)

// ScoreCache is a best-effort read-through cache for computed scores.
// It never fails its caller: every store error is logged and treated as a
// miss, because losing an entry only costs one recomputation.
type ScoreCache struct {
	store cache.Store
	ttl   time.Duration
	log   *zap.Logger
}

func NewScoreCache(store cache.Store, ttl time.Duration, log *zap.Logger) *ScoreCache {
	if ttl <= 0 {
		ttl = time.Hour
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &ScoreCache{store: store, ttl: ttl, log: log}
}

func scoreKey(resumeID, jobID uuid.UUID) string {
	return fmt.Sprintf("match:%s:%s", resumeID, jobID)
}

// Get returns the cached score and whether it was present and intact.
func (c *ScoreCache) Get(ctx context.Context, resumeID, jobID uuid.UUID) (Score, bool) {
	key := scoreKey(resumeID, jobID)
	raw, ok, err := c.store.Get(ctx, key)
	if err != nil {
		c.log.Warn("score cache read failed, treating as miss",
			zap.String("key", key), zap.Error(err))
		return Score{}, false
	}
	if !ok {
		return Score{}, false
	}
	var s Score
	if err := json.Unmarshal([]byte(raw), &s); err != nil {
		c.log.Warn("score cache entry corrupt, treating as miss",
			zap.String("key", key), zap.Error(err))
		return Score{}, false
	}
	return s, true
}

// Put writes the score back with the configured TTL. Failures are logged,
// not propagated.
func (c *ScoreCache) Put(ctx context.Context, resumeID, jobID uuid.UUID, s Score) {
	key := scoreKey(resumeID, jobID)
	raw, err := json.Marshal(s)
	if err != nil {
		c.log.Warn("score cache marshal failed", zap.String("key", key), zap.Error(err))
		return
	}
	if err := c.store.Set(ctx, key, string(raw), c.ttl); err != nil {
		c.log.Warn("score cache write failed", zap.String("key", key), zap.Error(err))
	}
}

// Invalidate drops the entry for one (resume, job) pair. There is no bulk
// per-resume form: the store cannot enumerate keys by prefix, and entries
// are short-lived enough to just expire.
func (c *ScoreCache) Invalidate(ctx context.Context, resumeID, jobID uuid.UUID) {
	key := scoreKey(resumeID, jobID)
	if err := c.store.Del(ctx, key); err != nil {
		c.log.Warn("score cache invalidate failed", zap.String("key", key), zap.Error(err))
	}
}
