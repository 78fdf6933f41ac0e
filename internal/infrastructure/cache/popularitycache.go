package cache

import (
	"context"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/vellum-app/vellum/internal/domain/workshop"
	"github.com/vellum-app/vellum/internal/shared/logger"
)

const (
	popularityKeyPrefix = "workshop:popularity:"
	popularityTTLJitter = 30 * time.Minute // anti-stampede
)

// RedisPopularityCache implements workshop.PopularityCache with one sorted
// set per explore order. Each rebuild replaces the set wholesale and arms a
// jittered TTL, so a stale window never outlives the configured staleness
// budget by much.
type RedisPopularityCache struct {
	client *redis.Client
	ttl    time.Duration
	logger logger.Interface
}

// NewRedisPopularityCache creates a new Redis-based popularity cache
func NewRedisPopularityCache(client *redis.Client, ttl time.Duration, logger logger.Interface) workshop.PopularityCache {
	return &RedisPopularityCache{
		client: client,
		ttl:    ttl,
		logger: logger,
	}
}

func (c *RedisPopularityCache) key(order workshop.ExploreOrder) string {
	return popularityKeyPrefix + order.String()
}

// Get returns the cached scores for a window, highest first, and whether the
// cache held anything.
func (c *RedisPopularityCache) Get(ctx context.Context, order workshop.ExploreOrder) ([]workshop.CollectionScore, bool, error) {
	members, err := c.client.ZRevRangeWithScores(ctx, c.key(order), 0, -1).Result()
	if err != nil {
		return nil, false, fmt.Errorf("failed to get popularity scores: %w", err)
	}
	if len(members) == 0 {
		return nil, false, nil
	}

	scores := make([]workshop.CollectionScore, 0, len(members))
	for _, m := range members {
		sid, ok := m.Member.(string)
		if !ok {
			continue
		}
		scores = append(scores, workshop.CollectionScore{CollectionID: sid, Score: m.Score})
	}
	return scores, true, nil
}

// Set replaces the cached scores for a window wholesale.
func (c *RedisPopularityCache) Set(ctx context.Context, order workshop.ExploreOrder, scores []workshop.CollectionScore) error {
	key := c.key(order)
	ttl := c.ttl + time.Duration(rand.Int64N(int64(popularityTTLJitter)))

	pipe := c.client.TxPipeline()
	pipe.Del(ctx, key)
	if len(scores) > 0 {
		members := make([]redis.Z, len(scores))
		for i, s := range scores {
			members[i] = redis.Z{Score: s.Score, Member: s.CollectionID}
		}
		pipe.ZAdd(ctx, key, members...)
	}
	pipe.Expire(ctx, key, ttl)

	if _, err := pipe.Exec(ctx); err != nil {
		c.logger.Errorw("failed to set popularity scores", "order", order, "count", len(scores), "error", err)
		return fmt.Errorf("failed to set popularity scores: %w", err)
	}

	c.logger.Debugw("popularity cache rebuilt", "order", order, "count", len(scores), "ttl", ttl)
	return nil
}
