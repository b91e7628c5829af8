package scoring

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Cache stores score listings between requests. A miss is (nil, false);
// implementations must never fail a lookup loudly -- the client falls back to
// the backend either way.
type Cache interface {
	GetScores(ctx context.Context, jobSlug string) (*JobScores, bool)
	SetScores(ctx context.Context, jobSlug string, scores *JobScores) error
}

// DefaultCacheTTL is how long a cached score listing stays fresh.
const DefaultCacheTTL = 5 * time.Minute

// RedisCache caches score listings in Redis under scores:<jobSlug>.
type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisCache connects to Redis and verifies the connection.
func NewRedisCache(ctx context.Context, redisURL string) (*RedisCache, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse redis URL: %w", err)
	}
	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to ping redis: %w", err)
	}
	return &RedisCache{client: client, ttl: DefaultCacheTTL}, nil
}

// Close releases the Redis connection.
func (c *RedisCache) Close() error {
	return c.client.Close()
}

func cacheKey(jobSlug string) string {
	return "scores:" + jobSlug
}

// GetScores returns the cached listing for a job, or a miss on any error.
func (c *RedisCache) GetScores(ctx context.Context, jobSlug string) (*JobScores, bool) {
	data, err := c.client.Get(ctx, cacheKey(jobSlug)).Bytes()
	if err != nil {
		return nil, false
	}
	var out JobScores
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, false
	}
	return &out, true
}

// SetScores caches a listing with the configured TTL.
func (c *RedisCache) SetScores(ctx context.Context, jobSlug string, scores *JobScores) error {
	data, err := json.Marshal(scores)
	if err != nil {
		return fmt.Errorf("failed to encode scores for %s: %w", jobSlug, err)
	}
	return c.client.Set(ctx, cacheKey(jobSlug), data, c.ttl).Err()
}
