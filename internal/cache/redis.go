package cache

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
)

type RedisClient struct {
	client *redis.Client
}

func NewRedisClient(ctx context.Context, redisURL string) (*RedisClient, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}

	client := redis.NewClient(opt)

	// Test connection
	if _, err := client.Ping(ctx).Result(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &RedisClient{client: client}, nil
}

// Client exposes the underlying client for the card cache and session queues.
func (r *RedisClient) Client() *redis.Client {
	return r.client
}

func (r *RedisClient) Close() error {
	return r.client.Close()
}

// Get Redis status
func (r *RedisClient) GetStatus(ctx context.Context) (map[string]interface{}, error) {
	if err := r.client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	cards, err := countKeys(ctx, r.client, cardKeyPrefix+"*")
	if err != nil {
		return nil, err
	}
	sessions, err := countKeys(ctx, r.client, sessionKeyPrefix+"*"+sessionKeySuffix)
	if err != nil {
		return nil, err
	}

	stats := r.client.PoolStats()

	return map[string]interface{}{
		"connected":       true,
		"hits":            stats.Hits,
		"misses":          stats.Misses,
		"active_conns":    stats.TotalConns,
		"cached_cards":    cards,
		"active_sessions": sessions,
	}, nil
}

func countKeys(ctx context.Context, client *redis.Client, pattern string) (int, error) {
	var (
		cursor uint64
		count  int
	)
	for {
		keys, next, err := client.Scan(ctx, cursor, pattern, 500).Result()
		if err != nil {
			return 0, fmt.Errorf("failed to scan %q: %w", pattern, err)
		}
		count += len(keys)
		cursor = next
		if cursor == 0 {
			return count, nil
		}
	}
}
