package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	sessionKeyPrefix = "session:"
	sessionKeySuffix = ":queue"
	maxPopAttempts   = 5
)

var (
	ErrQueueNotFound   = errors.New("session queue not found")
	ErrQueueEmpty      = errors.New("session queue is empty")
	ErrQueueContention = errors.New("session queue is being modified concurrently")
)

// SessionQueue stores the not-yet-shown URLs of a swipe session.
type SessionQueue interface {
	Create(ctx context.Context, sessionID string, urls []string) error
	Pop(ctx context.Context, sessionID string) (url string, remaining int, err error)
	Len(ctx context.Context, sessionID string) (int, error)
}

type redisSessionQueue struct {
	redis *redis.Client
	ttl   time.Duration
}

func NewSessionQueue(redisClient *redis.Client, ttl time.Duration) SessionQueue {
	return &redisSessionQueue{redis: redisClient, ttl: ttl}
}

func sessionQueueKey(sessionID string) string {
	return sessionKeyPrefix + sessionID + sessionKeySuffix
}

func (q *redisSessionQueue) Create(ctx context.Context, sessionID string, urls []string) error {
	if urls == nil {
		urls = []string{}
	}
	data, err := json.Marshal(urls)
	if err != nil {
		return fmt.Errorf("failed to marshal session queue: %w", err)
	}
	if err := q.redis.Set(ctx, sessionQueueKey(sessionID), data, q.ttl).Err(); err != nil {
		return fmt.Errorf("failed to store session queue in Redis: %w", err)
	}
	return nil
}

// Pop removes the head URL. The read-modify-write runs under WATCH so two
// concurrent pops on the same session never hand out the same URL.
func (q *redisSessionQueue) Pop(ctx context.Context, sessionID string) (string, int, error) {
	key := sessionQueueKey(sessionID)

	var (
		head      string
		remaining int
	)
	txf := func(tx *redis.Tx) error {
		urls, err := readQueue(ctx, tx, key)
		if err != nil {
			return err
		}
		if len(urls) == 0 {
			return ErrQueueEmpty
		}

		rest := urls[1:]
		data, err := json.Marshal(rest)
		if err != nil {
			return fmt.Errorf("failed to marshal session queue: %w", err)
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, data, q.ttl)
			return nil
		})
		if err != nil {
			return err
		}

		head = urls[0]
		remaining = len(rest)
		return nil
	}

	for attempt := 0; attempt < maxPopAttempts; attempt++ {
		err := q.redis.Watch(ctx, txf, key)
		if err == nil {
			return head, remaining, nil
		}
		if errors.Is(err, redis.TxFailedErr) {
			continue
		}
		return "", 0, err
	}
	return "", 0, ErrQueueContention
}

func (q *redisSessionQueue) Len(ctx context.Context, sessionID string) (int, error) {
	urls, err := readQueue(ctx, q.redis, sessionQueueKey(sessionID))
	if errors.Is(err, ErrQueueNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return len(urls), nil
}

type stringGetter interface {
	Get(ctx context.Context, key string) *redis.StringCmd
}

func readQueue(ctx context.Context, cmd stringGetter, key string) ([]string, error) {
	data, err := cmd.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrQueueNotFound
		}
		return nil, fmt.Errorf("failed to get session queue from Redis: %w", err)
	}

	var urls []string
	if err := json.Unmarshal(data, &urls); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session queue: %w", err)
	}
	return urls, nil
}
