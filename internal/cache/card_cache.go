package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"kitchenswipe/internal/models"

	"github.com/redis/go-redis/v9"
)

const cardKeyPrefix = "card:"

// CardCache holds resolved recipe cards keyed by source URL. It is shared by
// every session.
type CardCache interface {
	Get(ctx context.Context, url string) (*models.RecipeCard, bool, error)
	Put(ctx context.Context, card models.RecipeCard) error
}

type redisCardCache struct {
	redis *redis.Client
	ttl   time.Duration
}

func NewCardCache(redisClient *redis.Client, ttl time.Duration) CardCache {
	return &redisCardCache{redis: redisClient, ttl: ttl}
}

func cardKey(url string) string {
	return cardKeyPrefix + url
}

func (c *redisCardCache) Get(ctx context.Context, url string) (*models.RecipeCard, bool, error) {
	data, err := c.redis.Get(ctx, cardKey(url)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("failed to get card from Redis: %w", err)
	}

	var card models.RecipeCard
	if err := json.Unmarshal(data, &card); err != nil {
		log.Printf("Failed to unmarshal cached card for %s: %v", url, err)
		return nil, false, nil
	}

	return &card, true, nil
}

func (c *redisCardCache) Put(ctx context.Context, card models.RecipeCard) error {
	if card.RecipeID == "" {
		return errors.New("card has no recipeId")
	}

	data, err := json.Marshal(card)
	if err != nil {
		return fmt.Errorf("failed to marshal card: %w", err)
	}

	if err := c.redis.Set(ctx, cardKey(card.RecipeID), data, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to store card in Redis: %w", err)
	}
	return nil
}
