package repositories

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sbilibin2017/gw-social-feed/internal/logger"
	"github.com/sbilibin2017/gw-social-feed/internal/models"
)

const feedCacheKey = "feed:all"

// FeedCacheRepository provides a cached copy of the joined feed using Redis.
// Only owner-joined rows are cached; per-requester fields are computed later.
type FeedCacheRepository struct {
	client *redis.Client
	exp    time.Duration // expiration duration for the cached feed
}

// NewFeedCacheRepository creates a new repository instance with optional TTL
func NewFeedCacheRepository(client *redis.Client, expiration time.Duration) *FeedCacheRepository {
	return &FeedCacheRepository{
		client: client,
		exp:    expiration,
	}
}

// GetFeed fetches the cached feed rows.
func (r *FeedCacheRepository) GetFeed(ctx context.Context) ([]models.FeedItemDB, error) {
	val, err := r.client.Get(ctx, feedCacheKey).Result()
	if err != nil {
		logger.Log.Infow(
			"key", feedCacheKey,
			"error", err,
		)
		if err == redis.Nil {
			return nil, fmt.Errorf("feed not found in cache")
		}
		return nil, err
	}

	var items []models.FeedItemDB
	if err := json.Unmarshal([]byte(val), &items); err != nil {
		logger.Log.Infow(
			"key", feedCacheKey,
			"error", err,
		)
		return nil, err
	}

	logger.Log.Infow(
		"key", feedCacheKey,
		"result", len(items),
		"error", nil,
	)

	return items, nil
}

// SetFeed caches the feed rows in Redis with expiration.
func (r *FeedCacheRepository) SetFeed(ctx context.Context, items []models.FeedItemDB) error {
	data, err := json.Marshal(items)
	if err != nil {
		return err
	}

	err = r.client.Set(ctx, feedCacheKey, data, r.exp).Err()

	logger.Log.Infow(
		"key", feedCacheKey,
		"items", len(items),
		"result", "ok",
		"error", err,
	)

	return err
}

// InvalidateFeed drops the cached feed. Called after any post mutation.
func (r *FeedCacheRepository) InvalidateFeed(ctx context.Context) error {
	err := r.client.Del(ctx, feedCacheKey).Err()

	logger.Log.Infow(
		"key", feedCacheKey,
		"result", "deleted",
		"error", err,
	)

	return err
}
