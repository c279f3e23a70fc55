package repository

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"leave-tracking/models"

	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

const userCacheKeyPrefix = "user:directory:"

func UserCacheKey(id primitive.ObjectID) string {
	return userCacheKeyPrefix + id.Hex()
}

// CachedUserDirectory is a read-through Redis cache in front of another
// UserDirectory. Redis errors are logged and the lookup falls through.
type CachedUserDirectory struct {
	next   UserDirectory
	rdb    *redis.Client
	ttl    time.Duration
	logger *zap.Logger
}

func NewCachedUserDirectory(next UserDirectory, rdb *redis.Client, ttl time.Duration, logger *zap.Logger) *CachedUserDirectory {
	return &CachedUserDirectory{
		next:   next,
		rdb:    rdb,
		ttl:    ttl,
		logger: logger.Named("user.cache"),
	}
}

func (c *CachedUserDirectory) GetUser(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	key := UserCacheKey(id)

	cached, err := c.rdb.Get(ctx, key).Result()
	switch {
	case err == nil:
		var user models.User
		if jsonErr := json.Unmarshal([]byte(cached), &user); jsonErr == nil {
			return &user, nil
		}
		c.logger.Warn("discarding undecodable cache entry", zap.String("key", key))
	case !errors.Is(err, redis.Nil):
		c.logger.Warn("redis get failed", zap.String("key", key), zap.Error(err))
	}

	user, err := c.next.GetUser(ctx, id)
	if err != nil || user == nil {
		return user, err
	}

	data, err := json.Marshal(user)
	if err != nil {
		c.logger.Warn("failed to encode user for cache", zap.Error(err))
		return user, nil
	}
	if err := c.rdb.Set(ctx, key, string(data), c.ttl).Err(); err != nil {
		c.logger.Warn("redis set failed", zap.String("key", key), zap.Error(err))
	}
	return user, nil
}

// Invalidate drops the cached entry for id.
func (c *CachedUserDirectory) Invalidate(ctx context.Context, id primitive.ObjectID) error {
	return c.rdb.Del(ctx, UserCacheKey(id)).Err()
}
