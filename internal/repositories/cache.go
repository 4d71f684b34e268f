package repositories

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/sergioruizlaf/user-service/internal/logger"
	"github.com/sergioruizlaf/user-service/internal/models"
)

const userListKey = "users:list"

// UserListCacheRepository caches the full user list in Redis with a TTL.
// Any mutation of the user set must invalidate it.
type UserListCacheRepository struct {
	client *redis.Client
	exp    time.Duration // expiration duration for the cached list
}

// NewUserListCacheRepository creates a new repository instance with the given TTL.
func NewUserListCacheRepository(client *redis.Client, expiration time.Duration) *UserListCacheRepository {
	return &UserListCacheRepository{
		client: client,
		exp:    expiration,
	}
}

// Get returns the cached user list, or nil on a cache miss.
func (r *UserListCacheRepository) Get(ctx context.Context) ([]models.User, error) {
	val, err := r.client.Get(ctx, userListKey).Result()
	if err != nil {
		logger.Log.Infow(
			"key", userListKey,
			"error", err,
		)
		if err == redis.Nil {
			return nil, nil
		}
		return nil, err
	}

	var users []models.User
	if err := json.Unmarshal([]byte(val), &users); err != nil {
		logger.Log.Infow(
			"key", userListKey,
			"error", err,
		)
		return nil, err
	}

	logger.Log.Infow(
		"key", userListKey,
		"result_count", len(users),
		"error", nil,
	)

	return users, nil
}

// Set caches the user list with the configured expiration.
func (r *UserListCacheRepository) Set(ctx context.Context, users []models.User) error {
	data, err := json.Marshal(users)
	if err != nil {
		return err
	}

	err = r.client.Set(ctx, userListKey, data, r.exp).Err()

	logger.Log.Infow(
		"key", userListKey,
		"count", len(users),
		"result", "ok",
		"error", err,
	)

	return err
}

// Invalidate drops the cached list after a mutation.
func (r *UserListCacheRepository) Invalidate(ctx context.Context) error {
	err := r.client.Del(ctx, userListKey).Err()

	logger.Log.Infow(
		"key", userListKey,
		"result", "invalidated",
		"error", err,
	)

	return err
}
