package repositories

import (
	"context"
	"errors"
	"fmt"

	"pyxpay-admin/internal/models"

	"github.com/redis/go-redis/v9"
)

const redisStateKeyPrefix = "pyxpay:state:"

// RedisStateRepository keeps local state in redis, one key per namespace, without expiry
type RedisStateRepository struct {
	client *redis.Client
}

// NewRedisStateRepository creates a new redis-backed state repository
func NewRedisStateRepository(client *redis.Client) StateRepositoryInterface {
	return &RedisStateRepository{client: client}
}

func redisStateKey(namespace string) string {
	return redisStateKeyPrefix + namespace
}

func (r *RedisStateRepository) Load(ctx context.Context, namespace string) ([]byte, error) {
	value, err := r.client.Get(ctx, redisStateKey(namespace)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrStateNotFound
		}
		return nil, fmt.Errorf("failed to load local state %s: %w", namespace, err)
	}
	return value, nil
}

func (r *RedisStateRepository) Save(ctx context.Context, namespace string, value []byte) error {
	if namespace == "" {
		return models.ErrInvalidNamespace
	}
	if err := r.client.Set(ctx, redisStateKey(namespace), value, 0).Err(); err != nil {
		return fmt.Errorf("failed to save local state %s: %w", namespace, err)
	}
	return nil
}

func (r *RedisStateRepository) Delete(ctx context.Context, namespace string) error {
	if err := r.client.Del(ctx, redisStateKey(namespace)).Err(); err != nil {
		return fmt.Errorf("failed to delete local state %s: %w", namespace, err)
	}
	return nil
}
