package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/rocketscienceinc/tictactoe-hotseat/internal/apperror"
)

type redisStore struct {
	client *redis.Client
}

func NewRedisStore(client *redis.Client) KeyValueStore {
	return &redisStore{
		client: client,
	}
}

func (that *redisStore) Get(ctx context.Context, key string) (string, error) {
	response, err := that.client.Get(ctx, key).Result()

	if errors.Is(err, redis.Nil) {
		return "", fmt.Errorf("%w: key %s", apperror.ErrNotFound, key)
	}

	if err != nil {
		return "", fmt.Errorf("failed to get key %s: %w", key, err)
	}

	return response, nil
}

func (that *redisStore) Set(ctx context.Context, key, value string) error {
	if err := that.client.Set(ctx, key, value, 0).Err(); err != nil {
		return fmt.Errorf("failed to set key %s: %w", key, err)
	}

	return nil
}

func (that *redisStore) Delete(ctx context.Context, key string) error {
	if err := that.client.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("failed to delete key %s: %w", key, err)
	}

	return nil
}
