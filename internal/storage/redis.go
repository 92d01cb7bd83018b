package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// RedisKeyPrefix namespaces every key written by RedisStore.
const RedisKeyPrefix = "t2048:"

// RedisStore keeps values in Redis so several servers can share players.
type RedisStore struct {
	client *redis.Client
}

var _ Store = (*RedisStore)(nil)

// OpenRedis connects to the Redis server at addr and pings it.
func OpenRedis(ctx context.Context, addr string) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr: addr,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("storage: failed to connect to Redis at %s: %w", addr, err)
	}

	return &RedisStore{client: client}, nil
}

// Get returns the value stored under key.
func (s *RedisStore) Get(ctx context.Context, key string) (string, bool, error) {
	val, err := s.client.Get(ctx, RedisKeyPrefix+key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("storage: failed to get %q: %w", key, err)
	}
	return val, true, nil
}

// Set stores value under key without expiry.
func (s *RedisStore) Set(ctx context.Context, key, value string) error {
	if err := s.client.Set(ctx, RedisKeyPrefix+key, value, 0).Err(); err != nil {
		return fmt.Errorf("storage: failed to set %q: %w", key, err)
	}
	return nil
}

// Delete removes key.
func (s *RedisStore) Delete(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, RedisKeyPrefix+key).Err(); err != nil {
		return fmt.Errorf("storage: failed to delete %q: %w", key, err)
	}
	return nil
}

// Close closes the client connection pool.
func (s *RedisStore) Close() error {
	return s.client.Close()
}
