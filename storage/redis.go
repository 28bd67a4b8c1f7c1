package storage

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/redis/go-redis/v9"
)

const redisKeyPrefix = "powertype:progress:"

// RedisStore persists progression state in Redis
// Keys are namespaced as "powertype:progress:{key}"
type RedisStore struct {
	client *redis.Client
	ctx    context.Context
}

// OpenRedis connects to the Redis server at addr (host:port)
func OpenRedis(addr string) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{Addr: addr})
	ctx := context.Background()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis %s: %w", addr, err)
	}
	return &RedisStore{client: client, ctx: ctx}, nil
}

func (r *RedisStore) key(key string) string {
	return redisKeyPrefix + key
}

// GetInt implements Store
func (r *RedisStore) GetInt(key string) (int, bool, error) {
	val, err := r.client.Get(r.ctx, r.key(key)).Result()
	if errors.Is(err, redis.Nil) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("read %q: %w", key, err)
	}
	n, err := strconv.Atoi(val)
	if err != nil {
		return 0, false, fmt.Errorf("decode %q: %w", key, err)
	}
	return n, true, nil
}

// PutInt implements Store
func (r *RedisStore) PutInt(key string, value int) error {
	if err := r.client.Set(r.ctx, r.key(key), value, 0).Err(); err != nil {
		return fmt.Errorf("write %q: %w", key, err)
	}
	return nil
}

// Close implements Store
func (r *RedisStore) Close() error {
	return r.client.Close()
}
