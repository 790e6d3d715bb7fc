package db

import (
	"context"
	"errors"
	"log"

	"github.com/go-redis/redis/v8"
)

// RedisKVStore backs the KVStore interface with a Redis connection, so
// cached payloads survive process restarts.
type RedisKVStore struct {
	client *redis.Client
	ctx    context.Context
}

// NewRedisKVStore wraps an already-configured Redis client.
func NewRedisKVStore(ctx context.Context, client *redis.Client) *RedisKVStore {
	if _, err := client.Ping(ctx).Result(); err != nil {
		log.Fatalf("Could not connect to Redis: %v", err)
	}
	log.Println("[RedisKVStore] Connected to Redis")

	return &RedisKVStore{
		client: client,
		ctx:    ctx,
	}
}

// Set stores a key-value pair.
func (r *RedisKVStore) Set(key, value string) error {
	return r.client.Set(r.ctx, key, value, 0).Err()
}

// Get retrieves the value for a key; a missing key maps to ErrKeyNotFound.
func (r *RedisKVStore) Get(key string) (string, error) {
	val, err := r.client.Get(r.ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrKeyNotFound
	}
	return val, err
}

// Del removes a key.
func (r *RedisKVStore) Del(key string) error {
	return r.client.Del(r.ctx, key).Err()
}

func (r *RedisKVStore) GetContext() context.Context {
	return r.ctx
}

func (r *RedisKVStore) Ping() error {
	_, err := r.client.Ping(r.ctx).Result()
	return err
}
