package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/vovakirdan/skydive/internal/systems"
)

// RedisConfig holds the connection settings for RedisKV.
type RedisConfig struct {
	Addr      string        // Redis server address
	Password  string        // empty if not required
	DB        int           // database number
	KeyPrefix string        // prefix for every key
	Timeout   time.Duration // per-operation timeout
}

// DefaultRedisConfig returns the default connection settings.
func DefaultRedisConfig() RedisConfig {
	return RedisConfig{
		Addr:      "localhost:6379",
		KeyPrefix: "skydive:stats:",
		Timeout:   2 * time.Second,
	}
}

// RedisKV keeps lifetime statistics in Redis so several servers can share them.
type RedisKV struct {
	client  *redis.Client
	prefix  string
	timeout time.Duration
}

// OpenRedis connects to Redis and verifies the connection.
func OpenRedis(ctx context.Context, cfg RedisConfig) (*RedisKV, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("storage: cannot connect to redis at %s: %w", cfg.Addr, err)
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultRedisConfig().Timeout
	}
	return &RedisKV{client: client, prefix: cfg.KeyPrefix, timeout: timeout}, nil
}

// Close closes the client.
func (r *RedisKV) Close() error {
	return r.client.Close()
}

func (r *RedisKV) ctx() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), r.timeout)
}

// GetInt returns the stored value for key, or def if it has never been set.
func (r *RedisKV) GetInt(key string, def int) (int, error) {
	ctx, cancel := r.ctx()
	defer cancel()

	v, err := r.client.Get(ctx, r.prefix+key).Int()
	if errors.Is(err, redis.Nil) {
		return def, nil
	}
	if err != nil {
		return def, fmt.Errorf("storage: cannot read %s: %w", key, err)
	}
	return v, nil
}

// PutInt stores value under key without expiry.
func (r *RedisKV) PutInt(key string, value int) error {
	ctx, cancel := r.ctx()
	defer cancel()

	if err := r.client.Set(ctx, r.prefix+key, value, 0).Err(); err != nil {
		return fmt.Errorf("storage: cannot write %s: %w", key, err)
	}
	return nil
}

// Clear deletes every key under the configured prefix.
func (r *RedisKV) Clear() error {
	ctx, cancel := r.ctx()
	defer cancel()

	iter := r.client.Scan(ctx, 0, r.prefix+"*", 100).Iterator()
	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return fmt.Errorf("storage: cannot scan keys: %w", err)
	}
	if len(keys) == 0 {
		return nil
	}
	if err := r.client.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("storage: cannot clear values: %w", err)
	}
	return nil
}

var _ systems.KeyValueStorage = (*RedisKV)(nil)
