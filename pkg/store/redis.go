package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// keyPrefix namespaces point-size entries in a shared Redis instance.
const keyPrefix = "pointsize:"

// Redis implements Store on a shared Redis instance. It exists for setups
// where several batch workers on different machines want to share one
// point-size cache; concurrent Puts to the same key are last-writer-wins.
type Redis struct {
	client *redis.Client
}

// RedisConfig holds connection options for the Redis store.
type RedisConfig struct {
	Addr     string // host:port
	Password string // optional
	DB       int    // database number
}

// NewRedis connects to Redis and verifies the connection.
// A failed connection is an error, matching the fatal open semantics of
// the file-backed store.
func NewRedis(ctx context.Context, cfg RedisConfig) (*Redis, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("connect redis %s: %w", cfg.Addr, err)
	}
	return &Redis{client: client}, nil
}

// EnsureTable is a no-op; Redis needs no schema.
func (r *Redis) EnsureTable(ctx context.Context) error {
	return nil
}

// Get looks up key.
func (r *Redis) Get(ctx context.Context, key string) (int, bool, error) {
	v, err := r.client.Get(ctx, keyPrefix+key).Int()
	if errors.Is(err, redis.Nil) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("get %s: %w", key, err)
	}
	return v, true, nil
}

// Put upserts the value for key. Entries never expire; the cache is reset
// externally, mirroring "delete the store file" for the SQLite backend.
func (r *Redis) Put(ctx context.Context, key string, value int) error {
	if err := r.client.Set(ctx, keyPrefix+key, value, 0).Err(); err != nil {
		return fmt.Errorf("put %s: %w", key, err)
	}
	return nil
}

// Close closes the client connection.
func (r *Redis) Close() error {
	return r.client.Close()
}

// Ensure Redis implements Store.
var _ Store = (*Redis)(nil)
