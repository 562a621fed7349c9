package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"cafe-kiosk/internal/config"
	"cafe-kiosk/internal/logger"
)

// Redis is an alternative backend for running several kiosk instances
// against one shared key space. There is no cross-instance coordination;
// the last writer wins.
type Redis struct {
	rdb *redis.Client
}

// NewRedis connects to the configured redis server
func NewRedis(cfg *config.Config, log *logger.Logger) (*Redis, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr(),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	// Try to connect with retries
	var err error
	maxRetries := 5
	for i := 0; i < maxRetries; i++ {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		err = rdb.Ping(ctx).Err()
		cancel()
		if err == nil {
			break
		}

		if i < maxRetries-1 {
			waitTime := time.Duration(i+1) * 2 * time.Second
			log.Error("storage_connection_failed",
				"startup",
				fmt.Sprintf("Failed to connect to redis, retrying in %v", waitTime),
				err)
			time.Sleep(waitTime)
		}
	}

	if err != nil {
		rdb.Close()
		return nil, fmt.Errorf("failed to connect to redis after %d attempts: %w", maxRetries, err)
	}

	return &Redis{rdb: rdb}, nil
}

func (r *Redis) Get(key string) (string, bool, error) {
	ctx, cancel := opContext()
	defer cancel()

	value, err := r.rdb.Get(ctx, key).Result()
	if err == redis.Nil {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to read key %q: %w", key, err)
	}
	return value, true, nil
}

func (r *Redis) Set(key, value string) error {
	ctx, cancel := opContext()
	defer cancel()

	if err := r.rdb.Set(ctx, key, value, 0).Err(); err != nil {
		return fmt.Errorf("failed to write key %q: %w", key, err)
	}
	return nil
}

func (r *Redis) Remove(key string) error {
	ctx, cancel := opContext()
	defer cancel()

	if err := r.rdb.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("failed to remove key %q: %w", key, err)
	}
	return nil
}

func (r *Redis) Close() error {
	return r.rdb.Close()
}

func opContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), 5*time.Second)
}
