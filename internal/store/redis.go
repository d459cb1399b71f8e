package store

import (
	"context"
	"errors"
	"fmt"

	goredis "github.com/redis/go-redis/v9"

	"fishmart/internal/port"
)

type redisStore struct {
	rdb *goredis.Client
}

// NewRedis returns a Store backed by a Redis database. Keys are used
// as-is, so other clients of the same database see the storefront
// names unchanged.
func NewRedis(rdb *goredis.Client) (port.Store, error) {
	if rdb == nil {
		return nil, fmt.Errorf("redis client is nil")
	}

	return &redisStore{rdb: rdb}, nil
}

func (s *redisStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	if key == "" {
		return nil, false, fmt.Errorf("key is empty")
	}

	value, err := s.rdb.Get(ctx, key).Bytes()
	if errors.Is(err, goredis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("rdb.Get: %w", err)
	}

	return value, true, nil
}

func (s *redisStore) Set(ctx context.Context, key string, value []byte) error {
	if key == "" {
		return fmt.Errorf("key is empty")
	}

	if err := s.rdb.Set(ctx, key, value, 0).Err(); err != nil {
		return fmt.Errorf("rdb.Set: %w", err)
	}

	return nil
}

func (s *redisStore) Delete(ctx context.Context, key string) error {
	if key == "" {
		return fmt.Errorf("key is empty")
	}

	if err := s.rdb.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("rdb.Del: %w", err)
	}

	return nil
}
