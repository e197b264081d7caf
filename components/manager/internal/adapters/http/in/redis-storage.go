// Copyright (c) 2026 Lerian Studio. All rights reserved.
// Use of this source code is governed by the Elastic License 2.0
// that can be found in the LICENSE file.

package in

import (
	"context"
	"time"

	"github.com/LerianStudio/lib-commons/v3/commons/log"
	libRedis "github.com/LerianStudio/lib-commons/v3/commons/redis"
	"github.com/gofiber/fiber/v2"
	goredis "github.com/redis/go-redis/v9"
)

// RateLimitStorage is the counter backend of the limiter middleware.
type RateLimitStorage = fiber.Storage

const redisStorageTimeout = 2 * time.Second

// RedisStorage keeps rate limit counters in Redis. Redis failures are logged and
// let the request through rather than blocking all traffic.
type RedisStorage struct {
	client func(ctx context.Context) (goredis.UniversalClient, error)
	logger log.Logger
}

// Compile-time interface satisfaction check.
var _ fiber.Storage = (*RedisStorage)(nil)

// NewRedisStorage stores counters through a lib-commons connection.
func NewRedisStorage(conn *libRedis.RedisConnection, logger log.Logger) *RedisStorage {
	s := &RedisStorage{logger: logger}

	if conn != nil {
		s.client = conn.GetClient
	}

	return s
}

// NewRedisStorageFromClient stores counters through an existing client.
func NewRedisStorageFromClient(client goredis.UniversalClient, logger log.Logger) *RedisStorage {
	return &RedisStorage{
		client: func(context.Context) (goredis.UniversalClient, error) { return client, nil },
		logger: logger,
	}
}

func (s *RedisStorage) do(op string, fn func(ctx context.Context, client goredis.UniversalClient) error) {
	if s.client == nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), redisStorageTimeout)
	defer cancel()

	client, err := s.client(ctx)
	if err != nil {
		s.logger.Errorf("rate-limit redis storage: failed to get client: %v", err)
		return
	}

	if err := fn(ctx, client); err != nil {
		s.logger.Errorf("rate-limit redis storage: %s failed: %v", op, err)
	}
}

// Get returns the stored counter, or nil when it is missing or Redis fails.
func (s *RedisStorage) Get(key string) ([]byte, error) {
	var val []byte

	s.do("get", func(ctx context.Context, client goredis.UniversalClient) error {
		b, err := client.Get(ctx, key).Bytes()
		if err == goredis.Nil {
			return nil
		}

		val = b

		return err
	})

	return val, nil
}

// Set stores a counter with its expiration.
func (s *RedisStorage) Set(key string, val []byte, exp time.Duration) error {
	s.do("set", func(ctx context.Context, client goredis.UniversalClient) error {
		return client.Set(ctx, key, val, exp).Err()
	})

	return nil
}

// Delete removes a counter.
func (s *RedisStorage) Delete(key string) error {
	s.do("delete", func(ctx context.Context, client goredis.UniversalClient) error {
		return client.Del(ctx, key).Err()
	})

	return nil
}

// Reset is a no-op; counters expire by TTL and the database is shared with batch state.
func (s *RedisStorage) Reset() error {
	return nil
}

// Close is a no-op; the connection belongs to the bootstrap cleanup stack.
func (s *RedisStorage) Close() error {
	return nil
}
