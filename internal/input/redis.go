package input

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/dyluth/advent/pkg/puzzle"
)

// SharedScope is the key scope used when caches are not split per session.
const SharedScope = "shared"

// InputKey returns the Redis key for a cached input.
// Pattern: advent:{year}:{scope}:input:{day}
func InputKey(year int, scope string, day puzzle.Day) string {
	return fmt.Sprintf("advent:%d:%s:input:%d", year, scope, int(day))
}

// RedisStore caches inputs in Redis so several machines can share one
// download per day. It is safe for concurrent use.
type RedisStore struct {
	rdb   *redis.Client
	year  int
	scope string
}

// NewRedisStore creates a store namespaced by year and scope. An empty
// scope means SharedScope.
func NewRedisStore(opts *redis.Options, year int, scope string) (*RedisStore, error) {
	if year <= 0 {
		return nil, fmt.Errorf("year must be positive, got %d", year)
	}
	if scope == "" {
		scope = SharedScope
	}
	return &RedisStore{
		rdb:   redis.NewClient(opts),
		year:  year,
		scope: scope,
	}, nil
}

// Close closes the Redis connection. Implements io.Closer.
func (s *RedisStore) Close() error {
	return s.rdb.Close()
}

// Ping verifies Redis connectivity.
func (s *RedisStore) Ping(ctx context.Context) error {
	return s.rdb.Ping(ctx).Err()
}

func (s *RedisStore) Get(ctx context.Context, day puzzle.Day) (string, bool, error) {
	key := InputKey(s.year, s.scope, day)
	text, err := s.rdb.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, &IOError{Day: day, Op: "read cache", Path: key, Err: err}
	}
	if text == "" {
		return "", false, nil
	}
	return text, true, nil
}

func (s *RedisStore) Put(ctx context.Context, day puzzle.Day, text string) error {
	key := InputKey(s.year, s.scope, day)
	if err := s.rdb.Set(ctx, key, text, 0).Err(); err != nil {
		return &IOError{Day: day, Op: "write cache", Path: key, Err: err}
	}
	return nil
}
