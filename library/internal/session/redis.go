package session

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"

	cb "github.com/Astemirdum/library-lending/pkg/circuit_breaker"
)

const keyPrefix = "session:"

// RedisStore shares sessions between replicas. Every call goes through the
// breaker so an unavailable Redis fails fast instead of stalling requests.
type RedisStore struct {
	rdb     redis.UniversalClient
	breaker cb.CircuitBreaker
}

func NewRedisStore(rdb redis.UniversalClient, cfg cb.Config) *RedisStore {
	return &RedisStore{
		rdb: rdb,
		breaker: cb.New(cfg, cb.WithFailureFilter(func(err error) bool {
			return err != nil && !errors.Is(err, redis.Nil)
		})),
	}
}

func (s *RedisStore) Set(ctx context.Context, token string, userID uuid.UUID, ttl time.Duration) error {
	return s.breaker.Call(ctx, func(ctx context.Context) error {
		return s.rdb.Set(ctx, keyPrefix+token, userID.String(), ttl).Err()
	})
}

func (s *RedisStore) Get(ctx context.Context, token string) (uuid.UUID, error) {
	var raw string
	err := s.breaker.Call(ctx, func(ctx context.Context) error {
		var err error
		raw, err = s.rdb.Get(ctx, keyPrefix+token).Result()
		return err
	})
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return uuid.Nil, ErrNoSession
		}
		return uuid.Nil, err
	}
	userID, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, ErrNoSession
	}
	return userID, nil
}

func (s *RedisStore) Delete(ctx context.Context, token string) error {
	return s.breaker.Call(ctx, func(ctx context.Context) error {
		return s.rdb.Del(ctx, keyPrefix+token).Err()
	})
}
