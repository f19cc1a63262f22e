package session

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"

	cb "github.com/Astemirdum/library-lending/pkg/circuit_breaker"
)

func TestRedisStore_FailsFast(t *testing.T) {
	t.Parallel()
	rdb := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		MaxRetries:  -1,
		DialTimeout: 100 * time.Millisecond,
	})
	t.Cleanup(func() { _ = rdb.Close() })
	s := NewRedisStore(rdb, cb.Config{RecordLength: 2, Timeout: time.Minute, Percentile: 0.5, RecoveryRequests: 1})

	ctx := context.Background()
	err := s.Set(ctx, "t", uuid.New(), time.Minute)
	require.Error(t, err)
	require.NotErrorIs(t, err, cb.ErrOpenCB)

	_, err = s.Get(ctx, "t")
	require.ErrorIs(t, err, cb.ErrOpenCB)
}

func TestRedisStore_Integration(t *testing.T) {
	addr := os.Getenv("TEST_REDIS_ADDR")
	if addr == "" {
		t.Skip("TEST_REDIS_ADDR is not set")
	}
	rdb := redis.NewClient(&redis.Options{Addr: addr})
	t.Cleanup(func() { _ = rdb.Close() })
	s := NewRedisStore(rdb, cb.Config{RecordLength: 10, Timeout: time.Second, Percentile: 0.5, RecoveryRequests: 1})

	ctx := context.Background()
	token := uuid.NewString()
	userID := uuid.New()

	_, err := s.Get(ctx, token)
	require.ErrorIs(t, err, ErrNoSession)

	require.NoError(t, s.Set(ctx, token, userID, time.Minute))
	got, err := s.Get(ctx, token)
	require.NoError(t, err)
	require.Equal(t, userID, got)

	ttl, err := rdb.TTL(ctx, keyPrefix+token).Result()
	require.NoError(t, err)
	require.Greater(t, ttl, time.Duration(0))

	require.NoError(t, s.Delete(ctx, token))
	require.NoError(t, s.Delete(ctx, token))
	_, err = s.Get(ctx, token)
	require.ErrorIs(t, err, ErrNoSession)
	require.Equal(t, cb.Closed, s.breaker.State())
}
