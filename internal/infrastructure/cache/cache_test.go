package cache_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/turtacn/h5sign/internal/domain/service/mocks"
	"github.com/turtacn/h5sign/internal/infrastructure/cache"
)

func newRedisStore(t *testing.T, prefix string) (*cache.RedisStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return cache.NewRedisStore(client, prefix), mr
}

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()
	s := cache.NewMemoryStore(time.Minute)

	_, ok, err := s.Get(ctx, "missing")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, s.Set(ctx, "jd_WQ_vk1_app_4.7", "fp", time.Hour))
	v, ok, err := s.Get(ctx, "jd_WQ_vk1_app_4.7")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "fp", v)
	assert.Equal(t, 1, s.Len())

	require.NoError(t, s.Set(ctx, "short", "v", time.Millisecond))
	time.Sleep(5 * time.Millisecond)
	_, ok, _ = s.Get(ctx, "short")
	assert.False(t, ok)
}

func TestRedisStore(t *testing.T) {
	ctx := context.Background()
	s, mr := newRedisStore(t, "h5sign:")

	_, ok, err := s.Get(ctx, "missing")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, s.Set(ctx, "k", "v", time.Hour))
	got, err := mr.Get("h5sign:k")
	require.NoError(t, err)
	assert.Equal(t, "v", got)
	assert.Equal(t, time.Hour, mr.TTL("h5sign:k"))

	v, ok, err := s.Get(ctx, "k")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "v", v)

	mr.FastForward(2 * time.Hour)
	_, ok, err = s.Get(ctx, "k")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRedisStore_ServerError(t *testing.T) {
	s, mr := newRedisStore(t, "")
	mr.SetError("LOADING")
	_, _, err := s.Get(context.Background(), "k")
	assert.Error(t, err)
}

func TestTieredStore_BackfillsL1(t *testing.T) {
	ctx := context.Background()
	l1 := cache.NewMemoryStore(time.Minute)
	l2, mr := newRedisStore(t, "")
	require.NoError(t, mr.Set("k", "from-redis"))

	s := cache.NewTieredStore(l1, l2, time.Hour, nil)
	v, ok, err := s.Get(ctx, "k")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "from-redis", v)

	v, ok, _ = l1.Get(ctx, "k")
	assert.True(t, ok)
	assert.Equal(t, "from-redis", v)

	require.NoError(t, s.Set(ctx, "n", "new", time.Minute))
	got, _ := mr.Get("n")
	assert.Equal(t, "new", got)
	_, ok, _ = l1.Get(ctx, "n")
	assert.True(t, ok)
}

func TestTieredStore_L2WriteFailure(t *testing.T) {
	ctx := context.Background()
	l1 := cache.NewMemoryStore(time.Minute)
	l2 := new(mocks.MockCache)
	l2.On("Set", mock.Anything, "k", "v", time.Minute).Return(errors.New("down"))

	s := cache.NewTieredStore(l1, l2, time.Hour, nil)
	assert.Error(t, s.Set(ctx, "k", "v", time.Minute))
	_, ok, _ := l1.Get(ctx, "k")
	assert.False(t, ok)
	l2.AssertExpectations(t)
}
