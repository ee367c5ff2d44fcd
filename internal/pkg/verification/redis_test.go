package verification

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRedisStore(t *testing.T) (*RedisStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return NewRedisStore(client, 10*time.Minute), mr
}

func TestRedisStore_SingleUse(t *testing.T) {
	s, _ := newRedisStore(t)
	ctx := context.Background()

	require.NoError(t, s.Put(ctx, 1, "123456"))

	ok, err := s.Validate(ctx, 1, "123456")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = s.Validate(ctx, 1, "123456")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRedisStore_Mismatch_LeavesEntry(t *testing.T) {
	s, _ := newRedisStore(t)
	ctx := context.Background()

	require.NoError(t, s.Put(ctx, 1, "123456"))

	ok, err := s.Validate(ctx, 1, "000000")
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = s.Validate(ctx, 1, "123456")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestRedisStore_Expiry(t *testing.T) {
	s, mr := newRedisStore(t)
	ctx := context.Background()

	require.NoError(t, s.Put(ctx, 1, "123456"))

	mr.FastForward(10*time.Minute + time.Second)

	ok, err := s.Validate(ctx, 1, "123456")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRedisStore_PutReplacesPriorEntry(t *testing.T) {
	s, _ := newRedisStore(t)
	ctx := context.Background()

	require.NoError(t, s.Put(ctx, 1, "111111"))
	require.NoError(t, s.Put(ctx, 1, "222222"))

	ok, err := s.Validate(ctx, 1, "222222")
	require.NoError(t, err)
	assert.True(t, ok)
}
