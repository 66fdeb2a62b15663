package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fiberops/subcore/internal/shared/logger"
)

func TestRedisTransitionLocker(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer client.Close()

	locker := NewRedisTransitionLocker(client, 5*time.Second, logger.NewNopLogger())
	ctx := context.Background()

	release, ok, err := locker.TryAcquire(ctx, "subcore:transition:0001")
	require.NoError(t, err)
	require.True(t, ok)
	assert.True(t, mr.Exists("subcore:transition:0001"))
	assert.Equal(t, 5*time.Second, mr.TTL("subcore:transition:0001"))

	_, ok, err = locker.TryAcquire(ctx, "subcore:transition:0001")
	require.NoError(t, err)
	assert.False(t, ok)

	_, ok, err = locker.TryAcquire(ctx, "subcore:transition:0002")
	require.NoError(t, err)
	assert.True(t, ok)

	release()
	assert.False(t, mr.Exists("subcore:transition:0001"))

	_, ok, err = locker.TryAcquire(ctx, "subcore:transition:0001")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestRedisTransitionLocker_ReleaseAfterExpiryKeepsNewHolder(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer client.Close()

	locker := NewRedisTransitionLocker(client, time.Second, logger.NewNopLogger())
	ctx := context.Background()

	staleRelease, ok, err := locker.TryAcquire(ctx, "k")
	require.NoError(t, err)
	require.True(t, ok)

	mr.FastForward(2 * time.Second)

	_, ok, err = locker.TryAcquire(ctx, "k")
	require.NoError(t, err)
	require.True(t, ok)

	staleRelease()
	assert.True(t, mr.Exists("k"))
}

func TestRedisTransitionLocker_Unavailable(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr(), MaxRetries: -1})
	defer client.Close()
	mr.Close()

	_, _, err := NewRedisTransitionLocker(client, 0, logger.NewNopLogger()).TryAcquire(context.Background(), "k")
	assert.Error(t, err)
}

func TestMemoryTransitionLocker(t *testing.T) {
	locker := NewMemoryTransitionLocker()
	ctx := context.Background()

	release, ok, err := locker.TryAcquire(ctx, "a")
	require.NoError(t, err)
	require.True(t, ok)

	_, ok, _ = locker.TryAcquire(ctx, "a")
	assert.False(t, ok)

	release()
	release()

	_, ok, _ = locker.TryAcquire(ctx, "a")
	assert.True(t, ok)
}
