package placement

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/ghstudios/mhgen-catalog/pkg/config"
	pkgerrors "github.com/ghstudios/mhgen-catalog/pkg/errors"
	"github.com/ghstudios/mhgen-catalog/pkg/redis"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newGuard(t *testing.T, ttl time.Duration) (*RedisGuard, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client, err := redis.New(context.Background(), config.RedisConfig{Address: mr.Addr()}, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	guard, err := NewRedisGuard(client, ttl)
	require.NoError(t, err)
	return guard, mr
}

func TestRedisGuardRejectsConcurrentSelection(t *testing.T) {
	guard, mr := newGuard(t, time.Minute)
	ctx := context.Background()

	release, err := guard.Acquire(ctx, Item(42))
	require.NoError(t, err)
	assert.True(t, mr.Exists("mhgen:placement:inflight:item:42"))

	_, err = guard.Acquire(ctx, Item(42))
	require.Error(t, err)
	assert.Equal(t, pkgerrors.CodeConflict, pkgerrors.CodeOf(err))

	other, err := guard.Acquire(ctx, ArmorSet(42))
	require.NoError(t, err, "different kind is a different selection")
	other()

	release()
	assert.False(t, mr.Exists("mhgen:placement:inflight:item:42"))

	again, err := guard.Acquire(ctx, Item(42))
	require.NoError(t, err)
	again()
}

func TestRedisGuardExpiresAndKeepsNewOwner(t *testing.T) {
	guard, mr := newGuard(t, time.Second)
	ctx := context.Background()

	stale, err := guard.Acquire(ctx, Item(1))
	require.NoError(t, err)

	mr.FastForward(2 * time.Second)

	fresh, err := guard.Acquire(ctx, Item(1))
	require.NoError(t, err)

	stale()
	assert.True(t, mr.Exists("mhgen:placement:inflight:item:1"), "stale release must not drop the new owner")

	fresh()
	assert.False(t, mr.Exists("mhgen:placement:inflight:item:1"))
}

func TestRedisGuardDefaultsTTL(t *testing.T) {
	guard, mr := newGuard(t, 0)
	release, err := guard.Acquire(context.Background(), Item(3))
	require.NoError(t, err)
	defer release()
	assert.Equal(t, defaultInFlightTTL, mr.TTL("mhgen:placement:inflight:item:3"))
}

func TestNewRedisGuardRequiresClient(t *testing.T) {
	_, err := NewRedisGuard(nil, time.Second)
	require.Error(t, err)
}

func TestNopGuard(t *testing.T) {
	release, err := NopGuard{}.Acquire(context.Background(), Item(1))
	require.NoError(t, err)
	release()
}
