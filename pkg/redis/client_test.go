package redis

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/ghstudios/mhgen-catalog/pkg/config"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T) (*Client, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client, err := New(context.Background(), config.RedisConfig{Address: mr.Addr()}, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })
	return client, mr
}

func TestSetNXAndGet(t *testing.T) {
	ctx := context.Background()
	client, mr := newTestClient(t)

	ok, err := client.SetNX(ctx, "k", "first", time.Minute)
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = client.SetNX(ctx, "k", "second", time.Minute)
	require.NoError(t, err)
	require.False(t, ok, "second SetNX must not overwrite")

	got, err := client.Get(ctx, "k")
	require.NoError(t, err)
	require.Equal(t, "first", got)

	mr.FastForward(2 * time.Minute)
	_, err = client.Get(ctx, "k")
	require.True(t, errors.Is(err, redis.Nil), "expected key to expire, got %v", err)
}

func TestDelIfEquals(t *testing.T) {
	ctx := context.Background()
	client, _ := newTestClient(t)

	require.NoError(t, client.Set(ctx, "lock", "owner-a", time.Minute))

	removed, err := client.DelIfEquals(ctx, "lock", "owner-b")
	require.NoError(t, err)
	require.False(t, removed)

	removed, err = client.DelIfEquals(ctx, "lock", "owner-a")
	require.NoError(t, err)
	require.True(t, removed)

	_, err = client.Get(ctx, "lock")
	require.ErrorIs(t, err, redis.Nil)
}

func TestNewRequiresAddress(t *testing.T) {
	_, err := New(context.Background(), config.RedisConfig{}, nil)
	require.Error(t, err)
}

func TestNilClientIsSafe(t *testing.T) {
	var client *Client
	require.ErrorIs(t, client.Ping(context.Background()), errNotInitialized)
	require.NoError(t, client.Close())
}

func TestKeyBuilders(t *testing.T) {
	client := &Client{}
	if got := client.IdempotencyKey("scope", "id"); got != "mhgen:idempotency:scope:id" {
		t.Fatalf("unexpected idempotency key %s", got)
	}
	if got := client.InFlightKey("armor_set", 7); got != "mhgen:placement:inflight:armor_set:7" {
		t.Fatalf("unexpected in-flight key %s", got)
	}
	if got := client.IdempotencyKey("", "id"); got != "mhgen:idempotency:id" {
		t.Fatalf("empty parts should be skipped, got %s", got)
	}
}
