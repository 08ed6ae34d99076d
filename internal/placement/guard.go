package placement

import (
	"context"
	"errors"
	"fmt"
	"time"

	pkgerrors "github.com/ghstudios/mhgen-catalog/pkg/errors"
	"github.com/google/uuid"
)

const defaultInFlightTTL = 30 * time.Second

// Guard rejects a second placement for a selection while one is in flight.
type Guard interface {
	// Acquire returns a release func on success and a CodeConflict error when
	// the selection is already held.
	Acquire(ctx context.Context, selection ItemSelection) (func(), error)
}

// lockStore defines the Redis operations used by RedisGuard.
type lockStore interface {
	SetNX(ctx context.Context, key string, value any, ttl time.Duration) (bool, error)
	DelIfEquals(ctx context.Context, key string, value string) (bool, error)
	InFlightKey(kind string, id int64) string
}

// RedisGuard implements Guard with Redis SETNX + TTL keyed by selection.
type RedisGuard struct {
	client lockStore
	ttl    time.Duration
}

// NewRedisGuard constructs a Redis-backed in-flight guard.
func NewRedisGuard(client lockStore, ttl time.Duration) (*RedisGuard, error) {
	if client == nil {
		return nil, errors.New("redis client required for in-flight guard")
	}
	if ttl <= 0 {
		ttl = defaultInFlightTTL
	}
	return &RedisGuard{client: client, ttl: ttl}, nil
}

// Acquire takes the selection lock for the configured TTL.
func (g *RedisGuard) Acquire(ctx context.Context, selection ItemSelection) (func(), error) {
	key := g.client.InFlightKey(string(selection.Kind), selection.ID)
	owner := uuid.NewString()

	ok, err := g.client.SetNX(ctx, key, owner, g.ttl)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, fmt.Errorf("setnx: %w", err), "in-flight guard unavailable")
	}
	if !ok {
		return nil, pkgerrors.New(pkgerrors.CodeConflict, "placement already in flight")
	}

	release := func() {
		// Only the owner may delete; an expired-then-retaken key is left alone.
		_, _ = g.client.DelIfEquals(context.WithoutCancel(ctx), key, owner)
	}
	return release, nil
}

// NopGuard admits every placement. It is used when Redis is not configured.
type NopGuard struct{}

func (NopGuard) Acquire(context.Context, ItemSelection) (func(), error) {
	return func() {}, nil
}
