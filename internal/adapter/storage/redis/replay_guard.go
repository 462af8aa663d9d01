package redis

import (
	"context"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

// replayTTL bounds how long provider event ids are remembered. Providers
// redeliver within hours; the postgres audit log is the durable backstop.
const replayTTL = 72 * time.Hour

// ReplayGuard implements ports.ReplayGuard using Redis SET NX on the
// provider's event id.
type ReplayGuard struct {
	client *goredis.Client
	prefix string
}

// NewReplayGuard creates a new Redis-backed replay guard.
func NewReplayGuard(client *goredis.Client) *ReplayGuard {
	return &ReplayGuard{
		client: client,
		prefix: "provider-event:",
	}
}

// FirstSeen atomically claims a provider event id. Returns true when this
// delivery is the first, false on a redelivery.
func (g *ReplayGuard) FirstSeen(ctx context.Context, providerEventID string) (bool, error) {
	key := g.prefix + providerEventID
	result, err := g.client.SetArgs(ctx, key, 1, goredis.SetArgs{
		Mode: "NX",
		TTL:  replayTTL,
	}).Result()
	if err != nil {
		if err == goredis.Nil {
			return false, nil
		}
		return false, fmt.Errorf("redis replay guard: %w", err)
	}
	return result == "OK", nil
}

// Release drops a claimed event id. Called when handling the delivery
// failed, so the provider's retry passes FirstSeen again.
func (g *ReplayGuard) Release(ctx context.Context, providerEventID string) error {
	if err := g.client.Del(ctx, g.prefix+providerEventID).Err(); err != nil {
		return fmt.Errorf("redis replay guard: %w", err)
	}
	return nil
}
