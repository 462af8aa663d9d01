package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"
)

// notifyTTL keeps dedup keys long enough to cover clock drift between
// sweeps on either side of a day boundary.
const notifyTTL = 48 * time.Hour

// SweepDedup implements ports.SweepDedup using Redis SET NX, keyed by
// (tenant, offset, calendar day).
type SweepDedup struct {
	client *goredis.Client
	prefix string
}

// NewSweepDedup creates a new Redis-backed sweep dedup store.
func NewSweepDedup(client *goredis.Client) *SweepDedup {
	return &SweepDedup{
		client: client,
		prefix: "notify:",
	}
}

// MarkNotified atomically claims the (tenant, offset, day) triple.
// Returns true if this caller claimed it, false if already sent today.
func (s *SweepDedup) MarkNotified(ctx context.Context, tenantID uuid.UUID, offsetDays int, day time.Time) (bool, error) {
	key := fmt.Sprintf("%s%s:%d:%s", s.prefix, tenantID, offsetDays, day.UTC().Format("2006-01-02"))
	result, err := s.client.SetArgs(ctx, key, 1, goredis.SetArgs{
		Mode: "NX",
		TTL:  notifyTTL,
	}).Result()
	if err != nil {
		if err == goredis.Nil {
			// Key already exists — notification already sent for this day.
			return false, nil
		}
		return false, fmt.Errorf("redis sweep dedup: %w", err)
	}
	return result == "OK", nil
}

// Release drops a claimed triple so the next sweep in the same day can
// retry a notification that failed to broadcast.
func (s *SweepDedup) Release(ctx context.Context, tenantID uuid.UUID, offsetDays int, day time.Time) error {
	key := fmt.Sprintf("%s%s:%d:%s", s.prefix, tenantID, offsetDays, day.UTC().Format("2006-01-02"))
	if err := s.client.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("redis sweep dedup: %w", err)
	}
	return nil
}
