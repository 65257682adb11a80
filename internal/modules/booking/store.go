// README: Dispatch store backed by Redis; records which bookings were notified.
package booking

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	notifiedKeyPrefix = "booking:%s:notified_at"
	// Dispatch records are operational breadcrumbs, not ledger state.
	keyTTL = 30 * 24 * time.Hour
)

type DispatchStore struct {
	redis *redis.Client
}

func NewDispatchStore(redis *redis.Client) *DispatchStore {
	return &DispatchStore{redis: redis}
}

func (s *DispatchStore) RecordDispatch(ctx context.Context, ref string) error {
	return s.redis.Set(ctx, notifiedKey(ref), time.Now().UTC().Format(time.RFC3339), keyTTL).Err()
}

// GetDispatchedAt returns when the booking's notification went out, and
// whether it has gone out at all.
func (s *DispatchStore) GetDispatchedAt(ctx context.Context, ref string) (time.Time, bool, error) {
	val, err := s.redis.Get(ctx, notifiedKey(ref)).Result()
	if err == redis.Nil {
		return time.Time{}, false, nil
	}
	if err != nil {
		return time.Time{}, false, err
	}
	t, err := time.Parse(time.RFC3339, val)
	if err != nil {
		return time.Time{}, false, err
	}
	return t, true, nil
}

func notifiedKey(ref string) string {
	return fmt.Sprintf(notifiedKeyPrefix, ref)
}
