package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"caseflow-be/pkg/wizard"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// DefaultTTL keeps abandoned wizard snapshots around long enough for a user
// to come back the next day. Expiry is the store's garbage collection; the
// wizard itself never reaps.
const DefaultTTL = 24 * time.Hour

// RedisStore persists wizard snapshots as JSON values in Redis, one key per
// user. This is the production store: snapshots survive process restarts and
// are visible to every instance behind the load balancer.
type RedisStore struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewRedisStore(rdb *redis.Client, ttl time.Duration) *RedisStore {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &RedisStore{rdb: rdb, ttl: ttl}
}

func snapshotKey(userID uuid.UUID) string {
	return fmt.Sprintf("wizard:snapshot:%s", userID)
}

func (s *RedisStore) Get(ctx context.Context, userID uuid.UUID) (*wizard.Snapshot, bool, error) {
	raw, err := s.rdb.Get(ctx, snapshotKey(userID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, err
	}

	var snap wizard.Snapshot
	if err := json.Unmarshal(raw, &snap); err != nil {
		// A corrupt value is unrecoverable; treat it as absent rather than
		// wedging the wizard forever.
		return nil, false, nil
	}
	snap.Normalize()
	return &snap, true, nil
}

func (s *RedisStore) Put(ctx context.Context, userID uuid.UUID, snap *wizard.Snapshot) error {
	raw, err := json.Marshal(snap)
	if err != nil {
		return err
	}
	return s.rdb.Set(ctx, snapshotKey(userID), raw, s.ttl).Err()
}

func (s *RedisStore) Delete(ctx context.Context, userID uuid.UUID) error {
	return s.rdb.Del(ctx, snapshotKey(userID)).Err()
}
