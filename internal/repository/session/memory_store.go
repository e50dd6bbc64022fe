package session

import (
	"context"
	"encoding/json"
	"time"

	"caseflow-be/pkg/wizard"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
)

// MemoryStore keeps snapshots in process memory. Used for single-node dev
// setups and tests; expired entries are purged by the underlying cache.
type MemoryStore struct {
	cache *cache.Cache
}

func NewMemoryStore(ttl time.Duration) *MemoryStore {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &MemoryStore{
		cache: cache.New(ttl, 10*time.Minute),
	}
}

// Values are stored as marshaled JSON rather than live pointers so a caller
// mutating its copy can never reach into the store. Reload always yields an
// independent snapshot, same as the Redis store.
func (s *MemoryStore) Get(ctx context.Context, userID uuid.UUID) (*wizard.Snapshot, bool, error) {
	x, found := s.cache.Get(userID.String())
	if !found {
		return nil, false, nil
	}
	raw, ok := x.([]byte)
	if !ok {
		return nil, false, nil
	}
	var snap wizard.Snapshot
	if err := json.Unmarshal(raw, &snap); err != nil {
		return nil, false, nil
	}
	snap.Normalize()
	return &snap, true, nil
}

func (s *MemoryStore) Put(ctx context.Context, userID uuid.UUID, snap *wizard.Snapshot) error {
	raw, err := json.Marshal(snap)
	if err != nil {
		return err
	}
	s.cache.Set(userID.String(), raw, cache.DefaultExpiration)
	return nil
}

func (s *MemoryStore) Delete(ctx context.Context, userID uuid.UUID) error {
	s.cache.Delete(userID.String())
	return nil
}
