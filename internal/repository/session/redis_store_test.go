package session

import (
	"context"
	"testing"
	"time"

	"caseflow-be/pkg/wizard"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRedisStore(t *testing.T, ttl time.Duration) (*RedisStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { rdb.Close() })
	return NewRedisStore(rdb, ttl), mr
}

func TestRedisStoreRoundTrip(t *testing.T) {
	store, _ := newTestRedisStore(t, time.Hour)
	ctx := context.Background()
	userID := uuid.New()

	_, found, err := store.Get(ctx, userID)
	require.NoError(t, err)
	assert.False(t, found)

	snap := wizard.NewSnapshot()
	snap.CurrentStep = wizard.StepParties
	snap.CaseData.Name = "Smith v. Jones"
	snap.CaseData.Parties = []wizard.Party{
		{Id: "p1", Name: "John Smith", Type: "plaintiff", Category: "person"},
	}
	require.NoError(t, store.Put(ctx, userID, snap))

	got, found, err := store.Get(ctx, userID)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, wizard.StepParties, got.CurrentStep)
	assert.Equal(t, snap.CaseData, got.CaseData)
}

func TestRedisStoreReturnsIndependentCopies(t *testing.T) {
	store, _ := newTestRedisStore(t, time.Hour)
	ctx := context.Background()
	userID := uuid.New()

	snap := wizard.NewSnapshot()
	snap.CaseData.Name = "Original"
	require.NoError(t, store.Put(ctx, userID, snap))

	first, _, err := store.Get(ctx, userID)
	require.NoError(t, err)
	first.CaseData.Name = "Mutated"

	second, _, err := store.Get(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, "Original", second.CaseData.Name)
}

func TestRedisStoreIsolatesUsers(t *testing.T) {
	store, _ := newTestRedisStore(t, time.Hour)
	ctx := context.Background()

	alice, bob := uuid.New(), uuid.New()
	snap := wizard.NewSnapshot()
	snap.CaseData.Name = "Alice's case"
	require.NoError(t, store.Put(ctx, alice, snap))

	_, found, err := store.Get(ctx, bob)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestRedisStoreExpiry(t *testing.T) {
	store, mr := newTestRedisStore(t, time.Minute)
	ctx := context.Background()
	userID := uuid.New()

	require.NoError(t, store.Put(ctx, userID, wizard.NewSnapshot()))

	mr.FastForward(2 * time.Minute)

	_, found, err := store.Get(ctx, userID)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestRedisStoreCorruptValueTreatedAsAbsent(t *testing.T) {
	store, mr := newTestRedisStore(t, time.Hour)
	ctx := context.Background()
	userID := uuid.New()

	mr.Set(snapshotKey(userID), "{not json")

	_, found, err := store.Get(ctx, userID)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestRedisStoreNormalizesRehydratedSnapshot(t *testing.T) {
	store, mr := newTestRedisStore(t, time.Hour)
	ctx := context.Background()
	userID := uuid.New()

	// Step pointer out of range and nil slices, as an older writer might
	// have left them.
	mr.Set(snapshotKey(userID), `{"current_step":9,"case_data":{"name":"Old"}}`)

	got, found, err := store.Get(ctx, userID)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, wizard.StepBasicInfo, got.CurrentStep)
	assert.NotNil(t, got.CaseData.Parties)
	assert.NotNil(t, got.CaseData.KeyDates)
	assert.NotNil(t, got.CaseData.Documents)
}

func TestRedisStoreDelete(t *testing.T) {
	store, _ := newTestRedisStore(t, time.Hour)
	ctx := context.Background()
	userID := uuid.New()

	require.NoError(t, store.Put(ctx, userID, wizard.NewSnapshot()))
	require.NoError(t, store.Delete(ctx, userID))

	_, found, err := store.Get(ctx, userID)
	require.NoError(t, err)
	assert.False(t, found)

	// Deleting an absent key is not an error.
	assert.NoError(t, store.Delete(ctx, userID))
}
