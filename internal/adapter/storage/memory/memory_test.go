package memory

import (
	"context"
	"testing"
	"time"

	"weekly-lottery/internal/core/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStateStore_SaveLoadCopies(t *testing.T) {
	store := NewStateStore()
	ctx := context.Background()

	state, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Nil(t, state)

	p := uuid.New()
	in := domain.LotteryState{
		NextDrawing: time.Now(),
		Entries:     map[string]map[uuid.UUID]int64{"coins": {p: 10}},
	}
	require.NoError(t, store.Save(ctx, in))
	in.Entries["coins"][p] = 999

	out, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(10), out.Entries["coins"][p])
	assert.Equal(t, 1, store.Saves())
}

func TestRewardStore_TakeRemoves(t *testing.T) {
	store := NewRewardStore()
	ctx := context.Background()
	p := uuid.New()
	now := time.Now()

	require.NoError(t, store.Record(ctx, domain.NewPendingReward(p, "gems", 2, now)))
	require.NoError(t, store.Record(ctx, domain.NewPendingReward(p, "coins", 1, now.Add(-time.Hour))))
	assert.Len(t, store.Pending(p), 2)

	rewards, err := store.Take(ctx, p)
	require.NoError(t, err)
	require.Len(t, rewards, 2)
	assert.Equal(t, "coins", rewards[0].Currency)

	rewards, err = store.Take(ctx, p)
	require.NoError(t, err)
	assert.Empty(t, rewards)
}

func TestPresenceTracker(t *testing.T) {
	tr := NewPresenceTracker()
	ctx := context.Background()
	p := uuid.New()

	require.NoError(t, tr.SetOnline(ctx, p, true))
	online, _ := tr.IsOnline(ctx, p)
	assert.True(t, online)

	require.NoError(t, tr.SetOnline(ctx, p, false))
	online, _ = tr.IsOnline(ctx, p)
	assert.False(t, online)
}

func TestDrawHistory_NewestFirstAndCapped(t *testing.T) {
	h := NewDrawHistory(2)
	ctx := context.Background()

	for i := 1; i <= 3; i++ {
		require.NoError(t, h.Append(ctx, domain.DrawRecord{ID: uuid.New(), Currency: "tokens", Prize: int64(i)}))
	}
	require.NoError(t, h.Append(ctx, domain.DrawRecord{ID: uuid.New(), Currency: "gems", Prize: 50}))

	recs, err := h.Recent(ctx, "tokens", 10)
	require.NoError(t, err)
	require.Len(t, recs, 2)
	assert.Equal(t, int64(3), recs[0].Prize)
	assert.Equal(t, int64(2), recs[1].Prize)

	recs, err = h.Recent(ctx, "tokens", 1)
	require.NoError(t, err)
	assert.Len(t, recs, 1)
}
