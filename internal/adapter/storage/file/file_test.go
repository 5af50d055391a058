package file

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"weekly-lottery/internal/core/domain"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStateStore_SaveAndLoad(t *testing.T) {
	dir := t.TempDir()
	store := NewStateStore(dir, zerolog.Nop())
	ctx := context.Background()

	p1, p2 := uuid.New(), uuid.New()
	next := time.Date(2026, 10, 25, 0, 0, 0, 0, time.UTC)
	in := domain.LotteryState{
		NextDrawing: next,
		SavedAt:     next.Add(-time.Hour),
		Entries: map[string]map[uuid.UUID]int64{
			"tokens": {p1: 10, p2: 25},
			"gems":   {p2: 3},
		},
	}
	require.NoError(t, store.Save(ctx, in))

	raw, err := os.ReadFile(filepath.Join(dir, StateFileName))
	require.NoError(t, err)
	assert.Contains(t, string(raw), "next_drawing:")
	assert.Contains(t, string(raw), "2026-10-25T00:00:00Z")

	out, err := store.Load(ctx)
	require.NoError(t, err)
	require.NotNil(t, out)
	assert.True(t, next.Equal(out.NextDrawing))
	assert.Equal(t, in.Entries, out.Entries)
}

func TestStateStore_MissingFile(t *testing.T) {
	store := NewStateStore(t.TempDir(), zerolog.Nop())

	state, err := store.Load(context.Background())
	assert.NoError(t, err)
	assert.Nil(t, state)
}

func TestStateStore_SkipsMalformedRecords(t *testing.T) {
	dir := t.TempDir()
	good := uuid.New()
	doc := "next_drawing: not-a-time\n" +
		"entries:\n" +
		"  Tokens:\n" +
		"    " + good.String() + ": 15\n" +
		"    not-a-uuid: 4\n" +
		"    " + uuid.New().String() + ": lots\n" +
		"    " + uuid.New().String() + ": -3\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, StateFileName), []byte(doc), 0o644))

	state, err := NewStateStore(dir, zerolog.Nop()).Load(context.Background())
	require.NoError(t, err)
	require.NotNil(t, state)
	assert.True(t, state.NextDrawing.IsZero())
	assert.Equal(t, map[uuid.UUID]int64{good: 15}, state.Entries["tokens"])
}

func TestStateStore_MalformedFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, StateFileName), []byte("entries: [unclosed"), 0o644))

	state, err := NewStateStore(dir, zerolog.Nop()).Load(context.Background())
	assert.Error(t, err)
	assert.Nil(t, state)
}

func TestStateStore_NoTempFilesLeft(t *testing.T) {
	dir := t.TempDir()
	store := NewStateStore(dir, zerolog.Nop())

	for i := 0; i < 3; i++ {
		require.NoError(t, store.Save(context.Background(), domain.LotteryState{NextDrawing: time.Now()}))
	}

	files, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.Equal(t, StateFileName, files[0].Name())
}

func TestRewardStore_RecordAndTake(t *testing.T) {
	dir := t.TempDir()
	store := NewRewardStore(dir, zerolog.Nop())
	ctx := context.Background()

	p := uuid.New()
	wonAt := time.Date(2026, 10, 18, 0, 0, 0, 0, time.UTC)
	r1 := domain.NewPendingReward(p, "tokens", 120, wonAt)
	r2 := domain.NewPendingReward(p, "coins", 7, wonAt.Add(-7*24*time.Hour))

	require.NoError(t, store.Record(ctx, r1))
	require.NoError(t, store.Record(ctx, r2))
	assert.FileExists(t, filepath.Join(dir, RewardDirName, p.String()+".yml"))

	rewards, err := store.Take(ctx, p)
	require.NoError(t, err)
	require.Len(t, rewards, 2)
	assert.Equal(t, r2.ID, rewards[0].ID)
	assert.Equal(t, r1.ID, rewards[1].ID)
	assert.Equal(t, int64(120), rewards[1].Amount)
	assert.NoFileExists(t, filepath.Join(dir, RewardDirName, p.String()+".yml"))

	rewards, err = store.Take(ctx, p)
	require.NoError(t, err)
	assert.Empty(t, rewards)
}

func TestRewardStore_SkipsMalformedRewards(t *testing.T) {
	dir := t.TempDir()
	p := uuid.New()
	doc := "- id: " + uuid.New().String() + "\n  currency: gems\n  amount: 4\n  won_at: \"2026-10-11T00:00:00Z\"\n" +
		"- id: broken\n  currency: gems\n  amount: 0\n  won_at: \"2026-10-11T00:00:00Z\"\n" +
		"- id: broken-time\n  currency: gems\n  amount: 2\n  won_at: yesterday\n"
	require.NoError(t, os.MkdirAll(filepath.Join(dir, RewardDirName), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, RewardDirName, p.String()+".yml"), []byte(doc), 0o644))

	rewards, err := NewRewardStore(dir, zerolog.Nop()).Take(context.Background(), p)
	require.NoError(t, err)
	require.Len(t, rewards, 1)
	assert.Equal(t, int64(4), rewards[0].Amount)
	assert.Equal(t, p, rewards[0].ParticipantID)
}
