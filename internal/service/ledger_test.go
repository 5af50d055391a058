package service

import (
	"math"
	"testing"

	"weekly-lottery/pkg/apperror"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEntryLedger_AddAccumulates(t *testing.T) {
	l := NewEntryLedger()
	a, b := uuid.New(), uuid.New()

	total, err := l.Add("tokens", a, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(10), total)

	total, err = l.Add("tokens", a, 5)
	require.NoError(t, err)
	assert.Equal(t, int64(15), total)

	_, err = l.Add("tokens", b, 25)
	require.NoError(t, err)

	assert.Equal(t, int64(40), l.Total("tokens"))
	assert.Equal(t, 2, l.Count("tokens"))
	assert.Equal(t, int64(15), l.EntriesFor("tokens", a))
	assert.Equal(t, int64(0), l.EntriesFor("tokens", uuid.New()))
	assert.Equal(t, int64(0), l.Total("gems"))
}

func TestEntryLedger_RejectsNonPositive(t *testing.T) {
	l := NewEntryLedger()
	for _, amount := range []int64{0, -1} {
		_, err := l.Add("tokens", uuid.New(), amount)
		require.Error(t, err)
		assert.True(t, apperror.HasCode(err, "LOT_001"))
	}
	assert.Equal(t, 0, l.Count("tokens"))
}

func TestEntryLedger_Overflow(t *testing.T) {
	l := NewEntryLedger()
	a, b := uuid.New(), uuid.New()

	_, err := l.Add("coins", a, math.MaxInt64-1)
	require.NoError(t, err)

	_, err = l.Add("coins", a, 2)
	assert.True(t, apperror.HasCode(err, "LOT_004"))

	err = l.CanAdd("coins", b, 2)
	assert.True(t, apperror.HasCode(err, "LOT_004"), "the pool total is capped too")

	assert.NoError(t, l.CanAdd("coins", b, 1))
	assert.Equal(t, int64(math.MaxInt64-1), l.Total("coins"))
}

func TestEntryLedger_EntriesSorted(t *testing.T) {
	l := NewEntryLedger()
	ids := []uuid.UUID{
		uuid.MustParse("30000000-0000-0000-0000-000000000000"),
		uuid.MustParse("10000000-0000-0000-0000-000000000000"),
		uuid.MustParse("20000000-0000-0000-0000-000000000000"),
	}
	for i, id := range ids {
		_, err := l.Add("gems", id, int64(i+1))
		require.NoError(t, err)
	}

	entries := l.Entries("gems")
	require.Len(t, entries, 3)
	assert.Equal(t, ids[1], entries[0].ParticipantID)
	assert.Equal(t, ids[2], entries[1].ParticipantID)
	assert.Equal(t, ids[0], entries[2].ParticipantID)
}

func TestEntryLedger_ClearOnlyOneCurrency(t *testing.T) {
	l := NewEntryLedger()
	p := uuid.New()
	_, _ = l.Add("tokens", p, 3)
	_, _ = l.Add("gems", p, 4)

	l.Clear("tokens")

	assert.Equal(t, int64(0), l.Total("tokens"))
	assert.Equal(t, int64(4), l.Total("gems"))
}

func TestEntryLedger_SnapshotIsDeepCopy(t *testing.T) {
	l := NewEntryLedger()
	p := uuid.New()
	_, _ = l.Add("tokens", p, 3)

	snap := l.Snapshot()
	snap["tokens"][p] = 100

	assert.Equal(t, int64(3), l.EntriesFor("tokens", p))
}

func TestEntryLedger_Restore(t *testing.T) {
	l := NewEntryLedger()
	_, _ = l.Add("coins", uuid.New(), 99)
	p := uuid.New()

	skipped := l.Restore(map[string]map[uuid.UUID]int64{
		"tokens":  {p: 10, uuid.New(): 0, uuid.New(): -5},
		"shards":  {p: 1},
		"crystal": {p: 2},
	}, func(id string) bool { return id == "tokens" })

	assert.Equal(t, []string{"crystal", "shards"}, skipped)
	assert.Equal(t, int64(10), l.Total("tokens"))
	assert.Equal(t, 1, l.Count("tokens"))
	assert.Equal(t, int64(0), l.Total("coins"), "restore replaces existing pools")
}
