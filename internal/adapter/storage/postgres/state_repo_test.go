package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"weekly-lottery/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStateRepo_Save(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewStateRepo(mock)
	next := time.Date(2026, 10, 25, 0, 0, 0, 0, time.UTC)
	saved := next.Add(-48 * time.Hour)
	p1 := uuid.MustParse("00000000-0000-0000-0000-000000000001")
	p2 := uuid.MustParse("00000000-0000-0000-0000-000000000002")

	state := domain.LotteryState{
		NextDrawing: next,
		SavedAt:     saved,
		Entries: map[string]map[uuid.UUID]int64{
			"tokens": {p2: 7, p1: 3},
			"coins":  {p1: 100},
			"gems":   {},
		},
	}

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO lottery_state").
		WithArgs(next, saved).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectExec("DELETE FROM lottery_entries").
		WillReturnResult(pgxmock.NewResult("DELETE", 5))
	mock.ExpectCopyFrom(pgx.Identifier{"lottery_entries"}, entryColumns).
		WillReturnResult(3)
	mock.ExpectCommit()

	err = repo.Save(context.Background(), state)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStateRepo_Save_RollsBackOnError(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewStateRepo(mock)
	now := time.Now().UTC()

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO lottery_state").
		WithArgs(now, now).
		WillReturnError(errors.New("disk full"))
	mock.ExpectRollback()

	err = repo.Save(context.Background(), domain.LotteryState{NextDrawing: now, SavedAt: now})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "upsert lottery state")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStateRepo_Save_EmptyPoolsSkipCopy(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewStateRepo(mock)
	now := time.Now().UTC()

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO lottery_state").
		WithArgs(now, now).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectExec("DELETE FROM lottery_entries").
		WillReturnResult(pgxmock.NewResult("DELETE", 0))
	mock.ExpectCommit()

	err = repo.Save(context.Background(), domain.LotteryState{
		NextDrawing: now,
		SavedAt:     now,
		Entries:     map[string]map[uuid.UUID]int64{"tokens": {}},
	})
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStateRepo_Save_CopyFailureRollsBack(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewStateRepo(mock)
	now := time.Now().UTC()

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO lottery_state").
		WithArgs(now, now).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectExec("DELETE FROM lottery_entries").
		WillReturnResult(pgxmock.NewResult("DELETE", 2))
	mock.ExpectCopyFrom(pgx.Identifier{"lottery_entries"}, entryColumns).
		WillReturnError(errors.New("connection lost"))
	mock.ExpectRollback()

	err = repo.Save(context.Background(), domain.LotteryState{
		NextDrawing: now,
		SavedAt:     now,
		Entries:     map[string]map[uuid.UUID]int64{"tokens": {uuid.New(): 5}},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "copy lottery entries")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStateRepo_Load(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewStateRepo(mock)
	next := time.Date(2026, 10, 25, 0, 0, 0, 0, time.UTC)
	saved := time.Date(2026, 10, 20, 12, 0, 0, 0, time.UTC)
	p1 := uuid.New()
	p2 := uuid.New()

	mock.ExpectQuery("SELECT next_drawing, saved_at FROM lottery_state").
		WillReturnRows(pgxmock.NewRows([]string{"next_drawing", "saved_at"}).AddRow(next, saved))
	mock.ExpectQuery("SELECT currency, participant_id, amount FROM lottery_entries").
		WillReturnRows(pgxmock.NewRows([]string{"currency", "participant_id", "amount"}).
			AddRow("tokens", p1, int64(10)).
			AddRow("tokens", p2, int64(20)).
			AddRow("gems", p1, int64(4)))

	state, err := repo.Load(context.Background())
	require.NoError(t, err)
	require.NotNil(t, state)
	assert.Equal(t, next, state.NextDrawing)
	assert.Equal(t, saved, state.SavedAt)
	assert.Equal(t, int64(30), state.Total("tokens"))
	assert.Equal(t, int64(4), state.Entries["gems"][p1])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStateRepo_Load_NothingSaved(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewStateRepo(mock)

	mock.ExpectQuery("SELECT next_drawing, saved_at FROM lottery_state").
		WillReturnRows(pgxmock.NewRows([]string{"next_drawing", "saved_at"}))

	state, err := repo.Load(context.Background())
	assert.NoError(t, err)
	assert.Nil(t, state)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStateRepo_Load_QueryError(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewStateRepo(mock)

	mock.ExpectQuery("SELECT next_drawing, saved_at FROM lottery_state").
		WillReturnError(errors.New("connection refused"))

	state, err := repo.Load(context.Background())
	assert.Error(t, err)
	assert.Nil(t, state)
	assert.NoError(t, mock.ExpectationsWereMet())
}
