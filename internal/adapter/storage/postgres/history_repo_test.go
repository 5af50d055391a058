package postgres

import (
	"context"
	"testing"
	"time"

	"weekly-lottery/internal/core/domain"

	"github.com/google/uuid"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHistoryRepo_Append(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewHistoryRepo(mock)
	rec := domain.NewDrawRecord(domain.DrawOutcome{
		Currency:     "coins",
		Status:       domain.DrawAwarded,
		Winner:       uuid.New(),
		Prize:        1500,
		Participants: 3,
		DrawnAt:      time.Now().UTC(),
	})

	mock.ExpectExec("INSERT INTO draw_history").
		WithArgs(rec.ID, "coins", "AWARDED", rec.Winner, int64(1500), 3, rec.DrawnAt, "").
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	err = repo.Append(context.Background(), rec)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestHistoryRepo_Recent(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewHistoryRepo(mock)
	winner := uuid.New()
	drawnAt := time.Date(2026, 10, 11, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery("SELECT .+ FROM draw_history WHERE currency").
		WithArgs("tokens", 5).
		WillReturnRows(pgxmock.NewRows([]string{"id", "currency", "status", "winner", "prize", "participants", "drawn_at", "error"}).
			AddRow(uuid.New(), "tokens", "DEFERRED", &winner, int64(80), 4, drawnAt, ""))

	records, err := repo.Recent(context.Background(), "tokens", 5)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, domain.DrawDeferred, records[0].Status)
	require.NotNil(t, records[0].Winner)
	assert.Equal(t, winner, *records[0].Winner)
	assert.Equal(t, 4, records[0].Participants)
	assert.NoError(t, mock.ExpectationsWereMet())
}
