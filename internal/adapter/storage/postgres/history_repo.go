package postgres

import (
	"context"
	"fmt"

	"weekly-lottery/internal/core/domain"
)

// HistoryRepo implements ports.DrawHistory.
type HistoryRepo struct {
	pool Pool
}

// NewHistoryRepo creates a PostgreSQL-backed draw history.
func NewHistoryRepo(pool Pool) *HistoryRepo {
	return &HistoryRepo{pool: pool}
}

func (r *HistoryRepo) Append(ctx context.Context, rec domain.DrawRecord) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO draw_history (id, currency, status, winner, prize, participants, drawn_at, error)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		rec.ID, rec.Currency, string(rec.Status), rec.Winner,
		rec.Prize, rec.Participants, rec.DrawnAt, rec.Error,
	)
	if err != nil {
		return fmt.Errorf("insert draw record: %w", err)
	}
	return nil
}

func (r *HistoryRepo) Recent(ctx context.Context, currency string, limit int) ([]domain.DrawRecord, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, currency, status, winner, prize, participants, drawn_at, error
		 FROM draw_history WHERE currency = $1
		 ORDER BY drawn_at DESC LIMIT $2`,
		currency, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("list draw history: %w", err)
	}
	defer rows.Close()

	var records []domain.DrawRecord
	for rows.Next() {
		var rec domain.DrawRecord
		var status string
		if err := rows.Scan(&rec.ID, &rec.Currency, &status, &rec.Winner,
			&rec.Prize, &rec.Participants, &rec.DrawnAt, &rec.Error); err != nil {
			return nil, fmt.Errorf("scan draw record: %w", err)
		}
		rec.Status = domain.DrawStatus(status)
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate draw history: %w", err)
	}
	return records, nil
}
