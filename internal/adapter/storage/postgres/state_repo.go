package postgres

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"weekly-lottery/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// StateRepo implements ports.StateStore.
type StateRepo struct {
	pool Pool
}

// NewStateRepo creates a new StateRepo.
func NewStateRepo(pool Pool) *StateRepo {
	return &StateRepo{pool: pool}
}

// Save replaces the persisted state in a single transaction.
func (r *StateRepo) Save(ctx context.Context, state domain.LotteryState) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin save state: %w", err)
	}

	if err := saveState(ctx, tx, state); err != nil {
		_ = tx.Rollback(ctx)
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit save state: %w", err)
	}
	return nil
}

func saveState(ctx context.Context, tx pgx.Tx, state domain.LotteryState) error {
	_, err := tx.Exec(ctx,
		`INSERT INTO lottery_state (id, next_drawing, saved_at) VALUES (1, $1, $2)
		 ON CONFLICT (id) DO UPDATE SET next_drawing = EXCLUDED.next_drawing, saved_at = EXCLUDED.saved_at`,
		state.NextDrawing, state.SavedAt,
	)
	if err != nil {
		return fmt.Errorf("upsert lottery state: %w", err)
	}

	if _, err := tx.Exec(ctx, `DELETE FROM lottery_entries`); err != nil {
		return fmt.Errorf("clear lottery entries: %w", err)
	}

	rows := sortedEntries(state.Entries)
	if len(rows) == 0 {
		return nil
	}
	copied, err := tx.CopyFrom(ctx,
		pgx.Identifier{"lottery_entries"},
		entryColumns,
		pgx.CopyFromSlice(len(rows), func(i int) ([]any, error) {
			return []any{rows[i].currency, rows[i].participant, rows[i].amount}, nil
		}),
	)
	if err != nil {
		return fmt.Errorf("copy lottery entries: %w", err)
	}
	if copied != int64(len(rows)) {
		return fmt.Errorf("copy lottery entries: wrote %d of %d rows", copied, len(rows))
	}
	return nil
}

var entryColumns = []string{"currency", "participant_id", "amount"}

type entryRow struct {
	currency    string
	participant uuid.UUID
	amount      int64
}

func sortedEntries(entries map[string]map[uuid.UUID]int64) []entryRow {
	var rows []entryRow
	for currency, pool := range entries {
		for p, amount := range pool {
			if amount > 0 {
				rows = append(rows, entryRow{currency: currency, participant: p, amount: amount})
			}
		}
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].currency != rows[j].currency {
			return rows[i].currency < rows[j].currency
		}
		return bytes.Compare(rows[i].participant[:], rows[j].participant[:]) < 0
	})
	return rows
}

// Load returns nil, nil when no state row exists.
func (r *StateRepo) Load(ctx context.Context) (*domain.LotteryState, error) {
	state := domain.NewLotteryState(time.Time{})
	err := r.pool.QueryRow(ctx,
		`SELECT next_drawing, saved_at FROM lottery_state WHERE id = 1`,
	).Scan(&state.NextDrawing, &state.SavedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get lottery state: %w", err)
	}

	rows, err := r.pool.Query(ctx, `SELECT currency, participant_id, amount FROM lottery_entries`)
	if err != nil {
		return nil, fmt.Errorf("list lottery entries: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var row entryRow
		if err := rows.Scan(&row.currency, &row.participant, &row.amount); err != nil {
			return nil, fmt.Errorf("scan lottery entry: %w", err)
		}
		pool, ok := state.Entries[row.currency]
		if !ok {
			pool = make(map[uuid.UUID]int64)
			state.Entries[row.currency] = pool
		}
		pool[row.participant] = row.amount
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate lottery entries: %w", err)
	}
	return state, nil
}
