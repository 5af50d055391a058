package postgres

import (
	"context"
	"fmt"
)

var schema = []string{
	`CREATE TABLE IF NOT EXISTS lottery_state (
		id           SMALLINT PRIMARY KEY CHECK (id = 1),
		next_drawing TIMESTAMPTZ NOT NULL,
		saved_at     TIMESTAMPTZ NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS lottery_entries (
		currency       TEXT   NOT NULL,
		participant_id UUID   NOT NULL,
		amount         BIGINT NOT NULL CHECK (amount > 0),
		PRIMARY KEY (currency, participant_id)
	)`,
	`CREATE TABLE IF NOT EXISTS pending_rewards (
		id             UUID PRIMARY KEY,
		participant_id UUID        NOT NULL,
		currency       TEXT        NOT NULL,
		amount         BIGINT      NOT NULL CHECK (amount > 0),
		won_at         TIMESTAMPTZ NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_pending_rewards_participant ON pending_rewards (participant_id)`,
	`CREATE TABLE IF NOT EXISTS draw_history (
		id           UUID PRIMARY KEY,
		currency     TEXT        NOT NULL,
		status       TEXT        NOT NULL,
		winner       UUID,
		prize        BIGINT      NOT NULL,
		participants INTEGER     NOT NULL,
		drawn_at     TIMESTAMPTZ NOT NULL,
		error        TEXT        NOT NULL DEFAULT ''
	)`,
	`CREATE INDEX IF NOT EXISTS idx_draw_history_currency ON draw_history (currency, drawn_at DESC)`,
	`CREATE TABLE IF NOT EXISTS economy_accounts (
		participant_id UUID   NOT NULL,
		currency       TEXT   NOT NULL,
		balance        BIGINT NOT NULL DEFAULT 0 CHECK (balance >= 0),
		PRIMARY KEY (participant_id, currency)
	)`,
}

// Migrate creates the lottery tables when they do not exist.
func Migrate(ctx context.Context, pool Pool) error {
	for i, stmt := range schema {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("migrate step %d: %w", i+1, err)
		}
	}
	return nil
}
