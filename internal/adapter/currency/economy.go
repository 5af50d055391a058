package currency

import (
	"context"
	"errors"
	"fmt"

	"weekly-lottery/internal/adapter/storage/postgres"
	"weekly-lottery/internal/core/ports"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// EconomyCurrency is backed by the server economy's account table.
// Debits are a single conditional UPDATE so concurrent withdrawals can never
// take a balance below zero.
type EconomyCurrency struct {
	Descriptor
	pool postgres.Pool
}

// NewEconomyCurrency creates a PostgreSQL-backed currency.
func NewEconomyCurrency(d Descriptor, pool postgres.Pool) *EconomyCurrency {
	return &EconomyCurrency{Descriptor: d, pool: pool}
}

func (c *EconomyCurrency) Balance(ctx context.Context, participant uuid.UUID) (int64, error) {
	var balance int64
	err := c.pool.QueryRow(ctx,
		`SELECT balance FROM economy_accounts WHERE participant_id = $1 AND currency = $2`,
		participant, c.ID(),
	).Scan(&balance)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, nil
		}
		return 0, fmt.Errorf("%w: get balance: %w", ports.ErrProviderUnavailable, err)
	}
	return balance, nil
}

func (c *EconomyCurrency) Has(ctx context.Context, participant uuid.UUID, amount int64) (bool, error) {
	balance, err := c.Balance(ctx, participant)
	if err != nil {
		return false, err
	}
	return balance >= amount, nil
}

func (c *EconomyCurrency) Withdraw(ctx context.Context, participant uuid.UUID, amount int64) error {
	tag, err := c.pool.Exec(ctx,
		`UPDATE economy_accounts SET balance = balance - $3
		 WHERE participant_id = $1 AND currency = $2 AND balance >= $3`,
		participant, c.ID(), amount,
	)
	if err != nil {
		return fmt.Errorf("%w: withdraw: %w", ports.ErrProviderUnavailable, err)
	}
	if tag.RowsAffected() == 0 {
		return ports.ErrInsufficientFunds
	}
	return nil
}

func (c *EconomyCurrency) Deposit(ctx context.Context, participant uuid.UUID, amount int64) error {
	_, err := c.pool.Exec(ctx,
		`INSERT INTO economy_accounts (participant_id, currency, balance) VALUES ($1, $2, $3)
		 ON CONFLICT (participant_id, currency) DO UPDATE SET balance = economy_accounts.balance + EXCLUDED.balance`,
		participant, c.ID(), amount,
	)
	if err != nil {
		return fmt.Errorf("%w: deposit: %w", ports.ErrProviderUnavailable, err)
	}
	return nil
}
