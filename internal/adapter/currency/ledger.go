package currency

import (
	"context"
	"errors"
	"fmt"

	"weekly-lottery/internal/core/ports"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"
)

// withdrawScript debits only when the balance covers the amount.
// Returns the new balance, or -1 when funds are insufficient.
var withdrawScript = goredis.NewScript(`
local balance = tonumber(redis.call('HGET', KEYS[1], ARGV[1]) or '0')
local amount = tonumber(ARGV[2])
if balance < amount then
	return -1
end
return redis.call('HINCRBY', KEYS[1], ARGV[1], -amount)
`)

// LedgerCurrency keeps balances in a Redis hash, one per currency, as used
// by plugin-managed token and gem ledgers.
type LedgerCurrency struct {
	Descriptor
	client *goredis.Client
	key    string
}

// NewLedgerCurrency creates a Redis-backed currency.
func NewLedgerCurrency(d Descriptor, client *goredis.Client) *LedgerCurrency {
	return &LedgerCurrency{Descriptor: d, client: client, key: "currency:" + d.ID()}
}

func (c *LedgerCurrency) Balance(ctx context.Context, participant uuid.UUID) (int64, error) {
	balance, err := c.client.HGet(ctx, c.key, participant.String()).Int64()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return 0, nil
		}
		return 0, fmt.Errorf("%w: get balance: %w", ports.ErrProviderUnavailable, err)
	}
	return balance, nil
}

func (c *LedgerCurrency) Has(ctx context.Context, participant uuid.UUID, amount int64) (bool, error) {
	balance, err := c.Balance(ctx, participant)
	if err != nil {
		return false, err
	}
	return balance >= amount, nil
}

func (c *LedgerCurrency) Withdraw(ctx context.Context, participant uuid.UUID, amount int64) error {
	res, err := withdrawScript.Run(ctx, c.client, []string{c.key}, participant.String(), amount).Int64()
	if err != nil {
		return fmt.Errorf("%w: withdraw: %w", ports.ErrProviderUnavailable, err)
	}
	if res < 0 {
		return ports.ErrInsufficientFunds
	}
	return nil
}

func (c *LedgerCurrency) Deposit(ctx context.Context, participant uuid.UUID, amount int64) error {
	if err := c.client.HIncrBy(ctx, c.key, participant.String(), amount).Err(); err != nil {
		return fmt.Errorf("%w: deposit: %w", ports.ErrProviderUnavailable, err)
	}
	return nil
}
