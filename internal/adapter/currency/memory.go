package currency

import (
	"context"
	"fmt"
	"math"
	"sync"

	"weekly-lottery/internal/core/ports"

	"github.com/google/uuid"
)

// MemoryCurrency keeps balances in process. Used by tests and by
// currencies configured with provider "memory".
type MemoryCurrency struct {
	Descriptor

	mu          sync.Mutex
	balances    map[uuid.UUID]int64
	withdrawErr error
	depositErr  error
}

// NewMemoryCurrency creates an empty in-memory currency.
func NewMemoryCurrency(d Descriptor) *MemoryCurrency {
	return &MemoryCurrency{Descriptor: d, balances: make(map[uuid.UUID]int64)}
}

// SetBalance overwrites a participant's balance.
func (c *MemoryCurrency) SetBalance(participant uuid.UUID, amount int64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.balances[participant] = amount
}

// FailWithdrawals makes every Withdraw return err until reset with nil.
func (c *MemoryCurrency) FailWithdrawals(err error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.withdrawErr = err
}

// FailDeposits makes every Deposit return err until reset with nil.
func (c *MemoryCurrency) FailDeposits(err error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.depositErr = err
}

func (c *MemoryCurrency) Balance(_ context.Context, participant uuid.UUID) (int64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.balances[participant], nil
}

func (c *MemoryCurrency) Has(ctx context.Context, participant uuid.UUID, amount int64) (bool, error) {
	balance, err := c.Balance(ctx, participant)
	if err != nil {
		return false, err
	}
	return balance >= amount, nil
}

func (c *MemoryCurrency) Withdraw(_ context.Context, participant uuid.UUID, amount int64) error {
	if amount <= 0 {
		return fmt.Errorf("withdraw %d: amount must be positive", amount)
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.withdrawErr != nil {
		return c.withdrawErr
	}
	if c.balances[participant] < amount {
		return ports.ErrInsufficientFunds
	}
	c.balances[participant] -= amount
	return nil
}

func (c *MemoryCurrency) Deposit(_ context.Context, participant uuid.UUID, amount int64) error {
	if amount <= 0 {
		return fmt.Errorf("deposit %d: amount must be positive", amount)
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.depositErr != nil {
		return c.depositErr
	}
	if c.balances[participant] > math.MaxInt64-amount {
		return fmt.Errorf("deposit %d: balance overflow", amount)
	}
	c.balances[participant] += amount
	return nil
}
