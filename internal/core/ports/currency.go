package ports

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

var (
	// ErrInsufficientFunds is returned by Currency.Withdraw when the balance
	// does not cover the amount at the moment of the debit.
	ErrInsufficientFunds = errors.New("insufficient funds")
	// ErrProviderUnavailable means the provider's backend could not be reached.
	ErrProviderUnavailable = errors.New("currency provider unavailable")
)

// Currency is the capability every balance provider implements.
// Amounts are whole units and always positive.
type Currency interface {
	// ID is the stable lowercase identifier, e.g. "tokens".
	ID() string
	DisplayName() string
	Symbol() string
	Format(amount int64) string
	Balance(ctx context.Context, participant uuid.UUID) (int64, error)
	Has(ctx context.Context, participant uuid.UUID, amount int64) (bool, error)
	// Withdraw debits atomically, re-checking funds inside the provider.
	Withdraw(ctx context.Context, participant uuid.UUID, amount int64) error
	Deposit(ctx context.Context, participant uuid.UUID, amount int64) error
}
