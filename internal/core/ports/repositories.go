package ports

import (
	"context"
	"time"

	"weekly-lottery/internal/core/domain"

	"github.com/google/uuid"
)

// StateStore persists the ledger snapshot and the next drawing time.
type StateStore interface {
	Save(ctx context.Context, state domain.LotteryState) error
	// Load returns nil, nil when nothing has been persisted yet.
	Load(ctx context.Context) (*domain.LotteryState, error)
}

// RewardStore keeps prizes for winners who were offline at drawing time.
type RewardStore interface {
	Record(ctx context.Context, reward domain.PendingReward) error
	// Take returns and removes every pending reward of the participant.
	Take(ctx context.Context, participant uuid.UUID) ([]domain.PendingReward, error)
}

// DrawHistory is the audit trail of past drawings.
type DrawHistory interface {
	Append(ctx context.Context, record domain.DrawRecord) error
	Recent(ctx context.Context, currency string, limit int) ([]domain.DrawRecord, error)
}

// PresenceTracker answers whether a participant is currently connected.
type PresenceTracker interface {
	IsOnline(ctx context.Context, participant uuid.UUID) (bool, error)
	SetOnline(ctx context.Context, participant uuid.UUID, online bool) error
}

// SubmissionGuard rejects replayed entry requests.
type SubmissionGuard interface {
	// CheckAndSet returns true when the nonce is new for the participant.
	CheckAndSet(ctx context.Context, participant string, nonce string, ttl time.Duration) (bool, error)
}

// RateLimitStore counts requests per key in fixed windows.
type RateLimitStore interface {
	Allow(ctx context.Context, key string, limit int64, window time.Duration) (*RateLimitResult, error)
}

// RateLimitResult holds the outcome of a rate limit check.
type RateLimitResult struct {
	Allowed   bool
	Limit     int64
	Remaining int64
	ResetAt   int64 // Unix timestamp
}
