package ports

import (
	"context"
	"time"

	"weekly-lottery/internal/core/domain"

	"github.com/google/uuid"
)

// SignatureService handles HMAC-SHA256 signing and verification.
type SignatureService interface {
	Sign(secretKey string, payload string) string
	Verify(secretKey string, payload string, signature string) bool
}

// TokenService issues and validates admin bearer tokens.
type TokenService interface {
	Generate(subject string, role string) (string, time.Time, error)
	Validate(tokenString string) (*TokenClaims, error)
}

// TokenClaims holds the parsed JWT claims.
type TokenClaims struct {
	Subject string
	Role    string
}

// Notifier delivers plain-text notices to participants and the server.
type Notifier interface {
	NotifyParticipant(ctx context.Context, participant uuid.UUID, notice domain.Notice) error
	Broadcast(ctx context.Context, notice domain.Notice) error
}

// MetricsRecorder observes lottery activity.
type MetricsRecorder interface {
	EntryAccepted(currency string, amount int64)
	EntryRejected(currency string, reason string)
	PoolChanged(currency string, total int64, participants int)
	DrawCompleted(currency string, status domain.DrawStatus, prize int64)
	RewardsDelivered(currency string, count int)
	SaveCompleted(err error, took time.Duration)
}

// SchedulerControl exposes the timer lifecycle to the admin API.
type SchedulerControl interface {
	Reload(ctx context.Context) error
	Running() bool
}

// --- Service Ports (Business Logic) ---

// LotteryService is the set of operations the host and the admin API call.
type LotteryService interface {
	Submit(ctx context.Context, req EntryRequest) (*EntryReceipt, error)
	Currencies(ctx context.Context) []domain.CurrencyInfo
	Pool(ctx context.Context, currency string) (*domain.PoolStatus, error)
	Pools(ctx context.Context) []domain.PoolStatus
	EntriesFor(ctx context.Context, currency string, participant uuid.UUID) (int64, error)
	Status(ctx context.Context) domain.StatusReport
	OnConnect(ctx context.Context, participant uuid.UUID) ([]domain.PendingReward, error)
	OnDisconnect(ctx context.Context, participant uuid.UUID) error
	DrawNow(ctx context.Context) ([]domain.DrawOutcome, error)
	SetNextDrawing(ctx context.Context, next time.Time) error
	BroadcastStatus(ctx context.Context) error
	History(ctx context.Context, currency string, limit int) ([]domain.DrawRecord, error)
}

// EntryRequest holds validated input for a lottery entry.
type EntryRequest struct {
	Currency      string
	ParticipantID uuid.UUID
	Amount        int64
}

// EntryReceipt confirms an accepted entry.
type EntryReceipt struct {
	Currency      string
	ParticipantID uuid.UUID
	Amount        int64
	TotalEntered  int64
	PoolTotal     int64
	Formatted     string
	AcceptedAt    time.Time
}
