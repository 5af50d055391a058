package domain

import (
	"time"

	"github.com/google/uuid"
)

// PendingReward is a prize won while the winner was offline.
type PendingReward struct {
	ID            uuid.UUID `json:"id"`
	ParticipantID uuid.UUID `json:"participant_id"`
	Currency      string    `json:"currency"`
	Amount        int64     `json:"amount"`
	WonAt         time.Time `json:"won_at"`
}

// NewPendingReward builds a reward with a fresh id.
func NewPendingReward(participant uuid.UUID, currency string, amount int64, wonAt time.Time) PendingReward {
	return PendingReward{
		ID:            uuid.New(),
		ParticipantID: participant,
		Currency:      currency,
		Amount:        amount,
		WonAt:         wonAt,
	}
}
