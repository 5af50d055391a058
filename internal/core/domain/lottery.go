package domain

import (
	"time"

	"github.com/google/uuid"
)

// Entry is one participant's cumulative contribution to a pool.
type Entry struct {
	ParticipantID uuid.UUID
	Amount        int64
}

// LotteryState is the persisted snapshot: the next drawing plus every open pool.
type LotteryState struct {
	NextDrawing time.Time
	Entries     map[string]map[uuid.UUID]int64
	SavedAt     time.Time
}

// NewLotteryState returns an empty state scheduled for next.
func NewLotteryState(next time.Time) *LotteryState {
	return &LotteryState{
		NextDrawing: next,
		Entries:     make(map[string]map[uuid.UUID]int64),
	}
}

// Total sums a currency's pool in the snapshot.
func (s *LotteryState) Total(currency string) int64 {
	var total int64
	for _, amount := range s.Entries[currency] {
		total += amount
	}
	return total
}

// PoolStatus is the read model for one currency's open pool.
type PoolStatus struct {
	Currency       string `json:"currency"`
	Name           string `json:"name"`
	Symbol         string `json:"symbol"`
	Total          int64  `json:"total"`
	FormattedTotal string `json:"formatted_total"`
	Participants   int    `json:"participants"`
}

// StatusReport is the periodic status summary across all pools.
type StatusReport struct {
	Pools         []PoolStatus  `json:"pools"`
	NextDrawing   time.Time     `json:"next_drawing"`
	TimeRemaining time.Duration `json:"-"`
	Remaining     string        `json:"remaining"`
}
