// Package memory holds in-process stores. Nothing survives a restart.
package memory

import (
	"context"
	"sort"
	"sync"

	"weekly-lottery/internal/core/domain"

	"github.com/google/uuid"
)

// StateStore keeps the last saved state in memory.
type StateStore struct {
	mu    sync.Mutex
	state *domain.LotteryState
	saves int
}

func NewStateStore() *StateStore {
	return &StateStore{}
}

func (s *StateStore) Save(_ context.Context, state domain.LotteryState) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := copyState(state)
	s.state = &cp
	s.saves++
	return nil
}

func (s *StateStore) Load(_ context.Context) (*domain.LotteryState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state == nil {
		return nil, nil
	}
	cp := copyState(*s.state)
	return &cp, nil
}

// Saves returns how many times Save was called.
func (s *StateStore) Saves() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.saves
}

func copyState(state domain.LotteryState) domain.LotteryState {
	out := domain.LotteryState{
		NextDrawing: state.NextDrawing,
		SavedAt:     state.SavedAt,
		Entries:     make(map[string]map[uuid.UUID]int64, len(state.Entries)),
	}
	for currency, pool := range state.Entries {
		cp := make(map[uuid.UUID]int64, len(pool))
		for p, amount := range pool {
			cp[p] = amount
		}
		out.Entries[currency] = cp
	}
	return out
}

// RewardStore keeps pending rewards per participant.
type RewardStore struct {
	mu      sync.Mutex
	pending map[uuid.UUID][]domain.PendingReward
}

func NewRewardStore() *RewardStore {
	return &RewardStore{pending: make(map[uuid.UUID][]domain.PendingReward)}
}

func (s *RewardStore) Record(_ context.Context, reward domain.PendingReward) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pending[reward.ParticipantID] = append(s.pending[reward.ParticipantID], reward)
	return nil
}

func (s *RewardStore) Take(_ context.Context, participant uuid.UUID) ([]domain.PendingReward, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rewards := s.pending[participant]
	delete(s.pending, participant)
	sort.SliceStable(rewards, func(i, j int) bool { return rewards[i].WonAt.Before(rewards[j].WonAt) })
	return rewards, nil
}

// Pending returns a copy of the participant's rewards without removing them.
func (s *RewardStore) Pending(participant uuid.UUID) []domain.PendingReward {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.PendingReward(nil), s.pending[participant]...)
}

// PresenceTracker is a set of online participants.
type PresenceTracker struct {
	mu     sync.RWMutex
	online map[uuid.UUID]struct{}
}

func NewPresenceTracker() *PresenceTracker {
	return &PresenceTracker{online: make(map[uuid.UUID]struct{})}
}

func (t *PresenceTracker) IsOnline(_ context.Context, participant uuid.UUID) (bool, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	_, ok := t.online[participant]
	return ok, nil
}

func (t *PresenceTracker) SetOnline(_ context.Context, participant uuid.UUID, online bool) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if online {
		t.online[participant] = struct{}{}
	} else {
		delete(t.online, participant)
	}
	return nil
}

// DrawHistory keeps at most capacity records per currency, newest first.
type DrawHistory struct {
	mu       sync.Mutex
	capacity int
	records  map[string][]domain.DrawRecord
}

// NewDrawHistory creates a history; capacity <= 0 keeps 100 records per currency.
func NewDrawHistory(capacity int) *DrawHistory {
	if capacity <= 0 {
		capacity = 100
	}
	return &DrawHistory{capacity: capacity, records: make(map[string][]domain.DrawRecord)}
}

func (h *DrawHistory) Append(_ context.Context, rec domain.DrawRecord) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	list := append([]domain.DrawRecord{rec}, h.records[rec.Currency]...)
	if len(list) > h.capacity {
		list = list[:h.capacity]
	}
	h.records[rec.Currency] = list
	return nil
}

func (h *DrawHistory) Recent(_ context.Context, currency string, limit int) ([]domain.DrawRecord, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	list := h.records[currency]
	if limit > 0 && len(list) > limit {
		list = list[:limit]
	}
	return append([]domain.DrawRecord(nil), list...), nil
}
