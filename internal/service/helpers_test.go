package service

import (
	"context"
	"sync"
	"time"

	"weekly-lottery/internal/adapter/currency"
	"weekly-lottery/internal/core/domain"
	"weekly-lottery/internal/core/ports"

	"github.com/google/uuid"
)

func newTokens() *currency.MemoryCurrency {
	return currency.NewMemoryCurrency(currency.NewDescriptor("tokens", "Tokens", "⛃", "Tokens"))
}

func newGems() *currency.MemoryCurrency {
	return currency.NewMemoryCurrency(currency.NewDescriptor("gems", "Gems", "♦", "Gems"))
}

func newCoins() *currency.MemoryCurrency {
	return currency.NewMemoryCurrency(currency.NewDescriptor("coins", "Coins", "$", ""))
}

// fakeClock is a settable clock.
type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock(t time.Time) *fakeClock {
	return &fakeClock{now: t}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Set(t time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = t
}

// recordingNotifier captures notices.
type recordingNotifier struct {
	mu         sync.Mutex
	direct     []domain.Notice
	broadcasts []domain.Notice
}

func (n *recordingNotifier) NotifyParticipant(_ context.Context, participant uuid.UUID, notice domain.Notice) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.direct = append(n.direct, notice)
	return nil
}

func (n *recordingNotifier) Broadcast(_ context.Context, notice domain.Notice) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.broadcasts = append(n.broadcasts, notice)
	return nil
}

func (n *recordingNotifier) kinds() (direct, broadcast []domain.NoticeKind) {
	n.mu.Lock()
	defer n.mu.Unlock()
	for _, d := range n.direct {
		direct = append(direct, d.Kind)
	}
	for _, b := range n.broadcasts {
		broadcast = append(broadcast, b.Kind)
	}
	return direct, broadcast
}

func (n *recordingNotifier) broadcastMessages() []string {
	n.mu.Lock()
	defer n.mu.Unlock()
	var out []string
	for _, b := range n.broadcasts {
		out = append(out, b.Message)
	}
	return out
}

func portsEntry(currency string, participant uuid.UUID, amount int64) ports.EntryRequest {
	return ports.EntryRequest{Currency: currency, ParticipantID: participant, Amount: amount}
}
