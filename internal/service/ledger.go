package service

import (
	"bytes"
	"math"
	"sort"
	"sync"

	"weekly-lottery/internal/core/domain"
	"weekly-lottery/pkg/apperror"

	"github.com/google/uuid"
)

// EntryLedger tracks the open pool of every currency: participant -> amount.
// Amounts only grow within a cycle and an absent participant counts as zero.
type EntryLedger struct {
	mu    sync.RWMutex
	pools map[string]map[uuid.UUID]int64
}

// NewEntryLedger creates an empty ledger.
func NewEntryLedger() *EntryLedger {
	return &EntryLedger{pools: make(map[string]map[uuid.UUID]int64)}
}

// CanAdd reports whether Add would succeed, without mutating anything.
func (l *EntryLedger) CanAdd(currency string, participant uuid.UUID, amount int64) error {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.checkAdd(currency, participant, amount)
}

// Add credits amount to the participant's entry and returns their new total.
func (l *EntryLedger) Add(currency string, participant uuid.UUID, amount int64) (int64, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if err := l.checkAdd(currency, participant, amount); err != nil {
		return 0, err
	}
	pool, ok := l.pools[currency]
	if !ok {
		pool = make(map[uuid.UUID]int64)
		l.pools[currency] = pool
	}
	pool[participant] += amount
	return pool[participant], nil
}

func (l *EntryLedger) checkAdd(currency string, participant uuid.UUID, amount int64) error {
	if amount <= 0 {
		return apperror.ErrInvalidAmount()
	}
	pool := l.pools[currency]
	if pool[participant] > math.MaxInt64-amount {
		return apperror.ErrPoolOverflow()
	}
	// the pool total is the prize, it must stay representable too
	if poolTotal(pool) > math.MaxInt64-amount {
		return apperror.ErrPoolOverflow()
	}
	return nil
}

// Total returns the sum of all entries of a currency.
func (l *EntryLedger) Total(currency string) int64 {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return poolTotal(l.pools[currency])
}

// Count returns the number of distinct participants with a positive entry.
func (l *EntryLedger) Count(currency string) int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.pools[currency])
}

// EntriesFor returns one participant's contribution, zero when absent.
func (l *EntryLedger) EntriesFor(currency string, participant uuid.UUID) int64 {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.pools[currency][participant]
}

// Entries lists a pool ordered by participant id.
func (l *EntryLedger) Entries(currency string) []domain.Entry {
	l.mu.RLock()
	defer l.mu.RUnlock()

	pool := l.pools[currency]
	out := make([]domain.Entry, 0, len(pool))
	for p, amount := range pool {
		out = append(out, domain.Entry{ParticipantID: p, Amount: amount})
	}
	sort.Slice(out, func(i, j int) bool {
		return bytes.Compare(out[i].ParticipantID[:], out[j].ParticipantID[:]) < 0
	})
	return out
}

// Clear empties one currency's pool.
func (l *EntryLedger) Clear(currency string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.pools, currency)
}

// Snapshot returns a deep copy of every non-empty pool.
func (l *EntryLedger) Snapshot() map[string]map[uuid.UUID]int64 {
	l.mu.RLock()
	defer l.mu.RUnlock()

	out := make(map[string]map[uuid.UUID]int64, len(l.pools))
	for currency, pool := range l.pools {
		if len(pool) == 0 {
			continue
		}
		cp := make(map[uuid.UUID]int64, len(pool))
		for p, amount := range pool {
			cp[p] = amount
		}
		out[currency] = cp
	}
	return out
}

// Restore replaces the ledger with persisted entries. Currencies rejected by
// keep and non-positive amounts are dropped; the dropped currency ids are returned.
func (l *EntryLedger) Restore(entries map[string]map[uuid.UUID]int64, keep func(currency string) bool) []string {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.pools = make(map[string]map[uuid.UUID]int64, len(entries))
	var skipped []string
	for currency, pool := range entries {
		if keep != nil && !keep(currency) {
			skipped = append(skipped, currency)
			continue
		}
		cp := make(map[uuid.UUID]int64, len(pool))
		var total int64
		for p, amount := range pool {
			if amount <= 0 || total > math.MaxInt64-amount {
				continue
			}
			cp[p] = amount
			total += amount
		}
		if len(cp) > 0 {
			l.pools[currency] = cp
		}
	}
	sort.Strings(skipped)
	return skipped
}

func poolTotal(pool map[uuid.UUID]int64) int64 {
	var total int64
	for _, amount := range pool {
		total += amount
	}
	return total
}
