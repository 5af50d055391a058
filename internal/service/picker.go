package service

import (
	"errors"
	"math/rand/v2"
	"sort"
	"sync"
	"time"

	"weekly-lottery/internal/core/domain"

	"github.com/google/uuid"
)

var errEmptyPool = errors.New("pool has no weighted entries")

// Picker selects a participant with probability proportional to their amount.
type Picker struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewPicker creates a picker over src. A nil source seeds from the clock.
func NewPicker(src rand.Source) *Picker {
	if src == nil {
		now := uint64(time.Now().UnixNano())
		src = rand.NewPCG(now, now>>32|now<<32)
	}
	return &Picker{rng: rand.New(src)}
}

// Pick draws one winner. Entries are walked as cumulative weights and the
// random point is located with a binary search, so cost does not depend on
// the size of the amounts.
func (p *Picker) Pick(entries []domain.Entry) (uuid.UUID, error) {
	cumulative := make([]int64, 0, len(entries))
	var total int64
	for _, e := range entries {
		if e.Amount <= 0 {
			cumulative = append(cumulative, total)
			continue
		}
		total += e.Amount
		cumulative = append(cumulative, total)
	}
	if total <= 0 {
		return uuid.Nil, errEmptyPool
	}

	p.mu.Lock()
	point := p.rng.Int64N(total)
	p.mu.Unlock()

	idx := sort.Search(len(cumulative), func(i int) bool { return cumulative[i] > point })
	return entries[idx].ParticipantID, nil
}
