package service

import (
	"sync"

	"weekly-lottery/internal/core/domain"
	"weekly-lottery/internal/core/ports"
	"weekly-lottery/pkg/apperror"
)

// CurrencyRegistry holds the currencies available this run, in registration order.
type CurrencyRegistry struct {
	mu    sync.RWMutex
	byID  map[string]ports.Currency
	order []string
}

// NewCurrencyRegistry creates an empty registry.
func NewCurrencyRegistry() *CurrencyRegistry {
	return &CurrencyRegistry{byID: make(map[string]ports.Currency)}
}

// Register adds c. A second currency with the same id is rejected.
func (r *CurrencyRegistry) Register(c ports.Currency) error {
	id := domain.NormalizeCurrencyID(c.ID())
	if id == "" {
		return apperror.ErrInvalidCurrency("currency id must not be empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[id]; exists {
		return apperror.ErrDuplicateCurrency(id)
	}
	r.byID[id] = c
	r.order = append(r.order, id)
	return nil
}

// Get looks a currency up by id, case-insensitively.
func (r *CurrencyRegistry) Get(id string) (ports.Currency, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.byID[domain.NormalizeCurrencyID(id)]
	return c, ok
}

// Has reports whether id is registered.
func (r *CurrencyRegistry) Has(id string) bool {
	_, ok := r.Get(id)
	return ok
}

// List returns currencies in registration order.
func (r *CurrencyRegistry) List() []ports.Currency {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]ports.Currency, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.byID[id])
	}
	return out
}

// IDs returns registered ids in registration order.
func (r *CurrencyRegistry) IDs() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]string(nil), r.order...)
}

// Len returns the number of registered currencies.
func (r *CurrencyRegistry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.order)
}

func currencyInfo(c ports.Currency) domain.CurrencyInfo {
	return domain.CurrencyInfo{
		ID:     domain.NormalizeCurrencyID(c.ID()),
		Name:   c.DisplayName(),
		Symbol: c.Symbol(),
	}
}
