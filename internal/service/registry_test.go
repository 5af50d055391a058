package service

import (
	"testing"

	"weekly-lottery/internal/adapter/currency"
	"weekly-lottery/pkg/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCurrencyRegistry_Register(t *testing.T) {
	r := NewCurrencyRegistry()

	require.NoError(t, r.Register(newCoins()))
	require.NoError(t, r.Register(newTokens()))
	require.NoError(t, r.Register(newGems()))

	assert.Equal(t, []string{"coins", "tokens", "gems"}, r.IDs())
	assert.Equal(t, 3, r.Len())

	c, ok := r.Get("TOKENS")
	require.True(t, ok)
	assert.Equal(t, "Tokens", c.DisplayName())
	assert.True(t, r.Has(" Gems "))
	assert.False(t, r.Has("pokecoins"))
}

func TestCurrencyRegistry_DuplicateRejected(t *testing.T) {
	r := NewCurrencyRegistry()
	require.NoError(t, r.Register(newTokens()))

	dup := currency.NewMemoryCurrency(currency.NewDescriptor("Tokens", "Other Tokens", "T", ""))
	err := r.Register(dup)
	require.Error(t, err)
	assert.True(t, apperror.HasCode(err, "CUR_001"))

	c, _ := r.Get("tokens")
	assert.Equal(t, "Tokens", c.DisplayName(), "first registration wins")
	assert.Equal(t, 1, r.Len())
}

func TestCurrencyRegistry_EmptyID(t *testing.T) {
	r := NewCurrencyRegistry()
	err := r.Register(currency.NewMemoryCurrency(currency.NewDescriptor("  ", "", "", "")))
	require.Error(t, err)
	assert.True(t, apperror.HasCode(err, "CUR_004"))
}

func TestCurrencyRegistry_ListIsACopy(t *testing.T) {
	r := NewCurrencyRegistry()
	require.NoError(t, r.Register(newCoins()))

	list := r.List()
	list[0] = nil
	assert.NotNil(t, r.List()[0])
}
