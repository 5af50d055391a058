// Package currency holds the balance providers the lottery draws from.
package currency

import (
	"strings"

	"weekly-lottery/config"
	"weekly-lottery/internal/core/domain"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

// Descriptor is the display half of a currency: identity and formatting.
// A Unit is appended after the number ("1,234 Tokens"); without one the
// Symbol is prefixed ("$1,234").
type Descriptor struct {
	id     string
	name   string
	symbol string
	unit   string
}

// NewDescriptor builds a descriptor; the id is normalised.
func NewDescriptor(id, name, symbol, unit string) Descriptor {
	id = domain.NormalizeCurrencyID(id)
	if name == "" {
		name = id
	}
	return Descriptor{id: id, name: name, symbol: symbol, unit: unit}
}

// DescriptorFromConfig builds the descriptor of a configured currency.
func DescriptorFromConfig(id string, cfg config.CurrencyConfig) Descriptor {
	return NewDescriptor(id, cfg.Name, cfg.Symbol, cfg.Unit)
}

func (d Descriptor) ID() string          { return d.id }
func (d Descriptor) DisplayName() string { return d.name }
func (d Descriptor) Symbol() string      { return d.symbol }

// Format renders an amount with thousands separators.
func (d Descriptor) Format(amount int64) string {
	n := printer.Sprintf("%d", amount)
	if d.unit != "" {
		return n + " " + d.unit
	}
	if strings.HasPrefix(n, "-") {
		return "-" + d.symbol + n[1:]
	}
	return d.symbol + n
}
