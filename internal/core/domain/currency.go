package domain

import "strings"

// NormalizeCurrencyID turns a display name or user input into the stable
// lowercase currency identifier used as a map key and in persisted data.
func NormalizeCurrencyID(name string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), " ", "_")
}

// CurrencyInfo is the display metadata of a registered currency.
type CurrencyInfo struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Symbol string `json:"symbol"`
}
