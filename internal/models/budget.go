package models

import "github.com/shopspring/decimal"

// Budget is a per-category spending limit. Budgets are keyed by category
// name only and shared across accounts; utilization is always computed
// against the calling account's ledger.
type Budget struct {
	Category string          `json:"category"`
	Limit    decimal.Decimal `json:"limit"`
}
