package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// DateLayout is the calendar-date format used everywhere a transaction
// date crosses a boundary (API, storage, aggregation).
const DateLayout = "2006-01-02"

type TransactionType string

const (
	TypeIncome  TransactionType = "income"
	TypeExpense TransactionType = "expense"
)

// Valid reports whether t is one of the two known transaction types.
func (t TransactionType) Valid() bool {
	return t == TypeIncome || t == TypeExpense
}

type Transaction struct {
	ID          int64           `json:"id"` // creation-timestamp-derived (ms), monotonic per ledger
	Type        TransactionType `json:"type"`
	Category    string          `json:"category"`
	Amount      decimal.Decimal `json:"amount"`
	Date        string          `json:"date"` // YYYY-MM-DD
	Description string          `json:"description,omitempty"`
	CreatedAt   time.Time       `json:"createdAt"`
}

// ParseDate returns the transaction date as a time.Time.
func (t *Transaction) ParseDate() (time.Time, error) {
	return time.Parse(DateLayout, t.Date)
}
