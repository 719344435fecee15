// Package store defines the persistence backend contract. Backends are
// injected at bootstrap: memory for tests and zero-setup runs, sqlite
// for a real deployment.
package store

import (
	"context"

	"github.com/fintrackhq/fintrack-backend/internal/models"
)

// Backend is the full persistence surface. Both the memory and sqlite
// stores implement it; services depend on the narrow slices they need.
type Backend interface {
	// Accounts
	CreateAccount(ctx context.Context, account *models.Account) error
	GetAccount(ctx context.Context, email string) (*models.Account, error)
	UpdatePassword(ctx context.Context, email, passwordHash string) error

	// Sessions
	CreateSession(ctx context.Context, session *models.Session) error
	GetSession(ctx context.Context, token string) (*models.Session, error)
	DeleteSession(ctx context.Context, token string) error

	// Transactions (one ordered ledger per account email)
	Append(ctx context.Context, email string, tx *models.Transaction) error
	Remove(ctx context.Context, email string, id int64) error
	ListAll(ctx context.Context, email string) ([]models.Transaction, error)
	LastID(ctx context.Context, email string) (int64, error)

	// Budgets (global table, keyed by category)
	UpsertBudget(ctx context.Context, budget *models.Budget) error
	GetBudget(ctx context.Context, category string) (*models.Budget, error)
	ListBudgets(ctx context.Context) ([]models.Budget, error)
	DeleteBudget(ctx context.Context, category string) error

	Close() error
}
