// Package memory implements the persistence layer with in-process maps.
// It is the default backend and the one the test suites run against.
package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/fintrackhq/fintrack-backend/internal/errs"
	"github.com/fintrackhq/fintrack-backend/internal/models"
)

type Store struct {
	mu sync.RWMutex

	accounts map[string]*models.Account
	sessions map[string]*models.Session
	ledgers  map[string][]models.Transaction // keyed by owning account email, insertion order
	budgets  map[string]*models.Budget
}

func New() *Store {
	return &Store{
		accounts: make(map[string]*models.Account),
		sessions: make(map[string]*models.Session),
		ledgers:  make(map[string][]models.Transaction),
		budgets:  make(map[string]*models.Budget),
	}
}

// Close satisfies the backend interface; nothing to release.
func (s *Store) Close() error { return nil }

// --- Accounts ---

func (s *Store) CreateAccount(_ context.Context, account *models.Account) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.accounts[account.Email]; ok {
		return errs.NewAlreadyExistsError("account already exists: " + account.Email)
	}
	cp := *account
	s.accounts[account.Email] = &cp
	return nil
}

func (s *Store) GetAccount(_ context.Context, email string) (*models.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	account, ok := s.accounts[email]
	if !ok {
		return nil, errs.NewNotFoundError("account not found: " + email)
	}
	cp := *account
	return &cp, nil
}

func (s *Store) UpdatePassword(_ context.Context, email, passwordHash string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	account, ok := s.accounts[email]
	if !ok {
		return errs.NewNotFoundError("account not found: " + email)
	}
	account.PasswordHash = passwordHash
	return nil
}

// --- Sessions ---

func (s *Store) CreateSession(_ context.Context, session *models.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	cp := *session
	s.sessions[session.Token] = &cp
	return nil
}

func (s *Store) GetSession(_ context.Context, token string) (*models.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	session, ok := s.sessions[token]
	if !ok {
		return nil, errs.NewNotFoundError("session not found")
	}
	cp := *session
	return &cp, nil
}

func (s *Store) DeleteSession(_ context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.sessions[token]; !ok {
		return errs.NewNotFoundError("session not found")
	}
	delete(s.sessions, token)
	return nil
}

// --- Transactions ---

func (s *Store) Append(_ context.Context, email string, tx *models.Transaction) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.ledgers[email] = append(s.ledgers[email], *tx)
	return nil
}

func (s *Store) Remove(_ context.Context, email string, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	ledger := s.ledgers[email]
	for i, tx := range ledger {
		if tx.ID == id {
			s.ledgers[email] = append(ledger[:i:i], ledger[i+1:]...)
			return nil
		}
	}
	return errs.NewNotFoundError("transaction not found")
}

func (s *Store) ListAll(_ context.Context, email string) ([]models.Transaction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ledger := s.ledgers[email]
	out := make([]models.Transaction, len(ledger))
	copy(out, ledger)
	return out, nil
}

func (s *Store) LastID(_ context.Context, email string) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var last int64
	for _, tx := range s.ledgers[email] {
		if tx.ID > last {
			last = tx.ID
		}
	}
	return last, nil
}

// --- Budgets ---

func (s *Store) UpsertBudget(_ context.Context, budget *models.Budget) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	cp := *budget
	s.budgets[budget.Category] = &cp
	return nil
}

func (s *Store) GetBudget(_ context.Context, category string) (*models.Budget, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	budget, ok := s.budgets[category]
	if !ok {
		return nil, errs.NewNotFoundError("budget not found: " + category)
	}
	cp := *budget
	return &cp, nil
}

func (s *Store) ListBudgets(_ context.Context) ([]models.Budget, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Budget, 0, len(s.budgets))
	for _, b := range s.budgets {
		out = append(out, *b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Category < out[j].Category })
	return out, nil
}

func (s *Store) DeleteBudget(_ context.Context, category string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.budgets[category]; !ok {
		return errs.NewNotFoundError("budget not found: " + category)
	}
	delete(s.budgets, category)
	return nil
}
