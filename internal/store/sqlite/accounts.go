package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/fintrackhq/fintrack-backend/internal/errs"
	"github.com/fintrackhq/fintrack-backend/internal/models"
)

func (s *Store) CreateAccount(ctx context.Context, account *models.Account) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO accounts (email, password_hash, created_at) VALUES (?, ?, ?)`,
		account.Email, account.PasswordHash, account.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return errs.NewAlreadyExistsError("account already exists: " + account.Email)
		}
		return errs.NewDatabaseError("create account", err.Error())
	}
	return nil
}

func (s *Store) GetAccount(ctx context.Context, email string) (*models.Account, error) {
	var account models.Account
	err := s.db.QueryRowContext(ctx,
		`SELECT email, password_hash, created_at FROM accounts WHERE email = ?`,
		email).Scan(&account.Email, &account.PasswordHash, &account.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, errs.NewNotFoundError("account not found: " + email)
	}
	if err != nil {
		return nil, errs.NewDatabaseError("get account", err.Error())
	}
	return &account, nil
}

func (s *Store) UpdatePassword(ctx context.Context, email, passwordHash string) error {
	res, err := s.db.ExecContext(ctx,
		`UPDATE accounts SET password_hash = ? WHERE email = ?`,
		passwordHash, email)
	if err != nil {
		return errs.NewDatabaseError("update password", err.Error())
	}
	n, err := res.RowsAffected()
	if err != nil {
		return errs.NewDatabaseError("update password", err.Error())
	}
	if n == 0 {
		return errs.NewNotFoundError("account not found: " + email)
	}
	return nil
}

// modernc.org/sqlite reports constraint failures in the error text; the
// driver does not expose a typed error for them.
func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}
