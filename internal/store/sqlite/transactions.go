package sqlite

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/fintrackhq/fintrack-backend/internal/errs"
	"github.com/fintrackhq/fintrack-backend/internal/models"
)

func (s *Store) Append(ctx context.Context, email string, tx *models.Transaction) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO transactions (id, email, type, category, amount, tx_date, description, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		tx.ID, email, string(tx.Type), tx.Category, tx.Amount.String(), tx.Date, tx.Description, tx.CreatedAt)
	if err != nil {
		return errs.NewDatabaseError("append transaction", err.Error())
	}
	return nil
}

func (s *Store) Remove(ctx context.Context, email string, id int64) error {
	res, err := s.db.ExecContext(ctx,
		`DELETE FROM transactions WHERE email = ? AND id = ?`, email, id)
	if err != nil {
		return errs.NewDatabaseError("remove transaction", err.Error())
	}
	n, err := res.RowsAffected()
	if err != nil {
		return errs.NewDatabaseError("remove transaction", err.Error())
	}
	if n == 0 {
		return errs.NewNotFoundError("transaction not found")
	}
	return nil
}

// ListAll returns the full ledger for one account in insertion order.
func (s *Store) ListAll(ctx context.Context, email string) ([]models.Transaction, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, type, category, amount, tx_date, description, created_at
		 FROM transactions WHERE email = ? ORDER BY seq ASC`, email)
	if err != nil {
		return nil, errs.NewDatabaseError("list transactions", err.Error())
	}
	defer rows.Close()

	var out []models.Transaction
	for rows.Next() {
		var tx models.Transaction
		var txType, amount string
		if err := rows.Scan(&tx.ID, &txType, &tx.Category, &amount, &tx.Date, &tx.Description, &tx.CreatedAt); err != nil {
			return nil, errs.NewDatabaseError("scan transaction", err.Error())
		}
		tx.Type = models.TransactionType(txType)
		tx.Amount, err = decimal.NewFromString(amount)
		if err != nil {
			return nil, errs.NewDatabaseError("parse amount", err.Error())
		}
		out = append(out, tx)
	}
	if err := rows.Err(); err != nil {
		return nil, errs.NewDatabaseError("list transactions", err.Error())
	}
	return out, nil
}

func (s *Store) LastID(ctx context.Context, email string) (int64, error) {
	var last int64
	err := s.db.QueryRowContext(ctx,
		`SELECT COALESCE(MAX(id), 0) FROM transactions WHERE email = ?`, email).Scan(&last)
	if err != nil {
		return 0, errs.NewDatabaseError("last transaction id", err.Error())
	}
	return last, nil
}
