package sqlite

import (
	"context"
	"database/sql"
	"errors"

	"github.com/shopspring/decimal"

	"github.com/fintrackhq/fintrack-backend/internal/errs"
	"github.com/fintrackhq/fintrack-backend/internal/models"
)

func (s *Store) UpsertBudget(ctx context.Context, budget *models.Budget) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO budgets (category, limit_amount) VALUES (?, ?)
		 ON CONFLICT (category) DO UPDATE SET limit_amount = excluded.limit_amount`,
		budget.Category, budget.Limit.String())
	if err != nil {
		return errs.NewDatabaseError("upsert budget", err.Error())
	}
	return nil
}

func (s *Store) GetBudget(ctx context.Context, category string) (*models.Budget, error) {
	var limit string
	budget := models.Budget{Category: category}
	err := s.db.QueryRowContext(ctx,
		`SELECT limit_amount FROM budgets WHERE category = ?`, category).Scan(&limit)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, errs.NewNotFoundError("budget not found: " + category)
	}
	if err != nil {
		return nil, errs.NewDatabaseError("get budget", err.Error())
	}
	budget.Limit, err = decimal.NewFromString(limit)
	if err != nil {
		return nil, errs.NewDatabaseError("parse budget limit", err.Error())
	}
	return &budget, nil
}

func (s *Store) ListBudgets(ctx context.Context) ([]models.Budget, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT category, limit_amount FROM budgets ORDER BY category ASC`)
	if err != nil {
		return nil, errs.NewDatabaseError("list budgets", err.Error())
	}
	defer rows.Close()

	var out []models.Budget
	for rows.Next() {
		var b models.Budget
		var limit string
		if err := rows.Scan(&b.Category, &limit); err != nil {
			return nil, errs.NewDatabaseError("scan budget", err.Error())
		}
		b.Limit, err = decimal.NewFromString(limit)
		if err != nil {
			return nil, errs.NewDatabaseError("parse budget limit", err.Error())
		}
		out = append(out, b)
	}
	if err := rows.Err(); err != nil {
		return nil, errs.NewDatabaseError("list budgets", err.Error())
	}
	return out, nil
}

func (s *Store) DeleteBudget(ctx context.Context, category string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM budgets WHERE category = ?`, category)
	if err != nil {
		return errs.NewDatabaseError("delete budget", err.Error())
	}
	n, err := res.RowsAffected()
	if err != nil {
		return errs.NewDatabaseError("delete budget", err.Error())
	}
	if n == 0 {
		return errs.NewNotFoundError("budget not found: " + category)
	}
	return nil
}
