package services

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/fintrackhq/fintrack-backend/internal/dto"
	"github.com/fintrackhq/fintrack-backend/internal/errs"
	"github.com/fintrackhq/fintrack-backend/internal/models"
	"github.com/fintrackhq/fintrack-backend/pkg/logger"
)

var hundred = decimal.NewFromInt(100)

type budgetStore interface {
	UpsertBudget(ctx context.Context, budget *models.Budget) error
	GetBudget(ctx context.Context, category string) (*models.Budget, error)
	ListBudgets(ctx context.Context) ([]models.Budget, error)
	DeleteBudget(ctx context.Context, category string) error
}

type budgetService struct {
	budgets budgetStore
	txs     analyticsLedgerStore
}

func NewBudgetService(budgets budgetStore, txs analyticsLedgerStore) *budgetService {
	return &budgetService{budgets: budgets, txs: txs}
}

// Set upserts the limit for a category.
func (s *budgetService) Set(ctx context.Context, category, limit string) (*models.Budget, error) {
	if category == "" {
		return nil, errs.NewValidationError("category is required")
	}
	if limit == "" {
		return nil, errs.NewValidationError("limit is required")
	}
	amount, err := decimal.NewFromString(limit)
	if err != nil {
		return nil, errs.NewValidationError("limit must be a decimal number")
	}
	if !amount.IsPositive() {
		return nil, errs.NewValidationError("limit must be positive")
	}

	budget := &models.Budget{Category: category, Limit: amount}
	if err := s.budgets.UpsertBudget(ctx, budget); err != nil {
		return nil, err
	}

	logger.FromContext(ctx).Info("budget set", "category", category, "limit", amount.String())
	return budget, nil
}

func (s *budgetService) Delete(ctx context.Context, category string) error {
	return s.budgets.DeleteBudget(ctx, category)
}

// List returns every budget with its utilization against the calling
// account's ledger.
func (s *budgetService) List(ctx context.Context, email string) (dto.BudgetListResult, error) {
	budgets, err := s.budgets.ListBudgets(ctx)
	if err != nil {
		return dto.BudgetListResult{}, err
	}
	ledger, err := s.txs.ListAll(ctx, email)
	if err != nil {
		return dto.BudgetListResult{}, err
	}

	out := make([]dto.BudgetUtilization, 0, len(budgets))
	for i := range budgets {
		out = append(out, Utilization(&budgets[i], ledger))
	}
	return dto.BudgetListResult{Budgets: out}, nil
}

// Utilization computes spend against a budget. Spent counts only
// expense-type transactions in the budget's category. The raw percentage
// picks the status tier; the display percentage is clamped at 100.
func Utilization(budget *models.Budget, ledger []models.Transaction) dto.BudgetUtilization {
	spent := decimal.Zero
	for i := range ledger {
		tx := &ledger[i]
		if tx.Type == models.TypeExpense && tx.Category == budget.Category {
			spent = spent.Add(tx.Amount)
		}
	}

	raw := decimal.Zero
	if budget.Limit.IsPositive() {
		raw = spent.Div(budget.Limit).Mul(hundred).Round(1)
	}

	display := raw
	if display.GreaterThan(hundred) {
		display = hundred
	}

	status := dto.BudgetStatusOnTrack
	switch {
	case raw.GreaterThan(hundred):
		status = dto.BudgetStatusOverBudget
	case raw.GreaterThan(decimal.NewFromInt(75)):
		status = dto.BudgetStatusNearLimit
	}

	return dto.BudgetUtilization{
		Category:       budget.Category,
		Limit:          budget.Limit,
		Spent:          spent,
		Percent:        raw,
		DisplayPercent: display,
		Status:         status,
	}
}
