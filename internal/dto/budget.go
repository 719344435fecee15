package dto

import "github.com/shopspring/decimal"

type SetBudgetRequest struct {
	Limit string `json:"limit"`
}

// Budget utilization status tiers. The raw percentage, not the display
// clamp, decides the tier.
const (
	BudgetStatusOverBudget = "over-budget" // raw > 100
	BudgetStatusNearLimit  = "near-limit"  // raw > 75
	BudgetStatusOnTrack    = "on-track"
)

type BudgetUtilization struct {
	Category       string          `json:"category"`
	Limit          decimal.Decimal `json:"limit"`
	Spent          decimal.Decimal `json:"spent"`
	Percent        decimal.Decimal `json:"percent"`        // raw, one decimal place
	DisplayPercent decimal.Decimal `json:"displayPercent"` // clamped at 100 for rendering
	Status         string          `json:"status"`
}

type BudgetListResult struct {
	Budgets []BudgetUtilization `json:"budgets"`
}
