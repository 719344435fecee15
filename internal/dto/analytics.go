package dto

import "github.com/shopspring/decimal"

// DailyBucketsResult holds 7 weekday buckets (Sunday=0..Saturday=6).
// Transactions from different weeks that share a weekday are summed into
// the same bucket.
type DailyBucketsResult struct {
	Labels  []string          `json:"labels"`
	Income  []decimal.Decimal `json:"income"`
	Expense []decimal.Decimal `json:"expense"`
}

// MonthlyBucketsResult holds 12 calendar-month buckets (Jan..Dec), summed
// across all years present in the collection.
type MonthlyBucketsResult struct {
	Labels  []string          `json:"labels"`
	Income  []decimal.Decimal `json:"income"`
	Expense []decimal.Decimal `json:"expense"`
}

type AnnualBucket struct {
	Year    string          `json:"year"`
	Income  decimal.Decimal `json:"income"`
	Expense decimal.Decimal `json:"expense"`
}

// AnnualBucketsResult lists per-year sums, year keys ascending.
type AnnualBucketsResult struct {
	Buckets []AnnualBucket `json:"buckets"`
}

// CashFlowResult is a single signed 12-month series: income adds,
// expense subtracts.
type CashFlowResult struct {
	Labels []string          `json:"labels"`
	Series []decimal.Decimal `json:"series"`
}

type CategoryTotal struct {
	Category string          `json:"category"`
	Total    decimal.Decimal `json:"total"`
}

// CategoryTotalsResult holds per-category totals across both transaction
// types, sorted descending, truncated to the top 5.
type CategoryTotalsResult struct {
	Categories []CategoryTotal `json:"categories"`
}

// SummaryResult is the one-call dashboard payload.
type SummaryResult struct {
	Daily      DailyBucketsResult   `json:"daily"`
	Monthly    MonthlyBucketsResult `json:"monthly"`
	Annual     AnnualBucketsResult  `json:"annual"`
	CashFlow   CashFlowResult       `json:"cashFlow"`
	Categories CategoryTotalsResult `json:"categories"`
}
