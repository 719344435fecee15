package services

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/fintrackhq/fintrack-backend/internal/models"
)

func mkTx(typ models.TransactionType, category, amount, date string) models.Transaction {
	return models.Transaction{
		Type: typ, Category: category,
		Amount: decimal.RequireFromString(amount), Date: date,
	}
}

func sumSeries(series []decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, v := range series {
		total = total.Add(v)
	}
	return total
}

func TestDailyBucketsConservation(t *testing.T) {
	ledger := []models.Transaction{
		mkTx(models.TypeIncome, "Salary", "1000", "2024-01-15"),
		mkTx(models.TypeIncome, "Freelance", "150.25", "2024-02-03"),
		mkTx(models.TypeExpense, "Food", "200", "2024-01-20"),
		mkTx(models.TypeExpense, "Housing", "800", "2023-12-01"),
	}

	got := DailyBuckets(ledger)
	if len(got.Labels) != 7 || len(got.Income) != 7 || len(got.Expense) != 7 {
		t.Fatalf("expected 7 weekday buckets, got %d/%d/%d", len(got.Labels), len(got.Income), len(got.Expense))
	}
	if !sumSeries(got.Income).Equal(decimal.RequireFromString("1150.25")) {
		t.Fatalf("income not conserved: %s", sumSeries(got.Income))
	}
	if !sumSeries(got.Expense).Equal(decimal.RequireFromString("1000")) {
		t.Fatalf("expense not conserved: %s", sumSeries(got.Expense))
	}
}

func TestDailyBucketsMergeAcrossWeeks(t *testing.T) {
	// 2024-01-01 and 2024-01-08 are both Mondays, a week apart.
	ledger := []models.Transaction{
		mkTx(models.TypeExpense, "Food", "10", "2024-01-01"),
		mkTx(models.TypeExpense, "Food", "20", "2024-01-08"),
	}

	got := DailyBuckets(ledger)
	monday := 1
	if !got.Expense[monday].Equal(decimal.RequireFromString("30")) {
		t.Fatalf("Monday bucket = %s, want 30", got.Expense[monday])
	}
}

func TestMonthlyBucketsJanuary(t *testing.T) {
	ledger := []models.Transaction{
		mkTx(models.TypeIncome, "Salary", "1000", "2024-01-15"),
		mkTx(models.TypeExpense, "Food", "200", "2024-01-20"),
	}

	got := MonthlyBuckets(ledger)
	if len(got.Labels) != 12 {
		t.Fatalf("expected 12 month buckets, got %d", len(got.Labels))
	}
	if got.Labels[0] != "Jan" {
		t.Fatalf("first label = %q, want Jan", got.Labels[0])
	}
	if !got.Income[0].Equal(decimal.RequireFromString("1000")) {
		t.Fatalf("January income = %s, want 1000", got.Income[0])
	}
	if !got.Expense[0].Equal(decimal.RequireFromString("200")) {
		t.Fatalf("January expense = %s, want 200", got.Expense[0])
	}
	for i := 1; i < 12; i++ {
		if !got.Income[i].IsZero() || !got.Expense[i].IsZero() {
			t.Fatalf("month %d should be zero, got income %s expense %s", i, got.Income[i], got.Expense[i])
		}
	}
}

func TestMonthlyBucketsMergeAcrossYears(t *testing.T) {
	ledger := []models.Transaction{
		mkTx(models.TypeExpense, "Food", "100", "2023-03-10"),
		mkTx(models.TypeExpense, "Food", "50", "2024-03-25"),
	}

	got := MonthlyBuckets(ledger)
	march := 2
	if !got.Expense[march].Equal(decimal.RequireFromString("150")) {
		t.Fatalf("March bucket = %s, want 150", got.Expense[march])
	}
}

func TestAnnualBucketsSortedAscending(t *testing.T) {
	ledger := []models.Transaction{
		mkTx(models.TypeIncome, "Salary", "500", "2025-06-01"),
		mkTx(models.TypeExpense, "Food", "100", "2023-06-01"),
		mkTx(models.TypeIncome, "Salary", "400", "2024-06-01"),
		mkTx(models.TypeExpense, "Food", "60", "2023-07-01"),
	}

	got := AnnualBuckets(ledger)
	if len(got.Buckets) != 3 {
		t.Fatalf("expected 3 year buckets, got %d", len(got.Buckets))
	}
	wantYears := []string{"2023", "2024", "2025"}
	for i, b := range got.Buckets {
		if b.Year != wantYears[i] {
			t.Fatalf("bucket %d year = %q, want %q", i, b.Year, wantYears[i])
		}
	}
	if !got.Buckets[0].Expense.Equal(decimal.RequireFromString("160")) {
		t.Fatalf("2023 expense = %s, want 160", got.Buckets[0].Expense)
	}
	if !got.Buckets[1].Income.Equal(decimal.RequireFromString("400")) {
		t.Fatalf("2024 income = %s, want 400", got.Buckets[1].Income)
	}
}

func TestCashFlowSignedSeries(t *testing.T) {
	ledger := []models.Transaction{
		mkTx(models.TypeIncome, "Salary", "1000", "2024-01-15"),
		mkTx(models.TypeExpense, "Food", "200", "2024-01-20"),
		mkTx(models.TypeExpense, "Housing", "800", "2024-02-01"),
	}

	got := CashFlow(ledger)
	if len(got.Series) != 12 {
		t.Fatalf("expected 12-month series, got %d", len(got.Series))
	}
	if !got.Series[0].Equal(decimal.RequireFromString("800")) {
		t.Fatalf("January net = %s, want 800", got.Series[0])
	}
	if !got.Series[1].Equal(decimal.RequireFromString("-800")) {
		t.Fatalf("February net = %s, want -800", got.Series[1])
	}
}

func TestCategoryTotals(t *testing.T) {
	ledger := []models.Transaction{
		mkTx(models.TypeIncome, "Salary", "1000", "2024-01-15"),
		mkTx(models.TypeExpense, "Food", "200", "2024-01-20"),
		mkTx(models.TypeExpense, "Food", "50", "2024-02-02"),
		mkTx(models.TypeExpense, "Housing", "800", "2024-02-05"),
	}

	got := CategoryTotals(ledger)
	if len(got.Categories) != 3 {
		t.Fatalf("expected 3 categories, got %d", len(got.Categories))
	}
	if got.Categories[0].Category != "Salary" || !got.Categories[0].Total.Equal(decimal.RequireFromString("1000")) {
		t.Fatalf("top category = %+v, want Salary 1000", got.Categories[0])
	}
	if got.Categories[1].Category != "Housing" {
		t.Fatalf("second category = %q, want Housing", got.Categories[1].Category)
	}
	if got.Categories[2].Category != "Food" || !got.Categories[2].Total.Equal(decimal.RequireFromString("250")) {
		t.Fatalf("third category = %+v, want Food 250", got.Categories[2])
	}
}

func TestCategoryTotalsTopFive(t *testing.T) {
	ledger := []models.Transaction{
		mkTx(models.TypeExpense, "Housing", "700", "2024-01-01"),
		mkTx(models.TypeExpense, "Food", "600", "2024-01-01"),
		mkTx(models.TypeExpense, "Transportation", "500", "2024-01-01"),
		mkTx(models.TypeExpense, "Utilities", "400", "2024-01-01"),
		mkTx(models.TypeExpense, "Insurance", "300", "2024-01-01"),
		mkTx(models.TypeExpense, "Healthcare", "200", "2024-01-01"),
		mkTx(models.TypeExpense, "Entertainment", "100", "2024-01-01"),
	}

	got := CategoryTotals(ledger)
	if len(got.Categories) != 5 {
		t.Fatalf("expected top 5, got %d", len(got.Categories))
	}
	for _, c := range got.Categories {
		if c.Category == "Healthcare" || c.Category == "Entertainment" {
			t.Fatalf("category %q should have been cut from the top 5", c.Category)
		}
	}
}

func TestAggregationsSkipUnparseableDates(t *testing.T) {
	ledger := []models.Transaction{
		mkTx(models.TypeIncome, "Salary", "1000", "2024-01-15"),
		mkTx(models.TypeIncome, "Salary", "999", "not-a-date"),
	}

	got := MonthlyBuckets(ledger)
	if !sumSeries(got.Income).Equal(decimal.RequireFromString("1000")) {
		t.Fatalf("unparseable entry leaked into buckets: total %s", sumSeries(got.Income))
	}
}

func TestEmptyLedgerShapes(t *testing.T) {
	daily := DailyBuckets(nil)
	if len(daily.Income) != 7 || !sumSeries(daily.Income).IsZero() {
		t.Fatalf("daily shape wrong for empty ledger: %+v", daily)
	}
	monthly := MonthlyBuckets(nil)
	if len(monthly.Expense) != 12 || !sumSeries(monthly.Expense).IsZero() {
		t.Fatalf("monthly shape wrong for empty ledger: %+v", monthly)
	}
	annual := AnnualBuckets(nil)
	if len(annual.Buckets) != 0 {
		t.Fatalf("annual should be empty, got %d buckets", len(annual.Buckets))
	}
	flow := CashFlow(nil)
	if len(flow.Series) != 12 || !sumSeries(flow.Series).IsZero() {
		t.Fatalf("cash flow shape wrong for empty ledger: %+v", flow)
	}
	categories := CategoryTotals(nil)
	if len(categories.Categories) != 0 {
		t.Fatalf("categories should be empty, got %d", len(categories.Categories))
	}
}
