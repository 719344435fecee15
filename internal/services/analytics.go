package services

import (
	"context"
	"sort"
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"github.com/fintrackhq/fintrack-backend/internal/dto"
	"github.com/fintrackhq/fintrack-backend/internal/models"
)

var (
	weekdayLabels = []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}
	monthLabels   = []string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}
)

type analyticsLedgerStore interface {
	ListAll(ctx context.Context, email string) ([]models.Transaction, error)
}

type analyticsService struct {
	txs analyticsLedgerStore
}

func NewAnalyticsService(txs analyticsLedgerStore) *analyticsService {
	return &analyticsService{txs: txs}
}

func (s *analyticsService) GetDailyBuckets(ctx context.Context, email string) (dto.DailyBucketsResult, error) {
	ledger, err := s.txs.ListAll(ctx, email)
	if err != nil {
		return dto.DailyBucketsResult{}, err
	}
	return DailyBuckets(ledger), nil
}

func (s *analyticsService) GetMonthlyBuckets(ctx context.Context, email string) (dto.MonthlyBucketsResult, error) {
	ledger, err := s.txs.ListAll(ctx, email)
	if err != nil {
		return dto.MonthlyBucketsResult{}, err
	}
	return MonthlyBuckets(ledger), nil
}

func (s *analyticsService) GetAnnualBuckets(ctx context.Context, email string) (dto.AnnualBucketsResult, error) {
	ledger, err := s.txs.ListAll(ctx, email)
	if err != nil {
		return dto.AnnualBucketsResult{}, err
	}
	return AnnualBuckets(ledger), nil
}

func (s *analyticsService) GetCashFlow(ctx context.Context, email string) (dto.CashFlowResult, error) {
	ledger, err := s.txs.ListAll(ctx, email)
	if err != nil {
		return dto.CashFlowResult{}, err
	}
	return CashFlow(ledger), nil
}

func (s *analyticsService) GetCategoryTotals(ctx context.Context, email string) (dto.CategoryTotalsResult, error) {
	ledger, err := s.txs.ListAll(ctx, email)
	if err != nil {
		return dto.CategoryTotalsResult{}, err
	}
	return CategoryTotals(ledger), nil
}

// GetSummary recomputes every chart from the full ledger in one pass per
// chart; there is no caching or incremental update.
func (s *analyticsService) GetSummary(ctx context.Context, email string) (dto.SummaryResult, error) {
	ledger, err := s.txs.ListAll(ctx, email)
	if err != nil {
		return dto.SummaryResult{}, err
	}
	return dto.SummaryResult{
		Daily:      DailyBuckets(ledger),
		Monthly:    MonthlyBuckets(ledger),
		Annual:     AnnualBuckets(ledger),
		CashFlow:   CashFlow(ledger),
		Categories: CategoryTotals(ledger),
	}, nil
}

// --- Pure aggregation functions ---

// DailyBuckets sums amounts into 7 weekday buckets. Bucketing is by
// weekday-of-week, not absolute date: transactions from different weeks
// that share a weekday land in the same bucket.
func DailyBuckets(ledger []models.Transaction) dto.DailyBucketsResult {
	income := zeroSeries(7)
	expense := zeroSeries(7)

	forEachDated(ledger, func(tx *models.Transaction, date time.Time) {
		day := int(date.Weekday())
		if tx.Type == models.TypeIncome {
			income[day] = income[day].Add(tx.Amount)
		} else {
			expense[day] = expense[day].Add(tx.Amount)
		}
	})

	return dto.DailyBucketsResult{Labels: weekdayLabels, Income: income, Expense: expense}
}

// MonthlyBuckets sums amounts into 12 calendar-month buckets, merged
// across all years present in the collection.
func MonthlyBuckets(ledger []models.Transaction) dto.MonthlyBucketsResult {
	income := zeroSeries(12)
	expense := zeroSeries(12)

	forEachDated(ledger, func(tx *models.Transaction, date time.Time) {
		month := int(date.Month()) - 1
		if tx.Type == models.TypeIncome {
			income[month] = income[month].Add(tx.Amount)
		} else {
			expense[month] = expense[month].Add(tx.Amount)
		}
	})

	return dto.MonthlyBucketsResult{Labels: monthLabels, Income: income, Expense: expense}
}

// AnnualBuckets accumulates income and expense sums per 4-digit year,
// output sorted ascending by year string.
func AnnualBuckets(ledger []models.Transaction) dto.AnnualBucketsResult {
	type sums struct{ income, expense decimal.Decimal }
	years := map[string]*sums{}

	forEachDated(ledger, func(tx *models.Transaction, date time.Time) {
		year := strconv.Itoa(date.Year())
		b, ok := years[year]
		if !ok {
			b = &sums{}
			years[year] = b
		}
		if tx.Type == models.TypeIncome {
			b.income = b.income.Add(tx.Amount)
		} else {
			b.expense = b.expense.Add(tx.Amount)
		}
	})

	keys := make([]string, 0, len(years))
	for year := range years {
		keys = append(keys, year)
	}
	sort.Strings(keys)

	buckets := make([]dto.AnnualBucket, 0, len(keys))
	for _, year := range keys {
		buckets = append(buckets, dto.AnnualBucket{
			Year:    year,
			Income:  years[year].income,
			Expense: years[year].expense,
		})
	}
	return dto.AnnualBucketsResult{Buckets: buckets}
}

// CashFlow folds both transaction types into one signed 12-month series:
// income adds, expense subtracts.
func CashFlow(ledger []models.Transaction) dto.CashFlowResult {
	series := zeroSeries(12)

	forEachDated(ledger, func(tx *models.Transaction, date time.Time) {
		month := int(date.Month()) - 1
		if tx.Type == models.TypeIncome {
			series[month] = series[month].Add(tx.Amount)
		} else {
			series[month] = series[month].Sub(tx.Amount)
		}
	})

	return dto.CashFlowResult{Labels: monthLabels, Series: series}
}

// CategoryTotals sums amounts per category label regardless of type,
// sorted descending by total and truncated to the top 5.
func CategoryTotals(ledger []models.Transaction) dto.CategoryTotalsResult {
	totals := map[string]decimal.Decimal{}
	for i := range ledger {
		tx := &ledger[i]
		totals[tx.Category] = totals[tx.Category].Add(tx.Amount)
	}

	out := make([]dto.CategoryTotal, 0, len(totals))
	for category, total := range totals {
		out = append(out, dto.CategoryTotal{Category: category, Total: total})
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].Total.Equal(out[j].Total) {
			return out[j].Total.LessThan(out[i].Total)
		}
		return out[i].Category < out[j].Category
	})

	if len(out) > 5 {
		out = out[:5]
	}
	return dto.CategoryTotalsResult{Categories: out}
}

// forEachDated walks the collection, handing each transaction to fn with
// its parsed date. Entries with unparseable dates are skipped; the
// ledger validates dates on append, so these only exist if storage was
// edited out-of-band.
func forEachDated(ledger []models.Transaction, fn func(tx *models.Transaction, date time.Time)) {
	for i := range ledger {
		tx := &ledger[i]
		date, err := tx.ParseDate()
		if err != nil {
			continue
		}
		fn(tx, date)
	}
}

func zeroSeries(n int) []decimal.Decimal {
	out := make([]decimal.Decimal, n)
	for i := range out {
		out[i] = decimal.Zero
	}
	return out
}
