package services

import (
	"context"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/fintrackhq/fintrack-backend/internal/dto"
	"github.com/fintrackhq/fintrack-backend/internal/errs"
	"github.com/fintrackhq/fintrack-backend/internal/models"
	"github.com/fintrackhq/fintrack-backend/pkg/logger"
)

type ledgerStore interface {
	Append(ctx context.Context, email string, tx *models.Transaction) error
	Remove(ctx context.Context, email string, id int64) error
	ListAll(ctx context.Context, email string) ([]models.Transaction, error)
	LastID(ctx context.Context, email string) (int64, error)
}

type ledgerService struct {
	store ledgerStore
	now   func() time.Time
}

func NewLedgerService(store ledgerStore) *ledgerService {
	return &ledgerService{store: store, now: time.Now}
}

// Append validates the entry-form fields, assigns a creation-timestamp
// id, and appends the transaction to the end of the account's ledger.
func (s *ledgerService) Append(ctx context.Context, email string, req dto.CreateTransactionRequest) (*models.Transaction, error) {
	log := logger.FromContext(ctx)

	txType := models.TransactionType(req.Type)
	if !txType.Valid() {
		return nil, errs.NewValidationError("type must be income or expense")
	}
	if req.Category == "" {
		return nil, errs.NewValidationError("category is required")
	}
	if !models.ValidCategory(txType, req.Category) {
		return nil, errs.NewValidationError("unknown " + req.Type + " category: " + req.Category)
	}
	if req.Amount == "" {
		return nil, errs.NewValidationError("amount is required")
	}
	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		return nil, errs.NewValidationError("amount must be a decimal number")
	}
	if amount.IsNegative() {
		return nil, errs.NewValidationError("amount must not be negative")
	}
	if req.Date == "" {
		return nil, errs.NewValidationError("date is required")
	}
	if _, err := time.Parse(models.DateLayout, req.Date); err != nil {
		return nil, errs.NewValidationError("date must be formatted as YYYY-MM-DD")
	}

	id, err := s.nextID(ctx, email)
	if err != nil {
		return nil, err
	}

	tx := &models.Transaction{
		ID:          id,
		Type:        txType,
		Category:    req.Category,
		Amount:      amount,
		Date:        req.Date,
		Description: req.Description,
		CreatedAt:   s.now(),
	}
	if err := s.store.Append(ctx, email, tx); err != nil {
		return nil, err
	}

	log.Info("transaction appended", "id", tx.ID, "type", tx.Type, "category", tx.Category)
	return tx, nil
}

// Remove deletes the first transaction with a matching id.
func (s *ledgerService) Remove(ctx context.Context, email string, id int64) error {
	if err := s.store.Remove(ctx, email, id); err != nil {
		return err
	}
	logger.FromContext(ctx).Info("transaction removed", "id", id)
	return nil
}

// ListAll returns the full ledger in insertion order.
func (s *ledgerService) ListAll(ctx context.Context, email string) ([]models.Transaction, error) {
	return s.store.ListAll(ctx, email)
}

// ListView returns the ledger through the table view's filter and sort.
// The result is a derived copy; the stored ledger order never changes.
func (s *ledgerService) ListView(ctx context.Context, email string, q dto.TransactionListQuery) ([]models.Transaction, error) {
	if err := validateListQuery(q); err != nil {
		return nil, err
	}
	ledger, err := s.store.ListAll(ctx, email)
	if err != nil {
		return nil, err
	}
	return FilterSort(ledger, q), nil
}

// FilterSort applies the type filter and the chosen sort to a copy of
// the collection. Equal keys keep their relative insertion order.
func FilterSort(ledger []models.Transaction, q dto.TransactionListQuery) []models.Transaction {
	out := make([]models.Transaction, 0, len(ledger))
	for _, tx := range ledger {
		if q.Filter == dto.FilterAll || q.Filter == "" || string(tx.Type) == q.Filter {
			out = append(out, tx)
		}
	}

	asc := q.Order != dto.OrderDesc
	switch q.SortBy {
	case dto.SortByAmount:
		sort.SliceStable(out, func(i, j int) bool {
			if asc {
				return out[i].Amount.LessThan(out[j].Amount)
			}
			return out[j].Amount.LessThan(out[i].Amount)
		})
	default: // date
		sort.SliceStable(out, func(i, j int) bool {
			if asc {
				return out[i].Date < out[j].Date
			}
			return out[j].Date < out[i].Date
		})
	}
	return out
}

func validateListQuery(q dto.TransactionListQuery) error {
	switch q.Filter {
	case "", dto.FilterAll, dto.FilterIncome, dto.FilterExpense:
	default:
		return errs.NewValidationError("filter must be all, income or expense")
	}
	switch q.SortBy {
	case "", dto.SortByDate, dto.SortByAmount:
	default:
		return errs.NewValidationError("sortBy must be date or amount")
	}
	switch q.Order {
	case "", dto.OrderAsc, dto.OrderDesc:
	default:
		return errs.NewValidationError("order must be asc or desc")
	}
	return nil
}

// nextID derives a new id from the current time in milliseconds, bumped
// past the last issued id so ids stay unique and monotonic even when two
// appends land in the same millisecond.
func (s *ledgerService) nextID(ctx context.Context, email string) (int64, error) {
	last, err := s.store.LastID(ctx, email)
	if err != nil {
		return 0, err
	}
	id := s.now().UnixMilli()
	if id <= last {
		id = last + 1
	}
	return id, nil
}
