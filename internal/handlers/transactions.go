package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/fintrackhq/fintrack-backend/internal/dto"
	"github.com/fintrackhq/fintrack-backend/internal/errs"
	"github.com/fintrackhq/fintrack-backend/internal/middleware"
	"github.com/fintrackhq/fintrack-backend/internal/models"
	"github.com/fintrackhq/fintrack-backend/internal/response"
)

type LedgerService interface {
	Append(ctx context.Context, email string, req dto.CreateTransactionRequest) (*models.Transaction, error)
	Remove(ctx context.Context, email string, id int64) error
	ListView(ctx context.Context, email string, q dto.TransactionListQuery) ([]models.Transaction, error)
}

type transactionHandlers struct {
	ResponseHandler response.ResponseHandler
	LedgerSvc       LedgerService
}

func NewTransactionHandlers(deps *Deps) *transactionHandlers {
	return &transactionHandlers{
		ResponseHandler: deps.ResponseHandler,
		LedgerSvc:       deps.LedgerSvc,
	}
}

func (h *transactionHandlers) TransactionRoutes() chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.ListTransactions)
	r.Post("/", h.CreateTransaction)
	r.Delete("/{transactionId}", h.DeleteTransaction)
	r.Get("/categories", h.GetCategories)
	return r
}

func (h *transactionHandlers) ListTransactions(w http.ResponseWriter, r *http.Request) {
	email := middleware.Email(r.Context())
	q := dto.TransactionListQuery{
		Filter: r.URL.Query().Get("filter"),
		SortBy: r.URL.Query().Get("sortBy"),
		Order:  r.URL.Query().Get("order"),
	}
	txs, err := h.LedgerSvc.ListView(r.Context(), email, q)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, txs)
}

func (h *transactionHandlers) CreateTransaction(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateTransactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.ResponseHandler.HandleError(w, r, errs.NewValidationError("invalid request body"))
		return
	}
	email := middleware.Email(r.Context())
	tx, err := h.LedgerSvc.Append(r.Context(), email, req)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusCreated, tx)
}

func (h *transactionHandlers) DeleteTransaction(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "transactionId"), 10, 64)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, errs.NewValidationError("transaction id must be an integer"))
		return
	}
	email := middleware.Email(r.Context())
	if err := h.LedgerSvc.Remove(r.Context(), email, id); err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, nil)
}

// GetCategories returns the fixed category lists the entry form offers.
func (h *transactionHandlers) GetCategories(w http.ResponseWriter, r *http.Request) {
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, map[string][]string{
		"income":  models.IncomeCategories,
		"expense": models.ExpenseCategories,
	})
}
