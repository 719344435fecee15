package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/fintrackhq/fintrack-backend/internal/dto"
	"github.com/fintrackhq/fintrack-backend/internal/middleware"
	"github.com/fintrackhq/fintrack-backend/internal/response"
)

type AnalyticsService interface {
	GetDailyBuckets(ctx context.Context, email string) (dto.DailyBucketsResult, error)
	GetMonthlyBuckets(ctx context.Context, email string) (dto.MonthlyBucketsResult, error)
	GetAnnualBuckets(ctx context.Context, email string) (dto.AnnualBucketsResult, error)
	GetCashFlow(ctx context.Context, email string) (dto.CashFlowResult, error)
	GetCategoryTotals(ctx context.Context, email string) (dto.CategoryTotalsResult, error)
	GetSummary(ctx context.Context, email string) (dto.SummaryResult, error)
}

type analyticsHandlers struct {
	ResponseHandler response.ResponseHandler
	AnalyticsSvc    AnalyticsService
}

func NewAnalyticsHandlers(deps *Deps) *analyticsHandlers {
	return &analyticsHandlers{
		ResponseHandler: deps.ResponseHandler,
		AnalyticsSvc:    deps.AnalyticsSvc,
	}
}

func (h *analyticsHandlers) AnalyticsRoutes() chi.Router {
	r := chi.NewRouter()
	r.Get("/daily", h.GetDaily)
	r.Get("/monthly", h.GetMonthly)
	r.Get("/annual", h.GetAnnual)
	r.Get("/cashflow", h.GetCashFlow)
	r.Get("/categories", h.GetCategories)
	r.Get("/summary", h.GetSummary)
	return r
}

func (h *analyticsHandlers) GetDaily(w http.ResponseWriter, r *http.Request) {
	email := middleware.Email(r.Context())
	result, err := h.AnalyticsSvc.GetDailyBuckets(r.Context(), email)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, result)
}

func (h *analyticsHandlers) GetMonthly(w http.ResponseWriter, r *http.Request) {
	email := middleware.Email(r.Context())
	result, err := h.AnalyticsSvc.GetMonthlyBuckets(r.Context(), email)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, result)
}

func (h *analyticsHandlers) GetAnnual(w http.ResponseWriter, r *http.Request) {
	email := middleware.Email(r.Context())
	result, err := h.AnalyticsSvc.GetAnnualBuckets(r.Context(), email)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, result)
}

func (h *analyticsHandlers) GetCashFlow(w http.ResponseWriter, r *http.Request) {
	email := middleware.Email(r.Context())
	result, err := h.AnalyticsSvc.GetCashFlow(r.Context(), email)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, result)
}

func (h *analyticsHandlers) GetCategories(w http.ResponseWriter, r *http.Request) {
	email := middleware.Email(r.Context())
	result, err := h.AnalyticsSvc.GetCategoryTotals(r.Context(), email)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, result)
}

func (h *analyticsHandlers) GetSummary(w http.ResponseWriter, r *http.Request) {
	email := middleware.Email(r.Context())
	result, err := h.AnalyticsSvc.GetSummary(r.Context(), email)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, result)
}
