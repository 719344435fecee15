package handlers

import (
	"log/slog"

	"github.com/fintrackhq/fintrack-backend/internal/response"
)

type Deps struct {
	Log             *slog.Logger
	ResponseHandler response.ResponseHandler
	AuthSvc         AuthService
	LedgerSvc       LedgerService
	AnalyticsSvc    AnalyticsService
	BudgetSvc       BudgetService
}
