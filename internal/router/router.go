package router

import (
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/fintrackhq/fintrack-backend/internal/handlers"
	"github.com/fintrackhq/fintrack-backend/internal/middleware"
)

func NewRouter(deps *handlers.Deps) chi.Router {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.Recoverer)

	lm := middleware.NewLoggerMiddleware(deps.Log)
	r.Use(lm.LoggerMiddleware)

	mw := middleware.NewMiddleware(deps.AuthSvc)

	ah := handlers.NewAuthHandlers(deps, mw)
	th := handlers.NewTransactionHandlers(deps)
	anh := handlers.NewAnalyticsHandlers(deps)
	bh := handlers.NewBudgetHandlers(deps)

	r.Mount("/auth", ah.AuthRoutes())

	r.Group(func(r chi.Router) {
		r.Use(mw.SessionAuth)
		r.Mount("/transactions", th.TransactionRoutes())
		r.Mount("/analytics", anh.AnalyticsRoutes())
		r.Mount("/budgets", bh.BudgetRoutes())
	})

	return r
}
