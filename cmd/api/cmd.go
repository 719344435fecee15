package main

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"github.com/fintrackhq/fintrack-backend/internal/bootstrap"
	"github.com/fintrackhq/fintrack-backend/internal/config"
	"github.com/fintrackhq/fintrack-backend/internal/handlers"
	"github.com/fintrackhq/fintrack-backend/internal/response"
	"github.com/fintrackhq/fintrack-backend/internal/router"
	"github.com/fintrackhq/fintrack-backend/internal/services"
)

func exitOnError(message string, err error, log *slog.Logger) {
	if err != nil {
		log.Error(message, "error", err)
		os.Exit(1)
	}
}

func main() {
	// .env is optional; real deployments set the environment directly
	_ = godotenv.Load()

	// bootstrap
	cfg := config.New()
	bs, err := bootstrap.Run(cfg)
	exitOnError("bootstrap failed", err, bs.Log)
	defer bs.Close()

	// services
	auserv := services.NewAuthService(bs.Store, bs.Store)
	ledserv := services.NewLedgerService(bs.Store)
	anserv := services.NewAnalyticsService(bs.Store)
	buserv := services.NewBudgetService(bs.Store, bs.Store)

	// response handler
	rh := response.New(bs.Log)

	// dependancies
	deps := new(handlers.Deps)
	deps.Log = bs.Log
	deps.ResponseHandler = rh
	deps.AuthSvc = auserv
	deps.LedgerSvc = ledserv
	deps.AnalyticsSvc = anserv
	deps.BudgetSvc = buserv

	// router
	r := router.NewRouter(deps)
	bs.Log.Info("listening", "port", cfg.Port)
	err = http.ListenAndServe(":"+cfg.Port, r)
	exitOnError("server start failed", err, bs.Log)
}
