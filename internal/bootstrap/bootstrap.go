package bootstrap

import (
	"fmt"
	"log/slog"

	"github.com/fintrackhq/fintrack-backend/internal/config"
	"github.com/fintrackhq/fintrack-backend/internal/store"
	"github.com/fintrackhq/fintrack-backend/internal/store/memory"
	"github.com/fintrackhq/fintrack-backend/internal/store/sqlite"
	"github.com/fintrackhq/fintrack-backend/pkg/logger"
)

type Bootstrap struct {
	Log   *slog.Logger
	Store store.Backend
}

func Run(cfg *config.Config) (*Bootstrap, error) {
	bs := new(Bootstrap)
	bs.Log = logger.New(cfg.LogLevel, cfg.LogFormat)

	if err := cfg.Validate(); err != nil {
		return bs, err
	}

	backend, err := openStore(cfg)
	if err != nil {
		return bs, err
	}
	bs.Store = backend

	bs.Log.Info("storage backend ready", "backend", cfg.DataBackend)
	return bs, nil
}

func (bs *Bootstrap) Close() {
	if bs.Store != nil {
		if err := bs.Store.Close(); err != nil {
			bs.Log.Error("failed to close store", "error", err)
		}
	}
}

func openStore(cfg *config.Config) (store.Backend, error) {
	switch cfg.DataBackend {
	case config.BackendSQLite:
		return sqlite.New(cfg.SQLiteDBPath)
	case config.BackendMemory:
		return memory.New(), nil
	default:
		return nil, fmt.Errorf("unsupported data backend: %s", cfg.DataBackend)
	}
}
