package config

import (
	"fmt"
	"os"
)

const (
	BackendMemory = "memory"
	BackendSQLite = "sqlite"
)

type Config struct {
	Port         string
	LogLevel     string
	LogFormat    string
	DataBackend  string
	SQLiteDBPath string
}

func New() *Config {
	return &Config{
		Port:         getEnv("PORT", "8080"),
		LogLevel:     getEnv("LOGLEVEL", "info"),
		LogFormat:    getEnv("LOGFORMAT", "text"),
		DataBackend:  getEnv("DATA_BACKEND", BackendMemory),
		SQLiteDBPath: getEnv("SQLITE_DB_PATH", "./data/fintrack.db"),
	}
}

// Validate rejects combinations the server cannot start with.
func (c *Config) Validate() error {
	switch c.DataBackend {
	case BackendMemory:
	case BackendSQLite:
		if c.SQLiteDBPath == "" {
			return fmt.Errorf("SQLITE_DB_PATH cannot be empty when DATA_BACKEND is %q", BackendSQLite)
		}
	default:
		return fmt.Errorf("invalid data backend %q: must be %q or %q", c.DataBackend, BackendMemory, BackendSQLite)
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
