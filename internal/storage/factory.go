package storage

import (
	"fmt"
	"log/slog"

	"logisystem/internal/config"
)

// New creates the snapshot backend selected by the configuration.
func New(cfg *config.Config, logger *slog.Logger) (Backend, error) {
	if logger == nil {
		logger = slog.Default()
	}

	switch cfg.DataBackend {
	case "file":
		backend, err := NewFileBackend(cfg.DataDir)
		if err != nil {
			return nil, fmt.Errorf("initialize file backend: %w", err)
		}
		logger.Info("Initialized file backend", "data_dir", cfg.DataDir)
		return backend, nil

	case "sqlite":
		backend, err := NewSQLiteBackend(cfg.SQLiteDBPath)
		if err != nil {
			return nil, fmt.Errorf("initialize sqlite backend: %w", err)
		}
		logger.Info("Initialized SQLite backend", "db_path", cfg.SQLiteDBPath)
		return backend, nil

	case "memory":
		logger.Info("Initialized memory backend")
		return NewMemoryBackend(), nil

	default:
		return nil, fmt.Errorf("unsupported data backend: %s", cfg.DataBackend)
	}
}
