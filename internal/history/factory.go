package history

import (
	"fmt"
	"os"
	"path/filepath"

	"wfind/internal/config"
)

// NewStoreFromConfig creates a Store implementation based on the history config type.
func NewStoreFromConfig(cfg config.HistoryConfig, hostID string) (Store, error) {
	switch cfg.Type {
	case "sqlite":
		if cfg.DataDir == "" {
			return nil, fmt.Errorf("data_dir required for sqlite history")
		}
		if err := os.MkdirAll(cfg.DataDir, 0755); err != nil {
			return nil, fmt.Errorf("creating history data dir: %w", err)
		}
		dbPath := filepath.Join(cfg.DataDir, hostID+".db")
		return NewSQLiteStore(dbPath, hostID, nil)
	case "memory":
		return NewSQLiteStore(":memory:", hostID, nil)
	default:
		return nil, fmt.Errorf("unknown history type: %s", cfg.Type)
	}
}
