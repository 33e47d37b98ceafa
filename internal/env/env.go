package env

import (
	"fmt"
	"os"
	"path/filepath"
)

// HistoryDBEnv overrides the history database location
const HistoryDBEnv = "QRFORGE_HISTORY_DB"

// HistoryDBPath returns the path of the history database, honoring the
// QRFORGE_HISTORY_DB override
func HistoryDBPath() (string, error) {
	if p := os.Getenv(HistoryDBEnv); p != "" {
		return p, nil
	}

	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("could not determine config directory: %w", err)
	}

	return filepath.Join(dir, "qrforge", "history.db"), nil
}
