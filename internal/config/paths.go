package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const (
	homeEnv        = "MONEYWISE_HOME"
	configFileName = "config.yaml"
	logFileName    = "moneywise.log"
)

// DataDir is where config, ledger and logs live: $MONEYWISE_HOME, else ~/.moneywise.
func DataDir() (string, error) {
	// 1) env override
	if env := strings.TrimSpace(os.Getenv(homeEnv)); env != "" {
		return env, nil
	}
	// 2) home
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("home: %w", err)
	}
	return filepath.Join(home, ".moneywise"), nil
}

// EnsureDir creates dir with 0700 if missing.
func EnsureDir(dir string) error {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return fmt.Errorf("mkdir: %w", err)
	}
	return nil
}

// LogPath is the log file inside the data dir.
func (c *Config) LogPath() string { return filepath.Join(c.DataDir, logFileName) }

// LedgerPath is the expense file used by the file backend.
func (c *Config) LedgerPath() string {
	if filepath.IsAbs(c.Storage.File) {
		return c.Storage.File
	}
	return filepath.Join(c.DataDir, c.Storage.File)
}
