package config

import (
	"os"
	"path/filepath"
)

const (
	DefaultConfigDir   = ".privameter"
	DefaultRulesDir    = "rules"
	DefaultLogFile     = "audit.jsonl"
	DefaultSessionFile = "sessions.db"
)

// Store backends for session history.
const (
	StoreMemory = "memory"
	StoreSQLite = "sqlite"
)

type Config struct {
	ConfigDir   string
	RulesDir    string
	LogPath     string
	SessionPath string
	Engine      EngineConfig
}

// EngineConfig controls batch processing.
type EngineConfig struct {
	// Workers bounds concurrent per-artifact assessments in a batch.
	Workers int
	// StoreBackend selects the session store: "memory" or "sqlite".
	StoreBackend string
}

// DefaultEngineConfig returns the default engine configuration.
func DefaultEngineConfig() EngineConfig {
	return EngineConfig{
		Workers:      4,
		StoreBackend: StoreMemory,
	}
}

func Load(rulesDir, logPath string) (*Config, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}

	configDir := filepath.Join(homeDir, DefaultConfigDir)

	if err := ensureDir(configDir); err != nil {
		return nil, err
	}

	cfg := &Config{
		ConfigDir:   configDir,
		SessionPath: filepath.Join(configDir, DefaultSessionFile),
		Engine:      DefaultEngineConfig(),
	}

	if rulesDir != "" {
		cfg.RulesDir = rulesDir
	} else {
		cfg.RulesDir = filepath.Join(configDir, DefaultRulesDir)
	}

	if logPath != "" {
		cfg.LogPath = logPath
	} else {
		cfg.LogPath = filepath.Join(configDir, DefaultLogFile)
	}

	return cfg, nil
}

func ensureDir(path string) error {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return os.MkdirAll(path, 0700)
	}
	return nil
}
