package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds the CLI configuration read from the environment.
type Config struct {
	// DBPath is the SQLite database file. Empty means DefaultDBPath.
	DBPath string `env:"QUIZCRAFT_DB"`

	// LogLevel is a zerolog level name (trace, debug, info, warn, error).
	LogLevel string `env:"QUIZCRAFT_LOG_LEVEL" envDefault:"info"`

	// LogFormat is "json" or "pretty".
	LogFormat string `env:"QUIZCRAFT_LOG_FORMAT" envDefault:"pretty"`
}

// Load reads a .env file from the working directory if present, then parses
// the environment into a Config.
func Load() (*Config, error) {
	_ = godotenv.Load() // .env is optional

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return &cfg, nil
}

// ResolveDBPath returns the database path in priority order:
// 1. override (the --db flag)
// 2. c.DBPath (QUIZCRAFT_DB)
// 3. DefaultDBPath
// The parent directory is created if missing.
func (c *Config) ResolveDBPath(override string) (string, error) {
	if override != "" {
		return override, EnsureDir(override)
	}
	if c.DBPath != "" {
		return c.DBPath, EnsureDir(c.DBPath)
	}
	return DefaultDBPath()
}

// DefaultDBPath resolves $XDG_DATA_HOME/quizcraft/quizcraft.db, falling back
// to ~/.local/share/quizcraft/quizcraft.db.
func DefaultDBPath() (string, error) {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		dataHome = filepath.Join(home, ".local", "share")
	}

	p := filepath.Join(dataHome, "quizcraft", "quizcraft.db")
	return p, EnsureDir(p)
}

// EnsureDir creates the parent directory of path if it doesn't exist.
func EnsureDir(path string) error {
	return os.MkdirAll(filepath.Dir(path), 0o755)
}
