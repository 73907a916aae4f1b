package config

import (
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

// Config carries the process-level settings: where state lives and where
// the log goes. Values come from the environment (optionally a .env
// file), with per-user defaults when unset. Flags override both.
type Config struct {
	DataPath string `env:"STILLDAY_DATA"`
	LogPath  string `env:"STILLDAY_LOG"`
}

// Load reads the environment and fills in defaults. It never fails: a
// missing .env file or unparsable environment degrades to defaults.
func Load() Config {
	_ = godotenv.Load()

	var cfg Config
	_ = env.Parse(&cfg)

	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	if cfg.DataPath == "" {
		cfg.DataPath = filepath.Join(home, ".local", "share", "stillday", "stillday.db")
	}
	if cfg.LogPath == "" {
		cfg.LogPath = filepath.Join(home, ".local", "state", "stillday", "stillday.log")
	}

	return cfg
}
