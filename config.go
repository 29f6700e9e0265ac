package main

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config is the optional wolf.toml configuration read by the CLI.
type Config struct {
	HistoryFile string `toml:"history_file"`
	Color       bool   `toml:"color"`
}

// DefaultConfig returns the settings used when no config file exists.
func DefaultConfig() Config {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return Config{
		HistoryFile: filepath.Join(home, ".wolf_history"),
		Color:       true,
	}
}

// LoadConfig reads a toml file over the defaults. A missing file is
// not an error; a malformed one is.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		path = "wolf.toml"
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}
