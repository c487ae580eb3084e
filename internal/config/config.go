package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultFileName is the conventional config file name.
const DefaultFileName = "trackexpenses.yaml"

// Config represents the top-level trackexpenses.yaml configuration. It is an
// explicit value passed into the registry and commands, never process-wide
// state.
type Config struct {
	// DataDir is where per-user storage documents live.
	DataDir string `yaml:"data_dir"`
	// FileSuffix is appended to the normalized user name to form the
	// document file name.
	FileSuffix string `yaml:"file_suffix"`
	// Categories are suggestions offered when recording expenses; reports
	// discover categories from the data, not from this list.
	Categories      []string `yaml:"categories"`
	DefaultCategory string   `yaml:"default_category"`
	LogLevel        string   `yaml:"log_level"`
}

// Default returns a Config with sensible defaults.
func Default() *Config {
	return &Config{
		DataDir:    "data",
		FileSuffix: "_transactions.json",
		Categories: []string{
			"Food", "Rent", "Utilities", "Transportation", "Entertainment",
			"Healthcare", "Shopping", "Education", "Travel", "General",
		},
		DefaultCategory: "General",
		LogLevel:        "info",
	}
}

// Load reads a trackexpenses.yaml file from disk.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Resolve loads the config file if present, falls back to defaults when it
// is not, and applies environment overrides on top either way.
func Resolve(path string) (*Config, error) {
	cfg, err := Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		cfg = Default()
	} else if err != nil {
		return nil, err
	}
	applyEnv(cfg)
	return cfg, nil
}

// applyEnv overrides config fields from TRACKEXPENSES_* environment
// variables (typically loaded from a .env file).
func applyEnv(cfg *Config) {
	cfg.DataDir = getEnv("TRACKEXPENSES_DATA_DIR", cfg.DataDir)
	cfg.FileSuffix = getEnv("TRACKEXPENSES_FILE_SUFFIX", cfg.FileSuffix)
	cfg.DefaultCategory = getEnv("TRACKEXPENSES_DEFAULT_CATEGORY", cfg.DefaultCategory)
	cfg.LogLevel = getEnv("TRACKEXPENSES_LOG_LEVEL", cfg.LogLevel)
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
