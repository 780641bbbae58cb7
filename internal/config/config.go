package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
)

// Environment variables that override file values.
const (
	EnvConfigPath    = "KBTEST_CONFIG_PATH"
	EnvLogLevel      = "KBTEST_LOG_LEVEL"
	EnvLogPath       = "KBTEST_LOG_PATH"
	EnvConfirmDelete = "KBTEST_CONFIRM_DELETE"
)

// Config holds application configuration.
type Config struct {
	ConfirmDelete         bool   `json:"confirmDelete"`
	LogLevel              string `json:"logLevel"`
	LogPath               string `json:"logPath"`   // empty discards logs
	LogFormat             string `json:"logFormat"` // "text" or "json"
	NewProjectDescription string `json:"newProjectDescription"`
	NewSuiteDescription   string `json:"newSuiteDescription"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		ConfirmDelete:         true,
		LogLevel:              "info",
		LogFormat:             "text",
		NewProjectDescription: "A new test project",
		NewSuiteDescription:   "A new test suite",
	}
}

// Load reads an optional .env file from the working directory, then the
// config file at path (or the resolved default when path is empty), and
// finally applies environment overrides.
func Load(path string) (*Config, error) {
	if err := LoadDotEnv(".env"); err != nil {
		return nil, err
	}

	if path == "" {
		resolved, err := ResolvePath()
		if err != nil {
			return nil, err
		}
		path = resolved
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		return nil, err
	}
	if err := ApplyEnv(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadDotEnv loads variables from the given files. Missing files are
// skipped and variables already set in the environment win.
func LoadDotEnv(files ...string) error {
	for _, f := range files {
		if err := godotenv.Load(f); err != nil {
			if errors.Is(err, os.ErrNotExist) {
				continue
			}
			return fmt.Errorf("load %s: %w", f, err)
		}
	}
	return nil
}

// ResolvePath returns $KBTEST_CONFIG_PATH or the default config path.
func ResolvePath() (string, error) {
	if p := os.Getenv(EnvConfigPath); p != "" {
		return p, nil
	}
	return DefaultConfigFilePath()
}

// LoadConfig reads config from the JSON file.
// Creates the file with defaults if it doesn't exist.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			config := DefaultConfig()
			// Non-fatal: defaults are still usable when the file can't be written
			_ = SaveConfig(path, &config)
			return &config, nil
		}
		return nil, err
	}

	config := DefaultConfig()
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("parse config file: %w", err)
	}

	// Apply defaults for blank fields
	defaults := DefaultConfig()
	if config.LogLevel == "" {
		config.LogLevel = defaults.LogLevel
	}
	if config.LogFormat == "" {
		config.LogFormat = defaults.LogFormat
	}
	if config.NewProjectDescription == "" {
		config.NewProjectDescription = defaults.NewProjectDescription
	}
	if config.NewSuiteDescription == "" {
		config.NewSuiteDescription = defaults.NewSuiteDescription
	}

	return &config, nil
}

// ApplyEnv overrides config values from the environment.
func ApplyEnv(cfg *Config) error {
	if level := os.Getenv(EnvLogLevel); level != "" {
		cfg.LogLevel = level
	}
	if path := os.Getenv(EnvLogPath); path != "" {
		cfg.LogPath = path
	}
	if v := os.Getenv(EnvConfirmDelete); v != "" {
		confirm, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid %s: %w", EnvConfirmDelete, err)
		}
		cfg.ConfirmDelete = confirm
	}
	return nil
}

// SaveConfig writes config to the JSON file.
// Creates the directory if it doesn't exist.
func SaveConfig(path string, config *Config) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// DefaultConfigFilePath returns the default config path: ~/.config/kbtest/config.json
func DefaultConfigFilePath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".config", "kbtest", "config.json"), nil
}
