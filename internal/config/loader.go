package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// SourceEmbedded names the config source when no file was found.
const SourceEmbedded = "embedded defaults"

// Environment variables that override the loaded file.
const (
	EnvSavePath = "CRUSH_SAVE_PATH"
	EnvDBPath   = "CRUSH_DB_PATH"
	EnvLogPath  = "CRUSH_LOG_PATH"
	EnvLogLevel = "CRUSH_LOG_LEVEL"
)

// Load loads the configuration and reports where it came from.
// Search order: customPath -> ~/.crush/config.yaml -> ./configs/crush.yaml -> embedded default.
// Variables from ./.env and the environment are applied on top, then the
// result is validated.
func Load(customPath string) (Config, string, error) {
	cfg, source, err := loadFile(customPath)
	if err != nil {
		return cfg, source, err
	}

	if err := loadDotEnv(".env"); err != nil {
		return cfg, source, err
	}
	applyEnv(&cfg, os.LookupEnv)

	if err := cfg.Validate(); err != nil {
		return cfg, source, fmt.Errorf("config %s: %w", source, err)
	}
	return cfg, source, nil
}

func loadFile(customPath string) (Config, string, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return Default(), customPath, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := parse(data)
		if err != nil {
			return Default(), customPath, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, customPath, nil
	}

	// Try user config directory, then local configs directory
	for _, path := range []string{userConfigPath(), filepath.Join("configs", "crush.yaml")} {
		if path == "" {
			continue
		}
		if data, err := os.ReadFile(path); err == nil {
			if cfg, err := parse(data); err == nil {
				return cfg, path, nil
			}
		}
	}

	// Use embedded default YAML
	cfg, err := parse(defaultYAML)
	if err != nil {
		return Default(), SourceEmbedded, nil // Fallback to hardcoded if embed fails
	}
	return cfg, SourceEmbedded, nil
}

// parse decodes data over the defaults so omitted keys keep their values.
func parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Default(), err
	}
	return cfg, nil
}

// userConfigPath returns the path to the user config file, or empty if home is unavailable.
func userConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".crush", "config.yaml")
}

// loadDotEnv exports the variables of an optional .env file. Variables
// already set in the environment win.
func loadDotEnv(path string) error {
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to load %s: %w", path, err)
	}
	return nil
}

func applyEnv(cfg *Config, lookup func(string) (string, bool)) {
	if v, ok := lookup(EnvSavePath); ok && v != "" {
		cfg.Paths.Save = v
	}
	if v, ok := lookup(EnvDBPath); ok && v != "" {
		cfg.Paths.Database = v
	}
	if v, ok := lookup(EnvLogPath); ok && v != "" {
		cfg.Paths.Log = v
	}
	if v, ok := lookup(EnvLogLevel); ok && v != "" {
		cfg.Log.Level = v
	}
}

// Marshal renders cfg as YAML.
func Marshal(cfg Config) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to encode config: %w", err)
	}
	return data, nil
}
