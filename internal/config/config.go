// Package config resolves client settings from environment variables with a
// config-file fallback under ~/.config/hope.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Config is the global hope config stored at ~/.config/hope/config.json.
type Config struct {
	APIURL         string `json:"api_url,omitempty"`
	RequestTimeout string `json:"request_timeout,omitempty"` // duration string, default "15s"
}

const defaultAPIURL = "http://localhost:8000"

// defaultTimeout mirrors the 15s client-side cutoff the web frontend used.
const defaultTimeout = 15 * time.Second

// Dir returns ~/.config/hope, creating it if necessary.
func Dir() (string, error) {
	if v := os.Getenv("HOPE_CONFIG_DIR"); v != "" {
		if err := os.MkdirAll(v, 0755); err != nil {
			return "", fmt.Errorf("create config dir: %w", err)
		}
		return v, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home dir: %w", err)
	}
	dir := filepath.Join(home, ".config", "hope")
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("create config dir: %w", err)
	}
	return dir, nil
}

// Load reads the global config from ~/.config/hope/config.json.
func Load() (*Config, error) {
	dir, err := Dir()
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(filepath.Join(dir, "config.json"))
	if err != nil {
		if os.IsNotExist(err) {
			return &Config{}, nil
		}
		return nil, err
	}
	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Save writes the global config to ~/.config/hope/config.json.
func Save(cfg *Config) error {
	dir, err := Dir()
	if err != nil {
		return err
	}
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(dir, "config.json"), data, 0644)
}

// APIURL returns the backend base URL.
// Priority: HOPE_API_URL env > config.json > default.
func APIURL() string {
	if v := os.Getenv("HOPE_API_URL"); v != "" {
		return v
	}
	cfg, err := Load()
	if err == nil && cfg.APIURL != "" {
		return cfg.APIURL
	}
	return defaultAPIURL
}

// RequestTimeout returns the per-request timeout.
// Priority: HOPE_TIMEOUT env > config.json > 15s.
func RequestTimeout() time.Duration {
	if v := os.Getenv("HOPE_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	cfg, err := Load()
	if err == nil && cfg.RequestTimeout != "" {
		if d, err := time.ParseDuration(cfg.RequestTimeout); err == nil {
			return d
		}
	}
	return defaultTimeout
}
