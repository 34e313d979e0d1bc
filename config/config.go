// ABOUTME: Configuration for the remote record service connection
// ABOUTME: Handles JSON config at XDG paths with environment variable overrides
package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

const (
	// AppName is the directory name under the XDG data home.
	AppName = "cms-dashboard"

	// ConfigFileName is where we store local config.
	ConfigFileName = "config.json"
)

// Config holds connection settings for the remote record service.
type Config struct {
	// BaseURL is the root of the record service API.
	BaseURL string `json:"base_url,omitempty"`

	// AnonKey is the public key sent as the bearer credential when no
	// session is active (the service still wants an Authorization header).
	AnonKey string `json:"anon_key,omitempty"`
}

// DefaultConfig returns a new config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		BaseURL: "http://localhost:8787",
	}
}

// DataDir returns the application data directory, creating it if needed.
func DataDir() (string, error) {
	dir := filepath.Join(xdg.DataHome, AppName)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return "", err
	}
	return dir, nil
}

// StorePath returns the local store directory.
func StorePath() (string, error) {
	dir, err := DataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "local"), nil
}

// SessionPath returns the persisted session file path.
func SessionPath() (string, error) {
	dir, err := DataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "session.json"), nil
}

// SyncDBPath returns the sync bookkeeping database path.
func SyncDBPath() (string, error) {
	dir, err := DataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "sync.db"), nil
}

func configPath() (string, error) {
	dir, err := DataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, ConfigFileName), nil
}

// LoadConfig loads config from disk, or returns defaults if not found.
// Environment variables override file values:
// - CMS_API_URL
// - CMS_ANON_KEY.
func LoadConfig() (*Config, error) {
	cfg := DefaultConfig()

	path, err := configPath()
	if err != nil {
		applyEnvOverrides(cfg)
		return cfg, nil //nolint:nilerr // Intentionally returning defaults on path error
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			applyEnvOverrides(cfg)
			return cfg, nil
		}
		return nil, err
	}

	if err := json.Unmarshal(data, cfg); err != nil {
		// Invalid config, use defaults
		cfg = DefaultConfig()
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultConfig().BaseURL
	}

	applyEnvOverrides(cfg)
	return cfg, nil
}

func applyEnvOverrides(cfg *Config) {
	if url := os.Getenv("CMS_API_URL"); url != "" {
		cfg.BaseURL = url
	}
	if key := os.Getenv("CMS_ANON_KEY"); key != "" {
		cfg.AnonKey = key
	}
}

// Save persists the config to disk.
func (c *Config) Save() error {
	path, err := configPath()
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0600)
}
