// ABOUTME: Healthflow configuration with profile store backend selection.
// ABOUTME: JSON config under XDG, env overrides, and a store factory function.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/harperreed/healthflow/internal/store"
)

// Config stores healthflow client configuration.
type Config struct {
	// Backend selects the profile store: "local" (default), "charm",
	// or "rest" (the hosted cloud).
	Backend string `json:"backend,omitempty"`

	// DataDir is the root directory for local profile storage.
	// Supports ~ expansion. Defaults to ~/.local/share/healthflow.
	DataDir string `json:"data_dir,omitempty"`

	// ServerURL and AnonKey point at the hosted auth + profile API.
	ServerURL string `json:"server_url,omitempty"`
	AnonKey   string `json:"anon_key,omitempty"`

	// GeminiAPIKey enables AI meal suggestions.
	GeminiAPIKey string `json:"gemini_api_key,omitempty"`
	GeminiModel  string `json:"gemini_model,omitempty"`
}

// GetBackend returns the configured backend, defaulting to "local".
func (c *Config) GetBackend() string {
	if c.Backend == "" {
		return "local"
	}
	return c.Backend
}

// GetDataDir returns the configured data directory with ~ expanded,
// defaulting to the standard XDG data directory.
func (c *Config) GetDataDir() string {
	if c.DataDir == "" {
		return DataDir()
	}
	return ExpandPath(c.DataDir)
}

// OpenProfileStore creates a ProfileStore implementation based on the
// configured backend.
func (c *Config) OpenProfileStore(authToken func() string) (store.ProfileStore, error) {
	switch c.GetBackend() {
	case "local":
		return store.OpenLocal(filepath.Join(c.GetDataDir(), "profiles"))
	case "charm":
		return store.OpenCharm()
	case "rest":
		if c.ServerURL == "" {
			return nil, fmt.Errorf("rest backend requires server_url in %s", Path())
		}
		return store.NewRestStore(c.ServerURL, c.AnonKey, authToken), nil
	default:
		return nil, fmt.Errorf("unknown backend: %q", c.Backend)
	}
}

// ExpandPath expands a leading ~ to the user's home directory.
func ExpandPath(path string) string {
	if path == "" {
		return ""
	}
	if path == "~" {
		home, _ := os.UserHomeDir()
		return home
	}
	if strings.HasPrefix(path, "~/") {
		home, _ := os.UserHomeDir()
		return filepath.Join(home, path[2:])
	}
	return path
}

// DataDir returns the default data directory following XDG spec.
func DataDir() string {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, _ := os.UserHomeDir()
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "healthflow")
}

// Path returns the config file path.
func Path() string {
	configDir := os.Getenv("XDG_CONFIG_HOME")
	if configDir == "" {
		homeDir, _ := os.UserHomeDir()
		configDir = filepath.Join(homeDir, ".config")
	}
	return filepath.Join(configDir, "healthflow", "config.json")
}

// Load reads config from disk, then applies env overrides.
func Load() (*Config, error) {
	var cfg Config
	data, err := os.ReadFile(Path())
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, err
		}
	} else if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	if v := os.Getenv("HEALTHFLOW_BACKEND"); v != "" {
		cfg.Backend = v
	}
	if v := os.Getenv("HEALTHFLOW_SERVER_URL"); v != "" {
		cfg.ServerURL = v
	}
	if v := os.Getenv("HEALTHFLOW_ANON_KEY"); v != "" {
		cfg.AnonKey = v
	}
	if v := os.Getenv("GEMINI_API_KEY"); v != "" {
		cfg.GeminiAPIKey = v
	}
	return &cfg, nil
}

// Save writes config to disk.
func (c *Config) Save() error {
	path := Path()
	if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
		return err
	}
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0600)
}
