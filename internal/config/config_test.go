// ABOUTME: Tests for config loading, env overrides, and the store factory.
// ABOUTME: Uses a temp XDG home so real user config is never touched.
package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func isolateEnv(t *testing.T) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("XDG_DATA_HOME", t.TempDir())
	t.Setenv("HEALTHFLOW_BACKEND", "")
	t.Setenv("HEALTHFLOW_SERVER_URL", "")
	t.Setenv("HEALTHFLOW_ANON_KEY", "")
	t.Setenv("GEMINI_API_KEY", "")
}

func TestLoadDefaults(t *testing.T) {
	isolateEnv(t)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "local", cfg.GetBackend())
	assert.Equal(t, DataDir(), cfg.GetDataDir())
	assert.Empty(t, cfg.ServerURL)
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	isolateEnv(t)

	cfg := &Config{
		Backend:      "rest",
		ServerURL:    "https://api.example.com",
		AnonKey:      "anon-key",
		GeminiAPIKey: "gem-key",
	}
	require.NoError(t, cfg.Save())

	loaded, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "rest", loaded.Backend)
	assert.Equal(t, "https://api.example.com", loaded.ServerURL)
	assert.Equal(t, "gem-key", loaded.GeminiAPIKey)
}

func TestEnvOverrides(t *testing.T) {
	isolateEnv(t)
	require.NoError(t, (&Config{Backend: "local"}).Save())

	t.Setenv("HEALTHFLOW_BACKEND", "rest")
	t.Setenv("HEALTHFLOW_SERVER_URL", "https://override.example.com")
	t.Setenv("GEMINI_API_KEY", "env-key")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "rest", cfg.Backend)
	assert.Equal(t, "https://override.example.com", cfg.ServerURL)
	assert.Equal(t, "env-key", cfg.GeminiAPIKey)
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	tests := []struct {
		input string
		want  string
	}{
		{"", ""},
		{"~", home},
		{"~/data", filepath.Join(home, "data")},
		{"/absolute/path", "/absolute/path"},
		{"relative/path", "relative/path"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ExpandPath(tt.input), "ExpandPath(%q)", tt.input)
	}
}

func TestOpenProfileStoreRestRequiresServerURL(t *testing.T) {
	isolateEnv(t)

	cfg := &Config{Backend: "rest"}
	_, err := cfg.OpenProfileStore(nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "server_url")
}

func TestOpenProfileStoreUnknownBackend(t *testing.T) {
	isolateEnv(t)

	cfg := &Config{Backend: "carrier-pigeon"}
	_, err := cfg.OpenProfileStore(nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown backend")
}

func TestOpenProfileStoreLocal(t *testing.T) {
	isolateEnv(t)

	cfg := &Config{Backend: "local", DataDir: t.TempDir()}
	s, err := cfg.OpenProfileStore(nil)
	require.NoError(t, err)
	require.NotNil(t, s)
	require.NoError(t, s.Close())
}
