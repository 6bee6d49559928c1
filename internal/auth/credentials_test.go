// ABOUTME: Tests for saved-session persistence under XDG config.
// ABOUTME: Missing files mean signed out, not an error.
package auth

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveLoadClearSession(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	sess := &Session{
		UserID:          "u1",
		Email:           "ana@example.com",
		DisplayNameHint: "Ana",
		AccessToken:     "access-123",
		RefreshToken:    "refresh-456",
	}
	require.NoError(t, SaveSession(sess))

	info, err := os.Stat(CredentialsPath())
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())

	got, err := LoadSession()
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "u1", got.UserID)
	assert.Equal(t, "Ana", got.DisplayNameHint)
	assert.Equal(t, "access-123", got.AccessToken)

	require.NoError(t, ClearSession())
	got, err = LoadSession()
	require.NoError(t, err)
	assert.Nil(t, got)

	// Clearing twice is fine.
	require.NoError(t, ClearSession())
}

func TestLoadSessionMissingFile(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	sess, err := LoadSession()
	require.NoError(t, err)
	assert.Nil(t, sess)
}

func TestLoadSessionIgnoresEmptyDocument(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	require.NoError(t, os.MkdirAll(ConfigDir(), 0750))
	require.NoError(t, os.WriteFile(CredentialsPath(), []byte("{}"), 0600))

	sess, err := LoadSession()
	require.NoError(t, err)
	assert.Nil(t, sess, "a session without a user id is not a session")
}
