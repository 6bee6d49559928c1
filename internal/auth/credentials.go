// ABOUTME: Saved-session persistence so the CLI stays signed in between runs.
// ABOUTME: Stores the session JSON 0600 under the XDG config directory.
package auth

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// ConfigDir returns the XDG config directory for healthflow.
func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "healthflow")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "healthflow")
}

// CredentialsPath returns the path to the saved session file.
func CredentialsPath() string {
	return filepath.Join(ConfigDir(), "session.json")
}

// LoadSession reads the saved session from disk. A missing file is not
// an error - it just means nobody is signed in.
func LoadSession() (*Session, error) {
	data, err := os.ReadFile(CredentialsPath())
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	var sess Session
	if err := json.Unmarshal(data, &sess); err != nil {
		return nil, err
	}
	if sess.UserID == "" {
		return nil, nil
	}
	return &sess, nil
}

// SaveSession persists the session to disk.
func SaveSession(sess *Session) error {
	if err := os.MkdirAll(ConfigDir(), 0750); err != nil {
		return err
	}
	data, err := json.MarshalIndent(sess, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(CredentialsPath(), data, 0600)
}

// ClearSession removes the saved session file.
func ClearSession() error {
	path := CredentialsPath()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil
	}
	return os.Remove(path)
}
