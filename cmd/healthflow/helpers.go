// ABOUTME: Shared CLI helpers for session checks and display formatting.
// ABOUTME: Keeps command bodies focused on their feature logic.
package main

import (
	"errors"
	"fmt"
	"time"
)

// requireSession ensures a user is signed in with the initial load
// resolved before a feature command runs.
func requireSession() error {
	if reconciler == nil || !reconciler.Active() {
		return errors.New("not signed in - run 'healthflow login' first")
	}
	return nil
}

// requireServer ensures the hosted API is configured for auth commands.
func requireServer() error {
	if cfg.ServerURL == "" {
		return fmt.Errorf("no server configured - set server_url in your config or HEALTHFLOW_SERVER_URL")
	}
	return nil
}

// formatClock renders an RFC 3339 timestamp as a local HH:MM clock.
func formatClock(date string) string {
	t, err := time.Parse(time.RFC3339, date)
	if err != nil {
		return date
	}
	return t.Local().Format("15:04")
}

// truncate shortens s to max runes with an ellipsis.
func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	if max <= 3 {
		return string(runes[:max])
	}
	return string(runes[:max-3]) + "..."
}
