// ABOUTME: Root Cobra command for healthflow CLI.
// ABOUTME: Wires config, profile store, auth, reconciler, and autosaver per invocation.
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/harperreed/healthflow/internal/auth"
	"github.com/harperreed/healthflow/internal/config"
	"github.com/harperreed/healthflow/internal/session"
	"github.com/harperreed/healthflow/internal/state"
	"github.com/harperreed/healthflow/internal/store"
)

var (
	cfg        *config.Config
	profiles   store.ProfileStore
	appState   *state.Store
	authClient *auth.Client
	reconciler *session.Reconciler
	autosaver  *session.Autosaver
	logger     *log.Logger
)

var rootCmd = &cobra.Command{
	Use:   "healthflow",
	Short: "Personal health tracker with cloud sync",
	Long: `Healthflow tracks hydration, workouts, and meals, synced to a
per-user cloud profile.

QUICK START:

  $ healthflow signup you@example.com secret123 --name "Ana"
  $ healthflow water add 250          # Log a glass of water
  $ healthflow water today            # Progress towards the 3L goal
  $ healthflow workout generate       # Load suggested routines
  $ healthflow workout complete w1    # Finish one, grow your streak
  $ healthflow meal suggest chicken broccoli rice
  $ healthflow badges                 # See what you've earned

ACCOUNT:

  $ healthflow login you@example.com secret123
  $ healthflow whoami
  $ healthflow logout

SYNC:

  Your full profile document is loaded when you sign in and saved back
  automatically a few seconds after each change. Choose where it lives
  with the backend setting: "local" (on disk), "charm" (Charm Cloud,
  E2E encrypted), or "rest" (the hosted HealthFlow API).

MCP INTEGRATION:

  Run 'healthflow mcp' to start the Model Context Protocol server for
  use with Claude Desktop or other MCP-compatible AI assistants:

  {
    "mcpServers": {
      "healthflow": { "command": "healthflow", "args": ["mcp"] }
    }
  }`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip wiring for commands that don't need it
		if cmd.Name() == "version" || cmd.Name() == "help" {
			return nil
		}

		var err error
		cfg, err = config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}

		logger = log.New(os.Stderr)
		logger.SetLevel(log.WarnLevel)

		authClient = auth.NewClient(cfg.ServerURL, cfg.AnonKey)

		profiles, err = cfg.OpenProfileStore(func() string {
			if s := authClient.Session(); s != nil {
				return s.AccessToken
			}
			return ""
		})
		if err != nil {
			return fmt.Errorf("open profile store: %w", err)
		}

		appState = state.New()
		reconciler = session.NewReconciler(profiles, appState, logger)
		autosaver = session.NewAutosaver(profiles, reconciler, appState, logger)

		// Reconstruct the session from saved credentials, if any, and
		// run a load pass for it before the command body executes.
		saved, err := auth.LoadSession()
		if err != nil {
			logger.Warn("could not read saved session", "err", err)
		}
		if saved != nil {
			authClient.Resume(saved)
			evt := <-authClient.Events()
			if err := reconciler.Apply(cmd.Context(), evt); err != nil {
				logger.Error("session load failed", "err", err)
			}
		}
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Name() == "version" || cmd.Name() == "help" {
			return nil
		}
		if autosaver != nil {
			if err := autosaver.Flush(cmd.Context()); err != nil {
				logger.Warn("could not save profile", "err", err)
			}
			autosaver.Close()
		}
		if profiles != nil {
			return profiles.Close()
		}
		return nil
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
