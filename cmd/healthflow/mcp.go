// ABOUTME: CLI command for starting MCP server.
// ABOUTME: Runs stdio-based MCP server for Claude integration.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/harperreed/healthflow/internal/mcp"
	"github.com/harperreed/healthflow/internal/suggest"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start MCP server",
	Long: `Start the Model Context Protocol (MCP) server for AI assistant integration.

MCP allows AI assistants like Claude to interact with your health profile
through a standardized protocol. The server communicates via stdin/stdout.

CLAUDE DESKTOP CONFIGURATION:

  Add this to your Claude Desktop config (claude_desktop_config.json):

  {
    "mcpServers": {
      "healthflow": {
        "command": "healthflow",
        "args": ["mcp"]
      }
    }
  }

  On macOS, the config is at:
    ~/Library/Application Support/Claude/claude_desktop_config.json

AVAILABLE TOOLS:

  log_water          Record a water intake
  remove_water       Remove a water log by timestamp
  hydration_today    Today's water total and goal
  generate_workouts  Load the suggested workout routines
  list_workouts      List current workout routines
  complete_workout   Complete a workout, growing the streak
  suggest_meals      AI meal plan from ingredients on hand
  set_name           Change the display name
  list_badges        List achievement badges

AVAILABLE RESOURCES:

  healthflow://state            Full profile document
  healthflow://hydration/today  Today's hydration logs`,
	RunE: func(cmd *cobra.Command, args []string) error {
		var suggester suggest.Provider
		if cfg.GeminiAPIKey != "" {
			client := suggest.NewGeminiClient(cfg.GeminiAPIKey)
			client.Model = cfg.GeminiModel
			suggester = client
		}

		server, err := mcp.NewServer(appState, reconciler, suggester)
		if err != nil {
			return err
		}

		ctx, cancel := context.WithCancel(cmd.Context())
		defer cancel()

		// Keep reconciling auth events while the server runs, so a
		// long-lived session survives token refreshes.
		go reconciler.Run(ctx, authClient.Events())

		// Handle shutdown signals
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		go func() {
			<-sigChan
			cancel()
		}()

		return server.Serve(ctx)
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
