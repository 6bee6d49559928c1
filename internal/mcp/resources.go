// ABOUTME: MCP resource implementations for the healthflow state.
// ABOUTME: Provides healthflow://state and healthflow://hydration/today.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/harperreed/healthflow/internal/tracker"
)

func (s *Server) registerResources() {
	// healthflow://state - the full profile document plus load status
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "healthflow://state",
		Name:        "Application State",
		Description: "The full health profile document for the signed-in user",
		MIMEType:    "application/json",
	}, s.handleStateResource)

	// healthflow://hydration/today - today's intake summary
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "healthflow://hydration/today",
		Name:        "Today's Hydration",
		Description: "Water intake entries and goal progress for today",
		MIMEType:    "application/json",
	}, s.handleHydrationResource)
}

// Resource handlers

func (s *Server) handleStateResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	result := map[string]any{
		"load_status": s.rec.Status().String(),
		"signed_in":   s.rec.Active(),
		"state":       s.states.Get(),
	}

	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal result: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      "healthflow://state",
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

func (s *Server) handleHydrationResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	now := time.Now()
	st := s.states.Get()

	result := map[string]any{
		"date":     now.UTC().Format("2006-01-02"),
		"entries":  tracker.LogsOn(st, now),
		"total_ml": tracker.DayTotal(st, now),
		"goal_ml":  tracker.DailyGoalML,
	}

	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal result: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      "healthflow://hydration/today",
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}
