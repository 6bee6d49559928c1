// ABOUTME: MCP tool implementations for hydration, workouts, diet, and profile.
// ABOUTME: All writes go through the single state updater.
package mcp

import (
	"context"
	"fmt"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/harperreed/healthflow/internal/models"
	"github.com/harperreed/healthflow/internal/tracker"
)

func (s *Server) registerTools() {
	// log_water
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "log_water",
		Description: "Log a water intake entry in milliliters",
	}, s.handleLogWater)

	// remove_water
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "remove_water",
		Description: "Remove a hydration entry by its exact timestamp",
	}, s.handleRemoveWater)

	// hydration_today
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "hydration_today",
		Description: "Get today's hydration entries, total, and goal progress",
	}, s.handleHydrationToday)

	// generate_workouts
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "generate_workouts",
		Description: "Refresh the workout list with suggested routines",
	}, s.handleGenerateWorkouts)

	// list_workouts
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "list_workouts",
		Description: "List the current workout routines",
	}, s.handleListWorkouts)

	// complete_workout
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "complete_workout",
		Description: "Record a completed workout (increments the streak)",
	}, s.handleCompleteWorkout)

	// suggest_meals
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "suggest_meals",
		Description: "Generate AI meal suggestions from pantry ingredients (replaces the meal plan)",
	}, s.handleSuggestMeals)

	// set_name
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "set_name",
		Description: "Set the profile display name",
	}, s.handleSetName)

	// list_badges
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "list_badges",
		Description: "List achievement badges and their status",
	}, s.handleListBadges)
}

// Tool input/output types

type logWaterInput struct {
	AmountML int `json:"amount_ml" jsonschema:"Water amount in milliliters"`
}

type hydrationOutput struct {
	TotalML int    `json:"total_ml"`
	GoalML  int    `json:"goal_ml"`
	Message string `json:"message"`
}

type removeWaterInput struct {
	Date string `json:"date" jsonschema:"Exact RFC 3339 timestamp of the entry"`
}

type simpleOutput struct {
	Message string `json:"message"`
}

type completeWorkoutInput struct {
	WorkoutID string `json:"workout_id,omitempty" jsonschema:"Workout id to mark complete"`
}

type completeWorkoutOutput struct {
	Streak  int    `json:"streak"`
	Message string `json:"message"`
}

type suggestMealsInput struct {
	Ingredients []string `json:"ingredients" jsonschema:"Pantry ingredients to cook with"`
}

type setNameInput struct {
	Name string `json:"name" jsonschema:"New display name"`
}

// Tool handlers

func (s *Server) handleLogWater(ctx context.Context, req *mcp.CallToolRequest, input logWaterInput) (*mcp.CallToolResult, hydrationOutput, error) {
	if input.AmountML <= 0 {
		return nil, hydrationOutput{}, fmt.Errorf("amount must be positive")
	}

	now := time.Now()
	next := s.states.Update(func(st models.AppState) models.AppState {
		return tracker.LogWater(st, input.AmountML, now)
	})

	total := tracker.DayTotal(next, now)
	return nil, hydrationOutput{
		TotalML: total,
		GoalML:  tracker.DailyGoalML,
		Message: fmt.Sprintf("Logged %dml. Today: %d/%dml", input.AmountML, total, tracker.DailyGoalML),
	}, nil
}

func (s *Server) handleRemoveWater(ctx context.Context, req *mcp.CallToolRequest, input removeWaterInput) (*mcp.CallToolResult, simpleOutput, error) {
	s.states.Update(func(st models.AppState) models.AppState {
		return tracker.RemoveLog(st, input.Date)
	})
	return nil, simpleOutput{Message: fmt.Sprintf("Removed entry %s", input.Date)}, nil
}

func (s *Server) handleHydrationToday(ctx context.Context, req *mcp.CallToolRequest, input struct{}) (*mcp.CallToolResult, any, error) {
	now := time.Now()
	st := s.states.Get()
	logs := tracker.LogsOn(st, now)

	return nil, map[string]any{
		"date":     now.UTC().Format("2006-01-02"),
		"entries":  logs,
		"total_ml": tracker.DayTotal(st, now),
		"goal_ml":  tracker.DailyGoalML,
	}, nil
}

func (s *Server) handleGenerateWorkouts(ctx context.Context, req *mcp.CallToolRequest, input struct{}) (*mcp.CallToolResult, any, error) {
	next := s.states.Update(func(st models.AppState) models.AppState {
		return tracker.SetWorkouts(st, tracker.SuggestedWorkouts())
	})
	return nil, next.Workouts, nil
}

func (s *Server) handleListWorkouts(ctx context.Context, req *mcp.CallToolRequest, input struct{}) (*mcp.CallToolResult, any, error) {
	workouts := s.states.Get().Workouts
	if len(workouts) == 0 {
		return nil, map[string]any{"message": "No workouts loaded. Use generate_workouts first."}, nil
	}
	return nil, workouts, nil
}

func (s *Server) handleCompleteWorkout(ctx context.Context, req *mcp.CallToolRequest, input completeWorkoutInput) (*mcp.CallToolResult, completeWorkoutOutput, error) {
	if input.WorkoutID != "" {
		if _, ok := tracker.WorkoutByID(s.states.Get(), input.WorkoutID); !ok {
			return nil, completeWorkoutOutput{}, fmt.Errorf("unknown workout: %s", input.WorkoutID)
		}
	}

	next := s.states.Update(func(st models.AppState) models.AppState {
		return tracker.CompleteWorkout(st, time.Now())
	})

	return nil, completeWorkoutOutput{
		Streak:  next.Streak,
		Message: fmt.Sprintf("Workout complete! Streak: %d days", next.Streak),
	}, nil
}

func (s *Server) handleSuggestMeals(ctx context.Context, req *mcp.CallToolRequest, input suggestMealsInput) (*mcp.CallToolResult, any, error) {
	if s.suggester == nil {
		return nil, nil, fmt.Errorf("meal suggestions not configured (set gemini_api_key)")
	}
	if len(input.Ingredients) == 0 {
		return nil, nil, fmt.Errorf("at least one ingredient is required")
	}

	meals, err := s.suggester.Suggest(ctx, input.Ingredients)
	if err != nil || len(meals) == 0 {
		// Degrades to "no suggestions" rather than a hard failure.
		return nil, map[string]any{"message": "Could not generate suggestions right now. Try again."}, nil
	}

	s.states.Update(func(st models.AppState) models.AppState {
		return tracker.ReplaceMeals(st, meals)
	})
	return nil, meals, nil
}

func (s *Server) handleSetName(ctx context.Context, req *mcp.CallToolRequest, input setNameInput) (*mcp.CallToolResult, simpleOutput, error) {
	if input.Name == "" {
		return nil, simpleOutput{}, fmt.Errorf("name must not be empty")
	}
	s.states.Update(func(st models.AppState) models.AppState {
		return tracker.SetName(st, input.Name)
	})
	return nil, simpleOutput{Message: fmt.Sprintf("Display name set to %s", input.Name)}, nil
}

func (s *Server) handleListBadges(ctx context.Context, req *mcp.CallToolRequest, input struct{}) (*mcp.CallToolResult, any, error) {
	return nil, s.states.Get().Badges, nil
}
