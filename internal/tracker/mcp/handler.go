package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/2beens/fittracker/internal/ledger"
	"github.com/2beens/fittracker/internal/tracker"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// ledgerService is the part of tracker.Service the tools need.
type ledgerService interface {
	Snapshot(ctx context.Context) ledger.Snapshot
	Workouts(ctx context.Context) tracker.WorkoutsResponse
	AddWorkout(ctx context.Context, draft ledger.Draft) tracker.AddWorkoutResponse
	ToggleWorkout(ctx context.Context, id int64) tracker.ChangeResponse
	RemoveWorkout(ctx context.Context, id int64) tracker.ChangeResponse
	SetSteps(ctx context.Context, raw string) tracker.ChangeResponse
	SetCaloriesConsumed(ctx context.Context, raw string) tracker.ChangeResponse
	SetGoal(ctx context.Context, field ledger.GoalField, raw string) tracker.ChangeResponse
	SetCurrentWeight(ctx context.Context, raw string) tracker.ChangeResponse
}

// Handler turns MCP tool calls into ledger operations and formats the results.
type Handler struct {
	service ledgerService
}

func NewHandler(service ledgerService) *Handler {
	return &Handler{
		service: service,
	}
}

// GetLedgerSnapshotTool returns the MCP tool handler for get_ledger_snapshot.
func (h *Handler) GetLedgerSnapshotTool() func(context.Context, *mcp.CallToolRequest, any) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, _ any) (*mcp.CallToolResult, any, error) {
		return jsonResult(h.service.Snapshot(ctx))
	}
}

// ListWorkoutsTool returns the MCP tool handler for list_workouts.
func (h *Handler) ListWorkoutsTool() func(context.Context, *mcp.CallToolRequest, any) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, _ any) (*mcp.CallToolResult, any, error) {
		return jsonResult(h.service.Workouts(ctx))
	}
}

// AddWorkoutInput is the input for add_workout. Numbers may be sent as JSON
// numbers or as free text, as typed in a form.
type AddWorkoutInput struct {
	Name     string          `json:"name" jsonschema:"Exercise name (e.g. Bench Press)"`
	Category string          `json:"category,omitempty" jsonschema:"One of strength, cardio, flexibility, balance (default strength)"`
	Weight   ledger.RawValue `json:"weight,omitempty" jsonschema:"Weight in lbs, optional"`
	Sets     ledger.RawValue `json:"sets" jsonschema:"Number of sets, must be positive"`
	Reps     ledger.RawValue `json:"reps" jsonschema:"Number of reps, must be positive"`
}

// AddWorkoutTool returns the MCP tool handler for add_workout.
func (h *Handler) AddWorkoutTool() func(context.Context, *mcp.CallToolRequest, AddWorkoutInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in AddWorkoutInput) (*mcp.CallToolResult, any, error) {
		resp := h.service.AddWorkout(ctx, ledger.Draft{
			Name:     in.Name,
			Category: in.Category,
			Weight:   in.Weight,
			Sets:     in.Sets,
			Reps:     in.Reps,
		})
		return jsonResult(resp)
	}
}

// WorkoutIDInput is the input for toggle_workout and remove_workout.
type WorkoutIDInput struct {
	ID int64 `json:"id" jsonschema:"Workout id, as returned by list_workouts"`
}

// ToggleWorkoutTool returns the MCP tool handler for toggle_workout.
func (h *Handler) ToggleWorkoutTool() func(context.Context, *mcp.CallToolRequest, WorkoutIDInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in WorkoutIDInput) (*mcp.CallToolResult, any, error) {
		return jsonResult(h.service.ToggleWorkout(ctx, in.ID))
	}
}

// RemoveWorkoutTool returns the MCP tool handler for remove_workout.
func (h *Handler) RemoveWorkoutTool() func(context.Context, *mcp.CallToolRequest, WorkoutIDInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in WorkoutIDInput) (*mcp.CallToolResult, any, error) {
		return jsonResult(h.service.RemoveWorkout(ctx, in.ID))
	}
}

const (
	statSteps            = "steps"
	statCaloriesConsumed = "calories_consumed"
)

// DailyStatInput is the input for set_daily_stat.
type DailyStatInput struct {
	Stat  string          `json:"stat" jsonschema:"Either steps or calories_consumed"`
	Value ledger.RawValue `json:"value" jsonschema:"New value, non-numeric text counts as 0"`
}

// SetDailyStatTool returns the MCP tool handler for set_daily_stat.
func (h *Handler) SetDailyStatTool() func(context.Context, *mcp.CallToolRequest, DailyStatInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in DailyStatInput) (*mcp.CallToolResult, any, error) {
		switch in.Stat {
		case statSteps:
			return jsonResult(h.service.SetSteps(ctx, in.Value.String()))
		case statCaloriesConsumed:
			return jsonResult(h.service.SetCaloriesConsumed(ctx, in.Value.String()))
		default:
			return errorResult(fmt.Sprintf("Unknown stat: %q (use steps or calories_consumed)", in.Stat))
		}
	}
}

// GoalInput is the input for set_goal.
type GoalInput struct {
	Field string          `json:"field" jsonschema:"One of weight, steps, calories"`
	Value ledger.RawValue `json:"value" jsonschema:"New goal value, non-numeric text counts as 0"`
}

// SetGoalTool returns the MCP tool handler for set_goal.
func (h *Handler) SetGoalTool() func(context.Context, *mcp.CallToolRequest, GoalInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in GoalInput) (*mcp.CallToolResult, any, error) {
		field := ledger.GoalField(in.Field)
		if !field.IsValid() {
			return errorResult(fmt.Sprintf("Unknown goal: %q (use weight, steps or calories)", in.Field))
		}
		return jsonResult(h.service.SetGoal(ctx, field, in.Value.String()))
	}
}

// ValueInput is the input for set_current_weight.
type ValueInput struct {
	Value ledger.RawValue `json:"value" jsonschema:"Current body weight in lbs, non-numeric text counts as 0"`
}

// SetCurrentWeightTool returns the MCP tool handler for set_current_weight.
func (h *Handler) SetCurrentWeightTool() func(context.Context, *mcp.CallToolRequest, ValueInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in ValueInput) (*mcp.CallToolResult, any, error) {
		return jsonResult(h.service.SetCurrentWeight(ctx, in.Value.String()))
	}
}

func jsonResult(v any) (*mcp.CallToolResult, any, error) {
	raw, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return errorResult("Error encoding response: " + err.Error())
	}
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: string(raw)}},
	}, nil, nil
}

func errorResult(text string) (*mcp.CallToolResult, any, error) {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: text}},
		IsError: true,
	}, nil, nil
}
