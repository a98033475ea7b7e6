package mcp

import (
	"fmt"
	"reflect"

	"github.com/google/jsonschema-go/jsonschema"
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/2beens/fittracker/internal/ledger"
)

const (
	ServerName    = "fittracker-ledger"
	ServerVersion = "1.0.0"
)

// rawValueSchema lets numeric inputs arrive as JSON numbers or strings, the
// same as the HTTP API.
var rawValueSchema = &jsonschema.Schema{Types: []string{"string", "number", "null"}}

// inputSchema infers the tool input schema of T with ledger.RawValue fields
// widened to rawValueSchema.
func inputSchema[T any]() *jsonschema.Schema {
	s, err := jsonschema.For[T](&jsonschema.ForOptions{
		TypeSchemas: map[reflect.Type]*jsonschema.Schema{
			reflect.TypeFor[ledger.RawValue](): rawValueSchema,
		},
	})
	if err != nil {
		panic(fmt.Sprintf("mcp: input schema for %s: %v", reflect.TypeFor[T](), err))
	}
	return s
}

// NewServer builds an MCP server exposing the session ledger as tools.
// It is served over stdio by cmd/fittracker_mcp and mounted at /mcp by the
// HTTP server.
func NewServer(service ledgerService) *mcp.Server {
	h := NewHandler(service)
	s := mcp.NewServer(&mcp.Implementation{
		Name:    ServerName,
		Version: ServerVersion,
	}, nil)

	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_ledger_snapshot",
		Description: "Returns the whole fitness ledger: workouts, daily stats (steps, calories consumed and burned), goals, current weight and the derived summary (net calories, progress percentages, completed/total workouts, weight progress). Use to see the current state before and after changes.",
	}, h.GetLedgerSnapshotTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "list_workouts",
		Description: "Returns the logged workouts in insertion order with their ids, category, weight, sets, reps and completion flag.",
	}, h.ListWorkoutsTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "add_workout",
		InputSchema: inputSchema[AddWorkoutInput](),
		Description: "Adds a workout. Name, sets and reps are required (sets and reps must be positive numbers); category defaults to strength and weight is optional. An incomplete workout is not added and the result reports added=false.",
	}, h.AddWorkoutTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "toggle_workout",
		Description: "Flips the completed flag of the workout with the given id. Unknown ids leave the ledger unchanged (applied=false).",
	}, h.ToggleWorkoutTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "remove_workout",
		Description: "Removes the workout with the given id. Unknown ids leave the ledger unchanged (applied=false).",
	}, h.RemoveWorkoutTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "set_daily_stat",
		InputSchema: inputSchema[DailyStatInput](),
		Description: "Sets today's steps (calories burned is derived as steps * 0.04, rounded) or calories consumed. Non-numeric or negative values count as 0.",
	}, h.SetDailyStatTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "set_goal",
		InputSchema: inputSchema[GoalInput](),
		Description: "Sets the weight, steps or calories goal. A goal of 0 means no goal; its progress reads 0%.",
	}, h.SetGoalTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "set_current_weight",
		InputSchema: inputSchema[ValueInput](),
		Description: "Sets the current body weight in lbs. 0 means unknown; weight progress needs both current weight and weight goal.",
	}, h.SetCurrentWeightTool())

	return s
}
