package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/2beens/fittracker/internal/ledger"
	"github.com/2beens/fittracker/internal/tracker"
)

// summary: print daily stats, goal progress and weight progress.
func summaryCmd(get func() ledgerClient) *cobra.Command {
	return &cobra.Command{
		Use:   "summary",
		Short: "Show today's stats and progress",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			snapshot, err := get().Snapshot(cmd.Context())
			if err != nil {
				return err
			}
			return renderSummary(cmd.OutOrStdout(), snapshot)
		},
	}
}

func valueCmd(use, short string, set func(ctx context.Context, raw string) (tracker.ChangeResponse, error)) *cobra.Command {
	name, _, _ := strings.Cut(use, " ")
	return &cobra.Command{
		Use:     use,
		Short:   short,
		Example: fmt.Sprintf("  fitctl %s 5000\n  fitctl %s -- -5", name, name),
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := set(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return renderSummary(cmd.OutOrStdout(), resp.Snapshot)
		},
	}
}

// steps <n>: set today's step count.
func stepsCmd(get func() ledgerClient) *cobra.Command {
	return valueCmd("steps <n>", "Set today's steps", func(ctx context.Context, raw string) (tracker.ChangeResponse, error) {
		return get().SetSteps(ctx, raw)
	})
}

// calories <n>: set today's calories consumed.
func caloriesCmd(get func() ledgerClient) *cobra.Command {
	return valueCmd("calories <n>", "Set today's calories consumed", func(ctx context.Context, raw string) (tracker.ChangeResponse, error) {
		return get().SetCaloriesConsumed(ctx, raw)
	})
}

// weight <n>: set the current body weight.
func weightCmd(get func() ledgerClient) *cobra.Command {
	return valueCmd("weight <n>", "Set current body weight (lbs)", func(ctx context.Context, raw string) (tracker.ChangeResponse, error) {
		return get().SetCurrentWeight(ctx, raw)
	})
}

// goal <weight|steps|calories> <n>: set a goal.
func goalCmd(get func() ledgerClient) *cobra.Command {
	return &cobra.Command{
		Use:       "goal <weight|steps|calories> <n>",
		Short:     "Set a goal (0 clears it)",
		Example:   "  fitctl goal steps 8000\n  fitctl goal weight -- -1",
		Args:      cobra.ExactArgs(2),
		ValidArgs: []string{ledger.GoalWeight.String(), ledger.GoalSteps.String(), ledger.GoalCalories.String()},
		RunE: func(cmd *cobra.Command, args []string) error {
			field := ledger.GoalField(args[0])
			if !field.IsValid() {
				return fmt.Errorf("unknown goal %q, use weight, steps or calories", args[0])
			}
			resp, err := get().SetGoal(cmd.Context(), field, args[1])
			if err != nil {
				return err
			}
			return renderSummary(cmd.OutOrStdout(), resp.Snapshot)
		},
	}
}
