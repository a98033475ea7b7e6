package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/2beens/fittracker/internal/ledger"
)

// workouts: list the logged workouts.
func workoutsCmd(get func() ledgerClient) *cobra.Command {
	return &cobra.Command{
		Use:     "workouts",
		Aliases: []string{"ls"},
		Short:   "List logged workouts",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := get().Workouts(cmd.Context())
			if err != nil {
				return err
			}
			return renderWorkouts(cmd.OutOrStdout(), resp.Workouts)
		},
	}
}

// add --name --sets --reps [--category] [--weight]: log a workout.
func addCmd(get func() ledgerClient) *cobra.Command {
	draft := ledger.NewDraft()
	var weight, sets, reps string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a workout",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			draft.Weight = ledger.RawValue(weight)
			draft.Sets = ledger.RawValue(sets)
			draft.Reps = ledger.RawValue(reps)

			resp, err := get().AddWorkout(cmd.Context(), draft)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if !resp.Added {
				fmt.Fprintln(out, "not added: name, sets and reps are required (sets and reps must be positive)")
				return nil
			}
			fmt.Fprintf(out, "added workout %d\n", resp.Workout.ID)
			return renderWorkouts(out, resp.Snapshot.Workouts)
		},
	}
	cmd.Flags().StringVar(&draft.Name, "name", "", "exercise name")
	cmd.Flags().StringVar(&draft.Category, "category", draft.Category, "strength, cardio, flexibility or balance")
	cmd.Flags().StringVar(&weight, "weight", "", "weight in lbs (optional)")
	cmd.Flags().StringVar(&sets, "sets", "", "number of sets")
	cmd.Flags().StringVar(&reps, "reps", "", "number of reps")
	return cmd
}

// toggle <id>: flip a workout's completed flag.
func toggleCmd(get func() ledgerClient) *cobra.Command {
	return &cobra.Command{
		Use:   "toggle <id>",
		Short: "Mark a workout done / not done",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			resp, err := get().ToggleWorkout(cmd.Context(), id)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if !resp.Applied {
				fmt.Fprintf(out, "no workout with id %d\n", id)
				return nil
			}
			return renderWorkouts(out, resp.Snapshot.Workouts)
		},
	}
}

// rm <id>: remove a workout.
func removeCmd(get func() ledgerClient) *cobra.Command {
	return &cobra.Command{
		Use:   "rm <id>",
		Short: "Remove a workout",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			resp, err := get().RemoveWorkout(cmd.Context(), id)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if !resp.Applied {
				fmt.Fprintf(out, "no workout with id %d\n", id)
				return nil
			}
			fmt.Fprintf(out, "removed workout %d\n", id)
			return nil
		},
	}
}

func parseID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id < 0 {
		return 0, fmt.Errorf("invalid workout id: %s", raw)
	}
	return id, nil
}
