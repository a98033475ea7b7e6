// Package commands implements fitctl, a terminal client for the fittracker service.
package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/2beens/fittracker/internal/client"
	"github.com/2beens/fittracker/internal/config"
	"github.com/2beens/fittracker/internal/ledger"
	"github.com/2beens/fittracker/internal/tracker"
)

//go:generate mockgen -source=$GOFILE -destination=client_mocks_test.go -package=commands

type ledgerClient interface {
	Snapshot(ctx context.Context) (ledger.Snapshot, error)
	Workouts(ctx context.Context) (tracker.WorkoutsResponse, error)
	AddWorkout(ctx context.Context, draft ledger.Draft) (tracker.AddWorkoutResponse, error)
	ToggleWorkout(ctx context.Context, id int64) (tracker.ChangeResponse, error)
	RemoveWorkout(ctx context.Context, id int64) (tracker.ChangeResponse, error)
	SetSteps(ctx context.Context, raw string) (tracker.ChangeResponse, error)
	SetCaloriesConsumed(ctx context.Context, raw string) (tracker.ChangeResponse, error)
	SetGoal(ctx context.Context, field ledger.GoalField, raw string) (tracker.ChangeResponse, error)
	SetCurrentWeight(ctx context.Context, raw string) (tracker.ChangeResponse, error)
}

type clientFactory func(server string) ledgerClient

func Execute() error {
	return newRootCmd(func(server string) ledgerClient {
		return client.New(server)
	}).Execute()
}

func newRootCmd(newClient clientFactory) *cobra.Command {
	var (
		server string
		lc     ledgerClient
	)

	root := &cobra.Command{
		Use:           "fitctl",
		Short:         "Log workouts, steps, calories and goals in a running fittracker service",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if server == "" {
				clientEnv, err := config.LoadClientEnv(cmd.Context())
				if err != nil {
					return err
				}
				server = clientEnv.Server
			}
			lc = newClient(server)
			return nil
		},
	}

	root.PersistentFlags().StringVar(&server, "server", "", "fittracker base URL (default $FITCTL_SERVER or "+client.DefaultBaseURL+")")

	root.SetFlagErrorFunc(negativeValueHint)

	get := func() ledgerClient { return lc }
	root.AddCommand(
		summaryCmd(get),
		workoutsCmd(get),
		addCmd(get),
		toggleCmd(get),
		removeCmd(get),
		stepsCmd(get),
		caloriesCmd(get),
		goalCmd(get),
		weightCmd(get),
	)
	return root
}

// negativeValueHint explains the "--" separator when a negative value such
// as "-5" was parsed as a shorthand flag. The value itself is left to the
// service, which reads it as 0.
func negativeValueHint(cmd *cobra.Command, err error) error {
	rest, ok := strings.CutPrefix(err.Error(), "unknown shorthand flag: '")
	if !ok || rest == "" || rest[0] < '0' || rest[0] > '9' {
		return err
	}
	return fmt.Errorf("%w (put -- before negative values, e.g. fitctl %s -- -5)", err, cmd.Name())
}
