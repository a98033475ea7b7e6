package commands

import (
	"fmt"
	"io"
	"math"
	"strings"
	"text/tabwriter"

	"github.com/2beens/fittracker/internal/ledger"
)

const barWidth = 20

// bar draws a progress bar for an already clamped percentage.
func bar(pct float64) string {
	filled := int(math.Round(pct / 100 * barWidth))
	filled = max(0, min(barWidth, filled))
	return "[" + strings.Repeat("#", filled) + strings.Repeat(".", barWidth-filled) + "]"
}

func renderWorkouts(w io.Writer, workouts []ledger.WorkoutEntry) error {
	if len(workouts) == 0 {
		_, err := fmt.Fprintln(w, "no workouts logged yet")
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tDONE\tNAME\tCATEGORY\tWEIGHT\tSETS x REPS")
	for _, wo := range workouts {
		done := " "
		if wo.Completed {
			done = "x"
		}
		fmt.Fprintf(tw, "%d\t[%s]\t%s\t%s\t%s\t%d x %d\n",
			wo.ID, done, wo.Name, wo.Category.Label(), wo.WeightLabel(), wo.Sets, wo.Reps)
	}
	return tw.Flush()
}

func renderSummary(w io.Writer, s ledger.Snapshot) error {
	sum := s.Summary
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	if sum.StepsGoalSet {
		fmt.Fprintf(tw, "Steps\t%d / %d\t%d%%\t%s\n", s.Stats.Steps, s.Goals.Steps, sum.StepsProgressPct, bar(sum.StepsBarPct))
	} else {
		fmt.Fprintf(tw, "Steps\t%d\tno goal\t\n", s.Stats.Steps)
	}

	if sum.CaloriesGoalSet {
		fmt.Fprintf(tw, "Calories\t%d / %d\t%d%%\t%s\n", s.Stats.CaloriesConsumed, s.Goals.Calories, sum.CaloriesProgressPct, bar(sum.CaloriesBarPct))
	} else {
		fmt.Fprintf(tw, "Calories\t%d\tno goal\t\n", s.Stats.CaloriesConsumed)
	}

	fmt.Fprintf(tw, "Burned\t%d\t\t\n", s.Stats.CaloriesBurned)
	fmt.Fprintf(tw, "Net calories\t%d\t\t\n", sum.NetCalories)
	fmt.Fprintf(tw, "Workouts\t%d/%d completed\t\t\n", sum.CompletedCount, sum.TotalCount)

	switch {
	case sum.Weight != nil:
		fmt.Fprintf(tw, "Weight\t%d / %d lbs\t%s\t%s\n", sum.Weight.Current, sum.Weight.Goal, sum.Weight.Message, bar(sum.Weight.BarPct))
	case sum.CurrentWeightSet:
		fmt.Fprintf(tw, "Weight\t%d lbs\tno goal\t\n", s.CurrentWeight)
	default:
		fmt.Fprint(tw, "Weight\tN/A\t\t\n")
	}

	return tw.Flush()
}
