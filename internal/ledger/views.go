package ledger

import (
	"fmt"
	"math"
)

// WeightDirection can be one of:
//   - to_lose
//   - to_gain
//   - reached
type WeightDirection string

const (
	WeightToLose  WeightDirection = "to_lose"
	WeightToGain  WeightDirection = "to_gain"
	WeightReached WeightDirection = "reached"
)

type WeightProgress struct {
	Current int `json:"current"`
	Goal    int `json:"goal"`
	// Delta is current - goal: positive means weight to lose.
	Delta     int             `json:"delta"`
	Remaining int             `json:"remaining"`
	Direction WeightDirection `json:"direction"`
	BarPct    float64         `json:"barPct"`
	Message   string          `json:"message"`
}

type Summary struct {
	NetCalories int `json:"netCalories"`

	StepsGoalSet     bool    `json:"stepsGoalSet"`
	StepsProgressPct int     `json:"stepsProgressPct"`
	StepsBarPct      float64 `json:"stepsBarPct"`

	CaloriesGoalSet     bool    `json:"caloriesGoalSet"`
	CaloriesProgressPct int     `json:"caloriesProgressPct"`
	CaloriesBarPct      float64 `json:"caloriesBarPct"`

	CompletedCount int `json:"completedCount"`
	TotalCount     int `json:"totalCount"`

	CurrentWeightSet bool `json:"currentWeightSet"`
	// Weight is nil unless both the current weight and the goal are set.
	Weight *WeightProgress `json:"weight,omitempty"`
}

// Snapshot is everything a view needs to re-render after an operation.
type Snapshot struct {
	Workouts      []WorkoutEntry `json:"workouts"`
	Stats         DailyStats     `json:"stats"`
	Goals         Goals          `json:"goals"`
	CurrentWeight int            `json:"currentWeight"`
	Summary       Summary        `json:"summary"`
}

// BarWidth clamps a progress percentage to [0, 100].
func BarWidth(pct float64) float64 {
	if math.IsNaN(pct) || pct < 0 {
		return 0
	}
	return math.Min(100, pct)
}

func ratioPct(value, goal int) float64 {
	if goal <= 0 {
		return 0
	}
	return float64(value) / float64(goal) * 100
}

// ProgressPct is value as a rounded percentage of goal, 0 when there is no
// goal. It is not clamped; use BarWidth for drawing. Ratios beyond the int
// range saturate at math.MaxInt.
func ProgressPct(value, goal int) int {
	pct := math.Round(ratioPct(value, goal))
	if pct >= math.MaxInt {
		return math.MaxInt
	}
	return int(pct)
}

func (l *Ledger) NetCalories() int {
	stats := l.Stats()
	return stats.CaloriesConsumed - stats.CaloriesBurned
}

func (l *Ledger) StepsProgressPct() int {
	return ProgressPct(l.steps, l.goals.Steps)
}

func (l *Ledger) CaloriesProgressPct() int {
	return ProgressPct(l.caloriesConsumed, l.goals.Calories)
}

func (l *Ledger) CompletedCount() int {
	completed := 0
	for _, w := range l.workouts {
		if w.Completed {
			completed++
		}
	}
	return completed
}

func (l *Ledger) TotalCount() int {
	return len(l.workouts)
}

// WeightProgress is absent (false) while either the current weight or the
// weight goal is unset.
func (l *Ledger) WeightProgress() (WeightProgress, bool) {
	current, goal := l.currentWeight, l.goals.Weight
	if current <= 0 || goal <= 0 {
		return WeightProgress{}, false
	}

	wp := WeightProgress{
		Current: current,
		Goal:    goal,
		Delta:   current - goal,
		// closeness to the goal from either side: goal/current when above it,
		// current/goal when below it
		BarPct: BarWidth(float64(min(current, goal)) / float64(max(current, goal)) * 100),
	}

	switch {
	case wp.Delta > 0:
		wp.Direction = WeightToLose
		wp.Remaining = wp.Delta
		wp.Message = fmt.Sprintf("%d lbs to lose", wp.Remaining)
	case wp.Delta < 0:
		wp.Direction = WeightToGain
		wp.Remaining = -wp.Delta
		wp.Message = fmt.Sprintf("%d lbs to gain", wp.Remaining)
	default:
		wp.Direction = WeightReached
		wp.Message = "You've reached your goal weight!"
	}

	return wp, true
}

func (l *Ledger) Summary() Summary {
	s := Summary{
		NetCalories: l.NetCalories(),

		StepsGoalSet:     l.goals.Steps > 0,
		StepsProgressPct: l.StepsProgressPct(),
		StepsBarPct:      BarWidth(ratioPct(l.steps, l.goals.Steps)),

		CaloriesGoalSet:     l.goals.Calories > 0,
		CaloriesProgressPct: l.CaloriesProgressPct(),
		CaloriesBarPct:      BarWidth(ratioPct(l.caloriesConsumed, l.goals.Calories)),

		CompletedCount: l.CompletedCount(),
		TotalCount:     l.TotalCount(),

		CurrentWeightSet: l.currentWeight > 0,
	}

	if wp, ok := l.WeightProgress(); ok {
		s.Weight = &wp
	}

	return s
}

func (l *Ledger) Snapshot() Snapshot {
	return Snapshot{
		Workouts:      l.Workouts(),
		Stats:         l.Stats(),
		Goals:         l.Goals(),
		CurrentWeight: l.CurrentWeight(),
		Summary:       l.Summary(),
	}
}
