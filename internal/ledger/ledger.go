// Package ledger holds the state of one tracking session: logged workouts,
// today's activity stats, goals and the current body weight.
//
// A Ledger is not safe for concurrent use. Every operation is a complete
// state transition; none of them fail. Malformed numbers are read as 0 and
// incomplete workout drafts are ignored.
package ledger

import (
	"slices"
	"strings"
	"time"
)

const (
	DefaultStepsGoal    = 10000
	DefaultCaloriesGoal = 2000
)

// GoalField can be one of:
//   - weight
//   - steps
//   - calories
type GoalField string

const (
	GoalWeight   GoalField = "weight"
	GoalSteps    GoalField = "steps"
	GoalCalories GoalField = "calories"
)

func (f GoalField) String() string {
	return string(f)
}

func (f GoalField) IsValid() bool {
	switch f {
	case GoalWeight, GoalSteps, GoalCalories:
		return true
	default:
		return false
	}
}

type DailyStats struct {
	Steps            int `json:"steps"`
	CaloriesConsumed int `json:"caloriesConsumed"`
	CaloriesBurned   int `json:"caloriesBurned"`
}

type Goals struct {
	Weight   int `json:"weight"`
	Steps    int `json:"steps"`
	Calories int `json:"calories"`
}

type Ledger struct {
	workouts         []WorkoutEntry
	steps            int
	caloriesConsumed int
	goals            Goals
	currentWeight    int

	now    func() time.Time
	lastID int64
}

type Option func(*Ledger)

// WithClock replaces the clock used to mint workout ids.
func WithClock(now func() time.Time) Option {
	return func(l *Ledger) {
		l.now = now
	}
}

func New(opts ...Option) *Ledger {
	l := &Ledger{
		workouts: []WorkoutEntry{},
		goals: Goals{
			Steps:    DefaultStepsGoal,
			Calories: DefaultCaloriesGoal,
		},
		now: time.Now,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// CaloriesBurnedFor estimates calories burned by walking, 0.04 kcal per step,
// rounded to the nearest integer.
func CaloriesBurnedFor(steps int) int {
	if steps <= 0 {
		return 0
	}
	// split to stay clear of overflow; r*4/100 never lands on .5
	q, r := steps/100, steps%100
	return q*4 + (r*4+50)/100
}

// AddWorkout admits the draft if its name, sets and reps are filled in, and
// reports whether it did. The new entry goes to the end of the list.
func (l *Ledger) AddWorkout(draft Draft) (WorkoutEntry, bool) {
	if !draft.complete() {
		return WorkoutEntry{}, false
	}

	sets := ParseCount(string(draft.Sets))
	reps := ParseCount(string(draft.Reps))
	if sets <= 0 || reps <= 0 {
		return WorkoutEntry{}, false
	}

	entry := WorkoutEntry{
		ID:        l.nextID(),
		Name:      strings.TrimSpace(draft.Name),
		Category:  ParseCategory(draft.Category),
		Weight:    parseWeight(string(draft.Weight)),
		Sets:      sets,
		Reps:      reps,
		Completed: false,
	}
	l.workouts = append(l.workouts, entry)

	return entry.clone(), true
}

// ToggleCompletion flips the completed flag of the workout with the given id.
// Returns false if there is no such workout.
func (l *Ledger) ToggleCompletion(id int64) bool {
	i := l.indexOf(id)
	if i < 0 {
		return false
	}
	l.workouts[i].Completed = !l.workouts[i].Completed
	return true
}

func (l *Ledger) RemoveWorkout(id int64) bool {
	i := l.indexOf(id)
	if i < 0 {
		return false
	}
	l.workouts = slices.Delete(l.workouts, i, i+1)
	return true
}

func (l *Ledger) Workout(id int64) (WorkoutEntry, bool) {
	i := l.indexOf(id)
	if i < 0 {
		return WorkoutEntry{}, false
	}
	return l.workouts[i].clone(), true
}

// Workouts returns a copy of the workouts in insertion order.
func (l *Ledger) Workouts() []WorkoutEntry {
	workouts := make([]WorkoutEntry, 0, len(l.workouts))
	for _, w := range l.workouts {
		workouts = append(workouts, w.clone())
	}
	return workouts
}

// SetSteps also moves the burned calories, they are a function of steps only.
func (l *Ledger) SetSteps(raw string) {
	l.steps = ParseCount(raw)
}

func (l *Ledger) SetCaloriesConsumed(raw string) {
	l.caloriesConsumed = ParseCount(raw)
}

// SetGoal returns false for an unknown field, leaving goals untouched.
func (l *Ledger) SetGoal(field GoalField, raw string) bool {
	value := ParseCount(raw)
	switch field {
	case GoalWeight:
		l.goals.Weight = value
	case GoalSteps:
		l.goals.Steps = value
	case GoalCalories:
		l.goals.Calories = value
	default:
		return false
	}
	return true
}

func (l *Ledger) SetCurrentWeight(raw string) {
	l.currentWeight = ParseCount(raw)
}

func (l *Ledger) Stats() DailyStats {
	return DailyStats{
		Steps:            l.steps,
		CaloriesConsumed: l.caloriesConsumed,
		CaloriesBurned:   CaloriesBurnedFor(l.steps),
	}
}

func (l *Ledger) Goals() Goals {
	return l.goals
}

func (l *Ledger) CurrentWeight() int {
	return l.currentWeight
}

func (l *Ledger) indexOf(id int64) int {
	return slices.IndexFunc(l.workouts, func(w WorkoutEntry) bool {
		return w.ID == id
	})
}

// nextID is the creation time in milliseconds, bumped past the last id when
// the clock has not moved on (or went backwards).
func (l *Ledger) nextID() int64 {
	id := l.now().UnixMilli()
	if id <= l.lastID {
		id = l.lastID + 1
	}
	l.lastID = id
	return id
}
