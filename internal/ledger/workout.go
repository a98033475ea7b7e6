package ledger

import (
	"strconv"
	"strings"
)

// Category can be one of:
//   - strength
//   - cardio
//   - flexibility
//   - balance
type Category string

const (
	CategoryStrength    Category = "strength"
	CategoryCardio      Category = "cardio"
	CategoryFlexibility Category = "flexibility"
	CategoryBalance     Category = "balance"
)

func (c Category) String() string {
	return string(c)
}

func (c Category) IsValid() bool {
	switch c {
	case CategoryStrength,
		CategoryCardio,
		CategoryFlexibility,
		CategoryBalance:
		return true
	default:
		return false
	}
}

// Label returns the capitalized category, as shown next to a workout.
func (c Category) Label() string {
	s := c.String()
	if s == "" {
		return ""
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// ParseCategory falls back to strength for empty or unknown input.
func ParseCategory(raw string) Category {
	c := Category(strings.ToLower(strings.TrimSpace(raw)))
	if !c.IsValid() {
		return CategoryStrength
	}
	return c
}

type WorkoutEntry struct {
	ID       int64    `json:"id"`
	Name     string   `json:"name"`
	Category Category `json:"category"`
	// Weight in pounds, nil when not applicable.
	Weight    *float64 `json:"weight,omitempty"`
	Sets      int      `json:"sets"`
	Reps      int      `json:"reps"`
	Completed bool     `json:"completed"`
}

func (w WorkoutEntry) WeightLabel() string {
	if w.Weight == nil {
		return "N/A"
	}
	return strconv.FormatFloat(*w.Weight, 'f', -1, 64) + " lbs"
}

func (w WorkoutEntry) clone() WorkoutEntry {
	if w.Weight != nil {
		weight := *w.Weight
		w.Weight = &weight
	}
	return w
}

// Draft is a workout as the add-form holds it, before admission.
type Draft struct {
	Name     string   `json:"name"`
	Category string   `json:"category"`
	Weight   RawValue `json:"weight"`
	Sets     RawValue `json:"sets"`
	Reps     RawValue `json:"reps"`
}

// NewDraft returns an empty form, the state a caller resets to after
// a successful AddWorkout.
func NewDraft() Draft {
	return Draft{
		Category: CategoryStrength.String(),
	}
}

func (d Draft) complete() bool {
	return strings.TrimSpace(d.Name) != "" &&
		strings.TrimSpace(string(d.Sets)) != "" &&
		strings.TrimSpace(string(d.Reps)) != ""
}
