package tracker

import (
	"context"
	"sync"

	"github.com/2beens/fittracker/internal/ledger"
	"github.com/2beens/fittracker/internal/telemetry/metrics"
	"github.com/2beens/fittracker/internal/telemetry/tracing"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

type AddWorkoutResponse struct {
	Added    bool                 `json:"added"`
	Workout  *ledger.WorkoutEntry `json:"workout,omitempty"`
	Snapshot ledger.Snapshot      `json:"snapshot"`
}

// ChangeResponse carries the ledger state after an operation. Applied is
// false when the operation was a no-op (e.g. unknown workout id).
type ChangeResponse struct {
	Applied  bool            `json:"applied"`
	Snapshot ledger.Snapshot `json:"snapshot"`
}

type WorkoutsResponse struct {
	Workouts []ledger.WorkoutEntry `json:"workouts"`
	Total    int                   `json:"total"`
}

// Service owns the session ledger. The HTTP server calls it concurrently,
// so each operation runs under the lock from start to finish, derived views
// included.
type Service struct {
	mu      sync.Mutex
	ledger  *ledger.Ledger
	metrics *metrics.Manager
}

func NewService(l *ledger.Ledger, metricsManager *metrics.Manager) *Service {
	s := &Service{
		ledger:  l,
		metrics: metricsManager,
	}
	s.updateGauges()
	return s
}

func (s *Service) Snapshot(ctx context.Context) ledger.Snapshot {
	_, span := tracing.GlobalTracer.Start(ctx, "service.ledger.snapshot")
	defer span.End()

	s.mu.Lock()
	defer s.mu.Unlock()

	return s.ledger.Snapshot()
}

func (s *Service) Summary(ctx context.Context) ledger.Summary {
	_, span := tracing.GlobalTracer.Start(ctx, "service.ledger.summary")
	defer span.End()

	s.mu.Lock()
	defer s.mu.Unlock()

	return s.ledger.Summary()
}

func (s *Service) Workouts(ctx context.Context) WorkoutsResponse {
	_, span := tracing.GlobalTracer.Start(ctx, "service.ledger.workouts")
	defer span.End()

	s.mu.Lock()
	defer s.mu.Unlock()

	workouts := s.ledger.Workouts()
	return WorkoutsResponse{
		Workouts: workouts,
		Total:    len(workouts),
	}
}

func (s *Service) AddWorkout(ctx context.Context, draft ledger.Draft) AddWorkoutResponse {
	_, span := tracing.GlobalTracer.Start(ctx, "service.ledger.workouts.add")
	defer span.End()

	s.mu.Lock()
	defer s.mu.Unlock()

	entry, added := s.ledger.AddWorkout(draft)
	span.SetAttributes(attribute.Bool("workout.added", added))
	if !added {
		s.metrics.CounterDraftsRejected.Inc()
		log.Tracef("incomplete workout draft ignored: name [%s] sets [%s] reps [%s]", draft.Name, draft.Sets, draft.Reps)
		return AddWorkoutResponse{
			Added:    false,
			Snapshot: s.ledger.Snapshot(),
		}
	}

	span.SetAttributes(attribute.Int64("workout.id", entry.ID))
	s.metrics.CounterWorkoutsAdded.Inc()
	s.updateGauges()
	log.Debugf("workout added: %d [%s] [%s] %dx%d", entry.ID, entry.Name, entry.Category, entry.Sets, entry.Reps)

	return AddWorkoutResponse{
		Added:    true,
		Workout:  &entry,
		Snapshot: s.ledger.Snapshot(),
	}
}

func (s *Service) ToggleWorkout(ctx context.Context, id int64) ChangeResponse {
	_, span := tracing.GlobalTracer.Start(ctx, "service.ledger.workouts.toggle")
	defer span.End()
	span.SetAttributes(attribute.Int64("workout.id", id))

	s.mu.Lock()
	defer s.mu.Unlock()

	toggled := s.ledger.ToggleCompletion(id)
	if toggled {
		s.metrics.CounterWorkoutToggles.Inc()
		s.updateGauges()
		log.Debugf("workout %d completion toggled", id)
	} else {
		log.Tracef("toggle workout %d: not found", id)
	}

	return ChangeResponse{
		Applied:  toggled,
		Snapshot: s.ledger.Snapshot(),
	}
}

func (s *Service) RemoveWorkout(ctx context.Context, id int64) ChangeResponse {
	_, span := tracing.GlobalTracer.Start(ctx, "service.ledger.workouts.remove")
	defer span.End()
	span.SetAttributes(attribute.Int64("workout.id", id))

	s.mu.Lock()
	defer s.mu.Unlock()

	removed := s.ledger.RemoveWorkout(id)
	if removed {
		s.metrics.CounterWorkoutsRemoved.Inc()
		s.updateGauges()
		log.Debugf("workout %d removed", id)
	} else {
		log.Tracef("remove workout %d: not found", id)
	}

	return ChangeResponse{
		Applied:  removed,
		Snapshot: s.ledger.Snapshot(),
	}
}

func (s *Service) SetSteps(ctx context.Context, raw string) ChangeResponse {
	return s.update(ctx, "steps", func() bool {
		s.ledger.SetSteps(raw)
		return true
	})
}

func (s *Service) SetCaloriesConsumed(ctx context.Context, raw string) ChangeResponse {
	return s.update(ctx, "calories_consumed", func() bool {
		s.ledger.SetCaloriesConsumed(raw)
		return true
	})
}

func (s *Service) SetGoal(ctx context.Context, field ledger.GoalField, raw string) ChangeResponse {
	return s.update(ctx, "goal_"+field.String(), func() bool {
		return s.ledger.SetGoal(field, raw)
	})
}

func (s *Service) SetCurrentWeight(ctx context.Context, raw string) ChangeResponse {
	return s.update(ctx, "current_weight", func() bool {
		s.ledger.SetCurrentWeight(raw)
		return true
	})
}

func (s *Service) update(ctx context.Context, field string, apply func() bool) ChangeResponse {
	_, span := tracing.GlobalTracer.Start(ctx, "service.ledger.update")
	defer span.End()
	span.SetAttributes(attribute.String("ledger.field", field))

	s.mu.Lock()
	defer s.mu.Unlock()

	applied := apply()
	if applied {
		s.metrics.CounterLedgerUpdates.WithLabelValues(field).Inc()
		log.Tracef("ledger field [%s] updated", field)
	} else {
		log.Tracef("ledger field [%s] unknown, ignored", field)
	}

	return ChangeResponse{
		Applied:  applied,
		Snapshot: s.ledger.Snapshot(),
	}
}

// updateGauges must be called with the lock held (or before the service is shared).
func (s *Service) updateGauges() {
	s.metrics.GaugeWorkouts.Set(float64(s.ledger.TotalCount()))
	s.metrics.GaugeCompletedWorkouts.Set(float64(s.ledger.CompletedCount()))
}
