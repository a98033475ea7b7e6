package tracker

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"mime"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/codes"

	"github.com/2beens/fittracker/internal/ledger"
	"github.com/2beens/fittracker/internal/telemetry/tracing"
	"github.com/2beens/fittracker/pkg"
)

//go:generate mockgen -source=$GOFILE -destination=service_mocks_test.go -package=tracker_test

type ledgerService interface {
	Snapshot(ctx context.Context) ledger.Snapshot
	Summary(ctx context.Context) ledger.Summary
	Workouts(ctx context.Context) WorkoutsResponse
	AddWorkout(ctx context.Context, draft ledger.Draft) AddWorkoutResponse
	ToggleWorkout(ctx context.Context, id int64) ChangeResponse
	RemoveWorkout(ctx context.Context, id int64) ChangeResponse
	SetSteps(ctx context.Context, raw string) ChangeResponse
	SetCaloriesConsumed(ctx context.Context, raw string) ChangeResponse
	SetGoal(ctx context.Context, field ledger.GoalField, raw string) ChangeResponse
	SetCurrentWeight(ctx context.Context, raw string) ChangeResponse
}

var errInvalidContentType = errors.New("invalid content type")

// ValueRequest is the body of every single-value update, e.g. {"value": "5000"}.
type ValueRequest struct {
	Value ledger.RawValue `json:"value"`
}

type Handler struct {
	service ledgerService
}

func NewHandler(service ledgerService) *Handler {
	return &Handler{
		service: service,
	}
}

func (handler *Handler) SetupRoutes(r *mux.Router) {
	r.HandleFunc("/ledger", handler.HandleSnapshot).Methods("GET", "OPTIONS").Name("ledger-snapshot")
	r.HandleFunc("/ledger/summary", handler.HandleSummary).Methods("GET", "OPTIONS").Name("ledger-summary")

	r.HandleFunc("/workouts", handler.HandleListWorkouts).Methods("GET", "OPTIONS").Name("list-workouts")
	r.HandleFunc("/workouts", handler.HandleAddWorkout).Methods("POST", "OPTIONS").Name("new-workout")
	r.HandleFunc("/workouts/{id:[0-9]+}/toggle", handler.HandleToggleWorkout).Methods("PUT", "OPTIONS").Name("toggle-workout")
	r.HandleFunc("/workouts/{id:[0-9]+}", handler.HandleRemoveWorkout).Methods("DELETE", "OPTIONS").Name("remove-workout")

	r.HandleFunc("/stats/steps", handler.HandleSetSteps).Methods("PUT", "OPTIONS").Name("set-steps")
	r.HandleFunc("/stats/calories-consumed", handler.HandleSetCaloriesConsumed).Methods("PUT", "OPTIONS").Name("set-calories-consumed")
	r.HandleFunc("/goals/{field:weight|steps|calories}", handler.HandleSetGoal).Methods("PUT", "OPTIONS").Name("set-goal")
	r.HandleFunc("/weight/current", handler.HandleSetCurrentWeight).Methods("PUT", "OPTIONS").Name("set-current-weight")
}

func (handler *Handler) HandleSnapshot(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.ledger.snapshot")
	defer span.End()

	pkg.WriteJSON(w, handler.service.Snapshot(ctx), http.StatusOK)
}

func (handler *Handler) HandleSummary(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.ledger.summary")
	defer span.End()

	pkg.WriteJSON(w, handler.service.Summary(ctx), http.StatusOK)
}

func (handler *Handler) HandleListWorkouts(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.list")
	defer span.End()

	pkg.WriteJSON(w, handler.service.Workouts(ctx), http.StatusOK)
}

func (handler *Handler) HandleAddWorkout(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.new")
	defer span.End()

	var draft ledger.Draft
	if err := decodeJSONBody(r, &draft); err != nil {
		span.SetStatus(codes.Error, err.Error())
		log.Tracef("new workout, decode draft: %s", err)
		http.Error(w, "add workout failed, invalid request", http.StatusBadRequest)
		return
	}

	resp := handler.service.AddWorkout(ctx, draft)
	if !resp.Added {
		// incomplete drafts are not an error, the form keeps its values
		pkg.WriteJSON(w, resp, http.StatusOK)
		return
	}

	pkg.WriteJSON(w, resp, http.StatusCreated)
}

func (handler *Handler) HandleToggleWorkout(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.toggle")
	defer span.End()

	id, err := workoutID(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	pkg.WriteJSON(w, handler.service.ToggleWorkout(ctx, id), http.StatusOK)
}

func (handler *Handler) HandleRemoveWorkout(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.remove")
	defer span.End()

	id, err := workoutID(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	pkg.WriteJSON(w, handler.service.RemoveWorkout(ctx, id), http.StatusOK)
}

func (handler *Handler) HandleSetSteps(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.stats.steps")
	defer span.End()

	value, ok := readValue(w, r)
	if !ok {
		return
	}
	pkg.WriteJSON(w, handler.service.SetSteps(ctx, value), http.StatusOK)
}

func (handler *Handler) HandleSetCaloriesConsumed(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.stats.calories")
	defer span.End()

	value, ok := readValue(w, r)
	if !ok {
		return
	}
	pkg.WriteJSON(w, handler.service.SetCaloriesConsumed(ctx, value), http.StatusOK)
}

func (handler *Handler) HandleSetGoal(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.goals.set")
	defer span.End()

	field := ledger.GoalField(mux.Vars(r)["field"])
	if !field.IsValid() {
		http.Error(w, "error, unknown goal", http.StatusBadRequest)
		return
	}

	value, ok := readValue(w, r)
	if !ok {
		return
	}
	pkg.WriteJSON(w, handler.service.SetGoal(ctx, field, value), http.StatusOK)
}

func (handler *Handler) HandleSetCurrentWeight(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.weight.current")
	defer span.End()

	value, ok := readValue(w, r)
	if !ok {
		return
	}
	pkg.WriteJSON(w, handler.service.SetCurrentWeight(ctx, value), http.StatusOK)
}

func readValue(w http.ResponseWriter, r *http.Request) (string, bool) {
	var req ValueRequest
	if err := decodeJSONBody(r, &req); err != nil {
		log.Tracef("decode value request [%s]: %s", r.URL.Path, err)
		http.Error(w, "invalid request", http.StatusBadRequest)
		return "", false
	}
	return req.Value.String(), true
}

func decodeJSONBody(r *http.Request, v any) error {
	mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if err != nil || mediaType != pkg.ContentType.JSON {
		return errInvalidContentType
	}
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return fmt.Errorf("unmarshal json body: %w", err)
	}
	return nil
}

func workoutID(r *http.Request) (int64, error) {
	idStr := mux.Vars(r)["id"]
	if idStr == "" {
		return 0, errors.New("error, id empty")
	}
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		return 0, errors.New("error, id NaN")
	}
	return id, nil
}
