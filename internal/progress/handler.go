package progress

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/2beens/fitplan/internal/auth"
	"github.com/2beens/fitplan/internal/plan"
	"github.com/2beens/fitplan/internal/subscription"
	"github.com/2beens/fitplan/internal/telemetry/tracing"
	"github.com/2beens/fitplan/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=progress_test

type progressService interface {
	RecordCompletion(ctx context.Context, e CompletionEvent) (*DailyProgressRecord, error)
	Progress(ctx context.Context, userID, planID string) (*AggregateProgress, error)
}

type userPlans interface {
	ActivePlan(ctx context.Context, userID string) (*plan.Plan, error)
	Plan(ctx context.Context, userID, planID string) (*plan.Plan, error)
}

type tierResolver interface {
	Tier(ctx context.Context, userID string) (subscription.Tier, error)
}

type Handler struct {
	service progressService
	plans   userPlans
	tiers   tierResolver
}

func NewHandler(service progressService, plans userPlans, tiers tierResolver) *Handler {
	return &Handler{
		service: service,
		plans:   plans,
		tiers:   tiers,
	}
}

type completionRequest struct {
	CaloriesBurned  float64  `json:"caloriesBurned"`
	DurationSeconds int      `json:"durationSeconds"`
	ExerciseNames   []string `json:"exerciseNames"`
	// Date is optional, formatted as 2006-01-02
	Date string `json:"date"`
}

type completionResponse struct {
	Record *DailyProgressRecord `json:"record"`
	State  DayState             `json:"state"`
}

// HandleComplete serves POST /progress/day/{day}/{kind}.
func (h *Handler) HandleComplete(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.progress.complete")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	vars := mux.Vars(r)
	day, err := strconv.Atoi(vars["day"])
	if err != nil {
		http.Error(w, "invalid day", http.StatusBadRequest)
		return
	}
	kind, err := ParseKind(vars["kind"])
	if err != nil {
		http.Error(w, "invalid completion kind", http.StatusBadRequest)
		return
	}

	var req completionRequest
	if r.ContentLength != 0 {
		if r.Header.Get("Content-Type") != "application/json" {
			http.Error(w, "invalid content type", http.StatusBadRequest)
			return
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Errorf("record completion, unmarshal json params: %s", err)
			http.Error(w, "invalid completion request", http.StatusBadRequest)
			return
		}
	}

	var date time.Time
	if req.Date != "" {
		date, err = time.Parse(time.DateOnly, req.Date)
		if err != nil {
			http.Error(w, "invalid date", http.StatusBadRequest)
			return
		}
	}

	active, err := h.plans.ActivePlan(ctx, userID)
	if err != nil {
		if errors.Is(err, plan.ErrPlanNotFound) {
			http.Error(w, "plan not found", http.StatusNotFound)
			return
		}
		log.Errorf("record completion, get active plan for %s: %s", userID, err)
		http.Error(w, "record completion failed", http.StatusInternalServerError)
		return
	}

	tier, err := h.tiers.Tier(ctx, userID)
	if err != nil {
		log.Errorf("record completion, resolve tier for %s: %s", userID, err)
		http.Error(w, "record completion failed", http.StatusInternalServerError)
		return
	}
	if !subscription.CanAccessDay(tier, day) {
		http.Error(w, "day locked for current subscription", http.StatusForbidden)
		return
	}

	record, err := h.service.RecordCompletion(ctx, CompletionEvent{
		UserID:          userID,
		PlanID:          active.ID,
		DayNumber:       day,
		Kind:            kind,
		CaloriesBurned:  req.CaloriesBurned,
		DurationSeconds: req.DurationSeconds,
		ExerciseNames:   req.ExerciseNames,
		Date:            date,
	})
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidEvent), errors.Is(err, ErrInvalidKind):
			http.Error(w, err.Error(), http.StatusBadRequest)
		case errors.Is(err, ErrRecordNotFound):
			http.Error(w, err.Error(), http.StatusNotFound)
		default:
			log.Errorf("record completion for %s day %d: %s", userID, day, err)
			http.Error(w, "record completion failed", http.StatusInternalServerError)
		}
		return
	}

	pkg.WriteJSON(w, completionResponse{
		Record: record,
		State:  record.State(),
	}, http.StatusOK)
}

// HandleGet serves GET /progress, for the active plan unless planId is given.
func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.progress.get")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	var (
		p   *plan.Plan
		err error
	)
	if planID := r.URL.Query().Get("planId"); planID != "" {
		p, err = h.plans.Plan(ctx, userID, planID)
	} else {
		p, err = h.plans.ActivePlan(ctx, userID)
	}
	if err != nil {
		if errors.Is(err, plan.ErrPlanNotFound) {
			http.Error(w, "plan not found", http.StatusNotFound)
			return
		}
		log.Errorf("get progress, get plan for %s: %s", userID, err)
		http.Error(w, "get progress failed", http.StatusInternalServerError)
		return
	}
	planID := p.ID

	agg, err := h.service.Progress(ctx, userID, planID)
	if err != nil {
		log.Errorf("get progress for %s plan %s: %s", userID, planID, err)
		http.Error(w, "get progress failed", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, agg, http.StatusOK)
}
