package plan

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/2beens/fitplan/internal/auth"
	"github.com/2beens/fitplan/internal/subscription"
	"github.com/2beens/fitplan/internal/telemetry/tracing"
	"github.com/2beens/fitplan/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=plan_test

type plansService interface {
	CreatePlan(ctx context.Context, userID string, durationDays int, name string) (*Plan, error)
	ActivePlan(ctx context.Context, userID string) (*Plan, error)
	Day(ctx context.Context, userID string, day int) (*PlanDay, error)
}

type tierResolver interface {
	Tier(ctx context.Context, userID string) (subscription.Tier, error)
}

type Handler struct {
	service plansService
	tiers   tierResolver
}

func NewHandler(service plansService, tiers tierResolver) *Handler {
	return &Handler{
		service: service,
		tiers:   tiers,
	}
}

type createPlanRequest struct {
	Name string `json:"name"`
}

type planResponse struct {
	*Plan
	Tier           subscription.Tier `json:"tier"`
	AccessibleDays int               `json:"accessibleDays"`
}

func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.plan.create")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	var req createPlanRequest
	if r.ContentLength != 0 {
		if r.Header.Get("Content-Type") != "application/json" {
			http.Error(w, "invalid content type", http.StatusBadRequest)
			return
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Errorf("create plan, unmarshal json params: %s", err)
			http.Error(w, "invalid create plan request", http.StatusBadRequest)
			return
		}
	}

	tier, err := h.tiers.Tier(ctx, userID)
	if err != nil {
		log.Errorf("create plan, resolve tier for %s: %s", userID, err)
		http.Error(w, "create plan failed", http.StatusInternalServerError)
		return
	}

	plan, err := h.service.CreatePlan(ctx, userID, subscription.GenerationDays(tier), req.Name)
	if err != nil {
		log.Errorf("create plan for %s: %s", userID, err)
		if errors.Is(err, ErrActivePlanExists) {
			http.Error(w, "active plan already exists", http.StatusConflict)
			return
		}
		http.Error(w, "create plan failed", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, planResponse{
		Plan:           plan,
		Tier:           tier,
		AccessibleDays: min(tier.Duration(), plan.Duration),
	}, http.StatusCreated)
}

func (h *Handler) HandleGetCurrent(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.plan.current")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	plan, err := h.service.ActivePlan(ctx, userID)
	if err != nil {
		if errors.Is(err, ErrPlanNotFound) {
			http.Error(w, "plan not found", http.StatusNotFound)
			return
		}
		log.Errorf("get current plan for %s: %s", userID, err)
		http.Error(w, "get plan failed", http.StatusInternalServerError)
		return
	}

	tier, err := h.tiers.Tier(ctx, userID)
	if err != nil {
		log.Errorf("get current plan, resolve tier for %s: %s", userID, err)
		http.Error(w, "get plan failed", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, planResponse{
		Plan:           plan,
		Tier:           tier,
		AccessibleDays: min(tier.Duration(), plan.Duration),
	}, http.StatusOK)
}

func (h *Handler) HandleGetDay(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.plan.day")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	day, err := strconv.Atoi(mux.Vars(r)["day"])
	if err != nil {
		http.Error(w, "invalid day", http.StatusBadRequest)
		return
	}

	tier, err := h.tiers.Tier(ctx, userID)
	if err != nil {
		log.Errorf("get plan day, resolve tier for %s: %s", userID, err)
		http.Error(w, "get plan day failed", http.StatusInternalServerError)
		return
	}

	planDay, err := h.service.Day(ctx, userID, day)
	if err != nil {
		if errors.Is(err, ErrPlanNotFound) || errors.Is(err, ErrDayOutOfRange) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		log.Errorf("get plan day %d for %s: %s", day, userID, err)
		http.Error(w, "get plan day failed", http.StatusInternalServerError)
		return
	}

	if !subscription.CanAccessDay(tier, day) {
		http.Error(w, "day locked for current subscription", http.StatusForbidden)
		return
	}

	pkg.WriteJSON(w, planDay, http.StatusOK)
}
