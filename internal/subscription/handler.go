package subscription

import (
	"context"
	"crypto/subtle"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/2beens/fitplan/internal/auth"
	"github.com/2beens/fitplan/internal/telemetry/tracing"
	"github.com/2beens/fitplan/pkg"

	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=subscription_test

const PaymentSecretHeader = "X-Fitplan-Payment-Secret"

type activator interface {
	Tier(ctx context.Context, userID string) (Tier, error)
	Activate(ctx context.Context, userID string, tier Tier) (*Activation, error)
}

type Handler struct {
	service        activator
	callbackSecret string
}

func NewHandler(service activator, callbackSecret string) *Handler {
	return &Handler{
		service:        service,
		callbackSecret: callbackSecret,
	}
}

type activateRequest struct {
	UserID string `json:"userId"`
	Tier   string `json:"tier"`
}

type subscriptionResponse struct {
	Tier           Tier `json:"tier"`
	AccessDays     int  `json:"accessDays"`
	GenerationDays int  `json:"generationDays"`
}

// HandleActivate is called by the payment verification function once a
// purchase has been confirmed.
func (h *Handler) HandleActivate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.subscription.activate")
	defer span.End()

	secret := r.Header.Get(PaymentSecretHeader)
	if h.callbackSecret == "" || subtle.ConstantTimeCompare([]byte(secret), []byte(h.callbackSecret)) != 1 {
		ip, _ := pkg.ReadUserIP(r)
		log.Warnf("subscription activate: invalid callback secret from %s", ip)
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var req activateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Errorf("subscription activate, unmarshal json params: %s", err)
		http.Error(w, "invalid activation request", http.StatusBadRequest)
		return
	}
	if req.UserID == "" {
		http.Error(w, "missing user id", http.StatusBadRequest)
		return
	}

	tier, err := ParseTier(req.Tier)
	if err != nil {
		http.Error(w, "unknown tier", http.StatusBadRequest)
		return
	}

	activation, err := h.service.Activate(ctx, req.UserID, tier)
	if err != nil {
		log.Errorf("subscription activate %s for %s: %s", tier, req.UserID, err)
		if errors.Is(err, ErrUserNotFound) {
			http.Error(w, "user not found", http.StatusNotFound)
			return
		}
		http.Error(w, "activation failed", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, activation, http.StatusOK)
}

func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.subscription.get")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	tier, err := h.service.Tier(ctx, userID)
	if err != nil {
		log.Errorf("get subscription for %s: %s", userID, err)
		http.Error(w, "failed to get subscription", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, subscriptionResponse{
		Tier:           tier,
		AccessDays:     tier.Duration(),
		GenerationDays: GenerationDays(tier),
	}, http.StatusOK)
}
