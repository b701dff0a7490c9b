package subscription

import (
	"context"
	"fmt"
	"time"

	"github.com/2beens/fitplan/internal/telemetry/tracing"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=subscription_test

type tiersStore interface {
	Tier(ctx context.Context, userID string) (Tier, error)
	Set(ctx context.Context, userID string, tier Tier, updatedAt time.Time) error
}

type planUpgrader interface {
	EnsureDuration(ctx context.Context, userID string, durationDays int) (bool, error)
}

type Activation struct {
	UserID         string `json:"userId"`
	Tier           Tier   `json:"tier"`
	AccessDays     int    `json:"accessDays"`
	GenerationDays int    `json:"generationDays"`
	PlanSuperseded bool   `json:"planSuperseded"`
}

type Service struct {
	store tiersStore
	plans planUpgrader
	now   func() time.Time
}

func NewService(store tiersStore, plans planUpgrader) *Service {
	return &Service{
		store: store,
		plans: plans,
		now:   time.Now,
	}
}

func (s *Service) Tier(ctx context.Context, userID string) (Tier, error) {
	return s.store.Tier(ctx, userID)
}

// Activate records a verified purchase. The user's active plan is replaced
// by a longer one when the new tier materializes more days than it holds.
func (s *Service) Activate(ctx context.Context, userID string, tier Tier) (_ *Activation, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.subscription.activate")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(
		attribute.String("user.id", userID),
		attribute.String("tier", string(tier)),
	)

	if _, err := ParseTier(string(tier)); err != nil {
		return nil, err
	}

	if err := s.store.Set(ctx, userID, tier, s.now()); err != nil {
		return nil, fmt.Errorf("store tier: %w", err)
	}

	days := GenerationDays(tier)
	superseded, err := s.plans.EnsureDuration(ctx, userID, days)
	if err != nil {
		return nil, fmt.Errorf("ensure plan duration: %w", err)
	}
	if superseded {
		log.Infof("subscription: user %s upgraded to %s, plan superseded with %d days", userID, tier, days)
	}

	return &Activation{
		UserID:         userID,
		Tier:           tier,
		AccessDays:     tier.Duration(),
		GenerationDays: days,
		PlanSuperseded: superseded,
	}, nil
}
