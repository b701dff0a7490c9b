package plan

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/2beens/fitplan/internal/telemetry/metrics"
	"github.com/2beens/fitplan/internal/telemetry/tracing"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=plan_test

type plansRepo interface {
	Add(ctx context.Context, p Plan) (*Plan, error)
	GetActive(ctx context.Context, userID string) (*Plan, error)
	Get(ctx context.Context, userID, planID string) (*Plan, error)
	GetLatestInactive(ctx context.Context, userID string) (*Plan, error)
}

// progressMover copies progress records of one plan onto another by day number.
type progressMover interface {
	CarryForward(ctx context.Context, userID, fromPlanID, toPlanID string, maxDay int) (int64, error)
}

type Service struct {
	repo         plansRepo
	generator    *Generator
	mover        progressMover
	metrics      *metrics.Manager
	exercisePool []ExerciseDefinition
	mealPools    MealPools
	now          func() time.Time
}

func NewService(
	repo plansRepo,
	generator *Generator,
	mover progressMover,
	metricsManager *metrics.Manager,
) *Service {
	return &Service{
		repo:         repo,
		generator:    generator,
		mover:        mover,
		metrics:      metricsManager,
		exercisePool: DefaultExercisePool(),
		mealPools:    DefaultMealPools(),
		now:          time.Now,
	}
}

// SetProgressMover sets the collaborator that moves progress onto superseding
// plans. The progress service depends on this service, so it is wired after
// construction.
func (s *Service) SetProgressMover(mover progressMover) {
	s.mover = mover
}

// CreatePlan generates the user's first plan. Use Supersede to replace an
// existing one.
func (s *Service) CreatePlan(ctx context.Context, userID string, durationDays int, name string) (_ *Plan, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.plan.create")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(
		attribute.String("user.id", userID),
		attribute.Int("plan.duration", durationDays),
	)

	existing, err := s.repo.GetActive(ctx, userID)
	if err != nil && !errors.Is(err, ErrPlanNotFound) {
		return nil, fmt.Errorf("get active plan: %w", err)
	}
	if existing != nil {
		return nil, ErrActivePlanExists
	}

	return s.generateAndStore(ctx, userID, durationDays, name, "create")
}

// Supersede replaces the active plan with a newly generated one. Progress of
// the old plan is carried forward by day number; days past the new duration
// are left behind.
func (s *Service) Supersede(ctx context.Context, userID string, durationDays int) (_ *Plan, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.plan.supersede")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(
		attribute.String("user.id", userID),
		attribute.Int("plan.duration", durationDays),
	)

	old, err := s.repo.GetActive(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get active plan: %w", err)
	}

	newPlan, err := s.generateAndStore(ctx, userID, durationDays, "", "supersede")
	if err != nil {
		return nil, err
	}

	moved, err := s.mover.CarryForward(ctx, userID, old.ID, newPlan.ID, durationDays)
	if err != nil {
		return nil, fmt.Errorf("carry progress forward from %s: %w", old.ID, err)
	}
	log.Debugf("plan service: %d progress records moved from plan %s to %s", moved, old.ID, newPlan.ID)

	return newPlan, nil
}

// EnsureDuration supersedes the active plan when it is shorter than
// durationDays. Users without a plan are left alone; their first plan is
// generated with the new duration anyway.
// When the active plan is already long enough, progress of the plan it
// superseded is carried forward again, so a retry after a failed carry-forward
// completes the move.
func (s *Service) EnsureDuration(ctx context.Context, userID string, durationDays int) (bool, error) {
	active, err := s.repo.GetActive(ctx, userID)
	if errors.Is(err, ErrPlanNotFound) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("get active plan: %w", err)
	}

	if active.Duration >= durationDays {
		if err := s.resumeCarryForward(ctx, active); err != nil {
			return false, err
		}
		return false, nil
	}

	if _, err := s.Supersede(ctx, userID, durationDays); err != nil {
		return false, err
	}
	return true, nil
}

// resumeCarryForward copies progress of the latest superseded plan onto the
// active one. Days the active plan already has are kept.
func (s *Service) resumeCarryForward(ctx context.Context, active *Plan) error {
	previous, err := s.repo.GetLatestInactive(ctx, active.UserID)
	if errors.Is(err, ErrPlanNotFound) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("get superseded plan: %w", err)
	}

	moved, err := s.mover.CarryForward(ctx, active.UserID, previous.ID, active.ID, active.Duration)
	if err != nil {
		return fmt.Errorf("carry progress forward from %s: %w", previous.ID, err)
	}
	if moved > 0 {
		log.Infof("plan service: resumed carry-forward of %d records from plan %s to %s", moved, previous.ID, active.ID)
	}
	return nil
}

func (s *Service) ActivePlan(ctx context.Context, userID string) (*Plan, error) {
	return s.repo.GetActive(ctx, userID)
}

// Plan returns a plan of the user by id, active or not.
func (s *Service) Plan(ctx context.Context, userID, planID string) (*Plan, error) {
	return s.repo.Get(ctx, userID, planID)
}

func (s *Service) Day(ctx context.Context, userID string, day int) (*PlanDay, error) {
	active, err := s.repo.GetActive(ctx, userID)
	if err != nil {
		return nil, err
	}
	return active.Day(day)
}

func (s *Service) generateAndStore(ctx context.Context, userID string, durationDays int, name, reason string) (*Plan, error) {
	content, err := s.generator.Generate(durationDays, s.exercisePool, s.mealPools)
	if err != nil {
		return nil, fmt.Errorf("generate plan: %w", err)
	}

	if name == "" {
		name = fmt.Sprintf("%d-day plan", durationDays)
	}

	stored, err := s.repo.Add(ctx, Plan{
		ID:        uuid.NewString(),
		UserID:    userID,
		Name:      name,
		Duration:  durationDays,
		CreatedAt: s.now(),
		Workouts:  content.Workouts,
		Meals:     content.Meals,
	})
	if err != nil {
		return nil, fmt.Errorf("store plan: %w", err)
	}

	s.metrics.CounterPlansGenerated.WithLabelValues(reason).Inc()
	s.metrics.HistPlanGenerationDays.Observe(float64(durationDays))
	log.Infof("plan service: generated %d-day plan %s for user %s (%s)", durationDays, stored.ID, userID, reason)

	return stored, nil
}
