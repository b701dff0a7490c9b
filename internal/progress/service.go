package progress

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/2beens/fitplan/internal/plan"
	"github.com/2beens/fitplan/internal/telemetry/metrics"
	"github.com/2beens/fitplan/internal/telemetry/tracing"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=progress_test

type recordsRepo interface {
	Upsert(ctx context.Context, e CompletionEvent, updatedAt time.Time) (*DailyProgressRecord, error)
	ListByPlan(ctx context.Context, userID, planID string) ([]DailyProgressRecord, error)
	CarryForward(ctx context.Context, userID, fromPlanID, toPlanID string, maxDay int) (int64, error)
}

type planLookup interface {
	Plan(ctx context.Context, userID, planID string) (*plan.Plan, error)
}

type Service struct {
	repo    recordsRepo
	plans   planLookup
	cache   *AggregateCache
	metrics *metrics.Manager
	now     func() time.Time
}

// NewService creates the progress service. cache may be nil.
func NewService(
	repo recordsRepo,
	plans planLookup,
	cache *AggregateCache,
	metricsManager *metrics.Manager,
) *Service {
	return &Service{
		repo:    repo,
		plans:   plans,
		cache:   cache,
		metrics: metricsManager,
		now:     time.Now,
	}
}

// RecordCompletion upserts the (user, plan, day) record with the event.
// The plan day has to exist, otherwise ErrRecordNotFound is returned.
func (s *Service) RecordCompletion(ctx context.Context, e CompletionEvent) (_ *DailyProgressRecord, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.progress.record")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(
		attribute.String("user.id", e.UserID),
		attribute.String("plan.id", e.PlanID),
		attribute.Int("day", e.DayNumber),
		attribute.String("kind", string(e.Kind)),
	)

	if err := e.Validate(); err != nil {
		return nil, err
	}

	p, err := s.plans.Plan(ctx, e.UserID, e.PlanID)
	if err != nil {
		if errors.Is(err, plan.ErrPlanNotFound) {
			return nil, fmt.Errorf("%w: plan %s", ErrRecordNotFound, e.PlanID)
		}
		return nil, fmt.Errorf("get plan: %w", err)
	}
	if e.DayNumber > p.Duration {
		return nil, fmt.Errorf("%w: day %d of %d-day plan", ErrRecordNotFound, e.DayNumber, p.Duration)
	}

	now := s.now()
	if e.Date.IsZero() {
		e.Date = now
	}
	e.Date = truncateToDate(e.Date)

	record, err := s.repo.Upsert(ctx, e, now)
	if err != nil {
		return nil, fmt.Errorf("upsert record: %w", err)
	}

	if s.cache != nil {
		s.cache.Invalidate(e.UserID, e.PlanID)
	}
	s.metrics.CounterCompletions.WithLabelValues(string(e.Kind)).Inc()
	log.Debugf("progress: user %s day %d %s completed, state %s", e.UserID, e.DayNumber, e.Kind, record.State())

	return record, nil
}

// Progress recomputes the aggregate of the plan from the stored records.
// The display cache is consulted first.
func (s *Service) Progress(ctx context.Context, userID, planID string) (_ *AggregateProgress, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.progress.aggregate")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("plan.id", planID))

	var generation uint64
	if s.cache != nil {
		if agg, ok := s.cache.Get(userID, planID); ok {
			s.metrics.CounterProgressCacheHits.Inc()
			return agg, nil
		}
		s.metrics.CounterProgressCacheMisses.Inc()
		generation = s.cache.Generation(userID, planID)
	}

	records, err := s.repo.ListByPlan(ctx, userID, planID)
	if err != nil {
		return nil, fmt.Errorf("list records: %w", err)
	}

	agg := Aggregate(records)
	if s.cache != nil {
		s.cache.Set(userID, planID, agg, generation)
	}

	return &agg, nil
}

// CarryForward moves progress onto a superseding plan.
func (s *Service) CarryForward(ctx context.Context, userID, fromPlanID, toPlanID string, maxDay int) (int64, error) {
	moved, err := s.repo.CarryForward(ctx, userID, fromPlanID, toPlanID, maxDay)
	if err != nil {
		return 0, err
	}
	if s.cache != nil {
		s.cache.Invalidate(userID, toPlanID)
	}
	return moved, nil
}

func truncateToDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
