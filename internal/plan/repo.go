package plan

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/2beens/fitplan/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

const planColumns = `id::text, user_id::text, name, duration, active, created_at, workouts, meals`

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

// Add stores the plan as the user's only active plan.
func (r *Repo) Add(ctx context.Context, plan Plan) (_ *Plan, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.plan.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(
		attribute.String("plan.id", plan.ID),
		attribute.Int("plan.duration", plan.Duration),
	)

	workoutsJson, err := json.Marshal(plan.Workouts)
	if err != nil {
		return nil, fmt.Errorf("marshal workouts: %w", err)
	}
	mealsJson, err := json.Marshal(plan.Meals)
	if err != nil {
		return nil, fmt.Errorf("marshal meals: %w", err)
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err != nil {
			if rollbackErr := tx.Rollback(ctx); rollbackErr != nil {
				err = fmt.Errorf("failed to rollback transaction: %w: %w", rollbackErr, err)
			}
		} else {
			err = tx.Commit(ctx)
		}
	}()

	if _, err = tx.Exec(
		ctx,
		`UPDATE plan SET active = FALSE WHERE user_id = $1 AND active;`,
		plan.UserID,
	); err != nil {
		return nil, fmt.Errorf("deactivate previous plan: %w", err)
	}

	if _, err = tx.Exec(
		ctx,
		`INSERT INTO plan
				(id, user_id, name, duration, workouts, meals, active, created_at)
				VALUES ($1, $2, $3, $4, $5, $6, TRUE, $7);`,
		plan.ID, plan.UserID, plan.Name, plan.Duration, workoutsJson, mealsJson, plan.CreatedAt,
	); err != nil {
		return nil, fmt.Errorf("insert plan: %w", err)
	}

	plan.Active = true
	return &plan, nil
}

func (r *Repo) GetActive(ctx context.Context, userID string) (_ *Plan, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.plan.get.active")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user.id", userID))

	row := r.db.QueryRow(
		ctx,
		`SELECT `+planColumns+` FROM plan WHERE user_id = $1 AND active;`,
		userID,
	)
	return scanPlan(row)
}

func (r *Repo) Get(ctx context.Context, userID, planID string) (_ *Plan, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.plan.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("plan.id", planID))

	row := r.db.QueryRow(
		ctx,
		`SELECT `+planColumns+` FROM plan WHERE user_id = $1 AND id::text = $2;`,
		userID, planID,
	)
	return scanPlan(row)
}

// GetLatestInactive returns the most recently created plan of the user that
// is no longer active, which is the one the active plan superseded.
func (r *Repo) GetLatestInactive(ctx context.Context, userID string) (_ *Plan, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.plan.get.latest.inactive")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user.id", userID))

	row := r.db.QueryRow(
		ctx,
		`SELECT `+planColumns+` FROM plan
			WHERE user_id = $1 AND NOT active
			ORDER BY created_at DESC
			LIMIT 1;`,
		userID,
	)
	return scanPlan(row)
}

func scanPlan(row pgx.Row) (*Plan, error) {
	var (
		p            Plan
		workoutsJson []byte
		mealsJson    []byte
	)
	if err := row.Scan(
		&p.ID, &p.UserID, &p.Name, &p.Duration, &p.Active, &p.CreatedAt, &workoutsJson, &mealsJson,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrPlanNotFound
		}
		return nil, err
	}

	if err := json.Unmarshal(workoutsJson, &p.Workouts); err != nil {
		return nil, fmt.Errorf("unmarshal workouts: %w", err)
	}
	if err := json.Unmarshal(mealsJson, &p.Meals); err != nil {
		return nil, fmt.Errorf("unmarshal meals: %w", err)
	}

	return &p, nil
}
