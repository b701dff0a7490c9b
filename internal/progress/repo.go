package progress

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/2beens/fitplan/internal/telemetry/tracing"
	"github.com/2beens/fitplan/pkg"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

const recordColumns = `user_id::text, plan_id::text, day_number, date, workout_completed, meal_completed,
	calories_burned, workout_duration_seconds, exercise_names, updated_at`

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

// Upsert merges the event into the (user, plan, day) record in a single
// statement, creating the record on first touch.
func (r *Repo) Upsert(ctx context.Context, e CompletionEvent, updatedAt time.Time) (_ *DailyProgressRecord, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.progress.upsert")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(
		attribute.String("plan.id", e.PlanID),
		attribute.Int("day", e.DayNumber),
		attribute.String("kind", string(e.Kind)),
	)

	names := make([]string, 0, len(e.ExerciseNames))
	for _, name := range e.ExerciseNames {
		if !slices.Contains(names, name) {
			names = append(names, name)
		}
	}

	row := r.db.QueryRow(
		ctx,
		`INSERT INTO daily_progress
				(user_id, plan_id, day_number, date, workout_completed, meal_completed,
				 calories_burned, workout_duration_seconds, exercise_names, updated_at)
				VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
			ON CONFLICT (user_id, plan_id, day_number) DO UPDATE SET
				workout_completed = daily_progress.workout_completed OR EXCLUDED.workout_completed,
				meal_completed = daily_progress.meal_completed OR EXCLUDED.meal_completed,
				calories_burned = daily_progress.calories_burned + EXCLUDED.calories_burned,
				workout_duration_seconds = daily_progress.workout_duration_seconds + EXCLUDED.workout_duration_seconds,
				exercise_names = ARRAY(
					SELECT n.name
					FROM unnest(daily_progress.exercise_names || EXCLUDED.exercise_names) WITH ORDINALITY AS n(name, ord)
					GROUP BY n.name
					ORDER BY MIN(n.ord)
				),
				updated_at = EXCLUDED.updated_at
			RETURNING `+recordColumns+`;`,
		e.UserID, e.PlanID, e.DayNumber, e.Date,
		e.Kind == KindWorkout, e.Kind == KindMeal,
		e.CaloriesBurned, e.DurationSeconds, names, updatedAt,
	)

	record, err := scanRecord(row)
	if err != nil {
		if pkg.IsForeignKeyViolationError(err) {
			return nil, fmt.Errorf("%w: plan %s", ErrRecordNotFound, e.PlanID)
		}
		return nil, err
	}
	return record, nil
}

func (r *Repo) ListByPlan(ctx context.Context, userID, planID string) (_ []DailyProgressRecord, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.progress.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("plan.id", planID))

	rows, err := r.db.Query(
		ctx,
		`SELECT `+recordColumns+`
			FROM daily_progress
			WHERE user_id = $1 AND plan_id = $2
			ORDER BY date, day_number;`,
		userID, planID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []DailyProgressRecord
	for rows.Next() {
		record, err := scanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("scan record: %w", err)
		}
		records = append(records, *record)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	span.SetAttributes(attribute.Int("records.count", len(records)))
	return records, nil
}

// CarryForward copies the records of one plan onto another by day number,
// skipping days past maxDay and days the target plan already has.
func (r *Repo) CarryForward(ctx context.Context, userID, fromPlanID, toPlanID string, maxDay int) (_ int64, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.progress.carryforward")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(
		attribute.String("plan.from", fromPlanID),
		attribute.String("plan.to", toPlanID),
	)

	tag, err := r.db.Exec(
		ctx,
		`INSERT INTO daily_progress
				(user_id, plan_id, day_number, date, workout_completed, meal_completed,
				 calories_burned, workout_duration_seconds, exercise_names, updated_at)
			SELECT user_id, $3::uuid, day_number, date, workout_completed, meal_completed,
				calories_burned, workout_duration_seconds, exercise_names, updated_at
			FROM daily_progress
			WHERE user_id = $1 AND plan_id = $2 AND day_number <= $4
			ON CONFLICT (user_id, plan_id, day_number) DO NOTHING;`,
		userID, fromPlanID, toPlanID, maxDay,
	)
	if err != nil {
		return 0, err
	}

	return tag.RowsAffected(), nil
}

func scanRecord(row pgx.Row) (*DailyProgressRecord, error) {
	var record DailyProgressRecord
	if err := row.Scan(
		&record.UserID,
		&record.PlanID,
		&record.DayNumber,
		&record.Date,
		&record.WorkoutCompleted,
		&record.MealCompleted,
		&record.CaloriesBurned,
		&record.WorkoutDurationSeconds,
		&record.ExerciseNames,
		&record.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &record, nil
}
