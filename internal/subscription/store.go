package subscription

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/2beens/fitplan/internal/telemetry/tracing"
	"github.com/2beens/fitplan/pkg"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

var ErrUserNotFound = errors.New("subscription user not found")

type Store struct {
	db *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{
		db: db,
	}
}

// Tier returns the stored tier of the user, defaulting to the trial.
func (s *Store) Tier(ctx context.Context, userID string) (_ Tier, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.subscription.tier")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user.id", userID))

	var tier string
	err = s.db.QueryRow(
		ctx,
		`SELECT tier FROM user_subscription WHERE user_id = $1`,
		userID,
	).Scan(&tier)
	if errors.Is(err, pgx.ErrNoRows) {
		return TierTrial, nil
	}
	if err != nil {
		return "", err
	}

	return ParseTier(tier)
}

func (s *Store) Set(ctx context.Context, userID string, tier Tier, updatedAt time.Time) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.subscription.set")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(
		attribute.String("user.id", userID),
		attribute.String("tier", string(tier)),
	)

	_, err = s.db.Exec(
		ctx,
		`INSERT INTO user_subscription (user_id, tier, updated_at)
			VALUES ($1, $2, $3)
			ON CONFLICT (user_id) DO UPDATE SET tier = EXCLUDED.tier, updated_at = EXCLUDED.updated_at;`,
		userID, string(tier), updatedAt,
	)
	if pkg.IsForeignKeyViolationError(err) {
		return fmt.Errorf("%w: %s", ErrUserNotFound, userID)
	}
	return err
}
