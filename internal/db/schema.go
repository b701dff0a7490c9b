package db

const SchemaSQL = `
CREATE TABLE IF NOT EXISTS app_user
(
    id            UUID PRIMARY KEY,
    email         VARCHAR NOT NULL UNIQUE,
    display_name  VARCHAR NOT NULL DEFAULT '',
    password_hash VARCHAR NOT NULL,
    created_at    TIMESTAMPTZ NOT NULL
);

CREATE TABLE IF NOT EXISTS user_subscription
(
    user_id    UUID PRIMARY KEY REFERENCES app_user (id) ON DELETE CASCADE,
    tier       VARCHAR NOT NULL,
    updated_at TIMESTAMPTZ NOT NULL
);

CREATE TABLE IF NOT EXISTS plan
(
    id         UUID PRIMARY KEY,
    user_id    UUID NOT NULL REFERENCES app_user (id) ON DELETE CASCADE,
    name       VARCHAR NOT NULL,
    duration   INTEGER NOT NULL CHECK (duration > 0),
    workouts   JSONB NOT NULL,
    meals      JSONB NOT NULL,
    active     BOOLEAN NOT NULL DEFAULT TRUE,
    created_at TIMESTAMPTZ NOT NULL
);

CREATE INDEX IF NOT EXISTS ix_plan_user_id ON plan (user_id);
CREATE UNIQUE INDEX IF NOT EXISTS ux_plan_user_active ON plan (user_id) WHERE active;

CREATE TABLE IF NOT EXISTS daily_progress
(
    user_id                  UUID NOT NULL REFERENCES app_user (id) ON DELETE CASCADE,
    plan_id                  UUID NOT NULL REFERENCES plan (id) ON DELETE CASCADE,
    day_number               INTEGER NOT NULL CHECK (day_number > 0),
    date                     DATE NOT NULL,
    workout_completed        BOOLEAN NOT NULL DEFAULT FALSE,
    meal_completed           BOOLEAN NOT NULL DEFAULT FALSE,
    calories_burned          DOUBLE PRECISION NOT NULL DEFAULT 0,
    workout_duration_seconds BIGINT NOT NULL DEFAULT 0,
    exercise_names           TEXT[] NOT NULL DEFAULT '{}',
    updated_at               TIMESTAMPTZ NOT NULL,
    PRIMARY KEY (user_id, plan_id, day_number)
);

CREATE INDEX IF NOT EXISTS ix_daily_progress_date ON daily_progress (date);
`
