package db

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

func ConnectPostgres(ctx context.Context, dsn string, log logrus.FieldLogger) (*pgxpool.Pool, error) {
	if dsn == "" {
		return nil, errors.New("DATABASE_URL not set")
	}

	config, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, errors.Wrap(err, "parse DATABASE_URL")
	}

	config.MaxConns = 10
	config.MinConns = 2
	config.MaxConnLifetime = time.Hour

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, errors.Wrap(err, "open postgres pool")
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, errors.Wrap(err, "postgres connection failed")
	}

	log.Info("connected to postgres")

	if err := initSchema(ctx, pool); err != nil {
		pool.Close()
		return nil, errors.Wrap(err, "initialize schema")
	}

	log.Info("schema initialized")
	return pool, nil
}

// initSchema creates or updates the database schema
func initSchema(ctx context.Context, pool *pgxpool.Pool) error {
	// -------------------------------
	// QUICK-ADD CATALOG
	// -------------------------------
	foodsSQL := `
		CREATE TABLE IF NOT EXISTS foods (
			id UUID PRIMARY KEY,
			user_id VARCHAR(255) NOT NULL,
			name VARCHAR(255) NOT NULL,
			calories INTEGER NOT NULL CHECK (calories >= 0),
			protein INTEGER NOT NULL CHECK (protein >= 0),
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		);

		CREATE INDEX IF NOT EXISTS idx_foods_user_name ON foods (user_id, name);
	`
	if _, err := pool.Exec(ctx, foodsSQL); err != nil {
		return errors.Wrap(err, "create foods")
	}

	// -------------------------------
	// DAILY LOG
	// -------------------------------
	dailyLogSQL := `
		CREATE TABLE IF NOT EXISTS daily_log (
			id UUID PRIMARY KEY,
			user_id VARCHAR(255) NOT NULL,
			date DATE NOT NULL,
			food_name VARCHAR(255) NOT NULL,
			calories INTEGER NOT NULL,
			protein INTEGER NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		);

		CREATE INDEX IF NOT EXISTS idx_daily_log_user_date ON daily_log (user_id, date);
	`
	if _, err := pool.Exec(ctx, dailyLogSQL); err != nil {
		return errors.Wrap(err, "create daily_log")
	}

	// -------------------------------
	// GOALS
	// -------------------------------
	goalsSQL := `
		CREATE TABLE IF NOT EXISTS goals (
			user_id VARCHAR(255) PRIMARY KEY,
			calorie_goal INTEGER NOT NULL,
			protein_goal INTEGER NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)
	`
	if _, err := pool.Exec(ctx, goalsSQL); err != nil {
		return errors.Wrap(err, "create goals")
	}

	// -------------------------------
	// DAILY SUMMARIES
	// -------------------------------
	summarySQL := `
		CREATE TABLE IF NOT EXISTS daily_summary (
			user_id VARCHAR(255) NOT NULL,
			date DATE NOT NULL,
			total_calories INTEGER NOT NULL,
			total_protein INTEGER NOT NULL,
			summary TEXT NOT NULL,
			calorie_goal INTEGER NOT NULL,
			protein_goal INTEGER NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			PRIMARY KEY (user_id, date)
		)
	`
	if _, err := pool.Exec(ctx, summarySQL); err != nil {
		return errors.Wrap(err, "create daily_summary")
	}

	return nil
}
