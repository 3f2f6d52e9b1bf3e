package goals

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pkg/errors"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Get(ctx context.Context, userID string) (*Goals, error) {
	g := Goals{UserID: userID}
	err := r.db.QueryRow(ctx, `
		SELECT calorie_goal, protein_goal
		FROM goals
		WHERE user_id = $1
	`, userID).Scan(&g.Calories, &g.Protein)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, errors.Wrapf(err, "get goals for %s", userID)
	}
	return &g, nil
}

func (r *PostgresRepository) Upsert(ctx context.Context, g *Goals) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO goals (user_id, calorie_goal, protein_goal, updated_at)
		VALUES ($1, $2, $3, now())
		ON CONFLICT (user_id) DO UPDATE
		SET calorie_goal = EXCLUDED.calorie_goal,
			protein_goal = EXCLUDED.protein_goal,
			updated_at = now()
	`, g.UserID, g.Calories, g.Protein)

	return errors.Wrapf(err, "upsert goals for %s", g.UserID)
}
