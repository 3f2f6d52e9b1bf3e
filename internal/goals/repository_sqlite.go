package goals

import (
	"context"
	"database/sql"
	"time"

	"github.com/pkg/errors"

	"github.com/AndyIsBuilding/calorie-counter/internal/db"
)

type SQLiteRepository struct {
	db *sql.DB
}

func NewSQLiteRepository(conn *sql.DB) *SQLiteRepository {
	return &SQLiteRepository{db: conn}
}

func (r *SQLiteRepository) Get(ctx context.Context, userID string) (*Goals, error) {
	g := Goals{UserID: userID}
	err := r.db.QueryRowContext(ctx, `
		SELECT calorie_goal, protein_goal FROM goals WHERE user_id = ?
	`, userID).Scan(&g.Calories, &g.Protein)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, errors.Wrapf(err, "get goals for %s", userID)
	}
	return &g, nil
}

func (r *SQLiteRepository) Upsert(ctx context.Context, g *Goals) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO goals (user_id, calorie_goal, protein_goal, updated_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT (user_id) DO UPDATE
		SET calorie_goal = excluded.calorie_goal,
			protein_goal = excluded.protein_goal,
			updated_at = excluded.updated_at
	`, g.UserID, g.Calories, g.Protein, db.FormatTime(time.Now()))

	return errors.Wrapf(err, "upsert goals for %s", g.UserID)
}
