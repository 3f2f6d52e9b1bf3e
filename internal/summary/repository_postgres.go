package summary

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

func (r *PostgresRepository) Upsert(ctx context.Context, s *Summary) error {
	err := r.db.QueryRow(ctx, `
		INSERT INTO daily_summary (
			user_id, date, total_calories, total_protein, summary,
			calorie_goal, protein_goal, updated_at
		)
		VALUES ($1, $2::date, $3, $4, $5, $6, $7, now())
		ON CONFLICT (user_id, date) DO UPDATE
		SET total_calories = EXCLUDED.total_calories,
			total_protein = EXCLUDED.total_protein,
			summary = EXCLUDED.summary,
			calorie_goal = EXCLUDED.calorie_goal,
			protein_goal = EXCLUDED.protein_goal,
			updated_at = now()
		RETURNING updated_at
	`,
		s.UserID, s.Date, s.TotalCalories, s.TotalProtein, s.Text,
		s.CalorieGoal, s.ProteinGoal,
	).Scan(&s.UpdatedAt)

	return errors.Wrapf(err, "upsert summary for %s on %s", s.UserID, s.Date)
}

const selectSummary = `
	SELECT user_id, to_char(date, 'YYYY-MM-DD'), total_calories, total_protein, summary,
		calorie_goal, protein_goal, updated_at
	FROM daily_summary
`

func (r *PostgresRepository) Get(ctx context.Context, userID, date string) (*Summary, error) {
	row := r.db.QueryRow(ctx, selectSummary+`WHERE user_id = $1 AND date = $2::date`, userID, date)

	s, err := scanSummary(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, errors.Wrapf(err, "get summary for %s on %s", userID, date)
	}
	return s, nil
}

func (r *PostgresRepository) ListSince(ctx context.Context, userID, from string) ([]Summary, error) {
	rows, err := r.db.Query(ctx, selectSummary+`
		WHERE user_id = $1 AND date >= $2::date
		ORDER BY date DESC
	`, userID, from)
	if err != nil {
		return nil, errors.Wrap(err, "query summaries")
	}
	defer rows.Close()

	out := []Summary{}
	for rows.Next() {
		s, err := scanSummary(rows)
		if err != nil {
			return nil, errors.Wrap(err, "scan summary")
		}
		out = append(out, *s)
	}
	return out, errors.Wrap(rows.Err(), "iterate summaries")
}

func scanSummary(row pgx.Row) (*Summary, error) {
	var s Summary
	err := row.Scan(
		&s.UserID,
		&s.Date,
		&s.TotalCalories,
		&s.TotalProtein,
		&s.Text,
		&s.CalorieGoal,
		&s.ProteinGoal,
		&s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &s, nil
}
