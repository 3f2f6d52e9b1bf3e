package summary

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

func (r *SQLiteRepository) Upsert(ctx context.Context, s *Summary) error {
	s.UpdatedAt = time.Now().UTC()

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO daily_summary (
			user_id, date, total_calories, total_protein, summary,
			calorie_goal, protein_goal, updated_at
		)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (user_id, date) DO UPDATE
		SET total_calories = excluded.total_calories,
			total_protein = excluded.total_protein,
			summary = excluded.summary,
			calorie_goal = excluded.calorie_goal,
			protein_goal = excluded.protein_goal,
			updated_at = excluded.updated_at
	`,
		s.UserID, s.Date, s.TotalCalories, s.TotalProtein, s.Text,
		s.CalorieGoal, s.ProteinGoal, db.FormatTime(s.UpdatedAt),
	)
	return errors.Wrapf(err, "upsert summary for %s on %s", s.UserID, s.Date)
}

const selectSQLiteSummary = `
	SELECT user_id, date, total_calories, total_protein, summary,
		calorie_goal, protein_goal, updated_at
	FROM daily_summary
`

func (r *SQLiteRepository) Get(ctx context.Context, userID, date string) (*Summary, error) {
	row := r.db.QueryRowContext(ctx, selectSQLiteSummary+`WHERE user_id = ? AND date = ?`, userID, date)

	s, err := scanSQLiteSummary(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, errors.Wrapf(err, "get summary for %s on %s", userID, date)
	}
	return s, nil
}

func (r *SQLiteRepository) ListSince(ctx context.Context, userID, from string) ([]Summary, error) {
	rows, err := r.db.QueryContext(ctx, selectSQLiteSummary+`
		WHERE user_id = ? AND date >= ?
		ORDER BY date DESC
	`, userID, from)
	if err != nil {
		return nil, errors.Wrap(err, "query summaries")
	}
	defer rows.Close()

	out := []Summary{}
	for rows.Next() {
		s, err := scanSQLiteSummary(rows)
		if err != nil {
			return nil, errors.Wrap(err, "scan summary")
		}
		out = append(out, *s)
	}
	return out, errors.Wrap(rows.Err(), "iterate summaries")
}

type scanner interface {
	Scan(dest ...any) error
}

func scanSQLiteSummary(row scanner) (*Summary, error) {
	var (
		s         Summary
		updatedAt string
	)
	err := row.Scan(
		&s.UserID, &s.Date, &s.TotalCalories, &s.TotalProtein, &s.Text,
		&s.CalorieGoal, &s.ProteinGoal, &updatedAt,
	)
	if err != nil {
		return nil, err
	}
	if s.UpdatedAt, err = db.ParseTime(updatedAt); err != nil {
		return nil, errors.Wrap(err, "parse updated_at")
	}
	return &s, nil
}
