package dailylog

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pkg/errors"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, e *Entry) error {
	if e.ID == "" {
		e.ID = uuid.New().String()
	}

	err := r.db.QueryRow(ctx, `
		INSERT INTO daily_log (id, user_id, date, food_name, calories, protein)
		VALUES ($1, $2, $3::date, $4, $5, $6)
		RETURNING created_at
	`,
		e.ID, e.UserID, e.Date, e.FoodName, e.Calories, e.Protein,
	).Scan(&e.CreatedAt)

	return errors.Wrap(err, "insert log entry")
}

func (r *PostgresRepository) ListByDate(ctx context.Context, userID, date string) ([]Entry, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, user_id, to_char(date, 'YYYY-MM-DD'), food_name, calories, protein, created_at
		FROM daily_log
		WHERE user_id = $1 AND date = $2::date
		ORDER BY created_at, id
	`, userID, date)
	if err != nil {
		return nil, errors.Wrap(err, "query daily log")
	}
	defer rows.Close()

	entries := []Entry{}
	for rows.Next() {
		var e Entry
		if err := rows.Scan(
			&e.ID,
			&e.UserID,
			&e.Date,
			&e.FoodName,
			&e.Calories,
			&e.Protein,
			&e.CreatedAt,
		); err != nil {
			return nil, errors.Wrap(err, "scan log entry")
		}
		entries = append(entries, e)
	}

	return entries, errors.Wrap(rows.Err(), "iterate daily log")
}

// Delete removes the user's entry. ids that are not UUIDs cannot exist.
func (r *PostgresRepository) Delete(ctx context.Context, userID, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return ErrNotFound
	}

	tag, err := r.db.Exec(ctx, `
		DELETE FROM daily_log WHERE id = $1 AND user_id = $2
	`, id, userID)
	if err != nil {
		return errors.Wrapf(err, "delete log entry %s", id)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
