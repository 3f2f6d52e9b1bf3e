package dailylog

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/AndyIsBuilding/calorie-counter/internal/db"
)

type SQLiteRepository struct {
	db *sql.DB
}

func NewSQLiteRepository(conn *sql.DB) *SQLiteRepository {
	return &SQLiteRepository{db: conn}
}

func (r *SQLiteRepository) Create(ctx context.Context, e *Entry) error {
	if e.ID == "" {
		e.ID = uuid.New().String()
	}
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now().UTC()
	}

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO daily_log (id, user_id, date, food_name, calories, protein, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`,
		e.ID, e.UserID, e.Date, e.FoodName, e.Calories, e.Protein, db.FormatTime(e.CreatedAt),
	)
	return errors.Wrap(err, "insert log entry")
}

func (r *SQLiteRepository) ListByDate(ctx context.Context, userID, date string) ([]Entry, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, user_id, date, food_name, calories, protein, created_at
		FROM daily_log
		WHERE user_id = ? AND date = ?
		ORDER BY created_at, rowid
	`, userID, date)
	if err != nil {
		return nil, errors.Wrap(err, "query daily log")
	}
	defer rows.Close()

	entries := []Entry{}
	for rows.Next() {
		var (
			e         Entry
			createdAt string
		)
		if err := rows.Scan(
			&e.ID, &e.UserID, &e.Date, &e.FoodName, &e.Calories, &e.Protein, &createdAt,
		); err != nil {
			return nil, errors.Wrap(err, "scan log entry")
		}
		if e.CreatedAt, err = db.ParseTime(createdAt); err != nil {
			return nil, errors.Wrapf(err, "parse created_at for entry %s", e.ID)
		}
		entries = append(entries, e)
	}

	return entries, errors.Wrap(rows.Err(), "iterate daily log")
}

func (r *SQLiteRepository) Delete(ctx context.Context, userID, id string) error {
	res, err := r.db.ExecContext(ctx, `
		DELETE FROM daily_log WHERE id = ? AND user_id = ?
	`, id, userID)
	if err != nil {
		return errors.Wrapf(err, "delete log entry %s", id)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return errors.Wrap(err, "rows affected")
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
