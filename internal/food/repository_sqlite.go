package food

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

func (r *SQLiteRepository) Create(ctx context.Context, f *Food) error {
	if f.ID == "" {
		f.ID = uuid.New().String()
	}
	if f.CreatedAt.IsZero() {
		f.CreatedAt = time.Now().UTC()
	}

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO foods (id, user_id, name, calories, protein, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`,
		f.ID, f.UserID, f.Name, f.Calories, f.Protein, db.FormatTime(f.CreatedAt),
	)
	return errors.Wrap(err, "insert food")
}

func (r *SQLiteRepository) List(ctx context.Context, userID string) ([]Food, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, user_id, name, calories, protein, created_at
		FROM foods
		WHERE user_id = ?
		ORDER BY name, created_at
	`, userID)
	if err != nil {
		return nil, errors.Wrap(err, "query foods")
	}
	defer rows.Close()

	foods := []Food{}
	for rows.Next() {
		f, err := scanSQLiteFood(rows)
		if err != nil {
			return nil, err
		}
		foods = append(foods, *f)
	}

	return foods, errors.Wrap(rows.Err(), "iterate foods")
}

func (r *SQLiteRepository) Get(ctx context.Context, userID, id string) (*Food, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, user_id, name, calories, protein, created_at
		FROM foods
		WHERE id = ? AND user_id = ?
	`, id, userID)

	f, err := scanSQLiteFood(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	return f, err
}

func (r *SQLiteRepository) Delete(ctx context.Context, userID, id string) error {
	res, err := r.db.ExecContext(ctx, `
		DELETE FROM foods WHERE id = ? AND user_id = ?
	`, id, userID)
	if err != nil {
		return errors.Wrapf(err, "delete food %s", id)
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

type scanner interface {
	Scan(dest ...any) error
}

func scanSQLiteFood(s scanner) (*Food, error) {
	var (
		f         Food
		createdAt string
	)
	if err := s.Scan(&f.ID, &f.UserID, &f.Name, &f.Calories, &f.Protein, &createdAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, errors.Wrap(err, "scan food")
	}

	t, err := db.ParseTime(createdAt)
	if err != nil {
		return nil, errors.Wrapf(err, "parse created_at for food %s", f.ID)
	}
	f.CreatedAt = t
	return &f, nil
}
