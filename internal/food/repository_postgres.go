package food

import (
	"context"

	"github.com/google/uuid"
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

func (r *PostgresRepository) Create(ctx context.Context, f *Food) error {
	if f.ID == "" {
		f.ID = uuid.New().String()
	}

	err := r.db.QueryRow(ctx, `
		INSERT INTO foods (id, user_id, name, calories, protein)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at
	`,
		f.ID, f.UserID, f.Name, f.Calories, f.Protein,
	).Scan(&f.CreatedAt)

	return errors.Wrap(err, "insert food")
}

func (r *PostgresRepository) List(ctx context.Context, userID string) ([]Food, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, user_id, name, calories, protein, created_at
		FROM foods
		WHERE user_id = $1
		ORDER BY name, created_at
	`, userID)
	if err != nil {
		return nil, errors.Wrap(err, "query foods")
	}
	defer rows.Close()

	foods := []Food{}
	for rows.Next() {
		var f Food
		if err := rows.Scan(
			&f.ID,
			&f.UserID,
			&f.Name,
			&f.Calories,
			&f.Protein,
			&f.CreatedAt,
		); err != nil {
			return nil, errors.Wrap(err, "scan food")
		}
		foods = append(foods, f)
	}

	return foods, errors.Wrap(rows.Err(), "iterate foods")
}

func (r *PostgresRepository) Get(ctx context.Context, userID, id string) (*Food, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, ErrNotFound
	}

	var f Food
	err := r.db.QueryRow(ctx, `
		SELECT id, user_id, name, calories, protein, created_at
		FROM foods
		WHERE id = $1 AND user_id = $2
	`, id, userID).Scan(
		&f.ID,
		&f.UserID,
		&f.Name,
		&f.Calories,
		&f.Protein,
		&f.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, errors.Wrapf(err, "get food %s", id)
	}
	return &f, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, userID, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return ErrNotFound
	}

	tag, err := r.db.Exec(ctx, `
		DELETE FROM foods WHERE id = $1 AND user_id = $2
	`, id, userID)
	if err != nil {
		return errors.Wrapf(err, "delete food %s", id)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
