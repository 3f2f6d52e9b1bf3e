package dailylog

import (
	"context"
	"io"
	"os"
	"testing"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/AndyIsBuilding/calorie-counter/internal/db"
)

func TestPostgresRepository_DeleteMalformedID(t *testing.T) {
	repo := NewPostgresRepository(nil)

	if err := repo.Delete(context.Background(), "u1", "not-a-uuid"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestPostgresRepository_Integration(t *testing.T) {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		t.Skip("DATABASE_URL not set, skipping integration test")
	}

	ctx := context.Background()
	log := logrus.New()
	log.SetOutput(io.Discard)

	pool, err := db.ConnectPostgres(ctx, dsn, log)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer pool.Close()

	repo := NewPostgresRepository(pool)

	e := &Entry{UserID: "pg-test-user", Date: "2024-03-01", FoodName: "Oats", Calories: 150, Protein: 5}
	if err := repo.Create(ctx, e); err != nil {
		t.Fatalf("create: %v", err)
	}

	if err := repo.Delete(ctx, e.UserID, "xyz"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for malformed id, got %v", err)
	}
	if err := repo.Delete(ctx, e.UserID, e.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
}
