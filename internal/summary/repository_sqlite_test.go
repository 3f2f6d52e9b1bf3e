package summary

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"

	"github.com/AndyIsBuilding/calorie-counter/internal/db"
)

func TestSQLiteRepository_UpsertAndList(t *testing.T) {
	ctx := context.Background()

	conn, err := db.OpenSQLite(filepath.Join(t.TempDir(), "summary.db"))
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	defer conn.Close()

	repo := NewSQLiteRepository(conn)

	if _, err := repo.Get(ctx, "u1", "2024-03-01"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	for _, s := range []*Summary{
		{UserID: "u1", Date: "2024-03-01", TotalCalories: 350, TotalProtein: 21, Text: "Oats 150 (5)", CalorieGoal: 2000, ProteinGoal: 100},
		{UserID: "u1", Date: "2024-03-02", TotalCalories: 900, TotalProtein: 60, Text: "Steak 700 (60)", CalorieGoal: 2000, ProteinGoal: 100},
		{UserID: "u1", Date: "2024-03-01", TotalCalories: 500, TotalProtein: 30, Text: "Oats 150 (5), Eggs 150 (9)", CalorieGoal: 1800, ProteinGoal: 120},
		{UserID: "u2", Date: "2024-03-02", TotalCalories: 100, TotalProtein: 1, Text: "Tea 100 (1)", CalorieGoal: 2000, ProteinGoal: 100},
	} {
		if err := repo.Upsert(ctx, s); err != nil {
			t.Fatalf("upsert: %v", err)
		}
	}

	got, err := repo.Get(ctx, "u1", "2024-03-01")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.TotalCalories != 500 || got.CalorieGoal != 1800 || got.UpdatedAt.IsZero() {
		t.Fatalf("summary not replaced: %+v", got)
	}

	list, err := repo.ListSince(ctx, "u1", "2024-03-01")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 2 || list[0].Date != "2024-03-02" || list[1].Date != "2024-03-01" {
		t.Fatalf("unexpected list: %+v", list)
	}
}
