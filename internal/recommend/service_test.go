package recommend

import (
	"context"
	"io"
	"math"
	"testing"
	"time"

	"github.com/pkg/errors"

	"github.com/AndyIsBuilding/calorie-counter/internal/dailylog"
	"github.com/AndyIsBuilding/calorie-counter/internal/food"
	"github.com/AndyIsBuilding/calorie-counter/internal/goals"
	"github.com/AndyIsBuilding/calorie-counter/internal/logging"
)

type fixture struct {
	foods   *food.Service
	logs    *dailylog.Service
	goals   *goals.Service
	service *Service
}

func newFixture(t *testing.T, opts Options) *fixture {
	t.Helper()
	log := logging.New("error", io.Discard)

	f := &fixture{}
	f.foods = food.NewService(food.NewInMemoryRepository())
	f.logs = dailylog.NewService(dailylog.NewInMemoryRepository(), f.foods, time.UTC, log)
	f.goals = goals.NewService(goals.NewInMemoryRepository(), f.logs)
	f.service = NewService(f.foods, f.logs, f.goals, opts, log)
	return f
}

func (f *fixture) addFood(t *testing.T, user, name string, cal, pro int) {
	t.Helper()
	if _, err := f.foods.CreateFood(context.Background(), user, name, cal, pro); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestService_ExcludesFoodsEatenToday(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, Options{})

	f.addFood(t, "u1", "Eggs", 150, 12)
	f.addFood(t, "u1", "Chicken", 300, 40)
	f.addFood(t, "u1", "chicken", 300, 40)

	if _, err := f.logs.LogFood(ctx, "u1", "Chicken", 300, 40, 1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	rec, err := f.service.Recommend(ctx, "u1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, b := range []*Bundle{rec.HitBoth, rec.ProteinFirst, rec.CalorieFirst} {
		if b == nil {
			continue
		}
		for _, it := range b.Foods {
			if it.Name == "Chicken" {
				t.Fatalf("recommended a food eaten today")
			}
		}
	}

	// name matching is case-sensitive, so "chicken" is still eligible
	found := false
	for _, it := range rec.CalorieFirst.Foods {
		if it.Name == "chicken" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected lowercase chicken in calorie_first, got %+v", rec.CalorieFirst.Foods)
	}
}

func TestService_RemainingBudgetFromGoals(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, Options{})

	f.addFood(t, "u1", "Shake", 200, 30)
	if _, err := f.goals.UpdateGoals(ctx, "u1", 1000, 80); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := f.logs.LogFood(ctx, "u1", "Lunch", 600, 50, 1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	rec, err := f.service.Recommend(ctx, "u1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if rec.RemainingCalories != 400 || rec.RemainingProtein != 30 {
		t.Fatalf("expected 400/30 remaining, got %d/%d", rec.RemainingCalories, rec.RemainingProtein)
	}
	if rec.HitBoth == nil || len(rec.HitBoth.Foods) != 1 {
		t.Fatalf("expected hit_both with the shake, got %+v", rec.HitBoth)
	}
	if rec.ConsumedCalories != 600 || rec.ConsumedProtein != 50 {
		t.Fatalf("expected consumed 600/50, got %d/%d", rec.ConsumedCalories, rec.ConsumedProtein)
	}
}

func TestService_OverGoalClampsToZero(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, Options{})

	f.addFood(t, "u1", "Apple", 95, 0)
	if _, err := f.logs.LogFood(ctx, "u1", "Feast", 3000, 150, 1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	rec, err := f.service.Recommend(ctx, "u1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if rec.RemainingCalories != 0 || rec.RemainingProtein != 0 {
		t.Fatalf("expected 0/0 remaining, got %d/%d", rec.RemainingCalories, rec.RemainingProtein)
	}
	if rec.HitBoth == nil || len(rec.HitBoth.Foods) != 0 {
		t.Fatalf("expected empty hit_both, got %+v", rec.HitBoth)
	}
}

func TestService_InsufficientFoods(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, Options{MinFoods: 2})

	f.addFood(t, "u1", "Toast", 80, 3)
	f.addFood(t, "u2", "Bagel", 250, 9)

	if _, err := f.service.Recommend(ctx, "u1"); !errors.Is(err, ErrInsufficientFoods) {
		t.Fatalf("expected ErrInsufficientFoods, got %v", err)
	}
}

func TestService_BudgetTooLarge(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, Options{MaxCells: 1000})

	f.addFood(t, "u1", "Pizza", 2000, 80)

	if _, err := f.service.Recommend(ctx, "u1"); !errors.Is(err, ErrBudgetTooLarge) {
		t.Fatalf("expected ErrBudgetTooLarge, got %v", err)
	}
}

type failingCatalog struct{}

func (failingCatalog) ListFoods(ctx context.Context, userID string) ([]food.Food, error) {
	return nil, errors.New("db down")
}

func TestService_CatalogError(t *testing.T) {
	f := newFixture(t, Options{})
	svc := NewService(failingCatalog{}, f.logs, f.goals, Options{}, logging.New("error", io.Discard))

	_, err := svc.Recommend(context.Background(), "u1")
	if err == nil || errors.Is(err, ErrInsufficientFoods) {
		t.Fatalf("expected wrapped catalog error, got %v", err)
	}
}

type fixedGoals struct {
	goals *goals.Goals
}

func (f fixedGoals) GetGoals(ctx context.Context, userID string) (*goals.Goals, error) {
	return f.goals, nil
}

func TestService_HugeCalorieGoalIsRejected(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, Options{})
	f.addFood(t, "u1", "Eggs", 150, 12)

	// goals stored by the service are bounded; this reader bypasses that
	huge := fixedGoals{goals: &goals.Goals{UserID: "u1", Calories: math.MaxInt, Protein: 10}}
	svc := NewService(f.foods, f.logs, huge, Options{}, logging.New("error", io.Discard))

	rec, err := svc.Recommend(ctx, "u1")
	if !errors.Is(err, ErrBudgetTooLarge) {
		t.Fatalf("expected ErrBudgetTooLarge, got %v (%+v)", err, rec)
	}

	if _, err := f.goals.UpdateGoals(ctx, "u1", math.MaxInt, 10); !errors.Is(err, goals.ErrInvalidGoals) {
		t.Fatalf("expected ErrInvalidGoals for an unbounded goal, got %v", err)
	}
}
