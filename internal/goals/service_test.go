package goals

import (
	"context"
	"math"
	"testing"

	"github.com/pkg/errors"

	"github.com/AndyIsBuilding/calorie-counter/internal/dailylog"
)

type stubDays struct {
	day *dailylog.Day
}

func (s stubDays) TodayLog(ctx context.Context, userID string) (*dailylog.Day, error) {
	return s.day, nil
}

func TestGetGoals_Defaults(t *testing.T) {
	service := NewService(NewInMemoryRepository(), stubDays{})

	g, err := service.GetGoals(context.Background(), "u1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if g.Calories != DefaultCalories || g.Protein != DefaultProtein {
		t.Fatalf("expected defaults, got %+v", g)
	}
}

func TestUpdateGoals(t *testing.T) {
	ctx := context.Background()
	service := NewService(NewInMemoryRepository(), stubDays{})

	if _, err := service.UpdateGoals(ctx, "u1", 1800, 140); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	g, err := service.GetGoals(ctx, "u1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if g.Calories != 1800 || g.Protein != 140 {
		t.Fatalf("unexpected goals: %+v", g)
	}

	other, _ := service.GetGoals(ctx, "u2")
	if other.Calories != DefaultCalories {
		t.Fatalf("goals leaked across users: %+v", other)
	}
}

func TestUpdateGoals_RejectsOutOfRange(t *testing.T) {
	service := NewService(NewInMemoryRepository(), stubDays{})

	tests := []struct {
		name     string
		calories int
		protein  int
	}{
		{"negative calories", -1, 100},
		{"negative protein", 2000, -1},
		{"calories above bound", 100001, 100},
		{"protein above bound", 2000, 10001},
		{"max int calories", math.MaxInt, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.UpdateGoals(context.Background(), "u1", tt.calories, tt.protein)
			if !errors.Is(err, ErrInvalidGoals) {
				t.Fatalf("expected ErrInvalidGoals, got %v", err)
			}
		})
	}
}

func TestTodayProgress(t *testing.T) {
	ctx := context.Background()
	days := stubDays{day: &dailylog.Day{Date: "2024-03-01", TotalCalories: 2500, TotalProtein: 50}}
	service := NewService(NewInMemoryRepository(), days)

	p, err := service.TodayProgress(ctx, "u1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if p.Date != "2024-03-01" {
		t.Fatalf("unexpected date %s", p.Date)
	}
	if p.Calories.Percent != 1 {
		t.Fatalf("calorie percent should cap at 1, got %v", p.Calories.Percent)
	}
	if p.Protein.Percent != 0.5 || p.Protein.Goal != DefaultProtein || p.Protein.Consumed != 50 {
		t.Fatalf("unexpected protein metric: %+v", p.Protein)
	}
}

func TestNewMetric_ZeroGoal(t *testing.T) {
	m := newMetric(300, 0)
	if m.Percent != 0 {
		t.Fatalf("expected 0 percent for zero goal, got %v", m.Percent)
	}
}
