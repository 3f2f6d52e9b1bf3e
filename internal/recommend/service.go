package recommend

import (
	"context"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/AndyIsBuilding/calorie-counter/internal/dailylog"
	"github.com/AndyIsBuilding/calorie-counter/internal/food"
	"github.com/AndyIsBuilding/calorie-counter/internal/goals"
)

var (
	ErrInsufficientFoods = errors.New("not enough foods to recommend from")
	ErrBudgetTooLarge    = errors.New("calorie budget too large to plan")
)

const (
	DefaultMinFoods = 1
	DefaultMaxCells = 5_000_000
)

type CatalogReader interface {
	ListFoods(ctx context.Context, userID string) ([]food.Food, error)
}

type DayReader interface {
	TodayLog(ctx context.Context, userID string) (*dailylog.Day, error)
}

type GoalReader interface {
	GetGoals(ctx context.Context, userID string) (*goals.Goals, error)
}

type Service struct {
	catalog  CatalogReader
	days     DayReader
	goals    GoalReader
	minFoods int
	maxCells int
	log      logrus.FieldLogger
}

type Options struct {
	// MinFoods is the smallest filtered catalog worth recommending from.
	MinFoods int
	// MaxCells caps the knapsack table size for one request.
	MaxCells int
}

func NewService(
	catalog CatalogReader,
	days DayReader,
	goalReader GoalReader,
	opts Options,
	log logrus.FieldLogger,
) *Service {
	if opts.MinFoods <= 0 {
		opts.MinFoods = DefaultMinFoods
	}
	if opts.MaxCells <= 0 {
		opts.MaxCells = DefaultMaxCells
	}
	return &Service{
		catalog:  catalog,
		days:     days,
		goals:    goalReader,
		minFoods: opts.MinFoods,
		maxCells: opts.MaxCells,
		log:      log,
	}
}

// Recommend plans food bundles for what is left of the user's day.
// Foods already eaten today, matched by exact name, are never suggested.
func (s *Service) Recommend(ctx context.Context, userID string) (*Recommendation, error) {
	day, err := s.days.TodayLog(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "load daily log")
	}

	g, err := s.goals.GetGoals(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "load goals")
	}

	foods, err := s.catalog.ListFoods(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "load catalog")
	}

	eaten := day.EatenNames()
	catalog := make([]food.Food, 0, len(foods))
	for _, f := range foods {
		if !eaten[f.Name] {
			catalog = append(catalog, f)
		}
	}

	remainingCalories := remaining(g.Calories, day.TotalCalories)
	remainingProtein := remaining(g.Protein, day.TotalProtein)

	log := s.log.WithFields(logrus.Fields{
		"user_id":            userID,
		"catalog_size":       len(catalog),
		"remaining_calories": remainingCalories,
		"remaining_protein":  remainingProtein,
	})

	if len(catalog) < s.minFoods {
		log.Info("catalog too small for recommendations")
		return nil, ErrInsufficientFoods
	}

	if cells := TableCells(catalog, remainingCalories); cells > s.maxCells {
		log.WithField("cells", cells).Warn("recommendation table over limit")
		return nil, errors.Wrapf(ErrBudgetTooLarge, "%d cells exceeds %d", cells, s.maxCells)
	}

	res := Recommend(catalog, remainingCalories, remainingProtein)

	log.WithFields(logrus.Fields{
		"hit_both":      res.HitBoth != nil,
		"protein_first": res.ProteinFirst != nil,
	}).Debug("recommendations computed")

	return &Recommendation{
		Result:            res,
		ConsumedCalories:  day.TotalCalories,
		ConsumedProtein:   day.TotalProtein,
		RemainingCalories: remainingCalories,
		RemainingProtein:  remainingProtein,
	}, nil
}

func remaining(goal, consumed int) int {
	if goal-consumed < 0 {
		return 0
	}
	return goal - consumed
}
