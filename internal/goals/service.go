package goals

import (
	"context"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"

	"github.com/AndyIsBuilding/calorie-counter/internal/dailylog"
)

var ErrInvalidGoals = errors.New("invalid goals")

// DayReader supplies today's consumption.
type DayReader interface {
	TodayLog(ctx context.Context, userID string) (*dailylog.Day, error)
}

type Service struct {
	repo     Repository
	days     DayReader
	validate *validator.Validate
}

func NewService(repo Repository, days DayReader) *Service {
	return &Service{repo: repo, days: days, validate: validator.New()}
}

// GetGoals returns the user's goals, or the defaults when none are stored.
func (s *Service) GetGoals(ctx context.Context, userID string) (*Goals, error) {
	g, err := s.repo.Get(ctx, userID)
	if errors.Is(err, ErrNotFound) {
		return Defaults(userID), nil
	}
	if err != nil {
		return nil, err
	}
	return g, nil
}

func (s *Service) UpdateGoals(ctx context.Context, userID string, calories, protein int) (*Goals, error) {
	g := &Goals{UserID: userID, Calories: calories, Protein: protein}
	if err := s.validate.Struct(g); err != nil {
		return nil, errors.Wrap(ErrInvalidGoals, err.Error())
	}
	if err := s.repo.Upsert(ctx, g); err != nil {
		return nil, err
	}
	return g, nil
}

// TodayProgress compares today's log against the user's goals.
func (s *Service) TodayProgress(ctx context.Context, userID string) (*Progress, error) {
	g, err := s.GetGoals(ctx, userID)
	if err != nil {
		return nil, err
	}

	day, err := s.days.TodayLog(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &Progress{
		Date:     day.Date,
		Goals:    g,
		Calories: newMetric(day.TotalCalories, g.Calories),
		Protein:  newMetric(day.TotalProtein, g.Protein),
	}, nil
}
