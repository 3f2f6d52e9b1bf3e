package summary

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/AndyIsBuilding/calorie-counter/internal/dailylog"
	"github.com/AndyIsBuilding/calorie-counter/internal/goals"
)

const (
	DefaultRecentDays = 7
	MaxRecentDays     = 366
)

var ErrInvalidRange = errors.New("days must be between 1 and 366")

// DayReader supplies today's date and log.
type DayReader interface {
	Today() string
	TodayLog(ctx context.Context, userID string) (*dailylog.Day, error)
}

type GoalReader interface {
	GetGoals(ctx context.Context, userID string) (*goals.Goals, error)
}

type Service struct {
	repo  Repository
	days  DayReader
	goals GoalReader
	log   logrus.FieldLogger
}

func NewService(repo Repository, days DayReader, goalReader GoalReader, log logrus.FieldLogger) *Service {
	return &Service{repo: repo, days: days, goals: goalReader, log: log}
}

// SaveToday snapshots today's log and goals, replacing an earlier save for
// the same day.
func (s *Service) SaveToday(ctx context.Context, userID string) (*Summary, error) {
	day, err := s.days.TodayLog(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "load daily log")
	}

	g, err := s.goals.GetGoals(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "load goals")
	}

	sum := newSummary(userID, day, g)
	if err := s.repo.Upsert(ctx, sum); err != nil {
		return nil, err
	}

	s.log.WithFields(logrus.Fields{
		"user_id": userID,
		"date":    sum.Date,
		"entries": len(day.Entries),
	}).Info("daily summary saved")

	return sum, nil
}

// Recent lists summaries from the last days days, today included, newest first.
func (s *Service) Recent(ctx context.Context, userID string, days int) ([]Summary, error) {
	if days < 1 || days > MaxRecentDays {
		return nil, ErrInvalidRange
	}

	today, err := time.Parse("2006-01-02", s.days.Today())
	if err != nil {
		return nil, errors.Wrap(err, "parse today")
	}
	from := today.AddDate(0, 0, -days).Format("2006-01-02")

	return s.repo.ListSince(ctx, userID, from)
}
