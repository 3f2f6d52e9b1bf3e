package dailylog

import (
	"context"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/AndyIsBuilding/calorie-counter/internal/food"
)

var ErrInvalidEntry = errors.New("invalid log entry")

// MaxServings bounds the multiplier on a custom entry.
const MaxServings = 100

// FoodReader resolves catalog foods for quick logging.
type FoodReader interface {
	GetFood(ctx context.Context, userID, id string) (*food.Food, error)
}

type Service struct {
	repo     Repository
	foods    FoodReader
	loc      *time.Location
	now      func() time.Time
	validate *validator.Validate
	log      logrus.FieldLogger
}

func NewService(repo Repository, foods FoodReader, loc *time.Location, log logrus.FieldLogger) *Service {
	if loc == nil {
		loc = time.UTC
	}
	return &Service{
		repo:     repo,
		foods:    foods,
		loc:      loc,
		now:      time.Now,
		validate: validator.New(),
		log:      log,
	}
}

// Today is the current date in the configured timezone, as YYYY-MM-DD.
func (s *Service) Today() string {
	return s.now().In(s.loc).Format("2006-01-02")
}

// LogFood records a custom food. Totals are calories*servings and
// protein*servings, truncated toward zero. Zero servings log a zero entry.
func (s *Service) LogFood(
	ctx context.Context,
	userID string,
	name string,
	calories int,
	protein int,
	servings float64,
) (*Entry, error) {
	if servings < 0 || servings > MaxServings {
		return nil, errors.Wrapf(ErrInvalidEntry, "servings %v out of range", servings)
	}

	e := &Entry{
		UserID:   userID,
		Date:     s.Today(),
		FoodName: strings.TrimSpace(name),
		Calories: int(float64(calories) * servings),
		Protein:  int(float64(protein) * servings),
	}
	if err := s.validate.Struct(e); err != nil {
		return nil, errors.Wrap(ErrInvalidEntry, err.Error())
	}

	if err := s.repo.Create(ctx, e); err != nil {
		return nil, err
	}

	s.log.WithFields(logrus.Fields{
		"user_id":  userID,
		"food":     e.FoodName,
		"calories": e.Calories,
		"protein":  e.Protein,
	}).Debug("food logged")

	return e, nil
}

// LogQuickFood records one serving of a catalog food.
func (s *Service) LogQuickFood(ctx context.Context, userID, foodID string) (*Entry, error) {
	f, err := s.foods.GetFood(ctx, userID, foodID)
	if err != nil {
		return nil, err
	}

	e := &Entry{
		UserID:   userID,
		Date:     s.Today(),
		FoodName: f.Name,
		Calories: f.Calories,
		Protein:  f.Protein,
	}
	if err := s.repo.Create(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}

// TodayLog returns today's entries and totals for the user.
func (s *Service) TodayLog(ctx context.Context, userID string) (*Day, error) {
	date := s.Today()
	entries, err := s.repo.ListByDate(ctx, userID, date)
	if err != nil {
		return nil, err
	}
	return newDay(date, entries), nil
}

func (s *Service) RemoveEntry(ctx context.Context, userID, id string) error {
	return s.repo.Delete(ctx, userID, id)
}
