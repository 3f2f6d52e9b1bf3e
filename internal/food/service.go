package food

import (
	"context"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

var ErrInvalidFood = errors.New("invalid food")

type Service struct {
	repo     Repository
	validate *validator.Validate
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo, validate: validator.New()}
}

// CreateFood adds a quick-add food to the user's catalog.
func (s *Service) CreateFood(
	ctx context.Context,
	userID string,
	name string,
	calories int,
	protein int,
) (*Food, error) {
	f := &Food{
		UserID:   userID,
		Name:     strings.TrimSpace(name),
		Calories: calories,
		Protein:  protein,
	}

	if err := s.validate.Struct(f); err != nil {
		return nil, errors.Wrap(ErrInvalidFood, err.Error())
	}

	if err := s.repo.Create(ctx, f); err != nil {
		return nil, err
	}
	return f, nil
}

// ListFoods returns the user's catalog in recommendation order.
func (s *Service) ListFoods(ctx context.Context, userID string) ([]Food, error) {
	return s.repo.List(ctx, userID)
}

func (s *Service) GetFood(ctx context.Context, userID, id string) (*Food, error) {
	return s.repo.Get(ctx, userID, id)
}

func (s *Service) DeleteFood(ctx context.Context, userID, id string) error {
	return s.repo.Delete(ctx, userID, id)
}
