package food

import (
	"context"

	"github.com/pkg/errors"
)

var ErrNotFound = errors.New("food not found")

// Repository defines the catalog data-access contract.
// List returns a user's foods ordered by name, then creation time.
type Repository interface {
	Create(ctx context.Context, f *Food) error
	List(ctx context.Context, userID string) ([]Food, error)
	Get(ctx context.Context, userID, id string) (*Food, error)
	Delete(ctx context.Context, userID, id string) error
}
