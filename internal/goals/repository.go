package goals

import (
	"context"

	"github.com/pkg/errors"
)

var ErrNotFound = errors.New("goals not set")

type Repository interface {
	Get(ctx context.Context, userID string) (*Goals, error)
	Upsert(ctx context.Context, g *Goals) error
}
