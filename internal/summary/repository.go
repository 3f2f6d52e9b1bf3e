package summary

import (
	"context"

	"github.com/pkg/errors"
)

var ErrNotFound = errors.New("summary not found")

type Repository interface {
	// Upsert replaces any summary already saved for the same user and date.
	Upsert(ctx context.Context, s *Summary) error
	Get(ctx context.Context, userID, date string) (*Summary, error)
	// ListSince returns summaries dated on or after from, newest first.
	ListSince(ctx context.Context, userID, from string) ([]Summary, error)
}
