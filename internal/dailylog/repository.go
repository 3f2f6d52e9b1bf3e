package dailylog

import (
	"context"

	"github.com/pkg/errors"
)

var ErrNotFound = errors.New("log entry not found")

// Repository defines the daily log data-access contract.
// ListByDate returns entries in the order they were logged.
type Repository interface {
	Create(ctx context.Context, e *Entry) error
	ListByDate(ctx context.Context, userID, date string) ([]Entry, error)
	Delete(ctx context.Context, userID, id string) error
}
