package food

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

type InMemoryRepository struct {
	mu    sync.RWMutex
	foods []Food
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{}
}

func (r *InMemoryRepository) Create(ctx context.Context, f *Food) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if f.ID == "" {
		f.ID = uuid.New().String()
	}
	if f.CreatedAt.IsZero() {
		f.CreatedAt = time.Now()
	}
	r.foods = append(r.foods, *f)
	return nil
}

func (r *InMemoryRepository) List(ctx context.Context, userID string) ([]Food, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := []Food{}
	for _, f := range r.foods {
		if f.UserID == userID {
			out = append(out, f)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Name != out[j].Name {
			return out[i].Name < out[j].Name
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out, nil
}

func (r *InMemoryRepository) Get(ctx context.Context, userID, id string) (*Food, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, f := range r.foods {
		if f.ID == id && f.UserID == userID {
			found := f
			return &found, nil
		}
	}
	return nil, ErrNotFound
}

func (r *InMemoryRepository) Delete(ctx context.Context, userID, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, f := range r.foods {
		if f.ID == id && f.UserID == userID {
			r.foods = append(r.foods[:i], r.foods[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}
