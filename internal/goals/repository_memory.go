package goals

import (
	"context"
	"sync"
)

type InMemoryRepository struct {
	mu    sync.RWMutex
	goals map[string]Goals
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{goals: make(map[string]Goals)}
}

func (r *InMemoryRepository) Get(ctx context.Context, userID string) (*Goals, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	g, ok := r.goals[userID]
	if !ok {
		return nil, ErrNotFound
	}
	return &g, nil
}

func (r *InMemoryRepository) Upsert(ctx context.Context, g *Goals) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.goals[g.UserID] = *g
	return nil
}
