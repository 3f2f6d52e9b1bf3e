package summary

import (
	"context"
	"sort"
	"sync"
	"time"
)

type InMemoryRepository struct {
	mu        sync.RWMutex
	summaries map[string]Summary
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{summaries: make(map[string]Summary)}
}

func key(userID, date string) string {
	return userID + "|" + date
}

func (r *InMemoryRepository) Upsert(ctx context.Context, s *Summary) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	s.UpdatedAt = time.Now()
	r.summaries[key(s.UserID, s.Date)] = *s
	return nil
}

func (r *InMemoryRepository) Get(ctx context.Context, userID, date string) (*Summary, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.summaries[key(userID, date)]
	if !ok {
		return nil, ErrNotFound
	}
	return &s, nil
}

func (r *InMemoryRepository) ListSince(ctx context.Context, userID, from string) ([]Summary, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := []Summary{}
	for _, s := range r.summaries {
		if s.UserID == userID && s.Date >= from {
			out = append(out, s)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date > out[j].Date })
	return out, nil
}
