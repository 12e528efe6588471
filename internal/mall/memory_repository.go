package mall

import (
	"context"
	"errors"
	"sort"
	"sync"
)

type memoryRepository struct {
	mu    sync.RWMutex
	malls map[string]Mall
}

// NewMemoryRepository constructs an in-memory repository for tests and dev mode.
func NewMemoryRepository() Repository {
	return &memoryRepository{malls: make(map[string]Mall)}
}

func (r *memoryRepository) Create(_ context.Context, mall Mall) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.malls[mall.ID]; exists {
		return errors.New("mall exists")
	}
	r.malls[mall.ID] = mall
	return nil
}

func (r *memoryRepository) List(_ context.Context) ([]Mall, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	malls := make([]Mall, 0, len(r.malls))
	for _, m := range r.malls {
		malls = append(malls, m)
	}
	sort.Slice(malls, func(i, j int) bool { return malls[i].Name < malls[j].Name })
	return malls, nil
}
