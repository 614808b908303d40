package repository

import (
	"context"
	"slices"
	"sync"

	"shelter-backend/internal/domains/adopter"
)

// MemoryRepository - in-memory adopter.Repository cho tests
type MemoryRepository struct {
	mu     sync.RWMutex
	nextID int64
	rows   map[int64]adopter.Adopter
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{rows: make(map[int64]adopter.Adopter)}
}

func (r *MemoryRepository) Create(_ context.Context, a *adopter.Adopter) (*adopter.Adopter, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	created := *a
	created.ID = r.nextID
	r.rows[created.ID] = created
	return &created, nil
}

func (r *MemoryRepository) GetByID(_ context.Context, id int64) (*adopter.Adopter, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	a, ok := r.rows[id]
	if !ok {
		return nil, adopter.ErrAdopterNotFound
	}
	return &a, nil
}

func (r *MemoryRepository) List(_ context.Context) ([]adopter.Adopter, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]adopter.Adopter, 0, len(r.rows))
	for _, a := range r.rows {
		out = append(out, a)
	}
	slices.SortFunc(out, func(a, b adopter.Adopter) int { return int(a.ID - b.ID) })
	return out, nil
}

func (r *MemoryRepository) Update(_ context.Context, a *adopter.Adopter) (*adopter.Adopter, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.rows[a.ID]; !ok {
		return nil, adopter.ErrAdopterNotFound
	}
	r.rows[a.ID] = *a
	updated := *a
	return &updated, nil
}

func (r *MemoryRepository) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.rows[id]; !ok {
		return adopter.ErrAdopterNotFound
	}
	delete(r.rows, id)
	return nil
}
