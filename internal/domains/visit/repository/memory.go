package repository

import (
	"context"
	"slices"
	"sync"

	"shelter-backend/internal/domains/visit"
)

// MemoryRepository - in-memory visit.Repository cho tests
type MemoryRepository struct {
	mu     sync.RWMutex
	nextID int64
	rows   map[int64]visit.ShelterVisit
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{rows: make(map[int64]visit.ShelterVisit)}
}

func (r *MemoryRepository) Create(_ context.Context, v *visit.ShelterVisit) (*visit.ShelterVisit, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	created := *v
	created.ID = r.nextID
	r.rows[created.ID] = created
	return &created, nil
}

func (r *MemoryRepository) GetByID(_ context.Context, id int64) (*visit.ShelterVisit, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	v, ok := r.rows[id]
	if !ok {
		return nil, visit.ErrVisitNotFound
	}
	return &v, nil
}

func (r *MemoryRepository) List(_ context.Context) ([]visit.ShelterVisit, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]visit.ShelterVisit, 0, len(r.rows))
	for _, v := range r.rows {
		out = append(out, v)
	}
	slices.SortFunc(out, func(a, b visit.ShelterVisit) int { return int(a.ID - b.ID) })
	return out, nil
}

func (r *MemoryRepository) Update(_ context.Context, v *visit.ShelterVisit) (*visit.ShelterVisit, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.rows[v.ID]; !ok {
		return nil, visit.ErrVisitNotFound
	}
	r.rows[v.ID] = *v
	updated := *v
	return &updated, nil
}

func (r *MemoryRepository) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.rows[id]; !ok {
		return visit.ErrVisitNotFound
	}
	delete(r.rows, id)
	return nil
}
