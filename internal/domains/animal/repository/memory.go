package repository

import (
	"context"
	"slices"
	"sync"

	"shelter-backend/internal/domains/animal"
)

// MemoryRepository - in-memory animal.Repository cho tests
type MemoryRepository struct {
	mu     sync.RWMutex
	nextID int64
	rows   map[int64]animal.Animal
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{rows: make(map[int64]animal.Animal)}
}

func (r *MemoryRepository) Create(_ context.Context, a *animal.Animal) (*animal.Animal, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	created := *a
	created.ID = r.nextID
	r.rows[created.ID] = created
	return &created, nil
}

func (r *MemoryRepository) GetByID(_ context.Context, id int64) (*animal.Animal, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	a, ok := r.rows[id]
	if !ok {
		return nil, animal.ErrAnimalNotFound
	}
	return &a, nil
}

func (r *MemoryRepository) List(_ context.Context) ([]animal.Animal, error) {
	return r.filter(func(animal.Animal) bool { return true }), nil
}

func (r *MemoryRepository) ListByAvailability(_ context.Context, isAvailable bool) ([]animal.Animal, error) {
	return r.filter(func(a animal.Animal) bool { return a.IsAvailable == isAvailable }), nil
}

func (r *MemoryRepository) filter(keep func(animal.Animal) bool) []animal.Animal {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]animal.Animal, 0, len(r.rows))
	for _, a := range r.rows {
		if keep(a) {
			out = append(out, a)
		}
	}
	slices.SortFunc(out, func(a, b animal.Animal) int { return int(a.ID - b.ID) })
	return out
}

func (r *MemoryRepository) Update(_ context.Context, a *animal.Animal) (*animal.Animal, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.rows[a.ID]; !ok {
		return nil, animal.ErrAnimalNotFound
	}
	r.rows[a.ID] = *a
	updated := *a
	return &updated, nil
}

func (r *MemoryRepository) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.rows[id]; !ok {
		return animal.ErrAnimalNotFound
	}
	delete(r.rows, id)
	return nil
}
