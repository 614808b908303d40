package repository

import (
	"context"
	"slices"
	"sync"

	"shelter-backend/internal/domains/schedule"
)

// MemoryRepository - in-memory schedule.Repository cho tests và local dev
type MemoryRepository struct {
	mu     sync.RWMutex
	nextID int64
	rows   map[int64]schedule.Schedule
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{rows: make(map[int64]schedule.Schedule)}
}

func (r *MemoryRepository) Create(_ context.Context, s *schedule.Schedule) (*schedule.Schedule, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	created := clone(*s)
	created.ID = r.nextID
	r.rows[created.ID] = created

	out := clone(created)
	return &out, nil
}

func (r *MemoryRepository) GetByID(_ context.Context, id int64) (*schedule.Schedule, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.rows[id]
	if !ok {
		return nil, schedule.ErrScheduleNotFound
	}
	out := clone(s)
	return &out, nil
}

func (r *MemoryRepository) List(_ context.Context) ([]schedule.Schedule, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]schedule.Schedule, 0, len(r.rows))
	for _, s := range r.rows {
		out = append(out, clone(s))
	}
	slices.SortFunc(out, func(a, b schedule.Schedule) int { return int(a.ID - b.ID) })
	return out, nil
}

func (r *MemoryRepository) Update(_ context.Context, s *schedule.Schedule) (*schedule.Schedule, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.rows[s.ID]; !ok {
		return nil, schedule.ErrScheduleNotFound
	}
	r.rows[s.ID] = clone(*s)

	out := clone(*s)
	return &out, nil
}

func (r *MemoryRepository) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.rows[id]; !ok {
		return schedule.ErrScheduleNotFound
	}
	delete(r.rows, id)
	return nil
}

func clone(s schedule.Schedule) schedule.Schedule {
	s.Days = slices.Clone(s.Days)
	return s
}
