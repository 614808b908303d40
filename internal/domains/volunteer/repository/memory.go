package repository

import (
	"context"
	"errors"
	"slices"
	"sync"

	"shelter-backend/internal/domains/schedule"
	"shelter-backend/internal/domains/volunteer"
)

// MemoryRepository - in-memory volunteer.Repository, schedule lưu qua schedule.Repository
// (không có transaction thật)
type MemoryRepository struct {
	mu        sync.RWMutex
	nextID    int64
	rows      map[int64]volunteer.Volunteer
	schedules schedule.Repository
}

func NewMemoryRepository(schedules schedule.Repository) *MemoryRepository {
	return &MemoryRepository{rows: make(map[int64]volunteer.Volunteer), schedules: schedules}
}

func (r *MemoryRepository) CreateWithSchedule(ctx context.Context, v *volunteer.Volunteer, s *schedule.Schedule) (*volunteer.WithSchedule, error) {
	saved, err := r.schedules.Create(ctx, s)
	if err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	created := volunteer.Volunteer{ID: r.nextID, Notes: v.Notes, ScheduleID: saved.ID}
	r.rows[created.ID] = created
	return &volunteer.WithSchedule{Volunteer: created, Schedule: *saved}, nil
}

func (r *MemoryRepository) GetByID(ctx context.Context, id int64) (*volunteer.WithSchedule, error) {
	r.mu.RLock()
	v, ok := r.rows[id]
	r.mu.RUnlock()
	if !ok {
		return nil, volunteer.ErrVolunteerNotFound
	}

	s, err := r.schedules.GetByID(ctx, v.ScheduleID)
	if errors.Is(err, schedule.ErrScheduleNotFound) {
		return nil, volunteer.ErrVolunteerNotFound
	}
	if err != nil {
		return nil, err
	}
	return &volunteer.WithSchedule{Volunteer: v, Schedule: *s}, nil
}

func (r *MemoryRepository) List(ctx context.Context) ([]volunteer.WithSchedule, error) {
	r.mu.RLock()
	ids := make([]int64, 0, len(r.rows))
	for id := range r.rows {
		ids = append(ids, id)
	}
	r.mu.RUnlock()
	slices.Sort(ids)

	out := make([]volunteer.WithSchedule, 0, len(ids))
	for _, id := range ids {
		w, err := r.GetByID(ctx, id)
		if errors.Is(err, volunteer.ErrVolunteerNotFound) {
			continue
		}
		if err != nil {
			return nil, err
		}
		out = append(out, *w)
	}
	return out, nil
}

func (r *MemoryRepository) UpdateWithSchedule(ctx context.Context, w *volunteer.WithSchedule) (*volunteer.WithSchedule, error) {
	r.mu.Lock()
	current, ok := r.rows[w.Volunteer.ID]
	if ok {
		current.Notes = w.Volunteer.Notes
		r.rows[current.ID] = current
	}
	r.mu.Unlock()
	if !ok {
		return nil, volunteer.ErrVolunteerNotFound
	}

	w.Schedule.ID = current.ScheduleID
	saved, err := r.schedules.Update(ctx, &w.Schedule)
	if err != nil {
		return nil, err
	}
	return &volunteer.WithSchedule{Volunteer: current, Schedule: *saved}, nil
}

func (r *MemoryRepository) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.rows[id]; !ok {
		return volunteer.ErrVolunteerNotFound
	}
	delete(r.rows, id)
	return nil
}
