package repository

import (
	"context"
	"slices"
	"sync"

	"shelter-backend/internal/domains/auth"
)

// MemoryRepository - in-memory auth.Repository cho tests
type MemoryRepository struct {
	mu         sync.RWMutex
	nextID     int64
	byUsername map[string]auth.User
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{byUsername: make(map[string]auth.User)}
}

func (r *MemoryRepository) FindByUsername(_ context.Context, username string) (*auth.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.byUsername[username]
	if !ok {
		return nil, auth.ErrUserNotFound
	}
	u.Roles = slices.Clone(u.Roles)
	return &u, nil
}

func (r *MemoryRepository) Create(_ context.Context, u *auth.User) (*auth.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byUsername[u.Username]; ok {
		return nil, auth.ErrUsernameTaken
	}

	r.nextID++
	created := *u
	created.ID = r.nextID
	created.Roles = slices.Clone(u.Roles)
	r.byUsername[created.Username] = created
	return &created, nil
}
