package animal

import "context"

// Repository defines data access for animals
type Repository interface {
	Create(ctx context.Context, a *Animal) (*Animal, error)

	// GetByID returns ErrAnimalNotFound if not exists
	GetByID(ctx context.Context, id int64) (*Animal, error)

	List(ctx context.Context) ([]Animal, error)

	ListByAvailability(ctx context.Context, isAvailable bool) ([]Animal, error)

	// Update ghi đè toàn bộ row theo a.ID
	Update(ctx context.Context, a *Animal) (*Animal, error)

	// Delete returns ErrAnimalNotFound when no row was removed
	Delete(ctx context.Context, id int64) error
}
