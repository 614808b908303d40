package adopter

import "context"

type Repository interface {
	Create(ctx context.Context, a *Adopter) (*Adopter, error)

	// GetByID returns ErrAdopterNotFound if not exists
	GetByID(ctx context.Context, id int64) (*Adopter, error)

	List(ctx context.Context) ([]Adopter, error)
	Update(ctx context.Context, a *Adopter) (*Adopter, error)
	Delete(ctx context.Context, id int64) error
}
