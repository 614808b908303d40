package visit

import "context"

type Repository interface {
	Create(ctx context.Context, v *ShelterVisit) (*ShelterVisit, error)
	GetByID(ctx context.Context, id int64) (*ShelterVisit, error)
	List(ctx context.Context) ([]ShelterVisit, error)
	Update(ctx context.Context, v *ShelterVisit) (*ShelterVisit, error)
	Delete(ctx context.Context, id int64) error
}
