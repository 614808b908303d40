package volunteer

import "context"

type Service interface {
	Create(ctx context.Context, req VolunteerRequest) (*VolunteerDTO, error)
	GetByID(ctx context.Context, id int64) (*VolunteerDTO, error)
	List(ctx context.Context) ([]VolunteerDTO, error)
	Update(ctx context.Context, id int64, req VolunteerRequest) (*VolunteerDTO, error)
	Delete(ctx context.Context, id int64) error
}
