package adopter

import "context"

type Service interface {
	Create(ctx context.Context, req AdopterRequest) (*AdopterDTO, error)
	GetByID(ctx context.Context, id int64) (*AdopterDTO, error)
	List(ctx context.Context) ([]AdopterDTO, error)
	Update(ctx context.Context, id int64, req AdopterRequest) (*AdopterDTO, error)
	Delete(ctx context.Context, id int64) error
}
