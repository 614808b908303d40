package schedule

import "context"

type Service interface {
	Create(ctx context.Context, req ScheduleRequest) (*ScheduleDTO, error)
	GetByID(ctx context.Context, id int64) (*ScheduleDTO, error)
	List(ctx context.Context) ([]ScheduleDTO, error)
	Update(ctx context.Context, id int64, req ScheduleRequest) (*ScheduleDTO, error)
	Delete(ctx context.Context, id int64) error
}
