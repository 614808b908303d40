package schedule

import "context"

// Repository defines data access for schedules
type Repository interface {
	Create(ctx context.Context, s *Schedule) (*Schedule, error)

	// GetByID returns ErrScheduleNotFound if not exists
	GetByID(ctx context.Context, id int64) (*Schedule, error)

	List(ctx context.Context) ([]Schedule, error)

	// Update ghi đè toàn bộ row theo s.ID
	Update(ctx context.Context, s *Schedule) (*Schedule, error)

	Delete(ctx context.Context, id int64) error
}
