package volunteer

import (
	"context"

	"shelter-backend/internal/domains/schedule"
)

type Repository interface {
	// CreateWithSchedule inserts the schedule, then the volunteer pointing at it,
	// in one transaction
	CreateWithSchedule(ctx context.Context, v *Volunteer, s *schedule.Schedule) (*WithSchedule, error)

	// GetByID returns ErrVolunteerNotFound if the volunteer or its schedule is missing
	GetByID(ctx context.Context, id int64) (*WithSchedule, error)

	// List bỏ qua volunteer có schedule đã bị xóa
	List(ctx context.Context) ([]WithSchedule, error)

	// UpdateWithSchedule saves both rows in one transaction
	UpdateWithSchedule(ctx context.Context, w *WithSchedule) (*WithSchedule, error)

	// Delete removes the volunteer row only
	Delete(ctx context.Context, id int64) error
}
