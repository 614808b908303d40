package volunteer

import "shelter-backend/internal/domains/schedule"

// Volunteer sở hữu đúng một schedule, tạo cùng lúc với volunteer
type Volunteer struct {
	ID         int64  `json:"id" db:"id"`
	Notes      string `json:"notes" db:"notes"`
	ScheduleID int64  `json:"schedule_id" db:"schedule_id"`
}

// WithSchedule - kết quả join volunteers + schedules
type WithSchedule struct {
	Volunteer Volunteer
	Schedule  schedule.Schedule
}
