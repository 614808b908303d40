package volunteer

import (
	"shelter-backend/internal/domains/schedule"
)

type VolunteerDTO struct {
	ID              int64    `json:"id"`
	Notes           string   `json:"notes"`
	ScheduleID      int64    `json:"scheduleId"`
	Days            []string `json:"days"`
	StartTimeHour   int      `json:"startTimeHour"`
	StartTimeMinute int      `json:"startTimeMinute"`
	EndTimeHour     int      `json:"endTimeHour"`
	EndTimeMinute   int      `json:"endTimeMinute"`
	ScheduleString  string   `json:"scheduleString"`
}

// VolunteerRequest - POST/PUT /api/volunteers
// Các field schedule nằm phẳng cùng cấp với notes; scheduleId từ client bị bỏ qua
type VolunteerRequest struct {
	Notes *string `json:"notes,omitempty"`
	schedule.ScheduleRequest
}

func (r VolunteerRequest) Validate() error {
	return r.ScheduleRequest.Validate()
}

func (r VolunteerRequest) ValidateCreate() error {
	return r.ScheduleRequest.ValidateCreate()
}

// ToDTO: scheduleString luôn được tính lại
func (w WithSchedule) ToDTO() VolunteerDTO {
	s := w.Schedule.ToDTO()
	return VolunteerDTO{
		ID:              w.Volunteer.ID,
		Notes:           w.Volunteer.Notes,
		ScheduleID:      w.Volunteer.ScheduleID,
		Days:            s.Days,
		StartTimeHour:   s.StartTimeHour,
		StartTimeMinute: s.StartTimeMinute,
		EndTimeHour:     s.EndTimeHour,
		EndTimeMinute:   s.EndTimeMinute,
		ScheduleString:  s.ScheduleString,
	}
}

// ApplyUpdate: notes + schedule sửa tại chỗ, hai id không đổi
func (r VolunteerRequest) ApplyUpdate(w *WithSchedule) error {
	if r.Notes != nil {
		w.Volunteer.Notes = *r.Notes
	}
	return r.ScheduleRequest.ApplyUpdate(&w.Schedule)
}
