package schedule

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"shelter-backend/internal/shared/utils"
)

// ScheduleDTO - wire format, cũng được nhúng trong ShelterVisitDTO
type ScheduleDTO struct {
	ScheduleID      int64    `json:"scheduleId"`
	Days            []string `json:"days"`
	StartTimeHour   int      `json:"startTimeHour"`
	StartTimeMinute int      `json:"startTimeMinute"`
	EndTimeHour     int      `json:"endTimeHour"`
	EndTimeMinute   int      `json:"endTimeMinute"`
	ScheduleString  string   `json:"scheduleString"`
}

// ScheduleRequest - POST/PUT /api/schedules
// Mọi field optional để PUT chỉ ghi đè field có mặt
type ScheduleRequest struct {
	Days            []string `json:"days,omitempty"`
	StartTimeHour   *int     `json:"startTimeHour,omitempty"`
	StartTimeMinute *int     `json:"startTimeMinute,omitempty"`
	EndTimeHour     *int     `json:"endTimeHour,omitempty"`
	EndTimeMinute   *int     `json:"endTimeMinute,omitempty"`
}

func (r ScheduleRequest) Validate() error {
	return validation.ValidateStruct(&r, r.rules(false)...)
}

// ValidateCreate: như Validate nhưng days bắt buộc
func (r ScheduleRequest) ValidateCreate() error {
	return validation.ValidateStruct(&r, r.rules(true)...)
}

func (r *ScheduleRequest) rules(create bool) []*validation.FieldRules {
	dayRules := []validation.Rule{validation.Each(validation.By(validDay))}
	if create {
		dayRules = append(dayRules, validation.Required.Error("at least one day is required"))
	}

	return []*validation.FieldRules{
		validation.Field(&r.Days, dayRules...),
		validation.Field(&r.StartTimeHour, validation.Min(0), validation.Max(23)),
		validation.Field(&r.StartTimeMinute, validation.Min(0), validation.Max(59)),
		validation.Field(&r.EndTimeHour, validation.Min(0), validation.Max(23)),
		validation.Field(&r.EndTimeMinute, validation.Min(0), validation.Max(59)),
	}
}

func validDay(value interface{}) error {
	name, _ := value.(string)
	_, err := ParseDay(name)
	return err
}

// ToDTO converts Schedule entity to ScheduleDTO, scheduleString tính lại mỗi lần
func (s Schedule) ToDTO() ScheduleDTO {
	return ScheduleDTO{
		ScheduleID:      s.ID,
		Days:            DayNames(s.Days),
		StartTimeHour:   s.StartHour,
		StartTimeMinute: s.StartMinute,
		EndTimeHour:     s.EndHour,
		EndTimeMinute:   s.EndMinute,
		ScheduleString:  s.String(),
	}
}

// ToEntity: request đã qua ValidateCreate nên ParseDays không lỗi
func (r ScheduleRequest) ToEntity() (*Schedule, error) {
	days, err := ParseDays(r.Days)
	if err != nil {
		return nil, err
	}
	return &Schedule{
		Days:        days,
		StartHour:   utils.Deref(r.StartTimeHour),
		StartMinute: utils.Deref(r.StartTimeMinute),
		EndHour:     utils.Deref(r.EndTimeHour),
		EndMinute:   utils.Deref(r.EndTimeMinute),
	}, nil
}

// ApplyUpdate ghi đè các field non-nil; id giữ nguyên
func (r ScheduleRequest) ApplyUpdate(s *Schedule) error {
	if r.Days != nil {
		days, err := ParseDays(r.Days)
		if err != nil {
			return err
		}
		s.Days = days
	}
	if r.StartTimeHour != nil {
		s.StartHour = *r.StartTimeHour
	}
	if r.StartTimeMinute != nil {
		s.StartMinute = *r.StartTimeMinute
	}
	if r.EndTimeHour != nil {
		s.EndHour = *r.EndTimeHour
	}
	if r.EndTimeMinute != nil {
		s.EndMinute = *r.EndTimeMinute
	}
	return nil
}
