package visit

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"shelter-backend/internal/domains/adopter"
	"shelter-backend/internal/domains/animal"
	"shelter-backend/internal/domains/schedule"
)

// ShelterVisitDTO - response, ba reference được denormalize thành object đầy đủ
type ShelterVisitDTO struct {
	ID       int64                `json:"id"`
	Schedule schedule.ScheduleDTO `json:"schedule"`
	Animal   animal.AnimalDTO     `json:"animal"`
	Adopter  adopter.AdopterDTO   `json:"adopter"`
}

// ScheduleRef / EntityRef: client có thể gửi nguyên DTO lồng nhau, chỉ id được đọc
type ScheduleRef struct {
	ScheduleID int64 `json:"scheduleId"`
}

func (r ScheduleRef) Validate() error {
	return validation.ValidateStruct(&r, validation.Field(&r.ScheduleID, validation.Required, validation.Min(int64(1))))
}

type EntityRef struct {
	ID int64 `json:"id"`
}

func (r EntityRef) Validate() error {
	return validation.ValidateStruct(&r, validation.Field(&r.ID, validation.Required, validation.Min(int64(1))))
}

// ShelterVisitRequest - POST/PUT /api/shelter-visits
// id có mặt → update (merge các reference có mặt), không có → insert
type ShelterVisitRequest struct {
	ID       *int64       `json:"id,omitempty"`
	Schedule *ScheduleRef `json:"schedule,omitempty"`
	Animal   *EntityRef   `json:"animal,omitempty"`
	Adopter  *EntityRef   `json:"adopter,omitempty"`
}

func (r ShelterVisitRequest) IsUpdate() bool {
	return r.ID != nil && *r.ID > 0
}

// Validate: insert cần đủ ba reference, update chỉ kiểm tra reference có mặt
func (r ShelterVisitRequest) Validate() error {
	var refRules []validation.Rule
	if !r.IsUpdate() {
		refRules = append(refRules, validation.Required)
	}

	return validation.ValidateStruct(&r,
		validation.Field(&r.Schedule, refRules...),
		validation.Field(&r.Animal, refRules...),
		validation.Field(&r.Adopter, refRules...),
	)
}

func (r ShelterVisitRequest) ToEntity() *ShelterVisit {
	v := &ShelterVisit{}
	r.ApplyUpdate(v)
	return v
}

// ApplyUpdate ghi đè reference có mặt; id của visit không đổi
func (r ShelterVisitRequest) ApplyUpdate(v *ShelterVisit) {
	if r.Schedule != nil && r.Schedule.ScheduleID > 0 {
		v.ScheduleID = r.Schedule.ScheduleID
	}
	if r.Animal != nil && r.Animal.ID > 0 {
		v.AnimalID = r.Animal.ID
	}
	if r.Adopter != nil && r.Adopter.ID > 0 {
		v.AdopterID = r.Adopter.ID
	}
}
