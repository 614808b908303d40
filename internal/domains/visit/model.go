package visit

// ShelterVisit chỉ giữ id của schedule, animal, adopter; không có FK
type ShelterVisit struct {
	ID         int64 `json:"id" db:"id"`
	ScheduleID int64 `json:"schedule_id" db:"schedule_id"`
	AnimalID   int64 `json:"animal_id" db:"animal_id"`
	AdopterID  int64 `json:"adopter_id" db:"adopter_id"`
}
