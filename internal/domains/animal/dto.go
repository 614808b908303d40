package animal

import (
	"errors"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"shelter-backend/internal/shared/utils"
)

const DateLayout = "2006-01-02"

// AnimalDTO - response body
type AnimalDTO struct {
	ID             int64  `json:"id"`
	Code           string `json:"code"`
	Name           string `json:"name"`
	Breed          string `json:"breed"`
	ArrivalDate    string `json:"arrivalDate,omitempty"`
	ImageURL       string `json:"imageUrl"`
	Gender         Gender `json:"gender,omitempty"`
	Age            int    `json:"age"`
	Vaccinated     bool   `json:"vaccinated"`
	Castrated      bool   `json:"castrated"`
	Wormed         bool   `json:"wormed"`
	ElectronicChip string `json:"electronicChip"`
	Illness        string `json:"illness"`
	Notes          string `json:"notes"`
	IsAvailable    bool   `json:"isAvailable"`
	HasBeenAdopted bool   `json:"hasBeenAdopted"`
}

// AnimalRequest - multipart part "data" của POST/PUT /api/animals
// Tất cả optional: PUT chỉ ghi đè field có mặt. id, code, imageUrl do server quản lý.
type AnimalRequest struct {
	Name           *string `json:"name,omitempty"`
	Breed          *string `json:"breed,omitempty"`
	ArrivalDate    *string `json:"arrivalDate,omitempty"`
	Gender         *Gender `json:"gender,omitempty"`
	Age            *int    `json:"age,omitempty"`
	Vaccinated     *bool   `json:"vaccinated,omitempty"`
	Castrated      *bool   `json:"castrated,omitempty"`
	Wormed         *bool   `json:"wormed,omitempty"`
	ElectronicChip *string `json:"electronicChip,omitempty"`
	Illness        *string `json:"illness,omitempty"`
	Notes          *string `json:"notes,omitempty"`
	IsAvailable    *bool   `json:"isAvailable,omitempty"`
	HasBeenAdopted *bool   `json:"hasBeenAdopted,omitempty"`
}

// Validate checks present fields only (PUT)
func (r AnimalRequest) Validate() error {
	return validation.ValidateStruct(&r, r.rules(false)...)
}

// ValidateCreate: như Validate nhưng name bắt buộc
func (r AnimalRequest) ValidateCreate() error {
	return validation.ValidateStruct(&r, r.rules(true)...)
}

func (r *AnimalRequest) rules(create bool) []*validation.FieldRules {
	nameRules := []validation.Rule{validation.NilOrNotEmpty.Error("name must not be blank"), validation.By(notBlank)}
	if create {
		nameRules = append([]validation.Rule{validation.Required.Error("name is required")}, nameRules...)
	}

	return []*validation.FieldRules{
		validation.Field(&r.Name, nameRules...),
		validation.Field(&r.ArrivalDate, validation.Date(DateLayout).Error("arrivalDate must be YYYY-MM-DD")),
		validation.Field(&r.Gender, validation.In(GenderMale, GenderFemale).Error("gender must be MALE or FEMALE")),
		validation.Field(&r.Age, validation.Min(0).Error("age must be >= 0")),
	}
}

func notBlank(value interface{}) error {
	s, ok := value.(*string)
	if !ok || s == nil {
		return nil
	}
	if strings.TrimSpace(*s) == "" {
		return errors.New("name must not be blank")
	}
	return nil
}

// ════════════════════════════════════════════════════════════════
// MAPPERS
// ════════════════════════════════════════════════════════════════

func (a Animal) ToDTO() AnimalDTO {
	dto := AnimalDTO{
		ID:             a.ID,
		Code:           a.Code,
		Name:           a.Name,
		Breed:          a.Breed,
		ImageURL:       a.ImageURL,
		Gender:         a.Gender,
		Age:            a.Age,
		Vaccinated:     a.Vaccinated,
		Castrated:      a.Castrated,
		Wormed:         a.Wormed,
		ElectronicChip: a.ElectronicChip,
		Illness:        a.Illness,
		Notes:          a.Notes,
		IsAvailable:    a.IsAvailable,
		HasBeenAdopted: a.HasBeenAdopted,
	}
	if a.ArrivalDate != nil {
		dto.ArrivalDate = a.ArrivalDate.Format(DateLayout)
	}
	return dto
}

// ToEntity: boolean nil → false; code và imageUrl do service set
func (r AnimalRequest) ToEntity() *Animal {
	return &Animal{
		Name:           strings.TrimSpace(utils.Deref(r.Name)),
		Breed:          utils.Deref(r.Breed),
		ArrivalDate:    parseDate(r.ArrivalDate),
		Gender:         utils.Deref(r.Gender),
		Age:            utils.Deref(r.Age),
		Vaccinated:     utils.Deref(r.Vaccinated),
		Castrated:      utils.Deref(r.Castrated),
		Wormed:         utils.Deref(r.Wormed),
		ElectronicChip: utils.Deref(r.ElectronicChip),
		Illness:        utils.Deref(r.Illness),
		Notes:          utils.Deref(r.Notes),
		IsAvailable:    utils.Deref(r.IsAvailable),
		HasBeenAdopted: utils.Deref(r.HasBeenAdopted),
	}
}

// ApplyUpdate copies non-nil fields onto a; id, code, imageUrl untouched
func (r AnimalRequest) ApplyUpdate(a *Animal) {
	if r.Name != nil {
		a.Name = strings.TrimSpace(*r.Name)
	}
	if r.Breed != nil {
		a.Breed = *r.Breed
	}
	if r.ArrivalDate != nil {
		a.ArrivalDate = parseDate(r.ArrivalDate)
	}
	if r.Gender != nil {
		a.Gender = *r.Gender
	}
	if r.Age != nil {
		a.Age = *r.Age
	}
	if r.Vaccinated != nil {
		a.Vaccinated = *r.Vaccinated
	}
	if r.Castrated != nil {
		a.Castrated = *r.Castrated
	}
	if r.Wormed != nil {
		a.Wormed = *r.Wormed
	}
	if r.ElectronicChip != nil {
		a.ElectronicChip = *r.ElectronicChip
	}
	if r.Illness != nil {
		a.Illness = *r.Illness
	}
	if r.Notes != nil {
		a.Notes = *r.Notes
	}
	if r.IsAvailable != nil {
		a.IsAvailable = *r.IsAvailable
	}
	if r.HasBeenAdopted != nil {
		a.HasBeenAdopted = *r.HasBeenAdopted
	}
}

// parseDate: "" hoặc sai format → nil (Validate đã chặn format sai)
func parseDate(s *string) *time.Time {
	if s == nil || *s == "" {
		return nil
	}
	t, err := time.Parse(DateLayout, *s)
	if err != nil {
		return nil
	}
	return &t
}
