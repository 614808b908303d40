package animal

import "time"

type Gender string

const (
	GenderMale   Gender = "MALE"
	GenderFemale Gender = "FEMALE"
)

func (g Gender) IsValid() bool {
	return g == GenderMale || g == GenderFemale
}

// Animal - row của bảng animals
type Animal struct {
	ID             int64      `json:"id" db:"id"`
	Code           string     `json:"code" db:"code"` // 4 chữ số, không unique
	Name           string     `json:"name" db:"name"`
	Breed          string     `json:"breed" db:"breed"`
	ArrivalDate    *time.Time `json:"arrival_date" db:"arrival_date"`
	ImageURL       string     `json:"image_url" db:"image_url"`
	Gender         Gender     `json:"gender" db:"gender"`
	Age            int        `json:"age" db:"age"`
	Vaccinated     bool       `json:"vaccinated" db:"vaccinated"`
	Castrated      bool       `json:"castrated" db:"castrated"`
	Wormed         bool       `json:"wormed" db:"wormed"`
	ElectronicChip string     `json:"electronic_chip" db:"electronic_chip"`
	Illness        string     `json:"illness" db:"illness"`
	Notes          string     `json:"notes" db:"notes"`
	IsAvailable    bool       `json:"is_available" db:"is_available"`
	HasBeenAdopted bool       `json:"has_been_adopted" db:"has_been_adopted"`
}
