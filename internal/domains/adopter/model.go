package adopter

// Adopter - người nhận nuôi. Email/phone không unique.
type Adopter struct {
	ID            int64  `json:"id" db:"id"`
	Name          string `json:"name" db:"name"`
	ImageURL      string `json:"image_url" db:"image_url"`
	Address       string `json:"address" db:"address"`
	Phone         string `json:"phone" db:"phone"`
	Email         string `json:"email" db:"email"`
	ProcessNumber string `json:"process_number" db:"process_number"`
}
