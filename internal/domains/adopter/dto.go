package adopter

import (
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"

	"shelter-backend/internal/shared/utils"
)

type AdopterDTO struct {
	ID            int64  `json:"id"`
	Name          string `json:"name"`
	ImageURL      string `json:"imageUrl"`
	Address       string `json:"address"`
	Phone         string `json:"phone"`
	Email         string `json:"email"`
	ProcessNumber string `json:"processNumber"`
}

// AdopterRequest - POST/PUT /api/adopters, field vắng mặt giữ nguyên khi PUT
type AdopterRequest struct {
	Name          *string `json:"name,omitempty"`
	ImageURL      *string `json:"imageUrl,omitempty"`
	Address       *string `json:"address,omitempty"`
	Phone         *string `json:"phone,omitempty"`
	Email         *string `json:"email,omitempty"`
	ProcessNumber *string `json:"processNumber,omitempty"`
}

func (r AdopterRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.NilOrNotEmpty.Error("name must not be blank"), validation.Length(1, 255)),
		validation.Field(&r.Email, is.EmailFormat.Error("invalid email format")),
		validation.Field(&r.ImageURL, is.URL),
	)
}

func (r AdopterRequest) ValidateCreate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required.Error("name is required"), validation.Length(1, 255)),
		validation.Field(&r.Email, is.EmailFormat.Error("invalid email format")),
		validation.Field(&r.ImageURL, is.URL),
	)
}

func (a Adopter) ToDTO() AdopterDTO {
	return AdopterDTO{
		ID:            a.ID,
		Name:          a.Name,
		ImageURL:      a.ImageURL,
		Address:       a.Address,
		Phone:         a.Phone,
		Email:         a.Email,
		ProcessNumber: a.ProcessNumber,
	}
}

func (r AdopterRequest) ToEntity() *Adopter {
	return &Adopter{
		Name:          strings.TrimSpace(utils.Deref(r.Name)),
		ImageURL:      utils.Deref(r.ImageURL),
		Address:       utils.Deref(r.Address),
		Phone:         utils.Deref(r.Phone),
		Email:         utils.Deref(r.Email),
		ProcessNumber: utils.Deref(r.ProcessNumber),
	}
}

func (r AdopterRequest) ApplyUpdate(a *Adopter) {
	if r.Name != nil {
		a.Name = strings.TrimSpace(*r.Name)
	}
	if r.ImageURL != nil {
		a.ImageURL = *r.ImageURL
	}
	if r.Address != nil {
		a.Address = *r.Address
	}
	if r.Phone != nil {
		a.Phone = *r.Phone
	}
	if r.Email != nil {
		a.Email = *r.Email
	}
	if r.ProcessNumber != nil {
		a.ProcessNumber = *r.ProcessNumber
	}
}
