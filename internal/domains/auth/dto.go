package auth

import (
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"shelter-backend/internal/shared"
)

// LoginRequest - POST /api/auth/login
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (r LoginRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Username, validation.Required),
		validation.Field(&r.Password, validation.Required),
	)
}

// TokenResponse - login và refresh trả cùng shape
// username là friendlyName của user
type TokenResponse struct {
	Token        string   `json:"token"`
	RefreshToken string   `json:"refreshToken"`
	Username     string   `json:"username"`
	Roles        []string `json:"roles"`
}

// CreateUserRequest - POST /api/users (admin)
type CreateUserRequest struct {
	Username     string   `json:"username"`
	Password     string   `json:"password"`
	FriendlyName string   `json:"friendlyName,omitempty"`
	Roles        []string `json:"roles,omitempty"`
}

func (r CreateUserRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Username,
			validation.Required.Error("username is required"),
			validation.Length(3, 64),
			validation.By(noSpaces),
		),
		validation.Field(&r.Password,
			validation.Required.Error("password is required"),
			validation.Length(8, 72).Error("password must be 8-72 characters"),
		),
		validation.Field(&r.FriendlyName, validation.Length(0, 255)),
		validation.Field(&r.Roles, validation.Each(validation.In(shared.RoleAdmin, shared.RoleUser))),
	)
}

func noSpaces(value interface{}) error {
	s, _ := value.(string)
	if strings.ContainsAny(s, " \t\n") {
		return validation.NewError("validation_no_spaces", "username must not contain spaces")
	}
	return nil
}

// RolesOrDefault: không truyền roles → ROLE_USER
func (r CreateUserRequest) RolesOrDefault() []string {
	if len(r.Roles) == 0 {
		return []string{shared.RoleUser}
	}
	return r.Roles
}

// UserDTO - không bao giờ chứa password hash
type UserDTO struct {
	ID           int64    `json:"id"`
	Username     string   `json:"username"`
	FriendlyName string   `json:"friendlyName"`
	Roles        []string `json:"roles"`
}

func (u *User) ToDTO() UserDTO {
	return UserDTO{
		ID:           u.ID,
		Username:     u.Username,
		FriendlyName: u.FriendlyName,
		Roles:        u.Roles,
	}
}
