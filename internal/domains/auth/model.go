package auth

import "slices"

// User - tài khoản đăng nhập; roles dạng "ROLE_ADMIN", "ROLE_USER"
type User struct {
	ID           int64    `json:"id" db:"id"`
	Username     string   `json:"username" db:"username"`
	PasswordHash string   `json:"-" db:"password_hash"`
	FriendlyName string   `json:"friendly_name" db:"friendly_name"`
	Roles        []string `json:"roles" db:"roles"`
}

func (u *User) HasRole(role string) bool {
	return slices.Contains(u.Roles, role)
}

// DisplayName: friendlyName nếu có, không thì username
func (u *User) DisplayName() string {
	if u.FriendlyName != "" {
		return u.FriendlyName
	}
	return u.Username
}
