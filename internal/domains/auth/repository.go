package auth

import "context"

type Repository interface {
	// FindByUsername returns ErrUserNotFound if no row matches
	FindByUsername(ctx context.Context, username string) (*User, error)

	// Create returns ErrUsernameTaken on unique violation
	Create(ctx context.Context, u *User) (*User, error)
}
