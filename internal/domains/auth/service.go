package auth

import (
	"context"

	"shelter-backend/internal/shared"
)

type Service interface {
	Login(ctx context.Context, req LoginRequest) (*TokenResponse, error)
	Refresh(ctx context.Context, refreshToken string) (*TokenResponse, error)

	// ResolvePrincipal validates an access token and loads the current roles
	ResolvePrincipal(ctx context.Context, accessToken string) (*shared.Principal, error)

	Me(ctx context.Context, username string) (*UserDTO, error)
	CreateUser(ctx context.Context, req CreateUserRequest) (*UserDTO, error)

	// EnsureUser tạo user nếu chưa có (bootstrap admin), trả về true nếu vừa tạo
	EnsureUser(ctx context.Context, req CreateUserRequest) (bool, error)
}
