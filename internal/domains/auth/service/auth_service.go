package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"

	"shelter-backend/internal/domains/auth"
	"shelter-backend/internal/shared"
	"shelter-backend/pkg/jwt"
)

// DefaultPasswordCost - bcrypt cost cho password mới
const DefaultPasswordCost = 12

type Option func(*authService)

// WithPasswordCost đổi bcrypt cost (tests dùng bcrypt.MinCost)
func WithPasswordCost(cost int) Option {
	return func(s *authService) { s.cost = cost }
}

type authService struct {
	repo    auth.Repository
	tokens  *jwt.Manager
	cost    int
	compare func(hash, password []byte) error

	// so sánh với hash này khi username không tồn tại để thời gian phản hồi như nhau
	dummyHash []byte
}

func NewAuthService(repo auth.Repository, tokens *jwt.Manager, opts ...Option) auth.Service {
	s := &authService{
		repo:    repo,
		tokens:  tokens,
		cost:    DefaultPasswordCost,
		compare: bcrypt.CompareHashAndPassword,
	}
	for _, opt := range opts {
		opt(s)
	}

	dummy, err := bcrypt.GenerateFromPassword([]byte("shelter-login-dummy"), s.cost)
	if err != nil {
		log.Warn().Err(err).Msg("failed to build dummy password hash")
	}
	s.dummyHash = dummy
	return s
}

// ════════════════════════════════════════════════════════════════
// LOGIN
// ════════════════════════════════════════════════════════════════

func (s *authService) Login(ctx context.Context, req auth.LoginRequest) (*auth.TokenResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	u, err := s.repo.FindByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, auth.ErrUserNotFound) {
			// không lộ việc username có tồn tại hay không
			_ = s.compare(s.dummyHash, []byte(req.Password))
			return nil, auth.ErrInvalidCredentials
		}
		return nil, err
	}

	if err := s.compare([]byte(u.PasswordHash), []byte(req.Password)); err != nil {
		return nil, auth.ErrInvalidCredentials
	}

	return s.issue(u)
}

// ════════════════════════════════════════════════════════════════
// REFRESH: refresh token hợp lệ → cặp token mới
// ════════════════════════════════════════════════════════════════

func (s *authService) Refresh(ctx context.Context, refreshToken string) (*auth.TokenResponse, error) {
	claims, err := s.tokens.ValidateRefreshToken(refreshToken)
	if err != nil {
		log.Debug().Err(err).Msg("refresh token rejected")
		return nil, auth.ErrInvalidToken
	}

	u, err := s.repo.FindByUsername(ctx, claims.Subject)
	if err != nil {
		if errors.Is(err, auth.ErrUserNotFound) {
			return nil, auth.ErrInvalidToken
		}
		return nil, err
	}

	return s.issue(u)
}

func (s *authService) ResolvePrincipal(ctx context.Context, accessToken string) (*shared.Principal, error) {
	claims, err := s.tokens.ValidateAccessToken(accessToken)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", auth.ErrInvalidToken, err)
	}

	// roles lấy từ DB, user bị xóa thì token cũ hết hiệu lực
	u, err := s.repo.FindByUsername(ctx, claims.Subject)
	if err != nil {
		if errors.Is(err, auth.ErrUserNotFound) {
			return nil, auth.ErrInvalidToken
		}
		return nil, err
	}

	return &shared.Principal{Username: u.Username, Roles: u.Roles}, nil
}

// ════════════════════════════════════════════════════════════════
// USERS
// ════════════════════════════════════════════════════════════════

func (s *authService) Me(ctx context.Context, username string) (*auth.UserDTO, error) {
	u, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		return nil, err
	}

	dto := u.ToDTO()
	return &dto, nil
}

func (s *authService) CreateUser(ctx context.Context, req auth.CreateUserRequest) (*auth.UserDTO, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), s.cost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	created, err := s.repo.Create(ctx, &auth.User{
		Username:     strings.TrimSpace(req.Username),
		PasswordHash: string(hash),
		FriendlyName: req.FriendlyName,
		Roles:        req.RolesOrDefault(),
	})
	if err != nil {
		return nil, err
	}

	log.Info().Str("username", created.Username).Strs("roles", created.Roles).Msg("user created")

	dto := created.ToDTO()
	return &dto, nil
}

func (s *authService) EnsureUser(ctx context.Context, req auth.CreateUserRequest) (bool, error) {
	_, err := s.repo.FindByUsername(ctx, req.Username)
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, auth.ErrUserNotFound) {
		return false, err
	}

	if _, err := s.CreateUser(ctx, req); err != nil {
		// instance khác vừa seed cùng user
		if errors.Is(err, auth.ErrUsernameTaken) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (s *authService) issue(u *auth.User) (*auth.TokenResponse, error) {
	access, refresh, err := s.tokens.GenerateTokenPair(u.Username, u.Roles)
	if err != nil {
		return nil, err
	}

	return &auth.TokenResponse{
		Token:        access,
		RefreshToken: refresh,
		Username:     u.DisplayName(),
		Roles:        u.Roles,
	}, nil
}
