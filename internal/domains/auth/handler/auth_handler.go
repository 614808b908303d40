package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/rs/zerolog/log"

	"shelter-backend/internal/domains/auth"
	"shelter-backend/internal/shared"
	"shelter-backend/internal/shared/response"
)

type AuthHandler struct {
	service auth.Service
}

func NewAuthHandler(svc auth.Service) *AuthHandler {
	return &AuthHandler{service: svc}
}

// ════════════════════════════════════════════════════════════════
// LOGIN: POST /api/auth/login
// ════════════════════════════════════════════════════════════════

func (h *AuthHandler) Login(c *gin.Context) {
	var req auth.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	res, err := h.service.Login(c.Request.Context(), req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Login successful", res)
}

// ════════════════════════════════════════════════════════════════
// REFRESH: POST /api/auth/refresh?refreshToken=...
// ════════════════════════════════════════════════════════════════

func (h *AuthHandler) Refresh(c *gin.Context) {
	token := c.Query("refreshToken")
	if token == "" {
		response.BadRequest(c, "refreshToken query parameter is required")
		return
	}

	res, err := h.service.Refresh(c.Request.Context(), token)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Token refreshed", res)
}

// ════════════════════════════════════════════════════════════════
// ME: GET /api/users/me
// ════════════════════════════════════════════════════════════════

func (h *AuthHandler) Me(c *gin.Context) {
	p := shared.GetPrincipal(c)
	if p == nil {
		response.Unauthorized(c, "Authentication required")
		return
	}

	dto, err := h.service.Me(c.Request.Context(), p.Username)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "User retrieved", dto)
}

// ════════════════════════════════════════════════════════════════
// CREATE USER: POST /api/users (ROLE_ADMIN)
// ════════════════════════════════════════════════════════════════

func (h *AuthHandler) CreateUser(c *gin.Context) {
	var req auth.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	dto, err := h.service.CreateUser(c.Request.Context(), req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, "User created", dto)
}

func (h *AuthHandler) handleError(c *gin.Context, err error) {
	var verrs validation.Errors

	switch {
	case errors.As(err, &verrs):
		response.Error(c, http.StatusBadRequest, "Validation failed", err)

	case errors.Is(err, auth.ErrInvalidCredentials),
		errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrUserNotFound),
		errors.Is(err, auth.ErrUsernameTaken):
		response.ErrorWithCode(c, auth.ToHTTPStatus(err), auth.ToErrorCode(err), err.Error(), nil)

	default:
		log.Error().Err(err).Str("path", c.Request.URL.Path).Msg("auth request failed")
		response.InternalServerError(c)
	}
}
