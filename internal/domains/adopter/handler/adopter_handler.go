package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/rs/zerolog/log"

	"shelter-backend/internal/domains/adopter"
	"shelter-backend/internal/shared/response"
	"shelter-backend/internal/shared/utils"
)

type AdopterHandler struct {
	service adopter.Service
}

func NewAdopterHandler(svc adopter.Service) *AdopterHandler {
	return &AdopterHandler{service: svc}
}

// POST /api/adopters
func (h *AdopterHandler) Create(c *gin.Context) {
	var req adopter.AdopterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	dto, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, "Adopter created", dto)
}

// GET /api/adopters
func (h *AdopterHandler) List(c *gin.Context) {
	dtos, err := h.service.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Adopters retrieved", dtos)
}

// GET /api/adopters/:id
func (h *AdopterHandler) GetByID(c *gin.Context) {
	id, err := utils.ParseID(c.Param("id"))
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	dto, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Adopter retrieved", dto)
}

// PUT /api/adopters/:id
func (h *AdopterHandler) Update(c *gin.Context) {
	id, err := utils.ParseID(c.Param("id"))
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	var req adopter.AdopterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	dto, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Adopter updated", dto)
}

// DELETE /api/adopters/:id
func (h *AdopterHandler) Delete(c *gin.Context) {
	id, err := utils.ParseID(c.Param("id"))
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}

	response.NoContent(c)
}

func (h *AdopterHandler) handleError(c *gin.Context, err error) {
	var verrs validation.Errors

	switch {
	case errors.As(err, &verrs):
		response.Error(c, http.StatusBadRequest, "Validation failed", err)
	case errors.Is(err, adopter.ErrAdopterNotFound):
		response.ErrorWithCode(c, adopter.ToHTTPStatus(err), adopter.ToErrorCode(err), err.Error(), nil)
	default:
		log.Error().Err(err).Str("path", c.Request.URL.Path).Msg("adopter request failed")
		response.InternalServerError(c)
	}
}
