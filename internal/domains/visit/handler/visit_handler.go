package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/rs/zerolog/log"

	"shelter-backend/internal/domains/visit"
	"shelter-backend/internal/shared/response"
	"shelter-backend/internal/shared/utils"
)

type VisitHandler struct {
	service visit.Service
}

func NewVisitHandler(svc visit.Service) *VisitHandler {
	return &VisitHandler{service: svc}
}

// ════════════════════════════════════════════════════════════════
// CREATE: POST /api/shelter-visits (body có id → update)
// ════════════════════════════════════════════════════════════════

func (h *VisitHandler) Create(c *gin.Context) {
	var req visit.ShelterVisitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	dto, err := h.service.Save(c.Request.Context(), req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	if req.IsUpdate() {
		response.Success(c, http.StatusOK, "Shelter visit updated", dto)
		return
	}
	response.Success(c, http.StatusCreated, "Shelter visit created", dto)
}

// ════════════════════════════════════════════════════════════════
// READ: GET /api/shelter-visits, GET /api/shelter-visits/:id
// ════════════════════════════════════════════════════════════════

func (h *VisitHandler) List(c *gin.Context) {
	dtos, err := h.service.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Shelter visits retrieved", dtos)
}

func (h *VisitHandler) GetByID(c *gin.Context) {
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

	response.Success(c, http.StatusOK, "Shelter visit retrieved", dto)
}

// ════════════════════════════════════════════════════════════════
// UPDATE: PUT /api/shelter-visits/:id (id trên path thắng id trong body)
// ════════════════════════════════════════════════════════════════

func (h *VisitHandler) Update(c *gin.Context) {
	id, err := utils.ParseID(c.Param("id"))
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	var req visit.ShelterVisitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	req.ID = &id

	dto, err := h.service.Save(c.Request.Context(), req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Shelter visit updated", dto)
}

// ════════════════════════════════════════════════════════════════
// DELETE: DELETE /api/shelter-visits/:id
// ════════════════════════════════════════════════════════════════

func (h *VisitHandler) Delete(c *gin.Context) {
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

func (h *VisitHandler) handleError(c *gin.Context, err error) {
	var verrs validation.Errors

	switch {
	case errors.As(err, &verrs):
		response.Error(c, http.StatusBadRequest, "Validation failed", err)

	case errors.Is(err, visit.ErrVisitNotFound), errors.Is(err, visit.ErrBrokenReference):
		response.ErrorWithCode(c, visit.ToHTTPStatus(err), visit.ToErrorCode(err), err.Error(), nil)

	default:
		log.Error().Err(err).Str("path", c.Request.URL.Path).Msg("shelter visit request failed")
		response.InternalServerError(c)
	}
}
