package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/rs/zerolog/log"

	"shelter-backend/internal/domains/schedule"
	"shelter-backend/internal/domains/volunteer"
	"shelter-backend/internal/shared/response"
	"shelter-backend/internal/shared/utils"
)

type VolunteerHandler struct {
	service volunteer.Service
}

func NewVolunteerHandler(svc volunteer.Service) *VolunteerHandler {
	return &VolunteerHandler{service: svc}
}

// ════════════════════════════════════════════════════════════════
// CREATE: POST /api/volunteers
// ════════════════════════════════════════════════════════════════

func (h *VolunteerHandler) Create(c *gin.Context) {
	var req volunteer.VolunteerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	dto, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, "Volunteer created", dto)
}

// ════════════════════════════════════════════════════════════════
// READ: GET /api/volunteers, GET /api/volunteers/:id
// ════════════════════════════════════════════════════════════════

func (h *VolunteerHandler) List(c *gin.Context) {
	dtos, err := h.service.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Volunteers retrieved", dtos)
}

func (h *VolunteerHandler) GetByID(c *gin.Context) {
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

	response.Success(c, http.StatusOK, "Volunteer retrieved", dto)
}

// ════════════════════════════════════════════════════════════════
// UPDATE: PUT /api/volunteers/:id
// ════════════════════════════════════════════════════════════════

func (h *VolunteerHandler) Update(c *gin.Context) {
	id, err := utils.ParseID(c.Param("id"))
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	var req volunteer.VolunteerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	dto, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Volunteer updated", dto)
}

// ════════════════════════════════════════════════════════════════
// DELETE: DELETE /api/volunteers/:id (schedule giữ lại)
// ════════════════════════════════════════════════════════════════

func (h *VolunteerHandler) Delete(c *gin.Context) {
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

func (h *VolunteerHandler) handleError(c *gin.Context, err error) {
	var verrs validation.Errors

	switch {
	case errors.As(err, &verrs):
		response.Error(c, http.StatusBadRequest, "Validation failed", err)

	case errors.Is(err, volunteer.ErrVolunteerNotFound):
		response.ErrorWithCode(c, volunteer.ToHTTPStatus(err), volunteer.ToErrorCode(err), err.Error(), nil)

	case errors.Is(err, schedule.ErrScheduleNotFound), errors.Is(err, schedule.ErrInvalidDay):
		response.ErrorWithCode(c, schedule.ToHTTPStatus(err), schedule.ToErrorCode(err), err.Error(), nil)

	default:
		log.Error().Err(err).Str("path", c.Request.URL.Path).Msg("volunteer request failed")
		response.InternalServerError(c)
	}
}
