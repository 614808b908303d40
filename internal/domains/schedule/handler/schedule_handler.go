package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/rs/zerolog/log"

	"shelter-backend/internal/domains/schedule"
	"shelter-backend/internal/shared/response"
	"shelter-backend/internal/shared/utils"
)

type ScheduleHandler struct {
	service schedule.Service
}

func NewScheduleHandler(svc schedule.Service) *ScheduleHandler {
	return &ScheduleHandler{service: svc}
}

// ════════════════════════════════════════════════════════════════
// CREATE: POST /api/schedules
// ════════════════════════════════════════════════════════════════

func (h *ScheduleHandler) Create(c *gin.Context) {
	var req schedule.ScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	dto, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, "Schedule created", dto)
}

// ════════════════════════════════════════════════════════════════
// READ: GET /api/schedules, GET /api/schedules/:id
// ════════════════════════════════════════════════════════════════

func (h *ScheduleHandler) List(c *gin.Context) {
	dtos, err := h.service.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Schedules retrieved", dtos)
}

func (h *ScheduleHandler) GetByID(c *gin.Context) {
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

	response.Success(c, http.StatusOK, "Schedule retrieved", dto)
}

// ════════════════════════════════════════════════════════════════
// UPDATE: PUT /api/schedules/:id
// ════════════════════════════════════════════════════════════════

func (h *ScheduleHandler) Update(c *gin.Context) {
	id, err := utils.ParseID(c.Param("id"))
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	var req schedule.ScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	dto, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Schedule updated", dto)
}

// ════════════════════════════════════════════════════════════════
// DELETE: DELETE /api/schedules/:id
// ════════════════════════════════════════════════════════════════

func (h *ScheduleHandler) Delete(c *gin.Context) {
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

func (h *ScheduleHandler) handleError(c *gin.Context, err error) {
	var verrs validation.Errors

	switch {
	case errors.As(err, &verrs):
		response.Error(c, http.StatusBadRequest, "Validation failed", err)

	case errors.Is(err, schedule.ErrScheduleNotFound), errors.Is(err, schedule.ErrInvalidDay):
		response.ErrorWithCode(c, schedule.ToHTTPStatus(err), schedule.ToErrorCode(err), err.Error(), nil)

	default:
		log.Error().Err(err).Str("path", c.Request.URL.Path).Msg("schedule request failed")
		response.InternalServerError(c)
	}
}
