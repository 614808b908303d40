package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/rs/zerolog/log"

	"shelter-backend/internal/domains/animal"
	"shelter-backend/internal/infrastructure/storage"
	"shelter-backend/internal/shared/response"
	"shelter-backend/internal/shared/utils"
)

const (
	partData  = "data"
	partImage = "imageData"

	xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

type AnimalHandler struct {
	service animal.Service
}

func NewAnimalHandler(svc animal.Service) *AnimalHandler {
	return &AnimalHandler{service: svc}
}

// ════════════════════════════════════════════════════════════════
// CREATE: POST /api/animals (multipart: data + imageData)
// ════════════════════════════════════════════════════════════════

func (h *AnimalHandler) Create(c *gin.Context) {
	req, image, closeImage, err := h.readAnimalRequest(c)
	if err != nil {
		h.handleError(c, err)
		return
	}
	defer closeImage()

	dto, err := h.service.Create(c.Request.Context(), req, image)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, "Animal created", dto)
}

// ════════════════════════════════════════════════════════════════
// READ: GET /api/animals, /api/animals/:id, /api/animals/available
// ════════════════════════════════════════════════════════════════

func (h *AnimalHandler) List(c *gin.Context) {
	dtos, err := h.service.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Animals retrieved", dtos)
}

func (h *AnimalHandler) GetByID(c *gin.Context) {
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

	response.Success(c, http.StatusOK, "Animal retrieved", dto)
}

// ListByAvailability - GET /api/animals/available?isAvailable=true
func (h *AnimalHandler) ListByAvailability(c *gin.Context) {
	raw, ok := c.GetQuery("isAvailable")
	if !ok {
		response.BadRequest(c, "query parameter isAvailable is required")
		return
	}

	isAvailable, err := strconv.ParseBool(raw)
	if err != nil {
		response.BadRequest(c, "query parameter isAvailable must be true or false")
		return
	}

	dtos, err := h.service.ListByAvailability(c.Request.Context(), isAvailable)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Animals retrieved", dtos)
}

// Export - GET /api/animals/export
func (h *AnimalHandler) Export(c *gin.Context) {
	var buf bytes.Buffer
	if err := h.service.Export(c.Request.Context(), &buf); err != nil {
		h.handleError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="animals.xlsx"`)
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}

// ════════════════════════════════════════════════════════════════
// UPDATE: PUT /api/animals/:id (multipart hoặc JSON)
// ════════════════════════════════════════════════════════════════

func (h *AnimalHandler) Update(c *gin.Context) {
	id, err := utils.ParseID(c.Param("id"))
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	req, image, closeImage, err := h.readAnimalRequest(c)
	if err != nil {
		h.handleError(c, err)
		return
	}
	defer closeImage()

	dto, err := h.service.Update(c.Request.Context(), id, req, image)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Animal updated", dto)
}

// ════════════════════════════════════════════════════════════════
// DELETE: DELETE /api/animals/:id
// ════════════════════════════════════════════════════════════════

func (h *AnimalHandler) Delete(c *gin.Context) {
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

// ════════════════════════════════════════════════════════════════
// HELPERS
// ════════════════════════════════════════════════════════════════

// readAnimalRequest đọc part "data" (form field hoặc file part JSON) và
// part "imageData" (optional). Body JSON thuần cũng được chấp nhận.
func (h *AnimalHandler) readAnimalRequest(c *gin.Context) (animal.AnimalRequest, *animal.Upload, func(), error) {
	var req animal.AnimalRequest
	noop := func() {}

	if !strings.HasPrefix(c.ContentType(), "multipart/") {
		if err := json.NewDecoder(c.Request.Body).Decode(&req); err != nil {
			return req, nil, noop, fmt.Errorf("%w: %v", animal.ErrInvalidData, err)
		}
		return req, nil, noop, nil
	}

	raw, err := dataPart(c)
	if err != nil {
		return req, nil, noop, err
	}
	if err := json.Unmarshal(raw, &req); err != nil {
		return req, nil, noop, fmt.Errorf("%w: %v", animal.ErrInvalidData, err)
	}

	fh, err := c.FormFile(partImage)
	if errors.Is(err, http.ErrMissingFile) {
		return req, nil, noop, nil
	}
	if err != nil {
		return req, nil, noop, fmt.Errorf("%w: %v", animal.ErrInvalidData, err)
	}

	f, err := fh.Open()
	if err != nil {
		return req, nil, noop, fmt.Errorf("open image part: %w", err)
	}

	closeImage := func() {
		if err := f.Close(); err != nil {
			log.Warn().Err(err).Msg("Failed to close uploaded image")
		}
	}
	return req, &animal.Upload{Filename: fh.Filename, Content: f}, closeImage, nil
}

func dataPart(c *gin.Context) ([]byte, error) {
	if v, ok := c.GetPostForm(partData); ok {
		return []byte(v), nil
	}

	fh, err := c.FormFile(partData)
	if err != nil {
		return nil, animal.ErrMissingData
	}
	return readPart(fh)
}

func readPart(fh *multipart.FileHeader) ([]byte, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return io.ReadAll(f)
}

func (h *AnimalHandler) handleError(c *gin.Context, err error) {
	var verrs validation.Errors

	switch {
	case errors.As(err, &verrs):
		response.Error(c, http.StatusBadRequest, "Validation failed", err)

	case errors.Is(err, animal.ErrAnimalNotFound):
		response.ErrorWithCode(c, http.StatusNotFound, animal.ToErrorCode(err), err.Error(), nil)

	case errors.Is(err, animal.ErrMissingData), errors.Is(err, animal.ErrInvalidData):
		response.ErrorWithCode(c, http.StatusBadRequest, animal.ToErrorCode(err), err.Error(), nil)

	case errors.Is(err, storage.ErrInvalidImage):
		response.ErrorWithCode(c, http.StatusBadRequest, "INVALID_IMAGE", storage.ErrInvalidImage.Error(), nil)

	case errors.Is(err, storage.ErrImageTooLarge):
		response.Error(c, http.StatusRequestEntityTooLarge, storage.ErrImageTooLarge.Error(), nil)

	default:
		log.Error().Err(err).Str("path", c.Request.URL.Path).Msg("animal request failed")
		response.InternalServerError(c)
	}
}
