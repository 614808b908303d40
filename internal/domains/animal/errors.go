package animal

import (
	"errors"
	"net/http"
)

var (
	ErrAnimalNotFound = errors.New("animal not found")
	ErrMissingData    = errors.New("multipart part \"data\" is required")
	ErrInvalidData    = errors.New("animal data is not valid JSON")
)

// ToErrorCode converts error to API error code
func ToErrorCode(err error) string {
	switch {
	case errors.Is(err, ErrAnimalNotFound):
		return "ANIMAL_NOT_FOUND"
	case errors.Is(err, ErrMissingData), errors.Is(err, ErrInvalidData):
		return "INVALID_ANIMAL_DATA"
	default:
		return "INTERNAL_ERROR"
	}
}

// ToHTTPStatus converts error to HTTP status code
func ToHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrAnimalNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrMissingData), errors.Is(err, ErrInvalidData):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
