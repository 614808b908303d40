package visit

import (
	"errors"
	"net/http"
)

var (
	ErrVisitNotFound = errors.New("shelter visit not found")

	// ErrBrokenReference: schedule, animal hoặc adopter của visit không còn
	ErrBrokenReference = errors.New("shelter visit references a missing row")
)

// ToErrorCode converts error to API error code
func ToErrorCode(err error) string {
	switch {
	case errors.Is(err, ErrVisitNotFound):
		return "VISIT_NOT_FOUND"
	case errors.Is(err, ErrBrokenReference):
		return "BROKEN_REFERENCE"
	default:
		return "INTERNAL_ERROR"
	}
}

// ToHTTPStatus converts error to HTTP status code
func ToHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrVisitNotFound), errors.Is(err, ErrBrokenReference):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
