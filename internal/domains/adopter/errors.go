package adopter

import (
	"errors"
	"net/http"
)

var ErrAdopterNotFound = errors.New("adopter not found")

// ToErrorCode converts error to API error code
func ToErrorCode(err error) string {
	if errors.Is(err, ErrAdopterNotFound) {
		return "ADOPTER_NOT_FOUND"
	}
	return "INTERNAL_ERROR"
}

// ToHTTPStatus converts error to HTTP status code
func ToHTTPStatus(err error) int {
	if errors.Is(err, ErrAdopterNotFound) {
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}
