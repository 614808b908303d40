package volunteer

import (
	"errors"
	"net/http"
)

var ErrVolunteerNotFound = errors.New("volunteer not found")

// ToErrorCode converts error to API error code
func ToErrorCode(err error) string {
	if errors.Is(err, ErrVolunteerNotFound) {
		return "VOLUNTEER_NOT_FOUND"
	}
	return "INTERNAL_ERROR"
}

// ToHTTPStatus converts error to HTTP status code
func ToHTTPStatus(err error) int {
	if errors.Is(err, ErrVolunteerNotFound) {
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}
