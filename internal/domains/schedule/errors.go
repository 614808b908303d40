package schedule

import (
	"errors"
	"net/http"
)

var (
	ErrScheduleNotFound = errors.New("schedule not found")
	ErrInvalidDay       = errors.New("invalid day of week")
)

// ToErrorCode converts error to API error code
func ToErrorCode(err error) string {
	switch {
	case errors.Is(err, ErrScheduleNotFound):
		return "SCHEDULE_NOT_FOUND"
	case errors.Is(err, ErrInvalidDay):
		return "INVALID_DAY"
	default:
		return "INTERNAL_ERROR"
	}
}

// ToHTTPStatus converts error to HTTP status code
func ToHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrScheduleNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrInvalidDay):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
