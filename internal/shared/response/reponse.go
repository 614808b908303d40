package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   *ErrorBody  `json:"error,omitempty"`
}

// ErrorBody là phần "error" của envelope
type ErrorBody struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
}

const CodeValidation = "VALIDATION_ERROR"

// Success responses
func Success(c *gin.Context, statusCode int, message string, data interface{}) {
	c.JSON(statusCode, Response{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// NoContent: 204 không có body
func NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

// Error responses
// err có thể là nil, string, error hoặc validation.Errors (field -> message)
func Error(c *gin.Context, statusCode int, message string, err interface{}) {
	code := CodeFromStatus(statusCode)

	var verrs validation.Errors
	if e, ok := err.(error); ok && errors.As(e, &verrs) {
		code = CodeValidation
	}

	ErrorWithCode(c, statusCode, code, message, details(err))
}

func ErrorWithCode(c *gin.Context, statusCode int, code, message string, details interface{}) {
	c.AbortWithStatusJSON(statusCode, Response{
		Success: false,
		Message: message,
		Error: &ErrorBody{
			Code:    code,
			Message: message,
			Details: details,
		},
	})
}

func details(err interface{}) interface{} {
	switch v := err.(type) {
	case nil:
		return nil
	case validation.Errors:
		return fieldErrors(v)
	case error:
		var verrs validation.Errors
		if errors.As(v, &verrs) {
			return fieldErrors(verrs)
		}
		return v.Error()
	default:
		return v
	}
}

func fieldErrors(verrs validation.Errors) map[string]interface{} {
	out := make(map[string]interface{}, len(verrs))
	for field, fe := range verrs {
		if fe == nil {
			continue
		}
		if nested, ok := fe.(validation.Errors); ok {
			out[field] = fieldErrors(nested)
			continue
		}
		out[field] = fe.Error()
	}
	return out
}

func CodeFromStatus(statusCode int) string {
	switch statusCode {
	case http.StatusBadRequest:
		return "BAD_REQUEST"
	case http.StatusUnauthorized:
		return "UNAUTHORIZED"
	case http.StatusForbidden:
		return "FORBIDDEN"
	case http.StatusNotFound:
		return "NOT_FOUND"
	case http.StatusConflict:
		return "CONFLICT"
	case http.StatusRequestEntityTooLarge:
		return "PAYLOAD_TOO_LARGE"
	case http.StatusServiceUnavailable:
		return "SERVICE_UNAVAILABLE"
	default:
		if statusCode >= 500 {
			return "INTERNAL_SERVER_ERROR"
		}
		return "ERROR"
	}
}

// Common error responses
func BadRequest(c *gin.Context, message string) {
	Error(c, http.StatusBadRequest, message, nil)
}

func Unauthorized(c *gin.Context, message string) {
	Error(c, http.StatusUnauthorized, message, nil)
}

func Forbidden(c *gin.Context, message string) {
	Error(c, http.StatusForbidden, message, nil)
}

func NotFound(c *gin.Context, message string) {
	Error(c, http.StatusNotFound, message, nil)
}

func InternalServerError(c *gin.Context) {
	ErrorWithCode(c, http.StatusInternalServerError, "SYS_001", "Internal server error", nil)
}
