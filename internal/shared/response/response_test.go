package response

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func render(fn func(c *gin.Context)) (*httptest.ResponseRecorder, Response) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	fn(c)

	var body Response
	_ = json.Unmarshal(w.Body.Bytes(), &body)
	return w, body
}

func TestError_PlainErrorUsesStatusCode(t *testing.T) {
	w, body := render(func(c *gin.Context) {
		Error(c, http.StatusNotFound, "animal not found", errors.New("no rows"))
	})

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.False(t, body.Success)
	require.NotNil(t, body.Error)
	assert.Equal(t, "NOT_FOUND", body.Error.Code)
	assert.Equal(t, "animal not found", body.Error.Message)
	assert.Equal(t, "no rows", body.Error.Details)
}

func TestError_ValidationErrorsBecomeFieldMap(t *testing.T) {
	verrs := validation.Errors{
		"name": errors.New("name is required"),
		"schedule": validation.Errors{
			"days": errors.New("at least one day is required"),
		},
	}

	w, body := render(func(c *gin.Context) {
		Error(c, http.StatusBadRequest, "Validation failed", fmt.Errorf("create: %w", verrs))
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	require.NotNil(t, body.Error)
	assert.Equal(t, CodeValidation, body.Error.Code)
	assert.Equal(t, map[string]interface{}{
		"name":     "name is required",
		"schedule": map[string]interface{}{"days": "at least one day is required"},
	}, body.Error.Details)
}

func TestErrorWithCode(t *testing.T) {
	w, body := render(func(c *gin.Context) {
		ErrorWithCode(c, http.StatusNotFound, "BROKEN_REFERENCE", "visit references a missing animal", nil)
	})

	assert.Equal(t, http.StatusNotFound, w.Code)
	require.NotNil(t, body.Error)
	assert.Equal(t, "BROKEN_REFERENCE", body.Error.Code)
	assert.Nil(t, body.Error.Details)
}

func TestInternalServerError(t *testing.T) {
	w, body := render(InternalServerError)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	require.NotNil(t, body.Error)
	assert.Equal(t, "SYS_001", body.Error.Code)
}

func TestSuccess_OmitsError(t *testing.T) {
	w, body := render(func(c *gin.Context) {
		Success(c, http.StatusCreated, "created", map[string]int{"id": 1})
	})

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.True(t, body.Success)
	assert.Nil(t, body.Error)
	assert.NotContains(t, w.Body.String(), `"error"`)
}

func TestCodeFromStatus(t *testing.T) {
	tests := map[int]string{
		http.StatusBadRequest:            "BAD_REQUEST",
		http.StatusUnauthorized:          "UNAUTHORIZED",
		http.StatusConflict:              "CONFLICT",
		http.StatusRequestEntityTooLarge: "PAYLOAD_TOO_LARGE",
		http.StatusBadGateway:            "INTERNAL_SERVER_ERROR",
		http.StatusTeapot:                "ERROR",
	}
	for status, want := range tests {
		assert.Equal(t, want, CodeFromStatus(status), "status %d", status)
	}
}
