package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shelter-backend/internal/domains/schedule"
	"shelter-backend/internal/domains/schedule/repository"
	"shelter-backend/internal/domains/schedule/service"
)

type envelope struct {
	Success bool                 `json:"success"`
	Data    schedule.ScheduleDTO `json:"data"`
	Error   *struct {
		Code    string         `json:"code"`
		Details map[string]any `json:"details"`
	} `json:"error"`
}

func newRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	h := NewScheduleHandler(service.NewScheduleService(repository.NewMemoryRepository()))

	r := gin.New()
	g := r.Group("/api/schedules")
	g.POST("", h.Create)
	g.GET("", h.List)
	g.GET("/:id", h.GetByID)
	g.PUT("/:id", h.Update)
	g.DELETE("/:id", h.Delete)
	return r
}

func do(r http.Handler, method, path, body string) (*httptest.ResponseRecorder, envelope) {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var env envelope
	_ = json.Unmarshal(w.Body.Bytes(), &env)
	return w, env
}

func TestScheduleLifecycle(t *testing.T) {
	r := newRouter()

	w, env := do(r, http.MethodPost, "/api/schedules",
		`{"days":["TUESDAY","MONDAY"],"startTimeHour":9,"startTimeMinute":0,"endTimeHour":17,"endTimeMinute":30}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.Equal(t, "Hours: MON, TUE from 09:00 to 17:30", env.Data.ScheduleString)
	assert.Equal(t, []string{"MONDAY", "TUESDAY"}, env.Data.Days)
	id := env.Data.ScheduleID
	require.NotZero(t, id)

	w, env = do(r, http.MethodPut, "/api/schedules/1", `{"endTimeHour":18}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, id, env.Data.ScheduleID)
	assert.Equal(t, "Hours: MON, TUE from 09:00 to 18:30", env.Data.ScheduleString)

	w, _ = do(r, http.MethodDelete, "/api/schedules/1", "")
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.String())

	w, env = do(r, http.MethodGet, "/api/schedules/1", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "SCHEDULE_NOT_FOUND", env.Error.Code)
}

func TestScheduleCreateValidation(t *testing.T) {
	r := newRouter()

	w, env := do(r, http.MethodPost, "/api/schedules", `{"days":["MONDAY"],"startTimeHour":25}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "VALIDATION_ERROR", env.Error.Code)
	assert.Contains(t, env.Error.Details, "startTimeHour")
}

func TestScheduleBadID(t *testing.T) {
	w, _ := do(newRouter(), http.MethodGet, "/api/schedules/abc", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
