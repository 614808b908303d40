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

	"shelter-backend/internal/domains/adopter"
	"shelter-backend/internal/domains/adopter/repository"
	"shelter-backend/internal/domains/adopter/service"
)

func newRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewAdopterHandler(service.NewAdopterService(repository.NewMemoryRepository()))

	r := gin.New()
	g := r.Group("/api/adopters")
	g.POST("", h.Create)
	g.GET("", h.List)
	g.GET("/:id", h.GetByID)
	g.PUT("/:id", h.Update)
	g.DELETE("/:id", h.Delete)
	return r
}

func do(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAdopterCRUD(t *testing.T) {
	r := newRouter()

	w := do(r, http.MethodPost, "/api/adopters",
		`{"name":"Ana","address":"Calle 1","phone":"600111222","email":"ana@example.com","processNumber":"P-77"}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var created struct {
		Data adopter.AdopterDTO `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.Equal(t, int64(1), created.Data.ID)
	assert.Equal(t, "P-77", created.Data.ProcessNumber)

	w = do(r, http.MethodPut, "/api/adopters/1", `{"phone":"699000000"}`)
	require.Equal(t, http.StatusOK, w.Code)
	var updated struct {
		Data adopter.AdopterDTO `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &updated))
	assert.Equal(t, "699000000", updated.Data.Phone)
	assert.Equal(t, "Calle 1", updated.Data.Address)

	w = do(r, http.MethodGet, "/api/adopters", "")
	assert.Equal(t, http.StatusOK, w.Code)

	assert.Equal(t, http.StatusNoContent, do(r, http.MethodDelete, "/api/adopters/1", "").Code)
	assert.Equal(t, http.StatusNotFound, do(r, http.MethodGet, "/api/adopters/1", "").Code)
}

func TestAdopterCreate_InvalidEmail(t *testing.T) {
	w := do(newRouter(), http.MethodPost, "/api/adopters", `{"name":"Ana","email":"nope"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "VALIDATION_ERROR")
}
