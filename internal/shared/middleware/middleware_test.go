package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shelter-backend/internal/shared"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// stubResolver chấp nhận đúng các token trong map
type stubResolver map[string]*shared.Principal

func (s stubResolver) ResolvePrincipal(_ context.Context, token string) (*shared.Principal, error) {
	if p, ok := s[token]; ok {
		return p, nil
	}
	return nil, errors.New("unknown token")
}

func serve(r http.Handler, method, path string, header map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	for k, v := range header {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthenticate(t *testing.T) {
	resolver := stubResolver{
		"admin-token": {Username: "admin", Roles: []string{shared.RoleAdmin}},
		"user-token":  {Username: "user", Roles: []string{shared.RoleUser}},
	}

	r := gin.New()
	r.Use(Authenticate(resolver, "/api/auth/", "/health"))
	r.GET("/health", func(c *gin.Context) { c.String(http.StatusOK, "ok") })
	r.POST("/api/auth/login", func(c *gin.Context) { c.Status(http.StatusOK) })
	r.GET("/api/animals", func(c *gin.Context) {
		c.String(http.StatusOK, shared.GetPrincipal(c).Username)
	})
	r.DELETE("/api/users", RequireRole(shared.RoleAdmin), func(c *gin.Context) { c.Status(http.StatusNoContent) })

	tests := []struct {
		name   string
		method string
		path   string
		auth   string
		want   int
		body   string
	}{
		{"public health", http.MethodGet, "/health", "", http.StatusOK, "ok"},
		{"public login", http.MethodPost, "/api/auth/login", "", http.StatusOK, ""},
		{"missing header", http.MethodGet, "/api/animals", "", http.StatusUnauthorized, ""},
		{"wrong scheme", http.MethodGet, "/api/animals", "Basic dXNlcg==", http.StatusUnauthorized, ""},
		{"empty bearer", http.MethodGet, "/api/animals", "Bearer ", http.StatusUnauthorized, ""},
		{"unknown token", http.MethodGet, "/api/animals", "Bearer nope", http.StatusUnauthorized, ""},
		{"valid token", http.MethodGet, "/api/animals", "Bearer user-token", http.StatusOK, "user"},
		{"lowercase scheme", http.MethodGet, "/api/animals", "bearer user-token", http.StatusOK, "user"},
		{"role missing", http.MethodDelete, "/api/users", "Bearer user-token", http.StatusForbidden, ""},
		{"role present", http.MethodDelete, "/api/users", "Bearer admin-token", http.StatusNoContent, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			header := map[string]string{}
			if tt.auth != "" {
				header["Authorization"] = tt.auth
			}
			w := serve(r, tt.method, tt.path, header)
			assert.Equal(t, tt.want, w.Code, w.Body.String())
			if tt.body != "" {
				assert.Equal(t, tt.body, w.Body.String())
			}
		})
	}
}

func TestRequireRole_WithoutAuthenticate(t *testing.T) {
	r := gin.New()
	r.GET("/x", RequireRole(shared.RoleAdmin), func(c *gin.Context) { c.Status(http.StatusOK) })

	assert.Equal(t, http.StatusUnauthorized, serve(r, http.MethodGet, "/x", nil).Code)
}

func TestRequestID(t *testing.T) {
	r := gin.New()
	r.Use(RequestID())
	r.GET("/x", func(c *gin.Context) { c.String(http.StatusOK, c.GetString(shared.ContextKeyRequestID)) })

	w := serve(r, http.MethodGet, "/x", map[string]string{HeaderRequestID: "abc-123"})
	assert.Equal(t, "abc-123", w.Header().Get(HeaderRequestID))
	assert.Equal(t, "abc-123", w.Body.String())

	w = serve(r, http.MethodGet, "/x", map[string]string{HeaderRequestID: strings.Repeat("x", 200)})
	assert.Len(t, w.Header().Get(HeaderRequestID), 36)

	w = serve(r, http.MethodGet, "/x", nil)
	assert.NotEmpty(t, w.Header().Get(HeaderRequestID))
}

func TestRecovery(t *testing.T) {
	r := gin.New()
	r.Use(RequestID(), Recovery())
	r.GET("/boom", func(c *gin.Context) { panic("kaboom") })

	w := serve(r, http.MethodGet, "/boom", nil)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "SYS_001")
}

func TestCORS_Preflight(t *testing.T) {
	r := gin.New()
	r.Use(CORS())
	r.GET("/x", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := serve(r, http.MethodOptions, "/x", map[string]string{"Origin": "http://localhost:3000"})
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestHTTPMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewHTTPMetrics(reg)

	r := gin.New()
	r.Use(m.Middleware())
	r.GET("/api/animals/:id", func(c *gin.Context) { c.Status(http.StatusOK) })

	serve(r, http.MethodGet, "/api/animals/1", nil)
	serve(r, http.MethodGet, "/api/animals/2", nil)
	serve(r, http.MethodGet, "/nowhere", nil)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.requests.WithLabelValues("/api/animals/:id", http.MethodGet, "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.requests.WithLabelValues("unmatched", http.MethodGet, "404")))

	n, err := testutil.GatherAndCount(reg, "shelter_http_request_duration_seconds")
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}
