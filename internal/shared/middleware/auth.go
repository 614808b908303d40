package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"shelter-backend/internal/shared"
	"shelter-backend/internal/shared/response"
)

// PrincipalResolver verify access token và load user tương ứng
type PrincipalResolver interface {
	ResolvePrincipal(ctx context.Context, token string) (*shared.Principal, error)
}

// Authenticate - global JWT middleware
// Mọi request phải có "Authorization: Bearer <token>" trừ các path bắt đầu
// bằng một trong publicPrefixes
func Authenticate(resolver PrincipalResolver, publicPrefixes ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method == http.MethodOptions || isPublic(c.Request.URL.Path, publicPrefixes) {
			c.Next()
			return
		}

		// 1. Lấy token từ Authorization header
		token, ok := bearerToken(c.GetHeader("Authorization"))
		if !ok {
			response.Unauthorized(c, "Authentication required")
			return
		}

		// 2. Verify token + load user
		principal, err := resolver.ResolvePrincipal(c.Request.Context(), token)
		if err != nil {
			log.Debug().
				Err(err).
				Str("request_id", c.GetString(shared.ContextKeyRequestID)).
				Msg("Rejected bearer token")
			response.Unauthorized(c, "Invalid or expired token")
			return
		}

		// 3. Set principal vào context cho handlers phía sau
		shared.SetPrincipal(c, principal)

		c.Next()
	}
}

func bearerToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}

func isPublic(path string, prefixes []string) bool {
	for _, prefix := range prefixes {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}
	return false
}

// RequireRole chỉ cho qua principal có role (dùng sau Authenticate)
func RequireRole(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		principal := shared.GetPrincipal(c)
		if principal == nil {
			response.Unauthorized(c, "Authentication required")
			return
		}

		if !principal.HasRole(role) {
			response.Forbidden(c, "Access denied: "+role+" required")
			return
		}

		c.Next()
	}
}
