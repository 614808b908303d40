package shared

import (
	"slices"

	"github.com/gin-gonic/gin"
)

// gin context keys
const (
	ContextKeyRequestID = "request_id"
	ContextKeyPrincipal = "principal"
)

const (
	RoleAdmin = "ROLE_ADMIN"
	RoleUser  = "ROLE_USER"
)

// Principal là user đã authenticate của request hiện tại
// (ở đây để middleware không phải import auth domain)
type Principal struct {
	Username string   `json:"username"`
	Roles    []string `json:"roles"`
}

func (p *Principal) HasRole(role string) bool {
	return p != nil && slices.Contains(p.Roles, role)
}

func SetPrincipal(c *gin.Context, p *Principal) {
	c.Set(ContextKeyPrincipal, p)
}

// GetPrincipal returns nil on public routes
func GetPrincipal(c *gin.Context) *Principal {
	v, ok := c.Get(ContextKeyPrincipal)
	if !ok {
		return nil
	}
	p, _ := v.(*Principal)
	return p
}
