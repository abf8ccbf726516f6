package access

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ipriyanshu25/office.enoylity/internal/shared/response"
)

// IdentityKey is where the auth middleware parks the verified session on the
// gin context.
const IdentityKey = "identity"

func IdentityFrom(c *gin.Context) (Identity, bool) {
	v, ok := c.Get(IdentityKey)
	if !ok {
		return Identity{}, false
	}
	id, ok := v.(Identity)
	return id, ok
}

// Require gates a route on a capability. Denied requests never reach the
// handler, so a screen without its view permission issues zero fetch work.
func Require(gate Gate, domain, action string) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := IdentityFrom(c)
		if !ok {
			response.Error(c, http.StatusUnauthorized, "Authentication is required", nil)
			c.Abort()
			return
		}

		allowed, err := gate.Allowed(id, domain, action)
		if err != nil {
			response.Error(c, http.StatusInternalServerError, "Permission check failed", nil)
			c.Abort()
			return
		}

		if !allowed {
			response.Error(c, http.StatusForbidden, "You do not have permission to access this resource", gin.H{
				"required": domain + ":" + action,
			})
			c.Abort()
			return
		}

		c.Next()
	}
}

// RequireAdmin gates routes with no capability flag of their own, like the
// admin credential update.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := IdentityFrom(c)
		if !ok {
			response.Error(c, http.StatusUnauthorized, "Authentication is required", nil)
			c.Abort()
			return
		}
		if !id.IsAdmin() {
			response.Error(c, http.StatusForbidden, "You do not have permission to access this resource", nil)
			c.Abort()
			return
		}
		c.Next()
	}
}
