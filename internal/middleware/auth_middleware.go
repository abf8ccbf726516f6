package middleware

import (
	"fmt"
	"net/http"
	"os"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/ipriyanshu25/office.enoylity/internal/access"
	"github.com/ipriyanshu25/office.enoylity/internal/shared/response"
)

func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		var tokenString string

		authHeader := c.GetHeader("Authorization")
		tokenString, found := strings.CutPrefix(authHeader, "Bearer ")
		if !found {
			tokenString = ""
		}

		if tokenString == "" {
			if cookie, err := c.Cookie("access_token"); err == nil {
				tokenString = cookie
			}
		}

		if tokenString == "" {
			response.Error(c, http.StatusUnauthorized, "Token not found", nil)
			c.Abort()
			return
		}

		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method")
			}
			return []byte(os.Getenv("JWT_SECRET")), nil
		})

		if err != nil || !token.Valid {
			msg := "Invalid token"
			if err != nil && strings.Contains(err.Error(), "expired") {
				msg = "Token expired"
			}
			response.Error(c, http.StatusUnauthorized, msg, nil)
			c.Abort()
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			response.Error(c, http.StatusUnauthorized, "Invalid token claims", nil)
			c.Abort()
			return
		}

		actorID, ok := claims["sub"].(string)
		if !ok || actorID == "" {
			response.Error(c, http.StatusUnauthorized, "Actor ID not found in token", nil)
			c.Abort()
			return
		}

		role, _ := claims["role"].(string)
		if role != access.RoleAdmin && role != access.RoleSubadmin {
			response.Error(c, http.StatusUnauthorized, "Unknown role in token", nil)
			c.Abort()
			return
		}

		employeeID, _ := claims["employee_id"].(string)

		c.Set(access.IdentityKey, access.Identity{
			Role:        role,
			ActorID:     actorID,
			EmployeeID:  employeeID,
			Permissions: parsePermissions(claims["permissions"]),
		})

		c.Next()
	}
}

// parsePermissions degrades anything malformed to an empty flag set. A bad
// payload must never block rendering, it just grants nothing.
func parsePermissions(raw any) map[string]int {
	perms := map[string]int{}

	m, ok := raw.(map[string]any)
	if !ok {
		return perms
	}

	for name, v := range m {
		switch val := v.(type) {
		case float64:
			if val == 1 {
				perms[name] = 1
			}
		case bool:
			if val {
				perms[name] = 1
			}
		}
	}

	return perms
}
