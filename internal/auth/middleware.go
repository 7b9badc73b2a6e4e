package auth

import (
	"net/http"
	"strings"

	"gamecatalog/backend/pkg/jwt"

	"github.com/gin-gonic/gin"
)

// AdminSubject is the subject of tokens issued by the login endpoint.
const AdminSubject = "admin"

// Middleware requires a valid bearer token signed with secret. When enabled
// is false every request passes, which is how a local single-user instance
// runs without a configured admin password.
func Middleware(secret string, enabled bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !enabled {
			c.Next()
			return
		}

		authHeader := c.GetHeader("Authorization")
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header required"})
			return
		}

		subject, err := jwt.ParseToken(secret, parts[1])
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			return
		}
		if subject != AdminSubject {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Admin access required"})
			return
		}

		c.Set("subject", subject)
		c.Next()
	}
}
