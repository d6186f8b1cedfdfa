package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RequireRole aborts with 403 unless the role claim stored by AuthMiddleware
// is one of the allowed roles.
func RequireRole(roles ...string) gin.HandlerFunc {
	allowed := make(map[string]bool, len(roles))
	for _, r := range roles {
		allowed[r] = true
	}

	return func(c *gin.Context) {
		role := c.GetString("user_role")
		if role == "" || !allowed[role] {
			c.JSON(http.StatusForbidden, gin.H{"error": "insufficient role"})
			c.Abort()
			return
		}
		c.Next()
	}
}
