package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RequireRole allows only requests whose authenticated role is one of the
// given roles. Admin passes every guard.
func RequireRole(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := c.GetString("role")
		if role == "admin" {
			c.Next()
			return
		}
		for _, allowed := range roles {
			if role == allowed {
				c.Next()
				return
			}
		}
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
			"error": "Insufficient role for this operation",
		})
	}
}
