// middleware/auth.go
package middleware

import (
	"net/http"
	"strings"

	"feastly/utils"

	"github.com/gin-gonic/gin"
)

const sessionKeyPrefix = "session:"

// JWTAuthMiddleware validates the Bearer token, checks that its session is
// still live in the auth cache, and injects userID/role into the context.
func JWTAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid Authorization header"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		claims, err := utils.ExtractClaims(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}

		// The auth surface stores a hash of each issued token; a missing entry
		// means the session was revoked or expired server-side.
		cache := utils.GetAuthCacheClient()
		exists, err := cache.Exists(c.Request.Context(), sessionKeyPrefix+utils.HashToken(tokenString)).Result()
		if err != nil || exists == 0 {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Session expired or revoked"})
			return
		}

		c.Set("userID", claims.Subject)
		c.Set("role", claims.Role)
		c.Next()
	}
}
