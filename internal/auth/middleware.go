package auth

import (
	"net/http"
	"strings"

	"foodshare/backend/pkg/jwt"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware creates a gin middleware that requires a valid bearer token
// and sets the userID in the context.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, ok := bearerToken(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is missing or malformed"})
			return
		}

		userID, err := jwt.ParseUserID(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			return
		}

		c.Set("userID", userID)
		c.Next()
	}
}

// OptionalAuthMiddleware inspects for a token and sets the userID if present and valid,
// but does not fail if the token is missing or invalid.
func OptionalAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if tokenString, ok := bearerToken(c); ok {
			if userID, err := jwt.ParseUserID(tokenString); err == nil {
				c.Set("userID", userID)
			}
		}
		c.Next()
	}
}

// ViewerID returns the authenticated user's ID from the context, or 0 for an
// unauthenticated request. The zero value is what the repositories use to
// short-circuit membership checks to false.
func ViewerID(c *gin.Context) uint {
	if v, exists := c.Get("userID"); exists {
		return v.(uint)
	}
	return 0
}

func bearerToken(c *gin.Context) (string, bool) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return "", false
	}
	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return "", false
	}
	return parts[1], true
}
