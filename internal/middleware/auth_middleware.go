package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"gantt/internal/auth"
)

// Context keys set by the auth middleware.
const (
	UserIDKey       = "userID"
	IsSuperAdminKey = "isSuperAdmin"
)

// JWTAuthMiddleware validates the Bearer token and stores the caller's
// user ID and role flag in the gin context.
func JWTAuthMiddleware(jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is required"})
			c.Abort()
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header format must be Bearer {token}"})
			c.Abort()
			return
		}

		claims, err := auth.ParseToken(jwtSecret, parts[1])
		if err != nil {
			if errors.Is(err, auth.ErrInvalidUserID) {
				c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid user ID in token"})
			} else {
				c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			}
			c.Abort()
			return
		}

		c.Set(UserIDKey, claims.UserID)
		c.Set(IsSuperAdminKey, claims.IsSuperAdmin)
		c.Next()
	}
}

// RequireSuperAdmin rejects callers whose token does not carry the super
// admin flag. Must run after JWTAuthMiddleware.
func RequireSuperAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		isSuperAdmin, exists := c.Get(IsSuperAdminKey)
		if !exists || isSuperAdmin != true {
			c.JSON(http.StatusForbidden, gin.H{"error": "Not enough permissions"})
			c.Abort()
			return
		}
		c.Next()
	}
}
