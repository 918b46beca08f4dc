package middleware

import (
	"net/http"
	"strings"

	"medibook/models"
	"medibook/utils"

	"github.com/gin-gonic/gin"
)

// Context keys set by the auth middleware.
const (
	ContextUserID   = "userID"
	ContextUserRole = "userRole"
)

// JWTAuthMiddleware validates the bearer token and stores the caller's
// identity and role claims in the request context.
func JWTAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid Authorization header"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		id, role, err := utils.ExtractIdentity(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}

		c.Set(ContextUserID, id)
		c.Set(ContextUserRole, role)
		c.Next()
	}
}

// RequireRole rejects callers whose role claim does not match.
func RequireRole(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetString(ContextUserRole) != role {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Insufficient role for this action"})
			return
		}
		c.Next()
	}
}

// RequireDoctor is shorthand for the doctor-only settings endpoints.
func RequireDoctor() gin.HandlerFunc {
	return RequireRole(models.RoleDoctor)
}
