package middleware

import (
	"net/http"
	"strings"

	"nimtoz/models"
	"nimtoz/utils"

	"github.com/gin-gonic/gin"
)

// JWTAuthMiddleware validates the bearer access token and stores the caller's
// identity in the request context.
func JWTAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Authentication invalid"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		userID, email, role, err := utils.TokenClaims(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "Token is not valid"})
			return
		}

		c.Set("userID", userID)
		c.Set("email", email)
		c.Set("role", role)
		c.Next()
	}
}

// RequireAdmin allows only callers whose token carries an admin role. It must
// run after JWTAuthMiddleware.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		role := c.GetString("role")
		if role != models.RoleAdmin && role != models.RoleSuperAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "Unauthorized"})
			return
		}
		c.Next()
	}
}
