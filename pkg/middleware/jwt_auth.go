package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"simsem/pkg/utils"
)

// JWTAuthMiddleware guards the admin-facing routes. The wizard flow
// itself is pre-auth; only draft administration requires the provider
// token issued at signup.
func JWTAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			utils.RespondError(c, http.StatusUnauthorized, "Authorization header missing or invalid")
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := utils.ValidateToken(tokenString)
		if err != nil {
			utils.RespondError(c, http.StatusUnauthorized, "Invalid or expired token")
			c.Abort()
			return
		}

		c.Set("provider_id", claims.ProviderID)
		c.Set("role", claims.Role)
		c.Next()
	}
}
