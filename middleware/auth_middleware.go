package middleware

import (
	"net/http"

	"tasknest/tasknest/services"
	"tasknest/tasknest/utils/token"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware rejects requests without a valid bearer token. Every
// failure mode gets the same fixed message so callers learn nothing
// about why a token was rejected.
func AuthMiddleware(authService services.AuthServiceInterface) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, err := token.ExtractToken(c)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Could not validate credentials"})
			return
		}

		claims, err := authService.ValidateToken(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Could not validate credentials"})
			return
		}

		// Store user info in the context for later use
		c.Set("userID", claims.UserID)
		c.Set("email", claims.Email)

		c.Next()
	}
}
