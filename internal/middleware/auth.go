package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"idcard/internal/auth"
)

// PrnoKey is the context key under which the authenticated employee's prno
// is stored for handlers.
const PrnoKey = "prno"

// AuthRequired verifies the bearer token on protected routes. A missing
// token is unauthenticated (401); a present but invalid or expired token is
// forbidden (403).
func AuthRequired(tokens *auth.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"status": "error", "data": "Authorization token required"})
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		prno, err := tokens.Verify(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"status": "error", "data": "Invalid or expired token"})
			return
		}

		c.Set(PrnoKey, prno)
		c.Next()
	}
}
