package middleware

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Authenticator is the minimal interface the middleware depends on
type Authenticator interface {
	Authenticate(credential string) error
}

// RequireAdmin returns a Gin middleware that validates Bearer credentials
// using the provided authenticator
func RequireAdmin(a Authenticator) gin.HandlerFunc {
	return func(c *gin.Context) {
		auth := c.GetHeader("Authorization")
		if auth == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing Authorization header"})
			return
		}
		// Expect 'Bearer <credential>'
		var credential string
		if n, _ := fmt.Sscanf(auth, "Bearer %s", &credential); n != 1 {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid Authorization header"})
			return
		}
		if err := a.Authenticate(credential); err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}
		c.Next()
	}
}
