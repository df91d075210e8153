package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

const errUnauthorized = "Unauthorized"

// TokenVerifier is the subset of AuthUsecase the middleware needs.
type TokenVerifier interface {
	VerifyToken(rawToken string) (string, error)
}

// Auth validates a Bearer token and sets "adminEmail" in the gin context.
// Any valid, unexpired token with a non-empty subject unlocks the route;
// only the issuer can mint tokens under the shared secret.
func Auth(verifier TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": errUnauthorized})
			return
		}

		rawToken := strings.TrimPrefix(header, "Bearer ")

		subject, err := verifier.VerifyToken(rawToken)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": errUnauthorized})
			return
		}

		c.Set("adminEmail", subject)
		c.Next()
	}
}
