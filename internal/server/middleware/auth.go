package middleware

import (
	"crypto/subtle"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/nulzo/agent-models/pkg/api"
)

// Auth checks for a valid Bearer token in the Authorization header. With no
// keys configured every request is let through.
func Auth(keys []string) gin.HandlerFunc {
	if len(keys) == 0 {
		return func(c *gin.Context) { c.Next() }
	}

	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			abort(c, api.UnauthorizedError("Missing Authorization header"))
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			abort(c, api.UnauthorizedError("Invalid Authorization header format"))
			return
		}

		if !validKey(keys, parts[1]) {
			abort(c, api.UnauthorizedError("Invalid API Key"))
			return
		}

		c.Next()
	}
}

func validKey(keys []string, token string) bool {
	ok := false
	for _, k := range keys {
		if subtle.ConstantTimeCompare([]byte(k), []byte(token)) == 1 {
			ok = true
		}
	}
	return ok
}

func abort(c *gin.Context, p *api.Problem) {
	c.AbortWithStatusJSON(p.Status, p)
}
