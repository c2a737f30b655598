package mw

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"gamenight-backend/internal/session"
)

// UserKey is the gin context key holding the authenticated display name.
const UserKey = "user"

// Auth extracts and verifies the session token from the Authorization header
// and injects the bound name into the request context. Identity is explicit
// per request; there is no ambient session state.
func Auth(sessions *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing authorization header"})
			return
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "malformed authorization header"})
			return
		}

		name, err := sessions.Parse(parts[1])
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "session expired or invalid"})
			return
		}

		c.Set(UserKey, name)
		c.Next()
	}
}
