package middleware

import (
	"net/http"
	"strings"

	"rps_game/internal/service"

	"github.com/gin-gonic/gin"
)

// SessionIDKey is the gin context key holding the authenticated session id.
const SessionIDKey = "session_id"

// SessionAuth requires "Authorization: Bearer <token>" issued for a session.
func SessionAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing token"})
			return
		}

		sessionID, err := service.ParseJWT(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}

		c.Set(SessionIDKey, sessionID)
		c.Next()
	}
}
