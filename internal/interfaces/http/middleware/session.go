package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const (
	// SessionHeader carries the opaque session token issued at login
	SessionHeader = "X-Session-ID"
	// UserIDKey is the context key for the resolved user id
	UserIDKey = "userId"
)

// SessionMiddleware authenticates requests via the session header. The
// session id is resolved once per request; handlers only ever see the
// user id.
func SessionMiddleware(resolve func(c *gin.Context, sessionID string) (string, error)) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID := c.GetHeader(SessionHeader)
		if sessionID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Missing session",
			})
			return
		}

		userID, err := resolve(c, sessionID)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid session",
			})
			return
		}

		c.Set(UserIDKey, userID)
		c.Next()
	}
}

// GetUserID gets the resolved user id from context
func GetUserID(c *gin.Context) (string, bool) {
	userID, exists := c.Get(UserIDKey)
	if !exists {
		return "", false
	}
	id, ok := userID.(string)
	return id, ok
}
