// internal/middleware/session.go
package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	SessionCookie    = "un_session"
	SessionKey       = "session_id"
	sessionCookieAge = 60 * 60 * 24 * 30 // 30 days
)

// Session mints an anonymous session id on first contact and carries it
// in a cookie. Cart and wishlist state is namespaced by this id.
func Session() gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID, err := c.Cookie(SessionCookie)
		if err != nil || sessionID == "" {
			sessionID = uuid.New().String()
			c.SetSameSite(http.SameSiteLaxMode)
			c.SetCookie(SessionCookie, sessionID, sessionCookieAge, "/", "", false, true)
		}
		c.Set(SessionKey, sessionID)
		c.Next()
	}
}

// GetSessionID returns the session id established by Session().
func GetSessionID(c *gin.Context) string {
	if sessionID, exists := c.Get(SessionKey); exists {
		if s, ok := sessionID.(string); ok {
			return s
		}
	}
	return ""
}
