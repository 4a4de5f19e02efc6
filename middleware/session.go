package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	sessionCookie = "session_id"
	// SessionKey is the gin context key holding the session ID.
	SessionKey = "sessionID"

	sessionMaxAge = 7 * 24 * 60 * 60
)

// Session assigns each browser a stable session ID cookie. The cart and
// location documents are keyed by this ID.
func Session() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := c.Cookie(sessionCookie)
		if err != nil || id == "" {
			id = uuid.NewString()
			http.SetCookie(c.Writer, &http.Cookie{
				Name:     sessionCookie,
				Value:    id,
				Path:     "/",
				MaxAge:   sessionMaxAge,
				HttpOnly: true,
				SameSite: http.SameSiteLaxMode,
			})
		}
		c.Set(SessionKey, id)
		c.Next()
	}
}

// SessionID returns the session ID assigned by Session.
func SessionID(c *gin.Context) string {
	return c.GetString(SessionKey)
}
