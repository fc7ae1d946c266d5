package session

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CookieName identifies the session cookie.
const CookieName = "clipvault_session"

// cookieMaxAge matches the store TTL: seven days.
const cookieMaxAge = 7 * 24 * 60 * 60

const contextKey = "session"

// Middleware resolves the visitor's session from the cookie, creating a
// fresh one when the cookie is absent or stale, and places it in the gin
// context for downstream middlewares and handlers.
func Middleware(store Store, secureCookies bool, logger Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var sess *Session

		if id, err := c.Cookie(CookieName); err == nil && id != "" {
			sess, err = store.Get(c.Request.Context(), id)
			if err != nil {
				logger.LogError(err, "session lookup failed")
				sess = nil
			}
		}

		if sess == nil {
			sess = &Session{ID: uuid.NewString()}
			c.SetSameSite(http.SameSiteLaxMode)
			c.SetCookie(CookieName, sess.ID, cookieMaxAge, "/", "", secureCookies, true)
			logger.LogDebug("session created", map[string]interface{}{"session_id": sess.ID})
		}

		c.Set(contextKey, sess)
		c.Next()
	}
}

// FromContext returns the request's session. It is nil only for routes
// mounted outside the session middleware.
func FromContext(c *gin.Context) *Session {
	if v, ok := c.Get(contextKey); ok {
		if sess, ok := v.(*Session); ok {
			return sess
		}
	}
	return nil
}
