// Package auth holds the session authentication gate and the
// register/login/logout flows around it.
package auth

import (
	"net/http"

	"github.com/clipvault/clipvault/internal/httpx"
	"github.com/clipvault/clipvault/internal/session"
	"github.com/gin-gonic/gin"
)

// RequireAuth allows the request through when the session carries an
// authenticated identity. API-style callers are denied with a 401;
// browsers are sent to the login page with a one-time notice. Which
// case applies depends only on inbound request signaling.
func RequireAuth(sessions session.Store, responses *httpx.ResponseHandler) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := session.FromContext(c)
		if sess.Authenticated() {
			c.Next()
			return
		}

		if httpx.WantsJSON(c) {
			responses.Unauthorized(c, "Authentication required")
		} else {
			responses.FlashRedirect(c, sessions, sess, "error",
				"Please log in to continue.", "/auth/login")
		}
		c.Abort()
	}
}

// RedirectIfAuth short-circuits authenticated visitors to the home
// page; anonymous requests pass through.
func RedirectIfAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if session.FromContext(c).Authenticated() {
			c.Redirect(http.StatusFound, "/")
			c.Abort()
			return
		}
		c.Next()
	}
}
