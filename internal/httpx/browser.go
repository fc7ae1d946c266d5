package httpx

import (
	"net/http"

	"github.com/clipvault/clipvault/internal/session"
	"github.com/gin-gonic/gin"
)

// FlashRedirect queues a one-time notice on the session and redirects
// the browser. The session write is best-effort: a failed save loses
// the notice but never fails the redirect.
func (h *ResponseHandler) FlashRedirect(c *gin.Context, sessions session.Store, sess *session.Session, kind, message, location string) {
	if sess != nil {
		sess.AddFlash(kind, message)
		if err := sessions.Save(c.Request.Context(), sess); err != nil {
			h.logger.LogError(err, "failed to save flash notice")
		}
	}
	c.Redirect(http.StatusFound, location)
}

// RedirectBack sends the browser to the referring page, falling back to
// the home page when no referer is present.
func RedirectBack(c *gin.Context) {
	location := c.Request.Referer()
	if location == "" {
		location = "/"
	}
	c.Redirect(http.StatusFound, location)
}
