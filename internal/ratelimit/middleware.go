package ratelimit

import (
	"strconv"

	"github.com/clipvault/clipvault/internal/httpx"
	"github.com/clipvault/clipvault/internal/session"
	"github.com/gin-gonic/gin"
)

// KeyFunc extracts the caller identity a limiter bucket is keyed on.
type KeyFunc func(c *gin.Context) string

// SessionKey keys by the authenticated user id, falling back to the
// client network address for anonymous callers.
func SessionKey(c *gin.Context) string {
	if sess := session.FromContext(c); sess.Authenticated() {
		return "user:" + strconv.FormatInt(sess.UserID, 10)
	}
	return "ip:" + c.ClientIP()
}

// Middleware rejects requests over the limit. API-style callers get a
// 429 with a Retry-After hint; browsers get a flash notice and are sent
// back to the referring page.
func Middleware(limiter *Limiter, keyFn KeyFunc, sessions session.Store, responses *httpx.ResponseHandler) gin.HandlerFunc {
	if keyFn == nil {
		keyFn = SessionKey
	}
	return func(c *gin.Context) {
		ok, retryAfter := limiter.Allow(keyFn(c))
		if ok {
			c.Next()
			return
		}

		if httpx.WantsJSON(c) {
			responses.TooManyRequests(c, retryAfter)
		} else {
			sess := session.FromContext(c)
			responses.FlashRedirect(c, sessions, sess, "error",
				"Too many requests. Please wait a moment and try again.", backLocation(c))
		}
		c.Abort()
	}
}

func backLocation(c *gin.Context) string {
	if ref := c.Request.Referer(); ref != "" {
		return ref
	}
	return "/"
}
