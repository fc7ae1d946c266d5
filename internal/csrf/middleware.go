package csrf

import (
	"github.com/clipvault/clipvault/internal/httpx"
	"github.com/clipvault/clipvault/internal/session"
	"github.com/gin-gonic/gin"
)

// Issue runs on every request: it makes sure the session carries a CSRF
// token, persisting the session when one was just generated. It never
// rejects anything; validation is Guard's job.
func Issue(sessions session.Store, responses *httpx.ResponseHandler) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := session.FromContext(c)
		if sess == nil {
			c.Next()
			return
		}

		_, issued, err := EnsureToken(sess)
		if err != nil {
			responses.InternalError(c, "Failed to issue CSRF token", err)
			c.Abort()
			return
		}
		if issued {
			if err := sessions.Save(c.Request.Context(), sess); err != nil {
				responses.InternalError(c, "Failed to save session", err)
				c.Abort()
				return
			}
		}
		c.Next()
	}
}

// Guard validates the double-submit token on mutating routes. It sits
// after the auth gate and the rate limiter in the middleware chain. The
// token may arrive in the _csrf form field or the X-CSRF-Token header;
// mismatch or absence rejects the request outright.
func Guard(responses *httpx.ResponseHandler) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := session.FromContext(c)
		var sessionToken string
		if sess != nil {
			sessionToken = sess.CsrfToken
		}

		presented := c.PostForm(FormField)
		if presented == "" {
			presented = c.GetHeader(HeaderName)
		}

		if !Validate(c.Request.Method, presented, sessionToken) {
			responses.CsrfInvalid(c, "Invalid CSRF token. Please go back and try again.")
			c.Abort()
			return
		}
		c.Next()
	}
}
