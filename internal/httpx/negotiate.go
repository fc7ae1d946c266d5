package httpx

import (
	"strings"

	"github.com/gin-gonic/gin"
)

// WantsJSON reports whether the caller is API-style: it asked for JSON
// or identified itself as an XHR. Browser callers get redirects and
// flash notices instead of JSON envelopes. The decision depends only on
// inbound request signaling, never on session state.
func WantsJSON(c *gin.Context) bool {
	if c.GetHeader("X-Requested-With") == "XMLHttpRequest" {
		return true
	}
	accept := c.GetHeader("Accept")
	if strings.Contains(accept, "application/json") {
		return true
	}
	return strings.Contains(c.ContentType(), "application/json")
}
