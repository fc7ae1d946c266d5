package health

import (
	"github.com/clipvault/clipvault/internal/httpx"
	"github.com/gin-gonic/gin"
)

// Handler handles health check related endpoints.
type Handler struct {
	responses *httpx.ResponseHandler
}

// NewHandler creates a new health check handler.
func NewHandler(responses *httpx.ResponseHandler) *Handler {
	return &Handler{responses: responses}
}

// HandleHealthCheck reports liveness.
func (h *Handler) HandleHealthCheck(c *gin.Context) {
	h.responses.Success(c, nil, "Health check successful")
}
