// Package channel serves a user's public video listing.
package channel

import (
	"github.com/clipvault/clipvault/internal/httpx"
	"github.com/clipvault/clipvault/internal/store"
	"github.com/clipvault/clipvault/internal/view"
	"github.com/gin-gonic/gin"
)

// Handler serves channel pages.
type Handler struct {
	store     *store.Store
	responses *httpx.ResponseHandler
}

// NewHandler creates a channel handler.
func NewHandler(st *store.Store, responses *httpx.ResponseHandler) *Handler {
	return &Handler{store: st, responses: responses}
}

// ChannelUser is the public shape of a channel owner.
type ChannelUser struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Avatar   string `json:"avatar,omitempty"`
}

// HandleChannel returns a user's videos newest-first with like counts.
func (h *Handler) HandleChannel(c *gin.Context) {
	username := c.Param("username")
	user, found := h.store.FindUserByUsername(username)
	if !found {
		h.responses.NotFound(c, "Channel not found")
		return
	}

	snap := h.store.Snapshot()
	h.responses.Success(c, gin.H{
		"user":   ChannelUser{ID: user.ID, Username: user.Username, Avatar: user.Avatar},
		"videos": view.ListVideosByUser(snap, user.ID),
	}, "")
}
