// Package video serves the listing, watch, upload, comment, and
// reaction endpoints. Mutating routes sit behind the auth gate, the
// rate limiter, and the CSRF guard, wired in that order by the router.
package video

import (
	"fmt"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"

	"github.com/clipvault/clipvault/internal/httpx"
	"github.com/clipvault/clipvault/internal/session"
	"github.com/clipvault/clipvault/internal/storage"
	"github.com/clipvault/clipvault/internal/store"
	"github.com/clipvault/clipvault/internal/view"
	"github.com/gin-gonic/gin"
)

// Handler serves the video endpoints.
type Handler struct {
	store     *store.Store
	uploader  storage.Uploader
	sessions  session.Store
	responses *httpx.ResponseHandler
	logger    Logger
}

// NewHandler creates a video handler.
func NewHandler(st *store.Store, uploader storage.Uploader, sessions session.Store, responses *httpx.ResponseHandler, logger Logger) *Handler {
	return &Handler{
		store:     st,
		uploader:  uploader,
		sessions:  sessions,
		responses: responses,
		logger:    logger,
	}
}

// HandleHome lists all videos newest-first, filtered by the optional
// ?q= search term.
func (h *Handler) HandleHome(c *gin.Context) {
	search := c.Query("q")
	snap := h.store.Snapshot()
	videos := view.ListVideos(snap, search)

	sess := session.FromContext(c)
	data := gin.H{
		"videos":  videos,
		"search":  search,
		"success": sess.ConsumeFlash("success"),
	}
	if err := h.sessions.Save(c.Request.Context(), sess); err != nil {
		h.logger.LogError(err, "failed to save session after flash read")
	}
	h.responses.Success(c, data, "")
}

// HandleWatch returns the watch-page payload and bumps the view
// counter. The counter write is best-effort: a failed bump is logged
// but never hides the video.
func (h *Handler) HandleWatch(c *gin.Context) {
	id, ok := h.videoID(c)
	if !ok {
		return
	}

	snap := h.store.Snapshot()
	detail, found := view.GetVideoDetail(snap, id)
	if !found {
		h.responses.NotFound(c, "Video not found")
		return
	}

	if err := h.store.IncrementViews(id); err != nil {
		h.logger.LogError(err, "failed to increment views")
	}

	resp := WatchResponse{Video: detail, Related: related(snap, id)}
	if sess := session.FromContext(c); sess.Authenticated() {
		resp.UserAction = string(h.store.UserAction(id, sess.UserID))
	}
	h.responses.Success(c, resp, "")
}

// HandleUploadPage hands the rendering layer the CSRF token and pending
// notices for the upload form.
func (h *Handler) HandleUploadPage(c *gin.Context) {
	sess := session.FromContext(c)
	data := gin.H{
		"csrfToken": sess.CsrfToken,
		"error":     sess.ConsumeFlash("error"),
	}
	if err := h.sessions.Save(c.Request.Context(), sess); err != nil {
		h.logger.LogError(err, "failed to save session after flash read")
	}
	h.responses.Success(c, data, "")
}

// HandleUpload stores the media through the uploader, then persists the
// metadata. When the metadata write fails the stored files are removed
// again so no orphaned media outlives the failed operation.
func (h *Handler) HandleUpload(c *gin.Context) {
	sess := session.FromContext(c)

	title := strings.TrimSpace(c.PostForm("title"))
	if title == "" {
		h.uploadRejected(c, sess, "Title is required.")
		return
	}

	videoFile, err := c.FormFile("video")
	if err != nil {
		h.uploadRejected(c, sess, "Please select a video file.")
		return
	}

	filename, err := h.saveFile(storage.KindVideo, videoFile)
	if err != nil {
		h.responses.InternalError(c, "Failed to store video file", err)
		return
	}

	thumbnail := ""
	if thumbFile, err := c.FormFile("thumbnail"); err == nil {
		thumbnail, err = h.saveFile(storage.KindThumbnail, thumbFile)
		if err != nil {
			h.cleanup(storage.KindVideo, filename)
			h.responses.InternalError(c, "Failed to store thumbnail", err)
			return
		}
	}

	created, err := h.store.CreateVideo(store.VideoInput{
		Title:       title,
		Description: strings.TrimSpace(c.PostForm("description")),
		Filename:    filename,
		Thumbnail:   thumbnail,
		UserID:      sess.UserID,
	})
	if err != nil {
		h.cleanup(storage.KindVideo, filename)
		if thumbnail != "" {
			h.cleanup(storage.KindThumbnail, thumbnail)
		}
		if httpx.WantsJSON(c) {
			h.responses.InternalError(c, "Failed to save video. Please try again.", err)
		} else {
			h.logger.LogError(err, "failed to save video metadata")
			h.responses.FlashRedirect(c, h.sessions, sess, "error",
				"Failed to save video. Please try again.", "/videos/upload")
		}
		return
	}

	h.logger.LogInfo("video uploaded", map[string]interface{}{
		"video_id": created.ID,
		"user_id":  sess.UserID,
	})

	if httpx.WantsJSON(c) {
		h.responses.Created(c, created, "")
		return
	}
	c.Redirect(http.StatusFound, fmt.Sprintf("/videos/%d", created.ID))
}

// HandleComment appends a comment to a video.
func (h *Handler) HandleComment(c *gin.Context) {
	id, ok := h.videoID(c)
	if !ok {
		return
	}
	sess := session.FromContext(c)

	var req CommentRequest
	_ = c.ShouldBind(&req)
	text := strings.TrimSpace(req.Text)
	if text == "" {
		if httpx.WantsJSON(c) {
			h.responses.ValidationError(c, "text", "Comment cannot be empty.")
		} else {
			h.responses.FlashRedirect(c, h.sessions, sess, "error",
				"Comment cannot be empty.", fmt.Sprintf("/videos/%d", id))
		}
		return
	}

	comment, err := h.store.CreateComment(store.CommentInput{
		VideoID: id,
		UserID:  sess.UserID,
		Text:    text,
	})
	if err != nil {
		h.responses.InternalError(c, "Failed to save comment", err)
		return
	}

	if httpx.WantsJSON(c) {
		h.responses.Created(c, comment, "")
		return
	}
	c.Redirect(http.StatusFound, fmt.Sprintf("/videos/%d", id))
}

// HandleLike toggles the caller's reaction and returns the post-toggle
// counts.
func (h *Handler) HandleLike(c *gin.Context) {
	id, ok := h.videoID(c)
	if !ok {
		return
	}

	var req LikeRequest
	if err := c.ShouldBind(&req); err != nil {
		h.responses.ValidationError(c, "type", "Invalid type")
		return
	}
	likeType := store.LikeType(req.Type)
	if !likeType.Valid() {
		h.responses.ValidationError(c, "type", "Invalid type")
		return
	}

	sess := session.FromContext(c)
	result, err := h.store.ToggleLike(id, sess.UserID, likeType)
	if err != nil {
		h.responses.InternalError(c, "Failed to save reaction", err)
		return
	}
	h.responses.Success(c, result, "")
}

func (h *Handler) videoID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		h.responses.NotFound(c, "Video not found")
		return 0, false
	}
	return id, true
}

func (h *Handler) saveFile(kind storage.Kind, header *multipart.FileHeader) (string, error) {
	f, err := header.Open()
	if err != nil {
		return "", err
	}
	defer f.Close()
	return h.uploader.Save(kind, header.Filename, f)
}

func (h *Handler) cleanup(kind storage.Kind, storedName string) {
	if err := h.uploader.Remove(kind, storedName); err != nil {
		h.logger.LogWarn("failed to remove orphaned media", map[string]interface{}{
			"kind": string(kind),
			"file": storedName,
		})
	}
}

func (h *Handler) uploadRejected(c *gin.Context, sess *session.Session, message string) {
	if httpx.WantsJSON(c) {
		h.responses.ValidationError(c, "", message)
		return
	}
	h.responses.FlashRedirect(c, h.sessions, sess, "error", message, "/videos/upload")
}

// related picks up to relatedLimit other videos for the watch page.
func related(snap store.Snapshot, excludeID int64) []view.VideoSummary {
	all := view.ListVideos(snap, "")
	out := make([]view.VideoSummary, 0, relatedLimit)
	for _, v := range all {
		if v.ID == excludeID {
			continue
		}
		out = append(out, v)
		if len(out) == relatedLimit {
			break
		}
	}
	return out
}
