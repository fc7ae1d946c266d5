package video

import "github.com/clipvault/clipvault/internal/view"

// LikeRequest is the body of the like/dislike toggle endpoint.
type LikeRequest struct {
	Type string `json:"type" form:"type"`
}

// CommentRequest is the body of the comment endpoint.
type CommentRequest struct {
	Text string `json:"text" form:"text"`
}

// WatchResponse is the watch-page payload: the video detail, the
// caller's current reaction, and a short list of other videos.
type WatchResponse struct {
	Video      view.VideoDetail    `json:"video"`
	UserAction string              `json:"userAction,omitempty"`
	Related    []view.VideoSummary `json:"related"`
}

// relatedLimit caps the related-videos list on the watch page.
const relatedLimit = 8

// Logger is the logging surface the video handlers need.
type Logger interface {
	LogInfo(msg string, fields map[string]interface{})
	LogError(err error, msg string) error
	LogWarn(msg string, fields map[string]interface{})
}
