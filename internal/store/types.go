package store

import "time"

// LikeType is the kind of reaction a user can leave on a video.
type LikeType string

const (
	LikeTypeLike    LikeType = "like"
	LikeTypeDislike LikeType = "dislike"
)

// Valid reports whether t is one of the two known reaction types.
func (t LikeType) Valid() bool {
	return t == LikeTypeLike || t == LikeTypeDislike
}

// User represents a registered account. Immutable after creation except
// for the avatar.
type User struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Password  string    `json:"password"`
	Avatar    string    `json:"avatar,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// Video represents an uploaded video's metadata. The media bytes live
// outside the store; Filename and Thumbnail reference them.
type Video struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Filename    string    `json:"filename"`
	Thumbnail   string    `json:"thumbnail,omitempty"`
	UserID      int64     `json:"userId"`
	Views       int64     `json:"views"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Comment is append-only; there is no edit or delete operation.
type Comment struct {
	ID        int64     `json:"id"`
	VideoID   int64     `json:"videoId"`
	UserID    int64     `json:"userId"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"createdAt"`
}

// Like is keyed by (VideoID, UserID); at most one row per pair exists.
// It carries no id of its own.
type Like struct {
	VideoID int64    `json:"videoId"`
	UserID  int64    `json:"userId"`
	Type    LikeType `json:"type"`
}

// Snapshot is the full dataset as persisted on disk.
type Snapshot struct {
	Users    []User    `json:"users"`
	Videos   []Video   `json:"videos"`
	Comments []Comment `json:"comments"`
	Likes    []Like    `json:"likes"`
}

// Clone returns a deep copy of the snapshot. Record structs contain no
// reference types, so copying the slices is sufficient.
func (s Snapshot) Clone() Snapshot {
	out := Snapshot{
		Users:    make([]User, len(s.Users)),
		Videos:   make([]Video, len(s.Videos)),
		Comments: make([]Comment, len(s.Comments)),
		Likes:    make([]Like, len(s.Likes)),
	}
	copy(out.Users, s.Users)
	copy(out.Videos, s.Videos)
	copy(out.Comments, s.Comments)
	copy(out.Likes, s.Likes)
	return out
}

// VideoInput carries the fields for CreateVideo. Filename comes from the
// uploader collaborator; Thumbnail may be empty.
type VideoInput struct {
	Title       string
	Description string
	Filename    string
	Thumbnail   string
	UserID      int64
}

// CommentInput carries the fields for CreateComment.
type CommentInput struct {
	VideoID int64
	UserID  int64
	Text    string
}

// LikeResult is the outcome of a toggle: the post-toggle counts for the
// video and the caller's resulting action ("" when the row was deleted).
type LikeResult struct {
	LikesCount    int      `json:"likesCount"`
	DislikesCount int      `json:"dislikesCount"`
	UserAction    LikeType `json:"userAction,omitempty"`
}
