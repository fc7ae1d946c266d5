// Package view computes read-side projections over a store snapshot.
// Everything here is a pure function: no I/O, no mutation of the
// snapshot passed in.
package view

import (
	"strings"

	"github.com/clipvault/clipvault/internal/store"
)

// Owner is the author join attached to videos and comments. A nil
// *Owner means the referenced user no longer resolves; callers decide
// how to render that case.
type Owner struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Avatar   string `json:"avatar,omitempty"`
}

// VideoSummary is a video annotated with its owner and reaction counts.
type VideoSummary struct {
	store.Video
	Owner         *Owner `json:"user,omitempty"`
	LikesCount    int    `json:"likesCount"`
	DislikesCount int    `json:"dislikesCount"`
}

// CommentEntry is a comment annotated with its author.
type CommentEntry struct {
	store.Comment
	Author *Owner `json:"user,omitempty"`
}

// VideoDetail is a summary plus the full comment thread, newest-first.
type VideoDetail struct {
	VideoSummary
	Comments []CommentEntry `json:"comments"`
}

// ChannelVideo is a video on its owner's channel page: like count only,
// no dislikes and no owner join since the caller already has the owner.
type ChannelVideo struct {
	store.Video
	LikesCount int `json:"likesCount"`
}

func ownerOf(snap store.Snapshot, userID int64) *Owner {
	for _, u := range snap.Users {
		if u.ID == userID {
			return &Owner{ID: u.ID, Username: u.Username, Avatar: u.Avatar}
		}
	}
	return nil
}

func reactionCounts(snap store.Snapshot, videoID int64) (likes, dislikes int) {
	for _, l := range snap.Likes {
		if l.VideoID != videoID {
			continue
		}
		switch l.Type {
		case store.LikeTypeLike:
			likes++
		case store.LikeTypeDislike:
			dislikes++
		}
	}
	return likes, dislikes
}

func matches(v store.Video, term string) bool {
	if term == "" {
		return true
	}
	q := strings.ToLower(term)
	if strings.Contains(strings.ToLower(v.Title), q) {
		return true
	}
	return v.Description != "" && strings.Contains(strings.ToLower(v.Description), q)
}

// ListVideos returns all videos newest-first, optionally filtered by a
// case-insensitive substring match on title or description. Newest-first
// means reverse append order, not a timestamp sort.
func ListVideos(snap store.Snapshot, searchTerm string) []VideoSummary {
	out := make([]VideoSummary, 0, len(snap.Videos))
	for i := len(snap.Videos) - 1; i >= 0; i-- {
		v := snap.Videos[i]
		if !matches(v, searchTerm) {
			continue
		}
		likes, dislikes := reactionCounts(snap, v.ID)
		out = append(out, VideoSummary{
			Video:         v,
			Owner:         ownerOf(snap, v.UserID),
			LikesCount:    likes,
			DislikesCount: dislikes,
		})
	}
	return out
}

// GetVideoDetail returns the summary for id plus its comment thread,
// newest-first. The second return is false when id has no video.
func GetVideoDetail(snap store.Snapshot, id int64) (VideoDetail, bool) {
	for _, v := range snap.Videos {
		if v.ID != id {
			continue
		}
		likes, dislikes := reactionCounts(snap, id)
		detail := VideoDetail{
			VideoSummary: VideoSummary{
				Video:         v,
				Owner:         ownerOf(snap, v.UserID),
				LikesCount:    likes,
				DislikesCount: dislikes,
			},
			Comments: []CommentEntry{},
		}
		for i := len(snap.Comments) - 1; i >= 0; i-- {
			c := snap.Comments[i]
			if c.VideoID != id {
				continue
			}
			detail.Comments = append(detail.Comments, CommentEntry{
				Comment: c,
				Author:  ownerOf(snap, c.UserID),
			})
		}
		return detail, true
	}
	return VideoDetail{}, false
}

// ListVideosByUser returns the videos owned by userID, newest-first,
// annotated with like counts.
func ListVideosByUser(snap store.Snapshot, userID int64) []ChannelVideo {
	out := make([]ChannelVideo, 0)
	for i := len(snap.Videos) - 1; i >= 0; i-- {
		v := snap.Videos[i]
		if v.UserID != userID {
			continue
		}
		likes, _ := reactionCounts(snap, v.ID)
		out = append(out, ChannelVideo{Video: v, LikesCount: likes})
	}
	return out
}
