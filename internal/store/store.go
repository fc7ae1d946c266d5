// Package store persists the whole dataset as a single flat JSON
// document. Every mutating operation copies the current snapshot,
// applies its change, writes the document back, and only then installs
// the copy as the live snapshot, so a failed write-back never leaves a
// half-applied mutation behind.
package store

import (
	"path/filepath"
	"sync"
	"time"
)

// Store owns the dataset. Mutations are serialized by the write lock
// across the full read-copy-mutate-persist cycle; readers share the
// read lock and always receive copies, never aliases into live data.
type Store struct {
	mu     sync.RWMutex
	path   string
	data   Snapshot
	logger Logger
}

// Open loads the dataset from dir/data.json, creating it with empty
// collections on first use.
func Open(dir string, logger Logger) (*Store, error) {
	path := filepath.Join(dir, dataFile)
	snap, err := loadSnapshot(path)
	if err != nil {
		return nil, err
	}
	logger.LogInfo("dataset loaded", map[string]interface{}{
		"path":     path,
		"users":    len(snap.Users),
		"videos":   len(snap.Videos),
		"comments": len(snap.Comments),
		"likes":    len(snap.Likes),
	})
	return &Store{path: path, data: snap, logger: logger}, nil
}

// mutate runs fn against a copy of the snapshot and commits the copy
// only after it has been persisted. fn reports whether it changed
// anything; when it did not, the file is left untouched and nothing is
// committed. On write failure the previous snapshot stays live and the
// error is returned unchanged.
func (s *Store) mutate(fn func(*Snapshot) bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.data.Clone()
	if !fn(&next) {
		return nil
	}
	if err := writeSnapshot(s.path, next); err != nil {
		return s.logger.LogError(err, "dataset write-back failed")
	}
	s.data = next
	return nil
}

// Snapshot returns a deep copy of the last committed dataset.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.data.Clone()
}

// nextUserID and friends assign ids as max existing id + 1 (1 when the
// collection is empty). Ids are never reused.
func nextUserID(users []User) int64 {
	var max int64
	for _, u := range users {
		if u.ID > max {
			max = u.ID
		}
	}
	return max + 1
}

func nextVideoID(videos []Video) int64 {
	var max int64
	for _, v := range videos {
		if v.ID > max {
			max = v.ID
		}
	}
	return max + 1
}

func nextCommentID(comments []Comment) int64 {
	var max int64
	for _, c := range comments {
		if c.ID > max {
			max = c.ID
		}
	}
	return max + 1
}

// CreateUser appends a new user and persists. Username/email uniqueness
// is the caller's responsibility; the store does not reject duplicates.
func (s *Store) CreateUser(username, email, passwordHash string) (User, error) {
	var user User
	err := s.mutate(func(snap *Snapshot) bool {
		user = User{
			ID:        nextUserID(snap.Users),
			Username:  username,
			Email:     email,
			Password:  passwordHash,
			CreatedAt: time.Now().UTC(),
		}
		snap.Users = append(snap.Users, user)
		return true
	})
	if err != nil {
		return User{}, err
	}
	return user, nil
}

// FindUserByEmail returns the first user with the given email.
func (s *Store) FindUserByEmail(email string) (User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.data.Users {
		if u.Email == email {
			return u, true
		}
	}
	return User{}, false
}

// FindUserByUsername returns the first user with the given username.
func (s *Store) FindUserByUsername(username string) (User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.data.Users {
		if u.Username == username {
			return u, true
		}
	}
	return User{}, false
}

// FindUserByID returns the user with the given id.
func (s *Store) FindUserByID(id int64) (User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.data.Users {
		if u.ID == id {
			return u, true
		}
	}
	return User{}, false
}

// CreateVideo appends a new video with zero views and persists.
func (s *Store) CreateVideo(input VideoInput) (Video, error) {
	var video Video
	err := s.mutate(func(snap *Snapshot) bool {
		video = Video{
			ID:          nextVideoID(snap.Videos),
			Title:       input.Title,
			Description: input.Description,
			Filename:    input.Filename,
			Thumbnail:   input.Thumbnail,
			UserID:      input.UserID,
			Views:       0,
			CreatedAt:   time.Now().UTC(),
		}
		snap.Videos = append(snap.Videos, video)
		return true
	})
	if err != nil {
		return Video{}, err
	}
	return video, nil
}

// IncrementViews bumps the view counter for id. Unknown ids are a
// silent no-op and touch neither the snapshot nor the file.
func (s *Store) IncrementViews(id int64) error {
	return s.mutate(func(snap *Snapshot) bool {
		for i := range snap.Videos {
			if snap.Videos[i].ID == id {
				snap.Videos[i].Views++
				return true
			}
		}
		return false
	})
}

// CreateComment appends a new comment and persists.
func (s *Store) CreateComment(input CommentInput) (Comment, error) {
	var comment Comment
	err := s.mutate(func(snap *Snapshot) bool {
		comment = Comment{
			ID:        nextCommentID(snap.Comments),
			VideoID:   input.VideoID,
			UserID:    input.UserID,
			Text:      input.Text,
			CreatedAt: time.Now().UTC(),
		}
		snap.Comments = append(snap.Comments, comment)
		return true
	})
	if err != nil {
		return Comment{}, err
	}
	return comment, nil
}

// ToggleLike applies the three-way reaction toggle for (videoID, userID):
// no existing row inserts one, an existing row of the same type is
// deleted, an existing row of the other type switches in place. The
// result carries the post-toggle counts and the caller's action.
func (s *Store) ToggleLike(videoID, userID int64, likeType LikeType) (LikeResult, error) {
	var result LikeResult
	err := s.mutate(func(snap *Snapshot) bool {
		idx := -1
		for i, l := range snap.Likes {
			if l.VideoID == videoID && l.UserID == userID {
				idx = i
				break
			}
		}
		switch {
		case idx < 0:
			snap.Likes = append(snap.Likes, Like{VideoID: videoID, UserID: userID, Type: likeType})
		case snap.Likes[idx].Type == likeType:
			snap.Likes = append(snap.Likes[:idx], snap.Likes[idx+1:]...)
		default:
			snap.Likes[idx].Type = likeType
		}
		result = likeResult(snap, videoID, userID)
		return true
	})
	if err != nil {
		return LikeResult{}, err
	}
	return result, nil
}

// UserAction returns the caller's current reaction on a video, or ""
// when no row exists.
func (s *Store) UserAction(videoID, userID int64) LikeType {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, l := range s.data.Likes {
		if l.VideoID == videoID && l.UserID == userID {
			return l.Type
		}
	}
	return ""
}

func likeResult(snap *Snapshot, videoID, userID int64) LikeResult {
	var result LikeResult
	for _, l := range snap.Likes {
		if l.VideoID != videoID {
			continue
		}
		switch l.Type {
		case LikeTypeLike:
			result.LikesCount++
		case LikeTypeDislike:
			result.DislikesCount++
		}
		if l.UserID == userID {
			result.UserAction = l.Type
		}
	}
	return result
}
