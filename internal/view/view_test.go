package view_test

import (
	"testing"

	"github.com/clipvault/clipvault/internal/store"
	"github.com/clipvault/clipvault/internal/view"
)

func fixture() store.Snapshot {
	return store.Snapshot{
		Users: []store.User{
			{ID: 1, Username: "alice", Email: "alice@example.com"},
			{ID: 2, Username: "bob", Email: "bob@example.com"},
		},
		Videos: []store.Video{
			{ID: 1, Title: "Intro to Gophers", Description: "a gentle start", UserID: 1},
			{ID: 2, Title: "Advanced Sailing", UserID: 2},
			{ID: 3, Title: "gopher tricks", Description: "more rodents", UserID: 99},
		},
		Comments: []store.Comment{
			{ID: 1, VideoID: 1, UserID: 2, Text: "first"},
			{ID: 2, VideoID: 1, UserID: 1, Text: "second"},
			{ID: 3, VideoID: 2, UserID: 1, Text: "nice boat"},
		},
		Likes: []store.Like{
			{VideoID: 1, UserID: 1, Type: store.LikeTypeLike},
			{VideoID: 1, UserID: 2, Type: store.LikeTypeDislike},
			{VideoID: 3, UserID: 2, Type: store.LikeTypeLike},
		},
	}
}

func TestListVideosNewestFirst(t *testing.T) {
	videos := view.ListVideos(fixture(), "")

	if len(videos) != 3 {
		t.Fatalf("expected 3 videos, got %d", len(videos))
	}
	for i, wantID := range []int64{3, 2, 1} {
		if videos[i].ID != wantID {
			t.Errorf("position %d: expected video %d, got %d", i, wantID, videos[i].ID)
		}
	}
}

func TestListVideosSearch(t *testing.T) {
	videos := view.ListVideos(fixture(), "GOPHER")

	if len(videos) != 2 {
		t.Fatalf("expected 2 matches, got %d", len(videos))
	}
	// Order is preserved: newest match first.
	if videos[0].ID != 3 || videos[1].ID != 1 {
		t.Errorf("unexpected order: got %d then %d", videos[0].ID, videos[1].ID)
	}
}

func TestListVideosSearchMatchesDescription(t *testing.T) {
	videos := view.ListVideos(fixture(), "rodents")
	if len(videos) != 1 || videos[0].ID != 3 {
		t.Fatalf("expected only video 3, got %+v", videos)
	}
}

func TestListVideosCountsAndOwner(t *testing.T) {
	videos := view.ListVideos(fixture(), "")

	byID := map[int64]view.VideoSummary{}
	for _, v := range videos {
		byID[v.ID] = v
	}

	v1 := byID[1]
	if v1.LikesCount != 1 || v1.DislikesCount != 1 {
		t.Errorf("video 1: expected 1/1 counts, got %d/%d", v1.LikesCount, v1.DislikesCount)
	}
	if v1.Owner == nil || v1.Owner.Username != "alice" {
		t.Errorf("video 1: expected owner alice, got %+v", v1.Owner)
	}

	// Video 3 references a user that does not exist.
	if byID[3].Owner != nil {
		t.Errorf("video 3: expected nil owner for dangling ref, got %+v", byID[3].Owner)
	}
}

func TestGetVideoDetail(t *testing.T) {
	detail, found := view.GetVideoDetail(fixture(), 1)
	if !found {
		t.Fatal("expected video 1 to be found")
	}

	if len(detail.Comments) != 2 {
		t.Fatalf("expected 2 comments, got %d", len(detail.Comments))
	}
	// Newest-first: reverse append order.
	if detail.Comments[0].ID != 2 || detail.Comments[1].ID != 1 {
		t.Errorf("unexpected comment order: %d then %d", detail.Comments[0].ID, detail.Comments[1].ID)
	}
	if detail.Comments[0].Author == nil || detail.Comments[0].Author.Username != "alice" {
		t.Errorf("expected comment author alice, got %+v", detail.Comments[0].Author)
	}
	if detail.LikesCount != 1 || detail.DislikesCount != 1 {
		t.Errorf("expected 1/1 counts, got %d/%d", detail.LikesCount, detail.DislikesCount)
	}
}

func TestGetVideoDetailNotFound(t *testing.T) {
	if _, found := view.GetVideoDetail(fixture(), 42); found {
		t.Error("expected miss for unknown id")
	}
}

func TestListVideosByUser(t *testing.T) {
	snap := fixture()
	snap.Videos = append(snap.Videos, store.Video{ID: 4, Title: "Second clip", UserID: 1})

	videos := view.ListVideosByUser(snap, 1)
	if len(videos) != 2 {
		t.Fatalf("expected 2 videos, got %d", len(videos))
	}
	if videos[0].ID != 4 || videos[1].ID != 1 {
		t.Errorf("unexpected order: %d then %d", videos[0].ID, videos[1].ID)
	}
	if videos[1].LikesCount != 1 {
		t.Errorf("expected like count 1 for video 1, got %d", videos[1].LikesCount)
	}
}

func TestProjectionsDoNotMutateSnapshot(t *testing.T) {
	snap := fixture()
	view.ListVideos(snap, "gopher")
	view.GetVideoDetail(snap, 1)
	view.ListVideosByUser(snap, 1)

	if snap.Videos[0].ID != 1 || len(snap.Videos) != 3 {
		t.Error("projection reordered or resized the snapshot's video slice")
	}
	if len(snap.Comments) != 3 {
		t.Error("projection resized the snapshot's comment slice")
	}
}
