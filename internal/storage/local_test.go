package storage

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLocalUploaderSaveAndRemove(t *testing.T) {
	dir := t.TempDir()
	u, err := NewLocalUploader(dir)
	if err != nil {
		t.Fatalf("NewLocalUploader failed: %v", err)
	}

	name, err := u.Save(KindVideo, "clip.mp4", strings.NewReader("media bytes"))
	if err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if name == "clip.mp4" {
		t.Error("stored name must not be the client-supplied name")
	}
	if filepath.Ext(name) != ".mp4" {
		t.Errorf("expected extension to survive, got %q", name)
	}

	data, err := os.ReadFile(filepath.Join(dir, string(KindVideo), name))
	if err != nil {
		t.Fatalf("stored file unreadable: %v", err)
	}
	if string(data) != "media bytes" {
		t.Errorf("unexpected content %q", data)
	}

	if err := u.Remove(KindVideo, name); err != nil {
		t.Fatalf("Remove failed: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, string(KindVideo), name)); !os.IsNotExist(err) {
		t.Error("expected file to be gone")
	}
}

func TestLocalUploaderRemoveMissingIsNoError(t *testing.T) {
	u, err := NewLocalUploader(t.TempDir())
	if err != nil {
		t.Fatalf("NewLocalUploader failed: %v", err)
	}
	if err := u.Remove(KindThumbnail, "never-stored.png"); err != nil {
		t.Errorf("removing a missing file should not error: %v", err)
	}
}

func TestUniqueNames(t *testing.T) {
	a := uniqueName("clip.mp4")
	b := uniqueName("clip.mp4")
	if a == b {
		t.Error("two uploads of the same name must not collide")
	}
	if !strings.HasSuffix(a, ".mp4") {
		t.Errorf("expected .mp4 suffix, got %q", a)
	}
}
