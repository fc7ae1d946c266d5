package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// LocalUploader stores media on the local filesystem under
// baseDir/videos and baseDir/thumbnails.
type LocalUploader struct {
	baseDir string
}

// NewLocalUploader creates the upload directories if needed.
func NewLocalUploader(baseDir string) (*LocalUploader, error) {
	for _, kind := range []Kind{KindVideo, KindThumbnail} {
		if err := os.MkdirAll(filepath.Join(baseDir, string(kind)), 0o755); err != nil {
			return nil, fmt.Errorf("failed to create upload directory: %w", err)
		}
	}
	return &LocalUploader{baseDir: baseDir}, nil
}

// Save writes the stream to disk under a unique name.
func (u *LocalUploader) Save(kind Kind, originalName string, r io.Reader) (string, error) {
	name := uniqueName(originalName)
	dst := filepath.Join(u.baseDir, string(kind), name)

	f, err := os.Create(dst)
	if err != nil {
		return "", fmt.Errorf("failed to create media file: %w", err)
	}
	if _, err := io.Copy(f, r); err != nil {
		f.Close()
		os.Remove(dst)
		return "", fmt.Errorf("failed to write media file: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(dst)
		return "", fmt.Errorf("failed to close media file: %w", err)
	}
	return name, nil
}

// Remove deletes a stored file. Missing files are not an error.
func (u *LocalUploader) Remove(kind Kind, storedName string) error {
	err := os.Remove(filepath.Join(u.baseDir, string(kind), storedName))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove media file: %w", err)
	}
	return nil
}
