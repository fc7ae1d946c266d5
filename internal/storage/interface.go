// Package storage is the media sink the upload flow hands files to. The
// persistence core never touches media bytes; it only records the
// filenames returned from here.
package storage

import "io"

// Kind separates video files from thumbnail images.
type Kind string

const (
	KindVideo     Kind = "videos"
	KindThumbnail Kind = "thumbnails"
)

// Uploader stores media under a generated unique name and can remove it
// again when the metadata write that references it fails.
type Uploader interface {
	Save(kind Kind, originalName string, r io.Reader) (string, error)
	Remove(kind Kind, storedName string) error
}
