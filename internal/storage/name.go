package storage

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/google/uuid"
)

// uniqueName builds a stored filename that cannot collide: timestamp
// plus a random uuid, keeping the original extension.
func uniqueName(originalName string) string {
	return fmt.Sprintf("%d-%s%s", time.Now().UnixNano(), uuid.NewString(), filepath.Ext(originalName))
}
